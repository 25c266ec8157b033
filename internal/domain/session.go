package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// TotalSteps is the number of progressive-disclosure steps in a
// memorization session.
const TotalSteps = 7

// Common validation errors for VerseSession
var (
	ErrEmptySessionID      = errors.New("session ID cannot be empty")
	ErrEmptySessionUserID  = errors.New("session user ID cannot be empty")
	ErrEmptySessionVerseID = errors.New("session verse ID cannot be empty")
	ErrStepOutOfRange      = errors.New("current step must be between 1 and total steps")
)

// VerseSession is one learner's in-progress attempt at memorizing one verse.
// A learner has at most one session with a nil CompletedAt at any time
// ("one active focus"); starting a new session deletes the previous active one.
//
// CurrentStep doubles as the optimistic-concurrency token: the web and SMS
// channels may both try to advance the same session, and the store only
// applies an advance whose expected step still matches.
type VerseSession struct {
	ID            uuid.UUID  `json:"id"`
	UserID        uuid.UUID  `json:"user_id"`
	VerseID       uuid.UUID  `json:"verse_id"`
	CurrentStep   int        `json:"current_step"`
	TotalSteps    int        `json:"total_steps"`
	AwaitingReply bool       `json:"awaiting_reply"`           // an outbound SMS prompt is unanswered
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"` // nil while active
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// NewVerseSession creates a new active session at step 1 for the given
// user and verse. Returns an error if validation fails.
func NewVerseSession(userID, verseID uuid.UUID) (*VerseSession, error) {
	now := time.Now().UTC()
	session := &VerseSession{
		ID:          uuid.New(),
		UserID:      userID,
		VerseID:     verseID,
		CurrentStep: 1,
		TotalSteps:  TotalSteps,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the VerseSession has valid data.
// Returns an error if any field fails validation.
func (s *VerseSession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptySessionID
	}

	if s.UserID == uuid.Nil {
		return ErrEmptySessionUserID
	}

	if s.VerseID == uuid.Nil {
		return ErrEmptySessionVerseID
	}

	if s.CurrentStep < 1 || s.CurrentStep > s.TotalSteps {
		return ErrStepOutOfRange
	}

	return nil
}

// IsCompleted reports whether the session has been completed.
func (s *VerseSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// MessagedOn reports whether the session's last outbound message was
// sent on the same UTC calendar date as the given time. The daily SMS
// job uses this to avoid prompting a learner twice in one day.
func (s *VerseSession) MessagedOn(day time.Time) bool {
	if s.LastMessageAt == nil {
		return false
	}
	y1, m1, d1 := s.LastMessageAt.UTC().Date()
	y2, m2, d2 := day.UTC().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
