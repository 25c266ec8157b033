package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Streak
var (
	ErrEmptyStreakUserID = errors.New("streak user ID cannot be empty")
	ErrInvalidStreak     = errors.New("streak count must be at least 1")
)

// Streak is a learner's daily-activity ledger: the count of consecutive
// calendar days with at least one accepted submission. LastActivityDate
// carries a calendar date only; time-of-day is always truncated so that
// midnight boundaries and timezones cannot double-count a day.
type Streak struct {
	UserID           uuid.UUID `json:"user_id"`
	CurrentStreak    int       `json:"current_streak"`
	LastActivityDate time.Time `json:"last_activity_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewStreak creates a streak record starting at 1 for the given user
// and activity date. Returns an error if validation fails.
func NewStreak(userID uuid.UUID, activityDate time.Time) (*Streak, error) {
	now := time.Now().UTC()
	streak := &Streak{
		UserID:           userID,
		CurrentStreak:    1,
		LastActivityDate: DateOnly(activityDate),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := streak.Validate(); err != nil {
		return nil, err
	}

	return streak, nil
}

// Validate checks if the Streak has valid data.
// Returns an error if any field fails validation.
func (s *Streak) Validate() error {
	if s.UserID == uuid.Nil {
		return ErrEmptyStreakUserID
	}

	if s.CurrentStreak < 1 {
		return ErrInvalidStreak
	}

	return nil
}

// DateOnly truncates a time to its UTC calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
