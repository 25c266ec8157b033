package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
)

// RequestCodeRequest asks for a one-time login code to be sent by SMS.
type RequestCodeRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
}

// VerifyCodeRequest exchanges a one-time code for a token pair.
type VerifyCodeRequest struct {
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Code        string `json:"code" validate:"required,len=6,numeric"`
}

// RefreshTokenRequest exchanges a refresh token for a new token pair.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AuthResponse is returned after a successful verify or refresh.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	IsNewUser    bool      `json:"is_new_user,omitempty"`
}

// StartSessionRequest selects the verse to make the learner's active focus.
type StartSessionRequest struct {
	VerseID uuid.UUID `json:"verse_id" validate:"required"`
}

// SessionResponse describes a memorization session for API clients.
type SessionResponse struct {
	ID          uuid.UUID  `json:"id"`
	VerseID     uuid.UUID  `json:"verse_id"`
	CurrentStep int        `json:"current_step"`
	TotalSteps  int        `json:"total_steps"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// sessionResponseFrom maps a domain session to its API representation.
func sessionResponseFrom(s *domain.VerseSession) SessionResponse {
	return SessionResponse{
		ID:          s.ID,
		VerseID:     s.VerseID,
		CurrentStep: s.CurrentStep,
		TotalSteps:  s.TotalSteps,
		CompletedAt: s.CompletedAt,
		CreatedAt:   s.CreatedAt,
	}
}

// VerseResponse describes a verse available for memorization.
type VerseResponse struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`
	Text        string    `json:"text"`
	Translation string    `json:"translation"`
}

// verseResponseFrom maps a domain verse to its API representation.
func verseResponseFrom(v *domain.Verse) VerseResponse {
	return VerseResponse{
		ID:          v.ID,
		Reference:   v.Reference,
		Text:        v.Text,
		Translation: v.Translation,
	}
}

// UpdateProfileRequest changes the learner's display name.
type UpdateProfileRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// ProfileResponse aggregates the learner's identity and progress stats.
type ProfileResponse struct {
	ID          uuid.UUID  `json:"id"`
	PhoneNumber string     `json:"phone_number"`
	Name        string     `json:"name,omitempty"`
	TotalXP     int        `json:"total_xp"`
	Streak      int        `json:"streak"`
	PausedUntil *time.Time `json:"paused_until,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
