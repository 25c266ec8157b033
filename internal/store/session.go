package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

// SessionAdvance carries the field updates of one accepted submission,
// applied conditionally against the step the caller observed.
type SessionAdvance struct {
	NextStep    int
	CompletedAt *time.Time // non-nil when the submission completed the session
}

// SessionStore defines the interface for memorization session persistence.
type SessionStore interface {
	// Create saves a new session to the store.
	// Returns validation errors from the domain VerseSession if data is invalid.
	Create(ctx context.Context, session *domain.VerseSession) error

	// GetActiveByUserID retrieves the learner's single active session
	// (completed_at is null).
	// Returns ErrSessionNotFound if the learner has no active session.
	GetActiveByUserID(ctx context.Context, userID uuid.UUID) (*domain.VerseSession, error)

	// GetByID retrieves a session by its unique ID.
	// Returns ErrSessionNotFound if the session does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.VerseSession, error)

	// ListActive returns every active session across all learners. The
	// daily SMS job iterates this.
	ListActive(ctx context.Context) ([]*domain.VerseSession, error)

	// AdvanceStep applies an accepted submission as a conditional update:
	// the row is modified only if current_step still equals expectedStep
	// (compare-and-swap). Exactly one of two racing submissions can win.
	// Returns ErrStaleStep if the step moved concurrently, and
	// ErrSessionNotFound if the session does not exist or is completed.
	AdvanceStep(ctx context.Context, id uuid.UUID, expectedStep int, advance SessionAdvance) error

	// MarkMessaged records that an outbound prompt was sent for the
	// session at the given time and sets the awaiting-reply flag.
	MarkMessaged(ctx context.Context, id uuid.UUID, at time.Time) error

	// Delete removes a session by its ID. Used when a learner switches
	// verses: the previous active session is deleted before the new one
	// is created ("one active focus").
	Delete(ctx context.Context, id uuid.UUID) error
}
