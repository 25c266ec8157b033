package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

// VerseStore defines the interface for verse data persistence.
// Verses are read-only to the engine; creation belongs to content
// management.
type VerseStore interface {
	// GetByID retrieves a verse by its unique ID.
	// Returns ErrVerseNotFound if the verse does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Verse, error)

	// List returns all verses ordered by creation time.
	List(ctx context.Context) ([]*domain.Verse, error)
}
