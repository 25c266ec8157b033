package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for Verse
var (
	ErrEmptyVerseID        = errors.New("verse ID cannot be empty")
	ErrEmptyVerseReference = errors.New("verse reference cannot be empty")
	ErrEmptyVerseText      = errors.New("verse text cannot be empty")
)

// Verse represents an immutable reference text a learner can memorize.
// Verses are created by content management and are read-only to the
// memorization engine.
type Verse struct {
	ID          uuid.UUID `json:"id"`
	Reference   string    `json:"reference"`   // e.g. "Philippians 4:13"
	Text        string    `json:"text"`        // full verse body
	Translation string    `json:"translation"` // e.g. "NIV"
	CreatedAt   time.Time `json:"created_at"`
}

// NewVerse creates a new Verse with the given reference, text, and translation.
// Returns an error if validation fails.
func NewVerse(reference, text, translation string) (*Verse, error) {
	verse := &Verse{
		ID:          uuid.New(),
		Reference:   reference,
		Text:        text,
		Translation: translation,
		CreatedAt:   time.Now().UTC(),
	}

	if err := verse.Validate(); err != nil {
		return nil, err
	}

	return verse, nil
}

// Validate checks if the Verse has valid data.
// Returns an error if any field fails validation.
func (v *Verse) Validate() error {
	if v.ID == uuid.Nil {
		return ErrEmptyVerseID
	}

	if v.Reference == "" {
		return ErrEmptyVerseReference
	}

	if v.Text == "" {
		return ErrEmptyVerseText
	}

	return nil
}
