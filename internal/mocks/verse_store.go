package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/store"
)

// MockVerseStore implements store.VerseStore for testing
type MockVerseStore struct {
	GetByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Verse, error)
	ListFn    func(ctx context.Context) ([]*domain.Verse, error)

	// Default values used when functions aren't explicitly defined
	Verse  *domain.Verse
	Verses []*domain.Verse
	Err    error
}

var _ store.VerseStore = (*MockVerseStore)(nil)

func (m *MockVerseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Verse, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Verse, m.Err
}

func (m *MockVerseStore) List(ctx context.Context) ([]*domain.Verse, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Verses, m.Err
}
