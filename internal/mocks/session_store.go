package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/store"
)

// MockSessionStore implements store.SessionStore for testing
type MockSessionStore struct {
	CreateFn            func(ctx context.Context, session *domain.VerseSession) error
	GetActiveByUserIDFn func(ctx context.Context, userID uuid.UUID) (*domain.VerseSession, error)
	GetByIDFn           func(ctx context.Context, id uuid.UUID) (*domain.VerseSession, error)
	ListActiveFn        func(ctx context.Context) ([]*domain.VerseSession, error)
	AdvanceStepFn       func(ctx context.Context, id uuid.UUID, expectedStep int, advance store.SessionAdvance) error
	MarkMessagedFn      func(ctx context.Context, id uuid.UUID, at time.Time) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Session  *domain.VerseSession
	Sessions []*domain.VerseSession
	Err      error

	// Call tracking for verification
	AdvanceStepCalls struct {
		mu       sync.Mutex
		Count    int
		IDs      []uuid.UUID
		Expected []int
		Advances []store.SessionAdvance
	}
}

var _ store.SessionStore = (*MockSessionStore)(nil)

func (m *MockSessionStore) Create(ctx context.Context, session *domain.VerseSession) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, session)
	}
	return m.Err
}

func (m *MockSessionStore) GetActiveByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.VerseSession, error) {
	if m.GetActiveByUserIDFn != nil {
		return m.GetActiveByUserIDFn(ctx, userID)
	}
	return m.Session, m.Err
}

func (m *MockSessionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.VerseSession, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.Session, m.Err
}

func (m *MockSessionStore) ListActive(ctx context.Context) ([]*domain.VerseSession, error) {
	if m.ListActiveFn != nil {
		return m.ListActiveFn(ctx)
	}
	return m.Sessions, m.Err
}

func (m *MockSessionStore) AdvanceStep(
	ctx context.Context,
	id uuid.UUID,
	expectedStep int,
	advance store.SessionAdvance,
) error {
	m.AdvanceStepCalls.mu.Lock()
	m.AdvanceStepCalls.Count++
	m.AdvanceStepCalls.IDs = append(m.AdvanceStepCalls.IDs, id)
	m.AdvanceStepCalls.Expected = append(m.AdvanceStepCalls.Expected, expectedStep)
	m.AdvanceStepCalls.Advances = append(m.AdvanceStepCalls.Advances, advance)
	m.AdvanceStepCalls.mu.Unlock()

	if m.AdvanceStepFn != nil {
		return m.AdvanceStepFn(ctx, id, expectedStep, advance)
	}
	return m.Err
}

func (m *MockSessionStore) MarkMessaged(ctx context.Context, id uuid.UUID, at time.Time) error {
	if m.MarkMessagedFn != nil {
		return m.MarkMessagedFn(ctx, id, at)
	}
	return m.Err
}

func (m *MockSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}
