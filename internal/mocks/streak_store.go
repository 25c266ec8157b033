package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/store"
)

// MockStreakStore implements store.StreakStore for testing
type MockStreakStore struct {
	GetFn    func(ctx context.Context, userID uuid.UUID) (*domain.Streak, error)
	UpsertFn func(ctx context.Context, userID uuid.UUID, count int, activityDate time.Time) error

	// Default values used when functions aren't explicitly defined
	Streak *domain.Streak
	Err    error

	// Call tracking for verification
	UpsertCalls struct {
		mu     sync.Mutex
		Count  int
		Counts []int
		Dates  []time.Time
	}
}

var _ store.StreakStore = (*MockStreakStore)(nil)

func (m *MockStreakStore) Get(ctx context.Context, userID uuid.UUID) (*domain.Streak, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, userID)
	}
	return m.Streak, m.Err
}

func (m *MockStreakStore) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	count int,
	activityDate time.Time,
) error {
	m.UpsertCalls.mu.Lock()
	m.UpsertCalls.Count++
	m.UpsertCalls.Counts = append(m.UpsertCalls.Counts, count)
	m.UpsertCalls.Dates = append(m.UpsertCalls.Dates, activityDate)
	m.UpsertCalls.mu.Unlock()

	if m.UpsertFn != nil {
		return m.UpsertFn(ctx, userID, count, activityDate)
	}
	return m.Err
}

// MockMessageLogStore implements store.MessageLogStore for testing
type MockMessageLogStore struct {
	AppendFn func(ctx context.Context, entry *domain.MessageLog) error

	Err error

	mu      sync.Mutex
	entries []*domain.MessageLog
}

var _ store.MessageLogStore = (*MockMessageLogStore)(nil)

func (m *MockMessageLogStore) Append(ctx context.Context, entry *domain.MessageLog) error {
	m.mu.Lock()
	m.entries = append(m.entries, entry)
	m.mu.Unlock()

	if m.AppendFn != nil {
		return m.AppendFn(ctx, entry)
	}
	return m.Err
}

// Entries returns a copy of all appended log entries in order.
func (m *MockMessageLogStore) Entries() []*domain.MessageLog {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.MessageLog, len(m.entries))
	copy(out, m.entries)
	return out
}
