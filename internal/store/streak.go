package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

// StreakStore defines the interface for streak record persistence.
// Each learner has at most one row, keyed by user ID.
type StreakStore interface {
	// Get retrieves the learner's streak record.
	// Returns ErrStreakNotFound if the learner has never recorded activity.
	Get(ctx context.Context, userID uuid.UUID) (*domain.Streak, error)

	// Upsert creates or replaces the learner's streak record with the
	// given count and activity date. The date's time-of-day is truncated
	// on write; streak arithmetic is calendar-date arithmetic.
	Upsert(ctx context.Context, userID uuid.UUID, count int, activityDate time.Time) error
}

// MessageLogStore defines the interface for the append-only SMS log.
type MessageLogStore interface {
	// Append records one inbound or outbound SMS. Entries are immutable;
	// there are no update or delete operations.
	Append(ctx context.Context, entry *domain.MessageLog) error
}
