package postgres

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/store"
)

// PostgresStreakStore implements the store.StreakStore interface
// using a PostgreSQL database as the storage backend.
type PostgresStreakStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresStreakStore creates a new PostgreSQL implementation of the
// StreakStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresStreakStore(db store.DBTX, logger *slog.Logger) *PostgresStreakStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresStreakStore{
		db:     db,
		logger: logger.With(slog.String("component", "streak_store")),
	}
}

// Ensure PostgresStreakStore implements store.StreakStore interface
var _ store.StreakStore = (*PostgresStreakStore)(nil)

// WithTx returns a StreakStore bound to the given transaction-capable handle.
func (s *PostgresStreakStore) WithTx(db store.DBTX) *PostgresStreakStore {
	return &PostgresStreakStore{db: db, logger: s.logger}
}

// Get implements store.StreakStore.Get
// Returns store.ErrStreakNotFound when the learner has no record yet.
func (s *PostgresStreakStore) Get(ctx context.Context, userID uuid.UUID) (*domain.Streak, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT user_id, current_streak, last_activity_date, created_at, updated_at
		FROM streaks
		WHERE user_id = $1
	`

	var streak domain.Streak
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&streak.UserID,
		&streak.CurrentStreak,
		&streak.LastActivityDate,
		&streak.CreatedAt,
		&streak.UpdatedAt,
	)

	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrStreakNotFound
		}
		log.Error("failed to get streak",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, MapError(err)
	}

	return &streak, nil
}

// Upsert implements store.StreakStore.Upsert
// The activity date is truncated to its UTC calendar date on write.
func (s *PostgresStreakStore) Upsert(
	ctx context.Context,
	userID uuid.UUID,
	count int,
	activityDate time.Time,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	now := time.Now().UTC()
	query := `
		INSERT INTO streaks (user_id, current_streak, last_activity_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $4)
		ON CONFLICT (user_id) DO UPDATE
		SET current_streak = EXCLUDED.current_streak,
		    last_activity_date = EXCLUDED.last_activity_date,
		    updated_at = EXCLUDED.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, userID, count, domain.DateOnly(activityDate), now)
	if err != nil {
		log.Error("failed to upsert streak",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.Int("count", count))
		return MapError(err)
	}

	log.Debug("streak upserted",
		slog.String("user_id", userID.String()),
		slog.Int("count", count))
	return nil
}
