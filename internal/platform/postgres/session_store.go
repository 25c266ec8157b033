package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/store"
)

// PostgresSessionStore implements the store.SessionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresSessionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresSessionStore creates a new PostgreSQL implementation of the
// SessionStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresSessionStore(db store.DBTX, logger *slog.Logger) *PostgresSessionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresSessionStore{
		db:     db,
		logger: logger.With(slog.String("component", "session_store")),
	}
}

// Ensure PostgresSessionStore implements store.SessionStore interface
var _ store.SessionStore = (*PostgresSessionStore)(nil)

// WithTx returns a SessionStore bound to the given transaction-capable handle.
func (s *PostgresSessionStore) WithTx(db store.DBTX) *PostgresSessionStore {
	return &PostgresSessionStore{db: db, logger: s.logger}
}

const sessionColumns = `id, user_id, verse_id, current_step, total_steps,
	awaiting_reply, last_message_at, completed_at, created_at, updated_at`

// Create implements store.SessionStore.Create
func (s *PostgresSessionStore) Create(ctx context.Context, session *domain.VerseSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during create",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return err
	}

	query := `
		INSERT INTO verse_sessions (` + sessionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.UserID,
		session.VerseID,
		session.CurrentStep,
		session.TotalSteps,
		session.AwaitingReply,
		session.LastMessageAt,
		session.CompletedAt,
		session.CreatedAt,
		session.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()),
			slog.String("user_id", session.UserID.String()))
		return MapError(err)
	}

	log.Info("session created",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()),
		slog.String("verse_id", session.VerseID.String()))
	return nil
}

// GetActiveByUserID implements store.SessionStore.GetActiveByUserID
// Returns store.ErrSessionNotFound when the learner has no active session.
func (s *PostgresSessionStore) GetActiveByUserID(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.VerseSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM verse_sessions
		WHERE user_id = $1 AND completed_at IS NULL
	`
	return s.scanOne(ctx, query, userID)
}

// GetByID implements store.SessionStore.GetByID
// Returns store.ErrSessionNotFound if the session does not exist.
func (s *PostgresSessionStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.VerseSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM verse_sessions
		WHERE id = $1
	`
	return s.scanOne(ctx, query, id)
}

func (s *PostgresSessionStore) scanOne(
	ctx context.Context,
	query string,
	arg any,
) (*domain.VerseSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var session domain.VerseSession
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&session.ID,
		&session.UserID,
		&session.VerseID,
		&session.CurrentStep,
		&session.TotalSteps,
		&session.AwaitingReply,
		&session.LastMessageAt,
		&session.CompletedAt,
		&session.CreatedAt,
		&session.UpdatedAt,
	)

	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrSessionNotFound
		}
		log.Error("failed to get session", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &session, nil
}

// ListActive implements store.SessionStore.ListActive
func (s *PostgresSessionStore) ListActive(ctx context.Context) ([]*domain.VerseSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + sessionColumns + `
		FROM verse_sessions
		WHERE completed_at IS NULL
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list active sessions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var sessions []*domain.VerseSession
	for rows.Next() {
		var session domain.VerseSession
		if err := rows.Scan(
			&session.ID,
			&session.UserID,
			&session.VerseID,
			&session.CurrentStep,
			&session.TotalSteps,
			&session.AwaitingReply,
			&session.LastMessageAt,
			&session.CompletedAt,
			&session.CreatedAt,
			&session.UpdatedAt,
		); err != nil {
			log.Error("failed to scan session row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sessions, nil
}

// AdvanceStep implements store.SessionStore.AdvanceStep
//
// The WHERE clause is the optimistic-concurrency check: the update only
// lands if current_step still equals the step the caller observed and
// the session is still active. Two racing submissions (a stale web tab
// and a fresh SMS reply) therefore cannot both advance; the loser gets
// store.ErrStaleStep and must refetch.
func (s *PostgresSessionStore) AdvanceStep(
	ctx context.Context,
	id uuid.UUID,
	expectedStep int,
	advance store.SessionAdvance,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE verse_sessions
		SET current_step = $3, awaiting_reply = FALSE, completed_at = $4, updated_at = $5
		WHERE id = $1 AND current_step = $2 AND completed_at IS NULL
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		id,
		expectedStep,
		advance.NextStep,
		advance.CompletedAt,
		time.Now().UTC(),
	)
	if err != nil {
		log.Error("failed to advance session step",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()),
			slog.Int("expected_step", expectedStep))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		// Distinguish a lost race from a missing/completed session so the
		// caller can report a retryable conflict rather than a 404.
		if _, getErr := s.GetByID(ctx, id); getErr != nil {
			return getErr
		}
		log.Warn("session step moved concurrently",
			slog.String("session_id", id.String()),
			slog.Int("expected_step", expectedStep))
		return store.ErrStaleStep
	}

	log.Debug("session advanced",
		slog.String("session_id", id.String()),
		slog.Int("from_step", expectedStep),
		slog.Int("to_step", advance.NextStep),
		slog.Bool("completed", advance.CompletedAt != nil))
	return nil
}

// MarkMessaged implements store.SessionStore.MarkMessaged
func (s *PostgresSessionStore) MarkMessaged(ctx context.Context, id uuid.UUID, at time.Time) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE verse_sessions
		SET last_message_at = $2, awaiting_reply = TRUE, updated_at = $3
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id, at, time.Now().UTC())
	if err != nil {
		log.Error("failed to mark session messaged",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrSessionNotFound
	}

	return nil
}

// Delete implements store.SessionStore.Delete
func (s *PostgresSessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM verse_sessions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete session",
			slog.String("error", err.Error()),
			slog.String("session_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrSessionNotFound
	}

	log.Info("session deleted", slog.String("session_id", id.String()))
	return nil
}
