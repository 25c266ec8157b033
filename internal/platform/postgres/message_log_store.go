package postgres

import (
	"context"
	"log/slog"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/store"
)

// PostgresMessageLogStore implements the store.MessageLogStore interface
// using a PostgreSQL database as the storage backend. The log is
// append-only; no update or delete statements exist here.
type PostgresMessageLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMessageLogStore creates a new PostgreSQL implementation of
// the MessageLogStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMessageLogStore(db store.DBTX, logger *slog.Logger) *PostgresMessageLogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMessageLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "message_log_store")),
	}
}

// Ensure PostgresMessageLogStore implements store.MessageLogStore interface
var _ store.MessageLogStore = (*PostgresMessageLogStore)(nil)

// Append implements store.MessageLogStore.Append
func (s *PostgresMessageLogStore) Append(ctx context.Context, entry *domain.MessageLog) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := entry.Validate(); err != nil {
		log.Warn("message log validation failed",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()))
		return err
	}

	query := `
		INSERT INTO sms_messages (id, user_id, direction, phone_number, body, status, provider_sid, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		entry.ID,
		entry.UserID,
		entry.Direction,
		entry.PhoneNumber,
		entry.Body,
		entry.Status,
		entry.ProviderSID,
		entry.CreatedAt,
	)

	if err != nil {
		log.Error("failed to append message log",
			slog.String("error", err.Error()),
			slog.String("entry_id", entry.ID.String()),
			slog.String("direction", string(entry.Direction)))
		return MapError(err)
	}

	log.Debug("message logged",
		slog.String("entry_id", entry.ID.String()),
		slog.String("direction", string(entry.Direction)),
		slog.String("status", string(entry.Status)))
	return nil
}
