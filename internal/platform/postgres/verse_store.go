package postgres

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/store"
)

// PostgresVerseStore implements the store.VerseStore interface
// using a PostgreSQL database as the storage backend.
type PostgresVerseStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresVerseStore creates a new PostgreSQL implementation of the
// VerseStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresVerseStore(db store.DBTX, logger *slog.Logger) *PostgresVerseStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresVerseStore{
		db:     db,
		logger: logger.With(slog.String("component", "verse_store")),
	}
}

// Ensure PostgresVerseStore implements store.VerseStore interface
var _ store.VerseStore = (*PostgresVerseStore)(nil)

// GetByID implements store.VerseStore.GetByID
// Returns store.ErrVerseNotFound if the verse does not exist.
func (s *PostgresVerseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Verse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reference, text, translation, created_at
		FROM verses
		WHERE id = $1
	`

	var verse domain.Verse
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&verse.ID,
		&verse.Reference,
		&verse.Text,
		&verse.Translation,
		&verse.CreatedAt,
	)

	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrVerseNotFound
		}
		log.Error("failed to get verse by ID",
			slog.String("error", err.Error()),
			slog.String("verse_id", id.String()))
		return nil, MapError(err)
	}

	return &verse, nil
}

// List implements store.VerseStore.List
// Verses come back in creation order so the catalog reads stably.
func (s *PostgresVerseStore) List(ctx context.Context) ([]*domain.Verse, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, reference, text, translation, created_at
		FROM verses
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list verses", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	var verses []*domain.Verse
	for rows.Next() {
		var verse domain.Verse
		if err := rows.Scan(
			&verse.ID,
			&verse.Reference,
			&verse.Text,
			&verse.Translation,
			&verse.CreatedAt,
		); err != nil {
			log.Error("failed to scan verse row", slog.String("error", err.Error()))
			return nil, MapError(err)
		}
		verses = append(verses, &verse)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return verses, nil
}
