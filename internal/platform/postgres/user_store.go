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

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx returns a UserStore bound to the given transaction-capable handle.
func (s *PostgresUserStore) WithTx(db store.DBTX) *PostgresUserStore {
	return &PostgresUserStore{db: db, logger: s.logger}
}

// Create implements store.UserStore.Create
// Returns store.ErrPhoneNumberExists if the phone number is already taken.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return err
	}

	query := `
		INSERT INTO users (id, phone_number, name, total_xp, paused_until, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.PhoneNumber,
		user.Name,
		user.TotalXP,
		user.PausedUntil,
		user.CreatedAt,
		user.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate phone number during user creation",
				slog.String("user_id", user.ID.String()))
			return store.ErrPhoneNumberExists
		}

		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		return MapError(err)
	}

	log.Info("user created successfully",
		slog.String("user_id", user.ID.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id = $1", id)
}

// GetByPhoneNumber implements store.UserStore.GetByPhoneNumber
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) GetByPhoneNumber(
	ctx context.Context,
	phoneNumber string,
) (*domain.User, error) {
	return s.getOne(ctx, "phone_number = $1", phoneNumber)
}

func (s *PostgresUserStore) getOne(
	ctx context.Context,
	where string,
	arg any,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, phone_number, name, total_xp, paused_until, created_at, updated_at
		FROM users
		WHERE ` + where

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.PhoneNumber,
		&user.Name,
		&user.TotalXP,
		&user.PausedUntil,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user",
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &user, nil
}

// AddXP implements store.UserStore.AddXP
// The increment is applied in the database so concurrent credits from
// the web and SMS channels cannot lose updates.
func (s *PostgresUserStore) AddXP(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET total_xp = total_xp + $2, updated_at = $3
		WHERE id = $1
		RETURNING total_xp
	`

	var newTotal int
	err := s.db.QueryRowContext(ctx, query, id, amount, time.Now().UTC()).Scan(&newTotal)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return 0, store.ErrUserNotFound
		}
		log.Error("failed to add XP",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()),
			slog.Int("amount", amount))
		return 0, MapError(err)
	}

	log.Debug("XP credited",
		slog.String("user_id", id.String()),
		slog.Int("amount", amount),
		slog.Int("new_total", newTotal))
	return newTotal, nil
}

// UpdateName implements store.UserStore.UpdateName
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	return s.updateOne(ctx,
		`UPDATE users SET name = $2, updated_at = $3 WHERE id = $1`,
		id, name)
}

// SetPausedUntil implements store.UserStore.SetPausedUntil
// Returns store.ErrUserNotFound if the user does not exist.
func (s *PostgresUserStore) SetPausedUntil(
	ctx context.Context,
	id uuid.UUID,
	until *time.Time,
) error {
	return s.updateOne(ctx,
		`UPDATE users SET paused_until = $2, updated_at = $3 WHERE id = $1`,
		id, until)
}

func (s *PostgresUserStore) updateOne(
	ctx context.Context,
	query string,
	id uuid.UUID,
	value any,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, query, id, value, time.Now().UTC())
	if err != nil {
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.String("user_id", id.String()))
		return MapError(err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return store.ErrUserNotFound
	}

	return nil
}
