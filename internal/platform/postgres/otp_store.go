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

// PostgresOTPStore implements the store.OTPStore interface using PostgreSQL.
type PostgresOTPStore struct {
	db     store.DBTX
	logger *slog.Logger
}

var _ store.OTPStore = (*PostgresOTPStore)(nil)

// NewPostgresOTPStore creates a new PostgreSQL-backed OTP store.
func NewPostgresOTPStore(db store.DBTX, log *slog.Logger) *PostgresOTPStore {
	if db == nil {
		panic("db is required for PostgresOTPStore")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PostgresOTPStore{
		db:     db,
		logger: log.With(slog.String("component", "otp_store")),
	}
}

// Create implements store.OTPStore.Create.
func (s *PostgresOTPStore) Create(ctx context.Context, code *domain.OTPCode) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO otp_codes (id, phone_number, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := s.db.ExecContext(ctx, query,
		code.ID, code.PhoneNumber, code.CodeHash, code.ExpiresAt, code.CreatedAt)
	if err != nil {
		log.Error("failed to create login code",
			slog.String("error", err.Error()),
			slog.String("code_id", code.ID.String()))
		return fmt.Errorf("failed to create login code: %w", MapError(err))
	}
	return nil
}

// GetLatestByPhoneNumber implements store.OTPStore.GetLatestByPhoneNumber.
func (s *PostgresOTPStore) GetLatestByPhoneNumber(
	ctx context.Context,
	phoneNumber string,
) (*domain.OTPCode, error) {
	query := `
		SELECT id, phone_number, code_hash, expires_at, consumed_at, created_at
		FROM otp_codes
		WHERE phone_number = $1
		ORDER BY created_at DESC
		LIMIT 1`

	var code domain.OTPCode
	err := s.db.QueryRowContext(ctx, query, phoneNumber).Scan(
		&code.ID,
		&code.PhoneNumber,
		&code.CodeHash,
		&code.ExpiresAt,
		&code.ConsumedAt,
		&code.CreatedAt,
	)
	if err != nil {
		if store.IsNotFoundError(MapError(err)) {
			return nil, store.ErrOTPNotFound
		}
		return nil, fmt.Errorf("failed to get login code: %w", MapError(err))
	}
	return &code, nil
}

// MarkConsumed implements store.OTPStore.MarkConsumed.
func (s *PostgresOTPStore) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE otp_codes SET consumed_at = $2 WHERE id = $1 AND consumed_at IS NULL`
	result, err := s.db.ExecContext(ctx, query, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to consume login code: %w", MapError(err))
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check consumed rows: %w", err)
	}
	if rows == 0 {
		return store.ErrOTPNotFound
	}
	return nil
}

// WithTx returns a copy of the store bound to the given transaction.
func (s *PostgresOTPStore) WithTx(db store.DBTX) *PostgresOTPStore {
	return &PostgresOTPStore{db: db, logger: s.logger}
}
