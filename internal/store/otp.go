package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

// OTPStore defines the interface for one-time login code persistence.
type OTPStore interface {
	// Create saves a new login code. Creating a code does not invalidate
	// earlier codes for the same phone number; verification always checks
	// the most recent one.
	Create(ctx context.Context, code *domain.OTPCode) error

	// GetLatestByPhoneNumber retrieves the most recently issued code for
	// the phone number, consumed or not.
	// Returns ErrOTPNotFound if no code was ever issued.
	GetLatestByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.OTPCode, error)

	// MarkConsumed records that the code has been redeemed so it cannot
	// be replayed.
	// Returns ErrOTPNotFound if the code does not exist.
	MarkConsumed(ctx context.Context, id uuid.UUID) error
}
