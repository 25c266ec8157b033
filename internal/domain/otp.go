package domain

import (
	"time"

	"github.com/google/uuid"
)

// OTPCode is a one-time login code sent to a phone number by SMS.
// Only the bcrypt hash of the code is stored.
type OTPCode struct {
	ID          uuid.UUID
	PhoneNumber string
	CodeHash    string
	ExpiresAt   time.Time
	ConsumedAt  *time.Time
	CreatedAt   time.Time
}

// NewOTPCode creates a pending login code for the given phone number.
// codeHash must already be a bcrypt hash of the plaintext code.
func NewOTPCode(phoneNumber, codeHash string, expiresAt time.Time) (*OTPCode, error) {
	if !validateE164(phoneNumber) {
		return nil, ErrInvalidPhoneNumber
	}
	if codeHash == "" {
		return nil, ErrValidation
	}

	now := time.Now().UTC()
	return &OTPCode{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		CodeHash:    codeHash,
		ExpiresAt:   expiresAt,
		CreatedAt:   now,
	}, nil
}

// IsExpired reports whether the code can no longer be redeemed.
func (c *OTPCode) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}

// IsConsumed reports whether the code has already been redeemed.
func (c *OTPCode) IsConsumed() bool {
	return c.ConsumedAt != nil
}
