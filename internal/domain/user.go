package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User
var (
	ErrEmptyUserID        = errors.New("user ID cannot be empty")
	ErrEmptyPhoneNumber   = errors.New("phone number cannot be empty")
	ErrPhoneNumberNotE164 = errors.New("phone number must be in E.164 format (e.g. +15551234567)")
	ErrNegativeXP         = errors.New("total XP cannot be negative")
)

// User represents a registered learner identified by phone number.
// XP accumulates monotonically as memorization steps are accepted.
type User struct {
	ID          uuid.UUID  `json:"id"`
	PhoneNumber string     `json:"phone_number"`
	Name        string     `json:"name,omitempty"`
	TotalXP     int        `json:"total_xp"`
	PausedUntil *time.Time `json:"paused_until,omitempty"` // SMS delivery paused while set and in the future
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// NewUser creates a new User with the given phone number.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. Returns an error if validation fails.
func NewUser(phoneNumber string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:          uuid.New(),
		PhoneNumber: phoneNumber,
		TotalXP:     0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.PhoneNumber == "" {
		return ErrEmptyPhoneNumber
	}

	if !validateE164(u.PhoneNumber) {
		return ErrPhoneNumberNotE164
	}

	if u.TotalXP < 0 {
		return ErrNegativeXP
	}

	return nil
}

// IsPaused reports whether SMS delivery is paused for the user at the given time.
func (u *User) IsPaused(now time.Time) bool {
	return u.PausedUntil != nil && u.PausedUntil.After(now)
}

// validateE164 performs basic validation of E.164 phone number format:
// a leading '+' followed by 8 to 15 digits, the first of which is non-zero.
func validateE164(phone string) bool {
	if len(phone) < 9 || len(phone) > 16 {
		return false
	}

	if phone[0] != '+' {
		return false
	}

	for i, c := range phone[1:] {
		if c < '0' || c > '9' {
			return false
		}
		if i == 0 && c == '0' {
			return false
		}
	}

	return true
}
