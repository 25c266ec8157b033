package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrPhoneNumberExists if the phone number is already taken.
	// Returns validation errors from the domain User if data is invalid.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByPhoneNumber retrieves a user by their phone number. The SMS
	// webhook uses this to identify inbound senders.
	// Returns ErrUserNotFound if the user does not exist.
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*domain.User, error)

	// AddXP atomically increments the user's XP total by the given amount.
	// The increment happens in the database so concurrent credits cannot
	// lose updates. Returns the new total.
	// Returns ErrUserNotFound if the user does not exist.
	AddXP(ctx context.Context, id uuid.UUID, amount int) (int, error)

	// UpdateName sets the user's display name.
	// Returns ErrUserNotFound if the user does not exist.
	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// SetPausedUntil sets or clears the timestamp until which SMS delivery
	// is paused for the user. A nil value resumes delivery.
	// Returns ErrUserNotFound if the user does not exist.
	SetPausedUntil(ctx context.Context, id uuid.UUID, until *time.Time) error
}
