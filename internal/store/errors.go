package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is a generic version of the entity-specific not found errors
	// (e.g., ErrUserNotFound, ErrSessionNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity (e.g., a user with the same phone number).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrStaleStep is returned when a conditional session advance finds the
	// session no longer at the expected step: a concurrent submission from
	// the other channel won the race. Retryable; the caller must refetch
	// the session and re-validate against the fresh state.
	ErrStaleStep = errors.New("session step changed concurrently")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or when an operation within a transaction fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	// ErrUserNotFound indicates that the requested user does not exist in the store.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrVerseNotFound indicates that the requested verse does not exist in the store.
	ErrVerseNotFound = fmt.Errorf("%w: verse", ErrNotFound)

	// ErrSessionNotFound indicates that the requested session does not exist
	// in the store, or that a learner has no active session.
	ErrSessionNotFound = fmt.Errorf("%w: session", ErrNotFound)

	// ErrStreakNotFound indicates that the learner has no streak record yet.
	ErrStreakNotFound = fmt.Errorf("%w: streak", ErrNotFound)

	// ErrOTPNotFound indicates that no login code exists for the phone number.
	ErrOTPNotFound = fmt.Errorf("%w: login code", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrPhoneNumberExists indicates that a user with the given phone number
	// already exists.
	ErrPhoneNumberExists = fmt.Errorf("%w: phone number", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
// This includes the generic ErrNotFound and all entity-specific not found errors.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflictError checks if the error is a retryable optimistic-concurrency
// conflict on a session advance.
func IsConflictError(err error) bool {
	return errors.Is(err, ErrStaleStep)
}
