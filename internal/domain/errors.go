// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidPhoneNumber is returned when a phone number is not in E.164 form.
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")

	// ErrEmptyContent is returned when required content is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrInvalidStep is returned when a session step is outside [1, TotalSteps].
	ErrInvalidStep = errors.New("invalid session step")

	// ErrSessionCompleted is returned when an operation requires an active
	// session but the session has already been completed.
	ErrSessionCompleted = errors.New("session already completed")

	// ErrUnauthorized is returned when an operation is not permitted.
	ErrUnauthorized = errors.New("unauthorized operation")
)
