package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/service/auth"
	"github.com/moloke/lightverse/internal/service/practice"
	"github.com/moloke/lightverse/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrExpiredCode),
		errors.Is(err, auth.ErrCodeConsumed),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrVerseNotFound),
		errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, practice.ErrVerseNotFound),
		errors.Is(err, practice.ErrNoActiveSession):
		return http.StatusNotFound

	// Conflict errors: concurrent submissions and stale clients must
	// refetch, duplicate signups must not retry
	case errors.Is(err, store.ErrStaleStep),
		errors.Is(err, practice.ErrStepMismatch),
		errors.Is(err, store.ErrPhoneNumberExists):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, practice.ErrInvalidSubmission),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidPhoneNumber),
		errors.Is(err, domain.ErrInvalidStep):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return "Invalid token"

	case errors.Is(err, auth.ErrInvalidRefreshToken),
		errors.Is(err, auth.ErrExpiredRefreshToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid refresh token"

	case errors.Is(err, auth.ErrInvalidCode),
		errors.Is(err, auth.ErrExpiredCode),
		errors.Is(err, auth.ErrCodeConsumed):
		return "Invalid or expired code"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	// Not found errors
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrVerseNotFound),
		errors.Is(err, practice.ErrVerseNotFound):
		return "Verse not found"

	case errors.Is(err, store.ErrSessionNotFound),
		errors.Is(err, practice.ErrNoActiveSession):
		return "No active session"

	// Conflicts: a generic retry message, internal state stays internal
	case errors.Is(err, store.ErrStaleStep),
		errors.Is(err, practice.ErrStepMismatch):
		return "Session state changed, please refresh and try again"

	case errors.Is(err, store.ErrPhoneNumberExists):
		return "Phone number already registered"

	// Bad request errors
	case errors.Is(err, practice.ErrInvalidSubmission):
		return "Invalid submission"

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid request data"

	case errors.Is(err, domain.ErrInvalidPhoneNumber):
		return "Invalid phone number"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	errMsg := err.Error()

	if strings.Contains(errMsg, "Field validation") {
		// Example format: "Key: 'VerifyCodeRequest.Code' Error:Field validation
		// for 'Code' failed on the 'len' tag"
		parts := strings.Split(errMsg, "Error:")
		if len(parts) >= 2 {
			fieldParts := strings.Split(parts[1], "'")
			if len(fieldParts) >= 3 {
				field := fieldParts[1]
				var tag string
				if len(fieldParts) >= 5 {
					tag = fieldParts[3]
				}

				if tag != "" {
					return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(tag))
				}
				return fmt.Sprintf("Invalid %s", field)
			}
		}
	}

	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "e164":
		return "invalid phone number format"
	case "len":
		return "wrong length"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}
