package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/api/middleware"
	"github.com/moloke/lightverse/internal/api/shared"
	"github.com/moloke/lightverse/internal/redact"
)

// validate is a shared validator instance used by all handlers.
var validate = validator.New()

// DecodeJSON decodes the request body into the given struct and validates it.
// On failure it writes an error response and returns false; the handler should
// return immediately.
func DecodeJSON(w http.ResponseWriter, r *http.Request, logger *slog.Logger, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		logger.Debug("failed to decode request body", slog.String("error", err.Error()))
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}

	if err := validate.Struct(v); err != nil {
		logger.Debug("request validation failed", slog.String("error", err.Error()))
		RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}

	return true
}

// RespondWithJSON writes a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	shared.RespondWithJSON(w, r, status, data)
}

// RespondWithError writes a standardized JSON error response.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string) {
	shared.RespondWithError(w, r, status, message)
}

// HandleAPIError maps an internal error to an HTTP status and safe message,
// logs the full error server-side, and writes the response. logMsg describes
// the operation that failed.
func HandleAPIError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error, logMsg string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	logger.Debug(logMsg, slog.String("error", redact.Error(err)))
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}

// getUserIDFromContext extracts the authenticated user ID placed in the
// request context by the auth middleware. Writes a 401 response and returns
// false if the ID is missing.
func getUserIDFromContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		logger.Warn("user ID missing from authenticated request context")
		RespondWithError(w, r, http.StatusUnauthorized, "Unauthorized")
		return uuid.Nil, false
	}
	return userID, true
}

// getPathUUID parses a UUID path parameter. Writes a 400 response and returns
// false if the parameter is missing or malformed.
func getPathUUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, param string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, param)
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Debug("invalid UUID path parameter",
			slog.String("param", param),
			slog.String("error", err.Error()))
		RespondWithError(w, r, http.StatusBadRequest, "Invalid ID format")
		return uuid.Nil, false
	}
	return id, true
}
