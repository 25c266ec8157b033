package api

import (
	"log/slog"
	"net/http"

	"github.com/moloke/lightverse/internal/service/auth"
)

// AuthHandler handles the SMS login flow: code request, code verification,
// and token refresh.
type AuthHandler struct {
	otpService *auth.OTPService
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(otpService *auth.OTPService, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		otpService: otpService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// RequestCode handles POST /auth/otp/request.
// It always responds 200 on success so callers cannot probe which phone
// numbers are registered.
func (h *AuthHandler) RequestCode(w http.ResponseWriter, r *http.Request) {
	var req RequestCodeRequest
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.otpService.RequestCode(r.Context(), req.PhoneNumber); err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to send login code")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"message": "Code sent",
	})
}

// VerifyCode handles POST /auth/otp/verify.
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req VerifyCodeRequest
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	pair, err := h.otpService.VerifyCode(r.Context(), req.PhoneNumber, req.Code)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to verify login code")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:       pair.UserID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		IsNewUser:    pair.IsNewUser,
	})
}

// RefreshToken handles POST /auth/refresh.
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req RefreshTokenRequest
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	pair, err := h.otpService.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to refresh token")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, AuthResponse{
		UserID:       pair.UserID,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}
