package api

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/moloke/lightverse/internal/store"
)

// pauseDuration is how long a pause request suspends daily SMS delivery.
const pauseDuration = 7 * 24 * time.Hour

// ProfileHandler serves the learner's profile and SMS delivery settings.
type ProfileHandler struct {
	userStore   store.UserStore
	streakStore store.StreakStore
	logger      *slog.Logger
	timeFunc    func() time.Time
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(userStore store.UserStore, streakStore store.StreakStore, logger *slog.Logger) *ProfileHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProfileHandler{
		userStore:   userStore,
		streakStore: streakStore,
		logger:      logger.With(slog.String("component", "profile_handler")),
		timeFunc:    func() time.Time { return time.Now().UTC() },
	}
}

// GetProfile handles GET /profile.
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to get user")
		return
	}

	streakCount := 0
	streak, err := h.streakStore.Get(r.Context(), userID)
	if err != nil && !errors.Is(err, store.ErrStreakNotFound) {
		HandleAPIError(w, r, h.logger, err, "failed to get streak")
		return
	}
	if streak != nil {
		streakCount = streak.CurrentStreak
	}

	RespondWithJSON(w, r, http.StatusOK, ProfileResponse{
		ID:          user.ID,
		PhoneNumber: user.PhoneNumber,
		Name:        user.Name,
		TotalXP:     user.TotalXP,
		Streak:      streakCount,
		PausedUntil: user.PausedUntil,
		CreatedAt:   user.CreatedAt,
	})
}

// UpdateProfile handles PATCH /profile.
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	if err := h.userStore.UpdateName(r.Context(), userID, req.Name); err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to update name")
		return
	}

	h.GetProfile(w, r)
}

// PauseDelivery handles POST /profile/pause. Daily SMS prompts are
// suspended for a fixed window; practicing through the web stays available.
func (h *ProfileHandler) PauseDelivery(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	until := h.timeFunc().Add(pauseDuration)
	if err := h.userStore.SetPausedUntil(r.Context(), userID, &until); err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to pause delivery")
		return
	}

	h.logger.Info("sms delivery paused",
		slog.String("user_id", userID.String()),
		slog.Time("until", until))

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"paused_until": until,
	})
}

// ResumeDelivery handles POST /profile/resume.
func (h *ProfileHandler) ResumeDelivery(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	if err := h.userStore.SetPausedUntil(r.Context(), userID, nil); err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to resume delivery")
		return
	}

	h.logger.Info("sms delivery resumed", slog.String("user_id", userID.String()))

	RespondWithJSON(w, r, http.StatusOK, map[string]interface{}{
		"paused_until": nil,
	})
}
