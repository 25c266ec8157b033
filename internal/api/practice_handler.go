package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/redact"
	"github.com/moloke/lightverse/internal/service/practice"
)

// PracticeHandler serves the interactive practice cycle: the rendered
// cloze view and blank submissions.
type PracticeHandler struct {
	practiceService practice.PracticeService
	logger          *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(practiceService practice.PracticeService, logger *slog.Logger) *PracticeHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "practice_handler")),
	}
}

// GetPractice handles GET /practice. The policy query parameter selects
// the render: "prefix" (default) or "random_mask".
func (h *PracticeHandler) GetPractice(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	policy := memorize.PolicyPrefix
	switch r.URL.Query().Get("policy") {
	case "", string(memorize.PolicyPrefix):
	case string(memorize.PolicyRandomMask):
		policy = memorize.PolicyRandomMask
	default:
		RespondWithError(w, r, http.StatusBadRequest, "Invalid policy")
		return
	}

	view, err := h.practiceService.GetPractice(r.Context(), userID, policy)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to render practice view")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, view)
}

// SubmitBlanks handles POST /practice/submit.
//
// An accepted answer whose XP or streak write failed still advanced the
// session, so the result is returned with 200 and a flag rather than an
// error status; retrying the submission would hit a step conflict.
func (h *PracticeHandler) SubmitBlanks(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req practice.BlankSubmission
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	result, err := h.practiceService.SubmitBlanks(r.Context(), userID, req)
	if err != nil {
		if errors.Is(err, practice.ErrProgressPartial) && result != nil {
			h.logger.Error("progress credit incomplete after accepted submission",
				slog.String("user_id", userID.String()),
				slog.String("error", redact.Error(err)))
			RespondWithJSON(w, r, http.StatusOK, struct {
				*practice.SubmitResult
				ProgressPending bool `json:"progress_pending"`
			}{result, true})
			return
		}
		HandleAPIError(w, r, h.logger, err, "failed to process submission")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, result)
}
