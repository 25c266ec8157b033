package api

import (
	"log/slog"
	"net/http"

	"github.com/moloke/lightverse/internal/service/practice"
	"github.com/moloke/lightverse/internal/store"
)

// VerseHandler serves the verse catalog and session creation.
type VerseHandler struct {
	verseStore      store.VerseStore
	practiceService practice.PracticeService
	logger          *slog.Logger
}

// NewVerseHandler creates a new VerseHandler.
func NewVerseHandler(
	verseStore store.VerseStore,
	practiceService practice.PracticeService,
	logger *slog.Logger,
) *VerseHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &VerseHandler{
		verseStore:      verseStore,
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "verse_handler")),
	}
}

// ListVerses handles GET /verses.
func (h *VerseHandler) ListVerses(w http.ResponseWriter, r *http.Request) {
	verses, err := h.verseStore.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to list verses")
		return
	}

	out := make([]VerseResponse, 0, len(verses))
	for _, v := range verses {
		out = append(out, verseResponseFrom(v))
	}

	RespondWithJSON(w, r, http.StatusOK, out)
}

// GetVerse handles GET /verses/{id}.
func (h *VerseHandler) GetVerse(w http.ResponseWriter, r *http.Request) {
	verseID, ok := getPathUUID(w, r, h.logger, "id")
	if !ok {
		return
	}

	verse, err := h.verseStore.GetByID(r.Context(), verseID)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to get verse")
		return
	}

	RespondWithJSON(w, r, http.StatusOK, verseResponseFrom(verse))
}

// StartSession handles POST /sessions. Starting a session replaces any
// existing active session for the learner.
func (h *VerseHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(w, r, h.logger)
	if !ok {
		return
	}

	var req StartSessionRequest
	if !DecodeJSON(w, r, h.logger, &req) {
		return
	}

	session, err := h.practiceService.StartSession(r.Context(), userID, req.VerseID)
	if err != nil {
		HandleAPIError(w, r, h.logger, err, "failed to start session")
		return
	}

	h.logger.Info("session started",
		slog.String("user_id", userID.String()),
		slog.String("verse_id", req.VerseID.String()))

	RespondWithJSON(w, r, http.StatusCreated, sessionResponseFrom(session))
}
