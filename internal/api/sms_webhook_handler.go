package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/moloke/lightverse/internal/redact"
	"github.com/moloke/lightverse/internal/service/practice"
)

// SMSWebhookHandler receives inbound message callbacks from the SMS
// provider. The provider retries on non-2xx responses, so processing
// failures after the message was handled still return 200.
type SMSWebhookHandler struct {
	practiceService practice.PracticeService
	logger          *slog.Logger
}

// NewSMSWebhookHandler creates a new SMSWebhookHandler.
func NewSMSWebhookHandler(practiceService practice.PracticeService, logger *slog.Logger) *SMSWebhookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMSWebhookHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "sms_webhook_handler")),
	}
}

// HandleInbound handles POST /webhooks/sms. The provider posts
// form-encoded From, Body, and MessageSid fields.
func (h *SMSWebhookHandler) HandleInbound(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.logger.Debug("malformed webhook payload", slog.String("error", err.Error()))
		RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	from := r.PostFormValue("From")
	body := r.PostFormValue("Body")
	messageSID := r.PostFormValue("MessageSid")

	if from == "" || body == "" {
		RespondWithError(w, r, http.StatusBadRequest, "Missing required fields")
		return
	}

	result, err := h.practiceService.HandleInboundSMS(r.Context(), from, body, messageSID)
	if err != nil {
		// A partial credit still produced and sent a reply; acknowledge so
		// the provider does not redeliver the message.
		if errors.Is(err, practice.ErrProgressPartial) && result != nil {
			h.logger.Error("progress credit incomplete for inbound sms",
				slog.String("message_sid", messageSID),
				slog.String("error", redact.Error(err)))
		} else {
			h.logger.Error("failed to process inbound sms",
				slog.String("message_sid", messageSID),
				slog.String("error", redact.Error(err)))
			RespondWithError(w, r, http.StatusInternalServerError, "Processing failed")
			return
		}
	}

	RespondWithJSON(w, r, http.StatusOK, map[string]string{
		"status": string(result.Status),
	})
}
