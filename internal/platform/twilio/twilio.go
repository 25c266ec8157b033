// Package twilio implements the outbound SMS transport against the
// Twilio Messages REST API. The engine never calls this directly; the
// practice service and the daily job send through the MessageSender
// interface so tests can substitute a mock transport.
package twilio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/moloke/lightverse/internal/config"
	"github.com/moloke/lightverse/internal/platform/logger"
)

// defaultBaseURL is the Twilio API endpoint. Overridable for tests.
const defaultBaseURL = "https://api.twilio.com"

// Common transport errors.
var (
	// ErrNotConfigured is returned when the client is missing credentials.
	ErrNotConfigured = errors.New("twilio transport is not configured")

	// ErrSendFailed is returned when Twilio rejects or fails a send.
	// The wrapped error carries the HTTP status and response body.
	ErrSendFailed = errors.New("failed to send SMS")
)

// SendResult is the provider's acknowledgement of one outbound message.
type SendResult struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// MessageSender sends one SMS. Implemented by Client in production and
// by mocks in tests.
type MessageSender interface {
	Send(ctx context.Context, to, body string) (*SendResult, error)
}

// Client is the production Twilio REST client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accountSID string
	authToken  string
	from       string
	logger     *slog.Logger
}

// Ensure Client implements MessageSender.
var _ MessageSender = (*Client)(nil)

// NewClient creates a Twilio client from configuration.
// If logger is nil, a default logger will be used.
func NewClient(cfg config.TwilioConfig, logger *slog.Logger) (*Client, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.PhoneNumber == "" {
		return nil, ErrNotConfigured
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    defaultBaseURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.PhoneNumber,
		logger:     logger.With(slog.String("component", "twilio_client")),
	}, nil
}

// WithBaseURL points the client at a different API host. Tests use this
// with httptest servers.
func (c *Client) WithBaseURL(baseURL string) *Client {
	clone := *c
	clone.baseURL = strings.TrimRight(baseURL, "/")
	return &clone
}

// Send implements MessageSender. It posts one message to the Twilio
// Messages endpoint and returns the provider SID and delivery status.
func (c *Client) Send(ctx context.Context, to, body string) (*SendResult, error) {
	log := logger.FromContextOrDefault(ctx, c.logger)

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		endpoint,
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("twilio request failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The phone number is logged, never the message body.
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		log.Error("twilio rejected message",
			slog.Int("status_code", resp.StatusCode),
			slog.String("to", to))
		return nil, fmt.Errorf("%w: status %d: %s", ErrSendFailed, resp.StatusCode, respBody)
	}

	var result SendResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode twilio response: %w", err)
	}

	log.Debug("SMS sent",
		slog.String("to", to),
		slog.String("sid", result.SID),
		slog.String("status", result.Status))
	return &result, nil
}
