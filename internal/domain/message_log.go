package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// MessageDirection indicates whether an SMS was received or sent.
type MessageDirection string

// Possible message directions
const (
	MessageInbound  MessageDirection = "inbound"
	MessageOutbound MessageDirection = "outbound"
)

// MessageStatus tags a logged SMS with its processing outcome.
type MessageStatus string

// Possible message status values. Correct/incorrect mark validated inbound
// replies; unknown_user and no_active_session are defined outcomes of the
// SMS channel, logged distinctly from validation failures.
const (
	MessageStatusCorrect         MessageStatus = "correct"
	MessageStatusIncorrect       MessageStatus = "incorrect"
	MessageStatusUnknownUser     MessageStatus = "unknown_user"
	MessageStatusNoActiveSession MessageStatus = "no_active_session"
	MessageStatusSent            MessageStatus = "sent"
	MessageStatusFailed          MessageStatus = "failed"
)

// Common validation errors for MessageLog
var (
	ErrEmptyMessageLogID    = errors.New("message log ID cannot be empty")
	ErrEmptyMessagePhone    = errors.New("message log phone number cannot be empty")
	ErrInvalidDirection     = errors.New("invalid message direction")
	ErrInvalidMessageStatus = errors.New("invalid message status")
)

// MessageLog is an immutable, append-only record of one inbound or
// outbound SMS. UserID is nil for messages from unknown senders.
type MessageLog struct {
	ID          uuid.UUID        `json:"id"`
	UserID      *uuid.UUID       `json:"user_id,omitempty"`
	Direction   MessageDirection `json:"direction"`
	PhoneNumber string           `json:"phone_number"`
	Body        string           `json:"body"`
	Status      MessageStatus    `json:"status"`
	ProviderSID string           `json:"provider_sid,omitempty"` // Twilio message SID
	CreatedAt   time.Time        `json:"created_at"`
}

// NewMessageLog creates a new log entry for one SMS.
// Returns an error if validation fails.
func NewMessageLog(
	userID *uuid.UUID,
	direction MessageDirection,
	phoneNumber, body string,
	status MessageStatus,
	providerSID string,
) (*MessageLog, error) {
	entry := &MessageLog{
		ID:          uuid.New(),
		UserID:      userID,
		Direction:   direction,
		PhoneNumber: phoneNumber,
		Body:        body,
		Status:      status,
		ProviderSID: providerSID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the MessageLog has valid data.
// Returns an error if any field fails validation.
func (m *MessageLog) Validate() error {
	if m.ID == uuid.Nil {
		return ErrEmptyMessageLogID
	}

	if m.PhoneNumber == "" {
		return ErrEmptyMessagePhone
	}

	switch m.Direction {
	case MessageInbound, MessageOutbound:
	default:
		return ErrInvalidDirection
	}

	switch m.Status {
	case MessageStatusCorrect, MessageStatusIncorrect,
		MessageStatusUnknownUser, MessageStatusNoActiveSession,
		MessageStatusSent, MessageStatusFailed:
	default:
		return ErrInvalidMessageStatus
	}

	return nil
}
