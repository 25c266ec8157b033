package domain

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewMessageLog(t *testing.T) {
	userID := uuid.New()
	phone := "+15551234567"
	body := "Trust in the LORD with all your heart"

	entry, err := NewMessageLog(&userID, MessageInbound, phone, body, MessageStatusCorrect, "SM123")

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if entry.UserID == nil || *entry.UserID != userID {
		t.Errorf("Expected user ID %s, got %v", userID, entry.UserID)
	}

	if entry.Direction != MessageInbound {
		t.Errorf("Expected direction %s, got %s", MessageInbound, entry.Direction)
	}

	if entry.Status != MessageStatusCorrect {
		t.Errorf("Expected status %s, got %s", MessageStatusCorrect, entry.Status)
	}

	if entry.ProviderSID != "SM123" {
		t.Errorf("Expected provider SID SM123, got %s", entry.ProviderSID)
	}

	// Unknown senders are logged without a user.
	entry, err = NewMessageLog(nil, MessageInbound, phone, body, MessageStatusUnknownUser, "")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if entry.UserID != nil {
		t.Errorf("Expected nil user ID, got %v", entry.UserID)
	}

	// Test missing phone number
	_, err = NewMessageLog(&userID, MessageOutbound, "", body, MessageStatusSent, "")
	if err != ErrEmptyMessagePhone {
		t.Errorf("Expected error %v, got %v", ErrEmptyMessagePhone, err)
	}
}

func TestMessageLogValidate(t *testing.T) {
	validEntry := MessageLog{
		ID:          uuid.New(),
		Direction:   MessageOutbound,
		PhoneNumber: "+15551234567",
		Body:        "📖 Proverbs 3:5 (step 1/7)",
		Status:      MessageStatusSent,
	}

	if err := validEntry.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidEntry := validEntry
	invalidEntry.ID = uuid.Nil
	if err := invalidEntry.Validate(); err != ErrEmptyMessageLogID {
		t.Errorf("Expected error %v, got %v", ErrEmptyMessageLogID, err)
	}

	invalidEntry = validEntry
	invalidEntry.Direction = "sideways"
	if err := invalidEntry.Validate(); err != ErrInvalidDirection {
		t.Errorf("Expected error %v, got %v", ErrInvalidDirection, err)
	}

	invalidEntry = validEntry
	invalidEntry.Status = "pending"
	if err := invalidEntry.Validate(); err != ErrInvalidMessageStatus {
		t.Errorf("Expected error %v, got %v", ErrInvalidMessageStatus, err)
	}

	// Every defined status passes validation.
	statuses := []MessageStatus{
		MessageStatusCorrect,
		MessageStatusIncorrect,
		MessageStatusUnknownUser,
		MessageStatusNoActiveSession,
		MessageStatusSent,
		MessageStatusFailed,
	}
	for _, status := range statuses {
		entry := validEntry
		entry.Status = status
		if err := entry.Validate(); err != nil {
			t.Errorf("Expected status %s to be valid, got %v", status, err)
		}
	}
}
