package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	// Test valid user creation
	validPhone := "+15551234567"

	user, err := NewUser(validPhone)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.PhoneNumber != validPhone {
		t.Errorf("Expected phone number %s, got %s", validPhone, user.PhoneNumber)
	}

	if user.TotalXP != 0 {
		t.Errorf("Expected zero total XP, got %d", user.TotalXP)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid phone numbers
	_, err = NewUser("")
	if err != ErrEmptyPhoneNumber {
		t.Errorf("Expected error %v, got %v", ErrEmptyPhoneNumber, err)
	}

	_, err = NewUser("5551234567")
	if err != ErrPhoneNumberNotE164 {
		t.Errorf("Expected error %v, got %v", ErrPhoneNumberNotE164, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:          uuid.New(),
		PhoneNumber: "+15551234567",
	}

	// Test valid user
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test invalid phone number
	invalidUser = validUser
	invalidUser.PhoneNumber = ""
	if err := invalidUser.Validate(); err != ErrEmptyPhoneNumber {
		t.Errorf("Expected error %v, got %v", ErrEmptyPhoneNumber, err)
	}

	invalidUser = validUser
	invalidUser.PhoneNumber = "not-a-phone"
	if err := invalidUser.Validate(); err != ErrPhoneNumberNotE164 {
		t.Errorf("Expected error %v, got %v", ErrPhoneNumberNotE164, err)
	}

	// Test negative XP
	invalidUser = validUser
	invalidUser.TotalXP = -1
	if err := invalidUser.Validate(); err != ErrNegativeXP {
		t.Errorf("Expected error %v, got %v", ErrNegativeXP, err)
	}
}

func TestUserIsPaused(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	user := User{ID: uuid.New(), PhoneNumber: "+15551234567"}
	if user.IsPaused(now) {
		t.Error("Expected user with nil PausedUntil not to be paused")
	}

	future := now.Add(24 * time.Hour)
	user.PausedUntil = &future
	if !user.IsPaused(now) {
		t.Error("Expected user paused until tomorrow to be paused")
	}

	past := now.Add(-time.Minute)
	user.PausedUntil = &past
	if user.IsPaused(now) {
		t.Error("Expected user with expired pause not to be paused")
	}
}

func TestValidateE164(t *testing.T) {
	validNumbers := []string{
		"+15551234567",
		"+442071838750",
		"+818012345678",
	}

	invalidNumbers := []string{
		"",
		"15551234567",
		"+05551234567",
		"+1555123",
		"+1555123456789012",
		"+1555abc4567",
	}

	for _, phone := range validNumbers {
		if !validateE164(phone) {
			t.Errorf("Expected phone number %s to be valid", phone)
		}
	}

	for _, phone := range invalidNumbers {
		if validateE164(phone) {
			t.Errorf("Expected phone number %s to be invalid", phone)
		}
	}
}
