package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewOTPCode(t *testing.T) {
	phone := "+15551234567"
	hash := "$2a$10$abcdefghijklmnopqrstuv"
	expires := time.Now().UTC().Add(10 * time.Minute)

	code, err := NewOTPCode(phone, hash, expires)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if code.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if code.PhoneNumber != phone {
		t.Errorf("Expected phone number %s, got %s", phone, code.PhoneNumber)
	}

	if code.CodeHash != hash {
		t.Errorf("Expected code hash %s, got %s", hash, code.CodeHash)
	}

	if !code.ExpiresAt.Equal(expires) {
		t.Errorf("Expected expiry %v, got %v", expires, code.ExpiresAt)
	}

	if code.ConsumedAt != nil {
		t.Error("Expected new code to be unconsumed")
	}

	// Test invalid phone number
	_, err = NewOTPCode("5551234567", hash, expires)
	if err != ErrInvalidPhoneNumber {
		t.Errorf("Expected error %v, got %v", ErrInvalidPhoneNumber, err)
	}

	// Test missing hash
	_, err = NewOTPCode(phone, "", expires)
	if err != ErrValidation {
		t.Errorf("Expected error %v, got %v", ErrValidation, err)
	}
}

func TestOTPCodeIsExpired(t *testing.T) {
	expires := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	code := OTPCode{ExpiresAt: expires}

	if code.IsExpired(expires.Add(-time.Second)) {
		t.Error("Expected code not to be expired before its expiry")
	}

	// Expiry instant itself is no longer redeemable.
	if !code.IsExpired(expires) {
		t.Error("Expected code to be expired at its expiry instant")
	}

	if !code.IsExpired(expires.Add(time.Second)) {
		t.Error("Expected code to be expired after its expiry")
	}
}

func TestOTPCodeIsConsumed(t *testing.T) {
	code := OTPCode{}
	if code.IsConsumed() {
		t.Error("Expected fresh code to be unconsumed")
	}

	consumed := time.Now().UTC()
	code.ConsumedAt = &consumed
	if !code.IsConsumed() {
		t.Error("Expected code with ConsumedAt set to be consumed")
	}
}
