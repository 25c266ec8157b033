package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewStreak(t *testing.T) {
	userID := uuid.New()
	activity := time.Date(2026, 3, 10, 17, 45, 12, 0, time.UTC)

	streak, err := NewStreak(userID, activity)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if streak.UserID != userID {
		t.Errorf("Expected user ID %s, got %s", userID, streak.UserID)
	}

	if streak.CurrentStreak != 1 {
		t.Errorf("Expected streak count 1, got %d", streak.CurrentStreak)
	}

	wantDate := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !streak.LastActivityDate.Equal(wantDate) {
		t.Errorf("Expected activity date %v, got %v", wantDate, streak.LastActivityDate)
	}

	// Test invalid user ID
	_, err = NewStreak(uuid.Nil, activity)
	if err != ErrEmptyStreakUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStreakUserID, err)
	}
}

func TestStreakValidate(t *testing.T) {
	validStreak := Streak{
		UserID:        uuid.New(),
		CurrentStreak: 5,
	}

	if err := validStreak.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	invalidStreak := validStreak
	invalidStreak.UserID = uuid.Nil
	if err := invalidStreak.Validate(); err != ErrEmptyStreakUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyStreakUserID, err)
	}

	invalidStreak = validStreak
	invalidStreak.CurrentStreak = 0
	if err := invalidStreak.Validate(); err != ErrInvalidStreak {
		t.Errorf("Expected error %v, got %v", ErrInvalidStreak, err)
	}
}

func TestDateOnly(t *testing.T) {
	// Time-of-day is dropped.
	got := DateOnly(time.Date(2026, 3, 10, 23, 59, 59, 999, time.UTC))
	want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}

	// Non-UTC times are converted before truncation.
	late := time.Date(2026, 3, 10, 22, 0, 0, 0, time.FixedZone("ahead", 5*3600))
	got = DateOnly(late)
	want = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}
