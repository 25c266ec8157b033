package memorize

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/moloke/lightverse/internal/domain"
)

func TestAdvance(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		currentStep   int
		wantNext      int
		wantCompleted bool
		wantErr       error
	}{
		{"step 1 advances to 2", 1, 2, false, nil},
		{"step 6 advances to 7", 6, 7, false, nil},
		{"step 7 completes", 7, 7, true, nil},
		{"step 0 rejected", 0, 0, false, domain.ErrInvalidStep},
		{"step 8 rejected, no session beyond the last step", 8, 0, false, domain.ErrInvalidStep},
		{"negative step rejected", -3, 0, false, domain.ErrInvalidStep},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			progress, err := Advance(tc.currentStep)

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("error = %v, want %v", err, tc.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if progress.NextStep != tc.wantNext {
				t.Errorf("next step = %d, want %d", progress.NextStep, tc.wantNext)
			}
			if progress.Completed != tc.wantCompleted {
				t.Errorf("completed = %v, want %v", progress.Completed, tc.wantCompleted)
			}
		})
	}
}

func TestApplyStepXP(t *testing.T) {
	t.Parallel()

	params := DefaultParams()
	today := time.Date(2024, 6, 15, 14, 30, 0, 0, time.UTC)

	plain := ApplyStep(today, nil, false, params)
	if plain.XPGain != 10 {
		t.Errorf("step XP = %d, want 10", plain.XPGain)
	}

	completing := ApplyStep(today, nil, true, params)
	if completing.XPGain != 110 {
		t.Errorf("completion XP = %d, want 110", completing.XPGain)
	}
}

func TestApplyStepStreakRules(t *testing.T) {
	t.Parallel()

	params := DefaultParams()
	today := time.Date(2024, 6, 15, 23, 50, 0, 0, time.UTC)
	userID := uuid.New()

	streakOn := func(day time.Time, count int) *domain.Streak {
		return &domain.Streak{
			UserID:           userID,
			CurrentStreak:    count,
			LastActivityDate: day,
		}
	}

	testCases := []struct {
		name        string
		prior       *domain.Streak
		wantCount   int
		wantChanged bool
	}{
		{
			name:        "no prior record initializes to 1",
			prior:       nil,
			wantCount:   1,
			wantChanged: true,
		},
		{
			name:        "activity earlier today leaves streak unchanged",
			prior:       streakOn(time.Date(2024, 6, 15, 0, 15, 0, 0, time.UTC), 4),
			wantCount:   4,
			wantChanged: false,
		},
		{
			name:        "activity yesterday increments by exactly one",
			prior:       streakOn(time.Date(2024, 6, 14, 8, 0, 0, 0, time.UTC), 4),
			wantCount:   5,
			wantChanged: true,
		},
		{
			name:        "two-day gap resets to 1",
			prior:       streakOn(time.Date(2024, 6, 13, 8, 0, 0, 0, time.UTC), 9),
			wantCount:   1,
			wantChanged: true,
		},
		{
			name:        "future date from clock skew resets to 1",
			prior:       streakOn(time.Date(2024, 6, 17, 8, 0, 0, 0, time.UTC), 9),
			wantCount:   1,
			wantChanged: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			update := ApplyStep(today, tc.prior, false, params)

			if update.StreakCount != tc.wantCount {
				t.Errorf("streak count = %d, want %d", update.StreakCount, tc.wantCount)
			}
			if update.StreakChanged != tc.wantChanged {
				t.Errorf("streak changed = %v, want %v", update.StreakChanged, tc.wantChanged)
			}
		})
	}
}

func TestApplyStepUsesCalendarDates(t *testing.T) {
	t.Parallel()

	params := DefaultParams()
	userID := uuid.New()

	// Activity at 23:59 yesterday followed by a submission at 00:01 today
	// is consecutive-day activity, not a same-day repeat.
	prior := &domain.Streak{
		UserID:           userID,
		CurrentStreak:    2,
		LastActivityDate: time.Date(2024, 6, 14, 23, 59, 0, 0, time.UTC),
	}
	update := ApplyStep(time.Date(2024, 6, 15, 0, 1, 0, 0, time.UTC), prior, false, params)

	if update.StreakCount != 3 {
		t.Errorf("streak count = %d, want 3", update.StreakCount)
	}
	if !update.ActivityDate.Equal(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("activity date = %v, want midnight UTC", update.ActivityDate)
	}
}
