package memorize

import (
	"time"

	"github.com/moloke/lightverse/internal/domain"
)

// Progress is the pure result of advancing a session by one accepted
// submission. The caller persists it; when Completed is set the session's
// completed-at timestamp must be recorded.
type Progress struct {
	NextStep  int  `json:"next_step"`
	Completed bool `json:"completed"`
}

// Advance computes the transition for one accepted submission at
// currentStep. Steps advance 1 → 2 → ... → TotalSteps; an accepted
// submission at TotalSteps completes the session. Advancing a step
// outside [1, TotalSteps] is rejected: a completed session has no
// further transitions.
func Advance(currentStep int) (Progress, error) {
	if currentStep < 1 || currentStep > domain.TotalSteps {
		return Progress{}, domain.ErrInvalidStep
	}

	next := currentStep + 1
	if next > domain.TotalSteps {
		return Progress{NextStep: domain.TotalSteps, Completed: true}, nil
	}

	return Progress{NextStep: next}, nil
}

// LedgerUpdate is the pure result of crediting one accepted submission:
// the XP to add and the streak state to persist.
type LedgerUpdate struct {
	XPGain        int       `json:"xp_gain"`
	StreakCount   int       `json:"streak_count"`
	ActivityDate  time.Time `json:"activity_date"`
	StreakChanged bool      `json:"streak_changed"` // false when activity was already recorded today
}

// ApplyStep computes the XP gain and new streak state for one accepted
// submission. XP is XPPerStep plus CompletionBonus when the submission
// completed the session.
//
// The streak rule works on calendar dates only:
//   - no prior record: streak starts at 1 today
//   - last activity today: unchanged (no double-count same day)
//   - last activity exactly yesterday: streak + 1
//   - anything else, including future dates from clock skew: reset to 1
func ApplyStep(today time.Time, prior *domain.Streak, completed bool, params *Params) LedgerUpdate {
	update := LedgerUpdate{
		XPGain:        params.XPPerStep,
		ActivityDate:  domain.DateOnly(today),
		StreakChanged: true,
	}
	if completed {
		update.XPGain += params.CompletionBonus
	}

	if prior == nil {
		update.StreakCount = 1
		return update
	}

	last := domain.DateOnly(prior.LastActivityDate)
	yesterday := update.ActivityDate.AddDate(0, 0, -1)

	switch {
	case last.Equal(update.ActivityDate):
		update.StreakCount = prior.CurrentStreak
		update.ActivityDate = last
		update.StreakChanged = false
	case last.Equal(yesterday):
		update.StreakCount = prior.CurrentStreak + 1
	default:
		update.StreakCount = 1
	}

	return update
}
