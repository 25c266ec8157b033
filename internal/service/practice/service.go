// Package practice orchestrates the memorization cycle: it connects the
// pure engine in domain/memorize to the stores and the SMS transport,
// and owns the crediting of accepted submissions (step advance, XP,
// streak).
package practice

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/domain/memorize"
)

// BlankSubmission is one per-blank answer set from the interactive UI.
// The hidden indexes come from the cloze render the learner answered;
// the server validates against exactly that mask, not a fresh one.
type BlankSubmission struct {
	// Step the learner believes the session is on. A mismatch with the
	// stored session step is a stale client and yields ErrStepMismatch.
	Step int `json:"step" validate:"required,min=1"`

	// HiddenIndexes are the word positions that were blanked in the
	// render being answered.
	HiddenIndexes []int `json:"hidden_indexes" validate:"required"`

	// Answers maps hidden word position to the learner's entry.
	Answers map[int]string `json:"answers" validate:"required"`
}

// BlankSlot is one word position in a mask render as exposed to clients.
// Hidden positions carry an empty word so answers are never leaked.
type BlankSlot struct {
	Index  int    `json:"index"`
	Word   string `json:"word,omitempty"`
	Hidden bool   `json:"hidden"`
}

// PracticeView is the current practice state rendered for one learner.
type PracticeView struct {
	SessionID  uuid.UUID            `json:"session_id"`
	VerseID    uuid.UUID            `json:"verse_id"`
	Reference  string               `json:"reference"`
	Step       int                  `json:"step"`
	TotalSteps int                  `json:"total_steps"`
	Policy     memorize.ClozePolicy `json:"policy"`

	// Prefix is set under the prefix-reveal policy.
	Prefix *memorize.ClozeResult `json:"prefix,omitempty"`

	// Slots is set under the random-mask policy.
	Slots []BlankSlot `json:"slots,omitempty"`
}

// SubmitResult is the outcome of one submission, accepted or not.
type SubmitResult struct {
	Accepted bool `json:"accepted"`

	// BlankResults reports per-blank correctness for rejected or partial
	// per-blank submissions so the UI can highlight individual fields.
	BlankResults map[int]bool `json:"blank_results,omitempty"`

	// Hint is the retry hint, present only when the submission was rejected.
	Hint string `json:"hint,omitempty"`

	Step      int  `json:"step"`
	Completed bool `json:"completed"`

	XPAwarded int `json:"xp_awarded"`
	TotalXP   int `json:"total_xp"`
	Streak    int `json:"streak"`
}

// InboundResult is the outcome of one inbound SMS: how it was classified
// and the reply text sent back to the sender.
type InboundResult struct {
	Status domain.MessageStatus
	Reply  string
	Submit *SubmitResult
}

// PracticeService exposes the memorization operations used by the API
// layer and the SMS webhook.
type PracticeService interface {
	// StartSession makes verseID the learner's single active focus. Any
	// existing active session is deleted and the new one created in the
	// same transaction, starting at step 1.
	// Returns ErrVerseNotFound if the verse does not exist.
	StartSession(ctx context.Context, userID, verseID uuid.UUID) (*domain.VerseSession, error)

	// GetPractice renders the learner's active session at its current
	// step under the requested policy.
	// Returns ErrNoActiveSession if the learner has no active session.
	GetPractice(
		ctx context.Context,
		userID uuid.UUID,
		policy memorize.ClozePolicy,
	) (*PracticeView, error)

	// SubmitBlanks validates a per-blank submission from the interactive
	// UI and, if all blanks match, credits the step.
	// Returns ErrNoActiveSession, ErrStepMismatch for a stale client,
	// store.ErrStaleStep when a concurrent submission won the race, and
	// ErrProgressPartial when the step advanced but the XP/streak write
	// failed (the returned SubmitResult is still valid in that case).
	SubmitBlanks(
		ctx context.Context,
		userID uuid.UUID,
		submission BlankSubmission,
	) (*SubmitResult, error)

	// HandleInboundSMS processes one inbound message from the SMS
	// webhook: identify the sender, fuzzy-validate the reply against the
	// active verse, credit progress on acceptance, log both directions,
	// and send the reply text. The returned InboundResult is non-nil
	// whenever a reply was determined, even alongside ErrProgressPartial.
	HandleInboundSMS(ctx context.Context, from, body, providerSID string) (*InboundResult, error)
}

// Common error types for PracticeService
var (
	// ErrNoActiveSession indicates that the learner has no session in progress.
	ErrNoActiveSession = errors.New("no active session")

	// ErrVerseNotFound indicates that the requested verse does not exist.
	ErrVerseNotFound = errors.New("verse not found")

	// ErrStepMismatch indicates the submission was made against a step the
	// session is no longer on. The client must refetch the practice view.
	ErrStepMismatch = errors.New("submission step does not match session step")

	// ErrInvalidSubmission indicates a malformed submission (e.g. a hidden
	// index outside the verse).
	ErrInvalidSubmission = errors.New("invalid submission")

	// ErrProgressPartial indicates the session step was advanced but the
	// XP/streak ledger write failed. The step transition is already
	// visible; the ledger needs reconciliation, not a retry of the answer.
	ErrProgressPartial = errors.New("step recorded but ledger update failed")
)

// ServiceError wraps errors from the practice service with operation
// context, so consumers can differentiate failures with errors.As
// instead of string matching.
type ServiceError struct {
	// Operation is the operation that failed (e.g., "start_session")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}
