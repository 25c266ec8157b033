package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/mocks"
	"github.com/moloke/lightverse/internal/service/practice"
	"github.com/moloke/lightverse/internal/store"
)

func TestGetPractice(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	sessionID := uuid.New()
	verseID := uuid.New()

	t.Run("renders prefix view by default", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.GetPracticeFn = func(_ context.Context, gotUser uuid.UUID, policy memorize.ClozePolicy) (*practice.PracticeView, error) {
			assert.Equal(t, userID, gotUser)
			assert.Equal(t, memorize.PolicyPrefix, policy)
			return &practice.PracticeView{
				SessionID:  sessionID,
				VerseID:    verseID,
				Reference:  "Philippians 4:13",
				Step:       3,
				TotalSteps: 7,
				Policy:     policy,
			}, nil
		}
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/practice", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetPractice(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var view practice.PracticeView
		decodeResponse(t, rec, &view)
		assert.Equal(t, sessionID, view.SessionID)
		assert.Equal(t, 3, view.Step)
	})

	t.Run("passes through the mask policy", func(t *testing.T) {
		t.Parallel()

		var gotPolicy memorize.ClozePolicy
		svc := &mocks.MockPracticeService{}
		svc.GetPracticeFn = func(_ context.Context, _ uuid.UUID, policy memorize.ClozePolicy) (*practice.PracticeView, error) {
			gotPolicy = policy
			return &practice.PracticeView{Policy: policy}, nil
		}
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/practice?policy=random_mask", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetPractice(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, memorize.PolicyRandomMask, gotPolicy)
	})

	t.Run("rejects an unknown policy", func(t *testing.T) {
		t.Parallel()

		handler := NewPracticeHandler(&mocks.MockPracticeService{}, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/practice?policy=reverse", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetPractice(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("maps a missing session to 404", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.Err = practice.ErrNoActiveSession
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/practice", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetPractice(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("rejects an unauthenticated request", func(t *testing.T) {
		t.Parallel()

		handler := NewPracticeHandler(&mocks.MockPracticeService{}, newTestLogger())

		req := httptest.NewRequest(http.MethodGet, "/practice", nil)
		rec := httptest.NewRecorder()
		handler.GetPractice(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestSubmitBlanks(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	submission := practice.BlankSubmission{
		Step:          4,
		HiddenIndexes: []int{1, 4},
		Answers:       map[int]string{1: "in", 4: "all"},
	}

	t.Run("returns the accepted result", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.SubmitBlanksFn = func(_ context.Context, _ uuid.UUID, got practice.BlankSubmission) (*practice.SubmitResult, error) {
			assert.Equal(t, submission.Step, got.Step)
			assert.Equal(t, submission.Answers, got.Answers)
			return &practice.SubmitResult{
				Accepted:  true,
				Step:      5,
				XPAwarded: 10,
				TotalXP:   60,
				Streak:    3,
			}, nil
		}
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/practice/submit", submission, userID)
		rec := httptest.NewRecorder()
		handler.SubmitBlanks(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var result practice.SubmitResult
		decodeResponse(t, rec, &result)
		assert.True(t, result.Accepted)
		assert.Equal(t, 5, result.Step)
		assert.Equal(t, 60, result.TotalXP)
	})

	t.Run("returns 200 with a pending flag on a partial credit", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.SubmitBlanksFn = func(_ context.Context, _ uuid.UUID, _ practice.BlankSubmission) (*practice.SubmitResult, error) {
			result := &practice.SubmitResult{Accepted: true, Step: 5}
			return result, fmt.Errorf("%w: xp write failed", practice.ErrProgressPartial)
		}
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/practice/submit", submission, userID)
		rec := httptest.NewRecorder()
		handler.SubmitBlanks(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Accepted        bool `json:"accepted"`
			Step            int  `json:"step"`
			ProgressPending bool `json:"progress_pending"`
		}
		decodeResponse(t, rec, &body)
		assert.True(t, body.Accepted)
		assert.Equal(t, 5, body.Step)
		assert.True(t, body.ProgressPending)
	})

	t.Run("maps a concurrent advance to 409", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.Err = store.ErrStaleStep
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/practice/submit", submission, userID)
		rec := httptest.NewRecorder()
		handler.SubmitBlanks(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("maps a stale client step to 409", func(t *testing.T) {
		t.Parallel()

		svc := &mocks.MockPracticeService{}
		svc.Err = practice.ErrStepMismatch
		handler := NewPracticeHandler(svc, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/practice/submit", submission, userID)
		rec := httptest.NewRecorder()
		handler.SubmitBlanks(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("rejects a submission without answers", func(t *testing.T) {
		t.Parallel()

		handler := NewPracticeHandler(&mocks.MockPracticeService{}, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/practice/submit",
			map[string]interface{}{"step": 4}, userID)
		rec := httptest.NewRecorder()
		handler.SubmitBlanks(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
