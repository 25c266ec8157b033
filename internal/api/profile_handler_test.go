package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/mocks"
	"github.com/moloke/lightverse/internal/store"
)

func testUser(userID uuid.UUID) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:          userID,
		PhoneNumber: "+15551234567",
		Name:        "Dami",
		TotalXP:     120,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestGetProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("includes xp and streak", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{User: testUser(userID)}
		streaks := &mocks.MockStreakStore{
			Streak: &domain.Streak{
				UserID:           userID,
				CurrentStreak:    6,
				LastActivityDate: domain.DateOnly(time.Now().UTC()),
			},
		}
		handler := NewProfileHandler(users, streaks, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/profile", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got ProfileResponse
		decodeResponse(t, rec, &got)
		assert.Equal(t, userID, got.ID)
		assert.Equal(t, "Dami", got.Name)
		assert.Equal(t, 120, got.TotalXP)
		assert.Equal(t, 6, got.Streak)
	})

	t.Run("reports zero streak before any activity", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{User: testUser(userID)}
		streaks := &mocks.MockStreakStore{
			GetFn: func(_ context.Context, _ uuid.UUID) (*domain.Streak, error) {
				return nil, store.ErrStreakNotFound
			},
		}
		handler := NewProfileHandler(users, streaks, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/profile", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var got ProfileResponse
		decodeResponse(t, rec, &got)
		assert.Equal(t, 0, got.Streak)
	})

	t.Run("maps a missing user to 404", func(t *testing.T) {
		t.Parallel()

		users := &mocks.MockUserStore{
			GetByIDFn: func(_ context.Context, _ uuid.UUID) (*domain.User, error) {
				return nil, store.ErrUserNotFound
			},
		}
		handler := NewProfileHandler(users, &mocks.MockStreakStore{}, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodGet, "/profile", nil, userID)
		rec := httptest.NewRecorder()
		handler.GetProfile(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateProfile(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	t.Run("updates the display name", func(t *testing.T) {
		t.Parallel()

		var gotName string
		user := testUser(userID)
		users := &mocks.MockUserStore{
			User: user,
			UpdateNameFn: func(_ context.Context, id uuid.UUID, name string) error {
				assert.Equal(t, userID, id)
				gotName = name
				user.Name = name
				return nil
			},
		}
		streaks := &mocks.MockStreakStore{
			GetFn: func(_ context.Context, _ uuid.UUID) (*domain.Streak, error) {
				return nil, store.ErrStreakNotFound
			},
		}
		handler := NewProfileHandler(users, streaks, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPatch, "/profile",
			UpdateProfileRequest{Name: "Tola"}, userID)
		rec := httptest.NewRecorder()
		handler.UpdateProfile(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Tola", gotName)

		var got ProfileResponse
		decodeResponse(t, rec, &got)
		assert.Equal(t, "Tola", got.Name)
	})

	t.Run("rejects an empty name", func(t *testing.T) {
		t.Parallel()

		handler := NewProfileHandler(&mocks.MockUserStore{}, &mocks.MockStreakStore{}, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPatch, "/profile",
			UpdateProfileRequest{Name: ""}, userID)
		rec := httptest.NewRecorder()
		handler.UpdateProfile(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPauseAndResumeDelivery(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("pause sets a seven day window", func(t *testing.T) {
		t.Parallel()

		var gotUntil *time.Time
		users := &mocks.MockUserStore{
			SetPausedUntilFn: func(_ context.Context, id uuid.UUID, until *time.Time) error {
				assert.Equal(t, userID, id)
				gotUntil = until
				return nil
			},
		}
		handler := NewProfileHandler(users, &mocks.MockStreakStore{}, newTestLogger())
		handler.timeFunc = func() time.Time { return now }

		req := newAuthenticatedRequest(t, http.MethodPost, "/profile/pause", nil, userID)
		rec := httptest.NewRecorder()
		handler.PauseDelivery(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotUntil)
		assert.Equal(t, now.Add(7*24*time.Hour), *gotUntil)
	})

	t.Run("resume clears the window", func(t *testing.T) {
		t.Parallel()

		cleared := false
		users := &mocks.MockUserStore{
			SetPausedUntilFn: func(_ context.Context, _ uuid.UUID, until *time.Time) error {
				cleared = until == nil
				return nil
			},
		}
		handler := NewProfileHandler(users, &mocks.MockStreakStore{}, newTestLogger())

		req := newAuthenticatedRequest(t, http.MethodPost, "/profile/resume", nil, userID)
		rec := httptest.NewRecorder()
		handler.ResumeDelivery(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, cleared)
	})
}
