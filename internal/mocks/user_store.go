package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/store"
)

// MockUserStore implements store.UserStore for testing
type MockUserStore struct {
	CreateFn           func(ctx context.Context, user *domain.User) error
	GetByIDFn          func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByPhoneNumberFn func(ctx context.Context, phoneNumber string) (*domain.User, error)
	AddXPFn            func(ctx context.Context, id uuid.UUID, amount int) (int, error)
	UpdateNameFn       func(ctx context.Context, id uuid.UUID, name string) error
	SetPausedUntilFn   func(ctx context.Context, id uuid.UUID, until *time.Time) error

	// Default values used when functions aren't explicitly defined
	User *domain.User
	XP   int
	Err  error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return m.User, m.Err
}

func (m *MockUserStore) GetByPhoneNumber(
	ctx context.Context,
	phoneNumber string,
) (*domain.User, error) {
	if m.GetByPhoneNumberFn != nil {
		return m.GetByPhoneNumberFn(ctx, phoneNumber)
	}
	return m.User, m.Err
}

func (m *MockUserStore) AddXP(ctx context.Context, id uuid.UUID, amount int) (int, error) {
	if m.AddXPFn != nil {
		return m.AddXPFn(ctx, id, amount)
	}
	return m.XP, m.Err
}

func (m *MockUserStore) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	if m.UpdateNameFn != nil {
		return m.UpdateNameFn(ctx, id, name)
	}
	return m.Err
}

func (m *MockUserStore) SetPausedUntil(
	ctx context.Context,
	id uuid.UUID,
	until *time.Time,
) error {
	if m.SetPausedUntilFn != nil {
		return m.SetPausedUntilFn(ctx, id, until)
	}
	return m.Err
}
