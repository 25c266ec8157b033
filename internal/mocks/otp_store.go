package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/store"
)

// MockOTPStore implements store.OTPStore for testing
type MockOTPStore struct {
	CreateFn                 func(ctx context.Context, code *domain.OTPCode) error
	GetLatestByPhoneNumberFn func(ctx context.Context, phoneNumber string) (*domain.OTPCode, error)
	MarkConsumedFn           func(ctx context.Context, id uuid.UUID) error

	// Default values used when functions aren't explicitly defined
	Code *domain.OTPCode
	Err  error
}

var _ store.OTPStore = (*MockOTPStore)(nil)

func (m *MockOTPStore) Create(ctx context.Context, code *domain.OTPCode) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, code)
	}
	return m.Err
}

func (m *MockOTPStore) GetLatestByPhoneNumber(
	ctx context.Context,
	phoneNumber string,
) (*domain.OTPCode, error) {
	if m.GetLatestByPhoneNumberFn != nil {
		return m.GetLatestByPhoneNumberFn(ctx, phoneNumber)
	}
	return m.Code, m.Err
}

func (m *MockOTPStore) MarkConsumed(ctx context.Context, id uuid.UUID) error {
	if m.MarkConsumedFn != nil {
		return m.MarkConsumedFn(ctx, id)
	}
	return m.Err
}
