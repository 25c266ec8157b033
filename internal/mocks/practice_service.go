package mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/service/practice"
)

// MockPracticeService is a mock implementation of practice.PracticeService.
type MockPracticeService struct {
	StartSessionFn     func(ctx context.Context, userID, verseID uuid.UUID) (*domain.VerseSession, error)
	GetPracticeFn      func(ctx context.Context, userID uuid.UUID, policy memorize.ClozePolicy) (*practice.PracticeView, error)
	SubmitBlanksFn     func(ctx context.Context, userID uuid.UUID, submission practice.BlankSubmission) (*practice.SubmitResult, error)
	HandleInboundSMSFn func(ctx context.Context, from, body, providerSID string) (*practice.InboundResult, error)

	// Default values returned when the corresponding Fn is nil.
	Session *domain.VerseSession
	View    *practice.PracticeView
	Result  *practice.SubmitResult
	Inbound *practice.InboundResult
	Err     error
}

var _ practice.PracticeService = (*MockPracticeService)(nil)

func (m *MockPracticeService) StartSession(
	ctx context.Context,
	userID, verseID uuid.UUID,
) (*domain.VerseSession, error) {
	if m.StartSessionFn != nil {
		return m.StartSessionFn(ctx, userID, verseID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Session, nil
}

func (m *MockPracticeService) GetPractice(
	ctx context.Context,
	userID uuid.UUID,
	policy memorize.ClozePolicy,
) (*practice.PracticeView, error) {
	if m.GetPracticeFn != nil {
		return m.GetPracticeFn(ctx, userID, policy)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.View, nil
}

func (m *MockPracticeService) SubmitBlanks(
	ctx context.Context,
	userID uuid.UUID,
	submission practice.BlankSubmission,
) (*practice.SubmitResult, error) {
	if m.SubmitBlanksFn != nil {
		return m.SubmitBlanksFn(ctx, userID, submission)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Result, nil
}

func (m *MockPracticeService) HandleInboundSMS(
	ctx context.Context,
	from, body, providerSID string,
) (*practice.InboundResult, error) {
	if m.HandleInboundSMSFn != nil {
		return m.HandleInboundSMSFn(ctx, from, body, providerSID)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Inbound, nil
}
