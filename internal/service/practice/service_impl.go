package practice

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/platform/twilio"
	"github.com/moloke/lightverse/internal/store"
)

// Verify interface compliance at compile time
var _ PracticeService = (*practiceServiceImpl)(nil)

// practiceServiceImpl implements the PracticeService interface.
type practiceServiceImpl struct {
	users    store.UserStore
	verses   store.VerseStore
	sessions store.SessionStore
	streaks  store.StreakStore
	messages store.MessageLogStore
	txRunner store.TxRunner
	engine   memorize.Service
	sender   twilio.MessageSender
	logger   *slog.Logger
	timeFunc func() time.Time // Injectable for testing
}

// NewPracticeService creates a new PracticeService implementation.
func NewPracticeService(
	users store.UserStore,
	verses store.VerseStore,
	sessions store.SessionStore,
	streaks store.StreakStore,
	messages store.MessageLogStore,
	txRunner store.TxRunner,
	engine memorize.Service,
	sender twilio.MessageSender,
	log *slog.Logger,
) PracticeService {
	if users == nil || verses == nil || sessions == nil || streaks == nil || messages == nil {
		panic("all stores are required for PracticeService")
	}
	if txRunner == nil {
		panic("txRunner cannot be nil")
	}
	if engine == nil {
		panic("engine cannot be nil")
	}
	if sender == nil {
		panic("sender cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &practiceServiceImpl{
		users:    users,
		verses:   verses,
		sessions: sessions,
		streaks:  streaks,
		messages: messages,
		txRunner: txRunner,
		engine:   engine,
		sender:   sender,
		logger:   log.With(slog.String("component", "practice_service")),
		timeFunc: time.Now,
	}
}

// StartSession implements PracticeService.StartSession.
// The delete of any prior active session and the insert of the new one
// happen in one transaction, enforcing the one-active-focus rule.
func (s *practiceServiceImpl) StartSession(
	ctx context.Context,
	userID, verseID uuid.UUID,
) (*domain.VerseSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.verses.GetByID(ctx, verseID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrVerseNotFound
		}
		return nil, fmt.Errorf("failed to load verse: %w", err)
	}

	session, err := domain.NewVerseSession(userID, verseID)
	if err != nil {
		return nil, err
	}

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context, tx store.TxStores) error {
		prior, err := tx.Sessions.GetActiveByUserID(ctx, userID)
		if err == nil {
			if err := tx.Sessions.Delete(ctx, prior.ID); err != nil {
				return fmt.Errorf("failed to delete prior session: %w", err)
			}
			log.Debug("replaced active session",
				slog.String("user_id", userID.String()),
				slog.String("prior_session_id", prior.ID.String()))
		} else if !store.IsNotFoundError(err) {
			return fmt.Errorf("failed to check active session: %w", err)
		}

		return tx.Sessions.Create(ctx, session)
	})
	if err != nil {
		log.Error("failed to start session",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()),
			slog.String("verse_id", verseID.String()))
		return nil, &ServiceError{Operation: "start_session", Message: "could not start session", Err: err}
	}

	log.Info("session started",
		slog.String("user_id", userID.String()),
		slog.String("verse_id", verseID.String()),
		slog.String("session_id", session.ID.String()))
	return session, nil
}

// GetPractice implements PracticeService.GetPractice.
func (s *practiceServiceImpl) GetPractice(
	ctx context.Context,
	userID uuid.UUID,
	policy memorize.ClozePolicy,
) (*PracticeView, error) {
	session, verse, err := s.activeSessionAndVerse(ctx, userID)
	if err != nil {
		return nil, err
	}

	view := &PracticeView{
		SessionID:  session.ID,
		VerseID:    verse.ID,
		Reference:  verse.Reference,
		Step:       session.CurrentStep,
		TotalSteps: session.TotalSteps,
		Policy:     policy,
	}

	switch policy {
	case memorize.PolicyPrefix:
		cloze := s.engine.RenderPrefix(verse.Text, session.CurrentStep)
		view.Prefix = &cloze
	case memorize.PolicyRandomMask:
		slots := s.engine.RenderMask(verse.Text, session.CurrentStep)
		view.Slots = make([]BlankSlot, len(slots))
		for i, slot := range slots {
			view.Slots[i] = BlankSlot{Index: i, Hidden: slot.Hidden}
			if !slot.Hidden {
				view.Slots[i].Word = slot.Word
			}
		}
	default:
		return nil, fmt.Errorf("%w: unknown cloze policy %q", ErrInvalidSubmission, policy)
	}

	return view, nil
}

// SubmitBlanks implements PracticeService.SubmitBlanks.
func (s *practiceServiceImpl) SubmitBlanks(
	ctx context.Context,
	userID uuid.UUID,
	submission BlankSubmission,
) (*SubmitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	session, verse, err := s.activeSessionAndVerse(ctx, userID)
	if err != nil {
		return nil, err
	}

	if submission.Step != session.CurrentStep {
		log.Debug("stale submission step",
			slog.String("session_id", session.ID.String()),
			slog.Int("submitted_step", submission.Step),
			slog.Int("session_step", session.CurrentStep))
		return nil, ErrStepMismatch
	}

	// Rebuild the mask the learner answered from the submitted hidden
	// indexes; a freshly generated mask would hide a different word set.
	words := memorize.Words(verse.Text)
	slots := make([]memorize.WordSlot, len(words))
	for i, w := range words {
		slots[i] = memorize.WordSlot{Word: w}
	}
	for _, idx := range submission.HiddenIndexes {
		if idx < 0 || idx >= len(slots) {
			return nil, fmt.Errorf("%w: hidden index %d out of range", ErrInvalidSubmission, idx)
		}
		slots[idx].Hidden = true
	}

	verdict := s.engine.CheckBlanks(slots, submission.Answers)
	if !verdict.AllCorrect {
		return &SubmitResult{
			Accepted:     false,
			BlankResults: verdict.Results,
			Hint:         s.engine.Hint(verse.Text, session.CurrentStep),
			Step:         session.CurrentStep,
		}, nil
	}

	result, err := s.creditProgress(ctx, session)
	if err != nil {
		return result, err
	}
	result.BlankResults = verdict.Results
	return result, nil
}

// creditProgress applies one accepted submission: the conditional step
// advance first, then XP and streak in a second transaction. A ledger
// failure after the step write is surfaced as ErrProgressPartial with a
// usable result; the learner's correct answer is never rolled back.
func (s *practiceServiceImpl) creditProgress(
	ctx context.Context,
	session *domain.VerseSession,
) (*SubmitResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	progress, err := s.engine.Advance(session.CurrentStep)
	if err != nil {
		return nil, err
	}

	now := s.timeFunc().UTC()
	advance := store.SessionAdvance{NextStep: progress.NextStep}
	if progress.Completed {
		advance.CompletedAt = &now
	}

	if err := s.sessions.AdvanceStep(ctx, session.ID, session.CurrentStep, advance); err != nil {
		if store.IsConflictError(err) {
			log.Info("concurrent submission won the step race",
				slog.String("session_id", session.ID.String()),
				slog.Int("step", session.CurrentStep))
		}
		return nil, err
	}

	result := &SubmitResult{
		Accepted:  true,
		Step:      progress.NextStep,
		Completed: progress.Completed,
	}

	err = s.txRunner.RunInTx(ctx, func(ctx context.Context, tx store.TxStores) error {
		prior, err := tx.Streaks.Get(ctx, session.UserID)
		if err != nil {
			if !store.IsNotFoundError(err) {
				return fmt.Errorf("failed to load streak: %w", err)
			}
			prior = nil
		}

		update := s.engine.ApplyStep(now, prior, progress.Completed)

		total, err := tx.Users.AddXP(ctx, session.UserID, update.XPGain)
		if err != nil {
			return fmt.Errorf("failed to credit XP: %w", err)
		}
		if err := tx.Streaks.Upsert(ctx, session.UserID, update.StreakCount, update.ActivityDate); err != nil {
			return fmt.Errorf("failed to update streak: %w", err)
		}

		result.XPAwarded = update.XPGain
		result.TotalXP = total
		result.Streak = update.StreakCount
		return nil
	})
	if err != nil {
		// The step is already committed and visible.
		log.Error("ledger update failed after step advance",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()),
			slog.Int("step", progress.NextStep))
		return result, fmt.Errorf("%w: %v", ErrProgressPartial, err)
	}

	log.Info("step credited",
		slog.String("session_id", session.ID.String()),
		slog.String("user_id", session.UserID.String()),
		slog.Int("step", progress.NextStep),
		slog.Bool("completed", progress.Completed),
		slog.Int("xp_awarded", result.XPAwarded),
		slog.Int("streak", result.Streak))
	return result, nil
}

// activeSessionAndVerse loads the learner's active session and its verse.
func (s *practiceServiceImpl) activeSessionAndVerse(
	ctx context.Context,
	userID uuid.UUID,
) (*domain.VerseSession, *domain.Verse, error) {
	session, err := s.sessions.GetActiveByUserID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, nil, ErrNoActiveSession
		}
		return nil, nil, fmt.Errorf("failed to load active session: %w", err)
	}

	verse, err := s.verses.GetByID(ctx, session.VerseID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load verse for session: %w", err)
	}
	return session, verse, nil
}
