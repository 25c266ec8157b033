package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/domain/memorize"
	"github.com/moloke/lightverse/internal/platform/twilio"
	"github.com/moloke/lightverse/internal/store"
)

// dailyPromptFmt is the outbound daily prompt. The rendered text reveals
// only the portion of the verse the learner's current step allows.
const dailyPromptFmt = "📖 %s (step %d/%d)\n\n%s\n\nReply with the full verse! 💪"

// DailyVerseJob sends every active learner their current practice prompt.
// Learners who paused delivery or already received a prompt today are
// skipped. Send failures are logged per learner and never abort the run.
type DailyVerseJob struct {
	users    store.UserStore
	verses   store.VerseStore
	sessions store.SessionStore
	messages store.MessageLogStore
	engine   memorize.Service
	sender   twilio.MessageSender
	logger   *slog.Logger
	timeFunc func() time.Time
}

// NewDailyVerseJob creates the daily prompt job.
func NewDailyVerseJob(
	users store.UserStore,
	verses store.VerseStore,
	sessions store.SessionStore,
	messages store.MessageLogStore,
	engine memorize.Service,
	sender twilio.MessageSender,
	logger *slog.Logger,
) *DailyVerseJob {
	if users == nil || verses == nil || sessions == nil || messages == nil ||
		engine == nil || sender == nil {
		panic("task: all DailyVerseJob dependencies are required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DailyVerseJob{
		users:    users,
		verses:   verses,
		sessions: sessions,
		messages: messages,
		engine:   engine,
		sender:   sender,
		logger:   logger.With(slog.String("component", "daily_verse_job")),
		timeFunc: func() time.Time { return time.Now().UTC() },
	}
}

// Name implements Job.
func (j *DailyVerseJob) Name() string { return "daily_verse" }

// Run implements Job. It iterates all active sessions once.
func (j *DailyVerseJob) Run(ctx context.Context) error {
	sessions, err := j.sessions.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active sessions: %w", err)
	}

	now := j.timeFunc()
	var sent, skipped, failed int

	for _, session := range sessions {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		switch err := j.sendPrompt(ctx, session, now); {
		case err == nil:
			sent++
		case errors.Is(err, errSkipped):
			skipped++
		default:
			failed++
			j.logger.Error("failed to send daily prompt",
				slog.String("session_id", session.ID.String()),
				slog.String("error", err.Error()))
		}
	}

	j.logger.Info("daily prompt run finished",
		slog.Int("active_sessions", len(sessions)),
		slog.Int("sent", sent),
		slog.Int("skipped", skipped),
		slog.Int("failed", failed))

	return nil
}

// errSkipped marks sessions that were intentionally not messaged.
var errSkipped = errors.New("session skipped")

func (j *DailyVerseJob) sendPrompt(ctx context.Context, session *domain.VerseSession, now time.Time) error {
	if session.LastMessageAt != nil &&
		domain.DateOnly(*session.LastMessageAt).Equal(domain.DateOnly(now)) {
		return errSkipped
	}

	user, err := j.users.GetByID(ctx, session.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	if user.IsPaused(now) {
		return errSkipped
	}

	verse, err := j.verses.GetByID(ctx, session.VerseID)
	if err != nil {
		return fmt.Errorf("failed to load verse: %w", err)
	}

	cloze := j.engine.RenderPrefix(verse.Text, session.CurrentStep)
	body := fmt.Sprintf(dailyPromptFmt,
		verse.Reference, session.CurrentStep, session.TotalSteps, cloze.DisplayText)

	result, err := j.sender.Send(ctx, user.PhoneNumber, body)
	if err != nil {
		j.logOutbound(ctx, user, body, domain.MessageStatusFailed, "")
		return fmt.Errorf("failed to send sms: %w", err)
	}

	if err := j.sessions.MarkMessaged(ctx, session.ID, now); err != nil {
		// The prompt went out; a marking failure only risks a duplicate
		// tomorrow, so record it and keep going.
		j.logger.Warn("failed to mark session messaged",
			slog.String("session_id", session.ID.String()),
			slog.String("error", err.Error()))
	}

	j.logOutbound(ctx, user, body, domain.MessageStatusSent, result.SID)
	return nil
}

func (j *DailyVerseJob) logOutbound(
	ctx context.Context,
	user *domain.User,
	body string,
	status domain.MessageStatus,
	providerSID string,
) {
	entry, err := domain.NewMessageLog(&user.ID, domain.MessageOutbound,
		user.PhoneNumber, body, status, providerSID)
	if err != nil {
		j.logger.Warn("failed to build message log entry", slog.String("error", err.Error()))
		return
	}
	if err := j.messages.Append(ctx, entry); err != nil {
		j.logger.Warn("failed to append message log entry", slog.String("error", err.Error()))
	}
}
