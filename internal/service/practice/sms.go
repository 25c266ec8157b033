package practice

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/store"
)

// Outbound reply templates for the SMS channel.
const (
	replyCompletedFmt = "🎉 Congratulations! You've memorized %s! +%d XP\n\n" +
		"Visit lightverse.app to choose your next verse! 🙏"
	replyCorrectFmt = "✅ Correct! +%d XP\n\nYou're on step %d/%d of %s. Keep going! 💪"
	replyRetryFmt   = "Not quite right. Keep trying! 💪\n\nHint: \"%s\"\n\n" +
		"Reply with the full verse for %s"
	replyUnknownUser     = "Sorry, we couldn't find your account. Please sign up at lightverse.app first!"
	replyNoActiveSession = "You don't have an active verse. Visit lightverse.app to select one!"
)

// HandleInboundSMS implements PracticeService.HandleInboundSMS.
// Every inbound message gets a reply: unknown senders and senders without
// an active session are prompted to sign up or pick a verse; validated
// replies are logged, credited on acceptance, and answered.
func (s *practiceServiceImpl) HandleInboundSMS(
	ctx context.Context,
	from, body, providerSID string,
) (*InboundResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByPhoneNumber(ctx, from)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logInbound(ctx, nil, from, body, domain.MessageStatusUnknownUser, providerSID)
			log.Info("inbound SMS from unknown number", slog.String("from", from))
			s.sendReply(ctx, nil, from, replyUnknownUser)
			return &InboundResult{Status: domain.MessageStatusUnknownUser, Reply: replyUnknownUser}, nil
		}
		return nil, fmt.Errorf("failed to identify sender: %w", err)
	}

	session, err := s.sessions.GetActiveByUserID(ctx, user.ID)
	if err != nil {
		if store.IsNotFoundError(err) {
			s.logInbound(ctx, &user.ID, from, body, domain.MessageStatusNoActiveSession, providerSID)
			log.Info("inbound SMS without active session",
				slog.String("user_id", user.ID.String()))
			s.sendReply(ctx, &user.ID, from, replyNoActiveSession)
			return &InboundResult{Status: domain.MessageStatusNoActiveSession, Reply: replyNoActiveSession}, nil
		}
		return nil, fmt.Errorf("failed to load active session: %w", err)
	}

	verse, err := s.verses.GetByID(ctx, session.VerseID)
	if err != nil {
		return nil, fmt.Errorf("failed to load verse for session: %w", err)
	}

	accepted := s.engine.CheckReply(body, verse.Text)

	status := domain.MessageStatusIncorrect
	if accepted {
		status = domain.MessageStatusCorrect
	}
	s.logInbound(ctx, &user.ID, from, body, status, providerSID)

	if !accepted {
		reply := fmt.Sprintf(replyRetryFmt,
			s.engine.Hint(verse.Text, session.CurrentStep), verse.Reference)
		s.sendReply(ctx, &user.ID, from, reply)
		return &InboundResult{Status: status, Reply: reply}, nil
	}

	result, creditErr := s.creditProgress(ctx, session)
	if creditErr != nil && result == nil {
		// The step race or a storage failure stopped the credit; a
		// generic retry keeps internal state out of the reply.
		if store.IsConflictError(creditErr) {
			reply := "Something went wrong, please try again."
			s.sendReply(ctx, &user.ID, from, reply)
			return &InboundResult{Status: status, Reply: reply}, nil
		}
		return nil, creditErr
	}

	var reply string
	if result.Completed {
		reply = fmt.Sprintf(replyCompletedFmt, verse.Reference, result.XPAwarded)
	} else {
		reply = fmt.Sprintf(replyCorrectFmt,
			result.XPAwarded, result.Step, session.TotalSteps, verse.Reference)
	}
	s.sendReply(ctx, &user.ID, from, reply)

	// creditErr is ErrProgressPartial here when non-nil: the step is
	// recorded and the reply sent, but the ledger needs reconciliation.
	return &InboundResult{Status: status, Reply: reply, Submit: result}, creditErr
}

// sendReply sends one outbound SMS and appends it to the message log.
// userID is nil for replies to unknown senders. Transport failures are
// logged, not propagated; the inbound message has already been processed.
func (s *practiceServiceImpl) sendReply(
	ctx context.Context,
	userID *uuid.UUID,
	to, body string,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	sid := ""
	status := domain.MessageStatusSent
	if res, err := s.sender.Send(ctx, to, body); err != nil {
		log.Error("failed to send SMS reply",
			slog.String("error", err.Error()),
			slog.String("to", to))
		status = domain.MessageStatusFailed
	} else {
		sid = res.SID
	}

	entry, err := domain.NewMessageLog(userID, domain.MessageOutbound, to, body, status, sid)
	if err != nil {
		log.Error("failed to build outbound message log", slog.String("error", err.Error()))
		return
	}
	if err := s.messages.Append(ctx, entry); err != nil {
		log.Error("failed to append outbound message log", slog.String("error", err.Error()))
	}
}

// logInbound appends an inbound SMS to the message log. Logging failures
// never fail message processing.
func (s *practiceServiceImpl) logInbound(
	ctx context.Context,
	userID *uuid.UUID,
	from, body string,
	status domain.MessageStatus,
	providerSID string,
) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	entry, err := domain.NewMessageLog(userID, domain.MessageInbound, from, body, status, providerSID)
	if err != nil {
		log.Error("failed to build inbound message log", slog.String("error", err.Error()))
		return
	}
	if err := s.messages.Append(ctx, entry); err != nil {
		log.Error("failed to append inbound message log", slog.String("error", err.Error()))
	}
}
