package auth

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/moloke/lightverse/internal/config"
	"github.com/moloke/lightverse/internal/domain"
	"github.com/moloke/lightverse/internal/platform/logger"
	"github.com/moloke/lightverse/internal/platform/twilio"
	"github.com/moloke/lightverse/internal/store"
)

// codeLength is the number of digits in a login code.
const codeLength = 6

// TokenPair is the result of a successful login or refresh.
type TokenPair struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	IsNewUser    bool      `json:"is_new_user"`
}

// OTPService runs the SMS login flow: issue a short-lived numeric code to
// a phone number, then exchange that code for a JWT token pair. A user
// record is created on first successful login.
type OTPService struct {
	users  store.UserStore
	codes  store.OTPStore
	sender twilio.MessageSender
	jwt    JWTService
	hasher CodeHasher
	expiry time.Duration
	logger *slog.Logger

	// Injectable for testing.
	timeFunc     func() time.Time
	generateCode func() (string, error)
}

// NewOTPService creates an OTPService. All dependencies are required
// except log, which falls back to the default logger.
func NewOTPService(
	users store.UserStore,
	codes store.OTPStore,
	sender twilio.MessageSender,
	jwtService JWTService,
	hasher CodeHasher,
	cfg config.AuthConfig,
	log *slog.Logger,
) (*OTPService, error) {
	if users == nil || codes == nil || sender == nil || jwtService == nil || hasher == nil {
		return nil, fmt.Errorf("all OTPService dependencies are required")
	}
	if log == nil {
		log = slog.Default()
	}

	return &OTPService{
		users:        users,
		codes:        codes,
		sender:       sender,
		jwt:          jwtService,
		hasher:       hasher,
		expiry:       time.Duration(cfg.OTPExpiryMinutes) * time.Minute,
		logger:       log.With(slog.String("component", "otp_service")),
		timeFunc:     time.Now,
		generateCode: randomCode,
	}, nil
}

// RequestCode issues a fresh login code for the phone number and sends it
// by SMS. The plaintext code never touches storage or logs.
func (s *OTPService) RequestCode(ctx context.Context, phoneNumber string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	code, err := s.generateCode()
	if err != nil {
		return fmt.Errorf("failed to generate login code: %w", err)
	}

	hash, err := s.hasher.Hash(code)
	if err != nil {
		return fmt.Errorf("failed to hash login code: %w", err)
	}

	otp, err := domain.NewOTPCode(phoneNumber, hash, s.timeFunc().UTC().Add(s.expiry))
	if err != nil {
		return err
	}
	if err := s.codes.Create(ctx, otp); err != nil {
		return err
	}

	body := fmt.Sprintf("Your verse code is %s. It expires in %d minutes.",
		code, int(s.expiry.Minutes()))
	if _, err := s.sender.Send(ctx, phoneNumber, body); err != nil {
		log.Error("failed to send login code",
			slog.String("error", err.Error()),
			slog.String("phone_number", phoneNumber))
		return err
	}

	log.Info("login code issued", slog.String("phone_number", phoneNumber))
	return nil
}

// VerifyCode redeems a login code for a JWT token pair, creating the user
// on first login. The most recent code wins; it must be unexpired,
// unconsumed, and match the bcrypt hash.
func (s *OTPService) VerifyCode(
	ctx context.Context,
	phoneNumber, code string,
) (*TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	otp, err := s.codes.GetLatestByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	now := s.timeFunc().UTC()
	if otp.IsConsumed() {
		return nil, ErrCodeConsumed
	}
	if otp.IsExpired(now) {
		return nil, ErrExpiredCode
	}
	if err := s.hasher.Compare(otp.CodeHash, code); err != nil {
		log.Debug("login code mismatch", slog.String("phone_number", phoneNumber))
		return nil, ErrInvalidCode
	}

	if err := s.codes.MarkConsumed(ctx, otp.ID); err != nil {
		return nil, err
	}

	user, isNew, err := s.getOrCreateUser(ctx, phoneNumber)
	if err != nil {
		return nil, err
	}

	pair, err := s.issueTokens(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	pair.IsNewUser = isNew

	log.Info("login succeeded",
		slog.String("user_id", user.ID.String()),
		slog.Bool("new_user", isNew))
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new token pair.
func (s *OTPService) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := s.jwt.ValidateRefreshToken(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	// The user must still exist; a deleted account invalidates its tokens.
	if _, err := s.users.GetByID(ctx, claims.UserID); err != nil {
		if store.IsNotFoundError(err) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, err
	}

	return s.issueTokens(ctx, claims.UserID)
}

func (s *OTPService) getOrCreateUser(
	ctx context.Context,
	phoneNumber string,
) (*domain.User, bool, error) {
	user, err := s.users.GetByPhoneNumber(ctx, phoneNumber)
	if err == nil {
		return user, false, nil
	}
	if !store.IsNotFoundError(err) {
		return nil, false, err
	}

	user, err = domain.NewUser(phoneNumber)
	if err != nil {
		return nil, false, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent first login may have created the user already.
		if errors.Is(err, store.ErrPhoneNumberExists) {
			existing, getErr := s.users.GetByPhoneNumber(ctx, phoneNumber)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return user, true, nil
}

func (s *OTPService) issueTokens(ctx context.Context, userID uuid.UUID) (*TokenPair, error) {
	access, err := s.jwt.GenerateToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwt.GenerateRefreshToken(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{
		UserID:       userID,
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

// randomCode returns a uniformly random numeric code of codeLength digits,
// left-padded with zeros.
func randomCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}
