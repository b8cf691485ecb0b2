package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/neocodez/portfolio/logger"
	"github.com/neocodez/portfolio/mailer"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/otp"
	"github.com/neocodez/portfolio/repositories"
	"github.com/neocodez/portfolio/tokens"
	"github.com/neocodez/portfolio/utils"
)

const minPasswordLength = 6

// CredentialStore is the subset of the user repository the auth flow needs.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, name, email, rawPassword string, role models.Role) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	SetResetCode(ctx context.Context, id, code string, expiresAt time.Time) error
	ConsumeResetCode(ctx context.Context, id, code string, now time.Time) (bool, error)
	RevokeResetCode(ctx context.Context, id, code string) (bool, error)
	ClearResetCode(ctx context.Context, id string) error
	UpdatePassword(ctx context.Context, id, rawPassword string) error
}

type TokenIssuer interface {
	IssueBearerToken(userID string, role models.Role) (string, error)
	IssueResetToken(userID, passwordHash string) (string, error)
	VerifyBearerToken(tokenStr string) (*tokens.Claims, error)
	VerifyResetToken(tokenStr string) (*tokens.Claims, error)
}

type CodeGenerator interface {
	Generate() (code string, expiresAt time.Time, err error)
}

// AuthResult is returned by register and login.
type AuthResult struct {
	models.UserSummary
	Token string `json:"token"`
}

type AuthService struct {
	users       CredentialStore
	tokens      TokenIssuer
	codes       CodeGenerator
	mail        mailer.Sender
	frontendURL string
	now         func() time.Time
}

func NewAuthService(users CredentialStore, issuer TokenIssuer, codes CodeGenerator, mail mailer.Sender, frontendURL string) *AuthService {
	return &AuthService{
		users:       users,
		tokens:      issuer,
		codes:       codes,
		mail:        mail,
		frontendURL: frontendURL,
		now:         time.Now,
	}
}

// WithClock replaces the time source used for code expiry checks.
func (s *AuthService) WithClock(now func() time.Time) *AuthService {
	s.now = now
	return s
}

// Register creates a user and signs them in. If no token can be issued the
// new account is deleted again so no account exists without a credential.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*AuthResult, error) {
	log := logger.FromContext(ctx)

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	switch {
	case name == "":
		return nil, newValidationError("name", "name is required")
	case email == "":
		return nil, newValidationError("email", "email is required")
	case len(password) < minPasswordLength:
		return nil, newValidationError("password", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, repositories.ErrDuplicateEmail
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	user, err := s.users.CreateUser(ctx, name, email, password, models.RoleUser)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.IssueBearerToken(user.ID.Hex(), user.Role)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID.Hex()).Msg("token issuance failed, rolling back registration")
		if delErr := s.users.DeleteUser(ctx, user.ID.Hex()); delErr != nil {
			log.Error().Err(delErr).Str("user_id", user.ID.Hex()).Msg("registration rollback failed")
		}
		return nil, fmt.Errorf("%w: %v", ErrRegistrationFailed, err)
	}

	log.Info().Str("user_id", user.ID.Hex()).Msg("user registered")
	return &AuthResult{UserSummary: user.Summary(), Token: token}, nil
}

// Login does not tell an unknown email apart from a wrong password.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.IssueBearerToken(user.ID.Hex(), user.Role)
	if err != nil {
		return nil, fmt.Errorf("issue bearer token: %w", err)
	}
	return &AuthResult{UserSummary: user.Summary(), Token: token}, nil
}

// Authenticate verifies a bearer token.
func (s *AuthService) Authenticate(bearerToken string) (*tokens.Claims, error) {
	if bearerToken == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.tokens.VerifyBearerToken(bearerToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}
	return claims, nil
}

func (s *AuthService) Profile(ctx context.Context, bearerToken string) (*models.UserSummary, error) {
	claims, err := s.Authenticate(bearerToken)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}

// ForgotPassword stores a fresh code and mails it. When delivery fails the
// stored code is revoked again, unless a newer one replaced it meanwhile.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	userID := user.ID.Hex()

	code, expiresAt, err := s.codes.Generate()
	if err != nil {
		return err
	}

	if err := s.users.SetResetCode(ctx, userID, code, expiresAt); err != nil {
		return err
	}

	msg, err := mailer.ResetCodeEmail(user.Email, user.Name, code, otp.CodeTTL, s.frontendURL)
	if err == nil {
		err = s.mail.Send(ctx, msg)
	}
	if err != nil {
		log.Error().Err(err).Str("user_id", userID).Msg("reset code delivery failed")

		if _, revokeErr := s.users.RevokeResetCode(context.WithoutCancel(ctx), userID, code); revokeErr != nil {
			log.Error().Err(revokeErr).Str("user_id", userID).Msg("failed to revoke undelivered reset code")
		}
		return fmt.Errorf("%w: %v", ErrDeliveryFailure, err)
	}

	log.Info().Str("user_id", userID).Msg("reset code sent")
	return nil
}

// VerifyOtp exchanges a valid code for a reset token. The code is consumed
// atomically, so it succeeds at most once.
func (s *AuthService) VerifyOtp(ctx context.Context, email, code string) (string, error) {
	user, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", err
	}

	now := s.now()
	if user.OTPExpires == nil || !otp.Matches(user.OTP, code) || otp.Expired(*user.OTPExpires, now) {
		return "", ErrInvalidOrExpiredCode
	}

	resetToken, err := s.tokens.IssueResetToken(user.ID.Hex(), user.PasswordHash)
	if err != nil {
		return "", fmt.Errorf("issue reset token: %w", err)
	}

	consumed, err := s.users.ConsumeResetCode(ctx, user.ID.Hex(), code, now)
	if err != nil {
		return "", err
	}
	if !consumed {
		return "", ErrInvalidOrExpiredCode
	}
	return resetToken, nil
}

// ResetPassword sets a new password for the holder of a valid reset token.
// The token carries a stamp of the password it was issued against, so it
// stops working after the first change. No session token is issued; the user
// has to log in again.
func (s *AuthService) ResetPassword(ctx context.Context, resetToken, newPassword string) error {
	claims, err := s.tokens.VerifyResetToken(resetToken)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidOrExpiredResetToken, err)
	}

	if len(newPassword) < minPasswordLength {
		return newValidationError("newPassword", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if claims.PasswordStamp != tokens.PasswordStamp(user.PasswordHash) {
		return fmt.Errorf("%w: token already used", ErrInvalidOrExpiredResetToken)
	}

	if err := s.users.UpdatePassword(ctx, claims.UserID, newPassword); err != nil {
		return err
	}

	if err := s.users.ClearResetCode(ctx, claims.UserID); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("user_id", claims.UserID).Msg("failed to clear pending reset code")
	}

	logger.FromContext(ctx).Info().Str("user_id", claims.UserID).Msg("password reset")
	return nil
}

// ChangePassword lets a signed-in user replace their password.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return newValidationError("newPassword", fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := utils.CheckPassword(user.PasswordHash, currentPassword); err != nil {
		return ErrInvalidCredentials
	}

	return s.users.UpdatePassword(ctx, userID, newPassword)
}
