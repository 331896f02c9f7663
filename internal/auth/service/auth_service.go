package service

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/dwiprasetyo/auth-session-service/internal/auth/domain UserRepository,RefreshTokenRepository,PasswordHasher

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/dwiprasetyo/auth-session-service/config"
	"github.com/dwiprasetyo/auth-session-service/internal/auth/domain"
	"github.com/dwiprasetyo/auth-session-service/internal/auth/dto"
	autherror "github.com/dwiprasetyo/auth-session-service/internal/errors"
	"github.com/dwiprasetyo/auth-session-service/pkg/constant"
)

type AuthService struct {
	users  domain.UserRepository
	tokens domain.RefreshTokenRepository
	hasher domain.PasswordHasher
	issuer TokenGenerator
	cfg    *config.Config
	log    zerolog.Logger
}

func NewAuthService(
	users domain.UserRepository,
	tokens domain.RefreshTokenRepository,
	hasher domain.PasswordHasher,
	issuer TokenGenerator,
	cfg *config.Config,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		hasher: hasher,
		issuer: issuer,
		cfg:    cfg,
		log:    log,
	}
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user does not exist", autherror.ErrInvalidCredentials)
	}

	if !user.Enable {
		return nil, autherror.ErrAccountDisabled
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		if err := s.users.IncrementLoginAttempt(ctx, user.ID, s.cfg.MaxLoginAttempts); err != nil {
			return nil, err
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.users.ResetLoginAttempt(ctx, user.ID); err != nil {
		return nil, err
	}

	accessToken, _, err := s.issuer.Sign(user.ID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	refreshToken := &domain.RefreshToken{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		Token:             uuid.NewString(),
		DeviceFingerprint: input.Fingerprint,
		IPAddress:         input.IPAddress,
		UserAgent:         input.UserAgent,
		ExpiresAt:         now.Add(time.Duration(s.cfg.RefreshExpiryMin) * time.Minute),
		CreatedAt:         now,
	}
	if err := s.tokens.Store(ctx, refreshToken); err != nil {
		return nil, err
	}

	return &dto.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
	}, nil
}

// Refresh exchanges a still-valid refresh token for a new access token.
// The refresh token is not rotated or consumed; it stays usable until its
// own expiry.
func (s *AuthService) Refresh(ctx context.Context, input dto.RefreshInput) (*dto.RefreshOutput, error) {
	token, err := s.tokens.GetByToken(ctx, input.RefreshToken)
	if err != nil {
		return nil, err
	}
	if token == nil || !time.Now().Before(token.ExpiresAt) {
		return nil, autherror.ErrInvalidOrExpired
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	accessToken, _, err := s.issuer.Sign(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshOutput{AccessToken: accessToken}, nil
}

// ValidateToken checks the access token's signature and expiry, then
// confirms its owner still exists.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*dto.ValidateOutput, error) {
	claims, err := s.issuer.Verify(tokenString)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", autherror.ErrInvalidToken, err)
	}

	user, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	return &dto.ValidateOutput{Token: tokenString, UserID: user.ID}, nil
}

// Register creates a new user. A duplicate email is not an error: the
// caller gets an exists signal and no record is written.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterOutput, error) {
	existing, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &dto.RegisterOutput{Exists: true}, nil
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		LoginAttempt: 0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.RecomputeEnable(s.cfg.MaxLoginAttempts)

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, autherror.ErrRegistrationFailed
	}

	return &dto.RegisterOutput{UserID: created.ID}, nil
}

func (s *AuthService) ForgotPassword(ctx context.Context, input dto.ForgotPasswordInput) (*dto.SuccessOutput, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	resetToken := uuid.NewString()
	expiresAt := time.Now().Add(constant.ResetTokenTTL)

	if err := s.users.SetResetToken(ctx, user.ID, resetToken, expiresAt); err != nil {
		return nil, err
	}

	// Delivery is a separate collaborator; the token is only surfaced to
	// the log here.
	s.log.Info().
		Str("email", input.Email).
		Str("reset_token", resetToken).
		Time("expires_at", expiresAt).
		Msg("password reset token issued")

	return &dto.SuccessOutput{Success: true}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*dto.SuccessOutput, error) {
	// Disabled users must be able to reset their way back in, so the
	// lookup does not filter on the enable flag.
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}

	if user.ResetToken == nil || *user.ResetToken != input.Token {
		return nil, autherror.ErrInvalidResetToken
	}
	if user.ResetTokenExpiresAt == nil || user.ResetTokenExpiresAt.Before(time.Now()) {
		return nil, autherror.ErrResetTokenExpired
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdatePassword(ctx, user.ID, passwordHash); err != nil {
		return nil, err
	}

	return &dto.SuccessOutput{Success: true}, nil
}
