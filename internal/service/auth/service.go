package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/auth"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/jwt"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/oauth"
)

type Service struct {
	users  user.UserRepository
	tokens user.RefreshTokenRepository
	jwt    jwt.Service
	google oauth.GoogleService
}

func NewAuthService(
	users user.UserRepository,
	tokens user.RefreshTokenRepository,
	jwtService jwt.Service,
	google oauth.GoogleService,
) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
		jwt:    jwtService,
		google: google,
	}
}

func (s *Service) Login(ctx context.Context, req auth.LoginRequest, userAgent string) (auth.TokenResponse, error) {
	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		// Do not reveal whether the account exists.
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}
	if u.PasswordHash == nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueTokens(ctx, u, userAgent)
}

func (s *Service) LoginWithGoogle(ctx context.Context, code string, userAgent string) (auth.TokenResponse, error) {
	token, err := s.google.VerifyToken(ctx, code)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to exchange google code: %w", err)
	}

	info, err := s.google.VerifyUser(ctx, token)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to verify google user: %w", err)
	}

	u, err := s.users.GetByGoogleID(ctx, info.GoogleID)
	if err != nil {
		// Accounts are provisioned by email first; link the Google ID on
		// the first SSO login.
		u, err = s.users.GetByEmail(ctx, info.Email)
		if err != nil {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		u.GoogleID = &info.GoogleID
		if err := s.users.Update(ctx, u); err != nil {
			return auth.TokenResponse{}, fmt.Errorf("failed to link google account: %w", err)
		}
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	return s.issueTokens(ctx, u, userAgent)
}

func (s *Service) Refresh(ctx context.Context, req auth.RefreshRequest) (auth.TokenResponse, error) {
	stored, err := s.tokens.GetByToken(ctx, req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if stored.RevokedAt != nil {
		return auth.TokenResponse{}, auth.ErrTokenRevoked
	}
	if time.Now().After(stored.ExpiresAt) {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	u, err := s.users.GetByID(ctx, stored.UserID)
	if err != nil {
		return auth.TokenResponse{}, err
	}
	if !u.IsActive {
		return auth.TokenResponse{}, user.ErrUserInactive
	}

	// Rotation: the presented token is spent whether or not issuing
	// succeeds afterwards.
	if err := s.tokens.Revoke(ctx, req.RefreshToken); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return s.issueTokens(ctx, u, req.UserAgent)
}

func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	return s.tokens.Revoke(ctx, refreshToken)
}

func (s *Service) issueTokens(ctx context.Context, u user.User, userAgent string) (auth.TokenResponse, error) {
	accessToken, accessExpiresAt, err := s.jwt.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwt.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	var agent *string
	if userAgent != "" {
		agent = &userAgent
	}

	if err := s.tokens.Create(ctx, user.RefreshToken{
		ID:        uuid.NewString(),
		UserID:    u.ID,
		Token:     refreshToken,
		UserAgent: agent,
		ExpiresAt: time.Unix(refreshExpiresAt, 0),
	}); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return auth.TokenResponse{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  accessExpiresAt - time.Now().Unix(),
		RefreshToken:          refreshToken,
		RefreshTokenExpiresAt: refreshExpiresAt,
	}, nil
}
