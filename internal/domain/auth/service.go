package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest, userAgent string) (TokenResponse, error)
	LoginWithGoogle(ctx context.Context, code string, userAgent string) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshRequest) (TokenResponse, error)
	Logout(ctx context.Context, refreshToken string) error
}
