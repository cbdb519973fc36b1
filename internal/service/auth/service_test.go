package auth

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/auth"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/jwt"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/oauth"
)

type fakeUserRepo struct {
	byEmail    map[string]user.User
	byGoogleID map[string]user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) { return u, nil }

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByGoogleID(_ context.Context, googleID string) (user.User, error) {
	u, ok := r.byGoogleID[googleID]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]user.User, error) { return nil, nil }

func (r *fakeUserRepo) Update(_ context.Context, u user.User) error {
	r.byEmail[u.Email] = u
	if u.GoogleID != nil {
		r.byGoogleID[*u.GoogleID] = u
	}
	return nil
}

type fakeTokenRepo struct {
	byToken map[string]user.RefreshToken
}

func (r *fakeTokenRepo) Create(_ context.Context, token user.RefreshToken) error {
	r.byToken[token.Token] = token
	return nil
}

func (r *fakeTokenRepo) GetByToken(_ context.Context, token string) (user.RefreshToken, error) {
	rt, ok := r.byToken[token]
	if !ok {
		return user.RefreshToken{}, auth.ErrInvalidToken
	}
	return rt, nil
}

func (r *fakeTokenRepo) Revoke(_ context.Context, token string) error {
	rt, ok := r.byToken[token]
	if !ok {
		return nil
	}
	now := time.Now()
	rt.RevokedAt = &now
	r.byToken[token] = rt
	return nil
}

func (r *fakeTokenRepo) RevokeAllForUser(_ context.Context, userID string) error {
	now := time.Now()
	for k, rt := range r.byToken {
		if rt.UserID == userID && rt.RevokedAt == nil {
			rt.RevokedAt = &now
			r.byToken[k] = rt
		}
	}
	return nil
}

type stubGoogle struct {
	info oauth.GoogleInformation
	err  error
}

func (g stubGoogle) GenerateState(string) string { return "state" }
func (g stubGoogle) RedirectURL(string) string   { return "https://accounts.google.com/o/oauth2/auth" }

func (g stubGoogle) VerifyToken(_ context.Context, _ string) (*oauth2.Token, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &oauth2.Token{AccessToken: "ya29.test"}, nil
}

func (g stubGoogle) VerifyUser(_ context.Context, _ *oauth2.Token) (oauth.GoogleInformation, error) {
	return g.info, g.err
}

func hash(t *testing.T, password string) *string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(h)
	return &s
}

func newService(t *testing.T, google oauth.GoogleService) (*Service, *fakeUserRepo, *fakeTokenRepo) {
	users := &fakeUserRepo{
		byEmail: map[string]user.User{
			"ada@teamhub.dev": {
				ID:           "u1",
				Email:        "ada@teamhub.dev",
				PasswordHash: hash(t, "correct horse"),
				FullName:     "Ada Lovelace",
				Role:         user.RoleMember,
				IsActive:     true,
			},
		},
		byGoogleID: map[string]user.User{},
	}
	tokens := &fakeTokenRepo{byToken: map[string]user.RefreshToken{}}
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	return NewAuthService(users, tokens, jwtService, google), users, tokens
}

func claimsOf(t *testing.T, jwtService jwt.Service, token string) map[string]interface{} {
	t.Helper()
	parsed, err := jwtauth.VerifyToken(jwtService.JWTAuth(), token)
	require.NoError(t, err)
	claims, err := parsed.AsMap(context.Background())
	require.NoError(t, err)
	return claims
}

func TestLogin(t *testing.T) {
	svc, users, tokens := newService(t, stubGoogle{})

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ada@teamhub.dev",
			Password: "correct horse",
		}, "go-test")
		require.NoError(t, err)

		assert.NotEmpty(t, resp.AccessToken)
		assert.NotEmpty(t, resp.RefreshToken)
		assert.Greater(t, resp.AccessTokenExpiresIn, int64(0))

		jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
		claims := claimsOf(t, jwtService, resp.AccessToken)
		assert.Equal(t, "u1", claims["user_id"])
		assert.Equal(t, "member", claims["role"])
		assert.Equal(t, "access", claims["type"])

		stored, err := tokens.GetByToken(context.Background(), resp.RefreshToken)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.ID, "stored session needs its own id")
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ada@teamhub.dev",
			Password: "wrong",
		}, "go-test")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "nobody@teamhub.dev",
			Password: "correct horse",
		}, "go-test")
		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("inactive account", func(t *testing.T) {
		u := users.byEmail["ada@teamhub.dev"]
		u.IsActive = false
		users.byEmail["ada@teamhub.dev"] = u
		defer func() {
			u.IsActive = true
			users.byEmail["ada@teamhub.dev"] = u
		}()

		_, err := svc.Login(context.Background(), auth.LoginRequest{
			Email:    "ada@teamhub.dev",
			Password: "correct horse",
		}, "go-test")
		assert.ErrorIs(t, err, user.ErrUserInactive)
	})
}

func TestLoginWithGoogle_LinksAccountOnFirstLogin(t *testing.T) {
	google := stubGoogle{info: oauth.GoogleInformation{
		GoogleID:      "g-123",
		Email:         "ada@teamhub.dev",
		Name:          "Ada Lovelace",
		VerifiedEmail: true,
	}}
	svc, users, _ := newService(t, google)

	resp, err := svc.LoginWithGoogle(context.Background(), "auth-code", "go-test")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	linked := users.byEmail["ada@teamhub.dev"]
	require.NotNil(t, linked.GoogleID)
	assert.Equal(t, "g-123", *linked.GoogleID)
}

func TestLoginWithGoogle_UnknownAccount(t *testing.T) {
	google := stubGoogle{info: oauth.GoogleInformation{
		GoogleID:      "g-999",
		Email:         "stranger@example.com",
		VerifiedEmail: true,
	}}
	svc, _, _ := newService(t, google)

	_, err := svc.LoginWithGoogle(context.Background(), "auth-code", "go-test")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestRefresh_RotatesToken(t *testing.T) {
	svc, _, tokens := newService(t, stubGoogle{})

	first, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@teamhub.dev",
		Password: "correct horse",
	}, "go-test")
	require.NoError(t, err)

	second, err := svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: first.RefreshToken,
		UserAgent:    "go-test",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)

	spent, err := tokens.GetByToken(context.Background(), first.RefreshToken)
	require.NoError(t, err)
	assert.NotNil(t, spent.RevokedAt, "presented token must be revoked on rotation")

	_, err = svc.Refresh(context.Background(), auth.RefreshRequest{
		RefreshToken: first.RefreshToken,
		UserAgent:    "go-test",
	})
	assert.ErrorIs(t, err, auth.ErrTokenRevoked)
}

func TestRefresh_ExpiredToken(t *testing.T) {
	svc, _, tokens := newService(t, stubGoogle{})

	tokens.byToken["stale"] = user.RefreshToken{
		ID:        "rt-1",
		UserID:    "u1",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}

	_, err := svc.Refresh(context.Background(), auth.RefreshRequest{RefreshToken: "stale"})
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestLogout_RevokesToken(t *testing.T) {
	svc, _, tokens := newService(t, stubGoogle{})

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "ada@teamhub.dev",
		Password: "correct horse",
	}, "go-test")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), resp.RefreshToken))

	stored, err := tokens.GetByToken(context.Background(), resp.RefreshToken)
	require.NoError(t, err)
	assert.NotNil(t, stored.RevokedAt)
}

func TestRefreshTokenCookieShape(t *testing.T) {
	jwtService := jwt.NewJWTService("test-secret", "15m", "720h")
	cookie := jwtService.RefreshTokenCookie("tok", time.Now().Add(time.Hour).Unix())

	assert.Equal(t, "refresh_token", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}
