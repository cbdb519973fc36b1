package postgresql

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/auth"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/user"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) user.RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

func (r *refreshTokenRepositoryImpl) Create(ctx context.Context, token user.RefreshToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, user_agent, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`

	_, err := q.Exec(ctx, query, token.ID, token.UserID, token.Token, token.UserAgent, token.ExpiresAt)
	return err
}

func (r *refreshTokenRepositoryImpl) GetByToken(ctx context.Context, token string) (user.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, token, user_agent, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var rt user.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(
		&rt.ID, &rt.UserID, &rt.Token, &rt.UserAgent, &rt.ExpiresAt, &rt.RevokedAt, &rt.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return user.RefreshToken{}, auth.ErrInvalidToken
	}
	return rt, err
}

func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	return err
}

func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	return err
}
