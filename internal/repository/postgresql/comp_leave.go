package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type compBalanceRepositoryImpl struct {
	db *database.DB
}

func NewCompBalanceRepository(db *database.DB) leave.CompBalanceRepository {
	return &compBalanceRepositoryImpl{db: db}
}

func (r *compBalanceRepositoryImpl) Create(ctx context.Context, balance leave.CompLeaveBalance) (leave.CompLeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_leave_balances (id, user_id, year, total_hours, used_hours, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.UserID, balance.Year, balance.TotalHours, balance.UsedHours,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err == pgx.ErrNoRows {
		return r.GetByUserYear(ctx, balance.UserID, balance.Year)
	}
	if err != nil {
		return leave.CompLeaveBalance{}, err
	}

	return balance, nil
}

func (r *compBalanceRepositoryImpl) GetByUserYear(ctx context.Context, userID string, year int) (leave.CompLeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, total_hours, used_hours, created_at, updated_at
		FROM comp_leave_balances
		WHERE user_id = $1 AND year = $2
	`

	var b leave.CompLeaveBalance
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&b.ID, &b.UserID, &b.Year, &b.TotalHours, &b.UsedHours, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *compBalanceRepositoryImpl) AddUsedHours(ctx context.Context, userID string, year int, hours float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO comp_leave_balances (id, user_id, year, total_hours, used_hours, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, 0, $3, NOW(), NOW())
		ON CONFLICT (user_id, year)
		DO UPDATE SET used_hours = comp_leave_balances.used_hours + EXCLUDED.used_hours, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, userID, year, hours)
	if err != nil {
		return fmt.Errorf("failed to add used hours for user %s: %w", userID, err)
	}
	return nil
}
