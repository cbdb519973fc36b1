package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type annualBalanceRepositoryImpl struct {
	db *database.DB
}

func NewAnnualBalanceRepository(db *database.DB) leave.AnnualBalanceRepository {
	return &annualBalanceRepositoryImpl{db: db}
}

func (r *annualBalanceRepositoryImpl) Create(ctx context.Context, balance leave.AnnualLeaveBalance) (leave.AnnualLeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO annual_leave_balances (id, user_id, year, total_days, used_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, year) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		balance.UserID, balance.Year, balance.TotalDays, balance.UsedDays,
	).Scan(&balance.ID, &balance.CreatedAt, &balance.UpdatedAt)
	if err == pgx.ErrNoRows {
		// Row already existed, return the stored one.
		return r.GetByUserYear(ctx, balance.UserID, balance.Year)
	}
	if err != nil {
		return leave.AnnualLeaveBalance{}, err
	}

	return balance, nil
}

func (r *annualBalanceRepositoryImpl) GetByUserYear(ctx context.Context, userID string, year int) (leave.AnnualLeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, total_days, used_days, created_at, updated_at
		FROM annual_leave_balances
		WHERE user_id = $1 AND year = $2
	`

	var b leave.AnnualLeaveBalance
	err := q.QueryRow(ctx, query, userID, year).Scan(
		&b.ID, &b.UserID, &b.Year, &b.TotalDays, &b.UsedDays, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *annualBalanceRepositoryImpl) ListByYear(ctx context.Context, year int) ([]leave.AnnualLeaveBalance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, year, total_days, used_days, created_at, updated_at
		FROM annual_leave_balances
		WHERE year = $1
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var balances []leave.AnnualLeaveBalance
	for rows.Next() {
		var b leave.AnnualLeaveBalance
		if err := rows.Scan(&b.ID, &b.UserID, &b.Year, &b.TotalDays, &b.UsedDays, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}

	return balances, rows.Err()
}

func (r *annualBalanceRepositoryImpl) AddUsedDays(ctx context.Context, userID string, year int, days float64) error {
	q := GetQuerier(ctx, r.db)

	// Upsert keeps approval single-statement: a missing balance row is
	// seeded with the default allotment before the increment applies.
	query := `
		INSERT INTO annual_leave_balances (id, user_id, year, total_days, used_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (user_id, year)
		DO UPDATE SET used_days = annual_leave_balances.used_days + EXCLUDED.used_days, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, userID, year, leave.DefaultAnnualAllowanceDays, days)
	if err != nil {
		return fmt.Errorf("failed to add used days for user %s: %w", userID, err)
	}
	return nil
}

func (r *annualBalanceRepositoryImpl) UpsertTotalDays(ctx context.Context, userID string, year int, totalDays float64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO annual_leave_balances (id, user_id, year, total_days, used_days, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, 0, NOW(), NOW())
		ON CONFLICT (user_id, year)
		DO UPDATE SET total_days = EXCLUDED.total_days, updated_at = NOW()
	`

	_, err := q.Exec(ctx, query, userID, year, totalDays)
	if err != nil {
		return fmt.Errorf("failed to upsert total days for user %s: %w", userID, err)
	}
	return nil
}
