package postgresql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/database"
)

type workLogRepositoryImpl struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

func (r *workLogRepositoryImpl) Upsert(ctx context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_logs (id, user_id, log_date, content, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, log_date)
		DO UPDATE SET content = EXCLUDED.content, updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, log.UserID, log.LogDate, log.Content).Scan(&log.ID, &log.CreatedAt, &log.UpdatedAt)
	if err != nil {
		return worklog.WorkLog{}, err
	}

	return log, nil
}

func (r *workLogRepositoryImpl) GetByUserDate(ctx context.Context, userID string, logDate time.Time) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, log_date, content, created_at, updated_at
		FROM work_logs
		WHERE user_id = $1 AND log_date = $2
	`

	var log worklog.WorkLog
	err := q.QueryRow(ctx, query, userID, logDate).Scan(
		&log.ID, &log.UserID, &log.LogDate, &log.Content, &log.CreatedAt, &log.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
	}
	return log, err
}

func (r *workLogRepositoryImpl) ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, log_date, content, created_at, updated_at
		FROM work_logs
		WHERE user_id = $1 AND log_date BETWEEN $2 AND $3
		ORDER BY log_date
	`

	rows, err := q.Query(ctx, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []worklog.WorkLog
	for rows.Next() {
		var log worklog.WorkLog
		if err := rows.Scan(&log.ID, &log.UserID, &log.LogDate, &log.Content, &log.CreatedAt, &log.UpdatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	return logs, rows.Err()
}

func (r *workLogRepositoryImpl) Delete(ctx context.Context, userID string, logDate time.Time) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM work_logs WHERE user_id = $1 AND log_date = $2`, userID, logDate)
	if err != nil {
		return err
	}
	if commandTag.RowsAffected() != 1 {
		return worklog.ErrWorkLogNotFound
	}
	return nil
}
