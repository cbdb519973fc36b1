package worklog

import (
	"context"
	"time"
)

// WorkLogRepository - interface for work_logs table
type WorkLogRepository interface {
	// Upsert writes the log for a user and date, replacing any existing one.
	Upsert(ctx context.Context, log WorkLog) (WorkLog, error)
	GetByUserDate(ctx context.Context, userID string, logDate time.Time) (WorkLog, error)
	// ListByUserRange returns logs in [from, to] ordered by log_date ascending.
	ListByUserRange(ctx context.Context, userID string, from, to time.Time) ([]WorkLog, error)
	Delete(ctx context.Context, userID string, logDate time.Time) error
}
