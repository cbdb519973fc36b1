package worklog

import "context"

type WorkLogService interface {
	Upsert(ctx context.Context, req UpsertWorkLogRequest) (WorkLogResponse, error)
	Get(ctx context.Context, userID string, logDate string) (WorkLogResponse, error)
	// ListWeek returns the logs for the seven days starting at weekStart.
	ListWeek(ctx context.Context, userID string, weekStart string) ([]WorkLogResponse, error)
	Delete(ctx context.Context, userID string, logDate string) error
}

// SummaryService turns a week of logs into prose.
type SummaryService interface {
	WeeklySummary(ctx context.Context, req WeeklySummaryRequest) (WeeklySummaryResponse, error)
}
