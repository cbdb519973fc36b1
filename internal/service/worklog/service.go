package worklog

import (
	"context"
	"fmt"
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
)

type Service struct {
	logs worklog.WorkLogRepository
}

func NewWorkLogService(logs worklog.WorkLogRepository) *Service {
	return &Service{logs: logs}
}

func (s *Service) Upsert(ctx context.Context, req worklog.UpsertWorkLogRequest) (worklog.WorkLogResponse, error) {
	logDate, err := time.Parse("2006-01-02", req.LogDate)
	if err != nil {
		return worklog.WorkLogResponse{}, fmt.Errorf("failed to parse log date: %w", err)
	}

	saved, err := s.logs.Upsert(ctx, worklog.WorkLog{
		UserID:  req.UserID,
		LogDate: logDate,
		Content: req.Content,
	})
	if err != nil {
		return worklog.WorkLogResponse{}, fmt.Errorf("failed to upsert work log: %w", err)
	}

	return saved.ToResponse(), nil
}

func (s *Service) Get(ctx context.Context, userID string, logDate string) (worklog.WorkLogResponse, error) {
	date, err := time.Parse("2006-01-02", logDate)
	if err != nil {
		return worklog.WorkLogResponse{}, fmt.Errorf("failed to parse log date: %w", err)
	}

	log, err := s.logs.GetByUserDate(ctx, userID, date)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}
	return log.ToResponse(), nil
}

func (s *Service) ListWeek(ctx context.Context, userID string, weekStart string) ([]worklog.WorkLogResponse, error) {
	from, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return nil, fmt.Errorf("failed to parse week start: %w", err)
	}
	to := from.AddDate(0, 0, 6)

	logs, err := s.logs.ListByUserRange(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	out := make([]worklog.WorkLogResponse, 0, len(logs))
	for _, log := range logs {
		out = append(out, log.ToResponse())
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, userID string, logDate string) error {
	date, err := time.Parse("2006-01-02", logDate)
	if err != nil {
		return fmt.Errorf("failed to parse log date: %w", err)
	}
	return s.logs.Delete(ctx, userID, date)
}
