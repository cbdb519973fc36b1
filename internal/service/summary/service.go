package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/llm"
)

const systemPrompt = "You are an assistant that writes concise weekly work summaries " +
	"for an internal team report. Summarize the daily logs into a few short paragraphs, " +
	"grouping related work. Write in the first person and do not invent work that is not in the logs."

// Completer is the slice of the chat client the summary path needs.
type Completer interface {
	Complete(ctx context.Context, messages []llm.ChatMessage) (string, error)
}

type Service struct {
	logs      worklog.WorkLogRepository
	completer Completer
}

func NewSummaryService(logs worklog.WorkLogRepository, completer Completer) *Service {
	return &Service{logs: logs, completer: completer}
}

// WeeklySummary feeds the seven days starting at week_start through the
// chat model and returns the generated prose.
func (s *Service) WeeklySummary(ctx context.Context, req worklog.WeeklySummaryRequest) (worklog.WeeklySummaryResponse, error) {
	from, err := time.Parse("2006-01-02", req.WeekStart)
	if err != nil {
		return worklog.WeeklySummaryResponse{}, fmt.Errorf("failed to parse week start: %w", err)
	}
	to := from.AddDate(0, 0, 6)

	logs, err := s.logs.ListByUserRange(ctx, req.UserID, from, to)
	if err != nil {
		return worklog.WeeklySummaryResponse{}, fmt.Errorf("failed to list work logs: %w", err)
	}
	if len(logs) == 0 {
		return worklog.WeeklySummaryResponse{}, worklog.ErrEmptyWeek
	}

	var prompt strings.Builder
	fmt.Fprintf(&prompt, "Work logs for the week of %s:\n", from.Format("2006-01-02"))
	for _, log := range logs {
		fmt.Fprintf(&prompt, "\n## %s\n%s\n", log.LogDate.Format("2006-01-02"), log.Content)
	}

	text, err := s.completer.Complete(ctx, []llm.ChatMessage{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt.String()},
	})
	if err != nil {
		return worklog.WeeklySummaryResponse{}, fmt.Errorf("failed to generate weekly summary: %w", err)
	}

	return worklog.WeeklySummaryResponse{
		WeekStart:   from.Format("2006-01-02"),
		WeekEnd:     to.Format("2006-01-02"),
		Summary:     text,
		GeneratedAt: time.Now(),
	}, nil
}
