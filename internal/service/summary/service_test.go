package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/llm"
)

type stubLogRepo struct {
	logs []worklog.WorkLog
}

func (r stubLogRepo) Upsert(_ context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	return log, nil
}

func (r stubLogRepo) GetByUserDate(_ context.Context, _ string, _ time.Time) (worklog.WorkLog, error) {
	return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
}

func (r stubLogRepo) ListByUserRange(_ context.Context, userID string, from, to time.Time) ([]worklog.WorkLog, error) {
	var out []worklog.WorkLog
	for _, log := range r.logs {
		if log.UserID == userID && !log.LogDate.Before(from) && !log.LogDate.After(to) {
			out = append(out, log)
		}
	}
	return out, nil
}

func (r stubLogRepo) Delete(_ context.Context, _ string, _ time.Time) error { return nil }

func day(d int) time.Time {
	return time.Date(2026, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestWeeklySummary_GeneratesFromWeekLogs(t *testing.T) {
	var gotAuth string
	var gotPrompt string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")

		var req struct {
			Model    string `json:"model"`
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		gotPrompt = req.Messages[1].Content

		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "Shipped the approval flow and fixed two bugs."}},
			},
		})
	}))
	defer server.Close()

	repo := stubLogRepo{logs: []worklog.WorkLog{
		{UserID: "u1", LogDate: day(2), Content: "Implemented approval endpoint"},
		{UserID: "u1", LogDate: day(4), Content: "Fixed calendar off-by-one"},
		// Outside the requested week.
		{UserID: "u1", LogDate: day(9), Content: "Sprint planning"},
	}}

	svc := NewSummaryService(repo, llm.NewClient(server.URL, "test-key", "gpt-4o-mini", 0))

	resp, err := svc.WeeklySummary(context.Background(), worklog.WeeklySummaryRequest{
		UserID:    "u1",
		WeekStart: "2026-03-02",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "2026-03-02", resp.WeekStart)
	assert.Equal(t, "2026-03-08", resp.WeekEnd)
	assert.Equal(t, "Shipped the approval flow and fixed two bugs.", resp.Summary)

	assert.Contains(t, gotPrompt, "## 2026-03-02")
	assert.Contains(t, gotPrompt, "Implemented approval endpoint")
	assert.Contains(t, gotPrompt, "## 2026-03-04")
	assert.False(t, strings.Contains(gotPrompt, "Sprint planning"), "logs outside the week must not leak into the prompt")
}

func TestWeeklySummary_EmptyWeek(t *testing.T) {
	svc := NewSummaryService(stubLogRepo{}, llm.NewClient("http://unused", "k", "m", 0))

	_, err := svc.WeeklySummary(context.Background(), worklog.WeeklySummaryRequest{
		UserID:    "u1",
		WeekStart: "2026-03-02",
	})
	assert.ErrorIs(t, err, worklog.ErrEmptyWeek)
}

func TestWeeklySummary_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":"rate_limited","message":"slow down"}}`))
	}))
	defer server.Close()

	repo := stubLogRepo{logs: []worklog.WorkLog{
		{UserID: "u1", LogDate: day(2), Content: "Implemented approval endpoint"},
	}}
	svc := NewSummaryService(repo, llm.NewClient(server.URL, "k", "m", 0))

	_, err := svc.WeeklySummary(context.Background(), worklog.WeeklySummaryRequest{
		UserID:    "u1",
		WeekStart: "2026-03-02",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate weekly summary")
}
