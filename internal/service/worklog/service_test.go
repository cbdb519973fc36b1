package worklog

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	logs map[string]worklog.WorkLog
}

func newFakeWorkLogRepo() *fakeWorkLogRepo {
	return &fakeWorkLogRepo{logs: make(map[string]worklog.WorkLog)}
}

func (f *fakeWorkLogRepo) key(userID string, logDate time.Time) string {
	return userID + "|" + logDate.Format("2006-01-02")
}

func (f *fakeWorkLogRepo) Upsert(_ context.Context, log worklog.WorkLog) (worklog.WorkLog, error) {
	key := f.key(log.UserID, log.LogDate)
	if existing, ok := f.logs[key]; ok {
		log.ID = existing.ID
	} else {
		log.ID = fmt.Sprintf("log-%d", len(f.logs)+1)
	}
	f.logs[key] = log
	return log, nil
}

func (f *fakeWorkLogRepo) GetByUserDate(_ context.Context, userID string, logDate time.Time) (worklog.WorkLog, error) {
	log, ok := f.logs[f.key(userID, logDate)]
	if !ok {
		return worklog.WorkLog{}, worklog.ErrWorkLogNotFound
	}
	return log, nil
}

func (f *fakeWorkLogRepo) ListByUserRange(_ context.Context, userID string, from, to time.Time) ([]worklog.WorkLog, error) {
	var out []worklog.WorkLog
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		if log, ok := f.logs[f.key(userID, day)]; ok {
			out = append(out, log)
		}
	}
	return out, nil
}

func (f *fakeWorkLogRepo) Delete(_ context.Context, userID string, logDate time.Time) error {
	key := f.key(userID, logDate)
	if _, ok := f.logs[key]; !ok {
		return worklog.ErrWorkLogNotFound
	}
	delete(f.logs, key)
	return nil
}

func TestWorkLogServiceUpsert(t *testing.T) {
	repo := newFakeWorkLogRepo()
	service := NewWorkLogService(repo)

	created, err := service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
		UserID:  "user-1",
		LogDate: "2026-03-02",
		Content: "reviewed quarterly reports",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "2026-03-02", created.LogDate)

	replaced, err := service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
		UserID:  "user-1",
		LogDate: "2026-03-02",
		Content: "reviewed quarterly reports and filed summary",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, replaced.ID, "same day should replace, not duplicate")
	assert.Len(t, repo.logs, 1)

	_, err = service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
		UserID:  "user-1",
		LogDate: "03/02/2026",
		Content: "bad date",
	})
	assert.Error(t, err)
}

func TestWorkLogServiceGet(t *testing.T) {
	repo := newFakeWorkLogRepo()
	service := NewWorkLogService(repo)

	_, err := service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
		UserID:  "user-1",
		LogDate: "2026-03-02",
		Content: "pairing on onboarding flow",
	})
	require.NoError(t, err)

	got, err := service.Get(context.Background(), "user-1", "2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, "pairing on onboarding flow", got.Content)

	_, err = service.Get(context.Background(), "user-1", "2026-03-03")
	assert.ErrorIs(t, err, worklog.ErrWorkLogNotFound)

	_, err = service.Get(context.Background(), "user-2", "2026-03-02")
	assert.ErrorIs(t, err, worklog.ErrWorkLogNotFound, "other users' logs are not visible")
}

func TestWorkLogServiceListWeek(t *testing.T) {
	repo := newFakeWorkLogRepo()
	service := NewWorkLogService(repo)

	for _, date := range []string{"2026-03-01", "2026-03-02", "2026-03-08", "2026-03-09"} {
		_, err := service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
			UserID:  "user-1",
			LogDate: date,
			Content: "work on " + date,
		})
		require.NoError(t, err)
	}

	// Week of March 2 covers the 2nd through the 8th.
	week, err := service.ListWeek(context.Background(), "user-1", "2026-03-02")
	require.NoError(t, err)
	require.Len(t, week, 2)
	assert.Equal(t, "2026-03-02", week[0].LogDate)
	assert.Equal(t, "2026-03-08", week[1].LogDate)
}

func TestWorkLogServiceDelete(t *testing.T) {
	repo := newFakeWorkLogRepo()
	service := NewWorkLogService(repo)

	_, err := service.Upsert(context.Background(), worklog.UpsertWorkLogRequest{
		UserID:  "user-1",
		LogDate: "2026-03-02",
		Content: "to be removed",
	})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), "user-1", "2026-03-02"))
	assert.ErrorIs(t, service.Delete(context.Background(), "user-1", "2026-03-02"), worklog.ErrWorkLogNotFound)
}
