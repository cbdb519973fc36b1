package approval

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
)

type stubLeaveRepo struct {
	leave.LeaveRequestRepository
	pending []leave.LeaveRequest
}

func (r stubLeaveRepo) ListAll(_ context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, int64, error) {
	if filter.Status == nil || *filter.Status != string(leave.LeaveRequestStatusPending) {
		return nil, 0, nil
	}
	return r.pending, int64(len(r.pending)), nil
}

type stubOvertimeRepo struct {
	overtime.OvertimeRepository
	pending []overtime.OvertimeRequest
}

func (r stubOvertimeRepo) ListAll(_ context.Context, filter overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	if filter.Status == nil || *filter.Status != string(overtime.OvertimeStatusPending) {
		return nil, 0, nil
	}
	return r.pending, int64(len(r.pending)), nil
}

type stubDocumentRepo struct {
	document.DocumentRepository
	pending []document.Document
}

func (r stubDocumentRepo) ListAll(_ context.Context, filter document.DocumentFilter) ([]document.Document, int64, error) {
	if filter.Status == nil || *filter.Status != string(document.DocumentStatusPending) {
		return nil, 0, nil
	}
	return r.pending, int64(len(r.pending)), nil
}

func at(hour int) time.Time {
	return time.Date(2026, 3, 2, hour, 0, 0, 0, time.UTC)
}

func TestPendingQueue_MergesAndSortsNewestFirst(t *testing.T) {
	day := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	svc := NewApprovalService(
		stubLeaveRepo{pending: []leave.LeaveRequest{
			{ID: "lr-1", UserID: "u1", LeaveType: leave.LeaveTypeFull, StartDate: day, EndDate: day, CreatedAt: at(10)},
		}},
		stubOvertimeRepo{pending: []overtime.OvertimeRequest{
			{ID: "ot-1", UserID: "u2", StartAt: at(18), EndAt: at(21), CreatedAt: at(12)},
		}},
		stubDocumentRepo{pending: []document.Document{
			{ID: "doc-1", UserID: "u3", Title: "Family trip", CreatedAt: at(11)},
		}},
	)

	resp, err := svc.PendingQueue(context.Background())
	require.NoError(t, err)

	require.Equal(t, 3, resp.Total)
	assert.Equal(t, []Kind{KindOvertime, KindDocument, KindLeave},
		[]Kind{resp.Items[0].Kind, resp.Items[1].Kind, resp.Items[2].Kind})
	assert.Equal(t, "ot-1", resp.Items[0].ID)
	assert.Equal(t, "overtime 2026-03-02 (3.0h)", resp.Items[0].Title)
	assert.Equal(t, "full 2026-03-09 - 2026-03-09", resp.Items[2].Title)
}

func TestPendingQueue_EmptySources(t *testing.T) {
	svc := NewApprovalService(stubLeaveRepo{}, stubOvertimeRepo{}, stubDocumentRepo{})

	resp, err := svc.PendingQueue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.Empty(t, resp.Items)
}
