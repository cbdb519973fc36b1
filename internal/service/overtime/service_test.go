package overtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/overtime"
)

type fakeOvertimeRepo struct {
	items  map[string]overtime.OvertimeRequest
	nextID int
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{items: make(map[string]overtime.OvertimeRequest)}
}

func (r *fakeOvertimeRepo) Create(_ context.Context, req overtime.OvertimeRequest) (overtime.OvertimeRequest, error) {
	r.nextID++
	req.ID = fmt.Sprintf("ot-%d", r.nextID)
	req.CreatedAt = time.Now()
	r.items[req.ID] = req
	return req, nil
}

func (r *fakeOvertimeRepo) GetByID(_ context.Context, id string) (overtime.OvertimeRequest, error) {
	req, ok := r.items[id]
	if !ok {
		return overtime.OvertimeRequest{}, overtime.ErrOvertimeNotFound
	}
	return req, nil
}

func (r *fakeOvertimeRepo) ListByUser(_ context.Context, userID string, _ overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	var out []overtime.OvertimeRequest
	for _, req := range r.items {
		if req.UserID == userID {
			out = append(out, req)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeOvertimeRepo) ListAll(_ context.Context, _ overtime.OvertimeFilter) ([]overtime.OvertimeRequest, int64, error) {
	var out []overtime.OvertimeRequest
	for _, req := range r.items {
		out = append(out, req)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOvertimeRepo) UpdateStatus(_ context.Context, update overtime.UpdateStatusInput) error {
	req, ok := r.items[update.ID]
	if !ok {
		return overtime.ErrOvertimeNotFound
	}
	req.Status = update.Status
	req.ApproverID = &update.ApproverID
	req.ApprovedAt = &update.ApprovedAt
	req.RejectionReason = update.RejectionReason
	r.items[update.ID] = req
	return nil
}

func (r *fakeOvertimeRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return overtime.ErrOvertimeNotFound
	}
	delete(r.items, id)
	return nil
}

func TestCreateRequest_ComputesHours(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo)

	resp, err := svc.CreateRequest(context.Background(), overtime.CreateOvertimeRequest{
		UserID:  "u1",
		StartAt: "2026-03-02T18:00:00+09:00",
		EndAt:   "2026-03-02T21:30:00+09:00",
		Reason:  "release night",
	})
	require.NoError(t, err)

	assert.Equal(t, 3.5, resp.Hours)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateRequest_RejectsInvertedRange(t *testing.T) {
	svc := NewOvertimeService(newFakeOvertimeRepo())

	_, err := svc.CreateRequest(context.Background(), overtime.CreateOvertimeRequest{
		UserID:  "u1",
		StartAt: "2026-03-02T21:00:00+09:00",
		EndAt:   "2026-03-02T18:00:00+09:00",
		Reason:  "release night",
	})
	assert.ErrorIs(t, err, overtime.ErrInvalidTimeRange)
}

func TestApproveRequest_PendingOnly(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo)

	created, err := svc.CreateRequest(context.Background(), overtime.CreateOvertimeRequest{
		UserID:  "u1",
		StartAt: "2026-03-02T18:00:00+09:00",
		EndAt:   "2026-03-02T20:00:00+09:00",
		Reason:  "release night",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveRequest(context.Background(), created.ID, "admin-1"))

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.OvertimeStatusApproved, stored.Status)

	err = svc.ApproveRequest(context.Background(), created.ID, "admin-1")
	assert.ErrorIs(t, err, overtime.ErrAlreadyProcessed)
}

func TestCancelRequest_OwnerAndStateChecks(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo)

	created, err := svc.CreateRequest(context.Background(), overtime.CreateOvertimeRequest{
		UserID:  "u1",
		StartAt: "2026-03-02T18:00:00+09:00",
		EndAt:   "2026-03-02T20:00:00+09:00",
		Reason:  "release night",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CancelRequest(context.Background(), created.ID, "u2"), overtime.ErrNotRequestOwner)

	require.NoError(t, svc.ApproveRequest(context.Background(), created.ID, "admin-1"))
	assert.ErrorIs(t, svc.CancelRequest(context.Background(), created.ID, "u1"), overtime.ErrAlreadyProcessed)
}

func TestRejectRequest_RecordsReason(t *testing.T) {
	repo := newFakeOvertimeRepo()
	svc := NewOvertimeService(repo)

	created, err := svc.CreateRequest(context.Background(), overtime.CreateOvertimeRequest{
		UserID:  "u1",
		StartAt: "2026-03-02T18:00:00+09:00",
		EndAt:   "2026-03-02T20:00:00+09:00",
		Reason:  "release night",
	})
	require.NoError(t, err)

	err = svc.RejectRequest(context.Background(), overtime.RejectOvertimeRequest{
		RequestID: created.ID,
		Reason:    "not pre-agreed",
	}, "admin-1")
	require.NoError(t, err)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.OvertimeStatusRejected, stored.Status)
	require.NotNil(t, stored.RejectionReason)
	assert.Equal(t, "not pre-agreed", *stored.RejectionReason)
}
