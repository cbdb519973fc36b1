package document

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamhub-intranet/leave-backend-go/internal/domain/document"
	"github.com/teamhub-intranet/leave-backend-go/internal/domain/leave"
)

type fakeTx struct{}

func (fakeTx) InTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

type fakeDocumentRepo struct {
	items  map[string]document.Document
	nextID int
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{items: make(map[string]document.Document)}
}

func (r *fakeDocumentRepo) Create(_ context.Context, doc document.Document) (document.Document, error) {
	r.nextID++
	doc.ID = fmt.Sprintf("doc-%d", r.nextID)
	doc.CreatedAt = time.Now()
	r.items[doc.ID] = doc
	return doc, nil
}

func (r *fakeDocumentRepo) GetByID(_ context.Context, id string) (document.Document, error) {
	doc, ok := r.items[id]
	if !ok {
		return document.Document{}, document.ErrDocumentNotFound
	}
	return doc, nil
}

func (r *fakeDocumentRepo) GetByIDForUpdate(ctx context.Context, id string) (document.Document, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeDocumentRepo) ListByUser(_ context.Context, userID string, _ document.DocumentFilter) ([]document.Document, int64, error) {
	var out []document.Document
	for _, doc := range r.items {
		if doc.UserID == userID {
			out = append(out, doc)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeDocumentRepo) ListAll(_ context.Context, _ document.DocumentFilter) ([]document.Document, int64, error) {
	var out []document.Document
	for _, doc := range r.items {
		out = append(out, doc)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDocumentRepo) ListApprovedLeaveByYear(_ context.Context, year int) ([]document.Document, error) {
	var out []document.Document
	for _, doc := range r.items {
		if doc.Status == document.DocumentStatusApproved && doc.IsLeaveAttendance() &&
			doc.StartDate != nil && doc.StartDate.Year() == year {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (r *fakeDocumentRepo) UpdateStatus(_ context.Context, update document.UpdateStatusInput) error {
	doc, ok := r.items[update.ID]
	if !ok {
		return document.ErrDocumentNotFound
	}
	doc.Status = update.Status
	doc.ApproverID = &update.ApproverID
	doc.ApprovedAt = &update.ApprovedAt
	doc.RejectionReason = update.RejectionReason
	r.items[update.ID] = doc
	return nil
}

func (r *fakeDocumentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return document.ErrDocumentNotFound
	}
	delete(r.items, id)
	return nil
}

type fakeLabelRepo struct {
	items map[string]document.DocumentLabel
}

func newFakeLabelRepo() *fakeLabelRepo {
	return &fakeLabelRepo{items: map[string]document.DocumentLabel{
		"lbl-1": {ID: "lbl-1", Name: "Attendance", Category: "hr"},
	}}
}

func (r *fakeLabelRepo) Create(_ context.Context, label document.DocumentLabel) (document.DocumentLabel, error) {
	label.ID = fmt.Sprintf("lbl-%d", len(r.items)+1)
	r.items[label.ID] = label
	return label, nil
}

func (r *fakeLabelRepo) GetByID(_ context.Context, id string) (document.DocumentLabel, error) {
	label, ok := r.items[id]
	if !ok {
		return document.DocumentLabel{}, document.ErrLabelNotFound
	}
	return label, nil
}

func (r *fakeLabelRepo) List(_ context.Context) ([]document.DocumentLabel, error) {
	var out []document.DocumentLabel
	for _, label := range r.items {
		out = append(out, label)
	}
	return out, nil
}

type fakeAnnualRepo struct {
	used map[string]float64
}

func (r *fakeAnnualRepo) Create(_ context.Context, b leave.AnnualLeaveBalance) (leave.AnnualLeaveBalance, error) {
	return b, nil
}

func (r *fakeAnnualRepo) GetByUserYear(_ context.Context, _ string, _ int) (leave.AnnualLeaveBalance, error) {
	return leave.AnnualLeaveBalance{}, pgx.ErrNoRows
}

func (r *fakeAnnualRepo) ListByYear(_ context.Context, _ int) ([]leave.AnnualLeaveBalance, error) {
	return nil, nil
}

func (r *fakeAnnualRepo) AddUsedDays(_ context.Context, userID string, year int, days float64) error {
	r.used[fmt.Sprintf("%s/%d", userID, year)] += days
	return nil
}

func (r *fakeAnnualRepo) UpsertTotalDays(_ context.Context, _ string, _ int, _ float64) error {
	return nil
}

func strPtr(s string) *string { return &s }

func newService() (*Service, *fakeDocumentRepo, *fakeAnnualRepo) {
	docs := newFakeDocumentRepo()
	balances := &fakeAnnualRepo{used: make(map[string]float64)}
	svc := NewDocumentService(fakeTx{}, docs, newFakeLabelRepo(), balances)
	return svc, docs, balances
}

func TestCreateDocument_PlainDocumentHasNoLeaveFields(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:  "u1",
		LabelID: "lbl-1",
		Title:   "Expense policy question",
	})
	require.NoError(t, err)

	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.LeaveDays)
}

func TestCreateDocument_UnknownLabel(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:  "u1",
		LabelID: "missing",
		Title:   "Expense policy question",
	})
	assert.ErrorIs(t, err, document.ErrLabelNotFound)
}

func TestCreateDocument_LeaveAttendanceComputesDays(t *testing.T) {
	svc, _, _ := newService()

	resp, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:         "u1",
		LabelID:        "lbl-1",
		Title:          "Family trip",
		AttendanceType: strPtr(document.AttendanceTypeLeave),
		LeaveType:      strPtr("full"),
		StartDate:      strPtr("2026-03-02"),
		EndDate:        strPtr("2026-03-04"),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.LeaveDays)
	assert.Equal(t, 3.0, *resp.LeaveDays)
}

func TestCreateDocument_LeaveAttendanceMissingFields(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:         "u1",
		LabelID:        "lbl-1",
		Title:          "Family trip",
		AttendanceType: strPtr(document.AttendanceTypeLeave),
	})
	assert.ErrorIs(t, err, document.ErrMissingLeaveField)
}

func TestApproveDocument_LeaveAttendanceChargesBalance(t *testing.T) {
	svc, docs, balances := newService()

	created, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:         "u1",
		LabelID:        "lbl-1",
		Title:          "Family trip",
		AttendanceType: strPtr(document.AttendanceTypeLeave),
		LeaveType:      strPtr("full"),
		StartDate:      strPtr("2026-03-02"),
		EndDate:        strPtr("2026-03-04"),
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveDocument(context.Background(), created.ID, "admin-1"))

	stored, err := docs.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, document.DocumentStatusApproved, stored.Status)
	assert.Equal(t, 3.0, balances.used["u1/2026"])

	err = svc.ApproveDocument(context.Background(), created.ID, "admin-1")
	assert.ErrorIs(t, err, document.ErrAlreadyProcessed)
	assert.Equal(t, 3.0, balances.used["u1/2026"], "double approval must not double-charge")
}

func TestApproveDocument_PlainDocumentLeavesBalanceAlone(t *testing.T) {
	svc, _, balances := newService()

	created, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:  "u1",
		LabelID: "lbl-1",
		Title:   "Expense policy question",
	})
	require.NoError(t, err)

	require.NoError(t, svc.ApproveDocument(context.Background(), created.ID, "admin-1"))
	assert.Empty(t, balances.used)
}

func TestCancelDocument_OwnerAndStateChecks(t *testing.T) {
	svc, _, _ := newService()

	created, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:  "u1",
		LabelID: "lbl-1",
		Title:   "Expense policy question",
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.CancelDocument(context.Background(), created.ID, "u2"), document.ErrNotDocumentOwner)

	require.NoError(t, svc.ApproveDocument(context.Background(), created.ID, "admin-1"))
	assert.ErrorIs(t, svc.CancelDocument(context.Background(), created.ID, "u1"), document.ErrAlreadyProcessed)
}

func TestRejectDocument_RecordsReason(t *testing.T) {
	svc, docs, balances := newService()

	created, err := svc.CreateDocument(context.Background(), document.CreateDocumentRequest{
		UserID:         "u1",
		LabelID:        "lbl-1",
		Title:          "Family trip",
		AttendanceType: strPtr(document.AttendanceTypeLeave),
		LeaveType:      strPtr("full"),
		StartDate:      strPtr("2026-03-02"),
		EndDate:        strPtr("2026-03-04"),
	})
	require.NoError(t, err)

	err = svc.RejectDocument(context.Background(), document.RejectDocumentRequest{
		DocumentID: created.ID,
		Reason:     "dates clash with release",
	}, "admin-1")
	require.NoError(t, err)

	stored, err := docs.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, document.DocumentStatusRejected, stored.Status)
	assert.Empty(t, balances.used, "rejection must not charge the balance")
}
