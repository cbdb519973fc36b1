package overtime

import (
	"context"
	"time"
)

// OvertimeFilter narrows list queries.
type OvertimeFilter struct {
	Status *string
	Year   *int
	Page   int
	Limit  int
}

// OvertimeRepository - interface for overtime_requests table
type OvertimeRepository interface {
	Create(ctx context.Context, request OvertimeRequest) (OvertimeRequest, error)
	GetByID(ctx context.Context, id string) (OvertimeRequest, error)
	ListByUser(ctx context.Context, userID string, filter OvertimeFilter) ([]OvertimeRequest, int64, error)
	ListAll(ctx context.Context, filter OvertimeFilter) ([]OvertimeRequest, int64, error)
	UpdateStatus(ctx context.Context, update UpdateStatusInput) error
	Delete(ctx context.Context, id string) error
}

// UpdateStatusInput carries an approval-state transition.
type UpdateStatusInput struct {
	ID              string
	Status          OvertimeStatus
	ApproverID      string
	ApprovedAt      time.Time
	RejectionReason *string
}
