package leave

import (
	"context"
	"time"
)

// AnnualBalanceRepository - interface for annual_leave_balances table
type AnnualBalanceRepository interface {
	Create(ctx context.Context, balance AnnualLeaveBalance) (AnnualLeaveBalance, error)
	GetByUserYear(ctx context.Context, userID string, year int) (AnnualLeaveBalance, error)
	ListByYear(ctx context.Context, year int) ([]AnnualLeaveBalance, error)
	// AddUsedDays increments used_days, creating the row with the default
	// allotment when no balance exists yet for the user and year.
	AddUsedDays(ctx context.Context, userID string, year int, days float64) error
	// UpsertTotalDays sets the granted allotment for a user and year.
	UpsertTotalDays(ctx context.Context, userID string, year int, totalDays float64) error
}

// CompBalanceRepository - interface for comp_leave_balances table
type CompBalanceRepository interface {
	Create(ctx context.Context, balance CompLeaveBalance) (CompLeaveBalance, error)
	GetByUserYear(ctx context.Context, userID string, year int) (CompLeaveBalance, error)
	// AddUsedHours increments used_hours, creating a zero-grant row when absent.
	AddUsedHours(ctx context.Context, userID string, year int, hours float64) error
}

// LeaveRequestFilter narrows list queries.
type LeaveRequestFilter struct {
	Status    *string
	LeaveType *string
	Year      *int
	Page      int
	Limit     int
}

// LeaveRequestRepository - interface for leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	// GetByIDForUpdate locks the row for the enclosing transaction.
	GetByIDForUpdate(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	ListAll(ctx context.Context, filter LeaveRequestFilter) ([]LeaveRequest, int64, error)
	// ListApprovedByYear returns approved requests whose start date falls in year.
	ListApprovedByYear(ctx context.Context, year int) ([]LeaveRequest, error)
	// ListApprovedInRange returns approved requests overlapping [from, to].
	ListApprovedInRange(ctx context.Context, from, to time.Time) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, update UpdateStatusInput) error
	Delete(ctx context.Context, id string) error
}

// UpdateStatusInput carries an approval-state transition.
type UpdateStatusInput struct {
	ID              string
	Status          LeaveRequestStatus
	ApproverID      string
	ApprovedAt      time.Time
	RejectionReason *string
}
