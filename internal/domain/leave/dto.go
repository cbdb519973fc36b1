package leave

import (
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

type CreateLeaveRequestRequest struct {
	UserID    string `json:"-"`
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if !LeaveType(r.LeaveType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type must be one of full, half_am, half_pm, out_1h, out_2h, out_3h, comp",
		})
	}

	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	} else if !validator.IsValidDate(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	} else if !validator.IsValidDate(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}

	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 500 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectLeaveRequestRequest struct {
	RequestID string `json:"request_id"`
	Reason    string `json:"reason"`
}

func (r *RejectLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required when rejecting",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ApproveLeaveRequestRequest struct {
	RequestID string `json:"request_id"`
}

func (r *ApproveLeaveRequestRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetAllowanceRequest struct {
	UserID    string  `json:"user_id"`
	Year      int     `json:"year"`
	TotalDays float64 `json:"total_days"`
}

func (r *SetAllowanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.UserID) {
		errs = append(errs, validator.ValidationError{
			Field:   "user_id",
			Message: "user_id is required",
		})
	}
	if r.Year < 2000 || r.Year > 2200 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.TotalDays < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "total_days",
			Message: "total_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// BalanceResponse is the per-user view of both balances for a year.
type BalanceResponse struct {
	Year   int                 `json:"year"`
	Annual AnnualBalanceDetail `json:"annual"`
	Comp   CompBalanceDetail   `json:"comp"`
}

// AnnualBalanceDetail exposes both the recomputed usage and the stored
// running total so drift between the two is visible to callers.
type AnnualBalanceDetail struct {
	TotalDays        float64 `json:"total_days"`
	UsedDays         float64 `json:"used_days"`
	RecordedUsedDays float64 `json:"recorded_used_days"`
	RemainingDays    float64 `json:"remaining_days"`
}

type CompBalanceDetail struct {
	TotalHours     float64 `json:"total_hours"`
	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}

type LeaveRequestResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        *string    `json:"user_name,omitempty"`
	LeaveType       string     `json:"leave_type"`
	StartDate       string     `json:"start_date"`
	EndDate         string     `json:"end_date"`
	Days            float64    `json:"days"`
	Reason          string     `json:"reason,omitempty"`
	Status          string     `json:"status"`
	ApproverID      *string    `json:"approver_id,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (r LeaveRequest) ToResponse() LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		LeaveType:       string(r.LeaveType),
		StartDate:       r.StartDate.Format("2006-01-02"),
		EndDate:         r.EndDate.Format("2006-01-02"),
		Days:            r.Days,
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApproverID:      r.ApproverID,
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

type ListLeaveRequestsResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
	Total    int64                  `json:"total"`
}

// UserBalanceSummary is one row of the organization-wide balance view.
type UserBalanceSummary struct {
	UserID        string  `json:"user_id"`
	UserName      string  `json:"user_name"`
	Year          int     `json:"year"`
	TotalDays     float64 `json:"total_days"`
	UsedDays      float64 `json:"used_days"`
	RemainingDays float64 `json:"remaining_days"`
	// Synthesized rows have usage but no stored balance yet.
	Synthesized bool `json:"synthesized,omitempty"`
}

// CalendarEntry is one approved absence on one calendar day.
type CalendarEntry struct {
	RequestID string  `json:"request_id"`
	UserID    string  `json:"user_id"`
	UserName  *string `json:"user_name,omitempty"`
	LeaveType string  `json:"leave_type"`
}

// CalendarResponse buckets approved leave by day string.
type CalendarResponse struct {
	Year  int                        `json:"year"`
	Month int                        `json:"month"`
	Days  map[string][]CalendarEntry `json:"days"`
}
