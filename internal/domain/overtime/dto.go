package overtime

import (
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

type CreateOvertimeRequest struct {
	UserID  string `json:"-"`
	StartAt string `json:"start_at"`
	EndAt   string `json:"end_at"`
	Reason  string `json:"reason"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.StartAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at is required",
		})
	} else if !validator.IsValidDateTime(r.StartAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_at",
			Message: "start_at must be an RFC 3339 timestamp",
		})
	}

	if validator.IsEmpty(r.EndAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at is required",
		})
	} else if !validator.IsValidDateTime(r.EndAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_at",
			Message: "end_at must be an RFC 3339 timestamp",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectOvertimeRequest struct {
	RequestID string `json:"request_id"`
	Reason    string `json:"reason"`
}

func (r *RejectOvertimeRequest) Validate() error {
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

type OvertimeResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        *string    `json:"user_name,omitempty"`
	StartAt         time.Time  `json:"start_at"`
	EndAt           time.Time  `json:"end_at"`
	Hours           float64    `json:"hours"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	ApproverID      *string    `json:"approver_id,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (r OvertimeRequest) ToResponse() OvertimeResponse {
	return OvertimeResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		UserName:        r.UserName,
		StartAt:         r.StartAt,
		EndAt:           r.EndAt,
		Hours:           r.Hours(),
		Reason:          r.Reason,
		Status:          string(r.Status),
		ApproverID:      r.ApproverID,
		ApprovedAt:      r.ApprovedAt,
		RejectionReason: r.RejectionReason,
		CreatedAt:       r.CreatedAt,
	}
}

type ListOvertimeResponse struct {
	Requests []OvertimeResponse `json:"requests"`
	Total    int64              `json:"total"`
}
