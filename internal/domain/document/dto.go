package document

import (
	"time"

	"github.com/teamhub-intranet/leave-backend-go/internal/pkg/validator"
)

type CreateDocumentRequest struct {
	UserID         string  `json:"-"`
	LabelID        string  `json:"label_id"`
	Title          string  `json:"title"`
	Body           string  `json:"body,omitempty"`
	AttendanceType *string `json:"attendance_type,omitempty"`
	LeaveType      *string `json:"leave_type,omitempty"`
	StartDate      *string `json:"start_date,omitempty"`
	EndDate        *string `json:"end_date,omitempty"`
}

func (r *CreateDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.LabelID) {
		errs = append(errs, validator.ValidationError{
			Field:   "label_id",
			Message: "label_id is required",
		})
	}
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if r.AttendanceType != nil && *r.AttendanceType == AttendanceTypeLeave {
		if r.LeaveType == nil || validator.IsEmpty(*r.LeaveType) {
			errs = append(errs, validator.ValidationError{
				Field:   "leave_type",
				Message: "leave_type is required for leave attendance documents",
			})
		}
		if r.StartDate == nil || !validator.IsValidDate(*r.StartDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
		if r.EndDate == nil || !validator.IsValidDate(*r.EndDate) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RejectDocumentRequest struct {
	DocumentID string `json:"document_id"`
	Reason     string `json:"reason"`
}

func (r *RejectDocumentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DocumentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "document_id",
			Message: "document_id is required",
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

type CreateLabelRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (r *CreateLabelRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DocumentResponse struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	UserName        *string    `json:"user_name,omitempty"`
	LabelID         string     `json:"label_id"`
	LabelName       *string    `json:"label_name,omitempty"`
	Title           string     `json:"title"`
	Body            string     `json:"body,omitempty"`
	AttendanceType  *string    `json:"attendance_type,omitempty"`
	LeaveType       *string    `json:"leave_type,omitempty"`
	LeaveDays       *float64   `json:"leave_days,omitempty"`
	StartDate       *string    `json:"start_date,omitempty"`
	EndDate         *string    `json:"end_date,omitempty"`
	Status          string     `json:"status"`
	ApproverID      *string    `json:"approver_id,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason *string    `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (d Document) ToResponse() DocumentResponse {
	resp := DocumentResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		UserName:        d.UserName,
		LabelID:         d.LabelID,
		LabelName:       d.LabelName,
		Title:           d.Title,
		Body:            d.Body,
		AttendanceType:  d.AttendanceType,
		LeaveType:       d.LeaveType,
		LeaveDays:       d.LeaveDays,
		Status:          string(d.Status),
		ApproverID:      d.ApproverID,
		ApprovedAt:      d.ApprovedAt,
		RejectionReason: d.RejectionReason,
		CreatedAt:       d.CreatedAt,
	}
	if d.StartDate != nil {
		s := d.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	if d.EndDate != nil {
		e := d.EndDate.Format("2006-01-02")
		resp.EndDate = &e
	}
	return resp
}

type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int64              `json:"total"`
}
