package document

import "time"

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusApproved DocumentStatus = "approved"
	DocumentStatusRejected DocumentStatus = "rejected"
)

// AttendanceTypeLeave marks a document as the parallel leave-request path.
const AttendanceTypeLeave = "leave"

// DocumentLabel entity
type DocumentLabel struct {
	ID       string
	Name     string
	Category string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document entity. A document whose attendance_type is "leave" carries its
// own leave fields and counts toward the annual balance once approved.
type Document struct {
	ID      string
	UserID  string
	LabelID string
	Title   string
	Body    string

	AttendanceType *string
	LeaveType      *string
	LeaveDays      *float64
	StartDate      *time.Time
	EndDate        *time.Time

	Status          DocumentStatus
	ApproverID      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserName  *string
	LabelName *string
}

// IsLeaveAttendance reports whether the document files leave through the
// document-approval path.
func (d Document) IsLeaveAttendance() bool {
	return d.AttendanceType != nil && *d.AttendanceType == AttendanceTypeLeave
}
