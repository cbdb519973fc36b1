package overtime

import "time"

type OvertimeStatus string

const (
	OvertimeStatusPending  OvertimeStatus = "pending"
	OvertimeStatusApproved OvertimeStatus = "approved"
	OvertimeStatusRejected OvertimeStatus = "rejected"
)

// OvertimeRequest entity. Approval is informational only and never
// touches a leave balance.
type OvertimeRequest struct {
	ID     string
	UserID string

	StartAt time.Time
	EndAt   time.Time
	Reason  string

	Status          OvertimeStatus
	ApproverID      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserName *string
}

// Hours returns the requested overtime span in hours.
func (r OvertimeRequest) Hours() float64 {
	return r.EndAt.Sub(r.StartAt).Hours()
}
