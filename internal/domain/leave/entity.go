package leave

import "time"

type LeaveRequestStatus string

const (
	LeaveRequestStatusPending  LeaveRequestStatus = "pending"
	LeaveRequestStatusApproved LeaveRequestStatus = "approved"
	LeaveRequestStatusRejected LeaveRequestStatus = "rejected"
)

// LeaveType maps to leave_type_enum in DB
type LeaveType string

const (
	LeaveTypeFull   LeaveType = "full"
	LeaveTypeHalfAM LeaveType = "half_am"
	LeaveTypeHalfPM LeaveType = "half_pm"
	LeaveTypeOut1H  LeaveType = "out_1h"
	LeaveTypeOut2H  LeaveType = "out_2h"
	LeaveTypeOut3H  LeaveType = "out_3h"
	LeaveTypeComp   LeaveType = "comp"
)

// IsComp reports whether the type draws from the compensatory balance.
func (t LeaveType) IsComp() bool {
	return t == LeaveTypeComp
}

// IsValid reports whether t is a known leave type.
func (t LeaveType) IsValid() bool {
	switch t {
	case LeaveTypeFull, LeaveTypeHalfAM, LeaveTypeHalfPM,
		LeaveTypeOut1H, LeaveTypeOut2H, LeaveTypeOut3H, LeaveTypeComp:
		return true
	}
	return false
}

// AnnualLeaveBalance entity, one row per user per year.
type AnnualLeaveBalance struct {
	ID        string
	UserID    string
	Year      int
	TotalDays float64
	UsedDays  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Remaining returns the unspent annual allotment.
func (b AnnualLeaveBalance) Remaining() float64 {
	return b.TotalDays - b.UsedDays
}

// CompLeaveBalance entity, hour-denominated, one row per user per year.
type CompLeaveBalance struct {
	ID         string
	UserID     string
	Year       int
	TotalHours float64
	UsedHours  float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// LeaveRequest entity
type LeaveRequest struct {
	ID     string
	UserID string

	LeaveType LeaveType
	StartDate time.Time
	EndDate   time.Time
	Days      float64
	Reason    string

	Status          LeaveRequestStatus
	ApproverID      *string
	ApprovedAt      *time.Time
	RejectionReason *string

	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships (for responses)
	UserName *string
}

// CoversDay reports whether day falls inside the request's inclusive date range.
func (r LeaveRequest) CoversDay(day time.Time) bool {
	d := day.Format("2006-01-02")
	return d >= r.StartDate.Format("2006-01-02") && d <= r.EndDate.Format("2006-01-02")
}
