package leave

import (
	"errors"
	"time"
)

const (
	// DefaultAnnualAllowanceDays seeds a balance row created on first use.
	DefaultAnnualAllowanceDays = 15.0

	// HoursPerDay converts compensatory leave days to hours.
	HoursPerDay = 8.0
)

// partialDayValues are fixed day counts for partial-day types, dates ignored.
var partialDayValues = map[LeaveType]float64{
	LeaveTypeHalfAM: 0.5,
	LeaveTypeHalfPM: 0.5,
	LeaveTypeOut1H:  0.125,
	LeaveTypeOut2H:  0.25,
	LeaveTypeOut3H:  0.375,
}

// CalculateDays applies the day-count policy for a request.
// Partial-day types use the fixed table; full and comp types count the
// inclusive calendar-day span between start and end, minimum 1.
func CalculateDays(t LeaveType, start, end time.Time) (float64, error) {
	if !t.IsValid() {
		return 0, ErrInvalidLeaveType
	}

	if v, ok := partialDayValues[t]; ok {
		return v, nil
	}

	if end.Before(start) {
		return 0, errors.New("end date before start date")
	}

	days := float64(inclusiveDaySpan(start, end))
	if days < 1 {
		days = 1
	}
	return days, nil
}

// inclusiveDaySpan counts whole calendar days between two dates, inclusive.
// Computed on date components so DST shifts and time-of-day do not skew it.
func inclusiveDaySpan(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
