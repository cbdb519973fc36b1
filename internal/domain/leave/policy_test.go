package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateDaysPartialTypes(t *testing.T) {
	start := date(2026, 3, 2)
	farEnd := date(2026, 3, 20)

	cases := []struct {
		leaveType LeaveType
		want      float64
	}{
		{LeaveTypeHalfAM, 0.5},
		{LeaveTypeHalfPM, 0.5},
		{LeaveTypeOut1H, 0.125},
		{LeaveTypeOut2H, 0.25},
		{LeaveTypeOut3H, 0.375},
	}
	for _, c := range cases {
		// Dates must not matter for partial-day types.
		days, err := CalculateDays(c.leaveType, start, farEnd)
		if err != nil {
			t.Fatalf("CalculateDays(%s): unexpected error: %v", c.leaveType, err)
		}
		if days != c.want {
			t.Errorf("CalculateDays(%s) = %v, want %v", c.leaveType, days, c.want)
		}
	}
}

func TestCalculateDaysFullSpan(t *testing.T) {
	days, err := CalculateDays(LeaveTypeFull, date(2026, 1, 10), date(2026, 1, 12))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 3 {
		t.Fatalf("expected 3 days, got %v", days)
	}

	days, err = CalculateDays(LeaveTypeComp, date(2026, 1, 5), date(2026, 1, 5))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 1 {
		t.Fatalf("expected 1 day for single-day comp, got %v", days)
	}
}

func TestCalculateDaysAcrossMonthBoundary(t *testing.T) {
	days, err := CalculateDays(LeaveTypeFull, date(2026, 1, 30), date(2026, 2, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 4 {
		t.Fatalf("expected 4 days, got %v", days)
	}
}

func TestCalculateDaysInvalidRange(t *testing.T) {
	if _, err := CalculateDays(LeaveTypeFull, date(2026, 2, 10), date(2026, 2, 9)); err == nil {
		t.Fatal("expected error when end precedes start")
	}
}

func TestCalculateDaysUnknownType(t *testing.T) {
	if _, err := CalculateDays(LeaveType("sabbatical"), date(2026, 1, 1), date(2026, 1, 1)); err != ErrInvalidLeaveType {
		t.Fatalf("expected ErrInvalidLeaveType, got %v", err)
	}
}

func TestCoversDay(t *testing.T) {
	req := LeaveRequest{StartDate: date(2026, 4, 10), EndDate: date(2026, 4, 12)}

	for _, d := range []time.Time{date(2026, 4, 10), date(2026, 4, 11), date(2026, 4, 12)} {
		if !req.CoversDay(d) {
			t.Errorf("expected %s to be covered", d.Format("2006-01-02"))
		}
	}
	for _, d := range []time.Time{date(2026, 4, 9), date(2026, 4, 13)} {
		if req.CoversDay(d) {
			t.Errorf("expected %s to be outside the range", d.Format("2006-01-02"))
		}
	}
}

func TestBalanceRemaining(t *testing.T) {
	b := AnnualLeaveBalance{TotalDays: 15, UsedDays: 3}
	if b.Remaining() != 12 {
		t.Fatalf("expected remaining 12, got %v", b.Remaining())
	}
}
