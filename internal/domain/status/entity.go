package status

import "time"

type Status string

const (
	StatusWorking    Status = "working"
	StatusOnBreak    Status = "on_break"
	StatusLeft       Status = "left"
	StatusNotStarted Status = "not_started"
	StatusLate       Status = "late"
)

// AttendanceStatus is a live, read-only projection of one employee's day.
// It holds no independent state and is recomputed on every tick.
type AttendanceStatus struct {
	EmployeeID      string
	Status          Status
	EntryTime       *time.Time
	ExitTime        *time.Time
	BreakStartTime  *time.Time
	BreakEndTime    *time.Time
	WorkedHours     float64
	ExpectedHours   float64
	BalanceHours    float64
	LateMinutes     int
	TimeToLeave     *time.Time
	IsOvertime      bool
	OvertimeMinutes int
	NextAction      string
}
