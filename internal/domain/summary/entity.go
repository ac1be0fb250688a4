package summary

import (
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
)

// DaySummary holds derived attendance facts for one employee on one calendar
// day. It is recomputed on demand and never persisted.
type DaySummary struct {
	EmployeeID      string
	Date            time.Time
	EntryTime       *time.Time
	ExitTime        *time.Time
	BreakStartTime  *time.Time
	BreakEndTime    *time.Time
	WorkedMinutes   int
	ExpectedMinutes int
	BalanceMinutes  int
	OvertimeMinutes int
	IsLate          bool
	LateMinutes     int
	IsAbsent        bool
	IsValid         bool

	// Records keeps every punch of the day for audit display, including
	// punches ignored during checkpoint resolution.
	Records []timeclock.Punch
}

// MonthSummary folds the DaySummary set of one calendar month.
type MonthSummary struct {
	EmployeeID         string
	Month              int
	Year               int
	Days               []DaySummary
	TotalWorkedHours   float64
	TotalExpectedHours float64
	TotalBalanceHours  float64
	TotalOvertimeHours float64
	TotalLateMinutes   int
	TotalAbsences      int
}
