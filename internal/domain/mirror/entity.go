package mirror

import "time"

// Document is the legal point-mirror structure: one row per calendar day plus
// totals copied verbatim from the month summary. It is a plain projection
// suitable for rendering to any output format.
type Document struct {
	EmployeeID   string
	EmployeeName string
	CPF          string
	Month        int
	Year         int
	GeneratedAt  time.Time
	Rows         []DayRow
	Totals       Totals
}

type DayRow struct {
	Date        string // "2006-01-02"
	Weekday     string
	Entry       string // "HH:MM" or the absent marker
	BreakStart  string
	BreakEnd    string
	Exit        string
	WorkedHours string // "7h 30m"
	Flag        string // "late", "absent" or empty
}

type Totals struct {
	WorkedHours   float64
	ExpectedHours float64
	BalanceHours  float64
	OvertimeHours float64
	LateMinutes   int
	Absences      int
}
