package timeclock

import "time"

// Punch is a single time-clock event. Punches are append-only: after creation
// only the validity flags may change.
type Punch struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	Type        PunchType
	Timestamp   time.Time
	Method      PunchMethod
	Latitude    *float64
	Longitude   *float64
	IsValid     bool
	IsDuplicate bool
	CreatedAt   time.Time
}

type PunchType string

const (
	PunchTypeEntry         PunchType = "entry"
	PunchTypeBreakStart    PunchType = "break_start"
	PunchTypeBreakEnd      PunchType = "break_end"
	PunchTypeExit          PunchType = "exit"
	PunchTypeOvertimeStart PunchType = "overtime_start"
	PunchTypeOvertimeEnd   PunchType = "overtime_end"
)

var PunchTypeValues = []string{
	string(PunchTypeEntry),
	string(PunchTypeBreakStart),
	string(PunchTypeBreakEnd),
	string(PunchTypeExit),
	string(PunchTypeOvertimeStart),
	string(PunchTypeOvertimeEnd),
}

type PunchMethod string

const (
	PunchMethodManual      PunchMethod = "manual"
	PunchMethodGeolocation PunchMethod = "geolocation"
	PunchMethodQRCode      PunchMethod = "qrcode"
	PunchMethodIP          PunchMethod = "ip"
	PunchMethodBiometric   PunchMethod = "biometric"
)

var PunchMethodValues = []string{
	string(PunchMethodManual),
	string(PunchMethodGeolocation),
	string(PunchMethodQRCode),
	string(PunchMethodIP),
	string(PunchMethodBiometric),
}

// FirstOfType returns the first punch of the given type in timestamp order.
// Later punches of the same type are ignored for checkpoint resolution but
// stay in the slice for audit display.
func FirstOfType(punches []Punch, t PunchType) *Punch {
	var first *Punch
	for i := range punches {
		if punches[i].Type != t {
			continue
		}
		if first == nil || punches[i].Timestamp.Before(first.Timestamp) {
			first = &punches[i]
		}
	}
	return first
}
