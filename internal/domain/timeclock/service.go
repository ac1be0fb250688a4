package timeclock

import (
	"context"
	"time"
)

// TimeClockService defines business logic for punch registration.
type TimeClockService interface {
	// RegisterPunch validates the session token and persists a punch stamped
	// with server time. This is the only write path into the punch store.
	RegisterPunch(ctx context.Context, req RegisterPunchRequest) (PunchResponse, error)

	// ListDayPunches retrieves all punches for an employee on a calendar day.
	ListDayPunches(ctx context.Context, employeeID string, date time.Time) ([]Punch, error)
}
