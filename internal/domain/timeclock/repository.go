package timeclock

import (
	"context"
	"time"
)

// PunchRepository defines data access methods for the punch store.
type PunchRepository interface {
	// Create persists a new punch.
	Create(ctx context.Context, punch Punch) (Punch, error)

	// ListByEmployeeAndDay retrieves all punches for an employee whose
	// timestamps fall inside [dayStart, dayEnd], ordered by timestamp.
	ListByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]Punch, error)

	// SetValidity updates the validity flags of an existing punch.
	SetValidity(ctx context.Context, id string, isValid, isDuplicate bool) error
}
