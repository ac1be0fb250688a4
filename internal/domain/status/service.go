package status

import (
	"context"
)

// StatusService derives the real-time attendance status used by the
// management dashboard. Implementations must be side-effect free so the
// poller can recompute snapshots arbitrarily often.
type StatusService interface {
	// Current derives the attendance status of one employee at this instant,
	// from today's punches and the assigned schedule when one exists.
	Current(ctx context.Context, employeeID string) (AttendanceStatus, error)
}
