package schedule

import (
	"context"
)

// WorkScheduleRepository defines data access methods for work schedule definitions.
type WorkScheduleRepository interface {
	// GetByID retrieves a work schedule definition.
	// Returns ErrWorkScheduleNotFound when no schedule matches.
	GetByID(ctx context.Context, id string) (WorkSchedule, error)

	// GetByEmployee resolves the schedule currently assigned to an employee.
	// Returns ErrWorkScheduleNotFound when the employee has no assignment.
	GetByEmployee(ctx context.Context, employeeID string) (WorkSchedule, error)
}
