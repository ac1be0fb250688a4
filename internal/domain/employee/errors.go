package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeInactive = errors.New("inactive employee - contact HR")
	ErrPunchNotAllowed  = errors.New("employee is not allowed to register time-clock punches")
)
