package schedule

import "errors"

// Schedule domain errors
var (
	ErrWorkScheduleNotFound = errors.New("work schedule not found")
	ErrInvalidScheduleType  = errors.New("invalid work schedule type")
)
