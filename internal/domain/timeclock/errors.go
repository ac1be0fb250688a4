package timeclock

import "errors"

// Time-clock domain errors
var (
	ErrPunchNotFound      = errors.New("time-clock punch not found")
	ErrUnknownPunchType   = errors.New("unknown punch type")
	ErrUnknownPunchMethod = errors.New("unknown punch method")
	ErrInvalidDate        = errors.New("invalid date")
)
