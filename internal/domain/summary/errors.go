package summary

import "errors"

// Summary domain errors
var (
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
	ErrInvalidYear  = errors.New("invalid year")
)
