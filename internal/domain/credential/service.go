package credential

import (
	"context"
)

// AuthService is the credential gate. Authentication must succeed before a
// punch can be registered.
type AuthService interface {
	// Authenticate validates the presented credential and, on success, issues
	// a time-boxed session token bound to the employee.
	Authenticate(ctx context.Context, req AuthenticateRequest) (AuthenticateResponse, error)

	// ValidateSession checks a session token's expiry and employee binding.
	// Expired or malformed tokens return an error, never panic.
	ValidateSession(ctx context.Context, token string, employeeID string) error
}
