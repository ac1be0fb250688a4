package credential

import "errors"

// Credential gate errors. Each maps to a distinct, user-displayable reason.
var (
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrNoCredentials       = errors.New("no credentials registered for this employee")
	ErrCredentialsNotFound = errors.New("credentials not found")
	ErrAccountLocked       = errors.New("account locked after repeated failures")
	ErrPINExpired          = errors.New("PIN has expired")
	ErrUnsupportedMethod   = errors.New("unsupported authentication method")
	ErrInvalidSession      = errors.New("invalid session token")
	ErrSessionExpired      = errors.New("session token expired")
)
