package credential

import "time"

// EmployeeCredentials holds the per-employee authentication state mutated by
// the credential gate on every attempt.
type EmployeeCredentials struct {
	EmployeeID          string
	PasswordHash        *string
	PINHash             *string
	PINExpiresAt        *time.Time
	BiometricTemplateID *string
	RFIDCardID          *string
	FailedAttempts      int
	LockedUntil         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// HasAny reports whether at least one credential type is registered. An
// employee without any cannot authenticate.
func (c EmployeeCredentials) HasAny() bool {
	return c.PasswordHash != nil || c.PINHash != nil ||
		c.BiometricTemplateID != nil || c.RFIDCardID != nil
}

// LockedAt reports whether the account is locked out at the given instant.
func (c EmployeeCredentials) LockedAt(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}
