package credential

import (
	"context"
)

// CredentialRepository defines data access methods for per-employee
// credential state. Lookup methods return ErrCredentialsNotFound when no
// record matches.
type CredentialRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeCredentials, error)

	// GetByRFIDCard scans stored RFID card ids for a match.
	GetByRFIDCard(ctx context.Context, cardID string) (EmployeeCredentials, error)

	// Save upserts the credential record, including the failed-attempt
	// counter and lockout timestamp.
	Save(ctx context.Context, creds EmployeeCredentials) error
}
