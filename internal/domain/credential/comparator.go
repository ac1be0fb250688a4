package credential

import "context"

// BiometricComparator matches a presented biometric identifier against the
// stored template id. Template matching is an external capability; the gate
// only calls through this interface.
type BiometricComparator interface {
	Match(ctx context.Context, storedTemplateID, presented string) (bool, error)
}

// QRValidator validates a QR token with an external service and returns the
// employee id embedded in the validated payload.
type QRValidator interface {
	Validate(ctx context.Context, token string) (employeeID string, err error)
}
