package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for the employee directory.
// Lookup methods return ErrEmployeeNotFound when no record matches.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByCode resolves an employee by employee code, case-insensitive.
	GetByCode(ctx context.Context, code string) (Employee, error)

	// GetByCPF resolves an employee by exact match against the stored CPF.
	// Callers try both the digit-stripped and the verbatim form.
	GetByCPF(ctx context.Context, cpf string) (Employee, error)

	// GetByEmail resolves an employee by email, case-insensitive.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	// AddToHourBalance adds delta minutes to the cumulative hour balance.
	AddToHourBalance(ctx context.Context, id string, deltaMinutes int) error
}
