package employee

import (
	"time"
)

type Employee struct {
	ID               string
	CompanyID        string
	BranchID         *string
	DepartmentID     *string
	WorkScheduleID   *string
	EmployeeCode     *string
	FullName         string
	CPF              string
	Email            *string
	WorkHours        *float64 // fallback daily expectation in hours when no schedule applies
	CanRegisterPoint bool
	IsActive         bool
	Status           Status
	HourBalance      int // cumulative balance in minutes, signed
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        *time.Time
}

type Status string

const (
	StatusActive    Status = "active"
	StatusInactive  Status = "inactive"
	StatusSuspended Status = "suspended"
	StatusDismissed Status = "dismissed"
)

var StatusValues = []string{
	string(StatusActive),
	string(StatusInactive),
	string(StatusSuspended),
	string(StatusDismissed),
}

// CanAuthenticate reports whether the employee may go through the credential gate.
func (e Employee) CanAuthenticate() bool {
	return e.IsActive && e.Status == StatusActive
}
