package timeclock

import (
	"github.com/pontohq/timeclock-backend-go/internal/pkg/validator"
)

type RegisterPunchRequest struct {
	SessionToken string   `json:"session_token"`
	EmployeeID   string   `json:"employee_id"`
	Type         string   `json:"type"`
	Method       string   `json:"method"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

func (r RegisterPunchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SessionToken) {
		errs = append(errs, validator.ValidationError{Field: "session_token", Message: "session token is required"})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee id is required"})
	}
	if !validator.IsInSlice(r.Type, PunchTypeValues) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown punch type"})
	}
	if !validator.IsInSlice(r.Method, PunchMethodValues) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "unknown punch method"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID          string   `json:"id"`
	EmployeeID  string   `json:"employee_id"`
	Type        string   `json:"type"`
	Timestamp   string   `json:"timestamp"`
	Method      string   `json:"method"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsValid     bool     `json:"is_valid"`
	IsDuplicate bool     `json:"is_duplicate"`
}
