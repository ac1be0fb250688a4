package response

import (
	"errors"
	"net/http"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/schedule"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Credential gate errors
	case errors.Is(err, credential.ErrAccountLocked):
		Locked(w, err.Error())
	case errors.Is(err, credential.ErrInvalidCredentials):
		Unauthorized(w, "Invalid credentials")
	case errors.Is(err, credential.ErrNoCredentials):
		Unauthorized(w, "No credentials registered")
	case errors.Is(err, credential.ErrPINExpired):
		Unauthorized(w, "PIN expired")
	case errors.Is(err, credential.ErrSessionExpired):
		Unauthorized(w, "Session expired")
	case errors.Is(err, credential.ErrInvalidSession):
		Unauthorized(w, "Invalid session")
	case errors.Is(err, credential.ErrUnsupportedMethod):
		BadRequest(w, "Unsupported authentication method", nil)

	// Employee errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeInactive):
		Forbidden(w, err.Error())
	case errors.Is(err, employee.ErrPunchNotAllowed):
		Forbidden(w, "Employee is not allowed to register punches")

	// Schedule errors
	case errors.Is(err, schedule.ErrWorkScheduleNotFound):
		NotFound(w, "Work schedule not found")

	// Time-clock errors
	case errors.Is(err, timeclock.ErrPunchNotFound):
		NotFound(w, "Punch not found")
	case errors.Is(err, timeclock.ErrInvalidDate):
		BadRequest(w, "Invalid date", nil)

	// Summary errors
	case errors.Is(err, summary.ErrInvalidMonth):
		BadRequest(w, "Month must be between 1 and 12", nil)
	case errors.Is(err, summary.ErrInvalidYear):
		BadRequest(w, "Year is out of range", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
