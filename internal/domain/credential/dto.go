package credential

import (
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/pkg/validator"
)

type Method string

const (
	MethodPassword  Method = "password"
	MethodPIN       Method = "pin"
	MethodBiometric Method = "biometric"
	MethodFacial    Method = "facial"
	MethodRFID      Method = "rfid"
	MethodQRCode    Method = "qrcode"
	MethodAppToken  Method = "app_token"
)

var MethodValues = []string{
	string(MethodPassword),
	string(MethodPIN),
	string(MethodBiometric),
	string(MethodFacial),
	string(MethodRFID),
	string(MethodQRCode),
	string(MethodAppToken),
}

type AuthenticateRequest struct {
	Method     Method `json:"method"`
	Identifier string `json:"identifier,omitempty"` // employee id, code, CPF or email
	Credential string `json:"credential"`
	DeviceID   string `json:"device_id,omitempty"`
	IPAddress  string `json:"ip_address,omitempty"`
	UserAgent  string `json:"user_agent,omitempty"`
}

func (r AuthenticateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(string(r.Method), MethodValues) {
		errs = append(errs, validator.ValidationError{Field: "method", Message: "unsupported authentication method"})
	}
	if validator.IsEmpty(r.Credential) {
		errs = append(errs, validator.ValidationError{Field: "credential", Message: "credential is required"})
	}
	switch r.Method {
	case MethodRFID, MethodQRCode:
		// employee is resolved from the credential itself
	default:
		if validator.IsEmpty(r.Identifier) {
			errs = append(errs, validator.ValidationError{Field: "identifier", Message: "identifier is required"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AuthenticateResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	SessionToken string `json:"session_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// AuditEvent records one authentication attempt, success or failure. Delivery
// to the sink is best-effort and never affects the authentication decision.
type AuditEvent struct {
	Method     Method
	EmployeeID *string
	Success    bool
	Reason     string
	DeviceID   string
	IPAddress  string
	UserAgent  string
	OccurredAt time.Time
}
