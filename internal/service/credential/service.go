package credential

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/token"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/validator"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	credential.CredentialRepository
	employee.EmployeeRepository
	tokenService token.Service
	comparator   credential.BiometricComparator
	qrValidator  credential.QRValidator
	audit        credential.AuditSink
	clk          clock.Clock

	lockoutThreshold int
	lockoutDuration  time.Duration

	// Serializes the read-increment-write of failedAttempts/lockedUntil for
	// concurrent attempts against the same employee.
	locks sync.Map // employeeID -> *sync.Mutex
}

func NewAuthService(
	credentialRepo credential.CredentialRepository,
	employeeRepo employee.EmployeeRepository,
	tokenService token.Service,
	comparator credential.BiometricComparator,
	qrValidator credential.QRValidator,
	audit credential.AuditSink,
	clk clock.Clock,
	lockoutThreshold int,
	lockoutDuration time.Duration,
) credential.AuthService {
	if lockoutThreshold <= 0 {
		lockoutThreshold = 5
	}
	if lockoutDuration <= 0 {
		lockoutDuration = 30 * time.Minute
	}
	if audit == nil {
		audit = NoopAuditSink{}
	}
	return &AuthServiceImpl{
		CredentialRepository: credentialRepo,
		EmployeeRepository:   employeeRepo,
		tokenService:         tokenService,
		comparator:           comparator,
		qrValidator:          qrValidator,
		audit:                audit,
		clk:                  clk,
		lockoutThreshold:     lockoutThreshold,
		lockoutDuration:      lockoutDuration,
	}
}

// Authenticate implements credential.AuthService.
func (a *AuthServiceImpl) Authenticate(ctx context.Context, req credential.AuthenticateRequest) (credential.AuthenticateResponse, error) {
	if err := req.Validate(); err != nil {
		return credential.AuthenticateResponse{}, err
	}

	emp, err := a.resolveEmployee(ctx, req)
	if err != nil {
		// No employee was resolved, so there is no lockout counter to touch.
		a.record(ctx, req, nil, false, err.Error())
		return credential.AuthenticateResponse{}, err
	}

	if !emp.CanAuthenticate() {
		a.record(ctx, req, &emp.ID, false, employee.ErrEmployeeInactive.Error())
		return credential.AuthenticateResponse{}, employee.ErrEmployeeInactive
	}
	if !emp.CanRegisterPoint {
		a.record(ctx, req, &emp.ID, false, employee.ErrPunchNotAllowed.Error())
		return credential.AuthenticateResponse{}, employee.ErrPunchNotAllowed
	}

	mu := a.employeeLock(emp.ID)
	mu.Lock()
	defer mu.Unlock()

	creds, err := a.CredentialRepository.GetByEmployeeID(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, credential.ErrCredentialsNotFound) {
			a.record(ctx, req, &emp.ID, false, credential.ErrNoCredentials.Error())
			return credential.AuthenticateResponse{}, credential.ErrNoCredentials
		}
		return credential.AuthenticateResponse{}, fmt.Errorf("failed to get credentials: %w", err)
	}
	if !creds.HasAny() {
		a.record(ctx, req, &emp.ID, false, credential.ErrNoCredentials.Error())
		return credential.AuthenticateResponse{}, credential.ErrNoCredentials
	}

	now := a.clk.Now()

	// Locked attempts fail immediately and do not increment the counter, so
	// a lockout window is never extended by further attempts.
	if creds.LockedAt(now) {
		remaining := int(creds.LockedUntil.Sub(now).Minutes()) + 1
		a.record(ctx, req, &emp.ID, false, credential.ErrAccountLocked.Error())
		return credential.AuthenticateResponse{}, fmt.Errorf("%w: try again in %d minutes", credential.ErrAccountLocked, remaining)
	}

	verified, verifyErr := a.verify(ctx, req, emp, creds)
	if verifyErr != nil {
		// Distinct failure reasons (expired PIN) do not count as a wrong
		// credential and leave the counter untouched.
		a.record(ctx, req, &emp.ID, false, verifyErr.Error())
		return credential.AuthenticateResponse{}, verifyErr
	}

	if !verified {
		creds.FailedAttempts++
		if creds.FailedAttempts >= a.lockoutThreshold {
			lockedUntil := now.Add(a.lockoutDuration)
			creds.LockedUntil = &lockedUntil
		}
		if err := a.CredentialRepository.Save(ctx, creds); err != nil {
			return credential.AuthenticateResponse{}, fmt.Errorf("failed to save credential state: %w", err)
		}
		a.record(ctx, req, &emp.ID, false, credential.ErrInvalidCredentials.Error())
		return credential.AuthenticateResponse{}, credential.ErrInvalidCredentials
	}

	// Success resets the counter and clears any expired lock.
	creds.FailedAttempts = 0
	creds.LockedUntil = nil
	if err := a.CredentialRepository.Save(ctx, creds); err != nil {
		return credential.AuthenticateResponse{}, fmt.Errorf("failed to save credential state: %w", err)
	}

	sessionToken, expiresAt, err := a.tokenService.Generate(emp.ID)
	if err != nil {
		return credential.AuthenticateResponse{}, fmt.Errorf("failed to issue session token: %w", err)
	}

	a.record(ctx, req, &emp.ID, true, "")

	return credential.AuthenticateResponse{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		SessionToken: sessionToken,
		ExpiresAt:    expiresAt,
	}, nil
}

// ValidateSession implements credential.AuthService.
func (a *AuthServiceImpl) ValidateSession(ctx context.Context, tokenString string, employeeID string) error {
	return a.tokenService.Validate(tokenString, employeeID)
}

// resolveEmployee finds the authentication target. RFID scans stored card
// ids; QR delegates to the external validator; every other method resolves a
// flexible identifier: exact id, employee code, CPF (stripped or verbatim),
// then email, first match wins.
func (a *AuthServiceImpl) resolveEmployee(ctx context.Context, req credential.AuthenticateRequest) (employee.Employee, error) {
	switch req.Method {
	case credential.MethodRFID:
		creds, err := a.CredentialRepository.GetByRFIDCard(ctx, req.Credential)
		if err != nil {
			if errors.Is(err, credential.ErrCredentialsNotFound) {
				return employee.Employee{}, employee.ErrEmployeeNotFound
			}
			return employee.Employee{}, fmt.Errorf("failed to scan RFID cards: %w", err)
		}
		return a.EmployeeRepository.GetByID(ctx, creds.EmployeeID)

	case credential.MethodQRCode:
		employeeID, err := a.qrValidator.Validate(ctx, req.Credential)
		if err != nil {
			return employee.Employee{}, credential.ErrInvalidCredentials
		}
		return a.EmployeeRepository.GetByID(ctx, employeeID)

	default:
		return a.resolveByIdentifier(ctx, req.Identifier)
	}
}

func (a *AuthServiceImpl) resolveByIdentifier(ctx context.Context, identifier string) (employee.Employee, error) {
	lookups := []func(context.Context, string) (employee.Employee, error){
		a.EmployeeRepository.GetByID,
		a.EmployeeRepository.GetByCode,
		func(ctx context.Context, id string) (employee.Employee, error) {
			return a.EmployeeRepository.GetByCPF(ctx, validator.CPFDigits(id))
		},
		a.EmployeeRepository.GetByCPF,
		a.EmployeeRepository.GetByEmail,
	}
	for _, lookup := range lookups {
		emp, err := lookup(ctx, identifier)
		if err == nil {
			return emp, nil
		}
		if !errors.Is(err, employee.ErrEmployeeNotFound) {
			return employee.Employee{}, fmt.Errorf("failed to resolve employee: %w", err)
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// verify checks the presented credential against stored state. A false return
// with nil error is a wrong credential; a non-nil error is a distinct failure
// reason that must not increment the lockout counter.
func (a *AuthServiceImpl) verify(ctx context.Context, req credential.AuthenticateRequest, emp employee.Employee, creds credential.EmployeeCredentials) (bool, error) {
	switch req.Method {
	case credential.MethodPassword:
		if creds.PasswordHash == nil {
			return false, nil
		}
		return bcrypt.CompareHashAndPassword([]byte(*creds.PasswordHash), []byte(req.Credential)) == nil, nil

	case credential.MethodPIN:
		if creds.PINHash == nil {
			return false, nil
		}
		if creds.PINExpiresAt != nil && a.clk.Now().After(*creds.PINExpiresAt) {
			return false, credential.ErrPINExpired
		}
		return bcrypt.CompareHashAndPassword([]byte(*creds.PINHash), []byte(req.Credential)) == nil, nil

	case credential.MethodBiometric:
		if creds.BiometricTemplateID == nil {
			return false, nil
		}
		matched, err := a.comparator.Match(ctx, *creds.BiometricTemplateID, req.Credential)
		if err != nil {
			return false, fmt.Errorf("biometric comparison failed: %w", err)
		}
		return matched, nil

	case credential.MethodFacial:
		// Pass-through pending facial recognition integration.
		return true, nil

	case credential.MethodRFID:
		return creds.RFIDCardID != nil && *creds.RFIDCardID == req.Credential, nil

	case credential.MethodQRCode:
		// Verified by virtue of having resolved the employee through the
		// external validator.
		return true, nil

	case credential.MethodAppToken:
		employeeID, err := a.tokenService.EmployeeID(req.Credential)
		if err != nil {
			return false, nil
		}
		return employeeID == emp.ID, nil

	default:
		return false, credential.ErrUnsupportedMethod
	}
}

func (a *AuthServiceImpl) employeeLock(employeeID string) *sync.Mutex {
	mu, _ := a.locks.LoadOrStore(employeeID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// record emits an audit event. Best-effort: a sink failure is logged and
// never blocks the authentication decision.
func (a *AuthServiceImpl) record(ctx context.Context, req credential.AuthenticateRequest, employeeID *string, success bool, reason string) {
	event := credential.AuditEvent{
		Method:     req.Method,
		EmployeeID: employeeID,
		Success:    success,
		Reason:     reason,
		DeviceID:   req.DeviceID,
		IPAddress:  req.IPAddress,
		UserAgent:  req.UserAgent,
		OccurredAt: a.clk.Now(),
	}
	if err := a.audit.Record(ctx, event); err != nil {
		slog.Error("Failed to record authentication audit event", "method", req.Method, "error", err)
	}
}
