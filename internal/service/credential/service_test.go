package credential

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode != nil && strings.EqualFold(*emp.EmployeeCode, code) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCPF(_ context.Context, cpf string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.CPF == cpf {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email != nil && strings.EqualFold(*emp.Email, email) {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) AddToHourBalance(_ context.Context, _ string, _ int) error {
	return nil
}

type fakeCredentialRepo struct {
	byEmployee map[string]credential.EmployeeCredentials
}

func (f *fakeCredentialRepo) GetByEmployeeID(_ context.Context, employeeID string) (credential.EmployeeCredentials, error) {
	if creds, ok := f.byEmployee[employeeID]; ok {
		return creds, nil
	}
	return credential.EmployeeCredentials{}, credential.ErrCredentialsNotFound
}

func (f *fakeCredentialRepo) GetByRFIDCard(_ context.Context, cardID string) (credential.EmployeeCredentials, error) {
	for _, creds := range f.byEmployee {
		if creds.RFIDCardID != nil && *creds.RFIDCardID == cardID {
			return creds, nil
		}
	}
	return credential.EmployeeCredentials{}, credential.ErrCredentialsNotFound
}

func (f *fakeCredentialRepo) Save(_ context.Context, creds credential.EmployeeCredentials) error {
	f.byEmployee[creds.EmployeeID] = creds
	return nil
}

type captureAuditSink struct {
	events []credential.AuditEvent
}

func (c *captureAuditSink) Record(_ context.Context, event credential.AuditEvent) error {
	c.events = append(c.events, event)
	return nil
}

type fakeQRValidator struct {
	employeeID string
	err        error
}

func (f *fakeQRValidator) Validate(_ context.Context, _ string) (string, error) {
	return f.employeeID, f.err
}

func mustHash(t *testing.T, plain string) *string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.MinCost)
	require.NoError(t, err)
	s := string(hash)
	return &s
}

func strPtr(s string) *string { return &s }

type gateFixture struct {
	svc          credential.AuthService
	employeeRepo *fakeEmployeeRepo
	credRepo     *fakeCredentialRepo
	audit        *captureAuditSink
	qr           *fakeQRValidator
	clk          *clock.Fixed
	tokens       token.Service
}

func newGate(t *testing.T) *gateFixture {
	t.Helper()

	clk := clock.NewFixed(time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC))
	tokens := token.NewSessionService("test-secret", 8*time.Hour, clk)

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			CompanyID:        "company-1",
			EmployeeCode:     strPtr("E001"),
			FullName:         "Maria Souza",
			CPF:              "12345678901",
			Email:            strPtr("maria@example.com"),
			CanRegisterPoint: true,
			IsActive:         true,
			Status:           employee.StatusActive,
		},
	}}

	credRepo := &fakeCredentialRepo{byEmployee: map[string]credential.EmployeeCredentials{
		"emp-1": {
			EmployeeID:   "emp-1",
			PasswordHash: mustHash(t, "correct-horse"),
			PINHash:      mustHash(t, "1234"),
			RFIDCardID:   strPtr("card-42"),
		},
	}}

	audit := &captureAuditSink{}
	qr := &fakeQRValidator{employeeID: "emp-1"}

	svc := NewAuthService(
		credRepo, employeeRepo, tokens,
		DirectComparator{}, qr, audit, clk,
		5, 30*time.Minute,
	)

	return &gateFixture{
		svc:          svc,
		employeeRepo: employeeRepo,
		credRepo:     credRepo,
		audit:        audit,
		qr:           qr,
		clk:          clk,
		tokens:       tokens,
	}
}

func passwordRequest(credentialValue string) credential.AuthenticateRequest {
	return credential.AuthenticateRequest{
		Method:     credential.MethodPassword,
		Identifier: "emp-1",
		Credential: credentialValue,
		DeviceID:   "device-1",
		IPAddress:  "10.0.0.1",
	}
}

func TestAuthenticate_PasswordSuccess(t *testing.T) {
	g := newGate(t)

	resp, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "Maria Souza", resp.EmployeeName)
	assert.NotEmpty(t, resp.SessionToken)
	assert.Equal(t, g.clk.Now().Add(8*time.Hour).Unix(), resp.ExpiresAt)

	require.NoError(t, g.svc.ValidateSession(context.Background(), resp.SessionToken, "emp-1"))

	require.Len(t, g.audit.events, 1)
	assert.True(t, g.audit.events[0].Success)
	assert.Equal(t, "emp-1", *g.audit.events[0].EmployeeID)
	assert.Equal(t, "device-1", g.audit.events[0].DeviceID)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	g := newGate(t)

	_, err := g.svc.Authenticate(context.Background(), passwordRequest("wrong"))
	assert.ErrorIs(t, err, credential.ErrInvalidCredentials)

	assert.Equal(t, 1, g.credRepo.byEmployee["emp-1"].FailedAttempts)
	require.Len(t, g.audit.events, 1)
	assert.False(t, g.audit.events[0].Success)
}

func TestAuthenticate_LockoutAfterFiveFailures(t *testing.T) {
	g := newGate(t)

	for i := 0; i < 5; i++ {
		_, err := g.svc.Authenticate(context.Background(), passwordRequest("wrong"))
		assert.ErrorIs(t, err, credential.ErrInvalidCredentials)
	}

	locked := g.credRepo.byEmployee["emp-1"]
	assert.Equal(t, 5, locked.FailedAttempts)
	require.NotNil(t, locked.LockedUntil)
	assert.Equal(t, g.clk.Now().Add(30*time.Minute), *locked.LockedUntil)

	// The correct password is rejected while the lock holds, and the locked
	// attempt does not move the counter or the lock window.
	_, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	assert.ErrorIs(t, err, credential.ErrAccountLocked)
	assert.Equal(t, 5, g.credRepo.byEmployee["emp-1"].FailedAttempts)
	assert.Equal(t, *locked.LockedUntil, *g.credRepo.byEmployee["emp-1"].LockedUntil)

	// After the lockout window, the gate opens again and success resets state.
	g.clk.Advance(31 * time.Minute)

	resp, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, 0, g.credRepo.byEmployee["emp-1"].FailedAttempts)
	assert.Nil(t, g.credRepo.byEmployee["emp-1"].LockedUntil)
}

func TestAuthenticate_SuccessResetsCounter(t *testing.T) {
	g := newGate(t)

	for i := 0; i < 3; i++ {
		_, err := g.svc.Authenticate(context.Background(), passwordRequest("wrong"))
		assert.ErrorIs(t, err, credential.ErrInvalidCredentials)
	}
	assert.Equal(t, 3, g.credRepo.byEmployee["emp-1"].FailedAttempts)

	_, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	require.NoError(t, err)
	assert.Equal(t, 0, g.credRepo.byEmployee["emp-1"].FailedAttempts)
}

func TestAuthenticate_IdentifierResolution(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
	}{
		{"by id", "emp-1"},
		{"by code", "e001"},
		{"by cpf digits", "12345678901"},
		{"by cpf with punctuation", "123.456.789-01"},
		{"by email", "MARIA@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newGate(t)

			req := passwordRequest("correct-horse")
			req.Identifier = tt.identifier

			resp, err := g.svc.Authenticate(context.Background(), req)
			require.NoError(t, err)
			assert.Equal(t, "emp-1", resp.EmployeeID)
		})
	}
}

func TestAuthenticate_UnknownIdentifier(t *testing.T) {
	g := newGate(t)

	req := passwordRequest("correct-horse")
	req.Identifier = "nobody"

	_, err := g.svc.Authenticate(context.Background(), req)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	// No employee, no counter to touch; the attempt is still audited.
	assert.Equal(t, 0, g.credRepo.byEmployee["emp-1"].FailedAttempts)
	require.Len(t, g.audit.events, 1)
	assert.Nil(t, g.audit.events[0].EmployeeID)
}

func TestAuthenticate_RFID(t *testing.T) {
	g := newGate(t)

	resp, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodRFID,
		Credential: "card-42",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestAuthenticate_RFIDUnknownCard(t *testing.T) {
	g := newGate(t)

	_, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodRFID,
		Credential: "card-99",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Equal(t, 0, g.credRepo.byEmployee["emp-1"].FailedAttempts)
}

func TestAuthenticate_QRCode(t *testing.T) {
	g := newGate(t)

	resp, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodQRCode,
		Credential: "qr-payload",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestAuthenticate_QRCodeRejected(t *testing.T) {
	g := newGate(t)
	g.qr.err = credential.ErrInvalidCredentials
	g.qr.employeeID = ""

	_, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodQRCode,
		Credential: "tampered",
	})
	assert.ErrorIs(t, err, credential.ErrInvalidCredentials)
}

func TestAuthenticate_AppToken(t *testing.T) {
	g := newGate(t)

	sessionToken, _, err := g.tokens.Generate("emp-1")
	require.NoError(t, err)

	resp, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodAppToken,
		Identifier: "emp-1",
		Credential: sessionToken,
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestAuthenticate_PINExpired(t *testing.T) {
	g := newGate(t)

	creds := g.credRepo.byEmployee["emp-1"]
	expired := g.clk.Now().Add(-time.Hour)
	creds.PINExpiresAt = &expired
	g.credRepo.byEmployee["emp-1"] = creds

	_, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodPIN,
		Identifier: "emp-1",
		Credential: "1234",
	})
	assert.ErrorIs(t, err, credential.ErrPINExpired)

	// An expired PIN is not a wrong credential.
	assert.Equal(t, 0, g.credRepo.byEmployee["emp-1"].FailedAttempts)
}

func TestAuthenticate_PIN(t *testing.T) {
	g := newGate(t)

	resp, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodPIN,
		Identifier: "emp-1",
		Credential: "1234",
	})
	require.NoError(t, err)
	assert.Equal(t, "emp-1", resp.EmployeeID)
}

func TestAuthenticate_InactiveEmployee(t *testing.T) {
	g := newGate(t)

	emp := g.employeeRepo.employees["emp-1"]
	emp.Status = employee.StatusSuspended
	g.employeeRepo.employees["emp-1"] = emp

	_, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	assert.ErrorIs(t, err, employee.ErrEmployeeInactive)
}

func TestAuthenticate_PunchNotAllowed(t *testing.T) {
	g := newGate(t)

	emp := g.employeeRepo.employees["emp-1"]
	emp.CanRegisterPoint = false
	g.employeeRepo.employees["emp-1"] = emp

	_, err := g.svc.Authenticate(context.Background(), passwordRequest("correct-horse"))
	assert.ErrorIs(t, err, employee.ErrPunchNotAllowed)
}

func TestAuthenticate_NoCredentialsRegistered(t *testing.T) {
	g := newGate(t)
	g.credRepo.byEmployee["emp-1"] = credential.EmployeeCredentials{EmployeeID: "emp-1"}

	_, err := g.svc.Authenticate(context.Background(), passwordRequest("anything"))
	assert.ErrorIs(t, err, credential.ErrNoCredentials)
}

func TestAuthenticate_RequestValidation(t *testing.T) {
	g := newGate(t)

	_, err := g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     credential.MethodPassword,
		Credential: "secret",
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, credential.ErrInvalidCredentials)

	_, err = g.svc.Authenticate(context.Background(), credential.AuthenticateRequest{
		Method:     "telepathy",
		Identifier: "emp-1",
		Credential: "secret",
	})
	require.Error(t, err)
}

func TestValidateSession_WrongEmployee(t *testing.T) {
	g := newGate(t)

	sessionToken, _, err := g.tokens.Generate("emp-1")
	require.NoError(t, err)

	err = g.svc.ValidateSession(context.Background(), sessionToken, "emp-2")
	assert.ErrorIs(t, err, credential.ErrInvalidSession)
}
