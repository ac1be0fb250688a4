package timeclock

import (
	"context"
	"testing"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployeeRepo struct {
	employees    map[string]employee.Employee
	balanceCalls []int
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	if emp, ok := f.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByCPF(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmail(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) AddToHourBalance(_ context.Context, id string, delta int) error {
	emp, ok := f.employees[id]
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	emp.HourBalance += delta
	f.employees[id] = emp
	f.balanceCalls = append(f.balanceCalls, delta)
	return nil
}

type fakePunchRepo struct {
	punches []timeclock.Punch
}

func (f *fakePunchRepo) Create(_ context.Context, punch timeclock.Punch) (timeclock.Punch, error) {
	punch.CreatedAt = punch.Timestamp
	f.punches = append(f.punches, punch)
	return punch, nil
}

func (f *fakePunchRepo) ListByEmployeeAndDay(_ context.Context, employeeID string, dayStart, dayEnd time.Time) ([]timeclock.Punch, error) {
	var out []timeclock.Punch
	for _, p := range f.punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.Timestamp.Before(dayStart) || p.Timestamp.After(dayEnd) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePunchRepo) SetValidity(_ context.Context, _ string, _, _ bool) error {
	return nil
}

type fakeAuthService struct {
	err error
}

func (f *fakeAuthService) Authenticate(_ context.Context, _ credential.AuthenticateRequest) (credential.AuthenticateResponse, error) {
	return credential.AuthenticateResponse{}, nil
}

func (f *fakeAuthService) ValidateSession(_ context.Context, _ string, _ string) error {
	return f.err
}

type fakeSummaryService struct {
	day summary.DaySummary
}

func (f *fakeSummaryService) DaySummary(_ context.Context, _ string, _ time.Time) (summary.DaySummary, error) {
	return f.day, nil
}

func (f *fakeSummaryService) MonthSummary(_ context.Context, _ string, _, _ int) (summary.MonthSummary, error) {
	return summary.MonthSummary{}, nil
}

func newFixture() (*fakePunchRepo, *fakeEmployeeRepo, *fakeAuthService, *fakeSummaryService, *clock.Fixed) {
	punchRepo := &fakePunchRepo{}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID:               "emp-1",
			CompanyID:        "company-1",
			FullName:         "Maria Souza",
			CanRegisterPoint: true,
			IsActive:         true,
			Status:           employee.StatusActive,
		},
	}}
	auth := &fakeAuthService{}
	sum := &fakeSummaryService{}
	clk := clock.NewFixed(time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC))
	return punchRepo, employeeRepo, auth, sum, clk
}

func registerRequest(punchType string) timeclock.RegisterPunchRequest {
	return timeclock.RegisterPunchRequest{
		SessionToken: "session-token",
		EmployeeID:   "emp-1",
		Type:         punchType,
		Method:       string(timeclock.PunchMethodManual),
	}
}

func TestRegisterPunch(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	resp, err := svc.RegisterPunch(context.Background(), registerRequest("entry"))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, "entry", resp.Type)
	assert.Equal(t, clk.Now().Format(time.RFC3339), resp.Timestamp)
	assert.True(t, resp.IsValid)
	assert.False(t, resp.IsDuplicate)

	require.Len(t, punchRepo.punches, 1)
	assert.Equal(t, "company-1", punchRepo.punches[0].CompanyID)
	// No balance fold until the day is closed by an exit.
	assert.Empty(t, employeeRepo.balanceCalls)
}

func TestRegisterPunch_ExitFoldsHourBalance(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	sum.day = summary.DaySummary{EmployeeID: "emp-1", BalanceMinutes: -15}
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	_, err := svc.RegisterPunch(context.Background(), registerRequest("exit"))
	require.NoError(t, err)

	require.Len(t, employeeRepo.balanceCalls, 1)
	assert.Equal(t, -15, employeeRepo.balanceCalls[0])
	assert.Equal(t, -15, employeeRepo.employees["emp-1"].HourBalance)
}

func TestRegisterPunch_InvalidSession(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	auth.err = credential.ErrSessionExpired
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	_, err := svc.RegisterPunch(context.Background(), registerRequest("entry"))
	assert.ErrorIs(t, err, credential.ErrSessionExpired)
	assert.Empty(t, punchRepo.punches)
}

func TestRegisterPunch_PunchNotAllowed(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	emp := employeeRepo.employees["emp-1"]
	emp.CanRegisterPoint = false
	employeeRepo.employees["emp-1"] = emp
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	_, err := svc.RegisterPunch(context.Background(), registerRequest("entry"))
	assert.ErrorIs(t, err, employee.ErrPunchNotAllowed)
	assert.Empty(t, punchRepo.punches)
}

func TestRegisterPunch_Validation(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	req := registerRequest("lunch")
	_, err := svc.RegisterPunch(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, punchRepo.punches)

	req = registerRequest("entry")
	req.SessionToken = ""
	_, err = svc.RegisterPunch(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, punchRepo.punches)
}

func TestListDayPunches(t *testing.T) {
	punchRepo, employeeRepo, auth, sum, clk := newFixture()
	svc := NewTimeClockService(punchRepo, employeeRepo, auth, sum, clk)

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	punchRepo.punches = []timeclock.Punch{
		{ID: "p1", EmployeeID: "emp-1", Type: timeclock.PunchTypeEntry, Timestamp: day.Add(8 * time.Hour)},
		{ID: "p2", EmployeeID: "emp-1", Type: timeclock.PunchTypeExit, Timestamp: day.Add(17 * time.Hour)},
		{ID: "p3", EmployeeID: "emp-1", Type: timeclock.PunchTypeEntry, Timestamp: day.AddDate(0, 0, 1).Add(8 * time.Hour)},
		{ID: "p4", EmployeeID: "emp-2", Type: timeclock.PunchTypeEntry, Timestamp: day.Add(8 * time.Hour)},
	}

	got, err := svc.ListDayPunches(context.Background(), "emp-1", day.Add(12*time.Hour))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
}
