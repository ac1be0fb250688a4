package timeclock

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
)

type TimeClockServiceImpl struct {
	timeclock.PunchRepository
	employee.EmployeeRepository
	authService    credential.AuthService
	summaryService summary.SummaryService
	clk            clock.Clock
}

func NewTimeClockService(
	punchRepo timeclock.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	authService credential.AuthService,
	summaryService summary.SummaryService,
	clk clock.Clock,
) timeclock.TimeClockService {
	return &TimeClockServiceImpl{
		PunchRepository:    punchRepo,
		EmployeeRepository: employeeRepo,
		authService:        authService,
		summaryService:     summaryService,
		clk:                clk,
	}
}

// RegisterPunch implements timeclock.TimeClockService. The session token from
// the credential gate must be valid for the target employee.
func (t *TimeClockServiceImpl) RegisterPunch(ctx context.Context, req timeclock.RegisterPunchRequest) (timeclock.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return timeclock.PunchResponse{}, err
	}

	if err := t.authService.ValidateSession(ctx, req.SessionToken, req.EmployeeID); err != nil {
		return timeclock.PunchResponse{}, err
	}

	emp, err := t.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return timeclock.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return timeclock.PunchResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}
	if !emp.CanRegisterPoint {
		return timeclock.PunchResponse{}, employee.ErrPunchNotAllowed
	}

	now := t.clk.Now()

	punch := timeclock.Punch{
		ID:         uuid.NewString(),
		EmployeeID: emp.ID,
		CompanyID:  emp.CompanyID,
		Type:       timeclock.PunchType(req.Type),
		Timestamp:  now,
		Method:     timeclock.PunchMethod(req.Method),
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
		IsValid:    true,
	}

	created, err := t.PunchRepository.Create(ctx, punch)
	if err != nil {
		return timeclock.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	// An exit closes the day: fold its balance into the cumulative hour
	// balance. Best-effort; the punch itself is already persisted.
	if created.Type == timeclock.PunchTypeExit {
		if err := t.updateHourBalance(ctx, emp.ID, now); err != nil {
			slog.Error("Failed to update hour balance after exit punch", "employee_id", emp.ID, "error", err)
		}
	}

	return timeclock.PunchResponse{
		ID:          created.ID,
		EmployeeID:  created.EmployeeID,
		Type:        string(created.Type),
		Timestamp:   created.Timestamp.Format(time.RFC3339),
		Method:      string(created.Method),
		Latitude:    created.Latitude,
		Longitude:   created.Longitude,
		IsValid:     created.IsValid,
		IsDuplicate: created.IsDuplicate,
	}, nil
}

// ListDayPunches implements timeclock.TimeClockService.
func (t *TimeClockServiceImpl) ListDayPunches(ctx context.Context, employeeID string, date time.Time) ([]timeclock.Punch, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	punches, err := t.PunchRepository.ListByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	return punches, nil
}

func (t *TimeClockServiceImpl) updateHourBalance(ctx context.Context, employeeID string, date time.Time) error {
	day, err := t.summaryService.DaySummary(ctx, employeeID, date)
	if err != nil {
		return err
	}
	return t.EmployeeRepository.AddToHourBalance(ctx, employeeID, day.BalanceMinutes)
}
