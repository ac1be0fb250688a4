package status

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/schedule"
	"github.com/pontohq/timeclock-backend-go/internal/domain/status"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
)

type StatusServiceImpl struct {
	timeclock.PunchRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	clk clock.Clock

	defaultExpectedEntry    string // "HH:MM", used when no schedule is resolvable
	defaultToleranceMinutes int
	defaultWorkHours        float64
}

func NewStatusService(
	punchRepo timeclock.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	clk clock.Clock,
	defaultExpectedEntry string,
	defaultToleranceMinutes int,
	defaultWorkHours float64,
) status.StatusService {
	if defaultExpectedEntry == "" {
		defaultExpectedEntry = "08:00"
	}
	if defaultToleranceMinutes <= 0 {
		defaultToleranceMinutes = 5
	}
	if defaultWorkHours <= 0 {
		defaultWorkHours = 8
	}
	return &StatusServiceImpl{
		PunchRepository:         punchRepo,
		EmployeeRepository:      employeeRepo,
		WorkScheduleRepository:  workScheduleRepo,
		clk:                     clk,
		defaultExpectedEntry:    defaultExpectedEntry,
		defaultToleranceMinutes: defaultToleranceMinutes,
		defaultWorkHours:        defaultWorkHours,
	}
}

// Current implements status.StatusService. Pure read-only projection: safe to
// recompute on every poller tick.
func (s *StatusServiceImpl) Current(ctx context.Context, employeeID string) (status.AttendanceStatus, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return status.AttendanceStatus{}, employee.ErrEmployeeNotFound
		}
		return status.AttendanceStatus{}, fmt.Errorf("failed to get employee: %w", err)
	}

	var sched *schedule.WorkSchedule
	if found, err := s.WorkScheduleRepository.GetByEmployee(ctx, emp.ID); err == nil {
		sched = &found
	} else if !errors.Is(err, schedule.ErrWorkScheduleNotFound) {
		return status.AttendanceStatus{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	now := s.clk.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	punches, err := s.PunchRepository.ListByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return status.AttendanceStatus{}, fmt.Errorf("failed to list punches: %w", err)
	}

	return s.derive(emp, sched, dayStart, now, punches), nil
}

func (s *StatusServiceImpl) derive(emp employee.Employee, sched *schedule.WorkSchedule, dayStart, now time.Time, punches []timeclock.Punch) status.AttendanceStatus {
	snapshot := status.AttendanceStatus{EmployeeID: emp.ID}

	if entry := timeclock.FirstOfType(punches, timeclock.PunchTypeEntry); entry != nil {
		t := entry.Timestamp
		snapshot.EntryTime = &t
	}
	if exit := timeclock.FirstOfType(punches, timeclock.PunchTypeExit); exit != nil {
		t := exit.Timestamp
		snapshot.ExitTime = &t
	}
	if bs := timeclock.FirstOfType(punches, timeclock.PunchTypeBreakStart); bs != nil {
		t := bs.Timestamp
		snapshot.BreakStartTime = &t
	}
	if be := timeclock.FirstOfType(punches, timeclock.PunchTypeBreakEnd); be != nil {
		t := be.Timestamp
		snapshot.BreakEndTime = &t
	}

	// First pass: position in the entry/break/exit cycle.
	switch {
	case snapshot.ExitTime != nil:
		snapshot.Status = status.StatusLeft
	case snapshot.BreakStartTime != nil && snapshot.BreakEndTime == nil:
		snapshot.Status = status.StatusOnBreak
	case snapshot.EntryTime != nil:
		snapshot.Status = status.StatusWorking
	default:
		snapshot.Status = status.StatusNotStarted
	}

	snapshot.ExpectedHours = s.expectedHours(emp, sched)

	if snapshot.EntryTime != nil {
		end := now
		if snapshot.ExitTime != nil {
			end = *snapshot.ExitTime
		}
		worked := end.Sub(*snapshot.EntryTime)

		var breakDuration time.Duration
		switch {
		case snapshot.BreakStartTime != nil && snapshot.BreakEndTime != nil:
			breakDuration = snapshot.BreakEndTime.Sub(*snapshot.BreakStartTime)
		case snapshot.BreakStartTime != nil:
			breakDuration = now.Sub(*snapshot.BreakStartTime)
		}
		worked -= breakDuration
		if worked < 0 {
			worked = 0
		}
		snapshot.WorkedHours = worked.Hours()

		// Schedule-aware lateness when available, fixed default otherwise.
		expectedEntry := s.expectedEntry(sched, dayStart)
		tolerance := s.defaultToleranceMinutes
		if sched != nil && sched.ToleranceMinutes > 0 {
			tolerance = sched.ToleranceMinutes
		}
		diff := snapshot.EntryTime.Sub(expectedEntry).Minutes()
		if diff > 0 {
			snapshot.LateMinutes = int(math.Round(diff))
		}

		// Second pass: late overrides working/on_break, never left.
		if snapshot.LateMinutes > tolerance && snapshot.Status != status.StatusLeft {
			snapshot.Status = status.StatusLate
		}

		if snapshot.ExitTime == nil {
			expectedDuration := time.Duration(snapshot.ExpectedHours * float64(time.Hour))
			ttl := snapshot.EntryTime.Add(expectedDuration)
			if snapshot.BreakStartTime != nil && snapshot.BreakEndTime != nil {
				ttl = ttl.Add(snapshot.BreakEndTime.Sub(*snapshot.BreakStartTime))
			}
			snapshot.TimeToLeave = &ttl
		}
	}

	snapshot.BalanceHours = snapshot.WorkedHours - snapshot.ExpectedHours
	if snapshot.BalanceHours > 0 {
		snapshot.IsOvertime = true
		snapshot.OvertimeMinutes = int(math.Round(snapshot.BalanceHours * 60))
	}

	snapshot.NextAction = nextAction(snapshot)

	return snapshot
}

// nextAction labels the next step of the punch cycle, purely from which
// checkpoints are present, independent of lateness.
func nextAction(snapshot status.AttendanceStatus) string {
	switch {
	case snapshot.ExitTime != nil:
		return ""
	case snapshot.BreakStartTime != nil && snapshot.BreakEndTime == nil:
		return string(timeclock.PunchTypeBreakEnd)
	case snapshot.BreakStartTime != nil:
		return string(timeclock.PunchTypeExit)
	case snapshot.EntryTime != nil:
		return string(timeclock.PunchTypeBreakStart)
	default:
		return string(timeclock.PunchTypeEntry)
	}
}

func (s *StatusServiceImpl) expectedHours(emp employee.Employee, sched *schedule.WorkSchedule) float64 {
	switch {
	case sched != nil && sched.WorkHours != nil:
		return *sched.WorkHours
	case emp.WorkHours != nil:
		return *emp.WorkHours
	default:
		return s.defaultWorkHours
	}
}

func (s *StatusServiceImpl) expectedEntry(sched *schedule.WorkSchedule, dayStart time.Time) time.Time {
	if sched != nil {
		if expected, ok := sched.StartOn(dayStart); ok {
			return expected
		}
	}
	parsed, err := time.Parse("15:04", s.defaultExpectedEntry)
	if err != nil {
		parsed, _ = time.Parse("15:04", "08:00")
	}
	return time.Date(
		dayStart.Year(), dayStart.Month(), dayStart.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		dayStart.Location(),
	)
}
