package summary

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/schedule"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
	"golang.org/x/sync/errgroup"
)

type SummaryServiceImpl struct {
	timeclock.PunchRepository
	employee.EmployeeRepository
	schedule.WorkScheduleRepository
	clk clock.Clock

	defaultToleranceMinutes int
	defaultWorkHours        float64
	monthFanoutLimit        int
}

func NewSummaryService(
	punchRepo timeclock.PunchRepository,
	employeeRepo employee.EmployeeRepository,
	workScheduleRepo schedule.WorkScheduleRepository,
	clk clock.Clock,
	defaultToleranceMinutes int,
	defaultWorkHours float64,
	monthFanoutLimit int,
) summary.SummaryService {
	if defaultToleranceMinutes <= 0 {
		defaultToleranceMinutes = 5
	}
	if defaultWorkHours <= 0 {
		defaultWorkHours = 8
	}
	if monthFanoutLimit <= 0 {
		monthFanoutLimit = 4
	}
	return &SummaryServiceImpl{
		PunchRepository:         punchRepo,
		EmployeeRepository:      employeeRepo,
		WorkScheduleRepository:  workScheduleRepo,
		clk:                     clk,
		defaultToleranceMinutes: defaultToleranceMinutes,
		defaultWorkHours:        defaultWorkHours,
		monthFanoutLimit:        monthFanoutLimit,
	}
}

// DaySummary implements summary.SummaryService.
func (s *SummaryServiceImpl) DaySummary(ctx context.Context, employeeID string, date time.Time) (summary.DaySummary, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return summary.DaySummary{}, employee.ErrEmployeeNotFound
		}
		return summary.DaySummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	sched, err := s.resolveSchedule(ctx, emp)
	if err != nil {
		return summary.DaySummary{}, err
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

	punches, err := s.PunchRepository.ListByEmployeeAndDay(ctx, employeeID, dayStart, dayEnd)
	if err != nil {
		return summary.DaySummary{}, fmt.Errorf("failed to list punches: %w", err)
	}

	return s.computeDay(emp, sched, dayStart, punches), nil
}

// MonthSummary implements summary.SummaryService.
func (s *SummaryServiceImpl) MonthSummary(ctx context.Context, employeeID string, month, year int) (summary.MonthSummary, error) {
	if month < 1 || month > 12 {
		return summary.MonthSummary{}, summary.ErrInvalidMonth
	}
	if year < 1900 || year > 2200 {
		return summary.MonthSummary{}, summary.ErrInvalidYear
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return summary.MonthSummary{}, employee.ErrEmployeeNotFound
		}
		return summary.MonthSummary{}, fmt.Errorf("failed to get employee: %w", err)
	}

	// Currently assigned schedule, not a historical snapshot.
	sched, err := s.resolveSchedule(ctx, emp)
	if err != nil {
		return summary.MonthSummary{}, err
	}

	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	days := make([]summary.DaySummary, daysInMonth)

	// Days are read-only and non-interacting, so they may be computed in
	// parallel; the fan-out is bounded to not overwhelm the punch store.
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.monthFanoutLimit)

	for i := 0; i < daysInMonth; i++ {
		g.Go(func() error {
			dayStart := firstDay.AddDate(0, 0, i)
			dayEnd := dayStart.Add(24*time.Hour - time.Millisecond)

			punches, err := s.PunchRepository.ListByEmployeeAndDay(gCtx, employeeID, dayStart, dayEnd)
			if err != nil {
				return fmt.Errorf("failed to list punches for %s: %w", dayStart.Format("2006-01-02"), err)
			}

			days[i] = s.computeDay(emp, sched, dayStart, punches)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return summary.MonthSummary{}, err
	}

	result := summary.MonthSummary{
		EmployeeID: employeeID,
		Month:      month,
		Year:       year,
		Days:       days,
	}
	for _, day := range days {
		result.TotalWorkedHours += float64(day.WorkedMinutes) / 60.0
		result.TotalExpectedHours += float64(day.ExpectedMinutes) / 60.0
		result.TotalBalanceHours += float64(day.BalanceMinutes) / 60.0
		result.TotalOvertimeHours += float64(day.OvertimeMinutes) / 60.0
		result.TotalLateMinutes += day.LateMinutes
		if day.IsAbsent {
			result.TotalAbsences++
		}
	}

	return result, nil
}

// resolveSchedule loads the employee's assigned schedule. A missing schedule
// is not an error: aggregation falls back to defaults.
func (s *SummaryServiceImpl) resolveSchedule(ctx context.Context, emp employee.Employee) (*schedule.WorkSchedule, error) {
	sched, err := s.WorkScheduleRepository.GetByEmployee(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, schedule.ErrWorkScheduleNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get work schedule: %w", err)
	}
	return &sched, nil
}

// computeDay derives a DaySummary from one day's punches. All punches stay in
// Records; only the first punch of each type resolves a checkpoint.
func (s *SummaryServiceImpl) computeDay(emp employee.Employee, sched *schedule.WorkSchedule, dayStart time.Time, punches []timeclock.Punch) summary.DaySummary {
	now := s.clk.Now()

	day := summary.DaySummary{
		EmployeeID: emp.ID,
		Date:       dayStart,
		Records:    punches,
	}

	if entry := timeclock.FirstOfType(punches, timeclock.PunchTypeEntry); entry != nil {
		t := entry.Timestamp
		day.EntryTime = &t
	}
	if exit := timeclock.FirstOfType(punches, timeclock.PunchTypeExit); exit != nil {
		t := exit.Timestamp
		day.ExitTime = &t
	}
	if bs := timeclock.FirstOfType(punches, timeclock.PunchTypeBreakStart); bs != nil {
		t := bs.Timestamp
		day.BreakStartTime = &t
	}
	if be := timeclock.FirstOfType(punches, timeclock.PunchTypeBreakEnd); be != nil {
		t := be.Timestamp
		day.BreakEndTime = &t
	}

	day.ExpectedMinutes = s.expectedMinutes(emp, sched)

	if day.EntryTime == nil {
		// An exit-only day is not absent but produces zero worked minutes.
		day.IsAbsent = day.ExitTime == nil
	} else {
		end := now
		if day.ExitTime != nil {
			end = *day.ExitTime
		}

		worked := end.Sub(*day.EntryTime)

		switch {
		case day.BreakStartTime != nil && day.BreakEndTime != nil:
			worked -= day.BreakEndTime.Sub(*day.BreakStartTime)
		case day.BreakStartTime != nil:
			// Break in progress.
			worked -= now.Sub(*day.BreakStartTime)
		}

		// Break spans exceeding the entry-exit envelope must not produce
		// negative worked time.
		if worked < 0 {
			worked = 0
		}
		day.WorkedMinutes = int(worked.Minutes())

		if sched != nil {
			if expectedEntry, ok := sched.StartOn(dayStart); ok {
				tolerance := sched.ToleranceMinutes
				if tolerance <= 0 {
					tolerance = s.defaultToleranceMinutes
				}
				// Late minutes count from the scheduled entry, not from the
				// tolerance-adjusted threshold.
				diff := day.EntryTime.Sub(expectedEntry).Minutes()
				if diff > 0 {
					day.LateMinutes = int(math.Round(diff))
				}
				day.IsLate = day.LateMinutes > tolerance
			}
		}
	}

	day.BalanceMinutes = day.WorkedMinutes - day.ExpectedMinutes
	if day.BalanceMinutes > 0 {
		day.OvertimeMinutes = day.BalanceMinutes
	}

	tolerance := s.defaultToleranceMinutes
	if sched != nil && sched.ToleranceMinutes > 0 {
		tolerance = sched.ToleranceMinutes
	}
	day.IsValid = !day.IsAbsent && (!day.IsLate || day.LateMinutes <= tolerance)

	return day
}

func (s *SummaryServiceImpl) expectedMinutes(emp employee.Employee, sched *schedule.WorkSchedule) int {
	hours := s.defaultWorkHours
	switch {
	case sched != nil && sched.WorkHours != nil:
		hours = *sched.WorkHours
	case emp.WorkHours != nil:
		hours = *emp.WorkHours
	}
	return int(hours * 60)
}
