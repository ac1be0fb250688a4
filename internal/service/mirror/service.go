package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/employee"
	"github.com/pontohq/timeclock-backend-go/internal/domain/mirror"
	"github.com/pontohq/timeclock-backend-go/internal/domain/summary"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/clock"
)

// AbsentMarker renders in place of a missing checkpoint time.
const AbsentMarker = "--"

type MirrorServiceImpl struct {
	employee.EmployeeRepository
	summaryService summary.SummaryService
	clk            clock.Clock
}

func NewMirrorService(
	employeeRepo employee.EmployeeRepository,
	summaryService summary.SummaryService,
	clk clock.Clock,
) mirror.MirrorService {
	return &MirrorServiceImpl{
		EmployeeRepository: employeeRepo,
		summaryService:     summaryService,
		clk:                clk,
	}
}

// Build implements mirror.MirrorService. Pure projection over the month
// summary: no attendance rule lives here.
func (m *MirrorServiceImpl) Build(ctx context.Context, employeeID string, month, year int) (mirror.Document, error) {
	emp, err := m.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return mirror.Document{}, err
	}

	monthSummary, err := m.summaryService.MonthSummary(ctx, employeeID, month, year)
	if err != nil {
		return mirror.Document{}, fmt.Errorf("failed to build month summary: %w", err)
	}

	rows := make([]mirror.DayRow, 0, len(monthSummary.Days))
	for _, day := range monthSummary.Days {
		rows = append(rows, dayRow(day))
	}

	return mirror.Document{
		EmployeeID:   emp.ID,
		EmployeeName: emp.FullName,
		CPF:          emp.CPF,
		Month:        month,
		Year:         year,
		GeneratedAt:  m.clk.Now(),
		Rows:         rows,
		Totals: mirror.Totals{
			WorkedHours:   monthSummary.TotalWorkedHours,
			ExpectedHours: monthSummary.TotalExpectedHours,
			BalanceHours:  monthSummary.TotalBalanceHours,
			OvertimeHours: monthSummary.TotalOvertimeHours,
			LateMinutes:   monthSummary.TotalLateMinutes,
			Absences:      monthSummary.TotalAbsences,
		},
	}, nil
}

func dayRow(day summary.DaySummary) mirror.DayRow {
	row := mirror.DayRow{
		Date:        day.Date.Format("2006-01-02"),
		Weekday:     day.Date.Weekday().String(),
		Entry:       formatCheckpoint(day.EntryTime),
		BreakStart:  formatCheckpoint(day.BreakStartTime),
		BreakEnd:    formatCheckpoint(day.BreakEndTime),
		Exit:        formatCheckpoint(day.ExitTime),
		WorkedHours: formatMinutes(day.WorkedMinutes),
	}
	switch {
	case day.IsAbsent:
		row.Flag = "absent"
	case day.IsLate:
		row.Flag = "late"
	}
	return row
}

func formatCheckpoint(t *time.Time) string {
	if t == nil {
		return AbsentMarker
	}
	return t.Format("15:04")
}

func formatMinutes(minutes int) string {
	return fmt.Sprintf("%dh %dm", minutes/60, minutes%60)
}
