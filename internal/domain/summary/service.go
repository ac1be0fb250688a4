package summary

import (
	"context"
	"time"
)

// SummaryService derives per-day and per-month attendance summaries from the
// punch store and the employee's currently assigned schedule.
type SummaryService interface {
	// DaySummary computes the summary for one employee on one calendar day.
	// A missing schedule is not an error: defaults apply silently. A missing
	// employee propagates as employee.ErrEmployeeNotFound.
	DaySummary(ctx context.Context, employeeID string, date time.Time) (DaySummary, error)

	// MonthSummary computes one DaySummary per calendar day of (month, year)
	// and folds the totals. Day computations may run concurrently; any day
	// failure aborts the fold.
	MonthSummary(ctx context.Context, employeeID string, month, year int) (MonthSummary, error)
}
