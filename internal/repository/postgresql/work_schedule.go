package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/schedule"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

const workScheduleColumns = `
	id, company_id, name, type, start_time, end_time, break_start, break_end,
	work_hours, tolerance_minutes, allow_overtime, max_overtime_minutes,
	created_at, updated_at, deleted_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.CompanyID, &ws.Name, &ws.Type, &ws.StartTime, &ws.EndTime,
		&ws.BreakStart, &ws.BreakEnd, &ws.WorkHours, &ws.ToleranceMinutes,
		&ws.AllowOvertime, &ws.MaxOvertime,
		&ws.CreatedAt, &ws.UpdatedAt, &ws.DeletedAt,
	)
	return ws, err
}

// GetByID implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByID(ctx context.Context, id string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1 AND deleted_at IS NULL`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule by id: %w", err)
	}
	return ws, nil
}

// GetByEmployee implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByEmployee(ctx context.Context, employeeID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules ws
		JOIN employees e ON e.work_schedule_id = ws.id
		WHERE e.id = $1 AND ws.deleted_at IS NULL
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrWorkScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule by employee: %w", err)
	}
	return ws, nil
}
