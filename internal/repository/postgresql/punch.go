package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/pontohq/timeclock-backend-go/internal/domain/timeclock"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timeclock.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements timeclock.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, punch timeclock.Punch) (timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_clock_punches (
			id, employee_id, company_id, type, timestamp, method,
			latitude, longitude, is_valid, is_duplicate
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		punch.ID,
		punch.EmployeeID,
		punch.CompanyID,
		punch.Type,
		punch.Timestamp,
		punch.Method,
		punch.Latitude,
		punch.Longitude,
		punch.IsValid,
		punch.IsDuplicate,
	).Scan(&punch.CreatedAt)

	if err != nil {
		return timeclock.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// ListByEmployeeAndDay implements timeclock.PunchRepository.
func (r *punchRepository) ListByEmployeeAndDay(ctx context.Context, employeeID string, dayStart, dayEnd time.Time) ([]timeclock.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, type, timestamp, method,
			   latitude, longitude, is_valid, is_duplicate, created_at
		FROM time_clock_punches
		WHERE employee_id = $1
		  AND timestamp BETWEEN $2 AND $3
		ORDER BY timestamp ASC
	`

	rows, err := q.Query(ctx, query, employeeID, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list punches: %w", err)
	}
	defer rows.Close()

	var punches []timeclock.Punch
	for rows.Next() {
		var p timeclock.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Type, &p.Timestamp, &p.Method,
			&p.Latitude, &p.Longitude, &p.IsValid, &p.IsDuplicate, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

// SetValidity implements timeclock.PunchRepository.
func (r *punchRepository) SetValidity(ctx context.Context, id string, isValid, isDuplicate bool) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE time_clock_punches
		SET is_valid = $2, is_duplicate = $3
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, isValid, isDuplicate)
	if err != nil {
		return fmt.Errorf("failed to update punch validity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return timeclock.ErrPunchNotFound
	}
	return nil
}
