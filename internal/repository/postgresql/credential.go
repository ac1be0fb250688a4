package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/pontohq/timeclock-backend-go/internal/domain/credential"
	"github.com/pontohq/timeclock-backend-go/internal/pkg/database"
)

type credentialRepository struct {
	db *database.DB
}

func NewCredentialRepository(db *database.DB) credential.CredentialRepository {
	return &credentialRepository{db: db}
}

const credentialColumns = `
	employee_id, password_hash, pin_hash, pin_expires_at,
	biometric_template_id, rfid_card_id, failed_attempts, locked_until,
	created_at, updated_at
`

func scanCredentials(row pgx.Row) (credential.EmployeeCredentials, error) {
	var creds credential.EmployeeCredentials
	err := row.Scan(
		&creds.EmployeeID, &creds.PasswordHash, &creds.PINHash, &creds.PINExpiresAt,
		&creds.BiometricTemplateID, &creds.RFIDCardID, &creds.FailedAttempts, &creds.LockedUntil,
		&creds.CreatedAt, &creds.UpdatedAt,
	)
	return creds, err
}

// GetByEmployeeID implements credential.CredentialRepository.
func (r *credentialRepository) GetByEmployeeID(ctx context.Context, employeeID string) (credential.EmployeeCredentials, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + credentialColumns + ` FROM employee_credentials WHERE employee_id = $1`

	creds, err := scanCredentials(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.EmployeeCredentials{}, credential.ErrCredentialsNotFound
		}
		return credential.EmployeeCredentials{}, fmt.Errorf("failed to get credentials by employee id: %w", err)
	}
	return creds, nil
}

// GetByRFIDCard implements credential.CredentialRepository.
func (r *credentialRepository) GetByRFIDCard(ctx context.Context, cardID string) (credential.EmployeeCredentials, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + credentialColumns + ` FROM employee_credentials WHERE rfid_card_id = $1`

	creds, err := scanCredentials(q.QueryRow(ctx, query, cardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return credential.EmployeeCredentials{}, credential.ErrCredentialsNotFound
		}
		return credential.EmployeeCredentials{}, fmt.Errorf("failed to get credentials by rfid card: %w", err)
	}
	return creds, nil
}

// Save implements credential.CredentialRepository.
func (r *credentialRepository) Save(ctx context.Context, creds credential.EmployeeCredentials) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employee_credentials (
			employee_id, password_hash, pin_hash, pin_expires_at,
			biometric_template_id, rfid_card_id, failed_attempts, locked_until
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (employee_id) DO UPDATE SET
			password_hash = EXCLUDED.password_hash,
			pin_hash = EXCLUDED.pin_hash,
			pin_expires_at = EXCLUDED.pin_expires_at,
			biometric_template_id = EXCLUDED.biometric_template_id,
			rfid_card_id = EXCLUDED.rfid_card_id,
			failed_attempts = EXCLUDED.failed_attempts,
			locked_until = EXCLUDED.locked_until,
			updated_at = NOW()
	`

	_, err := q.Exec(ctx, query,
		creds.EmployeeID,
		creds.PasswordHash,
		creds.PINHash,
		creds.PINExpiresAt,
		creds.BiometricTemplateID,
		creds.RFIDCardID,
		creds.FailedAttempts,
		creds.LockedUntil,
	)
	if err != nil {
		return fmt.Errorf("failed to save credentials: %w", err)
	}
	return nil
}
