package postgres

import (
	"context"

	"github.com/google/uuid"

	"jobtrack/internal/store"
)

const jobColumns = "id, company, position, contact_name, phone_number, email, status, notes, applied_date, owner, created_at, updated_at"

// ListJobs returns the full record collection, oldest first.
func (s *Store) ListJobs(ctx context.Context) ([]store.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []store.Job
	for rows.Next() {
		var job store.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}
	return jobs, rows.Err()
}

// CreateJob inserts a new record row.
func (s *Store) CreateJob(ctx context.Context, job *store.Job) error {
	query := `
		INSERT INTO jobs (id, company, position, contact_name, phone_number, email, status, notes, applied_date, owner, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		job.Company,
		job.Position,
		job.ContactName,
		job.PhoneNumber,
		job.Email,
		job.Status,
		job.Notes,
		job.AppliedDate,
		job.Owner,
		job.CreatedAt,
	)
	return err
}

// GetJobByID returns a record by its id.
func (s *Store) GetJobByID(ctx context.Context, id uuid.UUID) (*store.Job, error) {
	query := "SELECT " + jobColumns + " FROM jobs WHERE id = $1"

	var job store.Job
	if err := scanJob(s.db.QueryRowContext(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// UpdateJob overwrites an existing record row.
func (s *Store) UpdateJob(ctx context.Context, job *store.Job) error {
	query := `
		UPDATE jobs
		SET company = $2, position = $3, contact_name = $4, phone_number = $5, email = $6,
		    status = $7, notes = $8, applied_date = $9, owner = $10, updated_at = now()
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query,
		job.ID,
		job.Company,
		job.Position,
		job.ContactName,
		job.PhoneNumber,
		job.Email,
		job.Status,
		job.Notes,
		job.AppliedDate,
		job.Owner,
	)
	return err
}

// DeleteJob removes a record row, reporting whether it existed.
func (s *Store) DeleteJob(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := s.db.ExecContext(ctx, "DELETE FROM jobs WHERE id = $1", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row scanner, job *store.Job) error {
	return row.Scan(
		&job.ID,
		&job.Company,
		&job.Position,
		&job.ContactName,
		&job.PhoneNumber,
		&job.Email,
		&job.Status,
		&job.Notes,
		&job.AppliedDate,
		&job.Owner,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
}
