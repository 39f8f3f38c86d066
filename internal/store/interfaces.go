package store

import (
	"context"

	"github.com/google/uuid"
)

// JobStore handles persistence of job application records.
type JobStore interface {
	// ListJobs returns the full record collection.
	ListJobs(ctx context.Context) ([]Job, error)

	// CreateJob inserts a new record.
	CreateJob(ctx context.Context, job *Job) error

	// GetJobByID returns a record by its id.
	GetJobByID(ctx context.Context, id uuid.UUID) (*Job, error)

	// UpdateJob overwrites an existing record.
	UpdateJob(ctx context.Context, job *Job) error

	// DeleteJob removes a record, reporting whether it existed.
	DeleteJob(ctx context.Context, id uuid.UUID) (bool, error)
}

// UserStore handles persistence of the identity collection.
type UserStore interface {
	// ListUsers returns all identity records.
	ListUsers(ctx context.Context) ([]User, error)

	// CreateUser inserts a new identity record.
	CreateUser(ctx context.Context, user *User) error

	// GetUserByID returns an identity record by its id.
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)

	// UpdateUser overwrites an existing identity record.
	UpdateUser(ctx context.Context, user *User) error
}
