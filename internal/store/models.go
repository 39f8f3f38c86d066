// Package store contains the database layer for the collection service.
package store

import (
	"time"

	"github.com/google/uuid"
)

// Job is a persisted job application record.
type Job struct {
	ID          uuid.UUID
	Company     string
	Position    string
	ContactName string
	PhoneNumber string
	Email       string
	Status      string
	Notes       string
	// AppliedDate is stored as its wire form (YYYY-MM-DD); the
	// collection is schema-agnostic about it beyond that.
	AppliedDate string
	Owner       string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// User is a persisted identity record. The password column is plaintext;
// the directory this service models never hashed credentials.
type User struct {
	ID           uuid.UUID
	Username     string
	Password     string
	Role         string
	Name         string
	Email        string
	PhoneNumber  string
	Bio          string
	Location     string
	ProfileImage string
	CoverImage   string
	CreatedAt    time.Time
}
