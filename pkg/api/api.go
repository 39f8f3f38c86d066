// Package api contains shared JSON request/response structs.
// This package is shared between the CLI and the collection service.
package api

// Role is the workflow role of an authenticated user.
type Role string

const (
	// RoleUser submits job applications and may only touch their own
	// pending records.
	RoleUser Role = "USER"
	// RoleAdmin arbitrates submissions and may change any record's status.
	RoleAdmin Role = "ADMIN"
)

// Status is the workflow state of a job record.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Statuses lists all valid record statuses.
var Statuses = []Status{StatusPending, StatusApproved, StatusRejected}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// DateLayout is the wire format for applied dates.
const DateLayout = "2006-01-02"

// JobRecord is a single job application.
// Owner and AppliedDate are set at creation and never change afterwards;
// the lifecycle manager pins them on every update.
type JobRecord struct {
	ID          string `json:"id,omitempty"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	ContactName string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty" validate:"omitempty,contactphone"`
	Email       string `json:"email,omitempty" validate:"omitempty,contactemail"`
	Status      Status `json:"status" validate:"omitempty,recordstatus"`
	Notes       string `json:"notes,omitempty"`
	AppliedDate string `json:"applied_date,omitempty"`
	Owner       string `json:"owner,omitempty"`
}

// UserRecord is an entry in the identity collection.
// The password travels in plaintext; the directory this models never
// issued tokens or hashed credentials.
type UserRecord struct {
	ID           string `json:"id,omitempty"`
	Username     string `json:"user_name"`
	Password     string `json:"password"`
	Role         Role   `json:"role"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Location     string `json:"location,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	CoverImage   string `json:"cover_image,omitempty"`
}

// Identity is the authenticated user for the current session.
// A nil *Identity means unauthenticated.
type Identity struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	UserID   string `json:"user_id,omitempty"`
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}
