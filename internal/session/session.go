// Package session holds the authenticated identity for the duration of
// a session. Login is a naive credential lookup against the identity
// collection; the credentials travel and are compared in plaintext.
// That is the documented behavior of the system this models, not an
// endorsement.
package session

import (
	"context"

	"jobtrack/pkg/api"
)

// AuthError reports a failed credential lookup. The message never
// reveals whether the username or the password was wrong.
type AuthError struct{}

func (e *AuthError) Error() string { return "invalid username or password" }

// Credentials are the raw login inputs.
type Credentials struct {
	Username string
	Password string
}

// UserDirectory is the identity collection lookup the login flow needs.
type UserDirectory interface {
	ListUsers(ctx context.Context) ([]api.UserRecord, error)
}

// Login resolves credentials against the identity collection by exact
// username+password match. On success it returns the established
// identity; on mismatch it returns *AuthError. Directory failures pass
// through unchanged.
func Login(ctx context.Context, dir UserDirectory, creds Credentials) (*api.Identity, error) {
	users, err := dir.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Username == creds.Username && u.Password == creds.Password {
			role := api.RoleUser
			if u.Role == api.RoleAdmin {
				role = api.RoleAdmin
			}
			return &api.Identity{
				Username: creds.Username,
				Role:     role,
				UserID:   u.ID,
			}, nil
		}
	}
	return nil, &AuthError{}
}
