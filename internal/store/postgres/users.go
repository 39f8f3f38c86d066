package postgres

import (
	"context"

	"github.com/google/uuid"

	"jobtrack/internal/store"
)

const userColumns = "id, user_name, password, role, name, email, phone_number, bio, location, profile_image, cover_image, created_at"

// ListUsers returns all identity records.
func (s *Store) ListUsers(ctx context.Context) ([]store.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at"

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []store.User
	for rows.Next() {
		var user store.User
		if err := scanUser(rows, &user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// CreateUser inserts a new identity row.
func (s *Store) CreateUser(ctx context.Context, user *store.User) error {
	query := `
		INSERT INTO users (id, user_name, password, role, name, email, phone_number, bio, location, profile_image, cover_image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Password,
		user.Role,
		user.Name,
		user.Email,
		user.PhoneNumber,
		user.Bio,
		user.Location,
		user.ProfileImage,
		user.CoverImage,
		user.CreatedAt,
	)
	return err
}

// GetUserByID returns an identity row by its id.
func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*store.User, error) {
	query := "SELECT " + userColumns + " FROM users WHERE id = $1"

	var user store.User
	if err := scanUser(s.db.QueryRowContext(ctx, query, id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser overwrites an existing identity row.
func (s *Store) UpdateUser(ctx context.Context, user *store.User) error {
	query := `
		UPDATE users
		SET user_name = $2, password = $3, role = $4, name = $5, email = $6,
		    phone_number = $7, bio = $8, location = $9, profile_image = $10, cover_image = $11
		WHERE id = $1
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Username,
		user.Password,
		user.Role,
		user.Name,
		user.Email,
		user.PhoneNumber,
		user.Bio,
		user.Location,
		user.ProfileImage,
		user.CoverImage,
	)
	return err
}

func scanUser(row scanner, user *store.User) error {
	return row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.Role,
		&user.Name,
		&user.Email,
		&user.PhoneNumber,
		&user.Bio,
		&user.Location,
		&user.ProfileImage,
		&user.CoverImage,
		&user.CreatedAt,
	)
}
