package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"jobtrack/internal/store"
)

func userRows(users ...*store.User) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "user_name", "password", "role", "name", "email", "phone_number",
		"bio", "location", "profile_image", "cover_image", "created_at",
	})
	for _, u := range users {
		rows.AddRow(u.ID, u.Username, u.Password, u.Role, u.Name, u.Email, u.PhoneNumber,
			u.Bio, u.Location, u.ProfileImage, u.CoverImage, u.CreatedAt)
	}
	return rows
}

func sampleUser() *store.User {
	return &store.User{
		ID:        uuid.New(),
		Username:  "alice",
		Password:  "secret",
		Role:      "USER",
		CreatedAt: time.Now().Truncate(time.Second),
	}
}

func TestListUsers_Success(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.db.Close()

	user := sampleUser()
	mock.ExpectQuery(`SELECT .+ FROM users ORDER BY created_at`).
		WillReturnRows(userRows(user))

	users, err := s.ListUsers(context.Background())
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0].Username != "alice" {
		t.Errorf("unexpected users: %+v", users)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestCreateUser_Success(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.db.Close()

	user := sampleUser()
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(user.ID, user.Username, user.Password, user.Role, user.Name, user.Email,
			user.PhoneNumber, user.Bio, user.Location, user.ProfileImage, user.CoverImage, user.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetUserByID_NotFound(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.db.Close()

	id := uuid.New()
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	user, err := s.GetUserByID(context.Background(), id)
	if err != sql.ErrNoRows {
		t.Errorf("expected sql.ErrNoRows, got %v", err)
	}
	if user != nil {
		t.Error("expected nil user")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestUpdateUser_Success(t *testing.T) {
	s, mock := newMockStore(t)
	defer s.db.Close()

	user := sampleUser()
	user.Bio = "updated"
	mock.ExpectExec(`UPDATE users`).
		WithArgs(user.ID, user.Username, user.Password, user.Role, user.Name, user.Email,
			user.PhoneNumber, user.Bio, user.Location, user.ProfileImage, user.CoverImage).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := s.UpdateUser(context.Background(), user); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}
