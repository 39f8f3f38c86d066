package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"jobtrack/internal/logger"
	"jobtrack/internal/store"
	"jobtrack/pkg/api"
)

// ListUsers handles GET /users.
// Records come back with their password field populated; the directory
// this service models served credentials in the clear and login works
// by matching against this listing.
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.ListUsers(r.Context())
	if err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to list users", "error", err)
		h.httpError(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	records := make([]api.UserRecord, 0, len(users))
	for i := range users {
		records = append(records, toAPIUser(&users[i]))
	}
	h.respondJson(w, http.StatusOK, records)
}

// CreateUser handles POST /users.
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var record api.UserRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if record.Username == "" || record.Password == "" {
		h.httpError(w, "Username and password are required", http.StatusBadRequest)
		return
	}
	if record.Role == "" {
		record.Role = api.RoleUser
	}

	user := toStoreUser(&record)
	user.ID = uuid.New()
	user.CreatedAt = time.Now().UTC()

	if err := h.store.CreateUser(r.Context(), user); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to create user", "error", err)
		h.httpError(w, "Failed to create user", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusCreated, toAPIUser(user))
}

// GetUser handles GET /users/{id}.
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	user, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.httpError(w, "User not found", http.StatusNotFound)
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to load user", "id", id, "error", err)
		h.httpError(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusOK, toAPIUser(user))
}

// UpdateUser handles PUT /users/{id}.
// Profile edits replace the stored record wholesale, except that an
// empty password in the body keeps the current one.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var record api.UserRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if record.Username == "" {
		h.httpError(w, "Username is required", http.StatusBadRequest)
		return
	}

	existing, err := h.store.GetUserByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.httpError(w, "User not found", http.StatusNotFound)
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to load user", "id", id, "error", err)
		h.httpError(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	user := toStoreUser(&record)
	user.ID = existing.ID
	user.CreatedAt = existing.CreatedAt
	if user.Password == "" {
		user.Password = existing.Password
	}
	if user.Role == "" {
		user.Role = existing.Role
	}

	if err := h.store.UpdateUser(r.Context(), user); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to update user", "id", id, "error", err)
		h.httpError(w, "Failed to update user", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusOK, toAPIUser(user))
}

func toAPIUser(user *store.User) api.UserRecord {
	return api.UserRecord{
		ID:           user.ID.String(),
		Username:     user.Username,
		Password:     user.Password,
		Role:         api.Role(user.Role),
		Name:         user.Name,
		Email:        user.Email,
		PhoneNumber:  user.PhoneNumber,
		Bio:          user.Bio,
		Location:     user.Location,
		ProfileImage: user.ProfileImage,
		CoverImage:   user.CoverImage,
	}
}

func toStoreUser(record *api.UserRecord) *store.User {
	return &store.User{
		Username:     record.Username,
		Password:     record.Password,
		Role:         string(record.Role),
		Name:         record.Name,
		Email:        record.Email,
		PhoneNumber:  record.PhoneNumber,
		Bio:          record.Bio,
		Location:     record.Location,
		ProfileImage: record.ProfileImage,
		CoverImage:   record.CoverImage,
	}
}
