// Package handlers contains the HTTP handlers for the collection
// service. The service is a deliberately plain CRUD collection: it
// stores and serves records, while the workflow rules live in the
// client-side lifecycle manager.
package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"jobtrack/internal/store"
	"jobtrack/pkg/api"
)

// StoreFactory combines the interfaces the handlers need.
type StoreFactory interface {
	Ping(ctx context.Context) error
	store.JobStore
	store.UserStore
}

// Handlers holds all HTTP handlers and their dependencies.
type Handlers struct {
	store  StoreFactory
	logger *slog.Logger
}

// New creates a new Handlers instance with the given dependencies.
func New(s StoreFactory, logger *slog.Logger) *Handlers {
	return &Handlers{store: s, logger: logger}
}

// A helper function to write standard JSON responses.
func (h *Handlers) respondJson(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		json.NewEncoder(w).Encode(payload)
	}
}

// A helper function to return consistent error messages.
func (h *Handlers) httpError(w http.ResponseWriter, message string, code int) {
	h.respondJson(w, code, api.ErrorResponse{
		Error: message,
		Code:  strconv.Itoa(code),
	})
}
