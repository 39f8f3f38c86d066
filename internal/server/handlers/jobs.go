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

// ListJobs handles GET /jobs.
// It returns the full record collection as a JSON array.
func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.store.ListJobs(r.Context())
	if err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to list jobs", "error", err)
		h.httpError(w, "Failed to list jobs", http.StatusInternalServerError)
		return
	}

	records := make([]api.JobRecord, 0, len(jobs))
	for i := range jobs {
		records = append(records, toAPIJob(&jobs[i]))
	}
	h.respondJson(w, http.StatusOK, records)
}

// CreateJob handles POST /jobs.
// The store assigns the authoritative id; any id sent by the client is
// a provisional placeholder and is discarded here.
func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var record api.JobRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if record.Company == "" || record.Position == "" {
		h.httpError(w, "Company and Position are required", http.StatusBadRequest)
		return
	}
	if record.Status == "" {
		record.Status = api.StatusPending
	}
	if !record.Status.Valid() {
		h.httpError(w, "Status must be Pending, Approved or Rejected", http.StatusBadRequest)
		return
	}
	if record.AppliedDate == "" {
		record.AppliedDate = time.Now().UTC().Format(api.DateLayout)
	}

	job := toStoreJob(&record)
	job.ID = uuid.New()
	job.CreatedAt = time.Now().UTC()

	if err := h.store.CreateJob(r.Context(), job); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to create job", "error", err)
		h.httpError(w, "Failed to create job", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusCreated, toAPIJob(job))
}

// UpdateJob handles PUT /jobs/{id}.
// The body replaces the stored record wholesale, as in any plain
// collection endpoint; last write wins.
func (h *Handlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	var record api.JobRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		h.httpError(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if record.Company == "" || record.Position == "" {
		h.httpError(w, "Company and Position are required", http.StatusBadRequest)
		return
	}
	if record.Status == "" {
		record.Status = api.StatusPending
	}
	if !record.Status.Valid() {
		h.httpError(w, "Status must be Pending, Approved or Rejected", http.StatusBadRequest)
		return
	}

	existing, err := h.store.GetJobByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			h.httpError(w, "Job not found", http.StatusNotFound)
			return
		}
		logger.FromContext(r.Context(), h.logger).Error("failed to load job", "id", id, "error", err)
		h.httpError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	job := toStoreJob(&record)
	job.ID = existing.ID
	job.CreatedAt = existing.CreatedAt

	if err := h.store.UpdateJob(r.Context(), job); err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to update job", "id", id, "error", err)
		h.httpError(w, "Failed to update job", http.StatusInternalServerError)
		return
	}

	h.respondJson(w, http.StatusOK, toAPIJob(job))
}

// DeleteJob handles DELETE /jobs/{id}.
func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.httpError(w, "Invalid job id", http.StatusBadRequest)
		return
	}

	deleted, err := h.store.DeleteJob(r.Context(), id)
	if err != nil {
		logger.FromContext(r.Context(), h.logger).Error("failed to delete job", "id", id, "error", err)
		h.httpError(w, "Failed to delete job", http.StatusInternalServerError)
		return
	}
	if !deleted {
		h.httpError(w, "Job not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toAPIJob(job *store.Job) api.JobRecord {
	return api.JobRecord{
		ID:          job.ID.String(),
		Company:     job.Company,
		Position:    job.Position,
		ContactName: job.ContactName,
		PhoneNumber: job.PhoneNumber,
		Email:       job.Email,
		Status:      api.Status(job.Status),
		Notes:       job.Notes,
		AppliedDate: job.AppliedDate,
		Owner:       job.Owner,
	}
}

func toStoreJob(record *api.JobRecord) *store.Job {
	return &store.Job{
		Company:     record.Company,
		Position:    record.Position,
		ContactName: record.ContactName,
		PhoneNumber: record.PhoneNumber,
		Email:       record.Email,
		Status:      string(record.Status),
		Notes:       record.Notes,
		AppliedDate: record.AppliedDate,
		Owner:       record.Owner,
	}
}
