// Package tracker orchestrates the job record lifecycle against the
// remote collection. The Manager owns the in-memory collection for the
// lifetime of the authenticated session; everything else reads
// snapshots and never mutates them directly.
package tracker

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"jobtrack/internal/confirm"
	"jobtrack/internal/permission"
	"jobtrack/pkg/api"
)

// RecordStore is the remote CRUD facade the manager mutates through.
type RecordStore interface {
	ListJobs(ctx context.Context) ([]api.JobRecord, error)
	CreateJob(ctx context.Context, record api.JobRecord) (*api.JobRecord, error)
	UpdateJob(ctx context.Context, id string, record api.JobRecord) (*api.JobRecord, error)
	DeleteJob(ctx context.Context, id string) error
}

// Confirmer interposes a yes/no gate before destructive operations.
type Confirmer interface {
	Request(ctx context.Context, title, message string, kind confirm.Kind) (bool, error)
}

// Manager is the job record lifecycle manager. A nil confirmer skips
// all confirmation gates (create never needs one anyway).
type Manager struct {
	store    RecordStore
	confirms Confirmer
	logger   *slog.Logger
	now      func() time.Time

	mu   sync.Mutex
	jobs []api.JobRecord
}

// New creates a manager. The logger must not be nil.
func New(store RecordStore, confirms Confirmer, logger *slog.Logger) *Manager {
	return &Manager{
		store:    store,
		confirms: confirms,
		logger:   logger,
		now:      time.Now,
	}
}

// LoadAll fetches the full remote collection and replaces the local one
// entirely. There is no incremental merge and no retry; on failure the
// local collection is left untouched.
func (m *Manager) LoadAll(ctx context.Context) error {
	records, err := m.store.ListJobs(ctx)
	if err != nil {
		m.logger.Error("failed to load job records", "error", err)
		return err
	}

	m.mu.Lock()
	m.jobs = records
	m.mu.Unlock()

	m.logger.Info("job records loaded", "count", len(records))
	return nil
}

// Jobs returns a snapshot copy of the local collection.
func (m *Manager) Jobs() []api.JobRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]api.JobRecord, len(m.jobs))
	copy(out, m.jobs)
	return out
}

// Get returns the record with the given id from the local collection.
func (m *Manager) Get(id string) (api.JobRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, rec := range m.jobs {
		if rec.ID == id {
			return rec, true
		}
	}
	return api.JobRecord{}, false
}

// Filter derives a view of the local collection: a case-insensitive
// free-text match on company and position, and an exact status match.
// Empty predicates match everything.
func (m *Manager) Filter(query string, status api.Status) []api.JobRecord {
	query = strings.ToLower(strings.TrimSpace(query))

	out := []api.JobRecord{}
	for _, rec := range m.Jobs() {
		if query != "" &&
			!strings.Contains(strings.ToLower(rec.Company), query) &&
			!strings.Contains(strings.ToLower(rec.Position), query) {
			continue
		}
		if status != "" && !strings.EqualFold(string(rec.Status), string(status)) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// Create validates the draft and submits it to the store. The manager
// stamps owner, applied date and a provisional id; the record appended
// to the local collection is the store's returned representation, whose
// id is authoritative. Nothing is inserted locally before the store
// confirms.
func (m *Manager) Create(ctx context.Context, draft api.JobRecord, identity *api.Identity) (*api.JobRecord, error) {
	if identity == nil {
		return nil, &PermissionError{Action: "create"}
	}

	draft = normalizeDraft(draft)
	if verr := ValidateRecord(draft); verr != nil {
		return nil, verr
	}

	record := draft
	record.ID = strconv.FormatInt(m.now().UnixNano(), 10)
	record.AppliedDate = m.now().Format(api.DateLayout)
	record.Owner = identity.Username
	if identity.Role == api.RoleUser {
		record.Status = api.StatusPending
	} else if record.Status == "" {
		record.Status = api.StatusApproved
	}

	created, err := m.store.CreateJob(ctx, record)
	if err != nil {
		m.logger.Error("failed to create job record", "error", err)
		return nil, err
	}

	m.mu.Lock()
	m.jobs = append(m.jobs, *created)
	m.mu.Unlock()

	m.logger.Info("job record created", "id", created.ID, "owner", created.Owner)
	return created, nil
}

// Update mutates an existing record. The permission rules are
// re-checked here regardless of what the caller already verified, and
// a warning confirmation gates the write. A declined confirmation
// returns (nil, nil): no I/O, no state change, not an error.
//
// Owner and applied date are always forced back to their stored values;
// an admin editing someone else's record may only change the status.
func (m *Manager) Update(ctx context.Context, id string, draft api.JobRecord, identity *api.Identity) (*api.JobRecord, error) {
	original, ok := m.Get(id)
	if !ok {
		return nil, ErrNotFound
	}

	if !permission.CanEditRecord(original, identity) {
		return nil, &PermissionError{Action: "edit"}
	}

	merged := mergeDraft(original, draft, identity)
	if verr := ValidateRecord(merged); verr != nil {
		return nil, verr
	}

	if m.confirms != nil {
		ok, err := m.confirms.Request(ctx, "Update Job",
			"Are you sure you want to update this job application?", confirm.KindWarning)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
	}

	updated, err := m.store.UpdateJob(ctx, id, merged)
	if err != nil {
		m.logger.Error("failed to update job record", "id", id, "error", err)
		return nil, err
	}

	m.mu.Lock()
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs[i] = *updated
			break
		}
	}
	m.mu.Unlock()

	m.logger.Info("job record updated", "id", id)
	return updated, nil
}

// Remove deletes a record after a danger confirmation. It reports
// whether the record was actually deleted; a declined confirmation
// returns (false, nil) with zero store calls and zero local change.
// The record leaves the local collection only after the store confirms.
func (m *Manager) Remove(ctx context.Context, id string) (bool, error) {
	if _, ok := m.Get(id); !ok {
		return false, ErrNotFound
	}

	if m.confirms != nil {
		ok, err := m.confirms.Request(ctx, "Delete Job",
			"Are you sure you want to delete this job? This action cannot be undone.", confirm.KindDanger)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	if err := m.store.DeleteJob(ctx, id); err != nil {
		m.logger.Error("failed to delete job record", "id", id, "error", err)
		return false, err
	}

	m.mu.Lock()
	for i := range m.jobs {
		if m.jobs[i].ID == id {
			m.jobs = append(m.jobs[:i], m.jobs[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.logger.Info("job record deleted", "id", id)
	return true, nil
}

// Reset discards the local collection. Called on logout.
func (m *Manager) Reset() {
	m.mu.Lock()
	m.jobs = nil
	m.mu.Unlock()
}

// ConfirmDiscard gates leaving an edit with unsaved changes. When the
// draft matches the original (or the blank defaults for a new record),
// it is discarded silently.
func (m *Manager) ConfirmDiscard(ctx context.Context, draft, original api.JobRecord) (bool, error) {
	if !HasChanges(draft, original) {
		return true, nil
	}
	if m.confirms == nil {
		return true, nil
	}
	return m.confirms.Request(ctx, "Discard Changes",
		"Are you sure you want to discard your changes?", confirm.KindWarning)
}

// HasChanges reports whether any caller-editable field differs between
// the draft and the original.
func HasChanges(draft, original api.JobRecord) bool {
	return draft.Company != original.Company ||
		draft.Position != original.Position ||
		draft.ContactName != original.ContactName ||
		draft.PhoneNumber != original.PhoneNumber ||
		draft.Email != original.Email ||
		draft.Status != original.Status ||
		draft.Notes != original.Notes
}

// mergeDraft builds the record to persist, enumerating exactly which
// fields the caller may write. Id, owner and applied date are always
// system-owned; the rest depends on the field-level permission rules.
func mergeDraft(original, draft api.JobRecord, identity *api.Identity) api.JobRecord {
	draft = normalizeDraft(draft)

	merged := original
	if permission.CanEditField("company", original, identity, false) {
		merged.Company = draft.Company
	}
	if permission.CanEditField("position", original, identity, false) {
		merged.Position = draft.Position
	}
	if permission.CanEditField("name", original, identity, false) {
		merged.ContactName = draft.ContactName
	}
	if permission.CanEditField("phone_number", original, identity, false) {
		merged.PhoneNumber = draft.PhoneNumber
	}
	if permission.CanEditField("email", original, identity, false) {
		merged.Email = draft.Email
	}
	if permission.CanEditField("notes", original, identity, false) {
		merged.Notes = draft.Notes
	}
	if permission.CanEditField("status", original, identity, false) && draft.Status != "" {
		merged.Status = draft.Status
	}

	merged.ID = original.ID
	merged.Owner = original.Owner
	merged.AppliedDate = original.AppliedDate
	return merged
}

func normalizeDraft(draft api.JobRecord) api.JobRecord {
	draft.Company = strings.TrimSpace(draft.Company)
	draft.Position = strings.TrimSpace(draft.Position)
	draft.ContactName = strings.TrimSpace(draft.ContactName)
	draft.PhoneNumber = strings.TrimSpace(draft.PhoneNumber)
	draft.Email = strings.TrimSpace(draft.Email)
	draft.Notes = strings.TrimSpace(draft.Notes)
	return draft
}
