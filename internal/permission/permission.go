// Package permission centralizes the role/status rules for job records.
// Every mutation site asks these functions instead of re-deriving the
// rules; they are pure and never touch I/O.
package permission

import "jobtrack/pkg/api"

// CanEditRecord reports whether identity may modify the record at all.
// Admins always can. Users can only edit their own records while the
// record is still pending; once an admin has arbitrated it, the
// submitter may no longer change its content.
func CanEditRecord(record api.JobRecord, identity *api.Identity) bool {
	if identity == nil {
		return false
	}
	switch identity.Role {
	case api.RoleAdmin:
		return true
	case api.RoleUser:
		return record.Owner == identity.Username && record.Status == api.StatusPending
	}
	return false
}

// CanEditField reports whether identity may change a single field of the
// record. Field names are the JSON names ("company", "status", ...).
// For a record being created there is no existing state to protect, so
// every field is writable. An admin editing someone else's submission
// may only change its disposition, never the submitted facts.
func CanEditField(field string, record api.JobRecord, identity *api.Identity, isNewRecord bool) bool {
	if isNewRecord {
		return true
	}
	if identity == nil {
		return false
	}
	if identity.Role == api.RoleAdmin {
		if record.Owner == identity.Username {
			return true
		}
		return field == "status"
	}
	return CanEditRecord(record, identity)
}

// CanDeleteRecord reports whether identity may delete the record.
// Status is deliberately not considered: a user may withdraw their own
// application even after it has been approved or rejected.
func CanDeleteRecord(record api.JobRecord, identity *api.Identity) bool {
	if identity == nil {
		return false
	}
	if identity.Role == api.RoleAdmin {
		return true
	}
	return record.Owner == identity.Username
}
