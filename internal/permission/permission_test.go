package permission

import (
	"testing"

	"jobtrack/pkg/api"
)

var (
	alice = &api.Identity{Username: "alice", Role: api.RoleUser}
	bob   = &api.Identity{Username: "bob", Role: api.RoleUser}
	admin = &api.Identity{Username: "root", Role: api.RoleAdmin}
)

func pendingRecord(owner string) api.JobRecord {
	return api.JobRecord{
		ID:       "1",
		Company:  "Acme",
		Position: "Engineer",
		Status:   api.StatusPending,
		Owner:    owner,
	}
}

func TestCanEditRecord_UserOwnPending(t *testing.T) {
	if !CanEditRecord(pendingRecord("alice"), alice) {
		t.Error("user should edit their own pending record")
	}
}

func TestCanEditRecord_UserForeignRecord(t *testing.T) {
	if CanEditRecord(pendingRecord("alice"), bob) {
		t.Error("user must not edit someone else's record")
	}
}

func TestCanEditRecord_UserOwnButArbitrated(t *testing.T) {
	for _, status := range []api.Status{api.StatusApproved, api.StatusRejected} {
		rec := pendingRecord("alice")
		rec.Status = status
		if CanEditRecord(rec, alice) {
			t.Errorf("user must not edit own record once %s", status)
		}
	}
}

func TestCanEditRecord_AdminAlways(t *testing.T) {
	for _, status := range api.Statuses {
		rec := pendingRecord("alice")
		rec.Status = status
		if !CanEditRecord(rec, admin) {
			t.Errorf("admin should edit any record, status=%s", status)
		}
	}
}

func TestCanEditRecord_Unauthenticated(t *testing.T) {
	if CanEditRecord(pendingRecord("alice"), nil) {
		t.Error("unauthenticated must not edit anything")
	}
}

func TestCanEditField_NewRecord(t *testing.T) {
	for _, field := range []string{"company", "position", "status", "notes"} {
		if !CanEditField(field, api.JobRecord{}, alice, true) {
			t.Errorf("all fields writable on a new record, got false for %s", field)
		}
	}
}

func TestCanEditField_AdminForeignRecord_StatusOnly(t *testing.T) {
	rec := pendingRecord("alice")
	if !CanEditField("status", rec, admin, false) {
		t.Error("admin should be able to change status of a foreign record")
	}
	for _, field := range []string{"company", "position", "notes", "email", "phone_number"} {
		if CanEditField(field, rec, admin, false) {
			t.Errorf("admin must not change %s of a foreign record", field)
		}
	}
}

func TestCanEditField_AdminOwnRecord(t *testing.T) {
	rec := pendingRecord("root")
	for _, field := range []string{"company", "position", "status", "notes"} {
		if !CanEditField(field, rec, admin, false) {
			t.Errorf("admin should edit %s of their own record", field)
		}
	}
}

func TestCanEditField_UserAllOrNothing(t *testing.T) {
	own := pendingRecord("alice")
	foreign := pendingRecord("bob")
	for _, field := range []string{"company", "status"} {
		if got := CanEditField(field, own, alice, false); got != CanEditRecord(own, alice) {
			t.Errorf("user field access must match record access, field=%s", field)
		}
		if CanEditField(field, foreign, alice, false) {
			t.Errorf("user must not edit %s of a foreign record", field)
		}
	}
}

func TestCanDeleteRecord_UserOwnAnyStatus(t *testing.T) {
	for _, status := range api.Statuses {
		rec := pendingRecord("alice")
		rec.Status = status
		if !CanDeleteRecord(rec, alice) {
			t.Errorf("user should delete their own record regardless of status, status=%s", status)
		}
	}
}

func TestCanDeleteRecord_UserForeignRecord(t *testing.T) {
	if CanDeleteRecord(pendingRecord("alice"), bob) {
		t.Error("user must not delete someone else's record")
	}
}

func TestCanDeleteRecord_AdminAlways(t *testing.T) {
	if !CanDeleteRecord(pendingRecord("alice"), admin) {
		t.Error("admin should delete any record")
	}
}

func TestCanDeleteRecord_Unauthenticated(t *testing.T) {
	if CanDeleteRecord(pendingRecord("alice"), nil) {
		t.Error("unauthenticated must not delete anything")
	}
}
