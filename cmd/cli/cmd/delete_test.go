package cmd

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"jobtrack/pkg/api"
)

func TestDeleteCommand_Success(t *testing.T) {
	resetViper()
	resetFlags(deleteCmd)

	stored := api.JobRecord{
		ID: "1", Company: "Acme", Position: "Engineer",
		Status: api.StatusApproved, AppliedDate: "2024-05-10", Owner: "alice",
	}

	deleteCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/jobs":
			json.NewEncoder(w).Encode([]api.JobRecord{stored})
		case r.Method == http.MethodDelete && r.URL.Path == "/jobs/1":
			deleteCalled = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("yes", true)
	sessionFixture(t, &api.Identity{Username: "alice", Role: api.RoleUser, UserID: "u-1"})

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"delete", "1"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Owners may delete regardless of status.
	if !deleteCalled {
		t.Error("expected DELETE /jobs/1 to be called")
	}
	if !strings.Contains(stdout.String(), "Job 1 deleted.") {
		t.Errorf("expected success message, got: %s", stdout.String())
	}
}

func TestDeleteCommand_ForeignRecordDenied(t *testing.T) {
	resetViper()
	resetFlags(deleteCmd)

	stored := api.JobRecord{
		ID: "1", Company: "Acme", Position: "Engineer",
		Status: api.StatusPending, AppliedDate: "2024-05-10", Owner: "alice",
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && r.URL.Path == "/jobs" {
			json.NewEncoder(w).Encode([]api.JobRecord{stored})
			return
		}
		t.Errorf("no write should happen on a permission failure: %s %s", r.Method, r.URL.Path)
	}))
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("yes", true)
	sessionFixture(t, &api.Identity{Username: "bob", Role: api.RoleUser, UserID: "u-3"})

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"delete", "1"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Permission denied") {
		t.Errorf("expected permission error, got: %s", stdout.String())
	}
}

func TestDeleteCommand_AdminDeletesForeignRecord(t *testing.T) {
	resetViper()
	resetFlags(deleteCmd)

	stored := api.JobRecord{
		ID: "1", Company: "Acme", Position: "Engineer",
		Status: api.StatusPending, AppliedDate: "2024-05-10", Owner: "alice",
	}

	deleteCalled := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/jobs":
			json.NewEncoder(w).Encode([]api.JobRecord{stored})
		case r.Method == http.MethodDelete && r.URL.Path == "/jobs/1":
			deleteCalled = true
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("yes", true)
	sessionFixture(t, &api.Identity{Username: "root", Role: api.RoleAdmin, UserID: "u-2"})

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"delete", "1"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !deleteCalled {
		t.Error("expected DELETE /jobs/1 to be called")
	}
}

func TestDeleteCommand_UnknownID(t *testing.T) {
	resetViper()
	resetFlags(deleteCmd)

	server := jobsServer(t, []api.JobRecord{})
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("yes", true)
	sessionFixture(t, &api.Identity{Username: "alice", Role: api.RoleUser, UserID: "u-1"})

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"delete", "404"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(stdout.String(), "Job 404 not found.") {
		t.Errorf("expected not-found message, got: %s", stdout.String())
	}
}
