package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jobtrack/internal/session"
	"jobtrack/pkg/api"
)

// resetViper clears viper config between tests for isolation
func resetViper() {
	viper.Reset()
	viper.SetEnvPrefix("JOBTRACK")
	viper.AutomaticEnv()
}

// resetFlags restores a command's flags to their defaults. Cobra keeps
// flag values and the Changed marker across Execute calls, which leaks
// state between tests.
func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// sessionFixture persists a logged-in session in a temp dir and points
// the CLI at it.
func sessionFixture(t *testing.T, identity *api.Identity) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	store := session.NewStore(path)
	if err := store.Save(&session.State{Identity: identity}); err != nil {
		t.Fatalf("failed to write session fixture: %v", err)
	}
	viper.Set("session_file", path)
	return path
}

func TestRootCommand_DefaultURL(t *testing.T) {
	resetViper()

	cmd := &cobra.Command{}
	cmd.PersistentFlags().String("url", "http://localhost:4000", "Collection service URL")
	viper.BindPFlag("url", cmd.PersistentFlags().Lookup("url"))

	url := viper.GetString("url")
	if url != "http://localhost:4000" {
		t.Errorf("expected default url http://localhost:4000, got: %s", url)
	}
}

func TestRootCommand_EnvVarBinding(t *testing.T) {
	resetViper()

	t.Setenv("JOBTRACK_URL", "http://custom-url:8080")

	url := viper.GetString("url")
	if url != "http://custom-url:8080" {
		t.Errorf("expected url from env var, got: %s", url)
	}
}

func TestRootCommand_HasExpectedSubcommands(t *testing.T) {
	want := map[string]bool{
		"login":              false,
		"logout":             false,
		"whoami":             false,
		"list":               false,
		"add":                false,
		"edit [job_id]":      false,
		"delete [job_id]":    false,
		"export":             false,
		"profile":            false,
		"theme [light|dark]": false,
	}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Use]; ok {
			want[cmd.Use] = true
		}
	}
	for use, found := range want {
		if !found {
			t.Errorf("expected %q subcommand to be registered", use)
		}
	}
}

func TestExecute_ReturnsErrorForUnknownCommand(t *testing.T) {
	resetViper()

	rootCmd.SetArgs([]string{"unknown-command-xyz"})

	err := Execute()
	if err == nil {
		t.Error("expected error for unknown command")
	}
}
