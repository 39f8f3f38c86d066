package cmd

import (
	"github.com/spf13/cobra"

	"jobtrack/internal/permission"
)

var deleteCmd = &cobra.Command{
	Use:   "delete [job_id]",
	Short: "Delete a job application",
	Long: `Delete a job application after confirmation.

Users may delete their own applications regardless of status; admins may
delete any application.

Example:
  jobtrack delete 42
  jobtrack delete 42 --yes`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]

		state, _, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if state.Identity == nil {
			cmd.Println("Not logged in. Run 'jobtrack login' first.")
			return
		}

		mgr := newManager()
		if err := mgr.LoadAll(cmd.Context()); err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		record, ok := mgr.Get(id)
		if !ok {
			cmd.Printf("Job %s not found.\n", id)
			return
		}
		if !permission.CanDeleteRecord(record, state.Identity) {
			cmd.Println("Permission denied: you may only delete your own applications.")
			return
		}

		deleted, err := mgr.Remove(cmd.Context(), id)
		if err != nil {
			printTrackerError(cmd, err)
			return
		}
		if !deleted {
			cmd.Println("Delete cancelled.")
			return
		}

		cmd.Printf("✓ Job %s deleted.\n", id)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
