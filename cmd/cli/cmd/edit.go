package cmd

import (
	"github.com/spf13/cobra"

	"jobtrack/pkg/api"
)

var editCmd = &cobra.Command{
	Use:   "edit [job_id]",
	Short: "Edit an existing job application",
	Long: `Edit a job application. Only the provided flags change; everything
else keeps its current value.

Regular users may edit their own Pending applications. Admins may edit
anything, but on someone else's record only the status takes effect.

Example:
  jobtrack edit 42 --notes "phone screen done"
  jobtrack edit 42 --status Approved`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id := args[0]
		flags := cmd.Flags()

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

		original, ok := mgr.Get(id)
		if !ok {
			cmd.Printf("Job %s not found.\n", id)
			return
		}

		// Start from the stored record and overlay only the flags the
		// caller actually set.
		draft := original
		if flags.Changed("company") {
			draft.Company, _ = flags.GetString("company")
		}
		if flags.Changed("position") {
			draft.Position, _ = flags.GetString("position")
		}
		if flags.Changed("name") {
			draft.ContactName, _ = flags.GetString("name")
		}
		if flags.Changed("phone") {
			draft.PhoneNumber, _ = flags.GetString("phone")
		}
		if flags.Changed("email") {
			draft.Email, _ = flags.GetString("email")
		}
		if flags.Changed("status") {
			status, _ := flags.GetString("status")
			draft.Status = api.Status(status)
		}
		if flags.Changed("notes") {
			draft.Notes, _ = flags.GetString("notes")
		}

		updated, err := mgr.Update(cmd.Context(), id, draft, state.Identity)
		if err != nil {
			printTrackerError(cmd, err)
			return
		}
		if updated == nil {
			cmd.Println("Update cancelled.")
			return
		}

		cmd.Printf("✓ Job updated!\nID: %s\nCompany: %s\nStatus: %s\n",
			updated.ID, updated.Company, updated.Status)
	},
}

func init() {
	flags := editCmd.Flags()
	flags.StringP("company", "c", "", "Company name")
	flags.StringP("position", "p", "", "Position title")
	flags.String("name", "", "Contact name")
	flags.String("phone", "", "Contact phone")
	flags.String("email", "", "Contact email")
	flags.String("status", "", "Status (Pending, Approved, Rejected)")
	flags.String("notes", "", "Free-form notes")

	rootCmd.AddCommand(editCmd)
}
