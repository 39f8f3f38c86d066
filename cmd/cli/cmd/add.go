package cmd

import (
	"errors"
	"sort"

	"github.com/spf13/cobra"

	"jobtrack/internal/tracker"
	"jobtrack/pkg/api"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new job application",
	Long: `Add a job application to the collection.

Submissions by regular users always start as Pending; an admin decides
whether they are Approved or Rejected. Admins may set a status directly.

Example:
  jobtrack add --company "Acme" --position "Engineer"
  jobtrack add --company "Globex" --position "SRE" --name "Jane Doe" --phone 0555123456`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		company, _ := flags.GetString("company")
		position, _ := flags.GetString("position")
		contactName, _ := flags.GetString("name")
		phone, _ := flags.GetString("phone")
		email, _ := flags.GetString("email")
		status, _ := flags.GetString("status")
		notes, _ := flags.GetString("notes")

		state, _, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if state.Identity == nil {
			cmd.Println("Not logged in. Run 'jobtrack login' first.")
			return
		}

		draft := api.JobRecord{
			Company:     company,
			Position:    position,
			ContactName: contactName,
			PhoneNumber: phone,
			Email:       email,
			Status:      api.Status(status),
			Notes:       notes,
		}

		mgr := newManager()
		created, err := mgr.Create(cmd.Context(), draft, state.Identity)
		if err != nil {
			printTrackerError(cmd, err)
			return
		}

		cmd.Printf("✓ Job added!\nID: %s\nCompany: %s\nStatus: %s\n",
			created.ID, created.Company, created.Status)
	},
}

// printTrackerError renders lifecycle errors for the terminal, with
// field-level messages for validation failures.
func printTrackerError(cmd *cobra.Command, err error) {
	var verr tracker.ValidationError
	if errors.As(err, &verr) {
		cmd.Println("Invalid job application:")
		fields := make([]string, 0, len(verr))
		for f := range verr {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		for _, f := range fields {
			cmd.Printf("  %s: %s\n", f, verr[f])
		}
		return
	}

	var perr *tracker.PermissionError
	if errors.As(err, &perr) {
		cmd.Printf("Permission denied: %v\n", perr)
		return
	}

	cmd.Printf("Error: %v\n", err)
}

func init() {
	flags := addCmd.Flags()
	flags.StringP("company", "c", "", "Company name (required)")
	flags.StringP("position", "p", "", "Position title (required)")
	flags.String("name", "", "Contact name (optional)")
	flags.String("phone", "", "Contact phone, 10 digits starting with 0 (optional)")
	flags.String("email", "", "Contact email (optional)")
	flags.String("status", "", "Initial status, admins only (optional)")
	flags.String("notes", "", "Free-form notes (optional)")

	rootCmd.AddCommand(addCmd)
}
