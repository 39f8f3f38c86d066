package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jobtrack/pkg/api"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job applications",
	Long: `List the job applications in the collection, optionally filtered.

Example:
  jobtrack list
  jobtrack list --search acme
  jobtrack list --status Pending`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		status, _ := flags.GetString("status")

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

		records := mgr.Filter(search, api.Status(status))
		if len(records) == 0 {
			cmd.Println("No job applications found.")
			return
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCOMPANY\tPOSITION\tSTATUS\tAPPLIED\tOWNER")
		for _, rec := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				rec.ID, rec.Company, rec.Position, string(rec.Status), rec.AppliedDate, rec.Owner)
		}
		w.Flush()
	},
}

func init() {
	flags := listCmd.Flags()
	flags.StringP("search", "s", "", "Filter by company or position substring")
	flags.String("status", "", "Filter by status (Pending, Approved, Rejected)")

	rootCmd.AddCommand(listCmd)
}
