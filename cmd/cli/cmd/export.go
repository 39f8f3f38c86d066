package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"jobtrack/pkg/api"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export job applications to an xlsx spreadsheet",
	Long: `Export the visible job applications to an Excel file.

The file defaults to jobs_<username>.xlsx in the current directory. The
--search and --status filters work the same as in 'jobtrack list'.

Example:
  jobtrack export
  jobtrack export --status Approved --output approved.xlsx`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		search, _ := flags.GetString("search")
		status, _ := flags.GetString("status")
		output, _ := flags.GetString("output")

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

		if output == "" {
			output = fmt.Sprintf("jobs_%s.xlsx", state.Identity.Username)
		}

		if err := writeWorkbook(output, records); err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("✓ Exported %d job(s) to %s\n", len(records), output)
	},
}

var exportColumns = []string{"ID", "Company", "Position", "Contact Name", "Phone", "Email", "Status", "Notes", "Applied Date", "Owner"}

func writeWorkbook(path string, records []api.JobRecord) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Jobs"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, title := range exportColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return err
		}
	}

	for row, rec := range records {
		values := []string{
			rec.ID, rec.Company, rec.Position, rec.ContactName, rec.PhoneNumber,
			rec.Email, string(rec.Status), rec.Notes, rec.AppliedDate, rec.Owner,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

func init() {
	flags := exportCmd.Flags()
	flags.StringP("search", "s", "", "Filter by company or position substring")
	flags.String("status", "", "Filter by status (Pending, Approved, Rejected)")
	flags.StringP("output", "o", "", "Output file (default jobs_<username>.xlsx)")

	rootCmd.AddCommand(exportCmd)
}
