package cmd

import (
	"github.com/spf13/cobra"

	"jobtrack/internal/session"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the session",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := sessionStore()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		state, err := store.Load()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		// The theme is a device preference, not part of the login,
		// so it survives the logout.
		if state.Theme == "" {
			err = store.Clear()
		} else {
			err = store.Save(&session.State{Theme: state.Theme})
		}
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		cmd.Println("Logged out.")
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active session identity",
	Run: func(cmd *cobra.Command, args []string) {
		state, _, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if state.Identity == nil {
			cmd.Println("Not logged in.")
			return
		}
		cmd.Printf("%s (%s)\n", state.Identity.Username, state.Identity.Role)
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
