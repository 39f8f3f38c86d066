package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"jobtrack/internal/session"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the job tracker",
	Long: `Authenticate against the identity collection and persist the session.

Example:
  jobtrack login --username alice --password secret`,
	Run: func(cmd *cobra.Command, args []string) {
		flags := cmd.Flags()
		username, _ := flags.GetString("username")
		password, _ := flags.GetString("password")

		if username == "" || password == "" {
			cmd.Println("Error: --username and --password are required")
			return
		}

		identity, err := session.Login(cmd.Context(), newClient(), session.Credentials{
			Username: username,
			Password: password,
		})
		if err != nil {
			var authErr *session.AuthError
			if errors.As(err, &authErr) {
				cmd.Println("Invalid username or password.")
			} else {
				cmd.Printf("Error: %v\n", err)
			}
			return
		}

		state, store, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		state.Identity = identity
		if err := store.Save(state); err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("✓ Logged in as %s (%s)\n", identity.Username, identity.Role)
	},
}

func init() {
	flags := loginCmd.Flags()
	flags.StringP("username", "u", "", "Username (required)")
	flags.StringP("password", "p", "", "Password (required)")

	rootCmd.AddCommand(loginCmd)
}
