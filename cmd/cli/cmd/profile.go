package cmd

import (
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the logged-in user's profile",
	Run: func(cmd *cobra.Command, args []string) {
		state, _, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		if state.Identity == nil {
			cmd.Println("Not logged in. Run 'jobtrack login' first.")
			return
		}

		user, err := newClient().GetUser(cmd.Context(), state.Identity.UserID)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("Username:  %s\n", user.Username)
		cmd.Printf("Role:      %s\n", user.Role)
		if user.Name != "" {
			cmd.Printf("Name:      %s\n", user.Name)
		}
		if user.Email != "" {
			cmd.Printf("Email:     %s\n", user.Email)
		}
		if user.PhoneNumber != "" {
			cmd.Printf("Phone:     %s\n", user.PhoneNumber)
		}
		if user.Location != "" {
			cmd.Printf("Location:  %s\n", user.Location)
		}
		if user.Bio != "" {
			cmd.Printf("Bio:       %s\n", user.Bio)
		}
	},
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the logged-in user's profile",
	Long: `Update profile fields. Only the provided flags change.

Example:
  jobtrack profile update --bio "Backend developer" --location "Istanbul"`,
	Run: func(cmd *cobra.Command, args []string) {
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

		c := newClient()
		user, err := c.GetUser(cmd.Context(), state.Identity.UserID)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		draft := *user
		if flags.Changed("name") {
			draft.Name, _ = flags.GetString("name")
		}
		if flags.Changed("email") {
			draft.Email, _ = flags.GetString("email")
		}
		if flags.Changed("phone") {
			draft.PhoneNumber, _ = flags.GetString("phone")
		}
		if flags.Changed("bio") {
			draft.Bio, _ = flags.GetString("bio")
		}
		if flags.Changed("location") {
			draft.Location, _ = flags.GetString("location")
		}
		if flags.Changed("password") {
			draft.Password, _ = flags.GetString("password")
		}

		updated, err := c.UpdateUser(cmd.Context(), state.Identity.UserID, draft)
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		cmd.Printf("✓ Profile updated for %s\n", updated.Username)
	},
}

func init() {
	flags := profileUpdateCmd.Flags()
	flags.String("name", "", "Display name")
	flags.String("email", "", "Email address")
	flags.String("phone", "", "Phone number")
	flags.String("bio", "", "Short bio")
	flags.String("location", "", "Location")
	flags.String("password", "", "New password")

	profileCmd.AddCommand(profileUpdateCmd)
	rootCmd.AddCommand(profileCmd)
}
