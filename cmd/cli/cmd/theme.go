package cmd

import (
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [light|dark]",
	Short: "Show or set the display theme preference",
	Long: `Show the current theme, or set it by passing "light" or "dark".
The preference is stored with the session.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		state, store, err := loadSession()
		if err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}

		if len(args) == 0 {
			theme := state.Theme
			if theme == "" {
				theme = "light"
			}
			cmd.Println(theme)
			return
		}

		theme := args[0]
		if theme != "light" && theme != "dark" {
			cmd.Println("Error: theme must be \"light\" or \"dark\"")
			return
		}

		state.Theme = theme
		if err := store.Save(state); err != nil {
			cmd.Printf("Error: %v\n", err)
			return
		}
		cmd.Printf("Theme set to %s.\n", theme)
	},
}

func init() {
	rootCmd.AddCommand(themeCmd)
}
