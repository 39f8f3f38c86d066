package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"jobtrack/internal/client"
	"jobtrack/internal/confirm"
	"jobtrack/internal/logger"
	"jobtrack/internal/session"
	"jobtrack/internal/tracker"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "jobtrack",
	Short: "Jobtrack is a command line tool for tracking job applications",
	Long: `jobtrack is the command-line interface for a shared job application tracker.

Applications live in a remote collection. Regular users submit and manage
their own applications; admins review everyone's and arbitrate their status
(Pending, Approved, Rejected).

Common workflows:

  Log in:
    jobtrack login --username alice --password secret

  Add an application:
    jobtrack add --company "Acme" --position "Engineer"

  List applications:
    jobtrack list --search acme --status Pending

  Update or delete one:
    jobtrack edit <id> --notes "phone screen done"
    jobtrack delete <id>

  Export to a spreadsheet:
    jobtrack export

Configuration:
  Set the collection endpoint via a flag, environment variable or config file:
    JOBTRACK_URL    Collection service URL (default: http://localhost:4000)`,
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".jobtrack"
		viper.AddConfigPath(home)
		viper.SetConfigName(".jobtrack")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "JOBTRACK_VARNAME"
	viper.SetEnvPrefix("JOBTRACK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.jobtrack.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:4000", "Collection service URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Answer yes to all confirmation prompts")
	viper.BindPFlag("yes", rootCmd.PersistentFlags().Lookup("yes"))
}

// newClient builds the collection client from the configured URL.
func newClient() *client.Client {
	return client.New(viper.GetString("url"))
}

// newConfirmer wires the confirmation controller. With --yes every
// prompt is approved without asking.
func newConfirmer() *confirm.Controller {
	c := confirm.New()
	if viper.GetBool("yes") {
		c.SetPresenter(confirm.AutoApprove(c))
	} else {
		c.SetPresenter(confirm.TerminalPresenter(c))
	}
	return c
}

// newManager builds a lifecycle manager over the collection client.
func newManager() *tracker.Manager {
	return tracker.New(newClient(), newConfirmer(), logger.Discard())
}

// sessionStore resolves the session file. Tests point "session_file" at
// a temp location; everything else uses the home directory default.
func sessionStore() (*session.Store, error) {
	if path := viper.GetString("session_file"); path != "" {
		return session.NewStore(path), nil
	}
	path, err := session.DefaultPath()
	if err != nil {
		return nil, err
	}
	return session.NewStore(path), nil
}

// loadSession reads the persisted session state.
func loadSession() (*session.State, *session.Store, error) {
	store, err := sessionStore()
	if err != nil {
		return nil, nil, err
	}
	state, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return state, store, nil
}
