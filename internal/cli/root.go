package cli

import (
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	dbPathFlag     string
	configPathFlag string
	logLevelFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "studyfocus",
	Short: "Focus interval timer for study sessions",
	Long: `studyfocus runs a focus/break interval timer in the terminal.
Completed focus periods are logged per subject, and the subjects come
from your open homework list.

Run without a subcommand to open the timer.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTimer,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("studyfocus version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbPathFlag, "db", "",
		"Path to the SQLite database (default $STUDYFOCUS_DB or the data dir)")
	rootCmd.PersistentFlags().StringVar(&configPathFlag, "config", "",
		"Path to settings.yaml (default in the user config dir)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "info",
		"Log level: debug, info, warn, error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
