package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moodlog/internal/adapters/httpapi"
	"moodlog/internal/application"
	"moodlog/internal/config"
	"moodlog/internal/logging"
	"moodlog/internal/ports"
)

var (
	cfg     = config.Load()
	apiURL  string
	timeout time.Duration
	verbose bool

	logger *zap.Logger
	client *httpapi.Client
	api    ports.JournalAPI
	store  *application.EntryStore
)

var rootCmd = &cobra.Command{
	Use:   "moodlog-cli",
	Short: "CLI for a mood journal backend",
	Long: `moodlog-cli talks to a mood journal backend.

It provides commands to list, write, edit, delete, and search entries,
print statistics and a mood chart, ask for a weekly analysis, export
the journal, and keep an offline SQLite mirror.

Settings are read from MOODLOG_* environment variables or a .env file;
flags override them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		l, err := logging.New(verbose)
		if err != nil {
			return err
		}
		logger = l

		c, err := httpapi.NewClient(apiURL,
			httpapi.WithTimeout(timeout),
			httpapi.WithLogger(logger),
		)
		if err != nil {
			return err
		}
		client = c
		api = c
		store = application.NewEntryStore(c)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", cfg.APIURL, "journal backend base URL")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", cfg.Timeout, "per-request timeout")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "log requests to stderr")
}
