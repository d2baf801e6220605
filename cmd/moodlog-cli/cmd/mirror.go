package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"moodlog/internal/adapters/sqlite"
	"moodlog/internal/application/commands"
)

var (
	mirrorDB   string
	mirrorShow bool
)

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Copy the journal into a local SQLite file",
	Long: `Fetch every entry and replace the contents of a local SQLite
mirror. The mirror uses the backend's entries table layout.

With --show, the mirrored entries are printed without contacting the
backend.

Examples:
  moodlog-cli mirror
  moodlog-cli mirror --db ./journal-mirror.db
  moodlog-cli mirror --show`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		m, err := sqlite.OpenMirror(mirrorDB)
		if err != nil {
			return err
		}
		defer m.Close()

		if mirrorShow {
			entries, err := m.Entries(ctx)
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), entries)
			return nil
		}

		result, err := commands.NewMirrorCommand(store, m).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s to %s\n", result.Message, m.Path())
		return nil
	},
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorDB, "db", cfg.MirrorDB, "mirror database path")
	mirrorCmd.Flags().BoolVar(&mirrorShow, "show", false, "print the mirrored entries")
	rootCmd.AddCommand(mirrorCmd)
}
