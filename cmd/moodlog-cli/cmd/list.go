package cmd

import (
	"context"
	"encoding/json"

	"github.com/spf13/cobra"

	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all entries",
	Long: `List every journal entry in backend order, with mood, sentiment
and anomaly flags.

Examples:
  moodlog-cli list
  moodlog-cli list --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewLoadEntriesCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}
		return writeEntries(cmd, entries)
	},
}

func writeEntries(cmd *cobra.Command, entries []domain.Entry) error {
	if listJSON {
		if entries == nil {
			entries = []domain.Entry{}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	printEntries(cmd.OutOrStdout(), entries)
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by text",
	Long: `Search entries whose content contains the query, ignoring case.

Examples:
  moodlog-cli search beach
  moodlog-cli search "long day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewSearchCommand(store, args[0]).Execute(context.Background())
		if err != nil {
			return err
		}
		return writeEntries(cmd, entries)
	},
}

var statsQuery string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry count and averages",
	Long: `Show the number of entries, the average mood and the average
sentiment, each with its tier.

Examples:
  moodlog-cli stats
  moodlog-cli stats --query work`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		stats, err := commands.NewStatsCommand(store, statsQuery).Execute(context.Background())
		if err != nil {
			return err
		}
		printStats(cmd.OutOrStdout(), stats)
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print entries as JSON")
	searchCmd.Flags().BoolVar(&listJSON, "json", false, "print entries as JSON")
	statsCmd.Flags().StringVarP(&statsQuery, "query", "q", "", "only count entries matching this text")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
}
