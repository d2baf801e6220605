package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"moodlog/internal/adapters/tui/views"
	"moodlog/internal/application/commands"
)

var (
	chartWidth  int
	chartHeight int
	analyzeRaw  bool
	exportPath  string
	exportURL   bool
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Draw mood and sentiment over time",
	Long: `Draw a chart with one column per entry: mood on the left axis (0-10)
and sentiment on the right axis (-1 to 1).

Examples:
  moodlog-cli chart
  moodlog-cli chart --width 120 --height 16`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := commands.NewLoadEntriesCommand(store).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), views.NewChart(entries).Render(chartWidth, chartHeight))
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Ask for advice on the past week",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		advice, err := commands.NewAnalyzeWeekCommand(api).Execute(context.Background())
		if err != nil {
			return err
		}
		if analyzeRaw {
			fmt.Fprintln(cmd.OutOrStdout(), advice)
			return nil
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return err
		}
		out, err := r.Render(advice)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(out, "\n"))
		return nil
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Download the journal export",
	Long: `Download the backend's export file.

-o takes a file path or an existing directory; by default the file is
written to the current directory under the name the backend suggests.
--url prints the download link instead, for opening in a browser.

Examples:
  moodlog-cli export
  moodlog-cli export -o ~/backups/
  moodlog-cli export --url`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if exportURL {
			fmt.Fprintln(cmd.OutOrStdout(), client.ExportURL())
			return nil
		}

		result, err := commands.NewExportCommand(api, exportPath).Execute(context.Background())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return nil
	},
}

func init() {
	chartCmd.Flags().IntVar(&chartWidth, "width", 80, "chart width in columns")
	chartCmd.Flags().IntVar(&chartHeight, "height", 12, "chart height in rows")
	analyzeCmd.Flags().BoolVar(&analyzeRaw, "raw", false, "print the advice without markdown rendering")
	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "", "output file or directory")
	exportCmd.Flags().BoolVar(&exportURL, "url", false, "print the export URL without downloading")

	rootCmd.AddCommand(chartCmd)
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(exportCmd)
}
