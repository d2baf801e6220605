package cmd

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"moodlog/internal/application"
	"moodlog/internal/application/commands"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an entry",
	Long: `Delete a journal entry.

Warning: This operation cannot be undone. Without --yes you are asked
to confirm.

Examples:
  moodlog-cli delete 12
  moodlog-cli delete 12 --yes`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := application.ParseID(args[0])
		if err != nil {
			return err
		}

		if !deleteYes && !confirm(cmd, fmt.Sprintf("Delete entry #%d? This cannot be undone. [y/N]: ", id)) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}

		result, err := commands.NewDeleteEntryCommand(api, id).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return printRefreshedStats(ctx, cmd)
	},
}

// confirm asks a yes/no question on the command's input
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprint(cmd.OutOrStdout(), question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
