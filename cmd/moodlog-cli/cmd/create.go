package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"moodlog/internal/adapters/editor"
	"moodlog/internal/application"
	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// composer is replaced in tests
var composer ports.TextComposer = editor.NewComposer()

var createCmd = &cobra.Command{
	Use:   "create <mood> [content...]",
	Short: "Write a new entry",
	Long: `Write a new journal entry with a mood from 1 to 10.

Without content, $EDITOR is opened to write the entry.

Examples:
  moodlog-cli create 7 "Good run this morning"
  moodlog-cli create 4`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		mood := args[0]

		// Fail on a bad mood before opening the editor
		if _, err := application.ParseMood(mood); err != nil {
			return err
		}

		content := strings.Join(args[1:], " ")
		if content == "" {
			text, err := composer.Compose("")
			if err != nil {
				return err
			}
			// editors append a trailing newline
			content = strings.TrimRight(text, "\n")
		}

		result, err := commands.NewCreateEntryCommand(api, content, mood).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return printRefreshedStats(ctx, cmd)
	},
}

var editCmd = &cobra.Command{
	Use:   "edit <id> [mood] [content...]",
	Short: "Edit an entry",
	Long: `Replace the mood and content of an entry. The backend recomputes
its sentiment.

A missing mood keeps the current one. Missing content opens $EDITOR
with the current text.

Examples:
  moodlog-cli edit 12 6 "Better than I wrote"
  moodlog-cli edit 12 6
  moodlog-cli edit 12`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		id, err := application.ParseID(args[0])
		if err != nil {
			return err
		}

		var mood, content string
		if len(args) > 1 {
			mood = args[1]
		}
		if len(args) > 2 {
			content = strings.Join(args[2:], " ")
		}

		if mood == "" || content == "" {
			if err := store.Load(ctx); err != nil {
				return err
			}
			current, ok := store.Find(id)
			if !ok {
				return fmt.Errorf("entry %d: %w", id, application.ErrNotFound)
			}
			if mood == "" {
				mood = strconv.Itoa(current.Mood)
			}
			if content == "" {
				text, err := composer.Compose(current.Content)
				if err != nil {
					return err
				}
				content = text
			}
		}

		result, err := commands.NewUpdateEntryCommand(api, id, content, mood).Execute(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Message)
		return printRefreshedStats(ctx, cmd)
	},
}

// printRefreshedStats reloads once after a mutation and prints the new
// aggregates. The mutation already succeeded, so a failed reload is only
// a warning.
func printRefreshedStats(ctx context.Context, cmd *cobra.Command) error {
	entries, err := commands.NewLoadEntriesCommand(store).Execute(ctx)
	if err != nil {
		logger.Warn("reload after mutation failed", zap.Error(err))
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning:", err)
		return nil
	}
	logger.Debug("reloaded after mutation", zap.Int("entries", len(entries)))
	fmt.Fprintln(cmd.OutOrStdout())
	printStats(cmd.OutOrStdout(), domain.ComputeStats(entries))
	return nil
}

func init() {
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(editCmd)
}
