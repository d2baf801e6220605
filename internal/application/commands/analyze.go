package commands

import (
	"context"
	"fmt"
	"strings"

	"moodlog/internal/ports"
)

// AnalyzeWeekCommand asks the backend for advice on the recent week
type AnalyzeWeekCommand struct {
	api ports.JournalAPI
}

// NewAnalyzeWeekCommand creates a new AnalyzeWeekCommand
func NewAnalyzeWeekCommand(api ports.JournalAPI) *AnalyzeWeekCommand {
	return &AnalyzeWeekCommand{api: api}
}

// Execute runs the analysis and returns the advice text
func (c *AnalyzeWeekCommand) Execute(ctx context.Context) (string, error) {
	advice, err := c.api.AnalyzeWeek(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to analyze week: %w", err)
	}
	return strings.TrimSpace(advice), nil
}
