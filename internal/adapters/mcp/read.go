package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"moodlog/internal/application"
	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// RegisterReadTools adds all read-only journal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, api ports.JournalAPI) {
	s.AddTool(listTool(), listHandler(api))
	s.AddTool(searchTool(), searchHandler(api))
	s.AddTool(statsTool(), statsHandler(api))
	s.AddTool(analyzeTool(), analyzeHandler(api))
}

// --- list_entries ---

func listTool() mcp.Tool {
	return mcp.NewTool("list_entries",
		mcp.WithDescription("List journal entries in backend order with mood, sentiment and anomaly flags."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries to return. Omit or 0 for all."),
		),
	)
}

func listHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 0)

		entries, err := commands.NewLoadEntriesCommand(application.NewEntryStore(api)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}
		return formatEntries(entries)
	}
}

// --- search_entries ---

func searchTool() mcp.Tool {
	return mcp.NewTool("search_entries",
		mcp.WithDescription("Search journal entries by text. Matching is a case-insensitive substring match on the content."),
		mcp.WithString("query",
			mcp.Description("Text to search for"),
			mcp.Required(),
		),
	)
}

func searchHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		entries, err := commands.NewSearchCommand(application.NewEntryStore(api), query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return formatEntries(entries)
	}
}

// --- stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("stats",
		mcp.WithDescription("Summarize the journal: entry count, average mood and average sentiment with their tiers."),
		mcp.WithString("query",
			mcp.Description("Optional search text; stats cover only matching entries."),
		),
	)
}

func statsHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")

		stats, err := commands.NewStatsCommand(application.NewEntryStore(api), query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(formatStats(stats)), nil
	}
}

// --- analyze_week ---

func analyzeTool() mcp.Tool {
	return mcp.NewTool("analyze_week",
		mcp.WithDescription("Ask the journal backend for advice based on the past week of entries."),
	)
}

func analyzeHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		advice, err := commands.NewAnalyzeWeekCommand(api).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if advice == "" {
			return mcp.NewToolResultText("No advice returned."), nil
		}
		return mcp.NewToolResultText(advice), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatEntries(entries []domain.Entry) (*mcp.CallToolResult, error) {
	if len(entries) == 0 {
		return mcp.NewToolResultText("No entries found."), nil
	}
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(formatEntry(e))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatEntry(e domain.Entry) string {
	line := fmt.Sprintf("#%d  %s  mood=%d  sentiment=%s", e.ID, e.DisplayTime(), e.Mood, e.SentimentString())
	if a := e.Anomaly(); a.IsAnomaly() {
		line += "  [" + a.String() + "]"
	}
	return line + "\n    " + strings.ReplaceAll(e.Content, "\n", "\n    ")
}

func formatStats(s domain.Stats) string {
	return fmt.Sprintf("Entries: %d\nAverage mood: %.1f (%s)\nAverage sentiment: %.2f (%s)",
		s.Total, s.AvgMood, s.MoodTier, s.AvgSentiment, s.SentimentTier)
}
