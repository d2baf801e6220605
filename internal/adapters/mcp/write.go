package mcp

import (
	"context"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"moodlog/internal/application"
	"moodlog/internal/application/commands"
	"moodlog/internal/ports"
)

// RegisterWriteTools adds all journal mutation tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, api ports.JournalAPI) {
	s.AddTool(createTool(), createHandler(api))
	s.AddTool(updateTool(), updateHandler(api))
	s.AddTool(deleteTool(), deleteHandler(api))
}

// --- create_entry ---

func createTool() mcp.Tool {
	return mcp.NewTool("create_entry",
		mcp.WithDescription("Write a new journal entry. The backend scores its sentiment."),
		mcp.WithString("content",
			mcp.Description("Entry text"),
			mcp.Required(),
		),
		mcp.WithNumber("mood",
			mcp.Description("Self-reported mood, an integer from 1 to 10"),
			mcp.Required(),
		),
	)
}

func createHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		content := req.GetString("content", "")
		mood := numberText(req, "mood")

		result, err := commands.NewCreateEntryCommand(api, content, mood).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update_entry ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update_entry",
		mcp.WithDescription("Replace the text and mood of an existing entry. Sentiment is recomputed by the backend."),
		mcp.WithNumber("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New entry text"),
			mcp.Required(),
		),
		mcp.WithNumber("mood",
			mcp.Description("New mood, an integer from 1 to 10"),
			mcp.Required(),
		),
	)
}

func updateHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := application.ParseID(numberText(req, "id"))
		if err != nil {
			return toolError(err)
		}
		content := req.GetString("content", "")
		mood := numberText(req, "mood")

		result, err := commands.NewUpdateEntryCommand(api, id, content, mood).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_entry ---

func deleteTool() mcp.Tool {
	return mcp.NewTool("delete_entry",
		mcp.WithDescription("Permanently delete a journal entry. Requires confirm=true."),
		mcp.WithNumber("id",
			mcp.Description("Entry ID"),
			mcp.Required(),
		),
		mcp.WithBoolean("confirm",
			mcp.Description("Must be true; deletion cannot be undone"),
			mcp.Required(),
		),
	)
}

func deleteHandler(api ports.JournalAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id, err := application.ParseID(numberText(req, "id"))
		if err != nil {
			return toolError(err)
		}
		if !req.GetBool("confirm", false) {
			return mcp.NewToolResultError("delete not confirmed: pass confirm=true"), nil
		}

		result, err := commands.NewDeleteEntryCommand(api, id).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// numberText returns a numeric argument as the text the commands parse.
// Fractions survive so that 7.5 or an id of 3.9 is rejected rather than truncated.
func numberText(req mcp.CallToolRequest, name string) string {
	args := req.GetArguments()
	switch v := args[name].(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case string:
		return v
	default:
		return ""
	}
}
