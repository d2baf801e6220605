package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"moodlog/internal/adapters/httpapi"
	mcpadapter "moodlog/internal/adapters/mcp"
	"moodlog/internal/config"
	"moodlog/internal/logging"
)

func main() {
	cfg := config.Load()
	apiFlag := flag.String("api", cfg.APIURL, "journal backend base URL")
	timeoutFlag := flag.Duration("timeout", cfg.Timeout, "per-request timeout")
	verboseFlag := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	// stdout carries the MCP protocol, so logs go to a file or nowhere
	logger, err := logging.NewFile(cfg.LogFile, *verboseFlag)
	if err != nil {
		log.Fatalf("moodlog-mcp: %v", err)
	}
	defer logger.Sync()

	client, err := httpapi.NewClient(*apiFlag,
		httpapi.WithTimeout(*timeoutFlag),
		httpapi.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("moodlog-mcp: %v", err)
	}

	mcpServer := server.NewMCPServer(
		"moodlog-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, client)
	mcpadapter.RegisterWriteTools(mcpServer, client)

	logger.Info("serving MCP over stdio", zap.String("api", *apiFlag))
	if err := server.ServeStdio(mcpServer); err != nil {
		logger.Error("server stopped", zap.Error(err))
		log.Fatalf("moodlog-mcp: %v", err)
	}
}
