package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moodlog/internal/adapters/httpapi"
	"moodlog/internal/adapters/tui"
	"moodlog/internal/application"
	"moodlog/internal/config"
	"moodlog/internal/logging"
)

func main() {
	cfg := config.Load()
	apiFlag := flag.String("api", cfg.APIURL, "journal backend base URL")
	timeoutFlag := flag.Duration("timeout", cfg.Timeout, "per-request timeout")
	exportFlag := flag.String("export-dir", ".", "directory for exported files")
	verboseFlag := flag.Bool("verbose", false, "debug logging (needs MOODLOG_LOG_FILE)")
	flag.Parse()

	// The TUI owns the terminal; logs only go to MOODLOG_LOG_FILE
	logger, err := logging.NewFile(cfg.LogFile, *verboseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	client, err := httpapi.NewClient(*apiFlag,
		httpapi.WithTimeout(*timeoutFlag),
		httpapi.WithLogger(logger),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app := tui.NewApp(application.NewEntryStore(client), logger, *exportFlag)
	p := tea.NewProgram(app, tea.WithAltScreen())

	logger.Info("starting", zap.String("api", *apiFlag))
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
