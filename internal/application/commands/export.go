package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"moodlog/internal/ports"
)

// DefaultExportName is used when the backend does not name the download
const DefaultExportName = "journal_export.csv"

// ExportResult contains the result of an export
type ExportResult struct {
	Path    string
	Bytes   int64
	Message string
}

// ExportCommand downloads the backend export into a local file
type ExportCommand struct {
	api ports.JournalAPI
	// Output is a file path, or a directory to place the backend-named file in.
	// Empty means the current directory.
	Output string
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(api ports.JournalAPI, output string) *ExportCommand {
	return &ExportCommand{
		api:    api,
		Output: output,
	}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	body, name, err := c.api.Export(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to export: %w", err)
	}
	defer body.Close()

	path := c.targetPath(name)
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}

	n, copyErr := io.Copy(f, body)
	closeErr := f.Close()
	if copyErr != nil {
		os.Remove(path)
		return nil, fmt.Errorf("failed to write %s: %w", path, copyErr)
	}
	if closeErr != nil {
		return nil, fmt.Errorf("failed to write %s: %w", path, closeErr)
	}

	return &ExportResult{
		Path:    path,
		Bytes:   n,
		Message: fmt.Sprintf("Exported %d bytes to %s", n, path),
	}, nil
}

func (c *ExportCommand) targetPath(name string) string {
	if name == "" {
		name = DefaultExportName
	}
	name = filepath.Base(name)

	if c.Output == "" {
		return name
	}
	if info, err := os.Stat(c.Output); err == nil && info.IsDir() {
		return filepath.Join(c.Output, name)
	}
	return c.Output
}
