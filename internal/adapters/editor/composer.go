package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"moodlog/internal/ports"
)

// Composer implements ports.TextComposer by opening a temp file in the
// user's editor
type Composer struct {
	lookup func(string) string
}

// Ensure Composer implements TextComposer
var _ ports.TextComposer = (*Composer)(nil)

// NewComposer creates a composer reading $EDITOR and $VISUAL from the environment
func NewComposer() *Composer {
	return &Composer{lookup: os.Getenv}
}

// Compose writes initial to a temp file, runs the editor on it and returns
// the saved contents
func (c *Composer) Compose(initial string) (string, error) {
	f, err := os.CreateTemp("", "moodlog-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(initial); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}

	cmd, err := c.Command(path)
	if err != nil {
		return "", err
	}
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}
	return string(data), nil
}

// Command returns an exec.Cmd for editing path.
// This is useful for integrating with bubbletea's ExecProcess
func (c *Composer) Command(path string) (*exec.Cmd, error) {
	editor := c.findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	// $EDITOR may carry arguments, e.g. "code --wait"
	fields := strings.Fields(editor)
	args := append(fields[1:], path)

	cmd := exec.Command(fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd, nil
}

// findEditor returns the editor to use
func (c *Composer) findEditor() string {
	if editor := c.lookup("EDITOR"); strings.TrimSpace(editor) != "" {
		return editor
	}

	if visual := c.lookup("VISUAL"); strings.TrimSpace(visual) != "" {
		return visual
	}

	// Try common editors
	editors := []string{"nvim", "vim", "vi", "nano"}
	for _, editor := range editors {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}

	return ""
}
