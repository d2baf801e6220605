package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFile_EmptyPathIsNop(t *testing.T) {
	logger, err := NewFile("", true)
	require.NoError(t, err)
	require.NotNil(t, logger)
	logger.Info("dropped")
}

func TestNewFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "moodlog.log")

	logger, err := NewFile(path, false)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("loaded entries")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	out := string(data)
	assert.Contains(t, out, `"msg":"loaded entries"`)
	assert.False(t, strings.Contains(out, "hidden"), "debug must be filtered when not verbose")
}

func TestNew(t *testing.T) {
	logger, err := New(true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1), "verbose logger must enable debug")

	logger, err = New(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(0), "default logger must drop info")
}
