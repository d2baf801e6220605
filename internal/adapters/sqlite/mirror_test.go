package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlog/internal/domain"
)

func openTestMirror(t *testing.T) *Mirror {
	t.Helper()
	m, err := OpenMirror(filepath.Join(t.TempDir(), "nested", "mirror.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, m.Close()) })
	return m
}

func TestMirror_ReplaceAndRead(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	entries := []domain.Entry{
		{ID: 9, Content: "latest", Mood: 7, Sentiment: 0.25, CreatedAt: "2024-03-09T08:00:00"},
		{ID: 2, Content: "older", Mood: 3, Sentiment: -0.5, CreatedAt: "2024-03-02T08:00:00"},
		{ID: 5, Content: "middle id, last row", Mood: 5, Sentiment: 0},
	}
	require.NoError(t, m.Replace(ctx, entries))

	got, err := m.Entries(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(entries, got); diff != "" {
		t.Errorf("mirror mismatch (-want +got):\n%s", diff)
	}

	n, err := m.LastCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestMirror_ReplaceDropsPrevious(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.Replace(ctx, []domain.Entry{{ID: 1, Content: "a", Mood: 5}}))
	require.NoError(t, m.Replace(ctx, []domain.Entry{{ID: 2, Content: "b", Mood: 6}}))

	got, err := m.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].ID)
}

func TestMirror_DuplicateIDRollsBack(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	require.NoError(t, m.Replace(ctx, []domain.Entry{{ID: 1, Content: "kept", Mood: 5}}))

	err := m.Replace(ctx, []domain.Entry{
		{ID: 3, Content: "x", Mood: 5},
		{ID: 3, Content: "y", Mood: 5},
	})
	require.Error(t, err)

	got, err := m.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "kept", got[0].Content)
}

func TestMirror_EmptySnapshot(t *testing.T) {
	m := openTestMirror(t)
	ctx := context.Background()

	n, err := m.LastCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	require.NoError(t, m.Replace(ctx, nil))
	got, err := m.Entries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestMirror_UsesWAL(t *testing.T) {
	m := openTestMirror(t)

	var mode string
	require.NoError(t, m.db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}
