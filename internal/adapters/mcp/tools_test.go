package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodlog/internal/application"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

type stubAPI struct {
	entries []domain.Entry
	err     error
	advice  string
	created []ports.EntryInput
	updated map[int]ports.EntryInput
	deleted []int
}

func (s *stubAPI) ListEntries(context.Context) ([]domain.Entry, error) { return s.entries, s.err }

func (s *stubAPI) CreateEntry(_ context.Context, in ports.EntryInput) error {
	s.created = append(s.created, in)
	return s.err
}

func (s *stubAPI) UpdateEntry(_ context.Context, id int, in ports.EntryInput) error {
	if s.updated == nil {
		s.updated = map[int]ports.EntryInput{}
	}
	s.updated[id] = in
	return s.err
}

func (s *stubAPI) DeleteEntry(_ context.Context, id int) error {
	s.deleted = append(s.deleted, id)
	return s.err
}

func (s *stubAPI) AnalyzeWeek(context.Context) (string, error) { return s.advice, s.err }

func (s *stubAPI) Export(context.Context) (io.ReadCloser, string, error) {
	return io.NopCloser(strings.NewReader("")), "", s.err
}

func call(t *testing.T, h server.ToolHandlerFunc, args map[string]any) (string, bool) {
	t.Helper()
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args

	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotEmpty(t, res.Content)
	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", res.Content[0])
	return text.Text, res.IsError
}

func journal() []domain.Entry {
	return []domain.Entry{
		{ID: 2, Content: "Smiling through it", Mood: 8, Sentiment: -0.6, CreatedAt: "2024-03-02T10:00:00"},
		{ID: 1, Content: "Quiet evening", Mood: 5, Sentiment: 0.1, CreatedAt: "2024-03-01T20:00:00"},
	}
}

func TestListEntries(t *testing.T) {
	api := &stubAPI{entries: journal()}

	text, isErr := call(t, listHandler(api), map[string]any{})
	assert.False(t, isErr)
	assert.Contains(t, text, "#2")
	assert.Contains(t, text, "sentiment=-0.60")
	assert.Contains(t, text, "[Masking?]")
	assert.Contains(t, text, "#1")

	text, _ = call(t, listHandler(api), map[string]any{"limit": float64(1)})
	assert.Contains(t, text, "#2")
	assert.NotContains(t, text, "#1 ")
}

func TestListEntries_Empty(t *testing.T) {
	text, isErr := call(t, listHandler(&stubAPI{}), map[string]any{})
	assert.False(t, isErr)
	assert.Equal(t, "No entries found.", text)
}

func TestListEntries_BackendError(t *testing.T) {
	api := &stubAPI{err: &application.StatusError{Op: "list entries", Status: 500}}
	text, isErr := call(t, listHandler(api), map[string]any{})
	assert.True(t, isErr)
	assert.Contains(t, text, "500")
}

func TestSearchEntries(t *testing.T) {
	text, isErr := call(t, searchHandler(&stubAPI{entries: journal()}), map[string]any{"query": "QUIET"})
	assert.False(t, isErr)
	assert.Contains(t, text, "Quiet evening")
	assert.NotContains(t, text, "Smiling")
}

func TestStats(t *testing.T) {
	text, isErr := call(t, statsHandler(&stubAPI{entries: journal()}), map[string]any{})
	assert.False(t, isErr)
	assert.Contains(t, text, "Entries: 2")
	assert.Contains(t, text, "Average mood: 6.5 (neutral)")
	assert.Contains(t, text, "Average sentiment: -0.25 (negative)")
}

func TestAnalyzeWeek(t *testing.T) {
	text, isErr := call(t, analyzeHandler(&stubAPI{advice: "  Sleep more.\n"}), map[string]any{})
	assert.False(t, isErr)
	assert.Equal(t, "Sleep more.", text)

	_, isErr = call(t, analyzeHandler(&stubAPI{err: errors.New("offline")}), map[string]any{})
	assert.True(t, isErr)
}

func TestCreateEntry(t *testing.T) {
	api := &stubAPI{}

	text, isErr := call(t, createHandler(api), map[string]any{"content": " hello ", "mood": float64(7)})
	assert.False(t, isErr)
	assert.Equal(t, "Saved successfully!", text)
	require.Len(t, api.created, 1)
	assert.Equal(t, ports.EntryInput{Content: " hello ", Mood: 7}, api.created[0])
}

func TestCreateEntry_RejectsFractionalMood(t *testing.T) {
	api := &stubAPI{}

	_, isErr := call(t, createHandler(api), map[string]any{"content": "hello", "mood": 7.5})
	assert.True(t, isErr)
	assert.Empty(t, api.created)
}

func TestUpdateEntry(t *testing.T) {
	api := &stubAPI{}

	text, isErr := call(t, updateHandler(api), map[string]any{"id": float64(4), "content": "edited", "mood": float64(3)})
	assert.False(t, isErr)
	assert.Equal(t, "Updated entry #4", text)
	assert.Equal(t, ports.EntryInput{Content: "edited", Mood: 3}, api.updated[4])

	_, isErr = call(t, updateHandler(api), map[string]any{"id": float64(4), "content": "  ", "mood": float64(3)})
	assert.True(t, isErr)
	assert.Len(t, api.updated, 1)
}

func TestDeleteEntry_RequiresConfirm(t *testing.T) {
	api := &stubAPI{}

	_, isErr := call(t, deleteHandler(api), map[string]any{"id": float64(3)})
	assert.True(t, isErr)
	assert.Empty(t, api.deleted)

	text, isErr := call(t, deleteHandler(api), map[string]any{"id": float64(3), "confirm": true})
	assert.False(t, isErr)
	assert.Equal(t, "Deleted entry #3", text)
	assert.Equal(t, []int{3}, api.deleted)
}

func TestRegisterTools(t *testing.T) {
	s := server.NewMCPServer("moodlog-test", "0.0.0", server.WithToolCapabilities(true))
	api := &stubAPI{}

	RegisterReadTools(s, api)
	RegisterWriteTools(s, api)

	resp := s.HandleMessage(context.Background(), json.RawMessage(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	for _, name := range []string{"list_entries", "search_entries", "stats", "analyze_week", "create_entry", "update_entry", "delete_entry"} {
		assert.Contains(t, string(raw), `"name":"`+name+`"`)
	}
}

func TestDeleteEntry_RejectsFractionalID(t *testing.T) {
	api := &stubAPI{}

	text, isErr := call(t, deleteHandler(api), map[string]any{"id": 3.9, "confirm": true})
	assert.True(t, isErr)
	assert.Contains(t, text, "invalid entry ID")
	assert.Empty(t, api.deleted)

	_, isErr = call(t, deleteHandler(api), map[string]any{"confirm": true})
	assert.True(t, isErr, "missing id")
	assert.Empty(t, api.deleted)
}

func TestUpdateEntry_RejectsFractionalID(t *testing.T) {
	api := &stubAPI{}

	_, isErr := call(t, updateHandler(api), map[string]any{"id": 4.5, "content": "edited", "mood": float64(3)})
	assert.True(t, isErr)
	assert.Empty(t, api.updated)
}
