package views

import (
	"context"
	"io"
	"strings"
	"sync"

	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// fakeAPI records calls and serves a fixed entry list
type fakeAPI struct {
	mu      sync.Mutex
	entries []domain.Entry
	err     error
	advice  string
	calls   []string
}

var _ ports.JournalAPI = (*fakeAPI)(nil)

func (f *fakeAPI) record(op string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, op)
}

func (f *fakeAPI) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *fakeAPI) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	f.record("list")
	return f.entries, f.err
}

func (f *fakeAPI) CreateEntry(ctx context.Context, in ports.EntryInput) error {
	f.record("create")
	return f.err
}

func (f *fakeAPI) UpdateEntry(ctx context.Context, id int, in ports.EntryInput) error {
	f.record("update")
	return f.err
}

func (f *fakeAPI) DeleteEntry(ctx context.Context, id int) error {
	f.record("delete")
	return f.err
}

func (f *fakeAPI) AnalyzeWeek(ctx context.Context) (string, error) {
	f.record("analyze")
	return f.advice, f.err
}

func (f *fakeAPI) Export(ctx context.Context) (io.ReadCloser, string, error) {
	f.record("export")
	if f.err != nil {
		return nil, "", f.err
	}
	return io.NopCloser(strings.NewReader("id,content\n")), "journal.csv", nil
}

func sampleEntries() []domain.Entry {
	return []domain.Entry{
		{ID: 3, Content: "Great day at the beach", Mood: 9, Sentiment: 0.8, CreatedAt: "2024-03-03T10:00:00"},
		{ID: 2, Content: "Smiling through it", Mood: 8, Sentiment: -0.6, CreatedAt: "2024-03-02T10:00:00"},
		{ID: 1, Content: "Rough morning, happy evening", Mood: 3, Sentiment: 0.5, CreatedAt: "2024-03-02T21:00:00"},
	}
}
