package commands

import (
	"context"
	"io"
	"strings"

	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// fakeAPI is an in-memory ports.JournalAPI that records calls
type fakeAPI struct {
	entries []domain.Entry
	nextID  int
	err     error
	advice  string
	export  string

	listCalls   int
	createCalls []ports.EntryInput
	updateCalls map[int]ports.EntryInput
	deleteCalls []int
}

func newFakeAPI(entries ...domain.Entry) *fakeAPI {
	return &fakeAPI{
		entries:     entries,
		nextID:      len(entries) + 1,
		updateCalls: map[int]ports.EntryInput{},
	}
}

func (f *fakeAPI) calls() int {
	return f.listCalls + len(f.createCalls) + len(f.updateCalls) + len(f.deleteCalls)
}

func (f *fakeAPI) ListEntries(ctx context.Context) ([]domain.Entry, error) {
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Entry(nil), f.entries...), nil
}

func (f *fakeAPI) CreateEntry(ctx context.Context, in ports.EntryInput) error {
	f.createCalls = append(f.createCalls, in)
	if f.err != nil {
		return f.err
	}
	f.entries = append(f.entries, domain.Entry{ID: f.nextID, Content: in.Content, Mood: in.Mood})
	f.nextID++
	return nil
}

func (f *fakeAPI) UpdateEntry(ctx context.Context, id int, in ports.EntryInput) error {
	f.updateCalls[id] = in
	return f.err
}

func (f *fakeAPI) DeleteEntry(ctx context.Context, id int) error {
	f.deleteCalls = append(f.deleteCalls, id)
	return f.err
}

func (f *fakeAPI) AnalyzeWeek(ctx context.Context) (string, error) {
	return f.advice, f.err
}

func (f *fakeAPI) Export(ctx context.Context) (io.ReadCloser, string, error) {
	if f.err != nil {
		return nil, "", f.err
	}
	return io.NopCloser(strings.NewReader(f.export)), "export.csv", nil
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
