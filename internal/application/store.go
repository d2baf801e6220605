package application

import (
	"context"
	"fmt"

	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// EntryStore holds the client-side snapshot of the journal.
//
// It has a single writer: the owner that calls Load (the TUI update loop or a
// single CLI command). Readers get copies, so a render never sees a list that
// is being replaced.
type EntryStore struct {
	api     ports.JournalAPI
	entries []domain.Entry
	loads   int
}

// NewEntryStore creates an empty store backed by api
func NewEntryStore(api ports.JournalAPI) *EntryStore {
	return &EntryStore{api: api}
}

// Load fetches the complete entry list and replaces the snapshot.
// The previous snapshot is dropped before the request is made, so a failed
// load leaves the store empty rather than stale.
func (s *EntryStore) Load(ctx context.Context) error {
	s.entries = nil
	s.loads++

	entries, err := s.api.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("failed to load entries: %w", err)
	}
	s.entries = entries
	return nil
}

// Replace installs a list fetched elsewhere. The TUI fetches in a tea.Cmd
// and hands the result back to the update loop through this method.
func (s *EntryStore) Replace(entries []domain.Entry) {
	s.entries = append([]domain.Entry(nil), entries...)
}

// Invalidate drops the snapshot ahead of a reload
func (s *EntryStore) Invalidate() {
	s.entries = nil
	s.loads++
}

// Entries returns a copy of the current snapshot in backend order
func (s *EntryStore) Entries() []domain.Entry {
	return append([]domain.Entry(nil), s.entries...)
}

// Filtered returns the snapshot narrowed by a search query
func (s *EntryStore) Filtered(query string) []domain.Entry {
	return domain.Filter(s.entries, query)
}

// Find returns the entry with the given ID
func (s *EntryStore) Find(id int) (domain.Entry, bool) {
	for _, e := range s.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entry{}, false
}

// Len returns the number of entries in the snapshot
func (s *EntryStore) Len() int {
	return len(s.entries)
}

// Loads returns how many reloads have been started
func (s *EntryStore) Loads() int {
	return s.loads
}

// API returns the backend the store reads from
func (s *EntryStore) API() ports.JournalAPI {
	return s.api
}
