package ports

import (
	"context"
	"io"

	"moodlog/internal/domain"
)

// EntryInput is the mutable part of an entry sent on create and update
type EntryInput struct {
	Content string `json:"content"`
	Mood    int    `json:"mood"`
}

// JournalAPI defines the backend operations the client depends on
type JournalAPI interface {
	// ListEntries returns every entry in backend order
	ListEntries(ctx context.Context) ([]domain.Entry, error)

	// CreateEntry stores a new entry; the backend assigns ID, sentiment and timestamp
	CreateEntry(ctx context.Context, in EntryInput) error

	// UpdateEntry replaces content and mood; sentiment is recomputed server-side
	UpdateEntry(ctx context.Context, id int, in EntryInput) error

	// DeleteEntry removes an entry
	DeleteEntry(ctx context.Context, id int) error

	// AnalyzeWeek returns the backend's advice for the recent week
	AnalyzeWeek(ctx context.Context) (string, error)

	// Export streams the export file. The caller must close the reader.
	Export(ctx context.Context) (io.ReadCloser, string, error)
}
