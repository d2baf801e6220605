package commands

import (
	"context"

	"moodlog/internal/application"
	"moodlog/internal/domain"
)

// SearchCommand narrows the journal by a free-text query. The match is done
// locally against a fresh snapshot; the backend has no search endpoint.
type SearchCommand struct {
	store *application.EntryStore
	Query string
}

// NewSearchCommand creates a new SearchCommand
func NewSearchCommand(store *application.EntryStore, query string) *SearchCommand {
	return &SearchCommand{
		store: store,
		Query: query,
	}
}

// Execute loads the snapshot and returns the matching entries in backend order
func (c *SearchCommand) Execute(ctx context.Context) ([]domain.Entry, error) {
	if err := c.store.Load(ctx); err != nil {
		return nil, err
	}
	return c.store.Filtered(c.Query), nil
}
