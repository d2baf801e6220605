package commands

import (
	"context"

	"moodlog/internal/application"
	"moodlog/internal/domain"
)

// LoadEntriesCommand reloads the store from the backend
type LoadEntriesCommand struct {
	store *application.EntryStore
}

// NewLoadEntriesCommand creates a new LoadEntriesCommand
func NewLoadEntriesCommand(store *application.EntryStore) *LoadEntriesCommand {
	return &LoadEntriesCommand{store: store}
}

// Execute runs the load command and returns the fresh snapshot
func (c *LoadEntriesCommand) Execute(ctx context.Context) ([]domain.Entry, error) {
	if err := c.store.Load(ctx); err != nil {
		return nil, err
	}
	return c.store.Entries(), nil
}

// StatsCommand computes aggregates over the store, optionally narrowed by a query
type StatsCommand struct {
	store *application.EntryStore
	Query string
}

// NewStatsCommand creates a new StatsCommand
func NewStatsCommand(store *application.EntryStore, query string) *StatsCommand {
	return &StatsCommand{
		store: store,
		Query: query,
	}
}

// Execute reloads the store and computes stats over the filtered list
func (c *StatsCommand) Execute(ctx context.Context) (domain.Stats, error) {
	if err := c.store.Load(ctx); err != nil {
		return domain.Stats{}, err
	}
	return domain.ComputeStats(c.store.Filtered(c.Query)), nil
}
