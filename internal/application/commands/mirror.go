package commands

import (
	"context"
	"fmt"

	"moodlog/internal/application"
	"moodlog/internal/ports"
)

// MirrorResult contains the result of a mirror operation
type MirrorResult struct {
	Count   int
	Message string
}

// MirrorCommand copies a fresh snapshot into the offline mirror
type MirrorCommand struct {
	store  *application.EntryStore
	mirror ports.SnapshotMirror
}

// NewMirrorCommand creates a new MirrorCommand
func NewMirrorCommand(store *application.EntryStore, mirror ports.SnapshotMirror) *MirrorCommand {
	return &MirrorCommand{
		store:  store,
		mirror: mirror,
	}
}

// Execute reloads the store and replaces the mirror contents
func (c *MirrorCommand) Execute(ctx context.Context) (*MirrorResult, error) {
	if err := c.store.Load(ctx); err != nil {
		return nil, err
	}

	entries := c.store.Entries()
	if err := c.mirror.Replace(ctx, entries); err != nil {
		return nil, fmt.Errorf("failed to write mirror: %w", err)
	}

	return &MirrorResult{
		Count:   len(entries),
		Message: fmt.Sprintf("Mirrored %d entries", len(entries)),
	}, nil
}
