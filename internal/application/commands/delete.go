package commands

import (
	"context"
	"fmt"

	"moodlog/internal/application"
	"moodlog/internal/ports"
)

// DeleteResult contains the result of a delete operation
type DeleteResult struct {
	DeletedID int
	Message   string
}

// DeleteEntryCommand deletes an entry by ID. Callers must obtain the user's
// confirmation before executing it.
type DeleteEntryCommand struct {
	api ports.JournalAPI
	ID  int
}

// NewDeleteEntryCommand creates a new DeleteEntryCommand
func NewDeleteEntryCommand(api ports.JournalAPI, id int) *DeleteEntryCommand {
	return &DeleteEntryCommand{
		api: api,
		ID:  id,
	}
}

// Validate checks if the delete operation is valid
func (c *DeleteEntryCommand) Validate() error {
	if c.ID <= 0 {
		return &application.ValidationError{
			Field:   "id",
			Message: fmt.Sprintf("invalid entry ID: %d", c.ID),
			Err:     application.ErrInvalidID,
		}
	}
	return nil
}

// Execute runs the delete command
func (c *DeleteEntryCommand) Execute(ctx context.Context) (*DeleteResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.api.DeleteEntry(ctx, c.ID); err != nil {
		return nil, fmt.Errorf("failed to delete entry %d: %w", c.ID, err)
	}

	return &DeleteResult{
		DeletedID: c.ID,
		Message:   fmt.Sprintf("Deleted entry #%d", c.ID),
	}, nil
}
