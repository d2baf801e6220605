package commands

import (
	"context"
	"fmt"

	"moodlog/internal/application"
	"moodlog/internal/ports"
)

// UpdateEntryResult contains the result of an update
type UpdateEntryResult struct {
	ID      int
	Message string
}

// UpdateEntryCommand replaces the content and mood of an entry
type UpdateEntryCommand struct {
	api      ports.JournalAPI
	ID       int
	Content  string
	MoodText string
}

// NewUpdateEntryCommand creates a new UpdateEntryCommand
func NewUpdateEntryCommand(api ports.JournalAPI, id int, content, moodText string) *UpdateEntryCommand {
	return &UpdateEntryCommand{
		api:      api,
		ID:       id,
		Content:  content,
		MoodText: moodText,
	}
}

// Validate checks the inputs locally; a failure means no request is sent
func (c *UpdateEntryCommand) Validate() (ports.EntryInput, error) {
	if c.ID <= 0 {
		return ports.EntryInput{}, &application.ValidationError{
			Field:   "id",
			Message: "entry ID is required",
			Err:     application.ErrInvalidID,
		}
	}
	mood, err := application.ParseMood(c.MoodText)
	if err != nil {
		return ports.EntryInput{}, err
	}
	content, err := application.ValidateContent(c.Content)
	if err != nil {
		return ports.EntryInput{}, err
	}
	return ports.EntryInput{Content: content, Mood: mood}, nil
}

// Execute runs the update command
func (c *UpdateEntryCommand) Execute(ctx context.Context) (*UpdateEntryResult, error) {
	in, err := c.Validate()
	if err != nil {
		return nil, err
	}

	if err := c.api.UpdateEntry(ctx, c.ID, in); err != nil {
		return nil, fmt.Errorf("failed to update entry %d: %w", c.ID, err)
	}

	return &UpdateEntryResult{
		ID:      c.ID,
		Message: fmt.Sprintf("Updated entry #%d", c.ID),
	}, nil
}
