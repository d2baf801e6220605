package commands

import (
	"context"
	"fmt"

	"moodlog/internal/application"
	"moodlog/internal/ports"
)

// CreateEntryResult contains the result of creating an entry
type CreateEntryResult struct {
	Mood    int
	Message string
}

// CreateEntryCommand creates a journal entry
type CreateEntryCommand struct {
	api      ports.JournalAPI
	Content  string
	MoodText string
}

// NewCreateEntryCommand creates a new CreateEntryCommand. moodText is the raw
// user input and is parsed during validation.
func NewCreateEntryCommand(api ports.JournalAPI, content, moodText string) *CreateEntryCommand {
	return &CreateEntryCommand{
		api:      api,
		Content:  content,
		MoodText: moodText,
	}
}

// Validate checks the inputs and returns the request to send.
// Blank content is rejected, but content is sent as typed.
func (c *CreateEntryCommand) Validate() (ports.EntryInput, error) {
	if _, err := application.ValidateContent(c.Content); err != nil {
		return ports.EntryInput{}, err
	}
	mood, err := application.ParseMood(c.MoodText)
	if err != nil {
		return ports.EntryInput{}, err
	}
	return ports.EntryInput{Content: c.Content, Mood: mood}, nil
}

// Execute runs the create command
func (c *CreateEntryCommand) Execute(ctx context.Context) (*CreateEntryResult, error) {
	in, err := c.Validate()
	if err != nil {
		return nil, err
	}

	if err := c.api.CreateEntry(ctx, in); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}

	return &CreateEntryResult{
		Mood:    in.Mood,
		Message: "Saved successfully!",
	}, nil
}
