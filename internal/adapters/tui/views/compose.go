package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moodlog/internal/application/commands"
	"moodlog/internal/ports"
)

// ComposeModel is the new-entry form. After a save the inputs keep what was
// typed; the message line reports the outcome.
type ComposeModel struct {
	ViewState
	api    ports.JournalAPI
	form   *EntryForm
	saving bool
}

// NewComposeModel creates a new compose view model
func NewComposeModel(api ports.JournalAPI) *ComposeModel {
	return &ComposeModel{
		api:  api,
		form: NewEntryForm("", ""),
	}
}

// Form returns the entry form
func (m *ComposeModel) Form() *EntryForm {
	return m.form
}

// Saving reports whether a save request is in flight
func (m *ComposeModel) Saving() bool {
	return m.saving
}

// SetSize updates the view dimensions
func (m *ComposeModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.form.SetWidth(width)
}

// Init initializes the compose view
func (m *ComposeModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the compose view
func (m *ComposeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case CreateSuccessMsg:
		m.saving = false
		m.SetMessage(msg.Message, false)
		return m, nil

	case CreateErrMsg:
		m.saving = false
		m.SetMessage(fmt.Sprintf("Failed to save: %v", msg.Err), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			m.ClearMessage()
			return m, func() tea.Msg { return SwitchToDashboardMsg{} }

		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *ComposeModel) save() tea.Cmd {
	if m.saving {
		return nil
	}

	cmd := commands.NewCreateEntryCommand(m.api, m.form.ContentText(), m.form.MoodText())
	if _, err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}

	m.saving = true
	m.SetMessage("Saving...", false)
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return CreateErrMsg{Err: err}
		}
		return CreateSuccessMsg{Message: result.Message}
	}
}

// View renders the compose view
func (m *ComposeModel) View() string {
	return NewViewBuilder().
		Title("New Entry").
		Section(m.form.View()).
		Message(m.Message, m.MessageErr).
		Line(m.form.RenderHelp("save")).
		String()
}
