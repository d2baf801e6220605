package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// DeleteModel is the model for the delete confirmation view.
// Keys are ignored while a delete request is in flight.
type DeleteModel struct {
	ConfirmationModel
	api      ports.JournalAPI
	deleting bool
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(api ports.JournalAPI) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		api:               api,
	}
}

// SetTarget opens the confirmation for a new entry
func (m *DeleteModel) SetTarget(e domain.Entry) {
	m.ConfirmationModel.SetTarget(e)
	m.deleting = false
}

// Deleting reports whether a delete request is in flight
func (m *DeleteModel) Deleting() bool {
	return m.deleting
}

// Finish marks the in-flight request as answered
func (m *DeleteModel) Finish() {
	m.deleting = false
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.deleting {
			return m, nil
		}
		handled, cmd := m.HandleKeyMsg(msg,
			func() tea.Msg { return m.doDelete() },
			func() tea.Msg { return SwitchToDashboardMsg{} },
		)
		if handled {
			if key.Matches(msg, m.Keys.Confirm) {
				m.deleting = true
			}
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Msg {
	if !m.HasTarget {
		return DeleteErrMsg{Err: fmt.Errorf("no target selected")}
	}

	result, err := commands.NewDeleteEntryCommand(m.api, m.Target.ID).Execute(context.Background())
	if err != nil {
		return DeleteErrMsg{Err: err}
	}

	return DeleteSuccessMsg{Message: result.Message}
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Delete Entry"))
	b.WriteString("\n\n")

	b.WriteString(styles.ErrorMsg.Render("This action cannot be undone!"))
	b.WriteString("\n\n")

	if m.HasTarget {
		b.WriteString(RenderTargetInfo(m.Target, "Delete"))
		b.WriteString("\n\n")
	}

	if m.deleting {
		b.WriteString(styles.MutedText.Render("Deleting..."))
	} else {
		b.WriteString(RenderConfirmPrompt("Are you sure you want to delete this entry?"))
	}

	return styles.App.Render(b.String())
}
