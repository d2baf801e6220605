package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// EmptyListText is shown in place of cards when the list is empty
const EmptyListText = "No entries found."

// CardMode is the display state of one entry card
type CardMode int

const (
	CardView CardMode = iota
	CardEdit
)

// EntryListKeyMap defines key bindings for the entry list
type EntryListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Edit   key.Binding
	Delete key.Binding
	Copy   key.Binding
}

var EntryListKeys = EntryListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
}

// EntryListModel renders one card per entry. Card state is keyed by entry
// ID, and every SetEntries rebuilds all cards in view mode.
type EntryListModel struct {
	ViewState
	api     ports.JournalAPI
	entries []domain.Entry
	modes   map[int]CardMode
	forms   map[int]*EntryForm
	pager   *Paginator
	saving  map[int]bool
}

// NewEntryListModel creates an empty entry list
func NewEntryListModel(api ports.JournalAPI) *EntryListModel {
	return &EntryListModel{
		api:    api,
		modes:  map[int]CardMode{},
		forms:  map[int]*EntryForm{},
		saving: map[int]bool{},
		pager:  NewPaginator(5),
	}
}

// SetEntries replaces the cards. Selection follows the previously
// selected entry ID when it is still present.
func (m *EntryListModel) SetEntries(entries []domain.Entry) {
	selected, hadSelection := m.Selected()

	m.entries = entries
	m.modes = make(map[int]CardMode, len(entries))
	m.forms = map[int]*EntryForm{}
	m.saving = map[int]bool{}
	for _, e := range entries {
		m.modes[e.ID] = CardView
	}

	m.pager.SetTotal(len(entries))
	if hadSelection {
		for i, e := range entries {
			if e.ID == selected.ID {
				m.pager.SetCursor(i)
				break
			}
		}
	}
}

// Entries returns the entries currently rendered
func (m *EntryListModel) Entries() []domain.Entry {
	return m.entries
}

// Selected returns the entry under the cursor
func (m *EntryListModel) Selected() (domain.Entry, bool) {
	if len(m.entries) == 0 {
		return domain.Entry{}, false
	}
	return m.entries[m.pager.Cursor()], true
}

// Mode returns the card state for an entry ID
func (m *EntryListModel) Mode(id int) CardMode {
	return m.modes[id]
}

// Form returns the edit form owned by an entry ID, if it is in edit mode
func (m *EntryListModel) Form(id int) (*EntryForm, bool) {
	f, ok := m.forms[id]
	return f, ok
}

// IsEditing reports whether the selected card is in edit mode
func (m *EntryListModel) IsEditing() bool {
	e, ok := m.Selected()
	return ok && m.modes[e.ID] == CardEdit
}

// SetSize updates dimensions and the number of cards per page
func (m *EntryListModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.pager.SetPageSize(max(height/4, 1))
	for _, f := range m.forms {
		f.SetWidth(width)
	}
}

// EnterEdit switches a card to edit mode with a form seeded from the entry
func (m *EntryListModel) EnterEdit(id int) tea.Cmd {
	for _, e := range m.entries {
		if e.ID == id {
			form := NewEntryFormFor(e)
			form.SetWidth(m.Width)
			m.forms[id] = form
			m.modes[id] = CardEdit
			return form.Init()
		}
	}
	return nil
}

// CancelEdit destroys the form and restores view mode
func (m *EntryListModel) CancelEdit(id int) {
	delete(m.forms, id)
	m.modes[id] = CardView
}

// SaveEdit validates the form locally and returns the request command.
// A validation failure is reported without any request.
func (m *EntryListModel) SaveEdit(id int) tea.Cmd {
	form, ok := m.forms[id]
	if !ok || m.saving[id] {
		return nil
	}

	cmd := commands.NewUpdateEntryCommand(m.api, id, form.ContentText(), form.MoodText())
	if _, err := cmd.Validate(); err != nil {
		return func() tea.Msg { return UpdateErrMsg{ID: id, Err: err} }
	}

	m.saving[id] = true
	return func() tea.Msg {
		result, err := cmd.Execute(context.Background())
		if err != nil {
			return UpdateErrMsg{ID: id, Err: err}
		}
		return UpdateSuccessMsg{ID: result.ID, Message: result.Message}
	}
}

// Init initializes the list
func (m *EntryListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the list
func (m *EntryListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case UpdateErrMsg:
		delete(m.saving, msg.ID)
		m.SetMessage(fmt.Sprintf("Failed to update: %v", msg.Err), true)
		return m, nil

	case tea.KeyMsg:
		selected, ok := m.Selected()
		if !ok {
			return m, nil
		}

		if m.modes[selected.ID] == CardEdit {
			return m, m.updateForm(selected.ID, msg)
		}

		switch {
		case key.Matches(msg, EntryListKeys.Up):
			m.pager.CursorUp()
		case key.Matches(msg, EntryListKeys.Down):
			m.pager.CursorDown()
		case key.Matches(msg, EntryListKeys.Edit):
			m.ClearMessage()
			return m, m.EnterEdit(selected.ID)
		case key.Matches(msg, EntryListKeys.Delete):
			return m, func() tea.Msg { return SwitchToDeleteMsg{Entry: selected} }
		case key.Matches(msg, EntryListKeys.Copy):
			if err := clipboard.WriteAll(selected.Content); err != nil {
				m.SetMessage("Copy failed: "+err.Error(), true)
			} else {
				m.SetMessage(fmt.Sprintf("Copied entry #%d", selected.ID), false)
			}
		}
		return m, nil
	}

	// Forward blinks and other ticks to open forms
	var cmds []tea.Cmd
	for _, f := range m.forms {
		_, cmd := f.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *EntryListModel) updateForm(id int, msg tea.KeyMsg) tea.Cmd {
	form := m.forms[id]
	switch {
	case key.Matches(msg, form.Keys.Cancel):
		m.CancelEdit(id)
		m.ClearMessage()
		return nil
	case key.Matches(msg, form.Keys.Submit):
		return m.SaveEdit(id)
	}
	_, cmd := form.Update(msg)
	return cmd
}

// View renders the cards on the current page
func (m *EntryListModel) View() string {
	if len(m.entries) == 0 {
		return EmptyListText
	}

	var b strings.Builder
	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderCard(m.entries[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	if m.pager.TotalPages() > 1 {
		b.WriteString(styles.MutedText.Render(fmt.Sprintf("page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())))
		b.WriteString("\n")
	}
	if m.Message != "" {
		b.WriteString(m.Status())
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func (m *EntryListModel) renderCard(e domain.Entry, selected bool) string {
	var b strings.Builder

	header := fmt.Sprintf("#%d  %s  Mood: %d  Sentiment: %s",
		e.ID, e.DisplayTime(), e.Mood, e.SentimentString())
	b.WriteString(styles.CardMeta.Render(header))
	if badge := RenderAnomaly(e.Anomaly()); badge != "" {
		b.WriteString(" ")
		b.WriteString(badge)
	}
	b.WriteString("\n")

	if m.modes[e.ID] == CardEdit {
		form := m.forms[e.ID]
		b.WriteString(form.View())
		b.WriteString("\n")
		if m.saving[e.ID] {
			b.WriteString(styles.MutedText.Render("Saving..."))
		} else {
			b.WriteString(form.RenderHelp("save"))
		}
	} else {
		b.WriteString(e.Content)
	}

	style := styles.Card
	if selected {
		style = styles.CardSelected
	}
	if m.Width > 8 {
		style = style.Width(m.Width - 8)
	}
	return style.Render(b.String())
}
