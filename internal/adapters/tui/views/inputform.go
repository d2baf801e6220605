package views

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/domain"
)

// EntryFormKeyMap defines key bindings for entry forms
type EntryFormKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
	Tab    key.Binding
}

// DefaultEntryFormKeys returns the default entry form key bindings.
// Enter inserts a newline in the content area, so submit is ctrl+s.
var DefaultEntryFormKeys = EntryFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "next field"),
	),
}

const (
	fieldMood = iota
	fieldContent
)

// EntryForm is the mood/content pair used by the compose view and by cards
// in edit mode. Values are returned as typed; validation belongs to the
// commands.
type EntryForm struct {
	Mood         textinput.Model
	Content      textarea.Model
	FocusedField int
	Keys         EntryFormKeyMap
}

// NewEntryForm creates a form prefilled with mood and content
func NewEntryForm(mood, content string) *EntryForm {
	moodInput := textinput.New()
	moodInput.Placeholder = "1-10"
	moodInput.CharLimit = 3
	moodInput.Width = 4
	moodInput.SetValue(mood)

	contentInput := textarea.New()
	contentInput.Placeholder = "How was your day?"
	contentInput.ShowLineNumbers = false
	contentInput.CharLimit = 0
	contentInput.SetHeight(4)
	contentInput.SetValue(content)

	form := &EntryForm{
		Mood:    moodInput,
		Content: contentInput,
		Keys:    DefaultEntryFormKeys,
	}
	form.SetFocus(fieldContent)
	return form
}

// NewEntryFormFor creates an edit form seeded from an existing entry
func NewEntryFormFor(e domain.Entry) *EntryForm {
	return NewEntryForm(strconv.Itoa(e.Mood), e.Content)
}

// Init returns the blink command for the focused input
func (f *EntryForm) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, textarea.Blink)
}

// Update handles messages for the form.
// Returns (handled, cmd) where handled is true if the key was processed.
func (f *EntryForm) Update(msg tea.Msg) (bool, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && key.Matches(msg, f.Keys.Tab) {
		f.NextField()
		return true, nil
	}

	var cmd tea.Cmd
	switch f.FocusedField {
	case fieldMood:
		f.Mood, cmd = f.Mood.Update(msg)
	case fieldContent:
		f.Content, cmd = f.Content.Update(msg)
	}
	return false, cmd
}

// NextField moves focus to the other field
func (f *EntryForm) NextField() {
	f.SetFocus((f.FocusedField + 1) % 2)
}

// SetFocus sets focus to a specific field
func (f *EntryForm) SetFocus(index int) {
	f.FocusedField = index
	if index == fieldMood {
		f.Content.Blur()
		f.Mood.Focus()
		return
	}
	f.Mood.Blur()
	f.Content.Focus()
}

// MoodText returns the mood field as typed
func (f *EntryForm) MoodText() string {
	return f.Mood.Value()
}

// ContentText returns the content field as typed
func (f *EntryForm) ContentText() string {
	return f.Content.Value()
}

// SetWidth resizes the content area
func (f *EntryForm) SetWidth(width int) {
	if width > 10 {
		f.Content.SetWidth(width - 6)
	}
}

// View renders both fields with focus styling
func (f *EntryForm) View() string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render("Mood (1-10)"))
	b.WriteString("\n")
	b.WriteString(f.fieldStyle(fieldMood).Render(f.Mood.View()))
	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Entry"))
	b.WriteString("\n")
	b.WriteString(f.fieldStyle(fieldContent).Render(f.Content.View()))

	return b.String()
}

func (f *EntryForm) fieldStyle(index int) lipgloss.Style {
	if index == f.FocusedField {
		return styles.InputFocused
	}
	return styles.InputField
}

// RenderHelp renders the help text for the form
func (f *EntryForm) RenderHelp(submitText string) string {
	parts := []string{
		styles.HelpKey.Render("tab") + " " + styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("ctrl+s") + " " + styles.HelpDesc.Render(submitText),
		styles.HelpKey.Render("esc") + " " + styles.HelpDesc.Render("cancel"),
	}
	return strings.Join(parts, "  ")
}
