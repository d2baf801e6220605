package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	width  int
	height int
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToDashboardMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Mood Journal Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Entries"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Select entry"))
	b.WriteString(helpLine("n", "Write a new entry"))
	b.WriteString(helpLine("e", "Edit selected entry"))
	b.WriteString(helpLine("d", "Delete selected entry"))
	b.WriteString(helpLine("y", "Copy selected entry"))
	b.WriteString(helpLine("/", "Search (filters as you type)"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Editing"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab", "Switch between mood and text"))
	b.WriteString(helpLine("ctrl+s", "Save"))
	b.WriteString(helpLine("esc", "Cancel"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Insights"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Analyze the past week"))
	b.WriteString(helpLine("c", "Copy advice"))
	b.WriteString(helpLine("x", "Export journal"))
	b.WriteString(helpLine("r", "Reload"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Anomalies"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  " + domain.AnomalyMasking.String() + "       high mood, negative writing"))
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  " + domain.AnomalyOverCritical.String() + "  low mood, positive writing"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

// SetSize updates the view dimensions
func (m *HelpModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}
