package views

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"moodlog/internal/adapters/tui/styles"
	"moodlog/internal/application/commands"
	"moodlog/internal/domain"
	"moodlog/internal/ports"
)

// Advice panel texts
const (
	AdvicePending = "Thinking..."
	AdviceFailed  = "Sorry, can't fetch right now."
)

// DashboardKeyMap defines key bindings for the dashboard
type DashboardKeyMap struct {
	New        key.Binding
	Search     key.Binding
	EndSearch  key.Binding
	Analyze    key.Binding
	CopyAdvice key.Binding
	Export     key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

var DashboardKeys = DashboardKeyMap{
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new entry"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	EndSearch: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("enter/esc", "done"),
	),
	Analyze: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "analyze week"),
	),
	CopyAdvice: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy advice"),
	),
	Export: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "export"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
}

// ReloadMsg asks the app to refetch the entry list
type ReloadMsg struct{}

// DashboardModel combines search, stats, chart, the entry list and the
// weekly advice panel. All panels are derived from the same filtered list.
type DashboardModel struct {
	ViewState
	api       ports.JournalAPI
	exportDir string

	all      []domain.Entry
	filtered []domain.Entry
	stats    domain.Stats

	search textinput.Model
	list   *EntryListModel
	chart  *ChartModel

	spinner   spinner.Model
	analyzing bool
	advice    string
	adviceErr bool
	exporting bool
}

// NewDashboardModel creates a new dashboard. Exports are written to exportDir.
func NewDashboardModel(api ports.JournalAPI, exportDir string) *DashboardModel {
	search := textinput.New()
	search.Placeholder = "Search entries..."
	search.Prompt = "/ "
	search.CharLimit = 100

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.MutedText

	return &DashboardModel{
		api:       api,
		exportDir: exportDir,
		search:    search,
		list:      NewEntryListModel(api),
		chart:     NewChartModel(),
		spinner:   s,
		stats:     domain.ComputeStats(nil),
	}
}

// SetEntries installs a freshly loaded list and re-applies the search query
func (m *DashboardModel) SetEntries(entries []domain.Entry) {
	m.all = entries
	m.applyFilter()
}

// applyFilter rebuilds every panel from the current query
func (m *DashboardModel) applyFilter() {
	m.filtered = domain.Filter(m.all, m.search.Value())
	m.list.SetEntries(m.filtered)
	m.chart.SetEntries(m.filtered)
	m.stats = domain.ComputeStats(m.filtered)
}

// Query returns the search text
func (m *DashboardModel) Query() string {
	return m.search.Value()
}

// Filtered returns the list currently shown
func (m *DashboardModel) Filtered() []domain.Entry {
	return m.filtered
}

// Stats returns the aggregates of the list currently shown
func (m *DashboardModel) Stats() domain.Stats {
	return m.stats
}

// List returns the entry list panel
func (m *DashboardModel) List() *EntryListModel {
	return m.list
}

// Chart returns the chart panel
func (m *DashboardModel) Chart() *ChartModel {
	return m.chart
}

// Analyzing reports whether a weekly analysis request is in flight
func (m *DashboardModel) Analyzing() bool {
	return m.analyzing
}

// Advice returns the advice panel text and whether it is an error
func (m *DashboardModel) Advice() (string, bool) {
	return m.advice, m.adviceErr
}

// SetSize updates the view dimensions
func (m *DashboardModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = max(width-10, 10)
	m.chart.SetSize(width-4, max(height/3, 8))
	m.list.SetSize(width, max(height-height/3-12, 4))
}

// Init initializes the dashboard
func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.analyzing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case AnalysisMsg:
		m.analyzing = false
		if msg.Err != nil {
			m.advice = AdviceFailed
			m.adviceErr = true
			return m, nil
		}
		m.advice = msg.Advice
		m.adviceErr = false
		return m, nil

	case ExportDoneMsg:
		m.exporting = false
		if msg.Err != nil {
			m.SetMessage("Export failed: "+msg.Err.Error(), true)
		} else {
			m.SetMessage(msg.Message, false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.search.Focused() {
			return m, m.updateSearch(msg)
		}
		if m.list.IsEditing() {
			_, cmd := m.list.Update(msg)
			return m, cmd
		}

		switch {
		case key.Matches(msg, DashboardKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, DashboardKeys.Help):
			return m, func() tea.Msg { return SwitchToHelpMsg{} }
		case key.Matches(msg, DashboardKeys.New):
			return m, func() tea.Msg { return SwitchToComposeMsg{} }
		case key.Matches(msg, DashboardKeys.Search):
			m.ClearMessage()
			return m, m.search.Focus()
		case key.Matches(msg, DashboardKeys.Reload):
			m.ClearMessage()
			return m, func() tea.Msg { return ReloadMsg{} }
		case key.Matches(msg, DashboardKeys.Analyze):
			return m, m.startAnalysis()
		case key.Matches(msg, DashboardKeys.CopyAdvice):
			m.copyAdvice()
			return m, nil
		case key.Matches(msg, DashboardKeys.Export):
			return m, m.startExport()
		}
	}

	_, cmd := m.list.Update(msg)
	return m, cmd
}

// updateSearch feeds a key to the search input and re-filters on every change
func (m *DashboardModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, DashboardKeys.EndSearch) {
		m.search.Blur()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.applyFilter()
	}
	return cmd
}

// startAnalysis requests weekly advice unless a request is already running
func (m *DashboardModel) startAnalysis() tea.Cmd {
	if m.analyzing {
		return nil
	}
	m.analyzing = true
	m.advice = AdvicePending
	m.adviceErr = false

	api := m.api
	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			advice, err := commands.NewAnalyzeWeekCommand(api).Execute(context.Background())
			return AnalysisMsg{Advice: advice, Err: err}
		},
	)
}

func (m *DashboardModel) startExport() tea.Cmd {
	if m.exporting {
		return nil
	}
	m.exporting = true
	m.SetMessage("Exporting...", false)

	api, dir := m.api, m.exportDir
	return func() tea.Msg {
		result, err := commands.NewExportCommand(api, dir).Execute(context.Background())
		if err != nil {
			return ExportDoneMsg{Err: err}
		}
		return ExportDoneMsg{Message: result.Message}
	}
}

func (m *DashboardModel) copyAdvice() {
	if m.advice == "" || m.analyzing || m.adviceErr {
		m.SetMessage("No advice to copy", true)
		return
	}
	if err := clipboard.WriteAll(m.advice); err != nil {
		m.SetMessage("Copy failed: "+err.Error(), true)
		return
	}
	m.SetMessage("Copied advice", false)
}

// renderAdvice renders the advice markdown, falling back to plain text
func (m *DashboardModel) renderAdvice() string {
	if m.analyzing {
		return m.spinner.View() + " " + styles.MutedText.Render(AdvicePending)
	}
	if m.advice == "" {
		return styles.MutedText.Render("Press a to analyze the past week.")
	}
	if m.adviceErr {
		return styles.ErrorMsg.Render(m.advice)
	}

	width := max(m.Width-8, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return m.advice
	}
	out, err := r.Render(m.advice)
	if err != nil {
		return m.advice
	}
	return strings.Trim(out, "\n")
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	v := NewViewBuilder().Title("Mood Journal")

	if m.search.Focused() || m.search.Value() != "" {
		v.Line(m.search.View())
	}
	v.Section(RenderStats(m.stats))
	v.Section(RenderPanel("Mood over time", m.chart.View(), m.Width))
	v.Section(RenderPanel("Entries", m.list.View(), m.Width))
	v.Section(RenderPanel("Weekly analysis", m.renderAdvice(), m.Width))
	v.Message(m.Message, m.MessageErr)

	switch {
	case m.search.Focused():
		v.Help(DashboardKeys.EndSearch)
	case m.list.IsEditing():
		v.Muted("editing entry")
	default:
		v.Help(
			DashboardKeys.New,
			DashboardKeys.Search,
			EntryListKeys.Edit,
			EntryListKeys.Delete,
			DashboardKeys.Analyze,
			DashboardKeys.Export,
			DashboardKeys.Help,
			DashboardKeys.Quit,
		)
	}

	return v.String()
}
