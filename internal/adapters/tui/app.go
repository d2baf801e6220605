package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"moodlog/internal/adapters/tui/views"
	"moodlog/internal/application"
)

// ViewState represents the current view
type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewCompose
	ViewDelete
	ViewHelp
)

// App is the main TUI application model. It is the only writer of the
// entry store: fetches run in commands and their results are installed here.
type App struct {
	store *application.EntryStore
	log   *zap.Logger

	state     ViewState
	dashboard *views.DashboardModel
	compose   *views.ComposeModel
	delete    *views.DeleteModel
	help      *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application over store. Exports are written to exportDir.
func NewApp(store *application.EntryStore, log *zap.Logger, exportDir string) *App {
	if log == nil {
		log = zap.NewNop()
	}
	api := store.API()
	return &App{
		store:     store,
		log:       log,
		state:     ViewDashboard,
		dashboard: views.NewDashboardModel(api, exportDir),
		compose:   views.NewComposeModel(api),
		delete:    views.NewDeleteModel(api),
		help:      views.NewHelpModel(),
	}
}

// State returns the active view
func (a *App) State() ViewState {
	return a.state
}

// Dashboard returns the dashboard view
func (a *App) Dashboard() *views.DashboardModel {
	return a.dashboard
}

// Compose returns the new-entry view
func (a *App) Compose() *views.ComposeModel {
	return a.compose
}

// Init loads the entry list
func (a *App) Init() tea.Cmd {
	return a.reload()
}

// reload drops the snapshot and fetches a new one
func (a *App) reload() tea.Cmd {
	a.store.Invalidate()
	a.log.Debug("reloading entries", zap.Int("load", a.store.Loads()))

	api := a.store.API()
	return func() tea.Msg {
		entries, err := api.ListEntries(context.Background())
		return views.EntriesLoadedMsg{Entries: entries, Err: err}
	}
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.dashboard.SetSize(msg.Width, msg.Height)
		a.compose.SetSize(msg.Width, msg.Height)
		a.delete.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case views.EntriesLoadedMsg:
		if msg.Err != nil {
			a.log.Warn("failed to load entries", zap.Error(msg.Err))
			a.dashboard.SetEntries(a.store.Entries())
			a.dashboard.SetMessage("Failed to load entries: "+msg.Err.Error(), true)
			return a, nil
		}
		a.store.Replace(msg.Entries)
		a.dashboard.SetEntries(a.store.Entries())
		a.log.Debug("entries loaded", zap.Int("count", a.store.Len()))
		return a, nil

	case views.ReloadMsg:
		return a, a.reload()

	// View switching messages
	case views.SwitchToComposeMsg:
		a.state = ViewCompose
		return a, a.compose.Init()

	case views.SwitchToDeleteMsg:
		a.state = ViewDelete
		a.delete.SetTarget(msg.Entry)
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	case views.SwitchToDashboardMsg:
		a.state = ViewDashboard
		return a, nil

	// Mutation results
	case views.CreateSuccessMsg:
		a.log.Info("entry created")
		a.compose.Update(msg)
		return a, a.reload()

	case views.CreateErrMsg:
		a.log.Warn("failed to create entry", zap.Error(msg.Err))
		a.compose.Update(msg)
		return a, nil

	case views.UpdateSuccessMsg:
		a.log.Info("entry updated", zap.Int("id", msg.ID))
		a.dashboard.SetMessage(msg.Message, false)
		return a, a.reload()

	case views.UpdateErrMsg:
		a.log.Warn("failed to update entry", zap.Int("id", msg.ID), zap.Error(msg.Err))
		_, cmd := a.dashboard.Update(msg)
		return a, cmd

	case views.DeleteSuccessMsg:
		a.log.Info("entry deleted")
		a.delete.Finish()
		a.state = ViewDashboard
		a.dashboard.SetMessage(msg.Message, false)
		return a, a.reload()

	case views.DeleteErrMsg:
		a.log.Warn("failed to delete entry", zap.Error(msg.Err))
		a.delete.Finish()
		a.state = ViewDashboard
		a.dashboard.SetMessage("Failed to delete: "+msg.Err.Error(), true)
		return a, nil

	case views.AnalysisMsg:
		if msg.Err != nil {
			a.log.Warn("weekly analysis failed", zap.Error(msg.Err))
		}
		_, cmd := a.dashboard.Update(msg)
		return a, cmd

	case views.ExportDoneMsg:
		if msg.Err != nil {
			a.log.Warn("export failed", zap.Error(msg.Err))
		}
		_, cmd := a.dashboard.Update(msg)
		return a, cmd
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewDashboard:
		_, cmd = a.dashboard.Update(msg)
	case ViewCompose:
		_, cmd = a.compose.Update(msg)
	case ViewDelete:
		_, cmd = a.delete.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewCompose:
		return a.compose.View()
	case ViewDelete:
		return a.delete.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.dashboard.View()
	}
}
