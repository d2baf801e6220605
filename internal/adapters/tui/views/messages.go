package views

import "moodlog/internal/domain"

// View switching messages

// SwitchToDashboardMsg returns to the dashboard without reloading
type SwitchToDashboardMsg struct{}

// SwitchToComposeMsg opens the new-entry form
type SwitchToComposeMsg struct{}

// SwitchToDeleteMsg opens the delete confirmation for an entry
type SwitchToDeleteMsg struct {
	Entry domain.Entry
}

// SwitchToHelpMsg opens the help view
type SwitchToHelpMsg struct{}

// EntriesLoadedMsg carries the result of a list fetch
type EntriesLoadedMsg struct {
	Entries []domain.Entry
	Err     error
}

// CreateSuccessMsg indicates a saved entry
type CreateSuccessMsg struct {
	Message string
}

// CreateErrMsg indicates a failed save
type CreateErrMsg struct {
	Err error
}

// UpdateSuccessMsg indicates an edited entry was persisted
type UpdateSuccessMsg struct {
	ID      int
	Message string
}

// UpdateErrMsg indicates an edit was rejected locally or by the backend
type UpdateErrMsg struct {
	ID  int
	Err error
}

// DeleteSuccessMsg indicates successful deletion
type DeleteSuccessMsg struct {
	Message string
}

// DeleteErrMsg indicates an error during deletion
type DeleteErrMsg struct {
	Err error
}

// AnalysisMsg carries weekly advice, or an error
type AnalysisMsg struct {
	Advice string
	Err    error
}

// ExportDoneMsg carries the result of an export
type ExportDoneMsg struct {
	Message string
	Err     error
}
