package views

// ViewState is embedded by the view models: terminal size plus the
// one-line status message shown under the view.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage replaces the status message
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the status message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// Status renders the status message, or nothing when there is none
func (s *ViewState) Status() string {
	return RenderMessage(s.Message, s.MessageErr)
}
