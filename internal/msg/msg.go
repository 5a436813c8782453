// Package msg defines messages shared between the app and its components.
package msg

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ToastMsg displays a temporary status message in the footer.
type ToastMsg struct {
	Message  string
	Duration time.Duration
	IsError  bool
}

// ShowToast returns a command that shows a success toast.
func ShowToast(message string, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: message, Duration: duration}
	}
}

// ShowError returns a command that shows an error toast.
func ShowError(err error, duration time.Duration) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Message: err.Error(), Duration: duration, IsError: true}
	}
}
