package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
)

// Message types for tea.Cmd
type (
	// toastExpiredMsg clears the toast with the matching id.
	toastExpiredMsg struct {
		id int
	}

	// configChangedMsg reports that the config file changed on disk.
	configChangedMsg struct{}
)

// expireToast clears toast id after d.
func expireToast(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// listenConfig waits for the next config change. It returns nil once the
// watcher stops.
func listenConfig(w *config.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		select {
		case <-w.Events():
			return configChangedMsg{}
		case <-w.Done():
			return nil
		}
	}
}
