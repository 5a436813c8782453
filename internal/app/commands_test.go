package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/marcus/folio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListenConfig_NilWatcher(t *testing.T) {
	assert.Nil(t, listenConfig(nil))
}

func TestListenConfig_ReportsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))
	w, err := config.NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	got := make(chan tea.Msg, 1)
	go func() { got <- listenConfig(w)() }()

	require.NoError(t, os.WriteFile(path, []byte(`{"ui":{"theme":"light"}}`), 0644))
	select {
	case msg := <-got:
		assert.IsType(t, configChangedMsg{}, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("no config change reported")
	}
}

func TestListenConfig_StopUnblocksPendingListen(t *testing.T) {
	w, err := config.NewWatcher(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	got := make(chan tea.Msg, 1)
	go func() { got <- listenConfig(w)() }()

	w.Stop()
	select {
	case msg := <-got:
		assert.Nil(t, msg)
	case <-time.After(2 * time.Second):
		t.Fatal("listen still blocked after stop")
	}
}
