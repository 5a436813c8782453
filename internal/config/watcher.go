package config

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const watchDebounce = 100 * time.Millisecond

// Watcher reports changes to the config file made outside the program.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	file      string
	events    chan struct{}
	stop      chan struct{}
	mu        sync.Mutex
	stopped   bool
}

// NewWatcher watches the config file at path. The parent directory is
// watched so editors that replace the file are still seen.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatcher.Add(filepath.Dir(path)); err != nil {
		fsWatcher.Close()
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsWatcher,
		file:      filepath.Base(path),
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Events returns the channel that receives change notifications.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Done is closed when the watcher stops. Events is never closed, so
// listeners select on both.
func (w *Watcher) Done() <-chan struct{} {
	return w.stop
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return
	}
	w.stopped = true

	close(w.stop)
	w.fsWatcher.Close()
}

func (w *Watcher) run() {
	var debounceTimer *time.Timer

	for {
		select {
		case <-w.stop:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.file {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				select {
				case w.events <- struct{}{}:
				default:
				}
			})

		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		}
	}
}
