// Package watch notifies the app when note files change on disk, so edits
// made by another process show up without restarting.
package watch

import (
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// Watcher watches the notes directory and emits a signal after a burst of
// changes settles.
type Watcher struct {
	fw     *fsnotify.Watcher
	events chan struct{}
	logger *slog.Logger
}

// New creates a watcher for the notes directory.
func New(dir string, logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		fw:     fw,
		events: make(chan struct{}, 1),
		logger: logger,
	}
	go w.loop()
	return w, nil
}

// Events delivers one signal per settled burst of note file changes.
// The channel closes when the watcher is closed.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops watching and closes the events channel.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	// Debounce timer
	var debounceTimer *time.Timer

	// Protect against sending to closed channel from timer callback
	var closed bool
	var mu sync.Mutex

	defer func() {
		mu.Lock()
		closed = true
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
		mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !isNoteFile(event.Name) {
				continue
			}

			// Debounce rapid events
			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(debounceDelay, func() {
				mu.Lock()
				defer mu.Unlock()

				if closed {
					return
				}
				select {
				case w.events <- struct{}{}:
				default:
					// Signal already pending
				}
			})
			mu.Unlock()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "error", err)
		}
	}
}

// isNoteFile reports whether name looks like a note file. Temp files from
// atomic writes are skipped; the rename that follows them is what counts.
func isNoteFile(name string) bool {
	base := filepath.Base(name)
	if strings.HasPrefix(base, ".tmp.") {
		return false
	}
	return strings.HasSuffix(base, ".json")
}
