package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/mmd/internal/core/domain"
	"go.trai.ch/zerr"
)

const eventChannelBuffer = 100

// Event signals that the watched file changed.
type Event struct {
	// Path is the absolute path of the watched file.
	Path string
}

// Watcher watches a single file for modifications using fsnotify. The
// parent directory is watched rather than the file itself, so editors
// that save by writing a temp file and renaming it over the target are
// still observed.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	target    string
	events    chan Event
}

// NewWatcher creates a new file watcher.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	return &Watcher{
		fsWatcher: fsWatcher,
		events:    make(chan Event, eventChannelBuffer),
	}, nil
}

// Start begins watching the file at path.
func (w *Watcher) Start(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	w.target = abs

	if err := w.fsWatcher.Add(filepath.Dir(abs)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "path", abs)
	}

	go w.processEvents(ctx)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	return w.fsWatcher.Close()
}

// Events returns the channel of change events. It is closed when the
// watcher stops or the context is canceled.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// processEvents filters raw fsnotify events down to changes of the target
// file.
func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != w.target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			select {
			case w.events <- Event{Path: w.target}:
			case <-ctx.Done():
				return
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Log error to stderr and continue processing.
			fmt.Fprintf(os.Stderr, "watch: file system error: %v\n", err)
		}
	}
}
