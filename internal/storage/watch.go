package storage

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to a store's backing file.
// The parent directory is watched because the file store replaces the
// file by rename.
type Watcher struct {
	fw      *fsnotify.Watcher
	name    string
	logger  *log.Logger
	changes chan struct{}
}

// NewWatcher starts watching path. Errors from the watcher are logged.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("storage: cannot create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("storage: cannot watch %s: %w", path, err)
	}

	w := &Watcher{
		fw:      fw,
		name:    filepath.Base(path),
		logger:  logger,
		changes: make(chan struct{}, 1),
	}
	go w.loop()
	return w, nil
}

// Changes delivers a signal after the file was written, created, renamed
// or removed. Bursts collapse into one pending signal. The channel is
// closed when the watcher stops.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.changes)
	for {
		select {
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != w.name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("score watcher error", "err", err)
		}
	}
}
