// Package watcher reports changes to a single file.
package watcher

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches one file through its directory, so editors that save
// by renaming a temporary file are noticed too
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// NewFileWatcher starts watching path. Bursts of events within debounce are
// reported once.
func NewFileWatcher(path string, debounce time.Duration, log *slog.Logger) (*FileWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	if log == nil {
		log = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(absPath)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &FileWatcher{
		watcher:  watcher,
		path:     absPath,
		debounce: debounce,
		log:      log,
	}, nil
}

// Path returns the absolute path being watched
func (fw *FileWatcher) Path() string {
	return fw.path
}

// Run calls onChange after each debounced change until ctx is done. The
// callback runs on the caller's goroutine.
func (fw *FileWatcher) Run(ctx context.Context, onChange func(path string)) error {
	timer := time.NewTimer(fw.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			fw.log.Debug("file event", "op", event.Op.String(), "path", event.Name)
			timer.Reset(fw.debounce)

		case <-timer.C:
			onChange(fw.path)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Warn("watcher error", "err", err)
		}
	}
}

// Close stops the watcher
func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
