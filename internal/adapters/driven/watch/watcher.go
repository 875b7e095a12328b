// Package watch provides an fsnotify directory watcher that reports
// file changes to a handler. Hidden paths and directories are filtered
// out before the handler sees them.
package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/aksara-labs/lexitree-cli/internal/logger"
)

// ChangeType classifies what happened to a watched file.
type ChangeType string

const (
	// ChangeCreated means the file appeared.
	ChangeCreated ChangeType = "created"
	// ChangeUpdated means the file content changed.
	ChangeUpdated ChangeType = "updated"
	// ChangeRemoved means the file was removed or renamed away.
	ChangeRemoved ChangeType = "removed"
)

// Change is one file event after filtering.
type Change struct {
	// Path is the absolute path fsnotify reported.
	Path string

	// Type classifies the event.
	Type ChangeType
}

// Handler receives changes as they happen, on the watcher's goroutine.
type Handler func(change Change)

// Watcher follows one directory and reports visible file changes.
type Watcher struct {
	dir     string
	handler Handler
	fsw     *fsnotify.Watcher
}

// New creates a watcher for the given directory. Close releases it.
func New(dir string, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch: handler is required")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: stat %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("watch: %s is not a directory", dir)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch: watch %s: %w", dir, err)
	}

	return &Watcher{dir: dir, handler: handler, fsw: fsw}, nil
}

// Run delivers changes to the handler until the context is cancelled or
// the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	logger.Debug("Watching directory: %s", w.dir)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if change := w.handleEvent(event); change != nil {
				w.handler(*change)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch: %s: %w", w.dir, err)
		}
	}
}

// Close stops the watcher and releases its resources.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// handleEvent turns a raw fsnotify event into a Change, or nil when the
// event is for a hidden path, a directory, or an operation we ignore.
func (w *Watcher) handleEvent(event fsnotify.Event) *Change {
	if isHidden(event.Name) {
		return nil
	}

	// Remove and rename come first: the path no longer exists to stat.
	if event.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
		return &Change{Path: event.Name, Type: ChangeRemoved}
	}

	if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return nil
	}

	info, err := os.Stat(event.Name)
	if err != nil {
		logger.Debug("Ignoring event for %s: %v", event.Name, err)
		return nil
	}
	if info.IsDir() {
		return nil
	}

	if event.Op&fsnotify.Create != 0 {
		return &Change{Path: event.Name, Type: ChangeCreated}
	}
	return &Change{Path: event.Name, Type: ChangeUpdated}
}

// isHidden reports whether any element of the path starts with a dot.
// The path elements "." and ".." do not count.
func isHidden(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "." || part == ".." {
			continue
		}
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}
