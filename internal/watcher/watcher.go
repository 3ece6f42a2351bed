// Package watcher notifies listeners when the course content directory
// changes, so the search session can rebuild its index. Rapid event bursts
// (editor saves touch a file several times) are debounced into a single
// notification.
package watcher

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default coalescing window for file events.
const DefaultDebounce = 300 * time.Millisecond

// Watcher watches a content directory and emits one notification per
// debounced burst of changes to the content files.
type Watcher struct {
	dir      string
	debounce time.Duration
	logger   *slog.Logger

	fsw     *fsnotify.Watcher
	changes chan struct{}

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New creates a watcher over dir. A non-positive debounce falls back to
// DefaultDebounce.
func New(dir string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	return &Watcher{
		dir:      dir,
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
		changes:  make(chan struct{}, 1),
	}, nil
}

// Changes returns the notification channel. At most one notification is
// pending at a time; a reload is due whenever a value is received.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Run processes file events until the context is cancelled. Watcher errors
// are logged and never fatal; a broken edit leaves the previous index
// serving.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			w.stop()
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isContentEvent(event) {
				continue
			}
			w.logger.Debug("content file event",
				slog.String("file", filepath.Base(event.Name)),
				slog.String("op", event.Op.String()))
			w.schedule()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", slog.String("error", err.Error()))
		}
	}
}

// schedule arms (or re-arms) the debounce timer.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.notify)
}

// notify delivers one coalesced notification, dropping it if one is already
// pending.
func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
	default:
	}
}

func (w *Watcher) stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
	_ = w.fsw.Close()
}

// isContentEvent filters for writes to YAML files; editors also produce
// chmod noise and temp-file churn we do not care about.
func isContentEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := filepath.Ext(event.Name)
	return ext == ".yaml" || ext == ".yml"
}
