// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dataset

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/podium/internal/logging"
)

// DefaultDebounce is the quiet period after the last file event before a reload.
const DefaultDebounce = 500 * time.Millisecond

// ErrWatcherRunning is returned by Start when the watcher is already active.
var ErrWatcherRunning = errors.New("dataset watcher already running")

// Reloader rebuilds and publishes a snapshot.
type Reloader interface {
	Reload(ctx context.Context) (*Snapshot, error)
}

// Watcher reloads the dataset whenever its file changes on disk.
//
// The parent directory is watched rather than the file itself so that
// atomic replace-by-rename (the usual way of shipping a new CSV) is seen.
type Watcher struct {
	path     string
	debounce time.Duration
	reloader Reloader
	logger   zerolog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	fsw     *fsnotify.Watcher
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewWatcher creates a watcher for path. A non-positive debounce uses DefaultDebounce.
func NewWatcher(path string, debounce time.Duration, reloader Reloader) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		reloader: reloader,
		logger:   logging.WithComponent("dataset-watcher"),
	}
}

// Start begins watching in a background goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.running.Load() {
		return ErrWatcherRunning
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close() //nolint:errcheck // best-effort cleanup on error path
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.fsw = fsw
	w.done = make(chan struct{})
	w.running.Store(true)

	w.wg.Add(1)
	go w.loop(runCtx, fsw, w.done)

	w.logger.Info().Str("path", w.path).Dur("debounce", w.debounce).Msg("Watching dataset for changes")
	return nil
}

// Stop cancels the watch loop and waits for it to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Done is closed when the loop started by the last Start exits, whether
// through Stop, context cancellation or fsnotify shutting down. It is nil
// before the first Start.
func (w *Watcher) Done() <-chan struct{} {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.done
}

// IsRunning reports whether the watch loop is active.
func (w *Watcher) IsRunning() bool {
	return w.running.Load()
}

func (w *Watcher) loop(ctx context.Context, fsw *fsnotify.Watcher, done chan struct{}) {
	defer w.wg.Done()
	defer close(done)
	defer w.running.Store(false)
	defer fsw.Close() //nolint:errcheck // nothing useful to do on close failure

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				w.logger.Warn().Msg("fsnotify event channel closed, watch loop exiting")
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug().Str("op", event.Op.String()).Msg("Dataset file changed")
			timer.Reset(w.debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			reloadCtx := logging.ContextWithNewCorrelationID(ctx)
			if _, err := w.reloader.Reload(reloadCtx); err != nil {
				w.logger.Warn().Err(err).Msg("Reload after file change failed")
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				w.logger.Warn().Msg("fsnotify error channel closed, watch loop exiting")
				return
			}
			w.logger.Warn().Err(err).Msg("fsnotify error")
		}
	}
}

// relevant reports whether event concerns the dataset file and may have changed its content.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
