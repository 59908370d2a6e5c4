// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package services

import (
	"context"
	"errors"
	"fmt"
)

// ErrWatcherExited is returned by Serve when the watch loop ends while the
// service context is still live, so suture restarts it.
var ErrWatcherExited = errors.New("dataset watcher exited unexpectedly")

// StartStopper is the lifecycle of a background component that owns its
// own goroutine. Done is closed when that goroutine exits.
//
// Satisfied by *dataset.Watcher.
type StartStopper interface {
	Start(ctx context.Context) error
	Stop()
	IsRunning() bool
	Done() <-chan struct{}
}

// DatasetWatcherService runs the dataset file watcher under suture.
//
// It adapts Start/Stop to suture's Serve:
//  1. Start(ctx) begins watching the dataset file
//  2. Serve blocks until the context is canceled or the watch loop exits
//  3. Stop() waits for the watch goroutine to exit
//
// A Start failure (for example a missing directory) or a loop that exits on
// its own is returned as an error so suture restarts the service with backoff.
//
//	watcher := dataset.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, store)
//	tree.AddDataService(services.NewDatasetWatcherService(watcher))
type DatasetWatcherService struct {
	watcher StartStopper
	name    string
}

// NewDatasetWatcherService creates a new dataset watcher service wrapper.
func NewDatasetWatcherService(watcher StartStopper) *DatasetWatcherService {
	return &DatasetWatcherService{
		watcher: watcher,
		name:    "dataset-watcher",
	}
}

// Serve implements suture.Service.
func (s *DatasetWatcherService) Serve(ctx context.Context) error {
	if err := s.watcher.Start(ctx); err != nil {
		return fmt.Errorf("dataset watcher start failed: %w", err)
	}

	select {
	case <-ctx.Done():
		s.watcher.Stop()
		return ctx.Err()
	case <-s.watcher.Done():
		s.watcher.Stop()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return ErrWatcherExited
	}
}

// String implements fmt.Stringer for logging.
func (s *DatasetWatcherService) String() string {
	return s.name
}

// IsRunning reports whether the wrapped watcher is active.
func (s *DatasetWatcherService) IsRunning() bool {
	return s.watcher.IsRunning()
}
