// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dataset

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
	"github.com/tomtom215/podium/internal/models"
)

// ErrNoLoader is returned by Reload on a store built without a loader.
var ErrNoLoader = errors.New("dataset store has no loader")

// Store publishes snapshots atomically. Readers never block and never see a
// partially built snapshot.
type Store struct {
	loader Loader
	path   string

	current    atomic.Pointer[Snapshot]
	generation atomic.Uint64

	// reloadMu serializes reloads so two watchers or an admin request racing
	// a file event cannot publish out of order.
	reloadMu sync.Mutex
}

// NewStore creates an empty store that reloads path through loader.
func NewStore(loader Loader, path string) *Store {
	return &Store{
		loader: loader,
		path:   path,
	}
}

// Snapshot returns the current snapshot, or nil before the first publish.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Path returns the dataset file the store reloads from.
func (s *Store) Path() string {
	return s.path
}

// Publish makes rows the current snapshot and returns it.
func (s *Store) Publish(rows []models.RaceResult, source string) *Snapshot {
	snap := newSnapshot(rows, source, s.generation.Add(1))
	s.current.Store(snap)
	metrics.RecordDatasetPublish(snap.Len(), snap.Generation())
	return snap
}

// Reload parses the dataset file and publishes the result. On failure the
// previous snapshot stays current.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	if s.loader == nil {
		return nil, ErrNoLoader
	}

	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	start := time.Now()
	rows, err := s.loader.Load(ctx, s.path)
	metrics.RecordDatasetReload(time.Since(start), err)
	if err != nil {
		logging.Ctx(ctx).Error().Err(err).Str("path", s.path).Msg("Dataset reload failed, keeping previous snapshot")
		return nil, fmt.Errorf("reload dataset: %w", err)
	}

	snap := s.Publish(rows, s.path)
	logging.Ctx(ctx).Info().
		Str("path", s.path).
		Int("rows", snap.Len()).
		Uint64("generation", snap.Generation()).
		Dur("duration", time.Since(start)).
		Msg("Dataset snapshot published")

	return snap, nil
}
