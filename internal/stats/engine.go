// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package stats

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/metrics"
	"github.com/tomtom215/podium/internal/models"
)

// Operation names, used in errors and metric labels.
const (
	OpListDrivers             = "list_drivers"
	OpDriverSeasons           = "driver_seasons"
	OpDriverPointsByRound     = "driver_points_by_round"
	OpDriverPodiumsByRound    = "driver_podiums_by_round"
	OpDriverStartingPositions = "driver_starting_positions"
	OpSeasonStandings         = "season_standings"
	OpDriverPodiumsBySeason   = "driver_podiums_by_season"
	OpCompareDrivers          = "compare_drivers"
	OpDriverCareerStats       = "driver_career_stats"
)

var (
	// ErrNoSnapshot is returned when no dataset has been published yet.
	ErrNoSnapshot = errors.New("no dataset snapshot loaded")

	// ErrMalformedRow is returned when a row breaks a table invariant.
	ErrMalformedRow = errors.New("malformed row")
)

// OpError is the single failure value of an engine operation.
type OpError struct {
	Op  string
	Err error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OpError) Unwrap() error {
	return e.Err
}

// SnapshotProvider hands out the snapshot to compute against.
// *dataset.Store satisfies it.
type SnapshotProvider interface {
	Snapshot() *dataset.Snapshot
}

// Engine computes driver and season statistics.
type Engine struct {
	source SnapshotProvider
}

// NewEngine creates an engine reading from source.
func NewEngine(source SnapshotProvider) *Engine {
	return &Engine{source: source}
}

// pinned serves one fixed snapshot.
type pinned struct {
	snap *dataset.Snapshot
}

func (p pinned) Snapshot() *dataset.Snapshot { return p.snap }

// At returns an engine bound to snap. Every call on it sees the same rows
// even if the store publishes a newer snapshot in between.
func (e *Engine) At(snap *dataset.Snapshot) *Engine {
	return &Engine{source: pinned{snap: snap}}
}

// run executes fn against the current snapshot. A panic inside fn is
// converted into an *OpError so no partial result escapes.
func run[T any](e *Engine, op string, fn func(rows []models.RaceResult) (T, error)) (result T, err error) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			var zero T
			result = zero
			err = &OpError{Op: op, Err: fmt.Errorf("computation fault: %v", r)}
		}
		metrics.RecordEngineOperation(op, time.Since(start), err)
	}()

	snap := e.source.Snapshot()
	if snap == nil {
		return result, &OpError{Op: op, Err: ErrNoSnapshot}
	}

	result, err = fn(snap.Rows())
	if err != nil {
		var zero T
		return zero, &OpError{Op: op, Err: err}
	}
	return result, nil
}

// checkPosition enforces positionOrder >= 1 for operations that rank finishes.
func checkPosition(r *models.RaceResult) error {
	if r.PositionOrder < 1 {
		return fmt.Errorf("%w: driver %q race %d has positionOrder %d", ErrMalformedRow, r.Driver, r.RaceID, r.PositionOrder)
	}
	return nil
}
