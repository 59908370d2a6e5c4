// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dataset

import (
	"slices"
	"time"

	"github.com/tomtom215/podium/internal/models"
)

// Snapshot is an immutable view of the race results table.
type Snapshot struct {
	rows       []models.RaceResult
	source     string
	loadedAt   time.Time
	generation uint64
}

// NewSnapshot copies rows into a new snapshot with generation 0.
func NewSnapshot(rows []models.RaceResult, source string) *Snapshot {
	return newSnapshot(rows, source, 0)
}

func newSnapshot(rows []models.RaceResult, source string, generation uint64) *Snapshot {
	return &Snapshot{
		rows:       slices.Clone(rows),
		source:     source,
		loadedAt:   time.Now().UTC(),
		generation: generation,
	}
}

// Rows returns the rows in file order. The slice is shared by every reader
// of the snapshot and must not be modified.
func (s *Snapshot) Rows() []models.RaceResult {
	return s.rows
}

// Len returns the number of rows.
func (s *Snapshot) Len() int {
	return len(s.rows)
}

// Source returns the path the snapshot was loaded from.
func (s *Snapshot) Source() string {
	return s.source
}

// LoadedAt returns when the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Generation returns the publish counter value assigned by the Store.
func (s *Snapshot) Generation() uint64 {
	return s.generation
}

// Info summarizes the snapshot for the dataset endpoint.
func (s *Snapshot) Info() models.DatasetInfo {
	drivers := make(map[string]struct{})
	seasons := make(map[int]struct{})
	for i := range s.rows {
		drivers[s.rows[i].Driver] = struct{}{}
		seasons[s.rows[i].Year] = struct{}{}
	}

	return models.DatasetInfo{
		Source:     s.source,
		Rows:       len(s.rows),
		Drivers:    len(drivers),
		Seasons:    len(seasons),
		LoadedAt:   s.loadedAt,
		Generation: s.generation,
	}
}
