// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package models

// Podium and classification thresholds.
const (
	// WinPosition is the finishing position of a race winner.
	WinPosition = 1

	// PodiumCutoff is the worst finishing position that still counts as a podium.
	PodiumCutoff = 3

	// PolePosition is the grid slot of the fastest qualifier.
	PolePosition = 1

	// FastestLapRank marks the driver who set the fastest lap of a race.
	FastestLapRank = 1
)

// RaceResult is one driver's result in one race.
//
// (Driver, RaceID) is unique across a dataset. Round is only meaningful inside
// a single season, and PointsStandings only inside a single (driver, season)
// pair, so neither may be compared across those partitions.
type RaceResult struct {
	Driver          string  `json:"driver"`
	Forename        string  `json:"forename"`
	Surname         string  `json:"surname"`
	Year            int     `json:"year"`
	Round           int     `json:"round"`
	GPName          string  `json:"gp_name"`
	Points          float64 `json:"points"`
	PointsStandings float64 `json:"points_standings"`
	PositionOrder   int     `json:"positionOrder"`
	Grid            int     `json:"grid"`
	Laps            int     `json:"laps"`
	FastestLapRank  *int    `json:"fastest_lap_rank"` // nil when the source had no rank
	RaceID          int64   `json:"raceId"`
}

// FullName returns "forename surname".
func (r *RaceResult) FullName() string {
	return r.Forename + " " + r.Surname
}

// IsWin reports whether the driver won the race.
func (r *RaceResult) IsWin() bool {
	return r.PositionOrder == WinPosition
}

// IsPodium reports whether the driver finished in the top three.
func (r *RaceResult) IsPodium() bool {
	return r.PositionOrder <= PodiumCutoff
}

// IsPole reports whether the driver started from pole.
func (r *RaceResult) IsPole() bool {
	return r.Grid == PolePosition
}

// HasFastestLap reports whether the driver set the fastest lap.
func (r *RaceResult) HasFastestLap() bool {
	return r.FastestLapRank != nil && *r.FastestLapRank == FastestLapRank
}
