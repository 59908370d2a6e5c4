// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package models

import (
	"time"
)

// ErrorResponse is the body of every failed API request.
//
// Example:
//
//	{
//	  "error": "year must be a number",
//	  "request_id": "3f2b6c0e-8d1e-4a55-9a4e-2b0f6f1d9c11"
//	}
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// DriverSeasonsResponse lists the seasons a driver took part in, newest first.
type DriverSeasonsResponse struct {
	Driver         string `json:"driver"`
	AvailableYears []int  `json:"available_years"`
}

// PointsByRoundResponse wraps a driver's per-race points for one season.
type PointsByRoundResponse struct {
	Driver        string        `json:"driver"`
	SeasonYear    int           `json:"season_year"`
	PointsByRound []RoundPoints `json:"points_by_round"`
}

// PodiumsByRoundResponse wraps a driver's per-race podiums for one season.
type PodiumsByRoundResponse struct {
	Driver         string         `json:"driver"`
	SeasonYear     int            `json:"season_year"`
	PodiumsByRound []RoundPodiums `json:"podiums_by_round"`
}

// StandingsResponse wraps the full standings table of a season.
// Driver is echoed back and does not filter the table.
type StandingsResponse struct {
	Driver        string          `json:"driver"`
	SeasonYear    int             `json:"season_year"`
	StandingsData []StandingEntry `json:"standings_data"`
}

// StartingPositionsResponse wraps a driver's grid slots for one season.
type StartingPositionsResponse struct {
	Driver            string      `json:"driver"`
	SeasonYear        int         `json:"season_year"`
	StartingPositions []RoundGrid `json:"starting_positions"`
}

// PodiumsBySeasonResponse wraps a driver's podium count per season.
type PodiumsBySeasonResponse struct {
	Driver          string          `json:"driver"`
	PodiumsBySeason []SeasonPodiums `json:"podiums_by_season"`
}

// CompareDriversResponse wraps the round-by-round standings of two drivers.
type CompareDriversResponse struct {
	Driver1           string            `json:"driver1"`
	Driver2           string            `json:"driver2"`
	SeasonYear        int               `json:"season_year"`
	CombinedStandings []RoundComparison `json:"combined_standings"`
}

// DriverStatsResponse is CareerStats flattened next to the driver identifier.
type DriverStatsResponse struct {
	Driver string `json:"driver"`
	CareerStats
}

// DataResponse dumps every row of the current dataset snapshot.
type DataResponse struct {
	Data []RaceResult `json:"data"`
}

// DatasetInfo describes the snapshot currently being served.
type DatasetInfo struct {
	Source     string    `json:"source"`
	Rows       int       `json:"rows"`
	Drivers    int       `json:"drivers"`
	Seasons    int       `json:"seasons"`
	LoadedAt   time.Time `json:"loaded_at"`
	Generation uint64    `json:"generation"`
}

// ReloadResponse reports the outcome of a manual dataset reload.
type ReloadResponse struct {
	Status     string `json:"status"`
	Rows       int    `json:"rows"`
	Generation uint64 `json:"generation"`
}

// HealthStatus represents the health check response.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DatasetLoaded bool    `json:"dataset_loaded"`
	Rows          int     `json:"rows"`
	Uptime        float64 `json:"uptime_seconds"`
}
