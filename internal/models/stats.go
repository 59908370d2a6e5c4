// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package models

// NoData is the track sentinel reported for a driver without any results.
const NoData = "N/A"

// DriverSummary identifies a driver in the driver list.
type DriverSummary struct {
	Driver   string `json:"driver"`
	FullName string `json:"full_name"`
}

// RoundPoints is the points a driver scored at one grand prix.
type RoundPoints struct {
	GPName string  `json:"gp_name"`
	Points float64 `json:"points"`
	Round  int     `json:"round"`
}

// RoundPodiums is the podium count for one grand prix. Podiums is always > 0.
type RoundPodiums struct {
	GPName  string `json:"gp_name"`
	Podiums int    `json:"podiums"`
	Round   int    `json:"round"`
}

// RoundGrid is the starting position a driver took at one grand prix.
type RoundGrid struct {
	GPName string `json:"gp_name"`
	Grid   int    `json:"grid"`
	Round  int    `json:"round"`
}

// StandingEntry is one driver's cumulative points after a round.
type StandingEntry struct {
	Driver          string  `json:"driver"`
	Round           int     `json:"round"`
	PointsStandings float64 `json:"points_standings"`
}

// SeasonPodiums is the podium count for one season.
type SeasonPodiums struct {
	Year    int `json:"year"`
	Podiums int `json:"podiums"`
}

// RoundComparison puts two drivers' standings side by side for one round.
// A driver who did not race the round reports 0.
type RoundComparison struct {
	Round            int     `json:"round"`
	Driver1Standings float64 `json:"driver1_standings"`
	Driver2Standings float64 `json:"driver2_standings"`
}

// TrackFinish holds the best and worst classification at one grand prix.
type TrackFinish struct {
	GPName string `json:"gp_name"`
	Best   int    `json:"Best Finish"`
	Worst  int    `json:"Worst Finish"`
}

// CareerStats aggregates a driver's whole career.
//
// AvgQualifyingPos and BestPosition are nil for a driver with no results,
// and MostSuccessfulTrack is NoData in that case.
type CareerStats struct {
	TotalLaps           int           `json:"total_laps"`
	TotalRaces          int           `json:"total_races"`
	TotalWins           int           `json:"total_wins"`
	TotalPodiums        int           `json:"total_podiums"`
	TotalFastestLaps    int           `json:"total_fastest_laps"`
	TotalPolePositions  int           `json:"total_pole_positions"`
	AvgQualifyingPos    *int          `json:"avg_qualifying_pos"`
	BestPosition        *int          `json:"best_position"`
	MostSuccessfulTrack string        `json:"most_successful_track"`
	BestWorstFinishes   []TrackFinish `json:"best_worst_finishes"`
	TotalPoints         float64       `json:"total_points"`
}
