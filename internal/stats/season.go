// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package stats

import (
	"cmp"
	"slices"

	"github.com/tomtom215/podium/internal/models"
)

// Per-round operations group a (driver, year) subset by gp_name. A grand prix
// is expected to map to exactly one round within a season; if the data holds
// several rounds under one name, the first-seen round is used.

// DriverPointsByRound sums the driver's points per grand prix in year, ordered by round.
func (e *Engine) DriverPointsByRound(driver string, year int) ([]models.RoundPoints, error) {
	return run(e, OpDriverPointsByRound, func(rows []models.RaceResult) ([]models.RoundPoints, error) {
		idx := filter(rows, driverSeason(driver, year))
		groups := partitionBy(rows, idx, byGPName)

		out := make([]models.RoundPoints, 0, groups.Len())
		groups.each(func(gp string, members []int) {
			var points float64
			for _, i := range members {
				points += rows[i].Points
			}
			out = append(out, models.RoundPoints{
				GPName: gp,
				Points: points,
				Round:  rows[members[0]].Round,
			})
		})

		slices.SortStableFunc(out, func(a, b models.RoundPoints) int { return cmp.Compare(a.Round, b.Round) })
		return out, nil
	})
}

// DriverPodiumsByRound counts the driver's podium finishes per grand prix in
// year, ordered by round. Grand prix without a podium are absent.
func (e *Engine) DriverPodiumsByRound(driver string, year int) ([]models.RoundPodiums, error) {
	return run(e, OpDriverPodiumsByRound, func(rows []models.RaceResult) ([]models.RoundPodiums, error) {
		inSeason := driverSeason(driver, year)
		for _, i := range filter(rows, inSeason) {
			if err := checkPosition(&rows[i]); err != nil {
				return nil, err
			}
		}

		idx := filter(rows, func(r *models.RaceResult) bool {
			return inSeason(r) && r.IsPodium()
		})
		groups := partitionBy(rows, idx, byGPName)

		out := make([]models.RoundPodiums, 0, groups.Len())
		groups.each(func(gp string, members []int) {
			out = append(out, models.RoundPodiums{
				GPName:  gp,
				Podiums: len(members),
				Round:   rows[members[0]].Round,
			})
		})

		slices.SortStableFunc(out, func(a, b models.RoundPodiums) int { return cmp.Compare(a.Round, b.Round) })
		return out, nil
	})
}

// DriverStartingPositions returns the first-seen grid slot per grand prix in
// year, ordered by round.
func (e *Engine) DriverStartingPositions(driver string, year int) ([]models.RoundGrid, error) {
	return run(e, OpDriverStartingPositions, func(rows []models.RaceResult) ([]models.RoundGrid, error) {
		idx := filter(rows, driverSeason(driver, year))
		groups := partitionBy(rows, idx, byGPName)

		out := make([]models.RoundGrid, 0, groups.Len())
		groups.each(func(gp string, members []int) {
			first := &rows[members[0]]
			out = append(out, models.RoundGrid{
				GPName: gp,
				Grid:   first.Grid,
				Round:  first.Round,
			})
		})

		slices.SortStableFunc(out, func(a, b models.RoundGrid) int { return cmp.Compare(a.Round, b.Round) })
		return out, nil
	})
}

// SeasonStandings returns every row of year as a standings entry, in file
// order, for all drivers. selectedDriver is echoed back and does not filter.
func (e *Engine) SeasonStandings(year int, selectedDriver string) (models.StandingsResponse, error) {
	return run(e, OpSeasonStandings, func(rows []models.RaceResult) (models.StandingsResponse, error) {
		entries := make([]models.StandingEntry, 0)
		for i := range rows {
			if rows[i].Year != year {
				continue
			}
			entries = append(entries, models.StandingEntry{
				Driver:          rows[i].Driver,
				Round:           rows[i].Round,
				PointsStandings: rows[i].PointsStandings,
			})
		}

		return models.StandingsResponse{
			Driver:        selectedDriver,
			SeasonYear:    year,
			StandingsData: entries,
		}, nil
	})
}

// CompareDrivers lines up the standings of two drivers round by round in year.
// The result covers every round either driver raced; the other side reads 0.
func (e *Engine) CompareDrivers(driverA, driverB string, year int) ([]models.RoundComparison, error) {
	return run(e, OpCompareDrivers, func(rows []models.RaceResult) ([]models.RoundComparison, error) {
		seriesA := make(map[int]float64)
		seriesB := make(map[int]float64)

		for i := range rows {
			r := &rows[i]
			if r.Year != year {
				continue
			}
			if r.Driver == driverA {
				firstPerRound(seriesA, r)
			}
			if r.Driver == driverB {
				firstPerRound(seriesB, r)
			}
		}

		rounds := make([]int, 0, len(seriesA)+len(seriesB))
		for round := range seriesA {
			rounds = append(rounds, round)
		}
		for round := range seriesB {
			if _, shared := seriesA[round]; !shared {
				rounds = append(rounds, round)
			}
		}
		slices.Sort(rounds)

		out := make([]models.RoundComparison, 0, len(rounds))
		for _, round := range rounds {
			out = append(out, models.RoundComparison{
				Round:            round,
				Driver1Standings: seriesA[round],
				Driver2Standings: seriesB[round],
			})
		}
		return out, nil
	})
}

// firstPerRound keeps the first standings value seen for each round.
func firstPerRound(series map[int]float64, r *models.RaceResult) {
	if _, seen := series[r.Round]; !seen {
		series[r.Round] = r.PointsStandings
	}
}

// driverSeason matches rows of driver in year.
func driverSeason(driver string, year int) func(r *models.RaceResult) bool {
	return func(r *models.RaceResult) bool {
		return r.Driver == driver && r.Year == year
	}
}
