// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package stats

import (
	"cmp"
	"math"
	"slices"
	"strings"

	"github.com/tomtom215/podium/internal/models"
)

// ListDrivers returns every driver once, sorted by full name (byte order).
// The name of a driver's first row is used.
func (e *Engine) ListDrivers() ([]models.DriverSummary, error) {
	return run(e, OpListDrivers, func(rows []models.RaceResult) ([]models.DriverSummary, error) {
		seen := make(map[string]struct{})
		out := make([]models.DriverSummary, 0)

		for i := range rows {
			if _, ok := seen[rows[i].Driver]; ok {
				continue
			}
			seen[rows[i].Driver] = struct{}{}
			out = append(out, models.DriverSummary{
				Driver:   rows[i].Driver,
				FullName: rows[i].FullName(),
			})
		}

		slices.SortStableFunc(out, func(a, b models.DriverSummary) int {
			return strings.Compare(a.FullName, b.FullName)
		})
		return out, nil
	})
}

// DriverSeasons returns the years driver raced in, most recent first.
func (e *Engine) DriverSeasons(driver string) ([]int, error) {
	return run(e, OpDriverSeasons, func(rows []models.RaceResult) ([]int, error) {
		years := make([]int, 0)
		seen := make(map[int]struct{})

		for i := range rows {
			if rows[i].Driver != driver {
				continue
			}
			if _, ok := seen[rows[i].Year]; ok {
				continue
			}
			seen[rows[i].Year] = struct{}{}
			years = append(years, rows[i].Year)
		}

		slices.SortFunc(years, func(a, b int) int { return cmp.Compare(b, a) })
		return years, nil
	})
}

// DriverPodiumsBySeason counts driver's podium finishes per season, in
// ascending year order. Seasons without a podium are absent.
func (e *Engine) DriverPodiumsBySeason(driver string) ([]models.SeasonPodiums, error) {
	return run(e, OpDriverPodiumsBySeason, func(rows []models.RaceResult) ([]models.SeasonPodiums, error) {
		idx := filter(rows, func(r *models.RaceResult) bool { return r.Driver == driver })
		var podiums []int
		for _, i := range idx {
			if err := checkPosition(&rows[i]); err != nil {
				return nil, err
			}
			if rows[i].IsPodium() {
				podiums = append(podiums, i)
			}
		}

		groups := partitionBy(rows, podiums, byYear)
		out := make([]models.SeasonPodiums, 0, groups.Len())
		groups.each(func(year int, members []int) {
			out = append(out, models.SeasonPodiums{Year: year, Podiums: len(members)})
		})

		slices.SortFunc(out, func(a, b models.SeasonPodiums) int { return cmp.Compare(a.Year, b.Year) })
		return out, nil
	})
}

// DriverCareerStats computes every career aggregate from a single pass over
// the driver's rows.
func (e *Engine) DriverCareerStats(driver string) (models.CareerStats, error) {
	return run(e, OpDriverCareerStats, func(rows []models.RaceResult) (models.CareerStats, error) {
		idx := filter(rows, func(r *models.RaceResult) bool { return r.Driver == driver })

		career := models.CareerStats{
			MostSuccessfulTrack: models.NoData,
			BestWorstFinishes:   make([]models.TrackFinish, 0),
		}
		if len(idx) == 0 {
			return career, nil
		}

		races := make(map[int64]struct{}, len(idx))
		gridSum := 0
		best := math.MaxInt

		for _, i := range idx {
			r := &rows[i]
			if err := checkPosition(r); err != nil {
				return models.CareerStats{}, err
			}

			career.TotalLaps += r.Laps
			career.TotalPoints += r.Points
			races[r.RaceID] = struct{}{}
			gridSum += r.Grid

			if r.IsWin() {
				career.TotalWins++
			}
			if r.IsPodium() {
				career.TotalPodiums++
			}
			if r.HasFastestLap() {
				career.TotalFastestLaps++
			}
			if r.IsPole() {
				career.TotalPolePositions++
			}
			best = min(best, r.PositionOrder)
		}

		career.TotalRaces = len(races)

		avg := int(math.Floor(float64(gridSum) / float64(len(idx))))
		career.AvgQualifyingPos = &avg
		career.BestPosition = &best
		career.MostSuccessfulTrack = mostFrequentTrackAt(rows, idx, best)

		partitionBy(rows, idx, byGPName).each(func(gp string, members []int) {
			finish := models.TrackFinish{GPName: gp, Best: math.MaxInt, Worst: math.MinInt}
			for _, i := range members {
				finish.Best = min(finish.Best, rows[i].PositionOrder)
				finish.Worst = max(finish.Worst, rows[i].PositionOrder)
			}
			career.BestWorstFinishes = append(career.BestWorstFinishes, finish)
		})

		return career, nil
	})
}

// mostFrequentTrackAt returns the gp_name occurring most often among rows
// finished at position. Ties go to the track seen first.
func mostFrequentTrackAt(rows []models.RaceResult, idx []int, position int) string {
	atPosition := make([]int, 0, len(idx))
	for _, i := range idx {
		if rows[i].PositionOrder == position {
			atPosition = append(atPosition, i)
		}
	}

	track, count := models.NoData, 0
	partitionBy(rows, atPosition, byGPName).each(func(gp string, members []int) {
		if len(members) > count {
			track, count = gp, len(members)
		}
	})
	return track
}
