// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/podium/internal/models"
	"github.com/tomtom215/podium/internal/stats"
	"github.com/tomtom215/podium/internal/validation"
)

// Drivers lists every driver sorted by full name.
//
// GET /api/drivers
func (h *Handler) Drivers(w http.ResponseWriter, r *http.Request) {
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		return eng.ListDrivers()
	})
}

// DriverYears lists the seasons a driver raced in, newest first.
//
// GET /api/driveryears/{driver}
func (h *Handler) DriverYears(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverParams(chi.URLParam(r, "driver"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		years, err := eng.DriverSeasons(p.Driver)
		if err != nil {
			return nil, err
		}
		return &models.DriverSeasonsResponse{Driver: p.Driver, AvailableYears: years}, nil
	})
}

// DriverPoints returns points per Grand Prix for one season.
//
// GET /api/driverpoints/{driver}/{year}
func (h *Handler) DriverPoints(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverYearParams(chi.URLParam(r, "driver"), chi.URLParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		points, err := eng.DriverPointsByRound(p.Driver, p.Year)
		if err != nil {
			return nil, err
		}
		return &models.PointsByRoundResponse{Driver: p.Driver, SeasonYear: p.Year, PointsByRound: points}, nil
	})
}

// DriverPodiums returns podium finishes per Grand Prix for one season.
//
// GET /api/driverpodiums/{driver}/{year}
func (h *Handler) DriverPodiums(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverYearParams(chi.URLParam(r, "driver"), chi.URLParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		podiums, err := eng.DriverPodiumsByRound(p.Driver, p.Year)
		if err != nil {
			return nil, err
		}
		return &models.PodiumsByRoundResponse{Driver: p.Driver, SeasonYear: p.Year, PodiumsByRound: podiums}, nil
	})
}

// DriverStandings returns the whole season's standings table. The driver
// segment is echoed back and does not filter.
//
// GET /api/driverstandings/{driver}/{year}
func (h *Handler) DriverStandings(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverYearParams(chi.URLParam(r, "driver"), chi.URLParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		return eng.SeasonStandings(p.Year, p.Driver)
	})
}

// DriverStartingPositions returns the grid slot per Grand Prix for one season.
//
// GET /api/driverstartingpositions/{driver}/{year}
func (h *Handler) DriverStartingPositions(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverYearParams(chi.URLParam(r, "driver"), chi.URLParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		grid, err := eng.DriverStartingPositions(p.Driver, p.Year)
		if err != nil {
			return nil, err
		}
		return &models.StartingPositionsResponse{Driver: p.Driver, SeasonYear: p.Year, StartingPositions: grid}, nil
	})
}

// DriverPodiumsBySeason returns the podium count of every season.
//
// GET /api/driverpodiumsbyseason/{driver}
func (h *Handler) DriverPodiumsBySeason(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverParams(chi.URLParam(r, "driver"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		seasons, err := eng.DriverPodiumsBySeason(p.Driver)
		if err != nil {
			return nil, err
		}
		return &models.PodiumsBySeasonResponse{Driver: p.Driver, PodiumsBySeason: seasons}, nil
	})
}

// CompareDrivers lines up the standings of two drivers round by round.
//
// GET /api/compare_drivers/{driver1}/{driver2}/{year}
func (h *Handler) CompareDrivers(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewCompareParams(chi.URLParam(r, "driver1"), chi.URLParam(r, "driver2"), chi.URLParam(r, "year"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		rounds, err := eng.CompareDrivers(p.Driver1, p.Driver2, p.Year)
		if err != nil {
			return nil, err
		}
		return &models.CompareDriversResponse{
			Driver1:           p.Driver1,
			Driver2:           p.Driver2,
			SeasonYear:        p.Year,
			CombinedStandings: rounds,
		}, nil
	})
}

// DriverStats returns career totals for one driver.
//
// GET /api/driverstats/{driver}
func (h *Handler) DriverStats(w http.ResponseWriter, r *http.Request) {
	p, verr := validation.NewDriverParams(chi.URLParam(r, "driver"))
	if verr != nil {
		respondValidationError(w, r, verr)
		return
	}
	h.serveStats(w, r, func(eng *stats.Engine) (interface{}, error) {
		career, err := eng.DriverCareerStats(p.Driver)
		if err != nil {
			return nil, err
		}
		return &models.DriverStatsResponse{Driver: p.Driver, CareerStats: career}, nil
	})
}
