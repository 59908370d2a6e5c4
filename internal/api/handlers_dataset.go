// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"net/http"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/models"
	"github.com/tomtom215/podium/internal/stats"
)

// homeBanner is the plain-text body of GET /.
const homeBanner = "Podium analytics backend is running"

// Home confirms the service is up.
//
// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(homeBanner)); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write banner")
	}
}

// Data dumps every row of the current snapshot in file order.
//
// GET /api/data
func (h *Handler) Data(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	if snap == nil {
		respondEngineError(w, r, stats.ErrNoSnapshot)
		return
	}
	rows := snap.Rows()
	if rows == nil {
		rows = []models.RaceResult{}
	}
	respondJSON(w, r, http.StatusOK, &models.DataResponse{Data: rows})
}

// DatasetInfo describes the snapshot being served.
//
// GET /api/dataset
func (h *Handler) DatasetInfo(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	if snap == nil {
		respondEngineError(w, r, stats.ErrNoSnapshot)
		return
	}
	info := snap.Info()
	respondJSON(w, r, http.StatusOK, &info)
}

// Reload re-reads the dataset file and swaps in the new snapshot. When the
// read fails the previous snapshot keeps serving.
//
// POST /api/admin/reload
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	snap, err := h.store.Reload(r.Context())
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, "dataset reload failed", err)
		return
	}
	logging.Ctx(r.Context()).Info().
		Int("rows", snap.Len()).
		Uint64("generation", snap.Generation()).
		Msg("Dataset reloaded on request")

	respondJSON(w, r, http.StatusOK, &models.ReloadResponse{
		Status:     "reloaded",
		Rows:       snap.Len(),
		Generation: snap.Generation(),
	})
}
