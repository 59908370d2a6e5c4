// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/podium/internal/models"
)

// Health reports overall status. It always answers 200; "degraded" means no
// rows are loaded.
//
// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	rows := 0
	if snap := h.store.Snapshot(); snap != nil {
		rows = snap.Len()
	}

	status := "healthy"
	if rows == 0 {
		status = "degraded"
	}

	respondJSON(w, r, http.StatusOK, &models.HealthStatus{
		Status:        status,
		Version:       h.version,
		DatasetLoaded: rows > 0,
		Rows:          rows,
		Uptime:        time.Since(h.startTime).Seconds(),
	})
}

// HealthLive is the Kubernetes liveness probe.
//
// GET /api/health/live
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "alive"})
}

// HealthReady is the Kubernetes readiness probe: ready once a snapshot with
// at least one row is loaded.
//
// GET /api/health/ready
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	snap := h.store.Snapshot()
	if snap == nil || snap.Len() == 0 {
		respondJSON(w, r, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "ready"})
}
