// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"context"
	"time"

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/stats"
)

// DatasetStore is the part of *dataset.Store the handlers use.
type DatasetStore interface {
	Snapshot() *dataset.Snapshot
	Reload(ctx context.Context) (*dataset.Snapshot, error)
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: JSON and error responses
//   - handlers_stats.go: driver and season statistics
//   - handlers_dataset.go: banner, raw data, dataset info, reload
//   - handlers_health.go: health, liveness and readiness probes
type Handler struct {
	engine    *stats.Engine
	store     DatasetStore
	startTime time.Time
	version   string
}

// HandlerOptions tunes a Handler.
type HandlerOptions struct {
	// Version is reported by the health endpoint.
	Version string
}

// NewHandler creates a new API handler serving statistics from store.
//
// Example:
//
//	store := dataset.NewStore(dataset.NewCSVReader(0), cfg.Dataset.Path)
//	handler := api.NewHandler(store, api.HandlerOptions{Version: version})
//	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(store DatasetStore, opts HandlerOptions) *Handler {
	h := &Handler{
		engine:    stats.NewEngine(store),
		store:     store,
		startTime: time.Now(),
		version:   opts.Version,
	}
	if h.version == "" {
		h.version = "dev"
	}
	return h
}
