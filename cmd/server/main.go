// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package main is the entry point for the Podium HTTP server.
//
// Podium serves driver and season statistics computed from a race-results
// CSV file. The file is parsed once into an immutable snapshot; every
// request is answered from the snapshot that was current when it arrived.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, config.yaml, environment (Koanf v2)
//  2. Logging: zerolog with the configured level and format
//  3. Dataset: CSV parsed through DuckDB into the first snapshot
//  4. HTTP: chi router over the statistics engine
//  5. Supervisor tree: HTTP server and, when DATASET_WATCH=true, the
//     dataset file watcher
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the root context. The HTTP server stops
// accepting connections and waits for in-flight requests up to
// HTTP_TIMEOUT.
//
// # Example Usage
//
//	DATASET_PATH=/data/f1_data.csv HTTP_PORT=5000 ./podium-server
//
//	LOG_FORMAT=console LOG_LEVEL=debug DATASET_WATCH=false ./podium-server
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/podium/internal/api"
	"github.com/tomtom215/podium/internal/config"
	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/metrics"
	"github.com/tomtom215/podium/internal/supervisor"
	"github.com/tomtom215/podium/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("version", version).
		Str("dataset", cfg.Dataset.Path).
		Bool("watch", cfg.Dataset.Watch).
		Str("addr", cfg.Server.Address()).
		Str("environment", cfg.Server.Environment).
		Msg("Starting Podium")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS_ORIGINS allows every origin in production")
	}

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := dataset.NewStore(dataset.NewCSVReader(cfg.Dataset.LoadTimeout), cfg.Dataset.Path)
	if snap, err := store.Reload(ctx); err != nil {
		// The server still starts: readiness reports 503 until a reload succeeds.
		logging.Error().Err(err).Str("path", cfg.Dataset.Path).Msg("Initial dataset load failed")
	} else {
		logging.Info().Int("rows", snap.Len()).Msg("Dataset loaded")
	}

	handler := api.NewHandler(store, api.HandlerOptions{Version: version})
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromSecurity(cfg.Security))

	server := &http.Server{
		Addr:              cfg.Server.Address(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	if cfg.Dataset.Watch {
		watcher := dataset.NewWatcher(cfg.Dataset.Path, cfg.Dataset.WatchDebounce, store)
		tree.AddDataService(services.NewDatasetWatcherService(watcher))
		logging.Info().Dur("debounce", cfg.Dataset.WatchDebounce).Msg("Dataset watcher service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.Timeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish...")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor tree error")
		}
	}

	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Err(err).Msg("Supervisor shutdown error")
		}
	}

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Podium stopped")
}
