// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package supervisor provides process supervision using suture v4.

The tree has two layers, each a child supervisor with its own failure
counter:

	RootSupervisor ("podium")
	├── DataSupervisor ("data-layer")
	│   └── DatasetWatcherService (if DATASET_WATCH=true)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing watcher is restarted with backoff while the HTTP server keeps
answering from the last published snapshot.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	if cfg.Dataset.Watch {
	    tree.AddDataService(services.NewDatasetWatcherService(watcher))
	}
	errCh := tree.ServeBackground(ctx)

# Configuration

TreeConfig controls restart behavior. Zero fields take suture's defaults:
  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

# Logging

Supervisor events (service start, failure, backoff, stop timeout) go
through sutureslog into the zerolog stream via logging.NewSlogLogger.

# What Is NOT Supervised

The DuckDB connection used to parse the CSV lives only for the duration of
a load and is not a long-running service.

# Debugging Shutdown Issues

	report, _ := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logging.Warn().Str("service", svc.Name).Msg("Service did not stop")
	}
*/
package supervisor
