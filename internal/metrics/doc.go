// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package metrics provides Prometheus metrics collection and export for observability.

# Metrics Endpoint

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)

Stats Engine Metrics:
  - stats_engine_operation_duration_seconds: Aggregation time (histogram)
    Labels: operation
  - stats_engine_operation_errors_total: Failed operations (counter)
    Labels: operation

Dataset Metrics:
  - dataset_rows: Rows in the live snapshot (gauge)
  - dataset_generation: Snapshot generation (gauge)
  - dataset_reloads_total: Reload attempts (counter)
    Labels: result (success, failure)
  - dataset_load_duration_seconds: Parse time (histogram)
  - dataset_last_reload_timestamp: Last successful publish (gauge)

# Usage

	start := time.Now()
	result, err := engine.DriverCareerStats("hamilton")
	metrics.RecordEngineOperation("driver_career_stats", time.Since(start), err)

# Thread Safety

All metric operations are thread-safe and can be called from any goroutine.
*/
package metrics
