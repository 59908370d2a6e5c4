// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reload result label values.
const (
	ReloadSuccess = "success"
	ReloadFailure = "failure"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	// Stats Engine Metrics
	EngineOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stats_engine_operation_duration_seconds",
			Help:    "Duration of stats engine operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"operation"},
	)

	EngineOperationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stats_engine_operation_errors_total",
			Help: "Total number of stats engine operations that failed",
		},
		[]string{"operation"},
	)

	// Dataset Metrics
	DatasetRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Number of race result rows in the current snapshot",
		},
	)

	DatasetGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_generation",
			Help: "Generation number of the current snapshot (increments on every publish)",
		},
	)

	DatasetReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_reloads_total",
			Help: "Total number of dataset reload attempts",
		},
		[]string{"result"},
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time spent parsing the dataset file into a snapshot",
			Buckets: prometheus.DefBuckets,
		},
	)

	DatasetLastReload = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_reload_timestamp",
			Help: "Unix timestamp of the last successful dataset publish",
		},
	)

	// Application Info
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordEngineOperation records the duration and outcome of one stats engine call.
func RecordEngineOperation(operation string, duration time.Duration, err error) {
	EngineOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
	if err != nil {
		EngineOperationErrors.WithLabelValues(operation).Inc()
	}
}

// RecordDatasetPublish updates the snapshot gauges after a new snapshot goes live.
func RecordDatasetPublish(rows int, generation uint64) {
	DatasetRows.Set(float64(rows))
	DatasetGeneration.Set(float64(generation))
	DatasetLastReload.Set(float64(time.Now().Unix()))
}

// RecordDatasetReload records a reload attempt. A failed reload leaves the
// snapshot gauges untouched.
func RecordDatasetReload(duration time.Duration, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetReloads.WithLabelValues(ReloadFailure).Inc()
		return
	}
	DatasetReloads.WithLabelValues(ReloadSuccess).Inc()
}
