// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package middleware provides HTTP middleware components for the API server.

Key Components:

  - RequestID: request and correlation IDs in the context and X-Request-ID header
  - AccessLog: one zerolog line per request with status, size and duration
  - PrometheusMetrics: request counter, latency histogram and in-flight gauge

All three use the chi middleware signature and are installed on the root
router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog)
	r.Use(middleware.PrometheusMetrics)

PrometheusMetrics and AccessLog read the chi route pattern after the handler
has run, so they must be mounted on a chi router to report routes. Requests
that match nothing are labelled "unmatched".
*/
package middleware
