// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package api provides the HTTP surface of the analytics service.

Routes are registered on a chi router (see SetupChi):

	GET  /                                          plain-text banner
	GET  /metrics                                   Prometheus metrics
	GET  /api/health, /api/health/live, /ready      health probes
	GET  /api/drivers                               all drivers by full name
	GET  /api/driveryears/{driver}                  seasons, newest first
	GET  /api/driverpoints/{driver}/{year}          points per Grand Prix
	GET  /api/driverpodiums/{driver}/{year}         podiums per Grand Prix
	GET  /api/driverstandings/{driver}/{year}       season standings table
	GET  /api/driverstartingpositions/{driver}/{year}
	GET  /api/driverpodiumsbyseason/{driver}
	GET  /api/compare_drivers/{driver1}/{driver2}/{year}
	GET  /api/driverstats/{driver}                  career totals
	GET  /api/data                                  every row of the snapshot
	GET  /api/dataset                               snapshot description
	POST /api/admin/reload                          re-read the dataset file

Path parameters are validated by the validation package before any
aggregation runs; failures answer 400. Errors use the shape
{"error": "...", "request_id": "..."}. A missing dataset answers 503 and
an engine fault answers 500.

Each request computes against the snapshot that was current when it
arrived, even if a reload publishes a newer one meanwhile. Every JSON
response carries an ETag and If-None-Match is honoured with 304.
*/
package api
