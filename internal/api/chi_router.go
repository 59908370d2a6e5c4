// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/podium/internal/middleware"
)

// Router wires handlers and middleware into a chi mux.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a router. A nil cfg uses DefaultChiMiddlewareConfig.
func NewRouter(handler *Handler, cfg *ChiMiddlewareConfig) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(cfg),
	}
}

// SetupChi configures all HTTP routes.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	r.Use(middleware.RequestID)         // X-Request-ID plus logging context
	r.Use(middleware.AccessLog)         // One structured line per request
	r.Use(chimiddleware.RealIP)         // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)      // Recover from panics
	r.Use(router.chiMiddleware.CORS())  // CORS must be global to handle OPTIONS preflight
	r.Use(chimiddleware.Compress(5))    // gzip/deflate for large dumps such as /api/data
	r.Use(middleware.PrometheusMetrics) // Labelled by route pattern

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed)

	r.Get("/", router.handler.Home)
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Health Endpoints
	// ========================
	r.Route("/api/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitHealth())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
		r.Get("/", router.handler.Health)
	})

	// ========================
	// Statistics Endpoints
	// ========================
	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())

		r.Get("/api/drivers", router.handler.Drivers)
		r.Get("/api/driveryears/{driver}", router.handler.DriverYears)
		r.Get("/api/driverpoints/{driver}/{year}", router.handler.DriverPoints)
		r.Get("/api/driverpodiums/{driver}/{year}", router.handler.DriverPodiums)
		r.Get("/api/driverstandings/{driver}/{year}", router.handler.DriverStandings)
		r.Get("/api/driverstartingpositions/{driver}/{year}", router.handler.DriverStartingPositions)
		r.Get("/api/driverpodiumsbyseason/{driver}", router.handler.DriverPodiumsBySeason)
		r.Get("/api/compare_drivers/{driver1}/{driver2}/{year}", router.handler.CompareDrivers)
		r.Get("/api/driverstats/{driver}", router.handler.DriverStats)

		r.Get("/api/data", router.handler.Data)
		r.Get("/api/dataset", router.handler.DatasetInfo)
	})

	// ========================
	// Admin Endpoints
	// ========================
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimitWrite())
		r.Use(APISecurityHeaders())
		r.Post("/reload", router.handler.Reload)
	})

	return r
}

func notFound(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusNotFound, "not found", nil)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	respondError(w, r, http.StatusMethodNotAllowed, "method not allowed", nil)
}
