// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/podium/internal/logging"
	"github.com/tomtom215/podium/internal/models"
	"github.com/tomtom215/podium/internal/stats"
	"github.com/tomtom215/podium/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// Driver identifiers come straight from the URL path and end up in log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON marshals v and sends it with an ETag.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONBody(w, r, status, data)
}

// writeJSONBody sends an already encoded JSON body. Successful responses
// honour If-None-Match so polling dashboards get a 304 while the snapshot
// is unchanged.
func writeJSONBody(w http.ResponseWriter, r *http.Request, status int, data []byte) {
	etag := generateETag(data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Vary", "Accept-Encoding")
	w.Header().Set("ETag", etag)

	if status == http.StatusOK {
		w.Header().Set("Cache-Control", "public, max-age=60")
		if match := r.Header.Get("If-None-Match"); match != "" && match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a quoted ETag from data using FNV-1a hash
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends the JSON error shape with message. err is only logged.
func respondError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		event := logging.Ctx(r.Context()).Warn()
		if status >= http.StatusInternalServerError {
			event = logging.Ctx(r.Context()).Error()
		}
		event.Int("status", status).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("error", sanitizeLogValue(err.Error())).
			Msg("API Error")
	}

	respondJSON(w, r, status, &models.ErrorResponse{
		Error:     message,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
}

// respondValidationError reports rejected path parameters with 400.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	respondError(w, r, http.StatusBadRequest, verr.Error(), nil)
}

// respondEngineError maps an engine failure to a status code. Missing data
// is a 503 so load balancers back off; anything else is a 500. An *OpError
// names the operation and the fault, so its text is sent as the message.
func respondEngineError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, stats.ErrNoSnapshot) {
		respondError(w, r, http.StatusServiceUnavailable, "dataset not loaded", err)
		return
	}
	message := "failed to compute statistics"
	var opErr *stats.OpError
	if errors.As(err, &opErr) {
		message = opErr.Error()
	}
	respondError(w, r, http.StatusInternalServerError, message, err)
}

// serveStats runs build against the current snapshot and sends the result.
// The engine is pinned to that snapshot so a concurrent reload cannot mix
// two generations into one response.
func (h *Handler) serveStats(w http.ResponseWriter, r *http.Request, build func(eng *stats.Engine) (interface{}, error)) {
	snap := h.store.Snapshot()
	if snap == nil {
		respondEngineError(w, r, stats.ErrNoSnapshot)
		return
	}

	v, err := build(h.engine.At(snap))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, v)
}
