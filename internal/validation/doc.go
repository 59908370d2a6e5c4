// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use and reused; it caches
// struct metadata and is safe for concurrent use. Field names in error messages
// come from json tags, so a failure reads "driver is required" rather than
// "Driver is required".
//
// # Request Parameters
//
// API path parameters are bound into small structs and validated before any
// aggregation runs:
//
//	p, verr := validation.NewDriverYearParams(chi.URLParam(r, "driver"), chi.URLParam(r, "year"))
//	if verr != nil {
//	    respondError(w, r, http.StatusBadRequest, verr.Error())
//	    return
//	}
//
// Driver identifiers must be non-empty printable text of at most 64
// characters; accented identifiers such as "pérez" are valid. Years only
// have to be integers.
//
// # Thread Safety
//
// GetValidator and ValidateStruct may be called from any goroutine.
package validation
