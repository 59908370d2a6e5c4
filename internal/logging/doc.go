// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package logging provides centralized zerolog-based logging for Podium.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", cfg.Dataset.Path).Msg("Loading dataset")
//	logging.Error().Err(err).Msg("Reload failed")
//
//	// With request context (request_id is attached by the API middleware)
//	logging.Ctx(r.Context()).Warn().Str("driver", d).Msg("Invalid year")
//
// # Configuration
//
// Environment Variables (mapped through internal/config):
//   - LOG_LEVEL: debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false (default: false)
//
// # slog Bridge
//
// NewSlogLogger returns a *slog.Logger writing through zerolog. The supervisor
// tree hands it to sutureslog so restart and backoff events share the same
// JSON stream as everything else.
//
// Always terminate log chains with .Msg() or .Send(); an unterminated event
// is never written.
package logging
