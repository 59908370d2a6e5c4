// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Dataset  DatasetConfig  `koanf:"dataset"`
	Server   ServerConfig   `koanf:"server"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// DatasetConfig describes the race results file backing the API.
//
// Environment Variables:
//   - DATASET_PATH: CSV file with one row per (driver, race) (default: f1_data.csv)
//   - DATASET_WATCH: reload the snapshot when the file changes (default: true)
//   - DATASET_WATCH_DEBOUNCE: quiet period before a reload fires (default: 500ms)
//   - DATASET_LOAD_TIMEOUT: upper bound for a single parse (default: 60s)
type DatasetConfig struct {
	Path          string        `koanf:"path"`
	Watch         bool          `koanf:"watch"`
	WatchDebounce time.Duration `koanf:"watch_debounce"`
	LoadTimeout   time.Duration `koanf:"load_timeout"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging" or "production"
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// Address returns the host:port the HTTP server listens on.
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// String summarizes the configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("dataset=%s watch=%t listen=%s env=%s",
		c.Dataset.Path, c.Dataset.Watch, c.Server.Address(), c.Server.Environment)
}
