// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package config loads and validates Podium's configuration.

Configuration is layered with koanf: built-in defaults, then an optional YAML
file, then environment variables. The YAML file is taken from CONFIG_PATH when
set, otherwise the first of config.yaml, config.yml, /etc/podium/config.yaml
or /etc/podium/config.yml that exists.

# Environment Variables

Dataset:
  - DATASET_PATH: race results CSV (default: f1_data.csv)
  - DATASET_WATCH: hot reload on file change (default: true)
  - DATASET_WATCH_DEBOUNCE: debounce for file events (default: 500ms)
  - DATASET_LOAD_TIMEOUT: parse timeout (default: 60s)

HTTP Server:
  - HTTP_HOST: bind address (default: 0.0.0.0)
  - HTTP_PORT: listen port (default: 5000)
  - HTTP_TIMEOUT: read/write timeout (default: 30s)
  - ENVIRONMENT: development, staging, production (default: development)

Security:
  - CORS_ORIGINS: comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: requests per window (default: 100)
  - RATE_LIMIT_WINDOW: window length (default: 1m)
  - DISABLE_RATE_LIMIT: turn rate limiting off (default: false)

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Server.Address())
*/
package config
