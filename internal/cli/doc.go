// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

// Package cli implements the podium command-line tool.
//
// Every subcommand loads the results CSV once, runs one statistics
// operation and prints the same JSON document the HTTP API returns:
//
//	podium drivers
//	podium seasons hamilton
//	podium points hamilton 2020 --pretty
//	podium compare hamilton max_verstappen 2021
//	podium stats alonso --data /data/f1_data.csv
package cli
