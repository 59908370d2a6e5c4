// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package dataset loads the race results table and publishes it as immutable
snapshots.

# Loading

CSVReader parses the pre-joined results CSV with an in-memory DuckDB
instance (read_csv with header detection and \N as the null marker). Rows
come back in file order, which the stats engine relies on for its
first-seen semantics.

# Snapshots

A Snapshot is never modified after construction. Store holds the current
snapshot behind an atomic pointer; Reload parses the file into a brand new
snapshot and swaps the pointer, so requests already holding the previous
snapshot finish against it undisturbed. A failed reload keeps the previous
snapshot live.

# Watching

Watcher observes the dataset's directory with fsnotify and triggers a
debounced Reload whenever the file is written or replaced. It follows the Start/Stop/IsRunning lifecycle expected by the
supervisor services package.
*/
package dataset
