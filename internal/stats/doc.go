// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package stats answers aggregate queries over the race results snapshot.

Every operation is a pure filter, group, aggregate and sort pipeline over the
rows of one immutable snapshot. The snapshot is fetched once per call, so an
operation always sees a single consistent table even if a reload publishes a
new one mid-request.

# Grouping

Groups are built with a stable partition: a map from key to the row indices
of that key plus a slice recording the order in which keys were first seen.
Anything described as "first" (the round of a grand prix, the grid slot, the
mode tie-break, the order of best and worst finishes) is positional with
respect to the dataset file, never minimal.

# Empty Results

A driver or season with no rows is not an error. Counts and sums are zero and
sequences are empty (never nil, so they serialize as []). Values that need at
least one row (best position, average qualifying position) are nil and the
most successful track is models.NoData.

# Errors

Operations return either a complete result or a single *OpError. A missing
snapshot yields ErrNoSnapshot, a row violating the table invariants yields
ErrMalformedRow, and any runtime fault inside an aggregation is recovered and
reported the same way instead of crashing the process.
*/
package stats
