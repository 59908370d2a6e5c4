// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

/*
Package models defines data structures for the Podium application.

This package contains the race result row loaded from the dataset, the
aggregate records produced by the stats engine, and the HTTP response
wrappers that serialize them. It serves as the single source of truth for
the JSON wire shapes.

Key Components:

  - RaceResult: One driver's result in one race (one dataset row)
  - CareerStats: Multi-aggregate record returned by the driver stats endpoint
  - Response wrappers: Result sequences plus echoed query parameters

Model Categories:

1. Dataset Models:
  - RaceResult: Typed row with an optional fastest lap rank

2. Aggregate Models:
  - DriverSummary, RoundPoints, RoundPodiums, RoundGrid
  - StandingEntry, SeasonPodiums, RoundComparison
  - TrackFinish, CareerStats

3. API Response Models:
  - ErrorResponse: {"error": "..."} body used by every failing endpoint
  - DriverSeasonsResponse, PointsByRoundResponse, CompareDriversResponse, ...

JSON Serialization:

Field names follow the original frontend contract, which is why some keys
use camelCase (positionOrder, raceId) or contain spaces ("Best Finish").
Do not rename them without updating the frontend.

Thread Safety:

Models are plain value types. Slices returned by the stats engine are freshly
allocated per call and never shared with the underlying snapshot.
*/
package models
