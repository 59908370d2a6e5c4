// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	// DuckDB driver - used in-memory to parse the results CSV
	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/podium/internal/models"
)

// DefaultLoadTimeout bounds a single CSV parse.
const DefaultLoadTimeout = 60 * time.Second

// Loader parses a dataset file into rows, preserving file order.
type Loader interface {
	Load(ctx context.Context, path string) ([]models.RaceResult, error)
}

// CSVReader reads the results CSV through an in-memory DuckDB connection.
// Each Load opens and closes its own connection.
type CSVReader struct {
	timeout time.Duration
}

// NewCSVReader creates a reader. A non-positive timeout uses DefaultLoadTimeout.
func NewCSVReader(timeout time.Duration) *CSVReader {
	if timeout <= 0 {
		timeout = DefaultLoadTimeout
	}
	return &CSVReader{timeout: timeout}
}

// selectColumns casts every column to the type RaceResult expects.
// Only \N is declared as the null marker; an empty fastest_lap_rank is read
// as NULL by the sniffer or rejected by TRY_CAST, so both mean absent.
const selectColumns = `
	SELECT
		CAST("driver" AS VARCHAR),
		CAST("forename" AS VARCHAR),
		CAST("surname" AS VARCHAR),
		CAST("year" AS INTEGER),
		CAST("round" AS INTEGER),
		CAST("gp_name" AS VARCHAR),
		CAST("points" AS DOUBLE),
		CAST("points_standings" AS DOUBLE),
		CAST("positionOrder" AS INTEGER),
		CAST("grid" AS INTEGER),
		CAST("laps" AS INTEGER),
		TRY_CAST("fastest_lap_rank" AS INTEGER),
		CAST("raceId" AS BIGINT)
	FROM read_csv('%s', header = true, nullstr = '\N', auto_detect = true)
`

// Load parses path and returns its rows in file order.
func (r *CSVReader) Load(ctx context.Context, path string) ([]models.RaceResult, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("open duckdb: %w", err)
	}
	defer closeQuietly(db)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// Rows must come back in file order for first-seen grouping.
	if _, err := db.ExecContext(ctx, "SET preserve_insertion_order = true"); err != nil {
		return nil, fmt.Errorf("configure duckdb: %w", err)
	}

	rows, err := db.QueryContext(ctx, fmt.Sprintf(selectColumns, quoteLiteral(path)))
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}
	defer rows.Close()

	var results []models.RaceResult
	for rows.Next() {
		var rec models.RaceResult
		var fastestLap sql.NullInt64

		err := rows.Scan(
			&rec.Driver,
			&rec.Forename,
			&rec.Surname,
			&rec.Year,
			&rec.Round,
			&rec.GPName,
			&rec.Points,
			&rec.PointsStandings,
			&rec.PositionOrder,
			&rec.Grid,
			&rec.Laps,
			&fastestLap,
			&rec.RaceID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan row %d: %w", len(results)+1, err)
		}

		if fastestLap.Valid {
			rank := int(fastestLap.Int64)
			rec.FastestLapRank = &rank
		}

		results = append(results, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}

	return results, nil
}

// quoteLiteral escapes s for use inside a single-quoted SQL string.
func quoteLiteral(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// closeQuietly closes a resource, ignoring errors.
func closeQuietly(c io.Closer) {
	_ = c.Close() //nolint:errcheck // best-effort cleanup
}
