// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package dataset

import (
	"os"
	"path/filepath"
	"testing"
)

const csvHeader = "driver,forename,surname,year,round,gp_name,points,points_standings,positionOrder,grid,laps,fastest_lap_rank,raceId\n"

const sampleCSV = csvHeader +
	"hamilton,Lewis,Hamilton,2020,1,bahrain,25,25,1,1,57,1,1031\n" +
	"hamilton,Lewis,Hamilton,2020,2,italy,15,40,3,3,53,\\N,1032\n" +
	"verstappen,Max,Verstappen,2020,1,bahrain,18,18,2,2,57,4,1031\n"

// writeCSV writes content to a temporary dataset file and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "results.csv")
	writeFile(t, path, content)
	return path
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
