// Podium - Motorsport Race Results Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/podium

package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/podium/internal/dataset"
	"github.com/tomtom215/podium/internal/models"
)

// stubLoader returns fixed rows or a fixed error.
type stubLoader struct {
	rows []models.RaceResult
	err  error
}

func (l stubLoader) Load(_ context.Context, _ string) ([]models.RaceResult, error) {
	return l.rows, l.err
}

func row(driver, forename, surname string, year, round int, gp string, pos int, points, standings float64) models.RaceResult {
	return models.RaceResult{
		Driver:          driver,
		Forename:        forename,
		Surname:         surname,
		Year:            year,
		Round:           round,
		GPName:          gp,
		Points:          points,
		PointsStandings: standings,
		PositionOrder:   pos,
		Grid:            pos,
		Laps:            57,
		RaceID:          int64(year*100 + round),
	}
}

func fixtureRows() []models.RaceResult {
	return []models.RaceResult{
		row("hamilton", "Lewis", "Hamilton", 2020, 1, "Bahrain Grand Prix", 1, 25, 25),
		row("max_verstappen", "Max", "Verstappen", 2020, 1, "Bahrain Grand Prix", 2, 18, 18),
		row("hamilton", "Lewis", "Hamilton", 2020, 2, "Italian Grand Prix", 3, 15, 40),
		row("max_verstappen", "Max", "Verstappen", 2020, 2, "Italian Grand Prix", 1, 25, 43),
		row("alonso", "Fernando", "Alonso", 2021, 1, "Bahrain Grand Prix", 9, 2, 2),
	}
}

// newTestServer returns a router over a store holding rows. A nil rows
// slice leaves the store empty.
func newTestServer(t *testing.T, rows []models.RaceResult, loader dataset.Loader, opts HandlerOptions) (http.Handler, *Handler, *dataset.Store) {
	t.Helper()

	store := dataset.NewStore(loader, "fixture.csv")
	if rows != nil {
		store.Publish(rows, "fixture.csv")
	}
	handler := NewHandler(store, opts)

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return NewRouter(handler, cfg).SetupChi(), handler, store
}

func do(t *testing.T, h http.Handler, method, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
}

func TestHome(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.String() != homeBanner {
		t.Errorf("body = %q, want %q", rec.Body.String(), homeBanner)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("Content-Type = %q, want text/plain", ct)
	}
}

func TestDrivers_SortedByFullName(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/drivers", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var got []models.DriverSummary
	decode(t, rec, &got)

	want := []string{"Fernando Alonso", "Lewis Hamilton", "Max Verstappen"}
	if len(got) != len(want) {
		t.Fatalf("got %d drivers, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].FullName != name {
			t.Errorf("drivers[%d] = %q, want %q", i, got[i].FullName, name)
		}
	}
}

func TestStatsRoutes_Shapes(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	tests := []struct {
		path string
		keys []string
	}{
		{"/api/driveryears/hamilton", []string{"driver", "available_years"}},
		{"/api/driverpoints/hamilton/2020", []string{"driver", "season_year", "points_by_round"}},
		{"/api/driverpodiums/hamilton/2020", []string{"driver", "season_year", "podiums_by_round"}},
		{"/api/driverstandings/hamilton/2020", []string{"driver", "season_year", "standings_data"}},
		{"/api/driverstartingpositions/hamilton/2020", []string{"driver", "season_year", "starting_positions"}},
		{"/api/driverpodiumsbyseason/hamilton", []string{"driver", "podiums_by_season"}},
		{"/api/compare_drivers/hamilton/max_verstappen/2020", []string{"driver1", "driver2", "season_year", "combined_standings"}},
		{"/api/driverstats/hamilton", []string{"driver", "total_laps", "total_races", "best_worst_finishes", "most_successful_track"}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			var body map[string]json.RawMessage
			decode(t, rec, &body)
			for _, key := range tt.keys {
				if _, ok := body[key]; !ok {
					t.Errorf("response missing %q: %s", key, rec.Body.String())
				}
			}
		})
	}
}

func TestDriverPoints_Values(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/driverpoints/hamilton/2020", nil)
	var got models.PointsByRoundResponse
	decode(t, rec, &got)

	if got.Driver != "hamilton" || got.SeasonYear != 2020 {
		t.Errorf("echo = %q/%d, want hamilton/2020", got.Driver, got.SeasonYear)
	}
	want := []models.RoundPoints{
		{GPName: "Bahrain Grand Prix", Points: 25, Round: 1},
		{GPName: "Italian Grand Prix", Points: 15, Round: 2},
	}
	if len(got.PointsByRound) != len(want) {
		t.Fatalf("points_by_round = %+v, want %+v", got.PointsByRound, want)
	}
	for i := range want {
		if got.PointsByRound[i] != want[i] {
			t.Errorf("points_by_round[%d] = %+v, want %+v", i, got.PointsByRound[i], want[i])
		}
	}
}

func TestCompareDrivers_Values(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/compare_drivers/hamilton/alonso/2021", nil)
	var got models.CompareDriversResponse
	decode(t, rec, &got)

	want := []models.RoundComparison{{Round: 1, Driver1Standings: 0, Driver2Standings: 2}}
	if len(got.CombinedStandings) != 1 || got.CombinedStandings[0] != want[0] {
		t.Errorf("combined_standings = %+v, want %+v", got.CombinedStandings, want)
	}
}

func TestDriverStats_UnknownDriver(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/driverstats/nobody", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	for _, fragment := range []string{
		`"total_races":0`,
		`"best_position":null`,
		`"avg_qualifying_pos":null`,
		`"most_successful_track":"N/A"`,
		`"best_worst_finishes":[]`,
	} {
		if !strings.Contains(body, fragment) {
			t.Errorf("body missing %s: %s", fragment, body)
		}
	}
}

func TestUnknownEntities_ReturnEmptyResults(t *testing.T) {
	t.Parallel()
	rows := append(fixtureRows(),
		row("pérez", "Sergio", "Pérez", 2021, 1, "Bahrain Grand Prix", 5, 10, 10),
		row("pérez", "Sergio", "Pérez", 2021, 2, "Italian Grand Prix", 2, 18, 28),
	)
	srv, _, _ := newTestServer(t, rows, nil, HandlerOptions{})

	tests := []struct {
		name     string
		path     string
		fragment string
	}{
		{"season with no rows", "/api/driverpoints/hamilton/1949", `"points_by_round":[]`},
		{"future season", "/api/driverpodiums/hamilton/3000", `"podiums_by_round":[]`},
		{"negative season", "/api/compare_drivers/hamilton/alonso/-1", `"combined_standings":[]`},
		{"accented driver stats", "/api/driverstats/p%C3%A9rez", `"total_races":2`},
		{"accented driver seasons", "/api/driveryears/p%C3%A9rez", `"available_years":[2021]`},
		{"accented driver points", "/api/driverpoints/p%C3%A9rez/2021", `"points":18`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
			}
			if !strings.Contains(rec.Body.String(), tt.fragment) {
				t.Errorf("body = %s, want it to contain %s", rec.Body.String(), tt.fragment)
			}
		})
	}
}

func TestEngineFault_DescriptiveMessage(t *testing.T) {
	t.Parallel()
	rows := append(fixtureRows(), row("bad", "Bad", "Row", 2020, 3, "Spanish Grand Prix", 0, 0, 0))
	srv, _, _ := newTestServer(t, rows, nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/driverstats/bad", nil)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	var body models.ErrorResponse
	decode(t, rec, &body)

	want := `driver_career_stats: malformed row: driver "bad" race 202003 has positionOrder 0`
	if body.Error != want {
		t.Errorf("error = %q, want %q", body.Error, want)
	}
	if rec.Header().Get("Cache-Control") != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", rec.Header().Get("Cache-Control"))
	}
}

func TestValidation_BadRequest(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	tests := []struct {
		name    string
		path    string
		message string
	}{
		{"non-numeric year", "/api/driverpoints/hamilton/abc", "year must be an integer"},
		{"fractional year", "/api/driverpodiums/hamilton/2020.5", "year must be an integer"},
		{"control character", "/api/driverstats/ham%01ilton", "driver must contain printable characters only"},
		{"driver too long", "/api/driverstats/" + strings.Repeat("x", 65), "driver"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, srv, http.MethodGet, tt.path, nil)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var body models.ErrorResponse
			decode(t, rec, &body)
			if !strings.Contains(body.Error, tt.message) {
				t.Errorf("error = %q, want it to mention %q", body.Error, tt.message)
			}
			if body.RequestID == "" {
				t.Error("request_id should be set on error responses")
			}
		})
	}
}

func TestNoSnapshot(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, nil, nil, HandlerOptions{})

	tests := []struct {
		path string
		want int
	}{
		{"/api/drivers", http.StatusServiceUnavailable},
		{"/api/driverstats/hamilton", http.StatusServiceUnavailable},
		{"/api/data", http.StatusServiceUnavailable},
		{"/api/dataset", http.StatusServiceUnavailable},
		{"/api/health/ready", http.StatusServiceUnavailable},
		{"/api/health/live", http.StatusOK},
		{"/api/health", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if rec := do(t, srv, http.MethodGet, tt.path, nil); rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{Version: "1.2.3"})

	rec := do(t, srv, http.MethodGet, "/api/health", nil)
	var got models.HealthStatus
	decode(t, rec, &got)

	if got.Status != "healthy" || !got.DatasetLoaded || got.Rows != 5 || got.Version != "1.2.3" {
		t.Errorf("health = %+v", got)
	}
	if rec := do(t, srv, http.MethodGet, "/api/health/ready", nil); rec.Code != http.StatusOK {
		t.Errorf("ready status = %d, want 200", rec.Code)
	}
}

func TestData_And_DatasetInfo(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/data", nil)
	var data models.DataResponse
	decode(t, rec, &data)
	if len(data.Data) != 5 || data.Data[0].Driver != "hamilton" || data.Data[4].Driver != "alonso" {
		t.Errorf("data not in file order: %+v", data.Data)
	}

	rec = do(t, srv, http.MethodGet, "/api/dataset", nil)
	var info models.DatasetInfo
	decode(t, rec, &info)
	if info.Rows != 5 || info.Drivers != 3 || info.Seasons != 2 || info.Source != "fixture.csv" {
		t.Errorf("dataset info = %+v", info)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/unknown", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"error":"not found"`) {
		t.Errorf("body = %s", rec.Body.String())
	}

	rec = do(t, srv, http.MethodPost, "/api/drivers", nil)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestETag_NotModified(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	first := do(t, srv, http.MethodGet, "/api/driveryears/hamilton", nil)
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected ETag header")
	}

	second := do(t, srv, http.MethodGet, "/api/driveryears/hamilton", http.Header{"If-None-Match": {etag}})
	if second.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", second.Code)
	}
	if second.Body.Len() != 0 {
		t.Errorf("304 should have no body, got %q", second.Body.String())
	}
}

func TestResponsesFollowPublishedSnapshot(t *testing.T) {
	t.Parallel()
	srv, _, store := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	first := do(t, srv, http.MethodGet, "/api/driverstats/hamilton", nil)
	store.Publish(fixtureRows()[:1], "smaller.csv")
	second := do(t, srv, http.MethodGet, "/api/driverstats/hamilton", nil)

	if !strings.Contains(first.Body.String(), `"total_races":2`) {
		t.Errorf("first response = %s, want 2 races", first.Body.String())
	}
	if !strings.Contains(second.Body.String(), `"total_races":1`) {
		t.Errorf("response after publish = %s, want 1 race", second.Body.String())
	}
}

func TestReload(t *testing.T) {
	t.Parallel()

	t.Run("success swaps snapshot", func(t *testing.T) {
		t.Parallel()
		loader := stubLoader{rows: fixtureRows()[:2]}
		srv, _, store := newTestServer(t, fixtureRows(), loader, HandlerOptions{})
		before := store.Snapshot().Generation()

		rec := do(t, srv, http.MethodPost, "/api/admin/reload", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
		}
		var got models.ReloadResponse
		decode(t, rec, &got)
		if got.Status != "reloaded" || got.Rows != 2 || got.Generation <= before {
			t.Errorf("reload = %+v (previous generation %d)", got, before)
		}
	})

	t.Run("failure keeps previous snapshot", func(t *testing.T) {
		t.Parallel()
		loader := stubLoader{err: errors.New("file vanished")}
		srv, _, store := newTestServer(t, fixtureRows(), loader, HandlerOptions{})
		before := store.Snapshot()

		rec := do(t, srv, http.MethodPost, "/api/admin/reload", nil)
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want 500", rec.Code)
		}
		if strings.Contains(rec.Body.String(), "vanished") {
			t.Error("internal error detail leaked to client")
		}
		if store.Snapshot() != before {
			t.Error("snapshot replaced after failed reload")
		}
		if rec := do(t, srv, http.MethodGet, "/api/drivers", nil); rec.Code != http.StatusOK {
			t.Errorf("drivers after failed reload = %d, want 200", rec.Code)
		}
	})

	t.Run("GET is not allowed", func(t *testing.T) {
		t.Parallel()
		srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})
		if rec := do(t, srv, http.MethodGet, "/api/admin/reload", nil); rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want 405", rec.Code)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()

	store := dataset.NewStore(nil, "")
	store.Publish(fixtureRows(), "fixture.csv")
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	srv := NewRouter(NewHandler(store, HandlerOptions{}), cfg).SetupChi()

	for i := 0; i < 2; i++ {
		if rec := do(t, srv, http.MethodGet, "/api/drivers", nil); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i, rec.Code)
		}
	}
	rec := do(t, srv, http.MethodGet, "/api/drivers", nil)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "rate limit exceeded") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodGet, "/api/drivers", http.Header{"X-Forwarded-Proto": {"https"}})
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") == "" {
		t.Error("expected HSTS behind https proxy")
	}
}

func TestCORS_Preflight(t *testing.T) {
	t.Parallel()
	srv, _, _ := newTestServer(t, fixtureRows(), nil, HandlerOptions{})

	rec := do(t, srv, http.MethodOptions, "/api/drivers", http.Header{
		"Origin":                        {"https://dashboard.example"},
		"Access-Control-Request-Method": {"GET"},
	})
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()
	if got := sanitizeLogValue("ham\nilton\x7f"); got != `ham\x0ailton\x7f` {
		t.Errorf("sanitizeLogValue = %q", got)
	}
}
