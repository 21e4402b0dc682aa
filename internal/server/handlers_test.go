package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rcweston90/Weight2Plate/internal/models"
	"github.com/rcweston90/Weight2Plate/internal/plates"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store, err := storage.OpenSQLite(filepath.Join(t.TempDir(), "presets.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, testAPIKey, plates.Pounds, log)
}

func doJSON(t *testing.T, s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestCalculate verifies the full drop-set computation over HTTP,
// including barbell resolution from the catalog.
func TestCalculate(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/calculate",
		`{"unit":"lbs","barbell_id":"standard","final_side_weight":70,"drop_percent":25}`, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}

	var resp calculateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.BarWeight != 45 {
		t.Errorf("bar_weight = %v, want 45", resp.BarWeight)
	}
	if resp.FinalSetWeight != 185 {
		t.Errorf("final_set_weight = %v, want 185", resp.FinalSetWeight)
	}
	if resp.DropSetWeight != 46.25 {
		t.Errorf("drop_set_weight = %v, want 46.25", resp.DropSetWeight)
	}
	if len(resp.DropPlates.Plates) != 0 {
		t.Errorf("drop_plates = %v, want empty", resp.DropPlates.Plates)
	}
	if len(resp.FinalPlates.Plates) != 2 {
		t.Errorf("final_plates = %v, want 45 and 25", resp.FinalPlates.Plates)
	}
}

// TestCalculateDefaultsUnit verifies the server default unit applies when
// the request omits one.
func TestCalculateDefaultsUnit(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/calculate",
		`{"barbell_id":"olympic","final_side_weight":45,"drop_percent":50}`, nil)

	var resp calculateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Unit != "lbs" {
		t.Errorf("unit = %q, want lbs", resp.Unit)
	}
	if resp.BarWeight != 44 {
		t.Errorf("bar_weight = %v, want 44 (olympic in lbs)", resp.BarWeight)
	}
}

// TestCalculateBadInput verifies 400s for malformed or invalid requests.
func TestCalculateBadInput(t *testing.T) {
	s := newTestServer(t)
	tests := []struct {
		name string
		body string
	}{
		{"malformed JSON", `{"unit":`},
		{"unknown barbell", `{"barbell_id":"curlbro","final_side_weight":10}`},
		{"unknown unit", `{"unit":"stone","final_side_weight":10}`},
		{"negative side weight", `{"barbell_id":"olympic","final_side_weight":-5}`},
		{"negative bar weight", `{"bar_weight":-45,"final_side_weight":10}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, s, http.MethodPost, "/api/v1/calculate", tt.body, nil)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

// TestBarbells verifies the catalog endpoint.
func TestBarbells(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/barbells", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got []map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(got) != 5 {
		t.Errorf("len(barbells) = %d, want 5", len(got))
	}
}

// TestDenominations verifies the per-unit plate sets.
func TestDenominations(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/denominations?unit=kg", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var got struct {
		Unit          string    `json:"unit"`
		Denominations []float64 `json:"denominations"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if got.Unit != "kg" {
		t.Errorf("unit = %q, want kg", got.Unit)
	}
	if len(got.Denominations) != 6 || got.Denominations[0] != 20 || got.Denominations[5] != 1.25 {
		t.Errorf("denominations = %v, want [20 15 10 5 2.5 1.25]", got.Denominations)
	}
}

// TestChart verifies the schematic endpoint returns SVG.
func TestChart(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/chart?unit=lbs&barbell=standard&side=70&drop=75", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("content-type = %q, want image/svg+xml", ct)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG")
	}
}

// TestChartMissingSide verifies the required side parameter.
func TestChartMissingSide(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/chart?unit=lbs", "", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestPresetLifecycle verifies save, load, list, and delete through the
// HTTP API, including API key enforcement on writes.
func TestPresetLifecycle(t *testing.T) {
	s := newTestServer(t)
	body := `{"unit":"lbs","barbell_id":"standard","final_side_weight":70,"drop_percent":75}`
	auth := map[string]string{"X-API-Key": testAPIKey}

	// Write without a key is rejected.
	rec := doJSON(t, s, http.MethodPut, "/api/v1/presets/bench", body, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated PUT status = %d, want 401", rec.Code)
	}
	rec = doJSON(t, s, http.MethodPut, "/api/v1/presets/bench", body, map[string]string{"X-API-Key": "wrong"})
	if rec.Code != http.StatusForbidden {
		t.Errorf("wrong-key PUT status = %d, want 403", rec.Code)
	}

	// Save.
	rec = doJSON(t, s, http.MethodPut, "/api/v1/presets/bench", body, auth)
	if rec.Code != http.StatusOK {
		t.Fatalf("PUT status = %d, want 200: %s", rec.Code, rec.Body)
	}

	// Load.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/presets/bench", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET status = %d, want 200", rec.Code)
	}
	var preset models.Preset
	if err := json.NewDecoder(rec.Body).Decode(&preset); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if preset.Name != "bench" || preset.FinalSideWeight != 70 || preset.DropPercent != 75 {
		t.Errorf("preset = %+v, want bench/70/75", preset)
	}

	// List.
	rec = doJSON(t, s, http.MethodGet, "/api/v1/presets", "", nil)
	var all []models.Preset
	if err := json.NewDecoder(rec.Body).Decode(&all); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("len(presets) = %d, want 1", len(all))
	}

	// Delete, then the name is gone.
	rec = doJSON(t, s, http.MethodDelete, "/api/v1/presets/bench", "", auth)
	if rec.Code != http.StatusNoContent {
		t.Errorf("DELETE status = %d, want 204", rec.Code)
	}
	rec = doJSON(t, s, http.MethodGet, "/api/v1/presets/bench", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("GET after delete status = %d, want 404", rec.Code)
	}
}

// TestGetPresetNotFound verifies the one failure the store surfaces to
// callers: an unknown preset name.
func TestGetPresetNotFound(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/presets/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// TestPutPresetMissingBarbell verifies presets must reference a catalog
// barbell so loading them later can resolve a bar weight.
func TestPutPresetMissingBarbell(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodPut, "/api/v1/presets/bench",
		`{"unit":"lbs","final_side_weight":70,"drop_percent":75}`,
		map[string]string{"X-API-Key": testAPIKey})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestEmptyPresetListIsArray verifies an empty store serializes as [],
// not null, for frontend consumption.
func TestEmptyPresetListIsArray(t *testing.T) {
	s := newTestServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/presets", "", nil)
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Errorf("body = %q, want []", got)
	}
}
