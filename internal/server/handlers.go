package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rcweston90/Weight2Plate/internal/barbell"
	"github.com/rcweston90/Weight2Plate/internal/chart"
	"github.com/rcweston90/Weight2Plate/internal/models"
	"github.com/rcweston90/Weight2Plate/internal/plates"
	"github.com/rcweston90/Weight2Plate/internal/sets"
	"github.com/rcweston90/Weight2Plate/internal/storage"
)

type calculateRequest struct {
	Unit            string   `json:"unit"`
	BarbellID       string   `json:"barbell_id"`
	BarWeight       *float64 `json:"bar_weight,omitempty"`
	FinalSideWeight float64  `json:"final_side_weight"`
	DropPercent     float64  `json:"drop_percent"`
}

type calculateResponse struct {
	Unit          string    `json:"unit"`
	BarWeight     float64   `json:"bar_weight"`
	Denominations []float64 `json:"denominations"`
	sets.Result
}

// resolve normalizes a calculation request: unit (falling back to the
// server default), bar weight (explicit override beats the catalog), and
// the denomination set for the unit.
func (s *Server) resolve(req calculateRequest) (plates.Unit, float64, plates.Denominations, error) {
	unitStr := req.Unit
	if unitStr == "" {
		unitStr = string(s.defaultUnit)
	}
	unit, err := plates.ParseUnit(unitStr)
	if err != nil {
		return "", 0, plates.Denominations{}, err
	}

	var barWeight float64
	switch {
	case req.BarWeight != nil:
		barWeight = *req.BarWeight
	case req.BarbellID != "":
		b, err := barbell.Lookup(req.BarbellID)
		if err != nil {
			return "", 0, plates.Denominations{}, err
		}
		barWeight = b.Weight(unit)
	}

	if barWeight < 0 {
		return "", 0, plates.Denominations{}, errors.New("bar_weight must not be negative")
	}
	if req.FinalSideWeight < 0 {
		return "", 0, plates.Denominations{}, errors.New("final_side_weight must not be negative")
	}

	return unit, barWeight, plates.ForUnit(unit), nil
}

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	unit, barWeight, denoms, err := s.resolve(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := sets.ComputeDropSet(sets.Params{
		FinalSideWeight: req.FinalSideWeight,
		BarWeight:       barWeight,
		DropPercent:     req.DropPercent,
	}, denoms)

	writeJSON(w, http.StatusOK, calculateResponse{
		Unit:          string(unit),
		BarWeight:     barWeight,
		Denominations: denoms.Weights(),
		Result:        result,
	})
}

func (s *Server) handleBarbells(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, barbell.All())
}

func (s *Server) handleDenominations(w http.ResponseWriter, r *http.Request) {
	unit, err := plates.ParseUnit(r.URL.Query().Get("unit"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"unit":          unit,
		"denominations": plates.ForUnit(unit).Weights(),
	})
}

func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	req, err := chartRequestFromQuery(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	unit, barWeight, denoms, err := s.resolve(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result := sets.ComputeDropSet(sets.Params{
		FinalSideWeight: req.FinalSideWeight,
		BarWeight:       barWeight,
		DropPercent:     req.DropPercent,
	}, denoms)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	w.Write(chart.Render(result.FinalPlates, result.DropPlates, denoms, unit))
}

// chartRequestFromQuery maps chart query params onto a calculate request
// so both endpoints resolve inputs identically.
func chartRequestFromQuery(q url.Values) (calculateRequest, error) {
	req := calculateRequest{
		Unit:      q.Get("unit"),
		BarbellID: q.Get("barbell"),
	}

	side, err := strconv.ParseFloat(q.Get("side"), 64)
	if err != nil {
		return calculateRequest{}, errors.New("side parameter required (final side weight)")
	}
	req.FinalSideWeight = side

	if v := q.Get("drop"); v != "" {
		drop, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return calculateRequest{}, errors.New("invalid drop parameter")
		}
		req.DropPercent = drop
	}

	if v := q.Get("bar_weight"); v != "" {
		bw, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return calculateRequest{}, errors.New("invalid bar_weight parameter")
		}
		req.BarWeight = &bw
	}

	return req, nil
}

type presetRequest struct {
	Unit            string  `json:"unit"`
	BarbellID       string  `json:"barbell_id"`
	FinalSideWeight float64 `json:"final_side_weight"`
	DropPercent     float64 `json:"drop_percent"`
}

func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	presets, err := s.store.List(r.Context())
	if err != nil {
		s.log.Error("listing presets", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if presets == nil {
		presets = []models.Preset{}
	}
	writeJSON(w, http.StatusOK, presets)
}

func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := presetName(r)

	preset, err := s.store.Get(r.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return
	}
	if err != nil {
		s.log.Error("getting preset", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) handlePutPreset(w http.ResponseWriter, r *http.Request) {
	name := presetName(r)
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "preset name required"})
		return
	}

	var req presetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	unit, _, _, err := s.resolve(calculateRequest{
		Unit:            req.Unit,
		BarbellID:       req.BarbellID,
		FinalSideWeight: req.FinalSideWeight,
		DropPercent:     req.DropPercent,
	})
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if req.BarbellID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "barbell_id required"})
		return
	}

	preset, err := s.store.Put(r.Context(), models.Preset{
		Name:            name,
		Unit:            string(unit),
		BarbellID:       req.BarbellID,
		FinalSideWeight: req.FinalSideWeight,
		DropPercent:     req.DropPercent,
	})
	if err != nil {
		s.log.Error("saving preset", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (s *Server) handleDeletePreset(w http.ResponseWriter, r *http.Request) {
	name := presetName(r)

	err := s.store.Delete(r.Context(), name)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "preset not found"})
		return
	}
	if err != nil {
		s.log.Error("deleting preset", "name", name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// presetName extracts and unescapes the {name} path parameter. Preset
// names may contain spaces.
func presetName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
