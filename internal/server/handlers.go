package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/claimscope/claimscope/internal/classify"
	"github.com/claimscope/claimscope/internal/model"
	"github.com/claimscope/claimscope/internal/pipeline"
	"github.com/claimscope/claimscope/internal/region"
	"github.com/claimscope/claimscope/internal/store"
)

// Checker runs one claim verification. Satisfied by *pipeline.Pipeline.
type Checker interface {
	Check(ctx context.Context, text, location string) (*model.CheckResult, error)
}

type handlers struct {
	checker  Checker
	store    store.Store
	regions  []string
	validate *validator.Validate
}

type checkRequest struct {
	Text     string `json:"text" validate:"required"`
	Location string `json:"location"`
}

// handleCheck verifies one claim. Input errors map to 400, a dead
// scorer to 503; connector and store failures never surface here.
func (h *handlers) handleCheck(w http.ResponseWriter, r *http.Request) {
	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "No text provided")
		return
	}

	result, err := h.checker.Check(r.Context(), req.Text, req.Location)
	switch {
	case errors.Is(err, pipeline.ErrEmptyClaim):
		writeError(w, http.StatusBadRequest, "No text provided")
	case errors.Is(err, classify.ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "Model not available")
	case err != nil:
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

// handleMap reports per-region fake-claim counts and severity, plus
// the General fallback bucket and an aggregate India row.
func (h *handlers) handleMap(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.FakeCounts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}

	result := make(map[string]model.RegionStats, len(h.regions)+2)
	total := 0
	for _, name := range h.regions {
		count := counts[name]
		total += count
		result[name] = model.NewRegionStats(count)
	}
	general := counts[region.GeneralRegion]
	result[region.GeneralRegion] = model.NewRegionStats(general)

	// Aggregate row, not a region of its own
	result["India"] = model.RegionStats{Fake: total + general, Total: total + general, Status: "low"}

	writeJSON(w, http.StatusOK, result)
}

type regionClaimsResponse struct {
	State    string   `json:"state"`
	FakeNews []string `json:"fake_news"`
}

// handleRegionClaims returns the accumulated fake-claim texts for one
// region. Unknown regions answer with an empty list, not a 404.
func (h *handlers) handleRegionClaims(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	claims, err := h.store.FakeClaims(r.Context(), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats unavailable")
		return
	}
	if claims == nil {
		claims = []string{}
	}

	writeJSON(w, http.StatusOK, regionClaimsResponse{State: name, FakeNews: claims})
}

// handleHealth is the liveness probe.
func (h *handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
