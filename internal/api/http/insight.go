package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/ideaforge/ideaforge/server/internal/api/respond"
	"github.com/ideaforge/ideaforge/server/internal/core/insight"
	repocore "github.com/ideaforge/ideaforge/server/internal/core/repo"
)

// InsightHandler provides HTTP transport for the idea-analysis endpoints.
// Provider failures never surface to the caller: the service substitutes a
// canned payload and the endpoint still answers 200. Only input validation
// produces a 4xx.
type InsightHandler struct {
	insightService *insight.Service
}

func NewInsightHandler(svc *insight.Service) *InsightHandler {
	return &InsightHandler{insightService: svc}
}

// writeInsight finishes an insight request: validation errors become 400,
// anything else unexpected becomes 500, degraded results still answer 200.
func writeInsight(w http.ResponseWriter, result interface{}, degraded bool, err error) {
	if err != nil {
		if repocore.IsValidationError(err) {
			respond.WriteBadRequest(w, err.Error())
			return
		}
		log.Error().Err(err).Msg("insight operation failed")
		respond.WriteInternalError(w, "Internal server error")
		return
	}
	if degraded {
		log.Warn().Msg("serving degraded-mode payload")
	}
	respond.WriteJSON(w, http.StatusOK, result)
}

// Evolve POST /api/evolve
func (h *InsightHandler) Evolve(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
		Goal string `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	result, degraded, err := h.insightService.Evolve(r.Context(), req.Idea, req.Goal)
	writeInsight(w, result, degraded, err)
}

// Analyze POST /api/analyze
func (h *InsightHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	result, degraded, err := h.insightService.Analyze(r.Context(), req.Idea)
	writeInsight(w, result, degraded, err)
}

// BusinessInsights POST /api/business-insights
func (h *InsightHandler) BusinessInsights(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
		Goal string `json:"goal"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	result, degraded, err := h.insightService.BusinessInsights(r.Context(), req.Idea, req.Goal)
	writeInsight(w, result, degraded, err)
}

// Roast POST /api/roast
func (h *InsightHandler) Roast(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	result, degraded, err := h.insightService.Roast(r.Context(), req.Idea)
	writeInsight(w, result, degraded, err)
}

// Research POST /api/research
func (h *InsightHandler) Research(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.WriteBadRequest(w, "Invalid JSON")
		return
	}
	result, degraded, err := h.insightService.Research(r.Context(), req.Idea)
	writeInsight(w, result, degraded, err)
}

// Debate POST /api/ai-debate
//
// Debate and Mix perform no input validation, so a body that fails to
// decode is treated like any other generation failure: proceed with what
// we have and let the service degrade to its canned payload.
func (h *InsightHandler) Debate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea string `json:"idea"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("ai-debate body did not decode, proceeding with empty idea")
	}
	result, degraded, err := h.insightService.Debate(r.Context(), req.Idea)
	writeInsight(w, result, degraded, err)
}

// Mix POST /api/idea-mixer
func (h *InsightHandler) Mix(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Idea1 string `json:"idea1"`
		Idea2 string `json:"idea2"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("idea-mixer body did not decode, proceeding with empty ideas")
	}
	result, degraded, err := h.insightService.Mix(r.Context(), req.Idea1, req.Idea2)
	writeInsight(w, result, degraded, err)
}
