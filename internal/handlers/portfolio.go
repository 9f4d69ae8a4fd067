package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/hanwool/folio/internal/services"
)

type PortfolioHandler struct {
	analysis services.AnalysisService
}

func NewPortfolioHandler(analysis services.AnalysisService) *PortfolioHandler {
	return &PortfolioHandler{analysis: analysis}
}

// GET /api/portfolio/summary
func (h *PortfolioHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.analysis.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(summary)
}

// GET /api/portfolio/analysis?days=30
func (h *PortfolioHandler) HandleAnalysis(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	analyses, err := h.analysis.Analyze(r.Context(), historyDays(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(analyses)
}

// GET /api/portfolio/history?days=30
func (h *PortfolioHandler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	series, err := h.analysis.ValueHistory(r.Context(), historyDays(r))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(series)
}

func historyDays(r *http.Request) int {
	if raw := r.URL.Query().Get("days"); raw != "" {
		if days, err := strconv.Atoi(raw); err == nil && days > 0 {
			return days
		}
	}
	return 0 // service default
}
