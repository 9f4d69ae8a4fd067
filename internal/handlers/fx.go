package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/hanwool/folio/internal/services"
)

type FXHandler struct {
	fx services.FXService
}

func NewFXHandler(fx services.FXService) *FXHandler {
	return &FXHandler{fx: fx}
}

// GET /api/fx/latest
func (h *FXHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	rate, err := h.fx.LatestRate(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	json.NewEncoder(w).Encode(rate)
}
