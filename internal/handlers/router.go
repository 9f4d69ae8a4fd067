package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires all API routes. The router is wrapped in CORS handling so
// preflight requests are answered even for unmatched methods.
func NewRouter(assets *AssetHandler, portfolio *PortfolioHandler, fx *FXHandler, reports *ReportHandler) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"status":  "healthy",
			"service": "folio-backend",
		})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/assets", assets.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/assets", assets.HandleCreate).Methods(http.MethodPost)
	api.HandleFunc("/assets/samples", assets.HandleLoadSamples).Methods(http.MethodPost)
	api.HandleFunc("/assets/{id}", assets.HandleGet).Methods(http.MethodGet)
	api.HandleFunc("/assets/{id}", assets.HandleUpdate).Methods(http.MethodPut)
	api.HandleFunc("/assets/{id}", assets.HandleDelete).Methods(http.MethodDelete)

	api.HandleFunc("/portfolio/summary", portfolio.HandleSummary).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/analysis", portfolio.HandleAnalysis).Methods(http.MethodGet)
	api.HandleFunc("/portfolio/history", portfolio.HandleHistory).Methods(http.MethodGet)

	api.HandleFunc("/fx/latest", fx.HandleLatest).Methods(http.MethodGet)
	api.HandleFunc("/reports/{ticker}", reports.HandleGet).Methods(http.MethodGet)

	return corsMiddleware(r)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}
