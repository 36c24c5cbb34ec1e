package api

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wardops/simrs-agents/internal/metrics"
)

// SetupRoutes configures and returns the HTTP router.
func (s *Server) SetupRoutes() *mux.Router {
	r := mux.NewRouter()

	r.Use(metrics.Middleware)

	r.HandleFunc("/healthz", s.HealthHandler).Methods("GET")

	r.HandleFunc("/api/chat", s.ChatHandler).Methods("POST")
	r.HandleFunc("/api/transcript", s.TranscriptHandler).Methods("GET")
	r.HandleFunc("/api/dashboard", s.DashboardHandler).Methods("GET")
	r.HandleFunc("/api/audit", s.AuditHandler).Methods("GET")
	r.HandleFunc("/api/state", s.StateHandler).Methods("GET")

	// Prometheus metrics endpoint
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return r
}
