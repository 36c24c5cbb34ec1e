package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	contractx "github.com/wardops/simrs-agents/agent/contract"
	dashboardx "github.com/wardops/simrs-agents/agent/dashboard"
	orchestratorx "github.com/wardops/simrs-agents/agent/orchestrator"
	statex "github.com/wardops/simrs-agents/agent/state"
	"github.com/wardops/simrs-agents/internal/metrics"
)

// Server wires the conversation service and the domain store into the HTTP
// boundary the browser talks to.
type Server struct {
	chat  *orchestratorx.Service
	store *statex.Store
}

func NewServer(chat *orchestratorx.Service, store *statex.Store) *Server {
	return &Server{chat: chat, store: store}
}

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	orchestratorx.TurnResult
	Aborted bool `json:"aborted,omitempty"`
}

// ChatHandler runs one conversation turn. Turn-local failures (backend
// errors, round cap) still answer 200: the turn produced transcript entries
// and the session stays usable. Only malformed input and concurrent turns
// are HTTP errors.
func (s *Server) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.ChatTurnsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	res, err := s.chat.HandleMessage(r.Context(), req.Message)
	switch {
	case errors.Is(err, contractx.ErrEmptyMessage):
		metrics.ChatTurnsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusBadRequest, "message is empty")
		return
	case errors.Is(err, contractx.ErrTurnInFlight):
		metrics.ChatTurnsTotal.WithLabelValues("rejected").Inc()
		writeError(w, http.StatusConflict, "a turn is already running")
		return
	}

	for _, tr := range res.ToolResults {
		outcome := "ok"
		if tr.Error != "" {
			outcome = "error"
		}
		metrics.ToolExecutionsTotal.WithLabelValues(tr.Tool, outcome).Inc()
	}

	if err != nil {
		metrics.ChatTurnsTotal.WithLabelValues("aborted").Inc()
		log.Warn().Err(err).Msg("conversation turn aborted")
		writeJSON(w, http.StatusOK, chatResponse{TurnResult: res, Aborted: true})
		return
	}

	metrics.ChatTurnsTotal.WithLabelValues("completed").Inc()
	writeJSON(w, http.StatusOK, chatResponse{TurnResult: res})
}

func (s *Server) TranscriptHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"messages": s.chat.Transcript(),
	})
}

func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, dashboardx.Build(s.store.Snapshot()))
}

func (s *Server) AuditHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"logs": s.store.AuditLog(),
	})
}

func (s *Server) StateHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
