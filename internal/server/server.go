// Package server is the HTTP presentation adapter over a forecast workflow.
// It exposes the catalog, the session state, and the resolved Prediction as
// JSON; the core packages never see the transport.
package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"matchup-forecast/internal/catalog"
	"matchup-forecast/internal/forecast"
	"matchup-forecast/internal/workflow"
)

// Server wires the workflow and catalog into HTTP handlers.
type Server struct {
	wf  *workflow.Workflow
	cat *catalog.Catalog
}

// New creates a server over one workflow session.
func New(wf *workflow.Workflow, cat *catalog.Catalog) *Server {
	return &Server{wf: wf, cat: cat}
}

// Router builds the route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/teams", s.handleTeams).Methods(http.MethodGet)
	r.HandleFunc("/forecast", s.handleForecast).Methods(http.MethodGet)
	r.HandleFunc("/forecast/run", s.handleRun).Methods(http.MethodPost)
	r.HandleFunc("/selection/{side}", s.handleClear).Methods(http.MethodDelete)
	r.HandleFunc("/selection/{side}/{code}", s.handleSelect).Methods(http.MethodPut)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (s *Server) handleTeams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"teams": s.cat.Teams()})
}

func (s *Server) handleForecast(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.wf.Snapshot())
}

func (s *Server) handleRun(w http.ResponseWriter, r *http.Request) {
	if s.wf.Trigger() {
		writeJSON(w, http.StatusAccepted, s.wf.Snapshot())
		return
	}

	// The workflow treats a rejected trigger as a silent no-op; the HTTP
	// surface reports why so a client can distinguish the two guards.
	if s.wf.State() == workflow.StateComputing {
		writeError(w, http.StatusConflict, "a forecast is already computing")
		return
	}
	writeError(w, http.StatusUnprocessableEntity, "both selections are required before running a forecast")
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	side, ok := parseSide(vars["side"])
	if !ok {
		writeError(w, http.StatusBadRequest, "side must be home or away")
		return
	}

	err := s.wf.Select(side, vars["code"])
	switch {
	case errors.Is(err, catalog.ErrUnknownTeam):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, forecast.ErrDuplicateSelection):
		writeError(w, http.StatusConflict, err.Error())
	case err != nil:
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, s.wf.Snapshot())
	}
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	side, ok := parseSide(mux.Vars(r)["side"])
	if !ok {
		writeError(w, http.StatusBadRequest, "side must be home or away")
		return
	}

	s.wf.Clear(side)
	writeJSON(w, http.StatusOK, s.wf.Snapshot())
}

func parseSide(s string) (forecast.Side, bool) {
	switch s {
	case "home":
		return forecast.SideHome, true
	case "away":
		return forecast.SideAway, true
	default:
		return "", false
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Response encode failed", "err", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
