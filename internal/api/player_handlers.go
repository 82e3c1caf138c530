package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vytor/gridstats/internal/logger"
	"github.com/vytor/gridstats/internal/plan"
	"github.com/vytor/gridstats/internal/position"
	"github.com/vytor/gridstats/internal/services"
	"github.com/vytor/gridstats/internal/viewport"
)

const planHeader = "X-Plan"

func (s *Server) handlePositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]any{"positions": position.All()})
}

func (s *Server) handlePlayerTrends(w http.ResponseWriter, r *http.Request) {
	req, err := playerRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	result, err := s.TrendService.PlayerTrends(r.Context(), req.PlayerID, req.Year, req.Position)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleGameLog(w http.ResponseWriter, r *http.Request) {
	req, err := playerRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	gameLog, err := s.DashboardService.GameLog(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, gameLog)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	req, err := playerRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	dash, err := s.DashboardService.Build(r.Context(), req)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, dash)
}

func (s *Server) handleSyncSeason(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	req, err := playerRequest(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.JobQueue.EnqueueSync(req.PlayerID, req.Year, req.Position); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("queued season sync: player_id=%d, year=%d, position=%s", req.PlayerID, req.Year, req.Position)
	writeJSON(w, r, http.StatusAccepted, map[string]any{
		"status":    "queued",
		"player_id": req.PlayerID,
		"year":      req.Year,
		"position":  req.Position,
	})
}

func (s *Server) handleDeleteSeason(w http.ResponseWriter, r *http.Request) {
	playerID, err := playerIDParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}
	year, err := yearValue(chi.URLParam(r, "year"))
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.SeasonService.Delete(r.Context(), playerID, year); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// playerRequest reads the player, season and display inputs shared by the
// player endpoints.
func playerRequest(r *http.Request) (services.PlayerRequest, error) {
	playerID, err := playerIDParam(r)
	if err != nil {
		return services.PlayerRequest{}, err
	}

	q := r.URL.Query()
	year, err := yearValue(q.Get("year"))
	if err != nil {
		return services.PlayerRequest{}, err
	}
	pos, err := positionValue(q.Get("position"))
	if err != nil {
		return services.PlayerRequest{}, err
	}

	return services.PlayerRequest{
		PlayerID: playerID,
		Year:     year,
		Position: pos,
		Team:     q.Get("team"),
		Viewport: viewport.Parse(q.Get("width")),
		Plan:     plan.Parse(r.Header.Get(planHeader)),
	}, nil
}
