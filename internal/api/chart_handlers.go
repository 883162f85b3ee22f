package api

import (
	"net/http"

	"github.com/vytor/chessrank/internal/charts"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/services"
	"github.com/vytor/chessrank/internal/view"
)

// chartView rebuilds the leaderboard with the session's stored
// selections so chart order matches the table.
func (s *Server) chartView(w http.ResponseWriter, r *http.Request) (*services.Leaderboard, bool) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return nil, false
	}

	lb, err := s.LeaderboardService.Leaderboard(r.Context(), sess.ID, view.ParseSortKey(sess.SortKey), sess.PinnedPlayer)
	if err != nil {
		handleError(w, r, err)
		return nil, false
	}
	return lb, true
}

func (s *Server) handleWinsLossesChart(w http.ResponseWriter, r *http.Request) {
	lb, ok := s.chartView(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := charts.WinsLosses(w, lb.View); err != nil {
		logger.FromContext(r.Context()).Error("failed to render wins/losses chart: %v", err)
	}
}

func (s *Server) handleRatingStandingChart(w http.ResponseWriter, r *http.Request) {
	lb, ok := s.chartView(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := charts.RatingStanding(w, lb.View); err != nil {
		logger.FromContext(r.Context()).Error("failed to render rating/standing chart: %v", err)
	}
}
