package api

import (
	"net/http"

	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/view"
)

// handleDashboard renders the leaderboard. Sort and pin selections
// arrive as query parameters; they are persisted to the session so the
// chart endpoints render against the same view.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	sortKey := view.ParseSortKey(sess.SortKey)
	pinned := sess.PinnedPlayer
	if query.Has("sort") || query.Has("pin") {
		if query.Has("sort") {
			sortKey = view.ParseSortKey(query.Get("sort"))
		}
		if query.Has("pin") {
			pinned = query.Get("pin")
			if pinned == "None" {
				pinned = ""
			}
		}
		if err := s.SessionService.SaveSelections(r.Context(), sess.ID, string(sortKey), pinned); err != nil {
			handleError(w, r, err)
			return
		}
	}

	lb, err := s.LeaderboardService.Leaderboard(r.Context(), sess.ID, sortKey, pinned)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Debug("rendering dashboard: players=%d, sort=%s, pin=%s, demo=%v",
		lb.Summary.Players, sortKey, pinned, lb.Demo)

	s.render(w, r, "pages/dashboard.html", pageData{
		"entries":   lb.View.Entries,
		"players":   lb.View.Players(),
		"summary":   lb.Summary,
		"sort_keys": view.SortKeys,
		"sort_key":  sortKey,
		"pinned":    pinned,
		"demo":      lb.Demo,
	})
}

// handleReset drops the session's upload and selections.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sess := sessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	if err := s.SessionService.Reset(r.Context(), sess.ID); err != nil {
		handleError(w, r, err)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
