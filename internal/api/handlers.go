package api

import (
	"html/template"
	"net/http"

	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/services"
)

// Server holds the handler dependencies.
type Server struct {
	SessionService     services.SessionService
	ImportService      services.ImportService
	LeaderboardService services.LeaderboardService
	Templates          *template.Template
	MaxUploadBytes     int64
	StaticDir          string
}

type pageData map[string]any

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data pageData) {
	if data == nil {
		data = pageData{}
	}
	if _, ok := data["session"]; !ok {
		data["session"] = sessionFromContext(r.Context())
	}

	log := logger.FromContext(r.Context())
	if err := s.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Error("failed to render template %s: %v", name, err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
