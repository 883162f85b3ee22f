package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(s.sessionMiddleware)

	r.Get("/", s.handleDashboard)
	r.Post("/upload", s.handleUpload)
	r.Post("/reset", s.handleReset)
	r.Get("/charts/wins-losses.svg", s.handleWinsLossesChart)
	r.Get("/charts/rating-standing.svg", s.handleRatingStandingChart)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(s.StaticDir))))
	return r
}
