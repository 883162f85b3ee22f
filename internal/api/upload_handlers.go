package api

import (
	"net/http"

	"github.com/vytor/chessrank/internal/errors"
	"github.com/vytor/chessrank/internal/logger"
)

// handleUpload replaces the session's dataset with an uploaded CSV. A
// file that cannot be parsed rejects the whole upload; the previously
// shown leaderboard stays untouched.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sess := sessionFromContext(r.Context())
	if sess == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, s.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.MaxUploadBytes); err != nil {
		handleError(w, r, errors.NewBadRequestError("upload too large or malformed"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handleError(w, r, errors.NewBadRequestError("missing file field"))
		return
	}
	defer file.Close()

	log.Info("processing upload: name=%s, size=%d", header.Filename, header.Size)

	count, err := s.ImportService.ImportCSV(r.Context(), sess.ID, file)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("upload stored: rows=%d", count)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
