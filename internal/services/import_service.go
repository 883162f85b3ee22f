package services

import (
	"context"
	"io"

	"github.com/vytor/chessrank/internal/dataset"
	"github.com/vytor/chessrank/internal/errors"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/repository"
)

// ImportService replaces a session's dataset with an uploaded file.
type ImportService interface {
	// ImportCSV parses and normalizes the upload and stores its rows,
	// returning how many were stored. A structurally broken file fails
	// the whole import; nothing is partially applied.
	ImportCSV(ctx context.Context, sessionID string, r io.Reader) (int, error)
}

type importService struct {
	sessions repository.SessionRepository
	datasets repository.DatasetRepository
}

// NewImportService creates an ImportService.
func NewImportService(sessions repository.SessionRepository, datasets repository.DatasetRepository) ImportService {
	return &importService{sessions: sessions, datasets: datasets}
}

func (s *importService) ImportCSV(ctx context.Context, sessionID string, r io.Reader) (int, error) {
	log := logger.FromContext(ctx)
	log.Debug("importing CSV: session_id=%s", sessionID)

	rows, err := dataset.ParseCSV(r)
	if err != nil {
		log.Warn("CSV import rejected: %v", err)
		return 0, errors.WrapBadRequestError("could not parse the uploaded file as CSV", err)
	}

	if err := s.datasets.ReplaceRows(ctx, sessionID, rows); err != nil {
		log.Error("failed to store imported rows: %v", err)
		return 0, errors.NewInternalError(err)
	}
	// A header-only file is a valid upload; flag it so the dashboard
	// renders the (empty) board instead of falling back to demo data.
	if err := s.sessions.MarkUploaded(ctx, sessionID, true); err != nil {
		log.Error("failed to flag session upload: %v", err)
		return 0, errors.NewInternalError(err)
	}

	log.Info("imported %d rows for session %s", len(rows), sessionID)
	return len(rows), nil
}
