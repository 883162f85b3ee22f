package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/vytor/chessrank/internal/errors"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/repository"
	"github.com/vytor/chessrank/internal/view"
)

var defaultSortKey = view.SortByFinalStanding

// SessionService owns the per-browser dashboard state: identity,
// control selections, and resetting back to demo data.
type SessionService interface {
	// EnsureSession returns the session for id, creating it when id is
	// empty or unknown. The returned session ID goes back into the
	// cookie.
	EnsureSession(ctx context.Context, id string) (*models.Session, error)
	// SaveSelections persists the current sort key and pin choice.
	SaveSelections(ctx context.Context, id, sortKey, pinnedPlayer string) error
	// Reset drops the session's uploaded dataset and clears the pin,
	// falling back to the demo dataset on the next render.
	Reset(ctx context.Context, id string) error
}

type sessionService struct {
	sessions repository.SessionRepository
	datasets repository.DatasetRepository
}

// NewSessionService creates a SessionService.
func NewSessionService(sessions repository.SessionRepository, datasets repository.DatasetRepository) SessionService {
	return &sessionService{sessions: sessions, datasets: datasets}
}

func (s *sessionService) EnsureSession(ctx context.Context, id string) (*models.Session, error) {
	log := logger.FromContext(ctx)

	if id != "" {
		sess, err := s.sessions.Get(ctx, id)
		if err != nil {
			return nil, errors.NewInternalError(err)
		}
		if sess != nil {
			return sess, nil
		}
		log.Debug("stale session cookie %s, issuing a new session", id)
	}

	newID := uuid.NewString()
	sess, err := s.sessions.Upsert(ctx, newID)
	if err != nil {
		log.Error("failed to create session: %v", err)
		return nil, errors.NewInternalError(err)
	}
	log.Info("created session %s", newID)
	return sess, nil
}

func (s *sessionService) SaveSelections(ctx context.Context, id, sortKey, pinnedPlayer string) error {
	if err := s.sessions.SaveSelections(ctx, id, sortKey, pinnedPlayer); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}

func (s *sessionService) Reset(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)
	log.Info("resetting session %s to demo data", id)

	if err := s.datasets.DeleteRows(ctx, id); err != nil {
		return errors.NewInternalError(err)
	}
	if err := s.sessions.MarkUploaded(ctx, id, false); err != nil {
		return errors.NewInternalError(err)
	}
	// The pinned player likely does not exist in the demo set; a stale
	// pin is a defined no-op, but clearing it keeps the controls tidy.
	if err := s.sessions.SaveSelections(ctx, id, string(defaultSortKey), ""); err != nil {
		return errors.NewInternalError(err)
	}
	return nil
}
