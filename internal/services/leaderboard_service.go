package services

import (
	"context"

	"github.com/vytor/chessrank/internal/dataset"
	"github.com/vytor/chessrank/internal/errors"
	"github.com/vytor/chessrank/internal/logger"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/repository"
	"github.com/vytor/chessrank/internal/stats"
	"github.com/vytor/chessrank/internal/view"
)

// Leaderboard is everything one render of the dashboard needs.
type Leaderboard struct {
	View    view.View
	Summary models.Summary
	// Demo reports that the built-in dataset is showing because the
	// session has no upload.
	Demo bool
}

// LeaderboardService recomputes the full leaderboard from the session's
// raw dataset on every call; nothing is cached between renders.
type LeaderboardService interface {
	Leaderboard(ctx context.Context, sessionID string, sortKey view.SortKey, pinnedPlayer string) (*Leaderboard, error)
}

type leaderboardService struct {
	sessions repository.SessionRepository
	datasets repository.DatasetRepository
}

// NewLeaderboardService creates a LeaderboardService.
func NewLeaderboardService(sessions repository.SessionRepository, datasets repository.DatasetRepository) LeaderboardService {
	return &leaderboardService{sessions: sessions, datasets: datasets}
}

func (s *leaderboardService) Leaderboard(ctx context.Context, sessionID string, sortKey view.SortKey, pinnedPlayer string) (*Leaderboard, error) {
	log := logger.FromContext(ctx)
	log.Debug("building leaderboard: session_id=%s, sort_key=%s, pinned=%s", sessionID, sortKey, pinnedPlayer)

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		log.Error("failed to load session: %v", err)
		return nil, errors.NewInternalError(err)
	}

	// The demo dataset stands in only when nothing was ever uploaded.
	// An upload that yielded zero rows renders as an empty board.
	demo := sess == nil || !sess.HasUpload

	var rows []models.Row
	if demo {
		rows = dataset.Demo()
	} else {
		rows, err = s.datasets.ListRows(ctx, sessionID)
		if err != nil {
			log.Error("failed to load dataset rows: %v", err)
			return nil, errors.NewInternalError(err)
		}
	}

	players := stats.Materialize(stats.Fill(rows))
	v := view.Build(players, sortKey, pinnedPlayer)

	log.Debug("leaderboard built: players=%d, demo=%v", len(v.Entries), demo)
	return &Leaderboard{
		View:    v,
		Summary: view.Summarize(v),
		Demo:    demo,
	}, nil
}
