package sqlite_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/repository"
	"github.com/vytor/chessrank/internal/repository/sqlite"
	"github.com/vytor/chessrank/internal/testutil"
)

type RepositorySuite struct {
	suite.Suite
	db       *sql.DB
	sessions repository.SessionRepository
	datasets repository.DatasetRepository
}

func (s *RepositorySuite) SetupTest() {
	s.db = testutil.NewTestDB(s.T())
	s.sessions = sqlite.NewSessionRepository(s.db)
	s.datasets = sqlite.NewDatasetRepository(s.db)
}

func (s *RepositorySuite) TestUpsertAndGetSession() {
	ctx := context.Background()

	created, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().NotNil(created)
	s.Assert().Equal("sess-1", created.ID)
	s.Assert().Equal("Final Standing", created.SortKey)
	s.Assert().Empty(created.PinnedPlayer)
	s.Assert().False(created.HasUpload)

	// Upsert again must not reset anything.
	s.Require().NoError(s.sessions.SaveSelections(ctx, "sess-1", "Win Rate", "Bravo"))
	again, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)
	s.Assert().Equal("Win Rate", again.SortKey)
	s.Assert().Equal("Bravo", again.PinnedPlayer)
}

func (s *RepositorySuite) TestGetSession_Unknown() {
	sess, err := s.sessions.Get(context.Background(), "missing")
	s.Require().NoError(err)
	s.Assert().Nil(sess)
}

func (s *RepositorySuite) TestReplaceAndListRows_NullsPreserved() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	rows := []models.Row{
		{
			Player:  "Alpha",
			Games:   sql.NullFloat64{Float64: 25, Valid: true},
			WinRate: sql.NullFloat64{Float64: 0.92, Valid: true},
			Model:   "Claude 3.5 Sonnet",
			Prompt:  "Careful positional play.",
		},
		{
			Player: "Bravo",
			Wins:   sql.NullFloat64{Float64: 7, Valid: true},
			Losses: sql.NullFloat64{Float64: 3, Valid: true},
		},
	}
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", rows))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)

	s.Assert().Equal("Alpha", got[0].Player)
	s.Assert().True(got[0].Games.Valid)
	s.Assert().False(got[0].Wins.Valid, "NULL must survive the round trip")
	s.Assert().False(got[0].FinalStanding.Valid)
	s.Assert().Equal("Claude 3.5 Sonnet", got[0].Model)

	s.Assert().Equal("Bravo", got[1].Player)
	s.Assert().True(got[1].Wins.Valid)
	s.Assert().False(got[1].Games.Valid)
}

func (s *RepositorySuite) TestReplaceRows_SwapsPreviousUpload() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	first := []models.Row{{Player: "Old"}}
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", first))

	second := []models.Row{{Player: "New1"}, {Player: "New2"}}
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", second))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Assert().Equal("New1", got[0].Player)
	s.Assert().Equal("New2", got[1].Player)
}

func (s *RepositorySuite) TestReplaceRows_LargeUploadBatches() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	// Enough rows to need several INSERT statements; a single statement
	// would blow SQLite's bind-variable limit.
	rows := make([]models.Row, 5000)
	for i := range rows {
		rows[i] = models.Row{
			Player:        fmt.Sprintf("Player%04d", i),
			FinalStanding: sql.NullFloat64{Float64: float64(i + 1), Valid: true},
		}
	}
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", rows))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().Len(got, 5000)
	s.Assert().Equal("Player0000", got[0].Player)
	s.Assert().Equal("Player4999", got[4999].Player, "order intact across batch boundaries")
}

func (s *RepositorySuite) TestReplaceRows_PreservesUploadOrder() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	rows := []models.Row{{Player: "C"}, {Player: "A"}, {Player: "B"}}
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", rows))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().Len(got, 3)
	s.Assert().Equal("C", got[0].Player)
	s.Assert().Equal("A", got[1].Player)
	s.Assert().Equal("B", got[2].Player)
}

func (s *RepositorySuite) TestDeleteRows_BackToEmpty() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", []models.Row{{Player: "Alpha"}}))
	s.Require().NoError(s.datasets.DeleteRows(ctx, "sess-1"))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func (s *RepositorySuite) TestMarkUploaded_RoundTrip() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)

	s.Require().NoError(s.sessions.MarkUploaded(ctx, "sess-1", true))
	sess, err := s.sessions.Get(ctx, "sess-1")
	s.Require().NoError(err)
	s.Assert().True(sess.HasUpload)

	// The flag does not depend on stored rows: it stays set for a
	// zero-row upload and clears on reset.
	s.Require().NoError(s.sessions.MarkUploaded(ctx, "sess-1", false))
	sess, err = s.sessions.Get(ctx, "sess-1")
	s.Require().NoError(err)
	s.Assert().False(sess.HasUpload)
}

func (s *RepositorySuite) TestDeleteSession_CascadesRows() {
	ctx := context.Background()
	_, err := s.sessions.Upsert(ctx, "sess-1")
	s.Require().NoError(err)
	s.Require().NoError(s.datasets.ReplaceRows(ctx, "sess-1", []models.Row{{Player: "Alpha"}}))

	s.Require().NoError(s.sessions.Delete(ctx, "sess-1"))

	got, err := s.datasets.ListRows(ctx, "sess-1")
	s.Require().NoError(err)
	s.Assert().Empty(got)
}

func TestRepositorySuite(t *testing.T) {
	suite.Run(t, new(RepositorySuite))
}
