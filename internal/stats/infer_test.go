package stats_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessrank/internal/dataset"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/stats"
)

func known(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func TestFill_WinsAndLossesFromGamesAndRate(t *testing.T) {
	rows := stats.Fill([]models.Row{{
		Player:  "Alpha",
		Games:   known(20),
		WinRate: known(0.5),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, known(10), rows[0].Wins)
	assert.Equal(t, known(10), rows[0].Losses)
}

func TestFill_GamesAndRateFromWinsAndLosses(t *testing.T) {
	rows := stats.Fill([]models.Row{{
		Player: "Bravo",
		Wins:   known(7),
		Losses: known(3),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, known(10), rows[0].Games)
	assert.InDelta(t, 0.7, rows[0].WinRate.Float64, 1e-9)
	assert.True(t, rows[0].WinRate.Valid)
}

func TestFill_AllMissingZeroFilled(t *testing.T) {
	rows := stats.Fill([]models.Row{{Player: "Charlie"}})

	require.Len(t, rows, 1)
	assert.Equal(t, known(0), rows[0].Wins)
	assert.Equal(t, known(0), rows[0].Losses)
	assert.Equal(t, known(0), rows[0].Games)
	assert.Equal(t, known(0), rows[0].WinRate)
	assert.Equal(t, known(0), rows[0].MuRating)
	assert.Equal(t, known(0), rows[0].FinalStanding)
}

func TestFill_ZeroGamesGuardsRateDivision(t *testing.T) {
	rows := stats.Fill([]models.Row{{
		Player: "Delta",
		Wins:   known(0),
		Games:  known(0),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, known(0), rows[0].WinRate, "rate falls through to zero-fill when games == 0")
}

func TestFill_NeverOverwritesPresentValues(t *testing.T) {
	// Self-contradictory on purpose: wins+losses != games.
	in := models.Row{
		Player:  "Echo",
		Wins:    known(5),
		Losses:  known(5),
		Games:   known(30),
		WinRate: known(0.9),
	}

	rows := stats.Fill([]models.Row{in})

	require.Len(t, rows, 1)
	assert.Equal(t, in.Wins, rows[0].Wins)
	assert.Equal(t, in.Losses, rows[0].Losses)
	assert.Equal(t, in.Games, rows[0].Games)
	assert.Equal(t, in.WinRate, rows[0].WinRate)
}

func TestFill_RoundsEstimatedWins(t *testing.T) {
	rows := stats.Fill([]models.Row{{
		Player:  "Alpha",
		Games:   known(25),
		WinRate: known(0.92),
	}})

	require.Len(t, rows, 1)
	assert.Equal(t, known(23), rows[0].Wins)
	assert.Equal(t, known(2), rows[0].Losses)
}

func TestFill_Idempotent(t *testing.T) {
	inputs := [][]models.Row{
		dataset.Demo(),
		{{Player: "X"}},
		{{Player: "Y", Wins: known(7), Losses: known(3)}},
		{{Player: "Z", Games: known(20), WinRate: known(0.5)}},
	}

	for _, in := range inputs {
		once := stats.Fill(in)
		twice := stats.Fill(once)
		assert.Equal(t, once, twice)
	}
}

func TestFill_DoesNotMutateInput(t *testing.T) {
	in := []models.Row{{Player: "Alpha", Games: known(20), WinRate: known(0.5)}}
	_ = stats.Fill(in)
	assert.False(t, in[0].Wins.Valid, "input slice must stay untouched")
}

func TestMaterialize_DemoInvariants(t *testing.T) {
	players := stats.Materialize(stats.Fill(dataset.Demo()))

	require.Len(t, players, 5)
	for _, p := range players {
		assert.GreaterOrEqual(t, p.WinRate, 0.0)
		assert.LessOrEqual(t, p.WinRate, 1.0)
		assert.GreaterOrEqual(t, p.Wins, 0)
		assert.GreaterOrEqual(t, p.Losses, 0)
		assert.GreaterOrEqual(t, p.Games, 0)
		assert.GreaterOrEqual(t, p.FinalStanding, 0)
		assert.Equal(t, p.Games, p.Wins+p.Losses, "inferred wins and losses add up for consistent input")
	}
}

func TestMaterialize_ZeroSentinels(t *testing.T) {
	players := stats.Materialize(stats.Fill([]models.Row{{Player: "Nobody"}}))

	require.Len(t, players, 1)
	assert.Equal(t, 0, players[0].FinalStanding)
	assert.Equal(t, 0, players[0].Games)
	assert.Equal(t, 0.0, players[0].WinRate)
}
