package dataset_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/chessrank/internal/dataset"
)

func TestNormalize_HeaderCaseAndWhitespace(t *testing.T) {
	rows := dataset.Normalize(
		[]string{" Player ", "FINAL_STANDING", "Win_Rate"},
		[][]string{{"Alpha", "1", "0.92"}},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].Player)
	require.True(t, rows[0].FinalStanding.Valid)
	assert.Equal(t, 1.0, rows[0].FinalStanding.Float64)
	require.True(t, rows[0].WinRate.Valid)
	assert.Equal(t, 0.92, rows[0].WinRate.Float64)
}

func TestNormalize_MissingColumnsAreNull(t *testing.T) {
	rows := dataset.Normalize(
		[]string{"player", "games"},
		[][]string{{"Alpha", "25"}},
	)

	require.Len(t, rows, 1)
	assert.False(t, rows[0].Wins.Valid)
	assert.False(t, rows[0].Losses.Valid)
	assert.False(t, rows[0].WinRate.Valid)
	assert.False(t, rows[0].FinalStanding.Valid)
	assert.False(t, rows[0].MuRating.Valid)
	require.True(t, rows[0].Games.Valid)
	assert.Equal(t, 25.0, rows[0].Games.Float64)
}

func TestNormalize_UnparseableCellBecomesNull(t *testing.T) {
	rows := dataset.Normalize(
		[]string{"player", "wins", "games"},
		[][]string{{"Alpha", "lots", "25"}},
	)

	require.Len(t, rows, 1)
	assert.False(t, rows[0].Wins.Valid, "unparseable cell must coerce to null, not error")
	assert.True(t, rows[0].Games.Valid)
}

func TestNormalize_PercentWinRateRescaled(t *testing.T) {
	rows := dataset.Normalize(
		[]string{"player", "win_rate"},
		[][]string{{"Alpha", "92"}, {"Bravo", "0.92"}, {"Charlie", "1"}},
	)

	require.Len(t, rows, 3)
	assert.InDelta(t, 0.92, rows[0].WinRate.Float64, 1e-9, "92 is a percentage")
	assert.InDelta(t, 0.92, rows[1].WinRate.Float64, 1e-9, "0.92 is already a fraction")
	assert.InDelta(t, 1.0, rows[2].WinRate.Float64, 1e-9, "exactly 1 stays a fraction")
}

func TestNormalize_UnrecognizedColumnsIgnored(t *testing.T) {
	rows := dataset.Normalize(
		[]string{"player", "favorite_opening", "games"},
		[][]string{{"Alpha", "Sicilian", "25"}},
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "Alpha", rows[0].Player)
	assert.Equal(t, 25.0, rows[0].Games.Float64)
}

func TestNormalize_ShortRecordPadded(t *testing.T) {
	rows := dataset.Normalize(
		[]string{"player", "wins", "games"},
		[][]string{{"Alpha", "10"}},
	)

	require.Len(t, rows, 1)
	assert.True(t, rows[0].Wins.Valid)
	assert.False(t, rows[0].Games.Valid, "cell beyond record length is null")
}

func TestParseCSV_RoundTrip(t *testing.T) {
	input := strings.Join([]string{
		"Player, Win_Rate ,games,model",
		"Alpha,0.92,25,Claude 3.5 Sonnet",
		"Bravo,78,27,Claude 3 Opus",
	}, "\n")

	rows, err := dataset.ParseCSV(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0].Player)
	assert.InDelta(t, 0.92, rows[0].WinRate.Float64, 1e-9)
	assert.InDelta(t, 0.78, rows[1].WinRate.Float64, 1e-9, "percent-scale rate rescaled during parse")
	assert.Equal(t, "Claude 3 Opus", rows[1].Model)
}

func TestParseCSV_EmptyFileIsFatal(t *testing.T) {
	_, err := dataset.ParseCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseCSV_MalformedQuotingIsFatal(t *testing.T) {
	input := "player,prompt\nAlpha,\"unterminated\n"
	_, err := dataset.ParseCSV(strings.NewReader(input))
	assert.Error(t, err)
}

func TestDemo_Shape(t *testing.T) {
	rows := dataset.Demo()
	require.Len(t, rows, 5)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Player)
		assert.True(t, r.FinalStanding.Valid)
		assert.True(t, r.WinRate.Valid)
		assert.True(t, r.Games.Valid)
		assert.True(t, r.MuRating.Valid)
		assert.False(t, r.Wins.Valid, "demo leaves wins for inference")
		assert.False(t, r.Losses.Valid, "demo leaves losses for inference")
		assert.NotEmpty(t, r.Model)
		assert.NotEmpty(t, r.Prompt)
	}
	assert.Equal(t, []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo"}, names)
}
