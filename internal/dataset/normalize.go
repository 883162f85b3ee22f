// Package dataset turns raw tabular input into normalized rows the
// inference and view stages can work with.
package dataset

import (
	"database/sql"
	"strconv"
	"strings"

	"github.com/vytor/chessrank/internal/models"
)

// Normalize maps an arbitrary header/record table onto the recognized
// schema: column names are lower-cased and trimmed, unrecognized columns
// are dropped, missing recognized columns come out null, numeric cells
// that fail to parse come out null, and percentage-scale win rates are
// rescaled to fractions. It never returns an error; bad cells are
// absorbed, not surfaced.
func Normalize(header []string, records [][]string) []models.Row {
	index := map[string]int{}
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	rows := make([]models.Row, 0, len(records))
	for _, rec := range records {
		cell := func(col string) (string, bool) {
			i, ok := index[col]
			if !ok || i >= len(rec) {
				return "", false
			}
			return strings.TrimSpace(rec[i]), true
		}

		var row models.Row
		if v, ok := cell(models.ColPlayer); ok {
			row.Player = v
		}
		if v, ok := cell(models.ColModel); ok {
			row.Model = v
		}
		if v, ok := cell(models.ColPrompt); ok {
			row.Prompt = v
		}
		row.FinalStanding = coerce(cell(models.ColFinalStanding))
		row.WinRate = coerce(cell(models.ColWinRate))
		row.Wins = coerce(cell(models.ColWins))
		row.Losses = coerce(cell(models.ColLosses))
		row.Games = coerce(cell(models.ColGames))
		row.MuRating = coerce(cell(models.ColMuRating))

		// Win rates above 1 are percentages; rescale before inference.
		if row.WinRate.Valid && row.WinRate.Float64 > 1 {
			row.WinRate.Float64 /= 100
		}

		rows = append(rows, row)
	}
	return rows
}

// coerce parses a cell as a number, mapping absent or unparseable
// values to an invalid NullFloat64.
func coerce(s string, present bool) sql.NullFloat64 {
	if !present || s == "" {
		return sql.NullFloat64{}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}
