// Package stats reconstructs missing win/loss statistics from whatever
// subset of them a row carries.
package stats

import (
	"database/sql"
	"math"

	"github.com/vytor/chessrank/internal/models"
)

// Fill applies the derivation rules to every row, in order, so later
// rules see earlier fills:
//
//  1. wins   = round(games * win_rate)
//  2. losses = games - wins
//  3. games  = wins + losses
//  4. win_rate = wins / games (games > 0)
//
// Each rule only fires when its target is missing and its inputs are
// present; a value that arrived in the input is never overwritten, even
// when it contradicts the others. Whatever is still missing afterwards
// is zero-filled, so the result is always fully numeric. Fill is
// idempotent: running it on its own output changes nothing.
func Fill(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, row := range rows {
		if !row.Wins.Valid && row.Games.Valid && row.WinRate.Valid {
			row.Wins = known(math.Round(row.Games.Float64 * row.WinRate.Float64))
		}
		if !row.Losses.Valid && row.Games.Valid && row.Wins.Valid {
			row.Losses = known(row.Games.Float64 - row.Wins.Float64)
		}
		if !row.Games.Valid && row.Wins.Valid && row.Losses.Valid {
			row.Games = known(row.Wins.Float64 + row.Losses.Float64)
		}
		if !row.WinRate.Valid && row.Wins.Valid && row.Games.Valid && row.Games.Float64 > 0 {
			row.WinRate = known(row.Wins.Float64 / row.Games.Float64)
		}

		zeroFill(&row.Wins)
		zeroFill(&row.Losses)
		zeroFill(&row.Games)
		zeroFill(&row.WinRate)
		zeroFill(&row.MuRating)
		zeroFill(&row.FinalStanding)

		out[i] = row
	}
	return out
}

// Materialize converts filled rows to concrete stats. Counting fields
// round to integers; the zero sentinels introduced by Fill survive the
// conversion unchanged.
func Materialize(rows []models.Row) []models.PlayerStats {
	out := make([]models.PlayerStats, len(rows))
	for i, row := range rows {
		out[i] = models.PlayerStats{
			Player:        row.Player,
			FinalStanding: int(math.Round(row.FinalStanding.Float64)),
			WinRate:       row.WinRate.Float64,
			Wins:          int(math.Round(row.Wins.Float64)),
			Losses:        int(math.Round(row.Losses.Float64)),
			Games:         int(math.Round(row.Games.Float64)),
			MuRating:      row.MuRating.Float64,
			Model:         row.Model,
			Prompt:        row.Prompt,
		}
	}
	return out
}

func known(v float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: v, Valid: true}
}

func zeroFill(v *sql.NullFloat64) {
	if !v.Valid {
		*v = sql.NullFloat64{Float64: 0, Valid: true}
	}
}
