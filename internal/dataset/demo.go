package dataset

import (
	"database/sql"

	"github.com/vytor/chessrank/internal/models"
)

// Demo returns the built-in five-player dataset shown when nothing has
// been uploaded. Wins and losses are intentionally absent so the fill
// rules reconstruct them from games and win rate.
func Demo() []models.Row {
	demo := []struct {
		player   string
		standing float64
		winRate  float64
		games    float64
		muRating float64
		model    string
		prompt   string
	}{
		{"Alpha", 1, 0.92, 25, 2100, "Claude 3.5 Sonnet", "Careful positional play."},
		{"Bravo", 3, 0.78, 27, 1980, "Claude 3 Opus", "Dynamic attacking style."},
		{"Charlie", 5, 0.65, 26, 1850, "Claude 3 Haiku", "Stable and defensive."},
		{"Delta", 2, 0.84, 24, 2050, "Claude 3.5 Sonnet", "Balanced tactics and strategy."},
		{"Echo", 4, 0.81, 23, 1995, "Claude 3 Sonnet", "Exploiting weak squares."},
	}

	rows := make([]models.Row, 0, len(demo))
	for _, d := range demo {
		rows = append(rows, models.Row{
			Player:        d.player,
			FinalStanding: sql.NullFloat64{Float64: d.standing, Valid: true},
			WinRate:       sql.NullFloat64{Float64: d.winRate, Valid: true},
			Games:         sql.NullFloat64{Float64: d.games, Valid: true},
			MuRating:      sql.NullFloat64{Float64: d.muRating, Valid: true},
			Model:         d.model,
			Prompt:        d.prompt,
		})
	}
	return rows
}
