package view

import "github.com/vytor/chessrank/internal/models"

// HighWinRate is the threshold above which a player counts as a high
// performer, both in the summary and in row highlighting.
const HighWinRate = 0.80

// Summarize derives the four dashboard KPIs from the built view. The
// average win rate is games-weighted (total wins over total games), not
// a mean of per-player rates, and guards the empty-table case.
func Summarize(v View) models.Summary {
	s := models.Summary{Players: len(v.Entries)}

	var totalWins int
	for _, e := range v.Entries {
		totalWins += e.Wins
		s.TotalGames += e.Games
		if e.WinRate >= HighWinRate {
			s.HighPerformers++
		}
	}
	if s.TotalGames > 0 {
		s.AvgWinRate = float64(totalWins) / float64(s.TotalGames)
	}
	return s
}
