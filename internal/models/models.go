package models

import "database/sql"

// Column names recognized in uploaded datasets, in canonical order.
const (
	ColPlayer        = "player"
	ColFinalStanding = "final_standing"
	ColWinRate       = "win_rate"
	ColWins          = "wins"
	ColLosses        = "losses"
	ColGames         = "games"
	ColMuRating      = "mu_rating"
	ColModel         = "model"
	ColPrompt        = "prompt"
)

// RecognizedColumns lists every column the normalizer guarantees to exist.
var RecognizedColumns = []string{
	ColPlayer, ColFinalStanding, ColWinRate, ColWins, ColLosses,
	ColGames, ColMuRating, ColModel, ColPrompt,
}

// Row is one competitor's record after schema normalization. Numeric
// fields stay nullable until inference fills them; a cell that failed
// numeric coercion is simply invalid, never an error.
type Row struct {
	Player        string
	FinalStanding sql.NullFloat64
	WinRate       sql.NullFloat64
	Wins          sql.NullFloat64
	Losses        sql.NullFloat64
	Games         sql.NullFloat64
	MuRating      sql.NullFloat64
	Model         string
	Prompt        string
}

// PlayerStats is a fully materialized row: every statistic numeric and
// non-null, with 0 standing in for values that could not be derived.
type PlayerStats struct {
	Player        string  `json:"player"`
	FinalStanding int     `json:"final_standing"`
	WinRate       float64 `json:"win_rate"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Games         int     `json:"games"`
	MuRating      float64 `json:"mu_rating"`
	Model         string  `json:"model"`
	Prompt        string  `json:"prompt"`
}

// Session carries the per-browser state the dashboard replays on each
// render: which dataset to show and the current control selections.
type Session struct {
	ID           string
	SortKey      string
	PinnedPlayer string
	HasUpload    bool
}

// Summary holds the aggregate KPIs shown next to the leaderboard.
type Summary struct {
	Players        int     `json:"players"`
	TotalGames     int     `json:"total_games"`
	AvgWinRate     float64 `json:"avg_win_rate"`
	HighPerformers int     `json:"high_performers"`
}
