// Package view builds the displayed leaderboard from materialized
// player stats: ordering, pinning, display labels, row styles, and the
// aggregate summary.
package view

import (
	"sort"

	"github.com/vytor/chessrank/internal/models"
)

// SortKey selects the leaderboard ordering. Values are the display
// labels so they can round-trip through the controls form untouched.
type SortKey string

const (
	SortByFinalStanding SortKey = "Final Standing"
	SortByWinRate       SortKey = "Win Rate"
	SortByMuRating      SortKey = "Mu Rating"
	SortByWins          SortKey = "Wins"
	SortByLosses        SortKey = "Losses"
)

// SortKeys lists the selectable orderings in the order the controls
// present them.
var SortKeys = []SortKey{
	SortByFinalStanding, SortByWinRate, SortByMuRating, SortByWins, SortByLosses,
}

// ParseSortKey maps a raw selection onto a known key, falling back to
// Final Standing for anything unrecognized.
func ParseSortKey(s string) SortKey {
	for _, k := range SortKeys {
		if string(k) == s {
			return k
		}
	}
	return SortByFinalStanding
}

// Ascending reports whether the key sorts low-to-high. Lower rank and
// fewer losses are better, so those two lead with the smallest value.
func (k SortKey) Ascending() bool {
	return k == SortByFinalStanding || k == SortByLosses
}

func (k SortKey) value(p models.PlayerStats) float64 {
	switch k {
	case SortByWinRate:
		return p.WinRate
	case SortByMuRating:
		return p.MuRating
	case SortByWins:
		return float64(p.Wins)
	case SortByLosses:
		return float64(p.Losses)
	default:
		return float64(p.FinalStanding)
	}
}

// DisplayColumns is the table column order, by display label.
var DisplayColumns = []string{
	"Player", "Wins", "Losses", "Games", "Win Rate",
	"Final Standing", "Mu Rating", "Model", "Prompt",
}

// ColumnLabels maps internal column names to their display labels.
var ColumnLabels = map[string]string{
	models.ColPlayer:        "Player",
	models.ColFinalStanding: "Final Standing",
	models.ColWinRate:       "Win Rate",
	models.ColWins:          "Wins",
	models.ColLosses:        "Losses",
	models.ColGames:         "Games",
	models.ColMuRating:      "Mu Rating",
	models.ColModel:         "Model",
	models.ColPrompt:        "Prompt",
}

// Entry is one displayed leaderboard row.
type Entry struct {
	models.PlayerStats
	Style Style
}

// View is the rendered ordering of the table plus the selections that
// produced it.
type View struct {
	Entries      []Entry
	SortKey      SortKey
	PinnedPlayer string
}

// Build orders the players by the sort key (stable, so input order
// breaks ties), then moves any rows matching the pinned player to the
// front without disturbing the rest. An absent pin target is a no-op.
// Every entry carries its highlight style.
func Build(players []models.PlayerStats, key SortKey, pinnedPlayer string) View {
	ordered := make([]models.PlayerStats, len(players))
	copy(ordered, players)

	asc := key.Ascending()
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := key.value(ordered[i]), key.value(ordered[j])
		if asc {
			return a < b
		}
		return a > b
	})

	if pinnedPlayer != "" {
		pinned := make([]models.PlayerStats, 0, 1)
		rest := make([]models.PlayerStats, 0, len(ordered))
		for _, p := range ordered {
			if p.Player == pinnedPlayer {
				pinned = append(pinned, p)
			} else {
				rest = append(rest, p)
			}
		}
		ordered = append(pinned, rest...)
	}

	entries := make([]Entry, len(ordered))
	for i, p := range ordered {
		entries[i] = Entry{
			PlayerStats: p,
			Style:       Classify(p, pinnedPlayer),
		}
	}

	return View{Entries: entries, SortKey: key, PinnedPlayer: pinnedPlayer}
}

// Players returns the player names in view order, for the pin selector.
func (v View) Players() []string {
	names := make([]string, len(v.Entries))
	for i, e := range v.Entries {
		names[i] = e.Player
	}
	return names
}
