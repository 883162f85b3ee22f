package view

import "github.com/vytor/chessrank/internal/models"

// Style is the row highlight class applied by the table renderer.
type Style string

const (
	StyleNone          Style = ""
	StylePinned        Style = "pinned"
	StyleTopThree      Style = "top-three"
	StyleHighPerformer Style = "high-performer"
)

// Classify tags a row with its display style. First match wins: a
// pinned row stays "pinned" even when it is also top three. A standing
// of 0 is the no-data sentinel, not a rank, so it never counts as top
// three.
func Classify(p models.PlayerStats, pinnedPlayer string) Style {
	switch {
	case pinnedPlayer != "" && p.Player == pinnedPlayer:
		return StylePinned
	case p.FinalStanding > 0 && p.FinalStanding <= 3:
		return StyleTopThree
	case p.WinRate >= HighWinRate:
		return StyleHighPerformer
	default:
		return StyleNone
	}
}
