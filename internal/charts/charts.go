// Package charts renders the dashboard analytics as SVG using go-chart.
package charts

import (
	"fmt"
	"io"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/vytor/chessrank/internal/view"
)

var (
	winColor  = drawing.ColorFromHex("2f9e44")
	lossColor = drawing.ColorFromHex("e03131")
	dotColor  = drawing.ColorFromHex("4263eb")
)

// WinsLosses renders grouped wins/losses bars per player, in view
// order, as SVG.
func WinsLosses(w io.Writer, v view.View) error {
	if len(v.Entries) == 0 {
		return fmt.Errorf("no rows to chart")
	}

	bars := make([]chart.Value, 0, len(v.Entries)*2)
	for _, e := range v.Entries {
		bars = append(bars,
			chart.Value{
				Label: e.Player + " W",
				Value: float64(e.Wins),
				Style: chart.Style{FillColor: winColor, StrokeColor: winColor},
			},
			chart.Value{
				Label: e.Player + " L",
				Value: float64(e.Losses),
				Style: chart.Style{FillColor: lossColor, StrokeColor: lossColor},
			},
		)
	}

	graph := chart.BarChart{
		Title:    "Wins and Losses per Player",
		Width:    max(640, 70*len(bars)),
		Height:   420,
		BarWidth: 28,
		Bars:     bars,
	}
	return graph.Render(chart.SVG, w)
}

// RatingStanding renders a scatter of mu rating (x) against final
// standing (y), one point per player, as SVG.
func RatingStanding(w io.Writer, v view.View) error {
	if len(v.Entries) == 0 {
		return fmt.Errorf("no rows to chart")
	}

	xs := make([]float64, 0, len(v.Entries))
	ys := make([]float64, 0, len(v.Entries))
	for _, e := range v.Entries {
		xs = append(xs, e.MuRating)
		ys = append(ys, float64(e.FinalStanding))
	}
	// go-chart refuses single-point series; pad with a nudged duplicate.
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:  "Mu Rating vs Final Standing",
		Width:  640,
		Height: 420,
		XAxis:  chart.XAxis{Name: "Mu Rating"},
		YAxis:  chart.YAxis{Name: "Final Standing"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeWidth: chart.Disabled,
					DotWidth:    6,
					DotColor:    dotColor,
				},
				XValues: xs,
				YValues: ys,
			},
		},
	}
	return graph.Render(chart.SVG, w)
}
