// Package main is the entry point for lbctl, a terminal preview of the
// leaderboard pipeline: it runs the same normalize/infer/sort/pin steps
// as the dashboard against a CSV file (or the demo dataset) and prints
// the result without needing a browser.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/vytor/chessrank/internal/dataset"
	"github.com/vytor/chessrank/internal/models"
	"github.com/vytor/chessrank/internal/stats"
	"github.com/vytor/chessrank/internal/view"
)

var (
	csvPath string
	sortBy  string
	pin     string
)

var rootCmd = &cobra.Command{
	Use:   "lbctl",
	Short: "Chess leaderboard preview tool",
	Long:  "Render the chess competition leaderboard and its summary in the terminal.",
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the leaderboard table",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the leaderboard summary metrics",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&csvPath, "file", "", "CSV file to load (demo data when omitted)")
	rootCmd.PersistentFlags().StringVar(&sortBy, "sort", string(view.SortByFinalStanding), "sort key (Final Standing, Win Rate, Mu Rating, Wins, Losses)")
	rootCmd.PersistentFlags().StringVar(&pin, "pin", "", "player name to pin at the top")

	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(summaryCmd)
}

func loadView() (view.View, error) {
	var rows []models.Row
	if csvPath == "" {
		rows = dataset.Demo()
	} else {
		f, err := os.Open(csvPath)
		if err != nil {
			return view.View{}, fmt.Errorf("open %s: %w", csvPath, err)
		}
		defer f.Close()

		rows, err = dataset.ParseCSV(f)
		if err != nil {
			return view.View{}, fmt.Errorf("parse %s: %w", csvPath, err)
		}
	}

	players := stats.Materialize(stats.Fill(rows))
	return view.Build(players, view.ParseSortKey(sortBy), pin), nil
}

func runShow(cmd *cobra.Command, args []string) error {
	v, err := loadView()
	if err != nil {
		return err
	}

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithConfig(tablewriter.Config{
		Row: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignRight},
		},
		Header: tw.CellConfig{
			Alignment: tw.CellAlignment{Global: tw.AlignCenter},
		},
	}))

	table.Header(" ", "PLAYER", "W", "L", "GAMES", "WIN%", "STANDING", "MU", "MODEL")

	for _, e := range v.Entries {
		marker := " "
		switch e.Style {
		case view.StylePinned:
			marker = ">"
		case view.StyleTopThree:
			marker = "*"
		case view.StyleHighPerformer:
			marker = "+"
		}
		table.Append(
			marker,
			e.Player,
			strconv.Itoa(e.Wins),
			strconv.Itoa(e.Losses),
			strconv.Itoa(e.Games),
			fmt.Sprintf("%.0f%%", e.WinRate*100),
			strconv.Itoa(e.FinalStanding),
			fmt.Sprintf("%.0f", e.MuRating),
			e.Model,
		)
	}
	table.Render()
	fmt.Fprintln(os.Stdout, "  > pinned   * top three   + win rate ≥ 80%")
	return nil
}

func runSummary(cmd *cobra.Command, args []string) error {
	v, err := loadView()
	if err != nil {
		return err
	}
	s := view.Summarize(v)

	fmt.Fprintf(os.Stdout, "Players:          %d\n", s.Players)
	fmt.Fprintf(os.Stdout, "Total Games:      %d\n", s.TotalGames)
	fmt.Fprintf(os.Stdout, "Average Win Rate: %.1f%%\n", s.AvgWinRate*100)
	fmt.Fprintf(os.Stdout, "Players ≥80%% WR:  %d\n", s.HighPerformers)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
