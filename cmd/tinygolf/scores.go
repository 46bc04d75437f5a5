package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greensward/tinygolf/internal/platform/tui"
	"github.com/greensward/tinygolf/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round history and stats",
	Long: `Display recent rounds with per-hole strokes, plus best-round and
average stats.

Examples:
  tinygolf scores
  tinygolf scores --limit 25
  tinygolf scores --interactive`,
	Run: runScoresCmd,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresInteractive, "interactive", false, "Browse history in a scrollable view")
}

func runScoresCmd(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresInteractive {
		width, height := termSize()
		if runErr := tui.RunScores(store, width, height); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	rounds, err := store.RecentRounds(flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Round history")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tinygolf play' to record your first round!")
		return
	}

	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "Date", "Total", "Par", "+/-", "Holes")
	fmt.Printf("  %-16s  %-6s  %-5s  %-5s  %s\n", "----", "-----", "---", "---", "-----")

	for _, r := range rounds {
		holes := make([]string, len(r.Strokes))
		for i, n := range r.Strokes {
			holes[i] = fmt.Sprintf("%d", n)
		}
		fmt.Printf("  %-16s  %-6d  %-5d  %-+5d  %s\n",
			r.CreatedAt.Format("2006-01-02 15:04"),
			r.Total, r.Par, r.ToPar(), strings.Join(holes, " "))
	}

	fmt.Println()
	stats, err := store.GetRoundStats()
	if err == nil && stats.RoundsCount > 0 {
		fmt.Printf("Rounds: %d   Best: %d   Average: %.1f\n",
			stats.RoundsCount, stats.BestTotal, stats.AvgTotal)
	}
}
