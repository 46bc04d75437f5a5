package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/greensward/tinygolf/internal/core"
	"github.com/greensward/tinygolf/internal/game"
	"github.com/greensward/tinygolf/internal/platform/tui"
)

var flagPracticeHole int

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice a single hole",
	Long: `Replay one hole as often as you like. Attempts are tracked for the
session only; nothing is written to the database.

Examples:
  tinygolf practice --hole 4
  tinygolf practice --hole 9 --config ./my-golf.yaml`,
	Run: runPractice,
}

func init() {
	practiceCmd.Flags().IntVar(&flagPracticeHole, "hole", 1, "Hole to practice (1-9)")
}

func runPractice(cmd *cobra.Command, args []string) {
	width, height := termSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	g := game.New(loadGolfConfig())
	if flagPracticeHole < 1 || flagPracticeHole > g.HoleCount() {
		fmt.Fprintf(os.Stderr, "Error: hole must be between 1 and %d\n", g.HoleCount())
		os.Exit(1)
	}
	g.SetPractice(flagPracticeHole - 1)

	if err := tui.Run(g, nil, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
