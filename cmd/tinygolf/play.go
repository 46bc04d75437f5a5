package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/greensward/tinygolf/internal/config"
	"github.com/greensward/tinygolf/internal/core"
	"github.com/greensward/tinygolf/internal/game"
	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/platform/tui"
	"github.com/greensward/tinygolf/internal/storage"
)

var (
	flagPlayHole   int
	flagContinue   bool
	flagPlayCourse string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a nine-hole round",
	Long: `Start a full round over the built-in course, or a course baked with
the bake command via --course.

Controls:
  Left/Right or A/D - Rotate aim
  Space             - Swing (start meter, then strike)
  Enter             - Confirm / advance
  Tab               - Peek at the scorecard while aiming
  Esc/B             - Cancel the power meter
  P                 - Pause
  Q/Ctrl+C          - Quit

The round autosaves after every stroke; pick it back up with --continue.

Examples:
  tinygolf play
  tinygolf play --hole 5
  tinygolf play --continue
  tinygolf play --course ./links.index.yaml
  tinygolf play --config ./my-golf.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagPlayHole, "hole", 0, "Start from this hole")
	playCmd.Flags().BoolVar(&flagContinue, "continue", false, "Resume the autosaved round")
	playCmd.Flags().StringVar(&flagPlayCourse, "course", "", "Play a baked course index instead of the built-in holes")
}

// termSize returns the terminal dimensions, with sane fallbacks.
func termSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

// loadGolfConfig loads gameplay tuning, exiting on a broken config file.
func loadGolfConfig() config.GolfConfig {
	golf, err := config.LoadGolf(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return golf
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := termSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}

	g := game.New(loadGolfConfig())

	if flagPlayCourse != "" {
		course, courseErr := level.LoadCourse(flagPlayCourse)
		if courseErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading course: %v\n", courseErr)
			os.Exit(1)
		}
		holes, holesErr := course.LoadAllHoles()
		if holesErr != nil {
			fmt.Fprintf(os.Stderr, "Error loading course: %v\n", holesErr)
			os.Exit(1)
		}
		g.SetCourse(holes)
	}

	if flagPlayHole != 0 && (flagPlayHole < 1 || flagPlayHole > g.HoleCount()) {
		fmt.Fprintf(os.Stderr, "Error: hole must be between 1 and %d\n", g.HoleCount())
		os.Exit(1)
	}

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	switch {
	case flagContinue:
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --continue needs the database")
			os.Exit(1)
		}
		save, loadErr := store.LoadAutosave()
		if loadErr != nil {
			fmt.Fprintf(os.Stderr, "Error reading autosave: %v\n", loadErr)
			store.Close()
			os.Exit(1)
		}
		if save == nil {
			fmt.Fprintln(os.Stderr, "No saved round found, starting fresh.")
		} else {
			g.Resume(save.HoleIndex, save.Strokes)
		}
	case flagPlayHole != 0:
		// Jump straight to the given hole with a clean card.
		g.Resume(flagPlayHole-1, make([]int, g.HoleCount()))
	}

	runErr := tui.Run(g, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
