// tinygolf is a top-down mini golf game for the terminal.
//
// Usage:
//
//	tinygolf play            - Play a nine-hole round
//	tinygolf practice        - Practice a single hole
//	tinygolf holes           - List the holes of the built-in course
//	tinygolf scores          - Show round history and stats
//	tinygolf bake <file>     - Compile a course source file
//	tinygolf serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--db <path>      - Set database path (default: ~/.tinygolf/golf.db)
//	--config <path>  - Path to custom gameplay config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tinygolf",
	Short: "Tiny Golf - nine holes of mini golf in your terminal",
	Long: `Tiny Golf is a terminal mini golf game: aim, pick your power on an
oscillating meter, and putt your way around walls, sand, water, and slopes.

Available commands:
  play      - Play a full nine-hole round
  practice  - Practice a single hole, replaying as often as you like
  holes     - List the holes of the built-in course
  scores    - View round history and best-round stats
  bake      - Compile a course source YAML into playable data
  serve     - Start SSH server for remote play

Examples:
  tinygolf play
  tinygolf play --continue
  tinygolf practice --hole 4
  tinygolf scores --limit 20
  tinygolf bake courses/backyard.yaml --watch
  tinygolf serve --port 2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tinygolf/golf.db", "Path to the game database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom gameplay config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(holesCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(bakeCmd)
	rootCmd.AddCommand(serveCmd)
}
