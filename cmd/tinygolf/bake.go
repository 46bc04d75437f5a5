package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/greensward/tinygolf/internal/bake"
)

var (
	flagBakeOut   string
	flagBakeWatch bool
)

var bakeCmd = &cobra.Command{
	Use:   "bake <course.yaml>",
	Short: "Compile a course source file",
	Long: `Compile a course source YAML into the binary chunk data the game
loads: <name>.bin plus a <name>.index.yaml course index.

With --watch, the source file is rebaked every time it changes, which makes
iterating on hole geometry pleasant: keep the game open in another terminal
and re-run it to see your edits.

Examples:
  tinygolf bake courses/backyard.yaml
  tinygolf bake courses/backyard.yaml -o baked/
  tinygolf bake courses/backyard.yaml --watch`,
	Args: cobra.ExactArgs(1),
	Run:  runBake,
}

func init() {
	bakeCmd.Flags().StringVarP(&flagBakeOut, "out", "o", ".", "Output directory")
	bakeCmd.Flags().BoolVar(&flagBakeWatch, "watch", false, "Rebake whenever the source changes")
}

func runBake(cmd *cobra.Command, args []string) {
	srcPath := args[0]

	if !flagBakeWatch {
		indexPath, err := bake.Bake(srcPath, flagBakeOut)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Baked %s\n", indexPath)
		return
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "bake",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := bake.Watch(ctx, srcPath, flagBakeOut, logger)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
