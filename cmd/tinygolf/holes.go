package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/greensward/tinygolf/internal/level"
)

var holesCmd = &cobra.Command{
	Use:   "holes",
	Short: "List the holes of the built-in course",
	Long:  `Shows each hole's par and terrain features.`,
	Run:   runHoles,
}

func runHoles(cmd *cobra.Command, args []string) {
	holes := level.Builtin()

	fmt.Println("Built-in course:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, h := range holes {
		if len(h.Meta.Name) > maxNameLen {
			maxNameLen = len(h.Meta.Name)
		}
	}

	fmt.Printf("  %-4s  %-*s  %-4s  %s\n", "Hole", maxNameLen, "Name", "Par", "Features")
	fmt.Printf("  %-4s  %-*s  %-4s  %s\n", "----", maxNameLen, "----", "---", "--------")

	parTotal := 0
	for i, h := range holes {
		parTotal += h.Meta.Par
		fmt.Printf("  %-4d  %-*s  %-4d  %s\n",
			i+1, maxNameLen, h.Meta.Name, h.Meta.Par, holeFeatures(h.Data))
	}

	fmt.Println()
	fmt.Printf("Par for the course: %d\n", parTotal)
}

// holeFeatures summarizes a hole's terrain from its loops.
func holeFeatures(cd *level.ChunkData) string {
	var sand, water, slope, trigger, layered bool
	for i := 0; i < cd.NumChunks; i++ {
		if !cd.IsLoop(i) || cd.LoopNumEdges(i) == 0 {
			continue
		}
		switch cd.LoopRegionFill(i) {
		case level.RegionSandtrap:
			sand = true
		case level.RegionWater:
			water = true
		case level.RegionSlopeRight, level.RegionSlopeDown,
			level.RegionSlopeLeft, level.RegionSlopeUp:
			slope = true
		}
		layer, trig := cd.LoopMasks(i)
		if trig != 0 {
			trigger = true
		}
		if layer != 0x1 {
			layered = true
		}
	}

	var features []string
	if sand {
		features = append(features, "sand")
	}
	if water {
		features = append(features, "water")
	}
	if slope {
		features = append(features, "slopes")
	}
	if trigger {
		features = append(features, "triggers")
	}
	if layered {
		features = append(features, "layers")
	}
	if len(features) == 0 {
		return "open green"
	}
	return strings.Join(features, ", ")
}
