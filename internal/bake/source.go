// Package bake compiles course source YAML into the binary chunk data
// format the game loads, producing a data file plus a course index.
package bake

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/greensward/tinygolf/internal/level"
)

// SourceCourse is the editable YAML form of a course.
type SourceCourse struct {
	Name  string       `yaml:"name"`
	Holes []SourceHole `yaml:"holes"`
}

// SourceHole describes one hole's geometry and placement.
type SourceHole struct {
	Name  string       `yaml:"name"`
	Par   int          `yaml:"par"`
	Tee   SourcePoint  `yaml:"tee"`
	Cup   SourcePoint  `yaml:"cup"`
	Loops []SourceLoop `yaml:"loops"`
}

// SourcePoint is a world-space position. MaskLayer only applies to the tee.
type SourcePoint struct {
	X         int `yaml:"x"`
	Y         int `yaml:"y"`
	MaskLayer int `yaml:"mask_layer"`
}

// SourceLoop is one closed loop of edges. Edges is a flat x,y vertex list;
// every edge of the loop is drawn with the same line region.
type SourceLoop struct {
	Fill    string  `yaml:"fill"`
	Line    string  `yaml:"line"`
	Layer   int     `yaml:"layer"`
	Trigger int     `yaml:"trigger"`
	Edges   []int16 `yaml:"edges"`
}

// regionNames maps source region names to region codes. "none" draws no
// outline.
var regionNames = map[string]int{
	"wall":        level.RegionWall,
	"slope_right": level.RegionSlopeRight,
	"slope_down":  level.RegionSlopeDown,
	"slope_left":  level.RegionSlopeLeft,
	"slope_up":    level.RegionSlopeUp,
	"sand":        level.RegionSandtrap,
	"water":       level.RegionWater,
	"fairway":     level.RegionFairway,
	"none":        level.RegionEmpty,
}

// ParseRegion resolves a source region name.
func ParseRegion(name string) (int, error) {
	r, ok := regionNames[name]
	if !ok {
		return 0, fmt.Errorf("bake: unknown region %q", name)
	}
	return r, nil
}

// LoadSource reads and validates a course source file.
func LoadSource(path string) (*SourceCourse, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bake: cannot read course source: %w", err)
	}
	var src SourceCourse
	if err := yaml.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("bake: cannot parse course source: %w", err)
	}
	if err := src.validate(); err != nil {
		return nil, err
	}
	return &src, nil
}

func (src *SourceCourse) validate() error {
	if src.Name == "" {
		return fmt.Errorf("bake: course has no name")
	}
	if len(src.Holes) == 0 {
		return fmt.Errorf("bake: course %q has no holes", src.Name)
	}
	for i, h := range src.Holes {
		if h.Par <= 0 {
			return fmt.Errorf("bake: hole %d (%q) has no par", i+1, h.Name)
		}
		if len(h.Loops) == 0 {
			return fmt.Errorf("bake: hole %d (%q) has no loops", i+1, h.Name)
		}
		for j, l := range h.Loops {
			if _, err := ParseRegion(l.Fill); err != nil {
				return fmt.Errorf("bake: hole %d loop %d fill: %w", i+1, j+1, err)
			}
			if _, err := ParseRegion(l.Line); err != nil {
				return fmt.Errorf("bake: hole %d loop %d line: %w", i+1, j+1, err)
			}
			if len(l.Edges) < 6 {
				return fmt.Errorf("bake: hole %d loop %d needs at least 3 vertices",
					i+1, j+1)
			}
			if len(l.Edges)%2 != 0 {
				return fmt.Errorf("bake: hole %d loop %d has an odd vertex list",
					i+1, j+1)
			}
		}
	}
	return nil
}
