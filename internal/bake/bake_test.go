package bake

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greensward/tinygolf/internal/level"
)

const sampleCourse = `name: Backyard
holes:
  - name: Patio
    par: 2
    tee: {x: 30, y: 100, mask_layer: 1}
    cup: {x: 170, y: 100}
    loops:
      - fill: fairway
        line: wall
        layer: 1
        edges: [10, 10, 10, 200, 200, 200, 200, 10]
      - fill: sand
        line: none
        layer: 1
        edges: [80, 10, 80, 200, 120, 200, 120, 10]
  - name: Pond
    par: 3
    tee: {x: 30, y: 50}
    cup: {x: 170, y: 50}
    loops:
      - fill: fairway
        line: wall
        edges: [10, 10, 10, 90, 200, 90, 200, 10]
      - fill: water
        line: none
        edges: [90, 10, 90, 90, 110, 90, 110, 10]
`

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backyard.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestBakeRoundTrip(t *testing.T) {
	srcPath := writeSource(t, sampleCourse)
	outDir := t.TempDir()

	indexPath, err := Bake(srcPath, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "backyard.index.yaml"), indexPath)

	course, err := level.LoadCourse(indexPath)
	require.NoError(t, err)
	assert.Equal(t, "Backyard", course.Name)
	require.Len(t, course.Holes, 2)

	first := course.Holes[0]
	assert.Equal(t, "Patio", first.Name)
	assert.Equal(t, 2, first.Par)
	assert.Equal(t, 0x1, first.TeeMaskLayer)
	assert.Equal(t, 30, first.TeeX)
	assert.Equal(t, 170, first.HoleX)
	assert.Equal(t, int64(0), first.Offset)

	second := course.Holes[1]
	assert.Equal(t, int64(first.NumChunks*level.ChunkFields*2), second.Offset,
		"second hole starts where the first ends")

	// Decoded geometry must match a direct build of the same loops.
	cd, err := course.LoadHole(0)
	require.NoError(t, err)

	b := level.NewBuilder()
	require.NoError(t, b.AddLoop(level.RegionFairway, 0x1, 0))
	b.AddEdges([]int16{10, 10, 10, 200, 200, 200, 200, 10}, level.RegionWall)
	require.NoError(t, b.AddLoop(level.RegionSandtrap, 0x1, 0))
	b.AddEdges([]int16{80, 10, 80, 200, 120, 200, 120, 10}, level.RegionEmpty)
	want := b.Build()

	assert.Equal(t, want.NumChunks, cd.NumChunks)
	assert.Equal(t, want.Data, cd.Data)
	assert.Equal(t, want.NormalWD, cd.NormalWD)
}

func TestBakeDefaultsLayer(t *testing.T) {
	srcPath := writeSource(t, sampleCourse)
	indexPath, err := Bake(srcPath, t.TempDir())
	require.NoError(t, err)

	course, err := level.LoadCourse(indexPath)
	require.NoError(t, err)
	assert.Equal(t, 0x1, course.Holes[1].TeeMaskLayer,
		"tee without an explicit mask plays layer 1")

	cd, err := course.LoadHole(1)
	require.NoError(t, err)
	layer, trigger := cd.LoopMasks(0)
	assert.Equal(t, 0x1, layer)
	assert.Equal(t, 0, trigger)
}

func TestLoadSourceRejectsBadCourses(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no holes", "name: Empty\nholes: []\n"},
		{"no name", "holes:\n  - name: X\n    par: 2\n"},
		{"unknown region", `name: Bad
holes:
  - name: X
    par: 2
    loops:
      - fill: lava
        line: wall
        edges: [0, 0, 0, 10, 10, 10]
`},
		{"odd vertex list", `name: Bad
holes:
  - name: X
    par: 2
    loops:
      - fill: fairway
        line: wall
        edges: [0, 0, 0, 10, 10]
`},
		{"too few vertices", `name: Bad
holes:
  - name: X
    par: 2
    loops:
      - fill: fairway
        line: wall
        edges: [0, 0, 10, 10]
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeSource(t, tt.yaml)
			_, err := LoadSource(path)
			assert.Error(t, err)
		})
	}
}

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("slope_left")
	require.NoError(t, err)
	assert.Equal(t, level.RegionSlopeLeft, r)

	_, err = ParseRegion("fairways")
	assert.Error(t, err)
}

func TestBakeMissingSource(t *testing.T) {
	_, err := Bake(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	assert.Error(t, err)
}
