package level

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSquare(t *testing.T) *ChunkData {
	t.Helper()
	b := NewBuilder()
	require.NoError(t, b.AddLoop(RegionFairway, 0x1, 0))
	b.AddEdges([]int16{10, 10, 50, 10, 50, 50, 10, 50}, RegionWall)
	return b.Build()
}

func TestBuilderProducesValidChunks(t *testing.T) {
	cd := buildSquare(t)

	// One header, four edges, one terminator.
	require.Equal(t, 6, cd.NumChunks)
	assert.True(t, cd.IsLoop(0))
	for i := 1; i <= 4; i++ {
		assert.False(t, cd.IsLoop(i), "chunk %d", i)
	}
	assert.True(t, cd.IsLoop(5))
	assert.Equal(t, RegionEmpty, cd.LoopRegionFill(5))
	assert.Equal(t, 0, cd.LoopNumEdges(5))
	assert.Equal(t, 0, cd.LoopLastLoop(5))

	assert.Equal(t, RegionFairway, cd.LoopRegionFill(0))
	assert.Equal(t, 4, cd.LoopNumEdges(0))
	layer, trigger := cd.LoopMasks(0)
	assert.Equal(t, 0x1, layer)
	assert.Equal(t, 0, trigger)
}

func TestEdgeEndpointsWrapToLoopStart(t *testing.T) {
	cd := buildSquare(t)

	xb, yb, xe, ye := cd.EdgeEndpoints(1)
	assert.Equal(t, []int{10, 10, 50, 10}, []int{xb, yb, xe, ye})

	// Last edge's endpoint loops back to the first edge's begin vertex.
	xb, yb, xe, ye = cd.EdgeEndpoints(4)
	assert.Equal(t, []int{10, 50, 10, 10}, []int{xb, yb, xe, ye})
}

func TestDerivedNormalsAndAABB(t *testing.T) {
	cd := buildSquare(t)

	assert.Equal(t, 10, cd.XLo)
	assert.Equal(t, 10, cd.YLo)
	assert.Equal(t, 50, cd.XHi)
	assert.Equal(t, 50, cd.YHi)

	// Top edge of a CCW square (in +y-down space the winding runs the
	// perimeter so inward normals point into the interior).
	assert.Equal(t, int16(270), cd.NormalWD[1])
}

func TestBuilderMaskValidation(t *testing.T) {
	b := NewBuilder()
	assert.Error(t, b.AddLoop(RegionFairway, 0, 0))
	assert.Error(t, b.AddLoop(RegionFairway, 0x10, 0))
	assert.Error(t, b.AddLoop(RegionFairway, 0x1, 0x10))
	assert.NoError(t, b.AddLoop(RegionFairway, 0xf, 0xf))
}

func TestCodecRoundTrip(t *testing.T) {
	cd := buildSquare(t)

	var buf bytes.Buffer
	n, err := EncodeChunks(&buf, cd)
	require.NoError(t, err)
	assert.Equal(t, cd.NumChunks*ChunkFields*2, n)

	got, err := DecodeChunks(bytes.NewReader(buf.Bytes()), 0, cd.NumChunks)
	require.NoError(t, err)
	assert.Equal(t, cd.Data, got.Data)
	assert.Equal(t, cd.NormalWD, got.NormalWD)
	assert.Equal(t, cd.XLo, got.XLo)
}

func TestDecodeRejectsBadCounts(t *testing.T) {
	r := bytes.NewReader(nil)
	_, err := DecodeChunks(r, 0, 0)
	assert.Error(t, err)
	_, err = DecodeChunks(r, 0, MaxChunks+1)
	assert.Error(t, err)
}

func TestBuiltinCourse(t *testing.T) {
	holes := Builtin()
	require.Len(t, holes, 9)

	parTotal := 0
	for _, h := range holes {
		parTotal += h.Meta.Par
		assert.NotEmpty(t, h.Meta.Name)
		assert.Greater(t, h.Meta.Par, 0)
		require.NotNil(t, h.Data)

		cd := h.Data
		require.Greater(t, cd.NumChunks, 1)
		// Chunk array always ends with a zero-edge terminator loop.
		last := cd.NumChunks - 1
		require.True(t, cd.IsLoop(last))
		assert.Equal(t, 0, cd.LoopNumEdges(last))

		// Tee and hole sit inside the geometry's AABB.
		assert.GreaterOrEqual(t, h.Meta.TeeX, cd.XLo, h.Meta.Name)
		assert.LessOrEqual(t, h.Meta.TeeX, cd.XHi, h.Meta.Name)
		assert.GreaterOrEqual(t, h.Meta.HoleY, cd.YLo, h.Meta.Name)
		assert.LessOrEqual(t, h.Meta.HoleY, cd.YHi, h.Meta.Name)

		// Edge counts in headers must match the actual chunk layout.
		for i := 0; i < cd.NumChunks; i++ {
			if !cd.IsLoop(i) {
				continue
			}
			n := cd.LoopNumEdges(i)
			for j := i + 1; j <= i+n; j++ {
				assert.False(t, cd.IsLoop(j), "%s chunk %d", h.Meta.Name, j)
			}
		}
	}
	assert.Equal(t, 32, parTotal)
}

func TestCourseIndexRoundTrip(t *testing.T) {
	dir := t.TempDir()

	c := &Course{
		Name:     "test",
		DataFile: "test.bin",
		Holes: []Hole{
			{Name: "one", Par: 3, TeeMaskLayer: 1, TeeX: 5, TeeY: 6,
				HoleX: 40, HoleY: 41, Offset: 0, NumChunks: 6},
		},
	}
	require.NoError(t, c.Save(dir+"/test.yaml"))

	got, err := LoadCourse(dir + "/test.yaml")
	require.NoError(t, err)
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Holes, got.Holes)
}

func TestLoadAllHoles(t *testing.T) {
	dir := t.TempDir()

	first := buildSquare(t)
	b := NewBuilder()
	require.NoError(t, b.AddLoop(RegionSandtrap, 0x1, 0))
	b.AddEdges([]int16{20, 20, 90, 20, 90, 90, 20, 90}, RegionWall)
	second := b.Build()

	f, err := os.Create(dir + "/two.bin")
	require.NoError(t, err)
	n1, err := EncodeChunks(f, first)
	require.NoError(t, err)
	_, err = EncodeChunks(f, second)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	c := &Course{
		Name:     "two",
		DataFile: "two.bin",
		Holes: []Hole{
			{Name: "one", Par: 2, TeeMaskLayer: 1,
				Offset: 0, NumChunks: first.NumChunks},
			{Name: "two", Par: 3, TeeMaskLayer: 1,
				Offset: int64(n1), NumChunks: second.NumChunks},
		},
	}
	require.NoError(t, c.Save(dir+"/two.index.yaml"))

	loaded, err := LoadCourse(dir + "/two.index.yaml")
	require.NoError(t, err)
	holes, err := loaded.LoadAllHoles()
	require.NoError(t, err)
	require.Len(t, holes, 2)

	assert.Equal(t, "one", holes[0].Meta.Name)
	assert.Equal(t, first.Data, holes[0].Data.Data)
	assert.Equal(t, "two", holes[1].Meta.Name)
	assert.Equal(t, second.Data, holes[1].Data.Data)
	assert.Equal(t, second.NormalWD, holes[1].Data.NormalWD)
}
