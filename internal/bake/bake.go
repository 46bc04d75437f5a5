package bake

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/greensward/tinygolf/internal/level"
)

// buildHole compiles one source hole to chunk data.
func buildHole(h SourceHole) (*level.ChunkData, error) {
	b := level.NewBuilder()
	for j, l := range h.Loops {
		fill, err := ParseRegion(l.Fill)
		if err != nil {
			return nil, err
		}
		line, err := ParseRegion(l.Line)
		if err != nil {
			return nil, err
		}
		layer := l.Layer
		if layer == 0 {
			layer = 0x1
		}
		if err := b.AddLoop(fill, layer, l.Trigger); err != nil {
			return nil, fmt.Errorf("bake: hole %q loop %d: %w", h.Name, j+1, err)
		}
		b.AddEdges(l.Edges, line)
	}
	return b.Build(), nil
}

// Bake compiles a course source file into <name>.bin and <name>.index.yaml
// under outDir, where <name> is the source file's base name. It returns the
// path of the written index.
func Bake(srcPath, outDir string) (string, error) {
	src, err := LoadSource(srcPath)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", fmt.Errorf("bake: cannot create output directory: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	dataName := base + ".bin"
	dataPath := filepath.Join(outDir, dataName)
	indexPath := filepath.Join(outDir, base+".index.yaml")

	df, err := os.Create(dataPath)
	if err != nil {
		return "", fmt.Errorf("bake: cannot create data file: %w", err)
	}
	defer df.Close()

	course := level.Course{
		Name:     src.Name,
		DataFile: dataName,
		Holes:    make([]level.Hole, len(src.Holes)),
	}

	var offset int64
	for i, h := range src.Holes {
		cd, err := buildHole(h)
		if err != nil {
			return "", err
		}
		n, err := level.EncodeChunks(df, cd)
		if err != nil {
			return "", err
		}
		course.Holes[i] = level.Hole{
			Name:         h.Name,
			Par:          h.Par,
			TeeMaskLayer: teeLayer(h),
			TeeX:         h.Tee.X,
			TeeY:         h.Tee.Y,
			HoleX:        h.Cup.X,
			HoleY:        h.Cup.Y,
			Offset:       offset,
			NumChunks:    cd.NumChunks,
		}
		offset += int64(n)
	}

	if err := df.Close(); err != nil {
		return "", fmt.Errorf("bake: cannot finish data file: %w", err)
	}
	if err := course.Save(indexPath); err != nil {
		return "", err
	}
	return indexPath, nil
}

// teeLayer returns the hole's starting layer mask, defaulting to layer 1.
func teeLayer(h SourceHole) int {
	if h.Tee.MaskLayer != 0 {
		return h.Tee.MaskLayer
	}
	return 0x1
}
