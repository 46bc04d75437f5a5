// Package level models course geometry as "chunk data": a flat array of
// four-field int16 chunks. A chunk is either a loop header introducing a
// closed loop of edges, or one edge of the current loop. The final chunk is
// always a loop header with zero edges pointing back at the previous loop,
// which terminates iteration and gives the last real edge its endpoint.
package level

import (
	"fmt"

	"github.com/greensward/tinygolf/internal/geom"
)

// MaxChunks bounds one hole's geometry.
const MaxChunks = 192

// ChunkFields is the number of int16 fields per chunk.
const ChunkFields = 4

// Field indices within a chunk. Field 0 is shared: nonzero iff the chunk is
// a loop header, in which case it packs (maskTrigger<<8)|maskLayer.
const (
	fieldLoopMaskTriggerLayer = 0
	fieldLoopRegionFill       = 1
	fieldLoopNumEdges         = 2
	fieldLoopLastLoop         = 3
	fieldEdgeXB               = 1
	fieldEdgeYB               = 2
	fieldEdgeRegionLine       = 3
)

// Regions paint the course. Lower numbers draw over higher.
const (
	RegionWall       = 0
	RegionSlopeRight = 1
	RegionSlopeDown  = 2
	RegionSlopeLeft  = 3
	RegionSlopeUp    = 4
	RegionSandtrap   = 5
	RegionWater      = 6
	RegionFairway    = 7
	RegionEmpty      = 8
)

// Payload encoding for rasterized pixels. Non-wall regions OR in
// PayloadBitNonWall; wall edge pixels carry the edge's chunk index instead,
// so collision scans can recover the edge normal.
const (
	PayloadBitNonWall   = 1 << 11
	PayloadMaskLow      = PayloadBitNonWall - 1
	PayloadShiftTrigger = 12
)

// ChunkData holds one hole's geometry plus derived collision data.
type ChunkData struct {
	Data      [MaxChunks * ChunkFields]int16
	NumChunks int

	// Inward normals per edge chunk, in wrapped degrees.
	NormalWD [MaxChunks]int16

	// AABB over edge begin vertices, world space.
	XLo, YLo, XHi, YHi int
}

// IsLoop reports whether chunk i is a loop header.
func (cd *ChunkData) IsLoop(i int) bool {
	if i >= cd.NumChunks {
		panic(fmt.Sprintf("level: chunk index %d out of range", i))
	}
	return cd.Data[(i<<2)+fieldLoopMaskTriggerLayer] != 0
}

// LoopMasks returns the layer and trigger masks of loop header i.
func (cd *ChunkData) LoopMasks(i int) (maskLayer, maskTrigger int) {
	v := int(cd.Data[(i<<2)+fieldLoopMaskTriggerLayer])
	return v & 0xff, v >> 8
}

// LoopRegionFill returns the fill region of loop header i.
func (cd *ChunkData) LoopRegionFill(i int) int {
	return int(cd.Data[(i<<2)+fieldLoopRegionFill])
}

// LoopNumEdges returns the edge count of loop header i.
func (cd *ChunkData) LoopNumEdges(i int) int {
	return int(cd.Data[(i<<2)+fieldLoopNumEdges])
}

// LoopLastLoop returns the chunk index of the loop header before i.
func (cd *ChunkData) LoopLastLoop(i int) int {
	return int(cd.Data[(i<<2)+fieldLoopLastLoop])
}

// EdgeBegin returns the begin vertex of edge chunk i.
func (cd *ChunkData) EdgeBegin(i int) (x, y int) {
	return int(cd.Data[(i<<2)+fieldEdgeXB]), int(cd.Data[(i<<2)+fieldEdgeYB])
}

// EdgeRegionLine returns the line region of edge chunk i.
func (cd *ChunkData) EdgeRegionLine(i int) int {
	return int(cd.Data[(i<<2)+fieldEdgeRegionLine])
}

// EdgeEndpoints returns both vertices of edge chunk i, looping back to the
// loop's first edge for the endpoint when i is the loop's last edge.
func (cd *ChunkData) EdgeEndpoints(i int) (xb, yb, xe, ye int) {
	if i >= cd.NumChunks {
		panic(fmt.Sprintf("level: chunk index %d out of range", i))
	}
	base := i << 2
	if cd.Data[base+fieldLoopMaskTriggerLayer] != 0 {
		panic(fmt.Sprintf("level: chunk %d is not an edge", i))
	}
	xb = int(cd.Data[base+fieldEdgeXB])
	yb = int(cd.Data[base+fieldEdgeYB])
	base += ChunkFields
	if cd.Data[base+fieldLoopMaskTriggerLayer] != 0 {
		// Next chunk starts a new loop; wrap to this loop's first edge.
		iEdge := int(cd.Data[base+fieldLoopLastLoop]) + 1
		base = iEdge << 2
	}
	xe = int(cd.Data[base+fieldEdgeXB])
	ye = int(cd.Data[base+fieldEdgeYB])
	return xb, yb, xe, ye
}

// UpdateDerived recomputes edge normals and the AABB. Call after mutating
// or loading chunk data.
func (cd *ChunkData) UpdateDerived() {
	xLo, yLo := 1<<20, 1<<20
	xHi, yHi := -xLo, -yLo
	for i := 0; i < cd.NumChunks; i++ {
		if cd.IsLoop(i) {
			continue
		}
		xb, yb, xe, ye := cd.EdgeEndpoints(i)
		if xb < xLo {
			xLo = xb
		}
		if xb > xHi {
			xHi = xb
		}
		if yb < yLo {
			yLo = yb
		}
		if yb > yHi {
			yHi = yb
		}
		cd.NormalWD[i] = int16(geom.InwardNormal(xb, yb, xe, ye))
	}
	cd.XLo, cd.YLo, cd.XHi, cd.YHi = xLo, yLo, xHi, yHi
}
