package level

import "errors"

// Builder assembles chunk data loop by loop. The chunk array is kept in a
// valid state after every call: a zero-edge terminator loop always follows
// the last real chunk.
type Builder struct {
	cd       ChunkData
	lastLoop int // chunk index of the most recent real loop header
}

// NewBuilder returns a builder holding empty, valid chunk data.
func NewBuilder() *Builder {
	b := &Builder{}
	b.Clear()
	return b
}

// Clear removes all geometry and restores the initial valid state.
func (b *Builder) Clear() {
	b.cd = ChunkData{}
	b.lastLoop = 0
	b.nextChunk()
}

// nextChunk appends a fresh terminator loop and returns the base index of
// the former terminator, which the caller overwrites. The former terminator
// remains a well-formed empty loop until then.
func (b *Builder) nextChunk() int {
	if b.cd.NumChunks >= MaxChunks {
		panic("level: too many chunks")
	}
	base := b.cd.NumChunks << 2
	b.cd.NumChunks++
	b.cd.Data[base+fieldLoopMaskTriggerLayer] = 1
	b.cd.Data[base+fieldLoopRegionFill] = RegionEmpty
	b.cd.Data[base+fieldLoopNumEdges] = 0
	b.cd.Data[base+fieldLoopLastLoop] = int16(b.lastLoop)
	return base - ChunkFields
}

// AddLoop starts a new loop of edges filled as the given region. A nonzero
// maskTrigger makes the loop's interior reset the ball's layer mask.
func (b *Builder) AddLoop(regionFill, maskLayer, maskTrigger int) error {
	if maskLayer <= 0 || maskLayer > 0xf || maskTrigger < 0 || maskTrigger > 0xf {
		return errors.New("level: bad layer/trigger masks")
	}
	base := b.nextChunk()
	b.cd.Data[base+fieldLoopMaskTriggerLayer] =
		int16((maskTrigger << 8) | maskLayer)
	b.cd.Data[base+fieldLoopRegionFill] = int16(regionFill)
	b.lastLoop = base >> 2
	return nil
}

// AddEdge adds an edge to the current loop, running from the given vertex to
// the next vertex added (or back to the loop's start if none follows), drawn
// as regionLine (RegionEmpty for no line).
func (b *Builder) AddEdge(x, y, regionLine int) {
	base := b.nextChunk()
	b.cd.Data[b.lastLoop<<2+fieldLoopNumEdges]++
	b.cd.Data[base+fieldLoopMaskTriggerLayer] = 0
	b.cd.Data[base+fieldEdgeXB] = int16(x)
	b.cd.Data[base+fieldEdgeYB] = int16(y)
	b.cd.Data[base+fieldEdgeRegionLine] = int16(regionLine)
}

// AddEdges adds each (x, y) pair as an edge vertex with a shared line region.
func (b *Builder) AddEdges(xy []int16, regionLine int) {
	if len(xy)%2 != 0 {
		panic("level: odd-length vertex list")
	}
	for i := 0; i < len(xy); i += 2 {
		b.AddEdge(int(xy[i]), int(xy[i+1]), regionLine)
	}
}

// Build finalizes and returns the chunk data with derived collision fields.
func (b *Builder) Build() *ChunkData {
	cd := b.cd
	cd.UpdateDerived()
	return &cd
}
