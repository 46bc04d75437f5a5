// Package scene maps course geometry through a scale/rotate/translate
// camera and rasterizes it. The same transform serves the display camera
// and the ball's axis-aligned collision camera.
package scene

import (
	"github.com/greensward/tinygolf/internal/geom"
	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/raster"
)

// EmptyPayload is what cleared pixels hold: the empty region, non-wall.
const EmptyPayload = uint16(level.RegionEmpty | level.PayloadBitNonWall)

// Transform scales world space about (0,0), rotates about (0,0), then
// translates in screen space. Scale and angle changes invalidate the cached
// rasterizer geometry; translation is applied as a raster window offset and
// does not.
type Transform struct {
	cd *level.ChunkData

	scaleF10    int
	invScaleF10 int
	angleWD     int
	cosF10      int
	sinF10      int
	translateX  int
	translateY  int

	dirty bool
	loops []raster.Loop

	// Tracking for fill pattern scrolling: the screen-space drift of a
	// caller-chosen world point between draws.
	xwLastF10, ywLastF10 int
	xsLast, ysLast       int
	xwNextF10, ywNextF10 int
	dxAccum, dyAccum     int
}

// NewTransform returns an identity transform over the given chunk data.
func NewTransform(cd *level.ChunkData) *Transform {
	return &Transform{
		cd:          cd,
		scaleF10:    1 << 10,
		invScaleF10: 1 << 10,
		cosF10:      1 << 10,
		sinF10:      0,
		dirty:       true,
	}
}

// SetChunkData swaps in new geometry.
func (t *Transform) SetChunkData(cd *level.ChunkData) {
	t.cd = cd
	t.dirty = true
}

// WorldToScreenF10 maps an f10 world point to f10 screen coordinates.
func (t *Transform) WorldToScreenF10(xF10, yF10 int) (int, int) {
	// scale -> f10
	x := (xF10*t.scaleF10 + 0x200) >> 10
	y := (yF10*t.scaleF10 + 0x200) >> 10
	// rotate -> f20
	xF20 := x*t.cosF10 - y*t.sinF10
	yF20 := x*t.sinF10 + y*t.cosF10
	// translate -> f10
	return ((xF20 + 0x200) >> 10) + (t.translateX << 10),
		((yF20 + 0x200) >> 10) + (t.translateY << 10)
}

// ScreenToWorldF10 inverts WorldToScreenF10.
func (t *Transform) ScreenToWorldF10(xF10, yF10 int) (int, int) {
	x := xF10 - (t.translateX << 10)
	y := yF10 - (t.translateY << 10)
	xF20 := y*t.sinF10 + x*t.cosF10
	yF20 := y*t.cosF10 - x*t.sinF10
	return (((xF20+0x200)>>10)*t.invScaleF10 + 0x200) >> 10,
		(((yF20+0x200)>>10)*t.invScaleF10 + 0x200) >> 10
}

// ScaleF10 returns the current scale.
func (t *Transform) ScaleF10() int { return t.scaleF10 }

// SetScaleF10 sets the world-to-screen scale.
func (t *Transform) SetScaleF10(scaleF10 int) {
	t.dirty = true
	t.scaleF10 = scaleF10
	t.invScaleF10 = 0x100000 / scaleF10
}

// AngleWD returns the current rotation in wrapped degrees.
func (t *Transform) AngleWD() int { return t.angleWD }

// SetAngleWD sets the rotation.
func (t *Transform) SetAngleWD(degrees int) {
	t.dirty = true
	t.angleWD = geom.Wrap(degrees)
	t.cosF10 = geom.CosF10(t.angleWD)
	t.sinF10 = geom.SinF10(t.angleWD)
}

// SetTranslate sets the screen-space translation in whole pixels.
func (t *Transform) SetTranslate(x, y int) {
	t.translateX = x
	t.translateY = y
}

// AddTranslate nudges the screen-space translation.
func (t *Transform) AddTranslate(dx, dy int) {
	t.translateX += dx
	t.translateY += dy
}

// MapWorldToScreenF10 adjusts the translation so that, with scale and angle
// held, world point (xw, yw) lands on screen point (xs, ys). The world point
// also becomes the anchor that drives fill pattern scrolling.
func (t *Transform) MapWorldToScreenF10(xwF10, ywF10, xsF10, ysF10 int) {
	t.xwNextF10 = xwF10
	t.ywNextF10 = ywF10
	xsActualF10, ysActualF10 := t.WorldToScreenF10(xwF10, ywF10)
	xsActual := (xsActualF10 + 0x200) >> 10
	ysActual := (ysActualF10 + 0x200) >> 10
	xsDesired := (xsF10 + 0x200) >> 10
	ysDesired := (ysF10 + 0x200) >> 10
	t.translateX += xsDesired - xsActual
	t.translateY += ysDesired - ysActual
}

// transformVertex maps a world-space integer vertex to integer screen
// coordinates, without the translation.
func (t *Transform) transformVertex(x, y int) (int, int) {
	x *= t.scaleF10
	y *= t.scaleF10
	xs := x*t.cosF10 - y*t.sinF10
	ys := x*t.sinF10 + y*t.cosF10
	return (xs + 0x80000) >> 20, (ys + 0x80000) >> 20
}

// rebuildGeometry retransforms all chunk geometry into screen space, minus
// the translation, which the rasterizer applies as a window offset.
func (t *Transform) rebuildGeometry() {
	t.loops = t.loops[:0]
	cd := t.cd
	i := 0
	for i < cd.NumChunks {
		maskLayer, maskTrigger := cd.LoopMasks(i)
		regionFill := cd.LoopRegionFill(i)
		numEdges := cd.LoopNumEdges(i)
		if numEdges == 0 {
			i++
			continue
		}
		lp := raster.Loop{
			Region:      regionFill,
			MaskLayer:   maskLayer,
			MaskTrigger: maskTrigger,
			HasFill:     regionFill < level.RegionEmpty,
			Fill: uint16(regionFill | level.PayloadBitNonWall |
				maskTrigger<<level.PayloadShiftTrigger),
			Edges: make([]raster.Edge, 0, numEdges),
		}
		for j := i + 1; j <= i+numEdges; j++ {
			xb, yb := cd.EdgeBegin(j)
			xs, ys := t.transformVertex(xb, yb)
			regionLine := cd.EdgeRegionLine(j)
			lp.Edges = append(lp.Edges, raster.Edge{
				X: xs, Y: ys,
				LinePayload: uint16(j),
				DrawLine:    regionLine < level.RegionEmpty,
				Wall:        regionLine == level.RegionWall,
			})
		}
		t.loops = append(t.loops, lp)
		i += 1 + numEdges
	}
}

// Rasterize paints the scene into pb with the current transform, masked to
// the given layer set. Screen point (0,0) maps to the buffer's top left.
func (t *Transform) Rasterize(pb *raster.PayloadBuffer, maskLayer int) {
	if t.dirty {
		t.rebuildGeometry()
		t.dirty = false
	}
	raster.Rasterize(pb, t.loops, maskLayer, EmptyPayload,
		t.translateX, t.translateY)
}

// PatternDrift returns the accumulated screen-space drift of the transform's
// anchor world point and rolls the anchor forward. Fill patterns scroll by
// this amount so terrain texture appears fixed to the world as the camera
// pans.
func (t *Transform) PatternDrift() (dx, dy int) {
	xsF10, ysF10 := t.WorldToScreenF10(t.xwLastF10, t.ywLastF10)
	t.dxAccum += ((xsF10 + 0x200) >> 10) - t.xsLast
	t.dyAccum += ((ysF10 + 0x200) >> 10) - t.ysLast
	t.dxAccum &= 0x7
	t.dyAccum &= 0x7

	t.xwLastF10 = t.xwNextF10
	t.ywLastF10 = t.ywNextF10
	xsF10, ysF10 = t.WorldToScreenF10(t.xwLastF10, t.ywLastF10)
	t.xsLast = (xsF10 + 0x200) >> 10
	t.ysLast = (ysF10 + 0x200) >> 10
	return t.dxAccum, t.dyAccum
}
