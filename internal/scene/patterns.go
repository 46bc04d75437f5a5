package scene

import "github.com/greensward/tinygolf/internal/level"

// Fill patterns are 8x8 tiles, one byte per column with bit y set for row y.
// They scroll with the camera (via Transform.PatternDrift) so terrain
// texture stays fixed to the world.

// Base tiles per region. Water is animated and slopes are directional, so
// their rows here are placeholders overwritten on every Update.
var patternRegions = [9][8]byte{
	level.RegionWall:     {0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff},
	level.RegionSandtrap: {0xef, 0xfd, 0xb7, 0xfe, 0xef, 0x7f, 0xfb, 0xbf},
	level.RegionFairway:  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
}

// Water animation frames.
var patternWater = [4][8]byte{
	{0x21, 0x12, 0x10, 0x20, 0x02, 0x01, 0x02, 0x22},
	{0x02, 0x20, 0x20, 0x12, 0x11, 0x22, 0x02, 0x01},
	{0x00, 0x02, 0x01, 0x22, 0x22, 0x12, 0x11, 0x22},
	{0x12, 0x21, 0x02, 0x02, 0x00, 0x22, 0x21, 0x12},
}

// Slope chevrons for the eight screen-space directions, successive CW
// starting at +x.
var patternDirections = [8][8]byte{
	{0x00, 0x55, 0x22, 0x00, 0x00, 0x55, 0x22, 0x00},
	{0x00, 0x44, 0x66, 0x00, 0x00, 0x44, 0x66, 0x00},
	{0x22, 0x44, 0x22, 0x00, 0x22, 0x44, 0x22, 0x00},
	{0x66, 0x44, 0x00, 0x00, 0x66, 0x44, 0x00, 0x00},
	{0x22, 0x55, 0x00, 0x00, 0x22, 0x55, 0x00, 0x00},
	{0x33, 0x11, 0x00, 0x00, 0x33, 0x11, 0x00, 0x00},
	{0x22, 0x11, 0x22, 0x00, 0x22, 0x11, 0x22, 0x00},
	{0x00, 0x11, 0x33, 0x00, 0x00, 0x11, 0x33, 0x00},
}

var nonSlopeRegions = []int{
	level.RegionWall, level.RegionSandtrap, level.RegionFairway,
}

// Patterns holds the per-frame draw tiles for every region.
type Patterns struct {
	draw [9][8]byte
}

// copyShift writes src into dst shifted by (dx, dy) with wrapping.
func copyShift(src *[8]byte, dst *[8]byte, dx, dy int) {
	dx &= 0x7
	dy &= 0x7
	for i := 0; i < 8; i++ {
		dst[(i+dx)&0x7] = src[i]
	}
	for i := 0; i < 8; i++ {
		shifted := uint16(dst[i]) << dy
		dst[i] = byte((shifted | shifted>>8) & 0xff)
	}
}

// Update recomputes the draw tiles for a frame: scrolled by the camera
// drift, the water frame picked from the clock, and slope chevrons rotated
// against the camera angle so they keep pointing downhill in world space.
func (p *Patterns) Update(dx, dy, angleWD int, nowMS int64) {
	for _, region := range nonSlopeRegions {
		copyShift(&patternRegions[region], &p.draw[region], dx, dy)
	}
	frame := (nowMS >> 8) & 0x3
	copyShift(&patternWater[frame], &p.draw[level.RegionWater], dx, dy)
	offDir := (angleWD + 22) / 45
	for dir := 0; dir < 4; dir++ {
		src := &patternDirections[((dir<<1)+offDir)&0x7]
		copyShift(src, &p.draw[level.RegionSlopeRight+dir], dx, dy)
	}
}

// On reports whether the texture bit is set for the region at screen pixel
// (x, y).
func (p *Patterns) On(region, x, y int) bool {
	if region < 0 || region >= len(p.draw) {
		return false
	}
	return p.draw[region][x&0x7]&(1<<(y&0x7)) != 0
}
