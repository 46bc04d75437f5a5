package raster

// Circle sprites for the ball and hole, one per diameter from 1 to 9.
// Each entry is a column of pixels with bit y set for row y.
var circleFill = [][]uint16{
	{0x001},
	{0x003, 0x003},
	{0x007, 0x007, 0x007},
	{0x006, 0x00f, 0x00f, 0x006},
	{0x00e, 0x01f, 0x01f, 0x01f, 0x00e},
	{0x00c, 0x01e, 0x03f, 0x03f, 0x01e, 0x00c},
	{0x01c, 0x03e, 0x07f, 0x07f, 0x07f, 0x03e, 0x01c},
	{0x03c, 0x07e, 0x0ff, 0x0ff, 0x0ff, 0x0ff, 0x07e, 0x03c},
	{0x038, 0x0fe, 0x0fe, 0x1ff, 0x1ff, 0x1ff, 0x0fe, 0x0fe, 0x038},
}

var circleOutline = [][]uint16{
	{0x001},
	{0x003, 0x003},
	{0x007, 0x005, 0x007},
	{0x006, 0x009, 0x009, 0x006},
	{0x00e, 0x011, 0x011, 0x011, 0x00e},
	{0x00c, 0x012, 0x021, 0x021, 0x012, 0x00c},
	{0x01c, 0x022, 0x041, 0x041, 0x041, 0x022, 0x01c},
	{0x03c, 0x042, 0x081, 0x081, 0x081, 0x081, 0x042, 0x03c},
	{0x038, 0x0c6, 0x082, 0x101, 0x101, 0x101, 0x082, 0x0c6, 0x038},
}

// MaxCircleDiameter is the largest sprite available.
const MaxCircleDiameter = 9

// DrawCircle rasterizes the circle sprite nearest to diameterF10 centered
// at the given f10 screen position. set is called once per covered pixel,
// with outline true on the ring pixels. Callers clip in set.
func DrawCircle(xsCenterF10, ysCenterF10, diameterF10 int, set func(x, y int, outline bool)) {
	d := (diameterF10 + 0x200) >> 10
	if d < 1 {
		d = 1
	} else if d > MaxCircleDiameter {
		d = MaxCircleDiameter
	}
	radFloor := d >> 1
	xs := ((xsCenterF10 + 0x200) >> 10) - radFloor
	ys := ((ysCenterF10 + 0x200) >> 10) - radFloor
	fill := circleFill[d-1]
	line := circleOutline[d-1]
	for cx := 0; cx < d; cx++ {
		for cy := 0; cy < d; cy++ {
			bit := uint16(1) << cy
			if fill[cx]&bit == 0 {
				continue
			}
			set(xs+cx, ys+cy, line[cx]&bit != 0)
		}
	}
}
