package raster

import "testing"

const clearVal = 0xfff

func squareLoop(x0, y0, x1, y1 int, region, layer int, fill uint16) Loop {
	return Loop{
		Region:    region,
		MaskLayer: layer,
		Fill:      fill,
		HasFill:   true,
		Edges: []Edge{
			{X: x0, Y: y0},
			{X: x1, Y: y0},
			{X: x1, Y: y1},
			{X: x0, Y: y1},
		},
	}
}

func TestFillSquare(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(10, 10)
	Rasterize(&pb, []Loop{squareLoop(2, 2, 7, 7, 7, 1, 0xaa)}, 1, clearVal, 0, 0)

	if got := pb.At(4, 4); got != 0xaa {
		t.Errorf("interior pixel = %#x, want 0xaa", got)
	}
	if got := pb.At(0, 0); got != clearVal {
		t.Errorf("outside pixel = %#x, want clear", got)
	}
	if got := pb.At(8, 4); got != clearVal {
		t.Errorf("pixel right of polygon = %#x, want clear", got)
	}
}

func TestLayerMaskSkipsLoops(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(10, 10)
	loops := []Loop{squareLoop(1, 1, 9, 9, 7, 0x4, 0xaa)}

	Rasterize(&pb, loops, 0x1, clearVal, 0, 0)
	if got := pb.At(5, 5); got != clearVal {
		t.Errorf("masked loop filled pixel %#x", got)
	}
	Rasterize(&pb, loops, 0x5, clearVal, 0, 0)
	if got := pb.At(5, 5); got != 0xaa {
		t.Errorf("unmasked loop missing, pixel %#x", got)
	}
}

func TestLowerRegionsDrawOverHigher(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(12, 12)
	loops := []Loop{
		// Sandtrap (5) listed after fairway (7) but must paint on top.
		squareLoop(1, 1, 11, 11, 7, 1, 0x77),
		squareLoop(3, 3, 8, 8, 5, 1, 0x55),
	}
	Rasterize(&pb, loops, 1, clearVal, 0, 0)

	if got := pb.At(5, 5); got != 0x55 {
		t.Errorf("overlap pixel = %#x, want sandtrap", got)
	}
	if got := pb.At(9, 9); got != 0x77 {
		t.Errorf("fairway-only pixel = %#x, want fairway", got)
	}

	// Same result with the loops listed the other way round.
	Rasterize(&pb, []Loop{loops[1], loops[0]}, 1, clearVal, 0, 0)
	if got := pb.At(5, 5); got != 0x55 {
		t.Errorf("reordered overlap pixel = %#x, want sandtrap", got)
	}
}

func TestWallLinesDrawLast(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(10, 10)
	lp := squareLoop(2, 2, 7, 7, 7, 1, 0x77)
	for i := range lp.Edges {
		lp.Edges[i].DrawLine = true
		lp.Edges[i].Wall = true
		lp.Edges[i].LinePayload = uint16(i) // chunk-index style payload
	}
	Rasterize(&pb, []Loop{lp}, 1, clearVal, 0, 0)

	if got := pb.At(4, 2); got != 0 {
		t.Errorf("top wall pixel = %#x, want edge 0 payload", got)
	}
	if got := pb.At(7, 4); got != 1 {
		t.Errorf("right wall pixel = %#x, want edge 1 payload", got)
	}
	if got := pb.At(4, 4); got != 0x77 {
		t.Errorf("interior pixel = %#x, want fill", got)
	}
}

func TestLineClipping(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(4, 4)
	lp := Loop{
		MaskLayer: 1,
		Edges: []Edge{
			{X: -5, Y: -5, DrawLine: true, LinePayload: 9},
			{X: 10, Y: 10, DrawLine: true, LinePayload: 9},
		},
	}
	Rasterize(&pb, []Loop{lp}, 1, clearVal, 0, 0)
	if got := pb.At(2, 2); got != 9 {
		t.Errorf("diagonal pixel = %#x, want 9", got)
	}
}

func TestRasterizeOffset(t *testing.T) {
	var pb PayloadBuffer
	pb.SetDimensions(10, 10)
	Rasterize(&pb, []Loop{squareLoop(20, 20, 25, 25, 7, 1, 0xaa)}, 1, clearVal, -18, -18)

	if got := pb.At(4, 4); got != 0xaa {
		t.Errorf("shifted interior pixel = %#x, want 0xaa", got)
	}
	if got := pb.At(1, 1); got != clearVal {
		t.Errorf("pixel before shifted polygon = %#x, want clear", got)
	}
}

func TestDrawCircle(t *testing.T) {
	var total, outline int
	DrawCircle(5<<10, 5<<10, 5<<10, func(x, y int, isOutline bool) {
		total++
		if isOutline {
			outline++
		}
		if x < 3 || x > 7 || y < 3 || y > 7 {
			t.Errorf("pixel (%d,%d) outside 5x5 sprite box", x, y)
		}
	})
	// Diameter-5 sprite: columns 0xe,0x1f,0x1f,0x1f,0xe.
	if total != 21 {
		t.Errorf("filled pixels = %d, want 21", total)
	}
	// Outline ring: columns 0xe,0x11,0x11,0x11,0xe.
	if outline != 12 {
		t.Errorf("outline pixels = %d, want 12", outline)
	}
}

func TestDrawCircleClampsDiameter(t *testing.T) {
	var total int
	DrawCircle(0, 0, 40<<10, func(x, y int, _ bool) { total++ })
	if total == 0 {
		t.Fatal("no pixels for oversized diameter")
	}
	var d1 int
	DrawCircle(0, 0, 0, func(x, y int, _ bool) {
		d1++
		if x != 0 || y != 0 {
			t.Errorf("d1 pixel at (%d,%d)", x, y)
		}
	})
	if d1 != 1 {
		t.Errorf("d1 pixels = %d, want 1", d1)
	}
}
