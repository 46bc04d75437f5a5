package scene

import (
	"testing"

	"github.com/greensward/tinygolf/internal/level"
	"github.com/greensward/tinygolf/internal/raster"
)

func buildFairwaySquare(t *testing.T, maskLayer int) *level.ChunkData {
	t.Helper()
	b := level.NewBuilder()
	if err := b.AddLoop(level.RegionFairway, maskLayer, 0); err != nil {
		t.Fatal(err)
	}
	b.AddEdges([]int16{10, 10, 50, 10, 50, 50, 10, 50}, level.RegionWall)
	return b.Build()
}

func TestWorldToScreenIdentity(t *testing.T) {
	tr := NewTransform(&level.ChunkData{})
	xs, ys := tr.WorldToScreenF10(100<<10, -40<<10)
	if xs != 100<<10 || ys != -40<<10 {
		t.Fatalf("identity moved the point: got (%d, %d)", xs, ys)
	}
	tr.SetTranslate(7, -3)
	xs, ys = tr.WorldToScreenF10(100<<10, -40<<10)
	if xs != 107<<10 || ys != -43<<10 {
		t.Fatalf("translate off: got (%d, %d)", xs, ys)
	}
}

func TestScreenToWorldInverts(t *testing.T) {
	cases := []struct {
		name    string
		scale   int
		angle   int
		tx, ty  int
		wantTol int
	}{
		{"quarter turn", 1 << 10, 90, 0, 0, 0},
		{"scaled and panned", 2 << 10, 180, 12, -5, 0},
		{"odd angle", 1 << 10, 37, 3, 9, 1 << 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := NewTransform(&level.ChunkData{})
			tr.SetScaleF10(tc.scale)
			tr.SetAngleWD(tc.angle)
			tr.SetTranslate(tc.tx, tc.ty)
			xwF10, ywF10 := 100<<10, 80<<10
			xs, ys := tr.WorldToScreenF10(xwF10, ywF10)
			xb, yb := tr.ScreenToWorldF10(xs, ys)
			if abs(xb-xwF10) > tc.wantTol || abs(yb-ywF10) > tc.wantTol {
				t.Fatalf("round trip drifted: got (%d, %d), want near (%d, %d)",
					xb, yb, xwF10, ywF10)
			}
		})
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestMapWorldToScreenPinsPoint(t *testing.T) {
	tr := NewTransform(&level.ChunkData{})
	tr.SetScaleF10(2 << 10)
	tr.SetAngleWD(45)
	tr.MapWorldToScreenF10(100<<10, 80<<10, 10<<10, 12<<10)
	xs, ys := tr.WorldToScreenF10(100<<10, 80<<10)
	if (xs+0x200)>>10 != 10 || (ys+0x200)>>10 != 12 {
		t.Fatalf("point not pinned: lands at (%d, %d) f10", xs, ys)
	}
}

func TestRasterizeScene(t *testing.T) {
	cd := buildFairwaySquare(t, 0x1)
	tr := NewTransform(cd)
	tr.SetTranslate(-8, -8)
	var pb raster.PayloadBuffer
	pb.SetDimensions(48, 48)
	tr.Rasterize(&pb, 0xf)

	// Interior: fairway fill, non-wall.
	p := pb.At(20, 20)
	if p&uint16(level.PayloadBitNonWall) == 0 {
		t.Fatalf("interior pixel is an edge: %#x", p)
	}
	if int(p&uint16(level.PayloadMaskLow)) != level.RegionFairway {
		t.Fatalf("interior region = %d, want fairway", p&uint16(level.PayloadMaskLow))
	}
	// Border: a wall edge pixel holding its chunk index.
	p = pb.At(2, 20)
	if p&uint16(level.PayloadBitNonWall) != 0 {
		t.Fatalf("border pixel not an edge: %#x", p)
	}
	if p == 0 || int(p) >= cd.NumChunks {
		t.Fatalf("border pixel chunk index out of range: %d", p)
	}
	// Outside: untouched.
	if got := pb.At(46, 46); got != EmptyPayload {
		t.Fatalf("outside pixel = %#x, want empty", got)
	}
}

func TestRasterizeHonorsLayerMask(t *testing.T) {
	cd := buildFairwaySquare(t, 0x2)
	tr := NewTransform(cd)
	tr.SetTranslate(-8, -8)
	var pb raster.PayloadBuffer
	pb.SetDimensions(48, 48)
	tr.Rasterize(&pb, 0x1)
	if got := pb.At(20, 20); got != EmptyPayload {
		t.Fatalf("masked-off loop drew anyway: %#x", got)
	}
	tr.Rasterize(&pb, 0x2)
	if got := pb.At(20, 20); got == EmptyPayload {
		t.Fatal("matching layer drew nothing")
	}
}

func TestPatternDriftTracksPans(t *testing.T) {
	tr := NewTransform(&level.ChunkData{})
	tr.MapWorldToScreenF10(0, 0, 0, 0)
	if dx, dy := tr.PatternDrift(); dx != 0 || dy != 0 {
		t.Fatalf("initial drift = (%d, %d), want (0, 0)", dx, dy)
	}
	tr.AddTranslate(3, 5)
	if dx, dy := tr.PatternDrift(); dx != 3 || dy != 5 {
		t.Fatalf("drift after pan = (%d, %d), want (3, 5)", dx, dy)
	}
	// Drift accumulates and wraps to the 8x8 tile.
	tr.AddTranslate(6, 0)
	if dx, dy := tr.PatternDrift(); dx != 1 || dy != 5 {
		t.Fatalf("accumulated drift = (%d, %d), want (1, 5)", dx, dy)
	}
}

func TestPatternsRegions(t *testing.T) {
	var p Patterns
	p.Update(0, 0, 0, 0)
	for y := 0; y < 8; y++ {
		if !p.On(level.RegionWall, 3, y) {
			t.Fatalf("wall pattern hole at y=%d", y)
		}
		if p.On(level.RegionFairway, 3, y) {
			t.Fatalf("fairway pattern set at y=%d", y)
		}
	}
	// Sand column 0 is 0xef: bit 4 clear, the rest set.
	if p.On(level.RegionSandtrap, 0, 4) {
		t.Fatal("sand (0,4) should be off")
	}
	if !p.On(level.RegionSandtrap, 0, 0) {
		t.Fatal("sand (0,0) should be on")
	}
}

func TestPatternsWaterAnimates(t *testing.T) {
	var p Patterns
	p.Update(0, 0, 0, 0)
	frame0 := p.On(level.RegionWater, 0, 0)
	p.Update(0, 0, 0, 256)
	frame1 := p.On(level.RegionWater, 0, 0)
	// Frame 0 column 0 is 0x21 (bit 0 set), frame 1 is 0x02 (bit 0 clear).
	if !frame0 || frame1 {
		t.Fatalf("water frames did not change: frame0=%v frame1=%v", frame0, frame1)
	}
}

func TestPatternsScroll(t *testing.T) {
	var p Patterns
	p.Update(1, 1, 0, 0)
	// Sand column 0 (0xef) lands in column 1 rotated up one row: 0xdf.
	if !p.On(level.RegionSandtrap, 1, 4) {
		t.Fatal("scrolled sand (1,4) should be on")
	}
	if p.On(level.RegionSandtrap, 1, 5) {
		t.Fatal("scrolled sand (1,5) should be off")
	}
}

func TestPatternsSlopeFollowsCamera(t *testing.T) {
	var p Patterns
	p.Update(0, 0, 0, 0)
	level0 := p.On(level.RegionSlopeRight, 0, 1)
	p.Update(0, 0, 90, 0)
	turned := p.On(level.RegionSlopeRight, 0, 1)
	// At angle 0 the right-slope chevron's column 0 is blank; a quarter
	// turn later it picks up a pattern two steps around with 0x22 there.
	if level0 || !turned {
		t.Fatalf("slope pattern did not rotate: level=%v turned=%v", level0, turned)
	}
}
