package raster

import "sort"

// Edge is one vertex of a loop's polygon plus how the line running from it
// to the next vertex should be drawn. Wall lines carry their edge's chunk
// index as payload and are plotted after everything else.
type Edge struct {
	X, Y        int
	LinePayload uint16
	DrawLine    bool
	Wall        bool
}

// Loop is a closed polygon in screen space, filled as one region.
type Loop struct {
	Region      int
	MaskLayer   int
	MaskTrigger int
	Fill        uint16 // interior payload; fill skipped when HasFill is false
	HasFill     bool
	Edges       []Edge
}

// Rasterize paints loops into pb: region fills first, higher region numbers
// before lower so lower regions draw over them, then non-wall lines, then
// wall lines. Loops whose layer mask misses maskLayer are skipped entirely.
// The buffer is cleared to clearPayload first. ox and oy shift the geometry
// into the buffer, so callers can keep loop coordinates translate-free.
func Rasterize(pb *PayloadBuffer, loops []Loop, maskLayer int, clearPayload uint16, ox, oy int) {
	pb.Clear(clearPayload)

	visible := make([]int, 0, len(loops))
	for i := range loops {
		if loops[i].MaskLayer&maskLayer != 0 {
			visible = append(visible, i)
		}
	}

	// Stable order keeps overlapping same-region loops painting in data
	// order.
	order := make([]int, len(visible))
	copy(order, visible)
	sort.SliceStable(order, func(a, b int) bool {
		return loops[order[a]].Region > loops[order[b]].Region
	})
	var xs []int
	for _, i := range order {
		lp := &loops[i]
		if !lp.HasFill || len(lp.Edges) < 3 {
			continue
		}
		xs = fillPolygon(pb, lp, xs, ox, oy)
	}

	for wallPass := 0; wallPass < 2; wallPass++ {
		for _, i := range visible {
			lp := &loops[i]
			n := len(lp.Edges)
			for j := 0; j < n; j++ {
				e := &lp.Edges[j]
				if !e.DrawLine || (e.Wall != (wallPass == 1)) {
					continue
				}
				next := &lp.Edges[(j+1)%n]
				drawLine(pb, e.X+ox, e.Y+oy, next.X+ox, next.Y+oy, e.LinePayload)
			}
		}
	}
}

// fillPolygon scanline-fills a polygon with even-odd parity. Crossings use
// a half-open rule in y so shared vertices do not double count.
func fillPolygon(pb *PayloadBuffer, lp *Loop, xs []int, ox, oy int) []int {
	minY, maxY := pb.H, -1
	for _, e := range lp.Edges {
		if e.Y+oy < minY {
			minY = e.Y + oy
		}
		if e.Y+oy > maxY {
			maxY = e.Y + oy
		}
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= pb.H {
		maxY = pb.H - 1
	}

	n := len(lp.Edges)
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		for j := 0; j < n; j++ {
			x0, y0 := lp.Edges[j].X+ox, lp.Edges[j].Y+oy
			x1, y1 := lp.Edges[(j+1)%n].X+ox, lp.Edges[(j+1)%n].Y+oy
			if y0 == y1 {
				continue
			}
			if y1 < y0 {
				x0, y0, x1, y1 = x1, y1, x0, y0
			}
			if y < y0 || y >= y1 {
				continue
			}
			xs = append(xs, x0+(y-y0)*(x1-x0)/(y1-y0))
		}
		sort.Ints(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			a, b := xs[k], xs[k+1]
			if a < 0 {
				a = 0
			}
			if b > pb.W {
				b = pb.W
			}
			for x := a; x < b; x++ {
				pb.Buf[y*pb.W+x] = lp.Fill
			}
		}
	}
	return xs
}

// drawLine plots a Bresenham line of payload values, clipped to the buffer.
func drawLine(pb *PayloadBuffer, x0, y0, x1, y1 int, payload uint16) {
	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		pb.set(x0, y0, payload)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := err << 1
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
