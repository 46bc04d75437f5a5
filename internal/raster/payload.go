// Package raster turns screen-space loop geometry into per-pixel payload
// values. The same rasterizer feeds both the display path and the ball's
// collision scans, so what the player sees is exactly what the ball hits.
package raster

// PayloadBuffer is a dense w*h grid of uint16 payload values.
type PayloadBuffer struct {
	W, H int
	Buf  []uint16
}

// SetDimensions resizes the buffer, reusing the backing slice when it fits.
func (pb *PayloadBuffer) SetDimensions(w, h int) {
	if w < 0 || h < 0 {
		panic("raster: negative payload dimensions")
	}
	pb.W, pb.H = w, h
	if n := w * h; cap(pb.Buf) < n {
		pb.Buf = make([]uint16, n)
	} else {
		pb.Buf = pb.Buf[:n]
	}
}

// Clear sets every pixel to the given payload.
func (pb *PayloadBuffer) Clear(payload uint16) {
	for i := range pb.Buf {
		pb.Buf[i] = payload
	}
}

// At returns the payload at (x, y). The caller keeps coordinates in range.
func (pb *PayloadBuffer) At(x, y int) uint16 {
	return pb.Buf[y*pb.W+x]
}

func (pb *PayloadBuffer) set(x, y int, payload uint16) {
	if x < 0 || x >= pb.W || y < 0 || y >= pb.H {
		return
	}
	pb.Buf[y*pb.W+x] = payload
}
