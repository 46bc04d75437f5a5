package geom

import "math"

const (
	degToRad = 0.01745329251
	radToDeg = 57.2957795130
)

// Lookup tables for wrapped-degree trig, truncated to f10 exactly as the
// float expressions would produce.
var sinTableF10 [360]int

func init() {
	for wd := 0; wd < 360; wd++ {
		sinTableF10[wd] = int(math.Sin(float64(wd)*degToRad) * 1024)
	}
}

// Wrap reduces an angle in degrees to [0, 360).
func Wrap(degrees int) int {
	wd := degrees % 360
	if wd < 0 {
		wd += 360
	}
	return wd
}

// SinF10 returns sin of the angle as an f10 value.
func SinF10(degrees int) int {
	return sinTableF10[Wrap(degrees)]
}

// CosF10 returns cos of the angle as an f10 value.
func CosF10(degrees int) int {
	return sinTableF10[Wrap(degrees+90)]
}

// InwardNormal returns the angle of an edge's normal, oriented inward when
// the edge lies on the CCW-wound perimeter of a polygon.
func InwardNormal(xb, yb, xe, ye int) int {
	return Wrap(int(math.Atan2(float64(ye-yb), float64(xe-xb))*radToDeg) - 90)
}

// VelocityHits reports whether a velocity at angle vWD would strike the edge
// side that a normal at normalWD extends outward from.
func VelocityHits(vWD, normalWD int) bool {
	diff := vWD - normalWD
	if diff < 0 {
		diff = -diff
	}
	return diff > 90 && diff < 270
}

// Reflect returns the velocity angle after bouncing off a surface with the
// given normal. Assumes VelocityHits holds for the pair.
func Reflect(vWD, normalWD int) int {
	return Wrap((normalWD << 1) - vWD - 180)
}

// EndpointNormal returns the effective normal for reflecting at the shared
// endpoint of two edges, when the moving object touches both and VelocityHits
// holds for both normals.
func EndpointNormal(normal0WD, normal1WD int) int {
	// Half vector of the shorter arc between the two normals.
	zeroToOne := Wrap(normal1WD - normal0WD)
	if zeroToOne < 180 {
		return Wrap(normal0WD + (zeroToOne >> 1))
	}
	return Wrap(normal0WD + (zeroToOne >> 1) + 180)
}

// VectorAngleWD returns the wrapped-degree angle of an f10 vector, rounded
// to the nearest degree.
func VectorAngleWD(xF10, yF10 int) int {
	return Wrap(int(math.Atan2(float64(yF10), float64(xF10))*radToDeg + 0.5))
}
