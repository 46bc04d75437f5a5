// Package geom provides the integer math the course engine is built on.
// Coordinates and speeds are fixed point: f10 values carry 10 fractional
// bits, f20 values carry 20. Angles are integer degrees wrapped to
// [0, 360), measured from +x towards +y in screen space.
package geom

import "math"

// Fixed-point scale factors.
const (
	F10One = 1 << 10
	F20One = 1 << 20
)

// RoundF10 converts an f10 value to an integer, rounding to nearest.
func RoundF10(v int) int {
	return (v + 0x200) >> 10
}

// RoundF20 converts an f20 value to an integer, rounding to nearest.
func RoundF20(v int) int {
	return (v + 0x80000) >> 20
}

// SqrtInt returns the integer square root, truncated.
func SqrtInt(v int) int {
	return int(math.Sqrt(float64(v)))
}
