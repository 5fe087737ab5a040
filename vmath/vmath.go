// Package vmath holds the float vector and rotation math used by scene props
package vmath

import "math"

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi

	// quatDotEpsilon is the dot product above which slerp falls back to lerp
	quatDotEpsilon = 1e-6
)

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Clamp01 bounds x to [0, 1]
func Clamp01(x float64) float64 {
	return Clamp(x, 0, 1)
}

// Approximately compares floats with a relative tolerance and a small absolute floor
func Approximately(a, b float64) bool {
	tol := math.Max(1e-6*math.Max(math.Abs(a), math.Abs(b)), 1e-5)
	return math.Abs(b-a) < tol
}
