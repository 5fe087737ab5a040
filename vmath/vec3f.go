package vmath

import (
	"math"
)

// Vec3F is a float64 3D vector used for scene positions, offsets and Euler angles
type Vec3F struct {
	X, Y, Z float64
}

// Axis presets in scene space (Y up, Z forward)
var (
	V3FZero    = Vec3F{}
	V3FUp      = Vec3F{0, 1, 0}
	V3FRight   = Vec3F{1, 0, 0}
	V3FForward = Vec3F{0, 0, 1}
)

func V3FAdd(a, b Vec3F) Vec3F {
	return Vec3F{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3FSub(a, b Vec3F) Vec3F {
	return Vec3F{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3FScale(v Vec3F, s float64) Vec3F {
	return Vec3F{v.X * s, v.Y * s, v.Z * s}
}

func V3FDot(a, b Vec3F) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3FCross(a, b Vec3F) Vec3F {
	return Vec3F{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func V3FMagSq(v Vec3F) float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func V3FMag(v Vec3F) float64 {
	return math.Sqrt(V3FMagSq(v))
}

// V3FDist returns the euclidean distance between a and b
func V3FDist(a, b Vec3F) float64 {
	return V3FMag(V3FSub(a, b))
}

func V3FNormalize(v Vec3F) Vec3F {
	mag := V3FMag(v)
	if mag == 0 {
		return Vec3F{}
	}
	inv := 1.0 / mag
	return Vec3F{v.X * inv, v.Y * inv, v.Z * inv}
}

// V3FLerp interpolates from a to b, t clamped to [0,1]
func V3FLerp(a, b Vec3F, t float64) Vec3F {
	t = Clamp01(t)
	return Vec3F{
		a.X + (b.X-a.X)*t,
		a.Y + (b.Y-a.Y)*t,
		a.Z + (b.Z-a.Z)*t,
	}
}

// V3FIsZero reports an exact zero vector
func V3FIsZero(v Vec3F) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
