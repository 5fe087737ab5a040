package vmath

import "math"

// Quat is a unit quaternion describing an orientation
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity is the rest orientation
var QuatIdentity = Quat{W: 1}

// QuatFromAxisAngle builds a rotation of deg degrees about axis
// A zero axis yields identity
func QuatFromAxisAngle(axis Vec3F, deg float64) Quat {
	n := V3FNormalize(axis)
	if V3FIsZero(n) {
		return QuatIdentity
	}
	half := deg * Deg2Rad * 0.5
	s := math.Sin(half)
	return Quat{W: math.Cos(half), X: n.X * s, Y: n.Y * s, Z: n.Z * s}
}

// QuatFromEuler builds an orientation from per-axis degrees
// Applied Z first, then X, then Y
func QuatFromEuler(deg Vec3F) Quat {
	qx := QuatFromAxisAngle(V3FRight, deg.X)
	qy := QuatFromAxisAngle(V3FUp, deg.Y)
	qz := QuatFromAxisAngle(V3FForward, deg.Z)
	return QuatMul(QuatMul(qy, qx), qz)
}

// QuatMul composes rotations: the result applies b then a
func QuatMul(a, b Quat) Quat {
	return Quat{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func QuatDot(a, b Quat) float64 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// QuatConjugate is the inverse for unit quaternions
func QuatConjugate(q Quat) Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

func QuatNormalize(q Quat) Quat {
	mag := math.Sqrt(QuatDot(q, q))
	if mag == 0 {
		return QuatIdentity
	}
	inv := 1.0 / mag
	return Quat{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// QuatRotate applies q to v
func QuatRotate(q Quat, v Vec3F) Vec3F {
	u := Vec3F{q.X, q.Y, q.Z}
	t := V3FScale(V3FCross(u, v), 2)
	return V3FAdd(V3FAdd(v, V3FScale(t, q.W)), V3FCross(u, t))
}

// QuatAngle returns the angle in degrees between two orientations
// Precise down to tiny angles, no near-parallel cutoff
func QuatAngle(a, b Quat) float64 {
	r := QuatMul(QuatConjugate(a), b)
	v := math.Sqrt(r.X*r.X + r.Y*r.Y + r.Z*r.Z)
	return 2 * math.Atan2(v, math.Abs(r.W)) * Rad2Deg
}

// QuatSlerp spherically interpolates from a to b along the shortest arc, t clamped to [0,1]
func QuatSlerp(a, b Quat, t float64) Quat {
	t = Clamp01(t)
	dot := QuatDot(a, b)
	if dot < 0 {
		b = Quat{W: -b.W, X: -b.X, Y: -b.Y, Z: -b.Z}
		dot = -dot
	}

	// Nearly parallel: fall back to normalized lerp
	if dot > 1-quatDotEpsilon {
		return QuatNormalize(Quat{
			W: a.W + (b.W-a.W)*t,
			X: a.X + (b.X-a.X)*t,
			Y: a.Y + (b.Y-a.Y)*t,
			Z: a.Z + (b.Z-a.Z)*t,
		})
	}

	theta := math.Acos(dot)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		W: a.W*wa + b.W*wb,
		X: a.X*wa + b.X*wb,
		Y: a.Y*wa + b.Y*wb,
		Z: a.Z*wa + b.Z*wb,
	}
}
