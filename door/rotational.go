package door

import (
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// Rotational swings a body around a pivot
// The body is bound to the pivot's frame once at construction; motion rotates the pivot and re-derives the body
type Rotational struct {
	pivot    *core.Transform
	body     *core.Transform
	rotation vmath.Vec3F // Euler degrees applied on open

	localPos vmath.Vec3F
	localRot vmath.Quat

	rest   vmath.Quat
	target vmath.Quat

	// Tolerance is the convergence angle in degrees, exact down to hundredths of a degree
	Tolerance float64
}

// NewRotational binds body to pivot; a nil pivot rotates the body in place
func NewRotational(pivot, body *core.Transform, rotation vmath.Vec3F) *Rotational {
	if pivot == nil {
		pivot = body
	}
	inv := vmath.QuatConjugate(pivot.Rotation)
	return &Rotational{
		pivot:     pivot,
		body:      body,
		rotation:  rotation,
		localPos:  vmath.QuatRotate(inv, vmath.V3FSub(body.Position, pivot.Position)),
		localRot:  vmath.QuatMul(inv, body.Rotation),
		rest:      pivot.Rotation,
		target:    pivot.Rotation,
		Tolerance: parameter.DoorAngleTolerance,
	}
}

// Begin targets the pivot's current orientation rotated by the open angles, or the remembered rest orientation when closing
func (r *Rotational) Begin(direction int) {
	if direction > 0 {
		r.rest = r.pivot.Rotation
		r.target = vmath.QuatNormalize(vmath.QuatMul(r.pivot.Rotation, vmath.QuatFromEuler(r.rotation)))
		return
	}
	r.target = r.rest
}

func (r *Rotational) Step(t float64) {
	r.pivot.Rotation = vmath.QuatSlerp(r.pivot.Rotation, r.target, t)
	r.sync()
}

func (r *Rotational) Converged() bool {
	return vmath.QuatAngle(r.pivot.Rotation, r.target) < r.Tolerance
}

func (r *Rotational) Snap() {
	r.pivot.Rotation = r.target
	r.sync()
}

// Target returns the orientation the pivot is heading to
func (r *Rotational) Target() vmath.Quat {
	return r.target
}

// sync re-derives the body's world placement from the pivot
func (r *Rotational) sync() {
	if r.pivot == r.body {
		return
	}
	r.body.Rotation = vmath.QuatNormalize(vmath.QuatMul(r.pivot.Rotation, r.localRot))
	r.body.Position = vmath.V3FAdd(r.pivot.Position, vmath.QuatRotate(r.pivot.Rotation, r.localPos))
}
