package core

import "github.com/herob4u/VRShowcase/vmath"

// Transform is a world-space placement
type Transform struct {
	Position vmath.Vec3F
	Rotation vmath.Quat
}

// NewTransform returns a transform at position with Euler rotation in degrees
func NewTransform(position, eulerDeg vmath.Vec3F) *Transform {
	return &Transform{
		Position: position,
		Rotation: vmath.QuatFromEuler(eulerDeg),
	}
}

// Forward returns the local +Z axis in world space
func (t *Transform) Forward() vmath.Vec3F {
	return vmath.QuatRotate(t.Rotation, vmath.V3FForward)
}

// Right returns the local +X axis in world space
func (t *Transform) Right() vmath.Vec3F {
	return vmath.QuatRotate(t.Rotation, vmath.V3FRight)
}

// Translate moves the transform by a world-space offset
func (t *Transform) Translate(offset vmath.Vec3F) {
	t.Position = vmath.V3FAdd(t.Position, offset)
}

// Rotate applies a rotation of deg degrees about a world-space axis
func (t *Transform) Rotate(axis vmath.Vec3F, deg float64) {
	t.Rotation = vmath.QuatNormalize(vmath.QuatMul(vmath.QuatFromAxisAngle(axis, deg), t.Rotation))
}

// RotateLocal applies a rotation of deg degrees about an axis in the transform's own frame
func (t *Transform) RotateLocal(axis vmath.Vec3F, deg float64) {
	t.Rotation = vmath.QuatNormalize(vmath.QuatMul(t.Rotation, vmath.QuatFromAxisAngle(axis, deg)))
}
