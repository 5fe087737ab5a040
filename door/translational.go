package door

import (
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// Translational slides a body along a direction
// Target is origin position at transition start plus direction*scalar, signed by the transition direction
type Translational struct {
	body      *core.Transform
	origin    *core.Transform
	direction vmath.Vec3F
	scalar    float64
	target    vmath.Vec3F

	// Tolerance is the convergence distance in scene units
	Tolerance float64

	// ByMagnitude compares vector lengths instead of distance
	// Bodies equidistant from the world origin but far apart converge immediately; kept for scenes authored against it
	ByMagnitude bool
}

// NewTranslational creates a sliding motion; a nil origin uses the body itself
func NewTranslational(body, origin *core.Transform, direction vmath.Vec3F, scalar float64) *Translational {
	if origin == nil {
		origin = body
	}
	return &Translational{
		body:      body,
		origin:    origin,
		direction: direction,
		scalar:    scalar,
		target:    body.Position,
		Tolerance: parameter.DoorDistanceTolerance,
	}
}

func (m *Translational) Begin(direction int) {
	offset := vmath.V3FScale(m.direction, float64(direction)*m.scalar)
	m.target = vmath.V3FAdd(m.origin.Position, offset)
}

func (m *Translational) Step(t float64) {
	m.body.Position = vmath.V3FLerp(m.body.Position, m.target, t)
}

func (m *Translational) Converged() bool {
	if m.ByMagnitude {
		return vmath.Approximately(vmath.V3FMag(m.body.Position), vmath.V3FMag(m.target))
	}
	return vmath.V3FDist(m.body.Position, m.target) < m.Tolerance
}

func (m *Translational) Snap() {
	m.body.Position = m.target
}

// Target returns the position the body is heading to
func (m *Translational) Target() vmath.Vec3F {
	return m.target
}
