package props

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/vmath"
)

// Body is anything a push trigger can move
type Body interface {
	Translate(offset vmath.Vec3F)
	SetVelocity(v vmath.Vec3F)
	HasRigidBody() bool
}

// RigidBody is a minimal Body backed by a transform
// Velocity is stored for the physics layer; this package never integrates it
type RigidBody struct {
	Transform *core.Transform
	Velocity  vmath.Vec3F
	Dynamic   bool
}

func (b *RigidBody) Translate(offset vmath.Vec3F) { b.Transform.Translate(offset) }

func (b *RigidBody) SetVelocity(v vmath.Vec3F) { b.Velocity = v }

func (b *RigidBody) HasRigidBody() bool { return b.Dynamic }

// PushDirection picks the trigger's local axis used for pushing
type PushDirection uint8

const (
	PushOverride PushDirection = iota // Use PushConfig.Override as is
	PushForward
	PushRight
)

// PushConfig configures a PushTrigger
type PushConfig struct {
	Direction    PushDirection
	Strength     float64
	Override     vmath.Vec3F
	PhysicsForce bool // Set velocity instead of translating
}

// PushTrigger pushes every tracked body each tick
type PushTrigger struct {
	entity core.Entity
	push   vmath.Vec3F
	force  bool
	bodies mapset.Set[Body]
}

// NewPushTrigger resolves the push vector from the trigger's transform once
func NewPushTrigger(e core.Entity, transform *core.Transform, cfg PushConfig) *PushTrigger {
	push := cfg.Override
	switch cfg.Direction {
	case PushForward:
		push = vmath.V3FScale(transform.Forward(), cfg.Strength)
	case PushRight:
		push = vmath.V3FScale(transform.Right(), cfg.Strength)
	}
	return &PushTrigger{
		entity: e,
		push:   push,
		force:  cfg.PhysicsForce,
		bodies: mapset.New[Body](),
	}
}

// Enter starts tracking b; bodies without a rigid body are ignored
func (p *PushTrigger) Enter(b Body) {
	if b == nil || !b.HasRigidBody() {
		return
	}
	p.bodies.Put(b)
}

// Exit stops tracking b
func (p *PushTrigger) Exit(b Body) {
	p.bodies.Remove(b)
}

// Update pushes all tracked bodies
func (p *PushTrigger) Update(dt time.Duration) {
	if p.bodies.Size() == 0 {
		return
	}
	step := vmath.V3FScale(p.push, dt.Seconds())
	p.bodies.Each(func(b Body) {
		if p.force {
			b.SetVelocity(p.push)
		} else {
			b.Translate(step)
		}
	})
}

func (p *PushTrigger) Entity() core.Entity { return p.entity }

// Push returns the resolved push vector
func (p *PushTrigger) Push() vmath.Vec3F { return p.push }

// Tracking returns the number of bodies inside the zone
func (p *PushTrigger) Tracking() int { return p.bodies.Size() }

// Contains reports whether b is tracked
func (p *PushTrigger) Contains(b Body) bool { return p.bodies.Has(b) }
