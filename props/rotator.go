package props

import (
	"log"
	"time"

	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// RotatorClips are the rotator's sound set; any may be nil
type RotatorClips struct {
	Start *audio.Clip
	Move  *audio.Clip // Looped while at full speed
	Stop  *audio.Clip
}

// RotatorConfig configures a Rotator
type RotatorConfig struct {
	Axis     vmath.Vec3F // Local axis, zero selects forward
	Speed    float64     // Degrees per second at full speed, <=0 uses parameter.RotatorSpeed
	Accel    float64     // Degrees per second squared, <=0 reaches speed immediately
	StartsOn bool
	Clips    RotatorClips
}

// Rotator spins a transform, ramping speed up on start and down on stop
type Rotator struct {
	base
	transform *core.Transform
	cfg       RotatorConfig

	running bool
	speed   float64
	atMax   bool
	atMin   bool
}

// NewRotator creates a rotator driving transform
func NewRotator(w *engine.World, e core.Entity, transform *core.Transform, backend audio.Backend, cfg RotatorConfig) *Rotator {
	if vmath.V3FIsZero(cfg.Axis) {
		log.Printf("rotator %s: zero axis, using forward", w.Name(e))
		cfg.Axis = vmath.V3FForward
	}
	if cfg.Speed <= 0 {
		cfg.Speed = parameter.RotatorSpeed
	}
	r := &Rotator{
		base:      newBase(w, e, backend, nil),
		transform: transform,
		cfg:       cfg,
		atMin:     true,
	}
	if cfg.StartsOn {
		r.running = true
		r.speed = cfg.Speed
		r.atMax = true
		r.atMin = false
	}
	return r
}

// StartRotation begins ramping up; no-op while running
func (r *Rotator) StartRotation() {
	if r.running {
		return
	}
	r.running = true
	r.play(r.cfg.Clips.Start)
	r.bus.Publish(event.EventRotationStart)
}

// StopRotation begins ramping down; no-op while stopped
func (r *Rotator) StopRotation() {
	if !r.running {
		return
	}
	r.running = false
	r.play(r.cfg.Clips.Stop)
	r.bus.Publish(event.EventRotationStop)
}

// Use toggles rotation
func (r *Rotator) Use() {
	if r.running {
		r.StopRotation()
	} else {
		r.StartRotation()
	}
}

// Update ramps speed and rotates the transform
func (r *Rotator) Update(dt time.Duration) {
	sec := dt.Seconds()
	target := 0.0
	if r.running {
		target = r.cfg.Speed
	}

	switch {
	case r.cfg.Accel <= 0:
		r.speed = target
	case r.speed < target:
		r.speed = min(r.speed+r.cfg.Accel*sec, target)
	case r.speed > target:
		r.speed = max(r.speed-r.cfg.Accel*sec, target)
	}

	if r.speed > 0 {
		r.transform.RotateLocal(r.cfg.Axis, r.speed*sec)
	}

	r.edges()
}

// edges publishes max and min once per arrival
func (r *Rotator) edges() {
	atMax := r.speed >= r.cfg.Speed
	atMin := r.speed <= 0

	if atMax && !r.atMax {
		if r.cfg.Clips.Move != nil {
			r.cue.Stop()
			r.cue.Play(r.cfg.Clips.Move, true, nil)
		}
		r.bus.Publish(event.EventRotationMax)
	}
	if atMin && !r.atMin {
		r.bus.Publish(event.EventRotationMin)
	}
	r.atMax, r.atMin = atMax, atMin
}

// Running reports whether the rotator is driven toward full speed
func (r *Rotator) Running() bool { return r.running }

// Speed returns the current speed in degrees per second
func (r *Rotator) Speed() float64 { return r.speed }
