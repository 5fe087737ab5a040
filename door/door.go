// Package door implements timed doors: a guarded open/close state machine driving a motion strategy,
// an audio cue and a notification bus
package door

import (
	"log"
	"sync/atomic"
	"time"

	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// Clips are the door's sound set; any may be nil for silence
type Clips struct {
	Open  *audio.Clip
	Move  *audio.Clip // Looped after Open or Close finishes while still moving
	Stop  *audio.Clip
	Close *audio.Clip
}

// Config holds per-door tuning
type Config struct {
	Name           string
	StartsOpen     bool
	Speed          float64       // Interpolation scale, <=0 uses parameter.DoorSpeed
	Accel          float64       // Ease growth per second, <=0 uses the motion's default
	AutoCloseDelay time.Duration // <=0 disables auto-close
	Clips          Clips
}

// Door drives a Motion through the open/close cycle
//
// Per tick while moving:
//  1. Step motion by clamp01(ease*speed)
//  2. On convergence snap, reset ease, feed InputArrived
//  3. Otherwise grow ease by accel*dt
type Door struct {
	entity core.Entity
	cfg    Config
	motion Motion
	sched  *engine.Scheduler
	cue    *audio.Cue
	bus    *event.Bus

	state     State
	direction int
	ease      float64
	started   bool

	statUses        *atomic.Int64
	statIgnored     *atomic.Int64
	statTransitions *atomic.Int64
	statAutoClose   *atomic.Int64
}

// New creates a door for entity e moved by motion
func New(w *engine.World, e core.Entity, motion Motion, backend audio.Backend, cfg Config) *Door {
	if cfg.Speed <= 0 {
		cfg.Speed = parameter.DoorSpeed
	}
	if cfg.Accel <= 0 {
		cfg.Accel = parameter.DoorRotatingAccel
	}
	if cfg.Name == "" {
		cfg.Name = w.Name(e)
	}
	return &Door{
		entity:          e,
		cfg:             cfg,
		motion:          motion,
		sched:           w.Scheduler,
		cue:             audio.NewCue(e, backend, w.Scheduler, w.Status),
		bus:             event.NewBus(e, w.Clock),
		state:           StateClosed,
		direction:       -1,
		ease:            parameter.DoorEaseStart,
		statUses:        w.Status.Ints.Get("door.uses"),
		statIgnored:     w.Status.Ints.Get("door.ignored"),
		statTransitions: w.Status.Ints.Get("door.transitions"),
		statAutoClose:   w.Status.Ints.Get("door.autoclose"),
	}
}

// NewRotating creates a door that swings body around pivot by rotation (Euler degrees)
func NewRotating(w *engine.World, e core.Entity, pivot, body *core.Transform, rotation vmath.Vec3F, backend audio.Backend, cfg Config) *Door {
	return New(w, e, NewRotational(pivot, body, rotation), backend, cfg)
}

// NewSliding creates a door that slides body by direction*scalar relative to origin
func NewSliding(w *engine.World, e core.Entity, body, origin *core.Transform, direction vmath.Vec3F, scalar float64, backend audio.Backend, cfg Config) *Door {
	if cfg.Accel <= 0 {
		cfg.Accel = parameter.DoorSlidingAccel
	}
	return New(w, e, NewTranslational(body, origin, direction, scalar), backend, cfg)
}

// Init applies the starting state; a door that starts open performs a regular open
func (d *Door) Init() {
	if d.started {
		return
	}
	d.started = true
	if d.cfg.StartsOpen {
		d.Use()
	}
}

// Use toggles the door; ignored while a transition is in progress
func (d *Door) Use() {
	d.statUses.Add(1)
	if !d.apply(InputUse) {
		d.statIgnored.Add(1)
		log.Printf("door %s: use ignored while %s", d.cfg.Name, d.state)
	}
}

// Update advances the motion by one tick
func (d *Door) Update(dt time.Duration) {
	if !d.state.Moving() {
		return
	}

	d.motion.Step(vmath.Clamp01(d.ease * d.cfg.Speed))
	if d.motion.Converged() {
		d.motion.Snap()
		d.ease = parameter.DoorEaseStart
		d.apply(InputArrived)
		return
	}
	d.ease += d.cfg.Accel * dt.Seconds()
}

// apply runs one transition and executes its effects, returns whether the input was accepted
func (d *Door) apply(in Input) bool {
	res := Transition(d.state, in, d.cfg.AutoCloseDelay)
	if !res.Accepted {
		return false
	}

	prev := d.state
	d.state = res.State
	if res.Direction != 0 {
		d.direction = res.Direction
		d.ease = parameter.DoorEaseStart
		d.motion.Begin(d.direction)
		d.sched.CancelKind(d.entity, engine.TaskAutoClose)
	}
	d.statTransitions.Add(1)
	log.Printf("door %s: %s -> %s on %s", d.cfg.Name, prev, d.state, in)

	for _, eff := range res.Effects {
		d.execute(eff)
	}
	return true
}

func (d *Door) execute(eff Effect) {
	switch eff {
	case EffectStartOpen:
		d.playSegment(d.cfg.Clips.Open)
		d.bus.Publish(event.EventStartOpen)
	case EffectStartClose:
		d.playSegment(d.cfg.Clips.Close)
		d.bus.Publish(event.EventStartClose)
	case EffectFullyOpened:
		d.playSegment(d.cfg.Clips.Stop)
		d.bus.Publish(event.EventFullyOpened)
	case EffectFullyClosed:
		d.playSegment(d.cfg.Clips.Stop)
		d.bus.Publish(event.EventFullyClosed)
	case EffectScheduleAutoClose:
		d.sched.After(d.entity, engine.TaskAutoClose, d.cfg.AutoCloseDelay, d.autoClose)
	}
}

// playSegment replaces the current sound with clip
// Without a clip the segment is silent and the move loop never starts
func (d *Door) playSegment(clip *audio.Clip) {
	d.cue.Stop()
	d.cue.Play(clip, false, d.segmentDone)
}

// segmentDone backfills the move loop when a start sound ends mid-transition
func (d *Door) segmentDone() {
	if d.state.Moving() && d.cfg.Clips.Move != nil {
		d.cue.Play(d.cfg.Clips.Move, true, nil)
	}
}

// autoClose only acts on a door still resting open
func (d *Door) autoClose() {
	if d.state != StateOpen {
		return
	}
	if d.apply(InputAutoClose) {
		d.statAutoClose.Add(1)
	}
}

func (d *Door) Entity() core.Entity { return d.entity }

func (d *Door) Name() string { return d.cfg.Name }

func (d *Door) State() State { return d.state }

// IsOpen reports whether the door rests fully open
func (d *Door) IsOpen() bool { return d.state == StateOpen }

// IsMoving reports whether a transition is in progress
func (d *Door) IsMoving() bool { return d.state.Moving() }

// Direction is +1 for the current or last opening and -1 for closing
func (d *Door) Direction() int { return d.direction }

// Bus exposes start/fully open/close notifications
func (d *Door) Bus() *event.Bus { return d.bus }

// Cue exposes the door's audio source
func (d *Door) Cue() *audio.Cue { return d.cue }

// Motion returns the strategy moving the door
func (d *Door) Motion() Motion { return d.motion }
