// Package props implements the lesser scene usables: buttons, toggles, dimmers, cooldown props,
// rotators, lights and push triggers
//
// Every prop owns an audio cue and a notification bus, and publishes after its own state changes
package props

import (
	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
)

// base carries the parts shared by every prop
type base struct {
	entity   core.Entity
	name     string
	cue      *audio.Cue
	bus      *event.Bus
	animator anim.Animator
}

func newBase(w *engine.World, e core.Entity, backend audio.Backend, animator anim.Animator) base {
	return base{
		entity:   e,
		name:     w.Name(e),
		cue:      audio.NewCue(e, backend, w.Scheduler, w.Status),
		bus:      event.NewBus(e, w.Clock),
		animator: animator,
	}
}

func (b *base) Entity() core.Entity { return b.entity }

func (b *base) Name() string { return b.name }

// Bus exposes the prop's notifications
func (b *base) Bus() *event.Bus { return b.bus }

// Cue exposes the prop's audio source
func (b *base) Cue() *audio.Cue { return b.cue }

// play restarts the cue with a one-shot clip; nil is silence
func (b *base) play(clip *audio.Clip) {
	b.cue.Stop()
	b.cue.Play(clip, false, nil)
}
