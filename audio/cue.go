package audio

import (
	"sync/atomic"

	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/status"
)

// Cue is a single audio source attached to an entity
// Playing a new clip supersedes the current one and cancels its completion callback
type Cue struct {
	entity  core.Entity
	backend Backend
	sched   *engine.Scheduler

	voice Voice
	clip  *Clip
	loop  bool
	done  engine.TaskID

	statPlays *atomic.Int64
}

// NewCue binds a source to entity; a nil backend plays nothing but still reports completion
func NewCue(entity core.Entity, backend Backend, sched *engine.Scheduler, reg *status.Registry) *Cue {
	c := &Cue{
		entity:  entity,
		backend: backend,
		sched:   sched,
	}
	if reg != nil {
		c.statPlays = reg.Ints.Get("audio.plays")
	}
	return c
}

// Play starts clip, stopping whatever was playing
// onDone runs on the simulation clock after Length when loop is false
// A nil clip is silent: nothing plays, nothing completes, and false is returned
func (c *Cue) Play(clip *Clip, loop bool, onDone func()) bool {
	if clip == nil {
		return false
	}
	c.Stop()

	c.clip = clip
	c.loop = loop
	if c.backend != nil {
		c.voice = c.backend.Play(clip, loop)
	}
	if !loop && c.sched != nil {
		c.done = c.sched.After(c.entity, engine.TaskCueDone, clip.Length(), func() {
			c.done = 0
			c.voice = nil
			c.clip = nil
			if onDone != nil {
				onDone()
			}
		})
	}
	if c.statPlays != nil {
		c.statPlays.Add(1)
	}
	return true
}

// Stop halts playback and drops any pending completion
func (c *Cue) Stop() {
	if c.done != 0 {
		c.sched.Cancel(c.done)
		c.done = 0
	}
	if c.voice != nil {
		c.voice.Stop()
		c.voice = nil
	}
	c.clip = nil
	c.loop = false
}

// Current returns the clip playing now, or nil
func (c *Cue) Current() *Clip {
	return c.clip
}

// Looping reports whether the current clip repeats
func (c *Cue) Looping() bool {
	return c.clip != nil && c.loop
}

// Playing reports whether any clip is active
func (c *Cue) Playing() bool {
	return c.clip != nil
}
