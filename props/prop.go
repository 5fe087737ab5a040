package props

import (
	"log"
	"time"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
	"github.com/herob4u/VRShowcase/parameter"
)

// PropConfig configures a Prop
type PropConfig struct {
	UseClip    *audio.Clip
	StartsOn   bool
	ReuseDelay time.Duration // <=0 uses parameter.PropReuseDelay
}

// Prop plays a one-shot animation and refuses further use until its cooldown ends
type Prop struct {
	base
	sched      *engine.Scheduler
	clip       *audio.Clip
	reuseDelay time.Duration
	inUse      bool
}

// NewProp creates a prop and sets the rig's starting pose
func NewProp(w *engine.World, e core.Entity, backend audio.Backend, animator anim.Animator, cfg PropConfig) *Prop {
	if cfg.ReuseDelay <= 0 {
		cfg.ReuseDelay = parameter.PropReuseDelay
	}
	p := &Prop{
		base:       newBase(w, e, backend, animator),
		sched:      w.Scheduler,
		clip:       cfg.UseClip,
		reuseDelay: cfg.ReuseDelay,
	}
	if animator != nil {
		animator.SetBool(anim.BoolStartsOn, cfg.StartsOn)
	}
	return p
}

// Use starts the prop's animation unless the cooldown is running
func (p *Prop) Use() {
	if p.inUse {
		log.Printf("prop %s: use ignored during cooldown", p.name)
		return
	}
	p.inUse = true

	anim.Pulse(p.animator, anim.TriggerUse)
	p.play(p.clip)
	p.bus.Publish(event.EventUseStarted)
	p.sched.After(p.entity, engine.TaskReuse, p.reuseDelay, p.endUse)
}

func (p *Prop) endUse() {
	p.inUse = false
	p.bus.Publish(event.EventUseEnded)
}

// InUse reports whether the cooldown is running
func (p *Prop) InUse() bool { return p.inUse }
