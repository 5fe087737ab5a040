package props

import (
	"log"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
)

// ToggleConfig configures a Toggle
type ToggleConfig struct {
	ButtonConfig
	StartsOn bool
}

// Toggle is a button that remembers an on/off state
type Toggle struct {
	*Button
	isOn bool
}

// NewToggle creates a toggle and publishes its starting state to the animator
func NewToggle(w *engine.World, e core.Entity, backend audio.Backend, animator anim.Animator, cfg ToggleConfig) *Toggle {
	t := &Toggle{
		Button: NewButton(w, e, backend, animator, cfg.ButtonConfig),
		isOn:   cfg.StartsOn,
	}
	if animator != nil {
		animator.SetBool(anim.BoolIsOn, t.isOn)
	}
	return t
}

// Use flips the state, then publishes click followed by the event for the new state
func (t *Toggle) Use() {
	if !t.enabled {
		log.Printf("toggle %s: use ignored, disabled", t.name)
		return
	}
	t.isOn = !t.isOn
	if t.animator != nil {
		t.animator.SetBool(anim.BoolIsOn, t.isOn)
	}
	t.press()

	if t.isOn {
		t.bus.Publish(event.EventToggledOn)
	} else {
		t.bus.Publish(event.EventToggledOff)
	}
}

// IsOn reports the current state
func (t *Toggle) IsOn() bool { return t.isOn }

// ForwardStates routes on and off to separate targets; either may be nil
func (t *Toggle) ForwardStates(on, off core.Usable) {
	if on != nil {
		t.bus.Subscribe(event.EventToggledOn, func(event.Event) { on.Use() })
	}
	if off != nil {
		t.bus.Subscribe(event.EventToggledOff, func(event.Event) { off.Use() })
	}
}
