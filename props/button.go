package props

import (
	"log"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
)

// ButtonConfig configures a Button
type ButtonConfig struct {
	Click   *audio.Clip
	UseOnce bool // Disable after the first press
}

// Button is a stateless one-click trigger
type Button struct {
	base
	cfg     ButtonConfig
	enabled bool
}

// NewButton creates an enabled button
func NewButton(w *engine.World, e core.Entity, backend audio.Backend, animator anim.Animator, cfg ButtonConfig) *Button {
	return &Button{
		base:    newBase(w, e, backend, animator),
		cfg:     cfg,
		enabled: true,
	}
}

// Use presses the button
func (b *Button) Use() {
	b.press()
}

// press animates, clicks and publishes, returns false when disabled
func (b *Button) press() bool {
	if !b.enabled {
		log.Printf("button %s: press ignored, disabled", b.name)
		return false
	}
	if b.cfg.UseOnce {
		b.enabled = false
	}

	anim.Pulse(b.animator, anim.TriggerPress)
	b.play(b.cfg.Click)
	b.bus.Publish(event.EventButtonClick)
	return true
}

// Enabled reports whether the button accepts presses
func (b *Button) Enabled() bool { return b.enabled }

// SetEnabled re-arms or disables the button
func (b *Button) SetEnabled(v bool) { b.enabled = v }

// Forward makes every click use target
func (b *Button) Forward(target core.Usable) {
	b.bus.Subscribe(event.EventButtonClick, func(event.Event) { target.Use() })
}
