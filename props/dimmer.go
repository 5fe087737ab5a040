package props

import (
	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// DimMode is the sign applied to the dimmer increment
type DimMode int

const (
	DimIncrement DimMode = 1
	DimDecrement DimMode = -1
)

func (m DimMode) String() string {
	if m == DimIncrement {
		return "Increment"
	}
	return "Decrement"
}

// Dimmable receives absolute intensity values
type Dimmable interface {
	Dim(value float64)
}

// DimmerConfig configures a Dimmer
// Zero Min and Max select the 0..100 default range; zero Increment uses parameter.DimmerIncrement
type DimmerConfig struct {
	ButtonConfig
	Min       float64
	Max       float64
	Increment float64
	Mode      DimMode // Zero selects DimDecrement
}

// Dimmer is a button stepping an intensity value and pushing it to linked lights
type Dimmer struct {
	*Button
	value     float64
	min, max  float64
	increment float64
	mode      DimMode
	targets   []Dimmable
}

// NewDimmer creates a dimmer starting at parameter.DimmerStartValue
func NewDimmer(w *engine.World, e core.Entity, backend audio.Backend, animator anim.Animator, cfg DimmerConfig, targets ...Dimmable) *Dimmer {
	if cfg.Min == 0 && cfg.Max == 0 {
		cfg.Min, cfg.Max = parameter.DimmerMin, parameter.DimmerMax
	}
	if cfg.Increment == 0 {
		cfg.Increment = parameter.DimmerIncrement
	}
	if cfg.Mode == 0 {
		cfg.Mode = DimDecrement
	}
	return &Dimmer{
		Button:    NewButton(w, e, backend, animator, cfg.ButtonConfig),
		value:     parameter.DimmerStartValue,
		min:       cfg.Min,
		max:       cfg.Max,
		increment: cfg.Increment,
		mode:      cfg.Mode,
		targets:   targets,
	}
}

// Use clicks, steps the value within [min,max] and applies it
func (d *Dimmer) Use() {
	if !d.press() {
		return
	}
	d.value = vmath.Clamp(d.value+d.increment*float64(d.mode), d.min, d.max)
	for _, t := range d.targets {
		t.Dim(d.value)
	}
}

// Link adds a light to receive future values
func (d *Dimmer) Link(t Dimmable) {
	d.targets = append(d.targets, t)
}

// SetMode selects whether the next press raises or lowers the value
func (d *Dimmer) SetMode(m DimMode) {
	if m != DimIncrement {
		m = DimDecrement
	}
	d.mode = m
}

func (d *Dimmer) Mode() DimMode { return d.mode }

// Value returns the raw intensity
func (d *Dimmer) Value() float64 { return d.value }

// Level returns value as a fraction of max
func (d *Dimmer) Level() float64 {
	if d.max == 0 {
		return 0
	}
	return d.value / d.max
}
