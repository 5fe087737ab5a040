package props

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/vmath"
)

// LightPreset selects the intensity function
type LightPreset uint8

const (
	LightNormal LightPreset = iota
	LightProbeSlow
	LightProbeFast
	LightFlicker
)

func (p LightPreset) String() string {
	switch p {
	case LightProbeSlow:
		return "ProbeSlow"
	case LightProbeFast:
		return "ProbeFast"
	case LightFlicker:
		return "Flicker"
	default:
		return "Normal"
	}
}

// LightConfig configures a Light
type LightConfig struct {
	Preset   LightPreset
	Min      float64
	Max      float64
	StartsOn bool
	Seed     uint64 // Flicker sequence seed
}

// Light drives an intensity value over time
type Light struct {
	base
	clock     *engine.VirtualClock
	cfg       LightConfig
	rng       *rand.Rand
	on        bool
	intensity float64
	nextFlick time.Duration
}

// NewLight creates a light source
func NewLight(w *engine.World, e core.Entity, cfg LightConfig) *Light {
	l := &Light{
		base:  newBase(w, e, nil, nil),
		clock: w.Clock,
		cfg:   cfg,
		rng:   rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
		on:    cfg.StartsOn,
	}
	if l.on {
		l.intensity = cfg.Max
	}
	return l
}

// TurnOn enables the light
func (l *Light) TurnOn() {
	if l.on {
		return
	}
	l.on = true
	l.nextFlick = 0
	l.refresh()
	l.bus.Publish(event.EventLightOn)
}

// TurnOff disables the light and zeroes its intensity
func (l *Light) TurnOff() {
	if !l.on {
		return
	}
	l.on = false
	l.intensity = 0
	l.bus.Publish(event.EventLightOff)
}

// Toggle flips the light
func (l *Light) Toggle() {
	if l.on {
		l.TurnOff()
	} else {
		l.TurnOn()
	}
}

// Use toggles the light
func (l *Light) Use() { l.Toggle() }

// Dim sets the maximum intensity, used by dimmers
func (l *Light) Dim(value float64) {
	l.cfg.Max = value
	if l.on {
		l.refresh()
	}
}

// Update recomputes intensity for the current simulation time
func (l *Light) Update(time.Duration) {
	if l.on {
		l.refresh()
	}
}

func (l *Light) refresh() {
	t := l.clock.Seconds()
	switch l.cfg.Preset {
	case LightNormal:
		l.intensity = l.cfg.Max
	case LightProbeSlow:
		l.intensity = l.probe(t * parameter.LightSlowProbeRate)
	case LightProbeFast:
		l.intensity = l.probe(t * parameter.LightFastProbeRate)
	case LightFlicker:
		now := l.clock.Now()
		if now >= l.nextFlick {
			l.nextFlick = now + parameter.LightFlickerInterval
			l.intensity = float64(l.rng.IntN(2)) * l.cfg.Max
		}
	}
}

func (l *Light) probe(t float64) float64 {
	return vmath.Clamp(math.Abs(math.Sin(t))*l.cfg.Max, l.cfg.Min, l.cfg.Max)
}

// IsOn reports whether the light is enabled
func (l *Light) IsOn() bool { return l.on }

// Intensity returns the current output
func (l *Light) Intensity() float64 { return l.intensity }

func (l *Light) Preset() LightPreset { return l.cfg.Preset }
