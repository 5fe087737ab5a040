package parameter

import "time"

// Prop Timing
const (
	// PropReuseDelay is the cooldown before a toggleable prop accepts another use
	PropReuseDelay = 2 * time.Second

	// LightFlickerInterval is the minimum time between flicker intensity changes
	LightFlickerInterval = 50 * time.Millisecond

	// LightFastProbeRate multiplies simulation time for the fast probe preset
	LightFastProbeRate = 2.0
)

// Dimmer
const (
	DimmerStartValue = 100.0
	DimmerMin        = 0.0
	DimmerMax        = 100.0
)

// Dimmer step used when a scene omits the increment
const DimmerIncrement = 10.0

// Rotator defaults for scenes, degrees per second and degrees per second squared
const (
	RotatorSpeed = 90.0
	RotatorAccel = 45.0
)

// LightSlowProbeRate multiplies simulation time for the slow probe preset
const LightSlowProbeRate = 1.0
