package parameter

import "time"

// Simulation Loop
const (
	// TickInterval is the fixed simulation step (50 Hz, matches a physics update loop)
	TickInterval = 20 * time.Millisecond

	// FrameUpdateInterval is the terminal redraw interval (~30 FPS)
	FrameUpdateInterval = 33 * time.Millisecond

	// CommandQueueSize bounds cross-goroutine requests waiting for the tick goroutine
	CommandQueueSize = 64
)
