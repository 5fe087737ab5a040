package engine

import (
	"sync"
	"time"
)

// VirtualClock is the monotonic simulation clock
// Only the tick goroutine advances it; readers may sample it concurrently
type VirtualClock struct {
	mu      sync.RWMutex
	elapsed time.Duration
}

// NewVirtualClock creates a clock at simulated time zero
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{}
}

// Now returns simulated time since start
func (c *VirtualClock) Now() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.elapsed
}

// Advance moves simulated time forward, negative durations are ignored
func (c *VirtualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.elapsed += d
}

// Seconds returns simulated time as float seconds for periodic functions
func (c *VirtualClock) Seconds() float64 {
	return c.Now().Seconds()
}
