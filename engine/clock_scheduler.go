package engine

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/herob4u/VRShowcase/parameter"
)

// ClockScheduler drives World.Tick on a real-time fixed interval
// Requests from other goroutines (input, scripts) are posted as commands and executed on the tick goroutine
// before the world advances, keeping the world single-threaded
type ClockScheduler struct {
	world    *World
	interval time.Duration
	commands chan func(*World)

	// mu serializes the tick against View readers (renderer)
	mu sync.Mutex

	paused    atomic.Bool
	tickCount atomic.Uint64
}

// NewClockScheduler creates a scheduler for world, non-positive interval selects parameter.TickInterval
func NewClockScheduler(world *World, interval time.Duration) *ClockScheduler {
	if interval <= 0 {
		interval = parameter.TickInterval
	}
	return &ClockScheduler{
		world:    world,
		interval: interval,
		commands: make(chan func(*World), parameter.CommandQueueSize),
	}
}

// Post queues fn for the next tick, returns false if the queue is full
func (cs *ClockScheduler) Post(fn func(*World)) bool {
	select {
	case cs.commands <- fn:
		return true
	default:
		return false
	}
}

// View runs fn with exclusive access to the world between ticks
func (cs *ClockScheduler) View(fn func(*World)) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	fn(cs.world)
}

// TogglePause flips pause state and returns true if now paused
func (cs *ClockScheduler) TogglePause() bool {
	for {
		old := cs.paused.Load()
		if cs.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// IsPaused returns current pause state
func (cs *ClockScheduler) IsPaused() bool {
	return cs.paused.Load()
}

// TickCount returns ticks executed since Run started
func (cs *ClockScheduler) TickCount() uint64 {
	return cs.tickCount.Load()
}

// Run ticks until ctx is cancelled
// Paused ticks still drain commands but do not advance simulated time
func (cs *ClockScheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(cs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			cs.processTick()
		}
	}
}

// processTick executes one clock cycle
func (cs *ClockScheduler) processTick() {
	cs.mu.Lock()
	defer cs.mu.Unlock()

drain:
	for {
		select {
		case fn := <-cs.commands:
			fn(cs.world)
		default:
			break drain
		}
	}

	if cs.paused.Load() {
		return
	}
	cs.world.Tick(cs.interval)
	cs.tickCount.Add(1)
}
