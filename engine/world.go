package engine

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/status"
)

// Ticker is implemented by entities that advance on the fixed simulation step
type Ticker interface {
	Update(dt time.Duration)
}

// ErrDuplicateEntity is returned when a name is registered twice
var ErrDuplicateEntity = errors.New("duplicate entity name")

// World owns the simulation clock, the deferred task queue and the entity registry
//
// Tick order:
//  1. Advance VirtualClock by dt
//  2. Run scheduler tasks whose due time has elapsed
//  3. Update tickers in registration order
//
// All mutation happens on the goroutine calling Tick; no locking is required inside
type World struct {
	Clock     *VirtualClock
	Scheduler *Scheduler
	Status    *status.Registry

	nextEntity core.Entity
	order      []core.Entity
	names      map[string]core.Entity
	labels     map[core.Entity]string
	objects    map[core.Entity]any
	usables    map[core.Entity]core.Usable
	tickers    map[core.Entity]Ticker

	statTicks *atomic.Int64
	statUses  *atomic.Int64
	statTasks *atomic.Int64
	statTime  *status.AtomicFloat
}

// NewWorld creates an empty world at simulated time zero
func NewWorld() *World {
	clock := NewVirtualClock()
	reg := status.NewRegistry()
	return &World{
		Clock:      clock,
		Scheduler:  NewScheduler(clock),
		Status:     reg,
		nextEntity: 1,
		names:      make(map[string]core.Entity),
		labels:     make(map[core.Entity]string),
		objects:    make(map[core.Entity]any),
		usables:    make(map[core.Entity]core.Usable),
		tickers:    make(map[core.Entity]Ticker),
		statTicks:  reg.Ints.Get("engine.ticks"),
		statUses:   reg.Ints.Get("engine.uses"),
		statTasks:  reg.Ints.Get("engine.tasks"),
		statTime:   reg.Floats.Get("engine.time"),
	}
}

// NewEntity allocates an id for a named entity
func (w *World) NewEntity(name string) (core.Entity, error) {
	if _, exists := w.names[name]; exists {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateEntity, name)
	}
	e := w.nextEntity
	w.nextEntity++
	w.names[name] = e
	w.labels[e] = name
	w.order = append(w.order, e)
	return e, nil
}

// Attach binds the behaviour object of an entity
// Objects implementing core.Usable receive Use calls; objects implementing Ticker are updated every tick
func (w *World) Attach(e core.Entity, obj any) {
	w.objects[e] = obj
	if u, ok := obj.(core.Usable); ok {
		w.usables[e] = u
	}
	if t, ok := obj.(Ticker); ok {
		w.tickers[e] = t
	}
}

// Lookup resolves an entity by name
func (w *World) Lookup(name string) (core.Entity, bool) {
	e, ok := w.names[name]
	return e, ok
}

// Name returns the registered name of e
func (w *World) Name(e core.Entity) string {
	return w.labels[e]
}

// Object returns the attached behaviour object of e
func (w *World) Object(e core.Entity) (any, bool) {
	obj, ok := w.objects[e]
	return obj, ok
}

// Entities returns all entities in registration order
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, len(w.order))
	copy(out, w.order)
	return out
}

// Use delivers the use stimulus to e, returns false if e is not usable
func (w *World) Use(e core.Entity) bool {
	u, ok := w.usables[e]
	if !ok {
		return false
	}
	w.statUses.Add(1)
	u.Use()
	return true
}

// UseByName delivers the use stimulus to a named entity
func (w *World) UseByName(name string) bool {
	e, ok := w.names[name]
	if !ok {
		return false
	}
	return w.Use(e)
}

// Tick advances the simulation by one fixed step
func (w *World) Tick(dt time.Duration) {
	w.Clock.Advance(dt)
	ran := w.Scheduler.RunDue()
	w.statTasks.Add(int64(ran))

	for _, e := range w.order {
		if t, ok := w.tickers[e]; ok {
			t.Update(dt)
		}
	}

	w.statTicks.Add(1)
	w.statTime.Set(w.Clock.Seconds())
}

// RunFor ticks repeatedly until total simulated time has elapsed
func (w *World) RunFor(total, dt time.Duration) {
	if dt <= 0 {
		return
	}
	for elapsed := time.Duration(0); elapsed < total; elapsed += dt {
		w.Tick(dt)
	}
}

// RunUntil ticks until cond holds or limit simulated time has elapsed, returns whether cond held
func (w *World) RunUntil(cond func() bool, limit, dt time.Duration) bool {
	if dt <= 0 {
		return cond()
	}
	for elapsed := time.Duration(0); elapsed < limit; elapsed += dt {
		if cond() {
			return true
		}
		w.Tick(dt)
	}
	return cond()
}
