package engine

import (
	"time"

	"github.com/zyedidia/generic/heap"

	"github.com/herob4u/VRShowcase/core"
)

// TaskKind classifies deferred work so an entity can cancel one kind without touching others
type TaskKind uint8

const (
	TaskNone      TaskKind = iota
	TaskAutoClose          // Door returns to closed after resting open
	TaskCueDone            // Non-looping audio clip reached its nominal length
	TaskReuse              // Prop cooldown elapsed
)

func (k TaskKind) String() string {
	switch k {
	case TaskAutoClose:
		return "AutoClose"
	case TaskCueDone:
		return "CueDone"
	case TaskReuse:
		return "Reuse"
	default:
		return "None"
	}
}

// TaskID identifies a scheduled task; IDs increase monotonically and break due-time ties
type TaskID uint64

type task struct {
	id     TaskID
	entity core.Entity
	kind   TaskKind
	due    time.Duration
	fn     func()
}

// Scheduler is a min-heap of deferred callbacks keyed by entity and kind, ordered by due time on the VirtualClock
// Not safe for concurrent use; owned by the tick goroutine
type Scheduler struct {
	clock  *VirtualClock
	queue  *heap.Heap[*task]
	live   map[TaskID]*task
	nextID TaskID
}

// NewScheduler creates a scheduler reading due times from clock
func NewScheduler(clock *VirtualClock) *Scheduler {
	return &Scheduler{
		clock: clock,
		queue: heap.New(func(a, b *task) bool {
			if a.due != b.due {
				return a.due < b.due
			}
			return a.id < b.id
		}),
		live:   make(map[TaskID]*task),
		nextID: 1,
	}
}

// After schedules fn to run once d has elapsed on the clock
// Negative delays are treated as zero; the task runs on the next drain at the earliest
func (s *Scheduler) After(e core.Entity, kind TaskKind, d time.Duration, fn func()) TaskID {
	if d < 0 {
		d = 0
	}
	t := &task{
		id:     s.nextID,
		entity: e,
		kind:   kind,
		due:    s.clock.Now() + d,
		fn:     fn,
	}
	s.nextID++
	s.live[t.id] = t
	s.queue.Push(t)
	return t.id
}

// Cancel drops a pending task, returns false if it already ran or was cancelled
func (s *Scheduler) Cancel(id TaskID) bool {
	if _, ok := s.live[id]; !ok {
		return false
	}
	delete(s.live, id)
	return true
}

// CancelKind drops every pending task of kind for entity and returns how many were dropped
func (s *Scheduler) CancelKind(e core.Entity, kind TaskKind) int {
	n := 0
	for id, t := range s.live {
		if t.entity == e && t.kind == kind {
			delete(s.live, id)
			n++
		}
	}
	return n
}

// Pending counts live tasks of kind for entity
func (s *Scheduler) Pending(e core.Entity, kind TaskKind) int {
	n := 0
	for _, t := range s.live {
		if t.entity == e && t.kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of live tasks
func (s *Scheduler) Len() int {
	return len(s.live)
}

// NextDue returns the due time of the earliest live task
func (s *Scheduler) NextDue() (time.Duration, bool) {
	s.dropCancelled()
	t, ok := s.queue.Peek()
	if !ok {
		return 0, false
	}
	return t.due, true
}

// RunDue runs every live task whose due time has elapsed, in (due, id) order
// Tasks scheduled by a running task wait for the next drain even when already due
func (s *Scheduler) RunDue() int {
	now := s.clock.Now()
	limit := s.nextID
	ran := 0

	for {
		s.dropCancelled()
		t, ok := s.queue.Peek()
		if !ok || t.due > now || t.id >= limit {
			return ran
		}
		s.queue.Pop()
		delete(s.live, t.id)
		t.fn()
		ran++
	}
}

// dropCancelled pops cancelled tasks off the top of the heap
func (s *Scheduler) dropCancelled() {
	for {
		t, ok := s.queue.Peek()
		if !ok {
			return
		}
		if _, live := s.live[t.id]; live {
			return
		}
		s.queue.Pop()
	}
}
