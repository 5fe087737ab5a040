package engine

import (
	"reflect"
	"testing"
	"time"

	"github.com/herob4u/VRShowcase/core"
)

func TestSchedulerRunsInDueOrder(t *testing.T) {
	clock := NewVirtualClock()
	s := NewScheduler(clock)

	var order []string
	s.After(1, TaskCueDone, 30*time.Millisecond, func() { order = append(order, "c") })
	s.After(2, TaskCueDone, 10*time.Millisecond, func() { order = append(order, "a") })
	s.After(3, TaskCueDone, 10*time.Millisecond, func() { order = append(order, "b") })

	clock.Advance(5 * time.Millisecond)
	if ran := s.RunDue(); ran != 0 {
		t.Fatalf("ran %d tasks before due", ran)
	}

	clock.Advance(25 * time.Millisecond)
	if ran := s.RunDue(); ran != 3 {
		t.Fatalf("ran %d tasks, want 3", ran)
	}

	// Equal due times run in scheduling order
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after drain", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewVirtualClock()
	s := NewScheduler(clock)

	fired := false
	id := s.After(1, TaskAutoClose, time.Second, func() { fired = true })

	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for live task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}

	clock.Advance(2 * time.Second)
	s.RunDue()
	if fired {
		t.Error("cancelled task fired")
	}
	if _, ok := s.NextDue(); ok {
		t.Error("NextDue reports a cancelled task")
	}
}

func TestSchedulerCancelKindIsScopedToEntityAndKind(t *testing.T) {
	clock := NewVirtualClock()
	s := NewScheduler(clock)
	var e1, e2 core.Entity = 1, 2

	s.After(e1, TaskAutoClose, time.Second, func() {})
	s.After(e1, TaskAutoClose, 2*time.Second, func() {})
	s.After(e1, TaskCueDone, time.Second, func() {})
	s.After(e2, TaskAutoClose, time.Second, func() {})

	if n := s.CancelKind(e1, TaskAutoClose); n != 2 {
		t.Errorf("CancelKind dropped %d, want 2", n)
	}
	if n := s.Pending(e1, TaskCueDone); n != 1 {
		t.Errorf("e1 CueDone pending = %d, want 1", n)
	}
	if n := s.Pending(e2, TaskAutoClose); n != 1 {
		t.Errorf("e2 AutoClose pending = %d, want 1", n)
	}
}

func TestSchedulerDefersTasksScheduledDuringDrain(t *testing.T) {
	clock := NewVirtualClock()
	s := NewScheduler(clock)

	inner := false
	s.After(1, TaskCueDone, 0, func() {
		s.After(1, TaskCueDone, 0, func() { inner = true })
	})

	if ran := s.RunDue(); ran != 1 {
		t.Fatalf("first drain ran %d, want 1", ran)
	}
	if inner {
		t.Fatal("task scheduled during drain ran in the same drain")
	}
	if ran := s.RunDue(); ran != 1 || !inner {
		t.Errorf("second drain ran %d, inner=%v", ran, inner)
	}
}

func TestSchedulerNegativeDelay(t *testing.T) {
	clock := NewVirtualClock()
	clock.Advance(time.Second)
	s := NewScheduler(clock)

	s.After(1, TaskReuse, -time.Hour, func() {})
	due, ok := s.NextDue()
	if !ok || due != time.Second {
		t.Errorf("NextDue = %v,%v want 1s,true", due, ok)
	}
}

func TestTaskKindString(t *testing.T) {
	tests := map[TaskKind]string{
		TaskNone:      "None",
		TaskAutoClose: "AutoClose",
		TaskCueDone:   "CueDone",
		TaskReuse:     "Reuse",
		TaskKind(99):  "None",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", k, got, want)
		}
	}
}
