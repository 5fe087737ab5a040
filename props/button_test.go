package props

import (
	"slices"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/event"
)

const dt = 20 * time.Millisecond

func newEntity(t *testing.T, w *engine.World, name string) core.Entity {
	t.Helper()
	e, err := w.NewEntity(name)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func click() *audio.Clip {
	return audio.NewSilence("click", 50*time.Millisecond, beep.SampleRate(1000))
}

type counter struct{ uses int }

func (c *counter) Use() { c.uses++ }

func TestButtonPress(t *testing.T) {
	w := engine.NewWorld()
	rec := &audio.Recorder{}
	animator := anim.NewRecorder()
	b := NewButton(w, newEntity(t, w, "btn"), rec, animator, ButtonConfig{Click: click()})
	log := &event.Log{}
	b.Bus().SubscribeAll(log.Record)

	b.Use()
	b.Use()

	if n := log.Count(event.EventButtonClick); n != 2 {
		t.Errorf("clicks = %d, want 2", n)
	}
	if animator.Triggers[anim.TriggerPress] != 2 {
		t.Errorf("press triggers = %d", animator.Triggers[anim.TriggerPress])
	}
	if got := rec.Names(); !slices.Equal(got, []string{"click", "click"}) {
		t.Errorf("plays = %v", got)
	}
	if !rec.Plays[0].Stopped {
		t.Error("second click should supersede the first")
	}
}

func TestButtonUseOnce(t *testing.T) {
	w := engine.NewWorld()
	b := NewButton(w, newEntity(t, w, "btn"), nil, nil, ButtonConfig{UseOnce: true})
	target := &counter{}
	b.Forward(target)

	b.Use()
	b.Use()
	if target.uses != 1 {
		t.Fatalf("forwarded uses = %d, want 1", target.uses)
	}
	if b.Enabled() {
		t.Fatal("button should be disabled")
	}

	b.SetEnabled(true)
	b.Use()
	if target.uses != 2 {
		t.Fatalf("re-armed button did not forward")
	}
}

func TestToggleStateAndEvents(t *testing.T) {
	tests := []struct {
		name     string
		startsOn bool
		want     []event.EventType
	}{
		{"starts on", true, []event.EventType{
			event.EventButtonClick, event.EventToggledOff,
			event.EventButtonClick, event.EventToggledOn,
		}},
		{"starts off", false, []event.EventType{
			event.EventButtonClick, event.EventToggledOn,
			event.EventButtonClick, event.EventToggledOff,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := engine.NewWorld()
			animator := anim.NewRecorder()
			tg := NewToggle(w, newEntity(t, w, "tg"), nil, animator, ToggleConfig{StartsOn: tt.startsOn})
			if animator.Bools[anim.BoolIsOn] != tt.startsOn {
				t.Fatal("initial IsOn not published")
			}

			log := &event.Log{}
			var seen []bool
			tg.Bus().SubscribeAll(log.Record)
			tg.Bus().Subscribe(event.EventButtonClick, func(event.Event) { seen = append(seen, tg.IsOn()) })

			tg.Use()
			if tg.IsOn() == tt.startsOn {
				t.Fatal("state did not flip")
			}
			if animator.Bools[anim.BoolIsOn] != tg.IsOn() {
				t.Fatal("animator out of sync")
			}
			tg.Use()

			if got := log.Types(); !slices.Equal(got, tt.want) {
				t.Fatalf("events = %v, want %v", got, tt.want)
			}
			if !slices.Equal(seen, []bool{!tt.startsOn, tt.startsOn}) {
				t.Fatalf("click handlers saw %v", seen)
			}
		})
	}
}

func TestToggleForwardStates(t *testing.T) {
	w := engine.NewWorld()
	tg := NewToggle(w, newEntity(t, w, "tg"), nil, nil, ToggleConfig{})
	on, off := &counter{}, &counter{}
	tg.ForwardStates(on, off)

	tg.Use()
	tg.Use()
	tg.Use()
	if on.uses != 2 || off.uses != 1 {
		t.Fatalf("on=%d off=%d", on.uses, off.uses)
	}
}

type dimTarget struct{ values []float64 }

func (d *dimTarget) Dim(v float64) { d.values = append(d.values, v) }

func TestDimmerStepsAndClamps(t *testing.T) {
	w := engine.NewWorld()
	target := &dimTarget{}
	d := NewDimmer(w, newEntity(t, w, "dim"), nil, nil, DimmerConfig{Increment: 40}, target)

	if d.Mode() != DimDecrement {
		t.Fatalf("default mode = %s", d.Mode())
	}
	d.Use()
	d.Use()
	d.Use()
	if !slices.Equal(target.values, []float64{60, 20, 0}) {
		t.Fatalf("values = %v", target.values)
	}

	d.SetMode(DimIncrement)
	d.Use()
	d.Use()
	d.Use()
	if d.Value() != 100 {
		t.Fatalf("value = %v, want clamped 100", d.Value())
	}
	if d.Level() != 1 {
		t.Fatalf("level = %v", d.Level())
	}
}

func TestDimmerCustomRange(t *testing.T) {
	w := engine.NewWorld()
	d := NewDimmer(w, newEntity(t, w, "dim"), nil, nil, DimmerConfig{Min: 10, Max: 200, Increment: 95})
	d.Use()
	if d.Value() != 10 {
		t.Fatalf("value = %v, want 10", d.Value())
	}
	if d.Level() != 0.05 {
		t.Fatalf("level = %v", d.Level())
	}
}

func TestPropCooldown(t *testing.T) {
	w := engine.NewWorld()
	animator := anim.NewRecorder()
	p := NewProp(w, newEntity(t, w, "prop"), nil, animator, PropConfig{StartsOn: true})
	log := &event.Log{}
	p.Bus().SubscribeAll(log.Record)

	if !animator.Bools[anim.BoolStartsOn] {
		t.Fatal("StartsOn not published")
	}

	p.Use()
	p.Use()
	if !p.InUse() || log.Count(event.EventUseStarted) != 1 {
		t.Fatal("second use during cooldown should be ignored")
	}
	if animator.Triggers[anim.TriggerUse] != 1 {
		t.Fatalf("use triggers = %d", animator.Triggers[anim.TriggerUse])
	}

	w.RunFor(2*time.Second-dt, dt)
	if !p.InUse() {
		t.Fatal("cooldown ended early")
	}
	w.Tick(dt)
	if p.InUse() {
		t.Fatal("cooldown should end after 2s")
	}
	ended, ok := log.Last(event.EventUseEnded)
	if !ok || ended.Time != 2*time.Second {
		t.Fatalf("UseEnded = %+v ok=%v", ended, ok)
	}

	p.Use()
	if log.Count(event.EventUseStarted) != 2 {
		t.Fatal("prop should be reusable after cooldown")
	}
}
