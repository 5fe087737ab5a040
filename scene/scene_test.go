package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/door"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/props"
	"github.com/herob4u/VRShowcase/vmath"
)

const dt = 20 * time.Millisecond

func buildDemo(t *testing.T) (*Scene, *audio.Recorder) {
	t.Helper()
	rec := &audio.Recorder{}
	s, err := Build(Demo(), Options{Backend: rec, SampleRate: beep.SampleRate(8000)})
	if err != nil {
		t.Fatal(err)
	}
	return s, rec
}

func object[T any](t *testing.T, s *Scene, name string) T {
	t.Helper()
	e, ok := s.World.Lookup(name)
	if !ok {
		t.Fatalf("no entity %q", name)
	}
	obj, _ := s.World.Object(e)
	v, ok := obj.(T)
	if !ok {
		t.Fatalf("%q is %T", name, obj)
	}
	return v
}

func TestDemoBuilds(t *testing.T) {
	s, _ := buildDemo(t)
	if s.Name != "showcase" {
		t.Errorf("name = %q", s.Name)
	}
	if len(s.Doors) != 2 {
		t.Errorf("doors = %d, want 2", len(s.Doors))
	}
	if got := len(s.Rows()); got != len(Demo().Entities) {
		t.Errorf("rows = %d", got)
	}
	if c := s.Clips["click"]; c == nil || c.Length() != 60*time.Millisecond {
		t.Errorf("click clip = %v", c)
	}
}

func TestDemoDoorbellOpensDoor(t *testing.T) {
	s, rec := buildDemo(t)
	d := object[*door.Door](t, s, "front-door")

	if !s.World.UseByName("doorbell") {
		t.Fatal("doorbell not usable")
	}
	if d.State() != door.StateOpening {
		t.Fatalf("door state = %s", d.State())
	}
	names := rec.Names()
	if len(names) != 2 || names[0] != "click" || names[1] != "door-open" {
		t.Fatalf("plays = %v", names)
	}

	if !s.World.RunUntil(d.IsOpen, 10*time.Second, dt) {
		t.Fatal("door never opened")
	}
	if !s.World.RunUntil(func() bool { return d.State() == door.StateClosed }, 10*time.Second, dt) {
		t.Fatal("auto-close never finished")
	}
}

func TestDemoLightControls(t *testing.T) {
	s, _ := buildDemo(t)
	lamp := object[*props.Light](t, s, "ceiling-lamp")
	s.World.Tick(dt)
	if !lamp.IsOn() || lamp.Intensity() != 100 {
		t.Fatalf("lamp on=%v intensity=%v", lamp.IsOn(), lamp.Intensity())
	}

	s.World.UseByName("lamp-dimmer")
	if lamp.Intensity() != 75 {
		t.Fatalf("dimmed intensity = %v", lamp.Intensity())
	}

	s.World.UseByName("lamp-switch")
	if lamp.IsOn() {
		t.Fatal("switch should turn the lamp off")
	}
	sw := object[*props.Toggle](t, s, "lamp-switch")
	if sw.IsOn() {
		t.Fatal("switch starts on and flips off")
	}
}

func TestDemoConveyorPushesCrate(t *testing.T) {
	s, _ := buildDemo(t)
	crate := object[*props.RigidBody](t, s, "crate")
	start := crate.Transform.Position

	s.World.RunFor(time.Second, dt)
	moved := vmath.V3FSub(crate.Transform.Position, start)
	if d := vmath.V3FDist(moved, vmath.Vec3F{Z: 0.5}); d > 1e-9 {
		t.Fatalf("crate moved %v, want (0,0,0.5)", moved)
	}
}

func TestBuildAnimatorHook(t *testing.T) {
	rigs := map[string]*anim.Recorder{}
	s, err := Build(Demo(), Options{
		SampleRate: beep.SampleRate(8000),
		Animator: func(name string) anim.Animator {
			r := anim.NewRecorder()
			rigs[name] = r
			return r
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	s.World.UseByName("music-box")
	if rigs["music-box"].Triggers[anim.TriggerUse] != 1 {
		t.Fatal("prop rig did not receive Use")
	}
	if !rigs["lamp-switch"].Bools[anim.BoolIsOn] {
		t.Fatal("toggle rig missing starting IsOn")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{
			name: "unknown kind",
			doc:  "entities:\n  - {name: a, kind: portal}\n",
			want: ErrUnknownKind,
		},
		{
			name: "unknown clip",
			doc:  "entities:\n  - {name: b, kind: button, click: bang}\n",
			want: ErrUnknownClip,
		},
		{
			name: "unknown target",
			doc:  "entities:\n  - {name: b, kind: button, targets: [ghost]}\n",
			want: ErrUnknownTarget,
		},
		{
			name: "target not usable",
			doc:  "entities:\n  - {name: c, kind: body}\n  - {name: b, kind: button, targets: [c]}\n",
			want: ErrUnknownTarget,
		},
		{
			name: "dimmer target not dimmable",
			doc:  "entities:\n  - {name: b, kind: button}\n  - {name: d, kind: dimmer, targets: [b]}\n",
			want: ErrUnknownTarget,
		},
		{
			name: "unknown origin",
			doc:  "entities:\n  - {name: s, kind: door.sliding, origin: nowhere}\n",
			want: ErrUnknownTarget,
		},
		{
			name: "duplicate",
			doc:  "entities:\n  - {name: a, kind: button}\n  - {name: a, kind: light}\n",
			want: ErrDuplicateName,
		},
		{
			name: "ambiguous clip",
			doc:  "clips:\n  x: {tone: 440, silence: true}\n",
			want: ErrInvalidClip,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse([]byte(tt.doc))
			if err == nil {
				_, err = Build(f, Options{SampleRate: beep.SampleRate(8000)})
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field": "entities:\n  - {name: a, kind: button, colour: red}\n",
		"short vector":  "entities:\n  - {name: a, kind: body, position: [1, 2]}\n",
		"missing name":  "entities:\n  - {kind: button}\n",
		"bad duration":  "entities:\n  - {name: a, kind: prop, reuse: later}\n",
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(doc)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestLoadResolvesRelativeClip(t *testing.T) {
	dir := t.TempDir()
	doc := strings.Join([]string{
		"clips:",
		"  knock: {file: missing.wav}",
		"entities:",
		"  - {name: b, kind: button, click: knock}",
	}, "\n")
	path := filepath.Join(dir, "room.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Build(f, Options{BaseDir: dir, SampleRate: beep.SampleRate(8000)})
	if err == nil || !strings.Contains(err.Error(), "knock") {
		t.Fatalf("err = %v, want missing clip file error", err)
	}
}

func TestSlidingDoorFromScene(t *testing.T) {
	doc := strings.Join([]string{
		"entities:",
		"  - {name: anchor, kind: body, position: [0, 0, 10]}",
		"  - {name: s, kind: door.sliding, direction: [0, 1, 0], distance: 2, origin: anchor, starts_open: true}",
	}, "\n")
	f, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Build(f, Options{SampleRate: beep.SampleRate(8000)})
	if err != nil {
		t.Fatal(err)
	}
	d := object[*door.Door](t, s, "s")
	if d.State() != door.StateOpening {
		t.Fatalf("starts_open door state = %s", d.State())
	}
	if !s.World.RunUntil(d.IsOpen, 5*time.Second, dt) {
		t.Fatal("never opened")
	}
	if got := s.Transforms["s"].Position; got != (vmath.Vec3F{Y: 2, Z: 10}) {
		t.Fatalf("position = %v", got)
	}
}

func TestRotatorDefaultAccel(t *testing.T) {
	f, err := Parse([]byte("entities:\n  - {name: spin, kind: rotator, speed: 90}\n"))
	if err != nil {
		t.Fatal(err)
	}
	s, err := Build(f, Options{SampleRate: beep.SampleRate(8000)})
	if err != nil {
		t.Fatal(err)
	}
	r := object[*props.Rotator](t, s, "spin")
	r.Use()
	s.World.Tick(dt)
	if got, want := r.Speed(), parameter.RotatorAccel*dt.Seconds(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("speed after one tick = %v, want %v", got, want)
	}
	s.World.RunFor(3*time.Second, dt)
	if r.Speed() != 90 {
		t.Fatalf("speed = %v, want 90", r.Speed())
	}
}
