package scene

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep"

	"github.com/herob4u/VRShowcase/anim"
	"github.com/herob4u/VRShowcase/audio"
	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/door"
	"github.com/herob4u/VRShowcase/engine"
	"github.com/herob4u/VRShowcase/parameter"
	"github.com/herob4u/VRShowcase/props"
)

// Options control how a scene is instantiated
type Options struct {
	Backend    audio.Backend // Nil builds a silent scene
	SampleRate beep.SampleRate
	BaseDir    string // Resolves relative clip files

	// Animator returns the rig for a named entity, nil means no rig
	Animator func(name string) anim.Animator
}

// Scene is a built world with typed access to its objects
type Scene struct {
	Name       string
	World      *engine.World
	Clips      map[string]*audio.Clip
	Transforms map[string]*core.Transform
	Doors      []*door.Door
}

type builder struct {
	file  *File
	opts  Options
	scene *Scene
}

// Build creates every entity, resolves references and initializes doors
func Build(f *File, opts Options) (*Scene, error) {
	if opts.SampleRate == 0 {
		opts.SampleRate = parameter.AudioSampleRate
	}
	b := &builder{
		file: f,
		opts: opts,
		scene: &Scene{
			Name:       f.Name,
			World:      engine.NewWorld(),
			Clips:      make(map[string]*audio.Clip, len(f.Clips)),
			Transforms: make(map[string]*core.Transform, len(f.Entities)),
		},
	}

	if err := b.loadClips(); err != nil {
		return nil, err
	}

	// Transforms first so any entity can reference another's placement
	for _, spec := range f.Entities {
		b.scene.Transforms[spec.Name] = core.NewTransform(spec.Position.F(), spec.Rotation.F())
	}
	for _, spec := range f.Entities {
		if err := b.create(spec); err != nil {
			return nil, fmt.Errorf("entity %q: %w", spec.Name, err)
		}
	}
	for _, spec := range f.Entities {
		if err := b.link(spec); err != nil {
			return nil, fmt.Errorf("entity %q: %w", spec.Name, err)
		}
	}

	for _, d := range b.scene.Doors {
		d.Init()
	}
	log.Printf("scene %s: %d entities, %d clips", f.Name, len(f.Entities), len(b.scene.Clips))
	return b.scene, nil
}

func (b *builder) loadClips() error {
	sr := b.opts.SampleRate
	for name, spec := range b.file.Clips {
		var (
			clip *audio.Clip
			err  error
		)
		switch {
		case spec.Tone != 0:
			clip, err = audio.NewTone(name, spec.Tone, spec.Length, sr)
		case spec.Silence:
			length := spec.Length
			if length <= 0 {
				length = parameter.DefaultToneLength
			}
			clip = audio.NewSilence(name, length, sr)
		default:
			path := spec.File
			if !filepath.IsAbs(path) && b.opts.BaseDir != "" {
				path = filepath.Join(b.opts.BaseDir, path)
			}
			clip, err = audio.LoadWAV(name, path, sr)
		}
		if err != nil {
			return err
		}
		b.scene.Clips[name] = clip
	}
	return nil
}

// clip resolves an optional clip reference
func (b *builder) clip(name string) (*audio.Clip, error) {
	if name == "" {
		return nil, nil
	}
	c, ok := b.scene.Clips[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownClip, name)
	}
	return c, nil
}

// clips resolves several references, stopping at the first failure
func (b *builder) clips(names ...string) ([]*audio.Clip, error) {
	out := make([]*audio.Clip, len(names))
	for i, n := range names {
		c, err := b.clip(n)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}
	return out, nil
}

func (b *builder) animator(name string) anim.Animator {
	if b.opts.Animator == nil {
		return nil
	}
	return b.opts.Animator(name)
}

func (b *builder) create(spec EntitySpec) error {
	w := b.scene.World
	e, err := w.NewEntity(spec.Name)
	if err != nil {
		return err
	}
	tr := b.scene.Transforms[spec.Name]

	var obj any
	switch spec.Kind {
	case KindRotatingDoor, KindSlidingDoor:
		d, err := b.door(e, tr, spec)
		if err != nil {
			return err
		}
		b.scene.Doors = append(b.scene.Doors, d)
		obj = d

	case KindButton:
		click, err := b.clip(spec.Click)
		if err != nil {
			return err
		}
		obj = props.NewButton(w, e, b.opts.Backend, b.animator(spec.Name), props.ButtonConfig{
			Click:   click,
			UseOnce: spec.UseOnce,
		})

	case KindToggle:
		click, err := b.clip(spec.Click)
		if err != nil {
			return err
		}
		obj = props.NewToggle(w, e, b.opts.Backend, b.animator(spec.Name), props.ToggleConfig{
			ButtonConfig: props.ButtonConfig{Click: click, UseOnce: spec.UseOnce},
			StartsOn:     spec.startsOn(true),
		})

	case KindDimmer:
		click, err := b.clip(spec.Click)
		if err != nil {
			return err
		}
		mode := props.DimDecrement
		if strings.EqualFold(spec.Mode, "increment") {
			mode = props.DimIncrement
		}
		obj = props.NewDimmer(w, e, b.opts.Backend, b.animator(spec.Name), props.DimmerConfig{
			ButtonConfig: props.ButtonConfig{Click: click, UseOnce: spec.UseOnce},
			Min:          spec.Min,
			Max:          spec.Max,
			Increment:    spec.Increment,
			Mode:         mode,
		})

	case KindProp:
		clip, err := b.clip(spec.Clip)
		if err != nil {
			return err
		}
		obj = props.NewProp(w, e, b.opts.Backend, b.animator(spec.Name), props.PropConfig{
			UseClip:    clip,
			StartsOn:   spec.startsOn(false),
			ReuseDelay: spec.Reuse,
		})

	case KindRotator:
		cs, err := b.clips(spec.RotatorClips.Start, spec.RotatorClips.Move, spec.RotatorClips.Stop)
		if err != nil {
			return err
		}
		accel := spec.Accel
		if accel <= 0 {
			accel = parameter.RotatorAccel
		}
		obj = props.NewRotator(w, e, tr, b.opts.Backend, props.RotatorConfig{
			Axis:     spec.Axis.F(),
			Speed:    spec.Speed,
			Accel:    accel,
			StartsOn: spec.startsOn(false),
			Clips:    props.RotatorClips{Start: cs[0], Move: cs[1], Stop: cs[2]},
		})

	case KindLight:
		preset, err := lightPreset(spec.Preset)
		if err != nil {
			return err
		}
		obj = props.NewLight(w, e, props.LightConfig{
			Preset:   preset,
			Min:      spec.Min,
			Max:      spec.Max,
			StartsOn: spec.startsOn(true),
			Seed:     spec.Seed,
		})

	case KindPush:
		dir := props.PushOverride
		switch strings.ToLower(spec.Push) {
		case "forward":
			dir = props.PushForward
		case "right":
			dir = props.PushRight
		}
		obj = props.NewPushTrigger(e, tr, props.PushConfig{
			Direction:    dir,
			Strength:     spec.Strength,
			Override:     spec.Override.F(),
			PhysicsForce: spec.Physics,
		})

	case KindBody:
		obj = &props.RigidBody{Transform: tr, Dynamic: spec.Dynamic}

	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, spec.Kind)
	}

	w.Attach(e, obj)
	return nil
}

func (b *builder) door(e core.Entity, tr *core.Transform, spec EntitySpec) (*door.Door, error) {
	cs, err := b.clips(spec.DoorClips.Open, spec.DoorClips.Move, spec.DoorClips.Stop, spec.DoorClips.Close)
	if err != nil {
		return nil, err
	}
	cfg := door.Config{
		Name:           spec.Name,
		StartsOpen:     spec.StartsOpen,
		Speed:          spec.Speed,
		Accel:          spec.Accel,
		AutoCloseDelay: spec.AutoClose,
		Clips:          door.Clips{Open: cs[0], Move: cs[1], Stop: cs[2], Close: cs[3]},
	}
	w := b.scene.World

	if spec.Kind == KindRotatingDoor {
		var pivot *core.Transform
		if spec.Pivot != nil {
			pivot = core.NewTransform(spec.Pivot.F(), spec.Rotation.F())
		}
		return door.NewRotating(w, e, pivot, tr, spec.Open.F(), b.opts.Backend, cfg), nil
	}

	var origin *core.Transform
	if spec.Origin != "" {
		o, ok := b.scene.Transforms[spec.Origin]
		if !ok {
			return nil, fmt.Errorf("%w: origin %q", ErrUnknownTarget, spec.Origin)
		}
		origin = o
	}
	if cfg.Accel <= 0 {
		cfg.Accel = parameter.DoorSlidingAccel
	}
	m := door.NewTranslational(tr, origin, spec.Direction.F(), spec.Distance)
	m.ByMagnitude = spec.Magnitude
	return door.New(w, e, m, b.opts.Backend, cfg), nil
}

// link wires references between entities once all exist
func (b *builder) link(spec EntitySpec) error {
	w := b.scene.World
	e, _ := w.Lookup(spec.Name)
	obj, _ := w.Object(e)

	switch o := obj.(type) {
	case *props.Toggle:
		on, err := b.usables(spec.OnTargets)
		if err != nil {
			return err
		}
		off, err := b.usables(spec.OffTargets)
		if err != nil {
			return err
		}
		for _, u := range on {
			o.ForwardStates(u, nil)
		}
		for _, u := range off {
			o.ForwardStates(nil, u)
		}
		return b.forward(o.Button, spec.Targets)

	case *props.Button:
		return b.forward(o, spec.Targets)

	case *props.Dimmer:
		for _, name := range spec.Targets {
			t, err := b.lookup(name)
			if err != nil {
				return err
			}
			d, ok := t.(props.Dimmable)
			if !ok {
				return fmt.Errorf("%w: %q cannot be dimmed", ErrUnknownTarget, name)
			}
			o.Link(d)
		}

	case *props.PushTrigger:
		for _, name := range spec.Bodies {
			t, err := b.lookup(name)
			if err != nil {
				return err
			}
			body, ok := t.(props.Body)
			if !ok {
				return fmt.Errorf("%w: %q is not a body", ErrUnknownTarget, name)
			}
			o.Enter(body)
		}
	}
	return nil
}

func (b *builder) forward(btn *props.Button, targets []string) error {
	us, err := b.usables(targets)
	if err != nil {
		return err
	}
	for _, u := range us {
		btn.Forward(u)
	}
	return nil
}

func (b *builder) usables(names []string) ([]core.Usable, error) {
	out := make([]core.Usable, 0, len(names))
	for _, name := range names {
		t, err := b.lookup(name)
		if err != nil {
			return nil, err
		}
		u, ok := t.(core.Usable)
		if !ok {
			return nil, fmt.Errorf("%w: %q is not usable", ErrUnknownTarget, name)
		}
		out = append(out, u)
	}
	return out, nil
}

func (b *builder) lookup(name string) (any, error) {
	e, ok := b.scene.World.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
	}
	obj, _ := b.scene.World.Object(e)
	return obj, nil
}

func lightPreset(s string) (props.LightPreset, error) {
	switch strings.ToLower(s) {
	case "", "normal":
		return props.LightNormal, nil
	case "probe_slow", "probeslow":
		return props.LightProbeSlow, nil
	case "probe_fast", "probefast":
		return props.LightProbeFast, nil
	case "flicker":
		return props.LightFlicker, nil
	}
	return 0, fmt.Errorf("unknown light preset %q", s)
}
