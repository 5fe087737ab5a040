// Package scene reads YAML scene descriptions and builds wired worlds from them
package scene

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/herob4u/VRShowcase/vmath"
)

// Entity kinds
const (
	KindRotatingDoor = "door.rotating"
	KindSlidingDoor  = "door.sliding"
	KindButton       = "button"
	KindToggle       = "toggle"
	KindDimmer       = "dimmer"
	KindProp         = "prop"
	KindRotator      = "rotator"
	KindLight        = "light"
	KindPush         = "push"
	KindBody         = "body"
)

var (
	ErrUnknownKind   = errors.New("unknown entity kind")
	ErrUnknownClip   = errors.New("unknown clip")
	ErrUnknownTarget = errors.New("unknown target")
	ErrDuplicateName = errors.New("duplicate name")
	ErrInvalidClip   = errors.New("invalid clip")
)

//go:embed demo.yaml
var demoScene []byte

// Vec3 is a vector written as a three element sequence
type Vec3 vmath.Vec3F

func (v *Vec3) UnmarshalYAML(n *yaml.Node) error {
	var xs []float64
	if err := n.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("line %d: vector needs 3 components, got %d", n.Line, len(xs))
	}
	*v = Vec3{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

// F returns the vmath form
func (v Vec3) F() vmath.Vec3F { return vmath.Vec3F(v) }

// File is the decoded scene document
type File struct {
	Name     string              `yaml:"name"`
	Clips    map[string]ClipSpec `yaml:"clips"`
	Entities []EntitySpec        `yaml:"entities"`
}

// ClipSpec describes one sound: exactly one of Tone, Silence or File
type ClipSpec struct {
	Tone    float64       `yaml:"tone"` // Sine frequency in Hz
	Silence bool          `yaml:"silence"`
	File    string        `yaml:"file"` // WAV path, relative to the scene file
	Length  time.Duration `yaml:"length"`
}

// DoorClips names door sounds
type DoorClips struct {
	Open  string `yaml:"open"`
	Move  string `yaml:"move"`
	Stop  string `yaml:"stop"`
	Close string `yaml:"close"`
}

// RotatorClips names rotator sounds
type RotatorClips struct {
	Start string `yaml:"start"`
	Move  string `yaml:"move"`
	Stop  string `yaml:"stop"`
}

// EntitySpec is one scene object; fields apply per kind
type EntitySpec struct {
	Name     string `yaml:"name"`
	Kind     string `yaml:"kind"`
	Position Vec3   `yaml:"position"`
	Rotation Vec3   `yaml:"rotation"`

	// Doors
	StartsOpen bool          `yaml:"starts_open"`
	Speed      float64       `yaml:"speed"`
	Accel      float64       `yaml:"accel"`
	AutoClose  time.Duration `yaml:"auto_close"`
	Pivot      *Vec3         `yaml:"pivot"`     // Rotating: hinge position, omitted rotates in place
	Open       Vec3          `yaml:"open"`      // Rotating: Euler degrees
	Direction  Vec3          `yaml:"direction"` // Sliding
	Distance   float64       `yaml:"distance"`  // Sliding
	Origin     string        `yaml:"origin"`    // Sliding: entity whose transform anchors the target
	Magnitude  bool          `yaml:"magnitude_convergence"`
	DoorClips  DoorClips     `yaml:"door_clips"`

	// Buttons, toggles, dimmers
	Click      string   `yaml:"click"`
	UseOnce    bool     `yaml:"use_once"`
	Targets    []string `yaml:"targets"`
	OnTargets  []string `yaml:"on_targets"`
	OffTargets []string `yaml:"off_targets"`
	StartsOn   *bool    `yaml:"starts_on"`
	Min        float64  `yaml:"min"`
	Max        float64  `yaml:"max"`
	Increment  float64  `yaml:"increment"`
	Mode       string   `yaml:"mode"`

	// Props
	Clip  string        `yaml:"clip"`
	Reuse time.Duration `yaml:"reuse"`

	// Rotators
	Axis         Vec3         `yaml:"axis"`
	RotatorClips RotatorClips `yaml:"rotator_clips"`

	// Lights
	Preset string `yaml:"preset"`
	Seed   uint64 `yaml:"seed"`

	// Push triggers and bodies
	Push     string   `yaml:"push"` // forward, right or override
	Strength float64  `yaml:"strength"`
	Override Vec3     `yaml:"override"`
	Physics  bool     `yaml:"physics"`
	Bodies   []string `yaml:"bodies"`
	Dynamic  bool     `yaml:"dynamic"`
}

// startsOn resolves the optional flag
func (s EntitySpec) startsOn(def bool) bool {
	if s.StartsOn == nil {
		return def
	}
	return *s.StartsOn
}

// Parse decodes a scene document, rejecting unknown fields
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses a scene file
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return Parse(data)
}

// Demo returns the built-in showcase scene
func Demo() *File {
	f, err := Parse(demoScene)
	if err != nil {
		panic(fmt.Sprintf("embedded scene: %v", err))
	}
	return f
}

func (f *File) validate() error {
	for name, c := range f.Clips {
		n := 0
		if c.Tone != 0 {
			n++
		}
		if c.Silence {
			n++
		}
		if c.File != "" {
			n++
		}
		if n != 1 {
			return fmt.Errorf("%w: %q needs exactly one of tone, silence, file", ErrInvalidClip, name)
		}
	}

	seen := make(map[string]bool, len(f.Entities))
	for _, e := range f.Entities {
		if e.Name == "" {
			return fmt.Errorf("entity of kind %q has no name", e.Kind)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: %q", ErrDuplicateName, e.Name)
		}
		seen[e.Name] = true
	}
	return nil
}
