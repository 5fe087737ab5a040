package scene

import (
	"fmt"

	"github.com/herob4u/VRShowcase/core"
	"github.com/herob4u/VRShowcase/door"
	"github.com/herob4u/VRShowcase/props"
)

// Row is a one-line summary of an entity for display
type Row struct {
	Name   string
	Kind   string
	State  string
	Usable bool
}

// Rows summarizes entities in registration order
func (s *Scene) Rows() []Row {
	w := s.World
	ents := w.Entities()
	rows := make([]Row, 0, len(ents))
	for _, e := range ents {
		obj, _ := w.Object(e)
		kind, state := Describe(obj)
		_, usable := obj.(core.Usable)
		rows = append(rows, Row{Name: w.Name(e), Kind: kind, State: state, Usable: usable})
	}
	return rows
}

// Describe returns a short kind label and state for a scene object
func Describe(obj any) (kind, state string) {
	switch o := obj.(type) {
	case *door.Door:
		return "door", o.State().String()
	case *props.Toggle:
		return "toggle", onOff(o.IsOn())
	case *props.Dimmer:
		return "dimmer", fmt.Sprintf("%.0f%% %s", o.Level()*100, o.Mode())
	case *props.Button:
		if !o.Enabled() {
			return "button", "spent"
		}
		return "button", "ready"
	case *props.Prop:
		if o.InUse() {
			return "prop", "busy"
		}
		return "prop", "ready"
	case *props.Rotator:
		return "rotator", fmt.Sprintf("%.0f deg/s", o.Speed())
	case *props.Light:
		if !o.IsOn() {
			return "light", "off"
		}
		return "light", fmt.Sprintf("%.2f %s", o.Intensity(), o.Preset())
	case *props.PushTrigger:
		return "push", fmt.Sprintf("%d bodies", o.Tracking())
	case *props.RigidBody:
		p := o.Transform.Position
		return "body", fmt.Sprintf("(%.2f, %.2f, %.2f)", p.X, p.Y, p.Z)
	}
	return "?", ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
