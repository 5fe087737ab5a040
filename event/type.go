package event

import (
	"time"

	"github.com/herob4u/VRShowcase/core"
)

// EventType identifies a prop notification
type EventType int

const (
	// EventStartOpen fires when a door accepts a use while closed
	// Publisher: door.Door | Payload: none
	EventStartOpen EventType = iota

	// EventStartClose fires when a door accepts a use or auto-close while open
	// Publisher: door.Door | Payload: none
	EventStartClose

	// EventFullyOpened fires once the open motion converges and snaps to target
	// Publisher: door.Door | Payload: none
	EventFullyOpened

	// EventFullyClosed fires once the close motion converges and snaps to target
	// Publisher: door.Door | Payload: none
	EventFullyClosed

	// EventButtonClick fires on every accepted button press
	// Publisher: props.Button, props.Toggle, props.Dimmer
	EventButtonClick

	// EventToggledOn and EventToggledOff follow a click according to the toggle's new state
	// Publisher: props.Toggle
	EventToggledOn
	EventToggledOff

	// EventUseStarted and EventUseEnded bracket a prop's reuse cooldown
	// Publisher: props.Prop
	EventUseStarted
	EventUseEnded

	// EventRotationStart and EventRotationStop mark spin-up and spin-down requests
	// Publisher: props.Rotator
	EventRotationStart
	EventRotationStop

	// EventRotationMax and EventRotationMin fire on the tick speed reaches a bound
	// Publisher: props.Rotator
	EventRotationMax
	EventRotationMin

	// EventLightOn and EventLightOff follow light toggles
	// Publisher: props.Light
	EventLightOn
	EventLightOff

	eventTypeCount
)

var eventNames = [eventTypeCount]string{
	EventStartOpen:     "StartOpen",
	EventStartClose:    "StartClose",
	EventFullyOpened:   "FullyOpened",
	EventFullyClosed:   "FullyClosed",
	EventButtonClick:   "ButtonClick",
	EventToggledOn:     "ToggledOn",
	EventToggledOff:    "ToggledOff",
	EventUseStarted:    "UseStarted",
	EventUseEnded:      "UseEnded",
	EventRotationStart: "RotationStart",
	EventRotationStop:  "RotationStop",
	EventRotationMax:   "RotationMax",
	EventRotationMin:   "RotationMin",
	EventLightOn:       "LightOn",
	EventLightOff:      "LightOff",
}

// String returns the name of the event type for traces
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return eventNames[t]
}

// Event is a single notification from a prop
type Event struct {
	Type   EventType
	Entity core.Entity
	Time   time.Duration // Simulated time of publication
}
