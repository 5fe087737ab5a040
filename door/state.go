package door

import "time"

// State is the door's position in its open/close cycle
type State uint8

const (
	StateClosed State = iota
	StateOpening
	StateOpen
	StateClosing
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "Closed"
	case StateOpening:
		return "Opening"
	case StateOpen:
		return "Open"
	case StateClosing:
		return "Closing"
	default:
		return "Unknown"
	}
}

// Moving reports whether a transition is in progress
func (s State) Moving() bool {
	return s == StateOpening || s == StateClosing
}

// Input is a stimulus fed to Transition
type Input uint8

const (
	InputUse       Input = iota // Interaction request
	InputArrived                // Motion converged on its target
	InputAutoClose              // Auto-close timer expired
)

func (i Input) String() string {
	switch i {
	case InputUse:
		return "Use"
	case InputArrived:
		return "Arrived"
	case InputAutoClose:
		return "AutoClose"
	default:
		return "Unknown"
	}
}

// Effect is a side effect requested by Transition and executed by Door
type Effect uint8

const (
	EffectStartOpen Effect = iota
	EffectStartClose
	EffectFullyOpened
	EffectFullyClosed
	EffectScheduleAutoClose
)

func (e Effect) String() string {
	switch e {
	case EffectStartOpen:
		return "StartOpen"
	case EffectStartClose:
		return "StartClose"
	case EffectFullyOpened:
		return "FullyOpened"
	case EffectFullyClosed:
		return "FullyClosed"
	case EffectScheduleAutoClose:
		return "ScheduleAutoClose"
	default:
		return "Unknown"
	}
}

// Result is the outcome of one transition step
// Direction is +1 or -1 when a new transition starts and 0 otherwise
type Result struct {
	State     State
	Direction int
	Effects   []Effect
	Accepted  bool
}

// Transition computes the next state for input without side effects
//
//	Closed  + Use       -> Opening (+1)  StartOpen
//	Open    + Use       -> Closing (-1)  StartClose
//	Open    + AutoClose -> Closing (-1)  StartClose
//	Opening + Arrived   -> Open          FullyOpened [ScheduleAutoClose]
//	Closing + Arrived   -> Closed        FullyClosed
//
// Every other pair leaves the state unchanged and is not accepted
func Transition(s State, in Input, autoCloseDelay time.Duration) Result {
	switch in {
	case InputUse:
		switch s {
		case StateClosed:
			return Result{State: StateOpening, Direction: 1, Effects: []Effect{EffectStartOpen}, Accepted: true}
		case StateOpen:
			return Result{State: StateClosing, Direction: -1, Effects: []Effect{EffectStartClose}, Accepted: true}
		}

	case InputAutoClose:
		if s == StateOpen {
			return Result{State: StateClosing, Direction: -1, Effects: []Effect{EffectStartClose}, Accepted: true}
		}

	case InputArrived:
		switch s {
		case StateOpening:
			effects := []Effect{EffectFullyOpened}
			if autoCloseDelay > 0 {
				effects = append(effects, EffectScheduleAutoClose)
			}
			return Result{State: StateOpen, Effects: effects, Accepted: true}
		case StateClosing:
			return Result{State: StateClosed, Effects: []Effect{EffectFullyClosed}, Accepted: true}
		}
	}

	return Result{State: s}
}
