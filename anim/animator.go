// Package anim defines the command surface props use to drive an animation rig
package anim

// Parameter names shared by props and rigs
const (
	TriggerPress = "Press"
	TriggerUse   = "Use"
	BoolIsOn     = "IsOn"
	BoolStartsOn = "StartsOn"
)

// Animator receives fire-and-forget parameter commands
// Playback itself is owned by the rig
type Animator interface {
	ResetTrigger(name string)
	SetTrigger(name string)
	SetBool(name string, v bool)
}

// Command is one recorded animator call
type Command struct {
	Op    string // "reset", "trigger", "bool"
	Name  string
	Value bool
}

// Recorder is an Animator that stores every command and the resulting bool parameters
type Recorder struct {
	Commands []Command
	Bools    map[string]bool
	Triggers map[string]int
}

// NewRecorder returns an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{
		Bools:    make(map[string]bool),
		Triggers: make(map[string]int),
	}
}

func (r *Recorder) ResetTrigger(name string) {
	r.Commands = append(r.Commands, Command{Op: "reset", Name: name})
}

func (r *Recorder) SetTrigger(name string) {
	r.Commands = append(r.Commands, Command{Op: "trigger", Name: name})
	r.Triggers[name]++
}

func (r *Recorder) SetBool(name string, v bool) {
	r.Commands = append(r.Commands, Command{Op: "bool", Name: name, Value: v})
	r.Bools[name] = v
}

// Pulse resets then sets a trigger so the rig restarts it
func Pulse(a Animator, name string) {
	if a == nil {
		return
	}
	a.ResetTrigger(name)
	a.SetTrigger(name)
}
