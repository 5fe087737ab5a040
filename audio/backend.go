package audio

// Voice is a playing instance of a clip
type Voice interface {
	Stop()
}

// Backend starts clip playback
// Implementations must not block; completion is tracked by Cue on the simulation clock
type Backend interface {
	Play(c *Clip, loop bool) Voice
}

// Playback is one call recorded by Recorder
type Playback struct {
	Clip    string
	Loop    bool
	Stopped bool
}

// Recorder is a silent backend that logs playback requests
// Used for headless runs and tests
type Recorder struct {
	Plays []*Playback
}

// Play records the request
func (r *Recorder) Play(c *Clip, loop bool) Voice {
	p := &Playback{Clip: c.Name(), Loop: loop}
	r.Plays = append(r.Plays, p)
	return recorderVoice{p}
}

// Active returns playbacks not yet stopped
func (r *Recorder) Active() []*Playback {
	var out []*Playback
	for _, p := range r.Plays {
		if !p.Stopped {
			out = append(out, p)
		}
	}
	return out
}

// Names returns recorded clip names in order
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Plays))
	for i, p := range r.Plays {
		out[i] = p.Clip
	}
	return out
}

type recorderVoice struct {
	p *Playback
}

func (v recorderVoice) Stop() {
	v.p.Stopped = true
}
