package audio

import (
	"math"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/herob4u/VRShowcase/parameter"
)

// SpeakerBackend plays clips on the system audio device through a single mixer
type SpeakerBackend struct {
	mu          sync.Mutex
	sampleRate  beep.SampleRate
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
}

// NewSpeakerBackend creates a backend at sr; the device opens on Init
func NewSpeakerBackend(sr beep.SampleRate) *SpeakerBackend {
	mixer := &beep.Mixer{}
	return &SpeakerBackend{
		sampleRate: sr,
		mixer:      mixer,
		master:     &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Init opens the audio device with master volume in [0,1]
func (sb *SpeakerBackend) Init(volume float64) error {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if sb.initialized {
		return nil
	}
	if err := speaker.Init(sb.sampleRate, sb.sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	sb.setVolumeLocked(volume)
	speaker.Play(sb.master)
	sb.initialized = true
	return nil
}

// SetVolume updates master volume in [0,1]
func (sb *SpeakerBackend) SetVolume(volume float64) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.initialized {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sb.setVolumeLocked(volume)
}

func (sb *SpeakerBackend) setVolumeLocked(volume float64) {
	if volume <= 0 {
		sb.master.Silent = true
		return
	}
	if volume > 1 {
		volume = 1
	}
	sb.master.Silent = false
	sb.master.Volume = math.Log2(volume)
}

// Play adds the clip to the mixer; before Init it returns a no-op voice
func (sb *SpeakerBackend) Play(c *Clip, loop bool) Voice {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized || c == nil {
		return silentVoice{}
	}

	ctrl := &beep.Ctrl{Streamer: c.Streamer(loop)}
	speaker.Lock()
	sb.mixer.Add(ctrl)
	speaker.Unlock()
	return speakerVoice{ctrl}
}

// Close stops all sounds and releases the device
func (sb *SpeakerBackend) Close() {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	if !sb.initialized {
		return
	}
	speaker.Lock()
	sb.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sb.initialized = false
}

type speakerVoice struct {
	ctrl *beep.Ctrl
}

// Stop detaches the streamer; the mixer drops finished streamers on its next pull
func (v speakerVoice) Stop() {
	speaker.Lock()
	v.ctrl.Streamer = nil
	speaker.Unlock()
}

type silentVoice struct{}

func (silentVoice) Stop() {}
