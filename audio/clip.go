package audio

import (
	"fmt"
	"os"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/wav"

	"github.com/herob4u/VRShowcase/parameter"
)

// resampleQuality balances CPU against aliasing when a WAV clip differs from the output rate
const resampleQuality = 4

// Clip is a decoded, in-memory sound with a known nominal length
// A nil *Clip stands for intentional silence
type Clip struct {
	name   string
	buf    *beep.Buffer
	length time.Duration
}

// Name returns the scene identifier of the clip
func (c *Clip) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Length returns the nominal playback duration
func (c *Clip) Length() time.Duration {
	if c == nil {
		return 0
	}
	return c.length
}

// SampleRate returns the rate the clip was rendered at
func (c *Clip) SampleRate() beep.SampleRate {
	return c.buf.Format().SampleRate
}

// Streamer returns a fresh streamer over the clip, looping forever when loop is set
func (c *Clip) Streamer(loop bool) beep.Streamer {
	s := c.buf.Streamer(0, c.buf.Len())
	if loop {
		return beep.Loop(-1, s)
	}
	return s
}

func stereoFormat(sr beep.SampleRate) beep.Format {
	return beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
}

// newClip renders s into a buffer
func newClip(name string, format beep.Format, s beep.Streamer) *Clip {
	buf := beep.NewBuffer(format)
	buf.Append(s)
	return &Clip{
		name:   name,
		buf:    buf,
		length: format.SampleRate.D(buf.Len()),
	}
}

// NewTone synthesizes a sine clip, used for placeholder door and button sounds
func NewTone(name string, freq float64, length time.Duration, sr beep.SampleRate) (*Clip, error) {
	if length <= 0 {
		length = parameter.DefaultToneLength
	}
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, fmt.Errorf("tone %q: %w", name, err)
	}
	quiet := &effects.Gain{Streamer: tone, Gain: parameter.ToneAmplitude - 1}
	return newClip(name, stereoFormat(sr), beep.Take(sr.N(length), quiet)), nil
}

// NewSilence creates a clip that plays nothing for length
func NewSilence(name string, length time.Duration, sr beep.SampleRate) *Clip {
	return newClip(name, stereoFormat(sr), generators.Silence(sr.N(length)))
}

// LoadWAV decodes a WAV file and resamples it to sr
func LoadWAV(name, path string, sr beep.SampleRate) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open clip %q: %w", name, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decode clip %q: %w", name, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(resampleQuality, format.SampleRate, sr, streamer)
	}
	format.SampleRate = sr

	clip := newClip(name, format, s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read clip %q: %w", name, err)
	}
	return clip, nil
}
