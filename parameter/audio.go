package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Synthesized placeholder clips
const (
	// ToneAmplitude keeps generated tones below clipping when several props overlap
	ToneAmplitude = 0.25

	// DefaultToneLength is used when a scene clip omits a length
	DefaultToneLength = 500 * time.Millisecond
)
