// Package config loads runtime settings for the showcase from the environment
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/herob4u/VRShowcase/parameter"
)

// ErrInvalidSetting is wrapped by Validate failures
var ErrInvalidSetting = errors.New("invalid setting")

// Settings are runtime knobs; compile-time tuning lives in parameter
type Settings struct {
	Tick       time.Duration `env:"VRSIM_TICK"        envDefault:"20ms"`
	Audio      bool          `env:"VRSIM_AUDIO"       envDefault:"true"`
	Volume     float64       `env:"VRSIM_VOLUME"      envDefault:"0.8"`
	SampleRate int           `env:"VRSIM_SAMPLE_RATE" envDefault:"44100"`
	Debug      bool          `env:"VRSIM_DEBUG"`
	Scene      string        `env:"VRSIM_SCENE"`
}

// Default returns settings without consulting the environment
func Default() Settings {
	return Settings{
		Tick:       parameter.TickInterval,
		Audio:      true,
		Volume:     0.8,
		SampleRate: parameter.AudioSampleRate,
	}
}

// Load parses the environment and validates the result
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the simulation cannot run with
func (s Settings) Validate() error {
	if s.Tick <= 0 {
		return fmt.Errorf("%w: tick %v must be positive", ErrInvalidSetting, s.Tick)
	}
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalidSetting, s.Volume)
	}
	if s.SampleRate < 8000 {
		return fmt.Errorf("%w: sample rate %d below 8000", ErrInvalidSetting, s.SampleRate)
	}
	return nil
}
