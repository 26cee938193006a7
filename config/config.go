package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/pitch-fighter/audio"
	"github.com/lixenwraith/pitch-fighter/engine"
	"github.com/lixenwraith/pitch-fighter/parameter"
)

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Environment overrides, applied after the file
const (
	EnvAudioEnabled = "PITCH_FIGHTER_AUDIO_ENABLED"
	EnvMasterVolume = "PITCH_FIGHTER_MASTER_VOLUME"
	EnvRoster       = "PITCH_FIGHTER_ROSTER"
)

// Config is the complete runtime configuration
type Config struct {
	Match   MatchSection   `toml:"match"`
	Audio   AudioSection   `toml:"audio"`
	Display DisplaySection `toml:"display"`
}

// MatchSection selects the match mode, the rules themselves are fixed
type MatchSection struct {
	Roster int `toml:"roster"` // Players per team: 5 or 1
}

// AudioSection holds playback settings
type AudioSection struct {
	Enabled      bool    `toml:"enabled"`
	MasterVolume float64 `toml:"master_volume"`
	SampleRate   int     `toml:"sample_rate"`
}

// DisplaySection holds frame pacing and the headless pitch size
type DisplaySection struct {
	FrameIntervalMs int `toml:"frame_interval_ms"`
	HeadlessCols    int `toml:"headless_cols"`
	HeadlessRows    int `toml:"headless_rows"`
	HeadlessEvery   int `toml:"headless_every"` // Encode every n-th frame
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Match: MatchSection{
			Roster: parameter.RosterFull,
		},
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: parameter.AudioDefaultVolume,
			SampleRate:   parameter.AudioSampleRate,
		},
		Display: DisplaySection{
			FrameIntervalMs: int(parameter.FrameUpdateInterval / time.Millisecond),
			HeadlessCols:    100,
			HeadlessRows:    38,
			HeadlessEvery:   1,
		},
	}
}

// Load reads the optional file at path over the defaults, applies environment overrides and validates
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvAudioEnabled); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvAudioEnabled, v, err)
		}
		c.Audio.Enabled = b
	}
	if v, ok := lookup(EnvMasterVolume); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvMasterVolume, v, err)
		}
		c.Audio.MasterVolume = f
	}
	if v, ok := lookup(EnvRoster); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalidConfig, EnvRoster, v, err)
		}
		c.Match.Roster = n
	}
	return nil
}

// Validate checks ranges
func (c *Config) Validate() error {
	switch {
	case c.Match.Roster != parameter.RosterFull && c.Match.Roster != parameter.RosterClassic:
		return fmt.Errorf("%w: roster must be %d or %d, got %d", ErrInvalidConfig, parameter.RosterFull, parameter.RosterClassic, c.Match.Roster)
	case c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1:
		return fmt.Errorf("%w: master volume must be within [0,1], got %g", ErrInvalidConfig, c.Audio.MasterVolume)
	case c.Audio.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	case c.Display.FrameIntervalMs <= 0:
		return fmt.Errorf("%w: frame interval must be positive", ErrInvalidConfig)
	case c.Display.HeadlessCols <= 0 || c.Display.HeadlessRows <= 0:
		return fmt.Errorf("%w: headless size must be positive", ErrInvalidConfig)
	}
	return nil
}

// MatchConfig returns the standard rules with the configured roster
func (c *Config) MatchConfig() engine.MatchConfig {
	mc := engine.DefaultMatchConfig()
	mc.RosterSize = c.Match.Roster
	return mc
}

// AudioConfig converts the audio section, keeping default per-effect volumes
func (c *Config) AudioConfig() *audio.AudioConfig {
	ac := audio.DefaultAudioConfig()
	ac.Enabled = c.Audio.Enabled
	ac.MasterVolume = c.Audio.MasterVolume
	ac.SampleRate = c.Audio.SampleRate
	return ac
}

// FrameInterval returns the frame ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.Display.FrameIntervalMs) * time.Millisecond
}
