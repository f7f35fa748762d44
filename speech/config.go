package speech

import (
	"fmt"
	"strings"
	"time"
)

// Config contains all speech configuration options.
type Config struct {
	// Engine selects the synthesis backend.
	Engine string `yaml:"engine" env:"VAANI_ENGINE"`

	// PreferredLang is the language tag used when no voice is bound.
	PreferredLang string `yaml:"preferred_lang" env:"VAANI_PREFERRED_LANG"`

	// Utterance tuning defaults, applied when a request leaves the
	// corresponding field zero.
	Rate   float64 `yaml:"rate" env:"VAANI_RATE"`
	Pitch  float64 `yaml:"pitch" env:"VAANI_PITCH"`
	Volume float64 `yaml:"volume" env:"VAANI_VOLUME"`

	// SettleDelay is the pause between cancelling an in-flight
	// utterance and starting the next one.
	SettleDelay time.Duration `yaml:"settle_delay" env:"VAANI_SETTLE_DELAY"`

	// KeepAliveInterval is the pause/resume workaround period for
	// engines that stall long utterances. Zero disables it.
	KeepAliveInterval time.Duration `yaml:"keep_alive_interval" env:"VAANI_KEEP_ALIVE_INTERVAL"`

	// Espeak holds backend-specific settings.
	Espeak EspeakConfig `yaml:"espeak"`
}

// EspeakConfig contains espeak-ng backend settings.
type EspeakConfig struct {
	Binary string `yaml:"binary" env:"VAANI_ESPEAK_BINARY"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Engine:            "espeak",
		PreferredLang:     "hi-IN",
		Rate:              DefaultRate,
		Pitch:             DefaultPitch,
		Volume:            DefaultVolume,
		SettleDelay:       250 * time.Millisecond,
		KeepAliveInterval: 10 * time.Second,
		Espeak: EspeakConfig{
			Binary: "espeak-ng",
		},
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	validEngines := []string{"espeak", "mock"}
	engineValid := false
	for _, e := range validEngines {
		if strings.EqualFold(c.Engine, e) {
			engineValid = true
			c.Engine = strings.ToLower(c.Engine)
			break
		}
	}
	if !engineValid {
		return fmt.Errorf("invalid speech engine %q: must be one of %v", c.Engine, validEngines)
	}

	if c.Rate < MinRate || c.Rate > MaxRate {
		return fmt.Errorf("rate must be between %v and %v, got %v", MinRate, MaxRate, c.Rate)
	}
	if c.Pitch < MinPitch || c.Pitch > MaxPitch {
		return fmt.Errorf("pitch must be between %v and %v, got %v", MinPitch, MaxPitch, c.Pitch)
	}
	if c.Volume < MinVolume || c.Volume > MaxVolume {
		return fmt.Errorf("volume must be between %v and %v, got %v", MinVolume, MaxVolume, c.Volume)
	}

	if c.SettleDelay < 0 || c.SettleDelay > 5*time.Second {
		return fmt.Errorf("settle_delay must be between 0 and 5s, got %v", c.SettleDelay)
	}
	if c.KeepAliveInterval < 0 {
		return fmt.Errorf("keep_alive_interval cannot be negative, got %v", c.KeepAliveInterval)
	}
	if c.KeepAliveInterval > 0 && c.KeepAliveInterval < time.Second {
		return fmt.Errorf("keep_alive_interval must be at least 1s when enabled, got %v", c.KeepAliveInterval)
	}

	if c.PreferredLang == "" {
		return fmt.Errorf("preferred_lang cannot be empty")
	}
	if c.Espeak.Binary == "" {
		return fmt.Errorf("espeak binary path cannot be empty")
	}

	return nil
}
