package speech

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"
)

// LoadConfigFromViper loads speech configuration from Viper, then
// applies environment overrides from the VAANI_* variables.
func LoadConfigFromViper() (Config, error) {
	cfg := DefaultConfig()

	if viper.IsSet("speech.engine") {
		cfg.Engine = viper.GetString("speech.engine")
	}
	if viper.IsSet("speech.preferred_lang") {
		cfg.PreferredLang = viper.GetString("speech.preferred_lang")
	}
	if viper.IsSet("speech.rate") {
		cfg.Rate = viper.GetFloat64("speech.rate")
	}
	if viper.IsSet("speech.pitch") {
		cfg.Pitch = viper.GetFloat64("speech.pitch")
	}
	if viper.IsSet("speech.volume") {
		cfg.Volume = viper.GetFloat64("speech.volume")
	}
	if viper.IsSet("speech.settle_delay") {
		if d, err := time.ParseDuration(viper.GetString("speech.settle_delay")); err == nil {
			cfg.SettleDelay = d
		}
	}
	if viper.IsSet("speech.keep_alive_interval") {
		if d, err := time.ParseDuration(viper.GetString("speech.keep_alive_interval")); err == nil {
			cfg.KeepAliveInterval = d
		}
	}
	if viper.IsSet("speech.espeak.binary") {
		cfg.Espeak.Binary = viper.GetString("speech.espeak.binary")
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("reading speech environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid speech configuration: %w", err)
	}

	return cfg, nil
}

// SetDefaults sets default values in Viper for speech configuration.
func SetDefaults() {
	defaults := DefaultConfig()

	viper.SetDefault("speech.engine", defaults.Engine)
	viper.SetDefault("speech.preferred_lang", defaults.PreferredLang)
	viper.SetDefault("speech.rate", defaults.Rate)
	viper.SetDefault("speech.pitch", defaults.Pitch)
	viper.SetDefault("speech.volume", defaults.Volume)
	viper.SetDefault("speech.settle_delay", defaults.SettleDelay.String())
	viper.SetDefault("speech.keep_alive_interval", defaults.KeepAliveInterval.String())
	viper.SetDefault("speech.espeak.binary", defaults.Espeak.Binary)
}
