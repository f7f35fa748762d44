package speech_test

import (
	"testing"
	"time"

	"github.com/pathshala/vaani/speech"
)

// TestDefaultConfig verifies the defaults validate and carry the
// expected values.
func TestDefaultConfig(t *testing.T) {
	cfg := speech.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if cfg.Engine != "espeak" {
		t.Errorf("engine = %q, want espeak", cfg.Engine)
	}
	if cfg.PreferredLang != "hi-IN" {
		t.Errorf("preferred_lang = %q, want hi-IN", cfg.PreferredLang)
	}
	if cfg.Rate != 0.9 {
		t.Errorf("rate = %v, want 0.9", cfg.Rate)
	}
	if cfg.KeepAliveInterval != 10*time.Second {
		t.Errorf("keep_alive_interval = %v, want 10s", cfg.KeepAliveInterval)
	}
}

// TestConfigValidate exercises the rejection paths.
func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*speech.Config)
		valid  bool
	}{
		{"defaults", func(*speech.Config) {}, true},
		{"mock engine", func(c *speech.Config) { c.Engine = "mock" }, true},
		{"engine case insensitive", func(c *speech.Config) { c.Engine = "ESPEAK" }, true},
		{"unknown engine", func(c *speech.Config) { c.Engine = "festival" }, false},
		{"rate too low", func(c *speech.Config) { c.Rate = 0.05 }, false},
		{"rate too high", func(c *speech.Config) { c.Rate = 11 }, false},
		{"pitch too high", func(c *speech.Config) { c.Pitch = 2.5 }, false},
		{"volume too high", func(c *speech.Config) { c.Volume = 1.5 }, false},
		{"negative settle delay", func(c *speech.Config) { c.SettleDelay = -time.Second }, false},
		{"keep-alive disabled", func(c *speech.Config) { c.KeepAliveInterval = 0 }, true},
		{"keep-alive too short", func(c *speech.Config) { c.KeepAliveInterval = 100 * time.Millisecond }, false},
		{"empty preferred lang", func(c *speech.Config) { c.PreferredLang = "" }, false},
		{"empty espeak binary", func(c *speech.Config) { c.Espeak.Binary = "" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := speech.DefaultConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if tt.valid && err != nil {
				t.Errorf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

// TestConfigEngineNormalized verifies Validate lowercases the engine
// name so later switches are simple.
func TestConfigEngineNormalized(t *testing.T) {
	cfg := speech.DefaultConfig()
	cfg.Engine = "Mock"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if cfg.Engine != "mock" {
		t.Errorf("engine = %q, want mock", cfg.Engine)
	}
}
