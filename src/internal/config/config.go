// FILE: framelog/src/internal/config/config.go
package config

import (
	"fmt"

	"framelog/src/internal/core"
)

// Config is the root configuration for a framelog host.
type Config struct {
	Pipeline PipelineConfig `toml:"pipeline"`
	Debug    DebugConfig    `toml:"debug"`
	Logging  LogConfig      `toml:"logging"`
}

// PipelineConfig holds the runtime knobs of the write pipeline. It is
// mutable process-lifetime state: created once at startup, adjusted only via
// Pipeline.Configure.
type PipelineConfig struct {
	// Lowest severity accepted by the level gate: "dev", "info", "warn",
	// "error", "fatal"
	MinLevel string `toml:"min_level"`

	// Per-level sampling rate overrides (0..1), keyed by level name.
	// Levels absent from the map keep their defaults.
	SamplingRates map[string]float64 `toml:"sampling_rates"`

	// Maximum accepted entries per frame id. Error and fatal entries are
	// exempt.
	FrameThrottleMax int `toml:"frame_throttle_max"`

	// Ring buffer capacity. Fixed at construction.
	BufferCapacity int `toml:"buffer_capacity"`

	// Mirror accepted entries to the secondary sink
	MirrorEnabled bool `toml:"mirror_enabled"`
}

// DebugConfig controls the local HTTP inspection surface.
type DebugConfig struct {
	Enabled bool   `toml:"enabled"`
	Host    string `toml:"host"`
	Port    int    `toml:"port"`
}

func (c *Config) validate() error {
	if c.Pipeline.MinLevel != "" {
		if _, ok := core.ParseLevel(c.Pipeline.MinLevel); !ok {
			return fmt.Errorf("invalid min_level: %q", c.Pipeline.MinLevel)
		}
	}
	for name, rate := range c.Pipeline.SamplingRates {
		if _, ok := core.ParseLevel(name); !ok {
			return fmt.Errorf("invalid sampling_rates level: %q", name)
		}
		if rate < 0 || rate > 1 {
			return fmt.Errorf("sampling rate for %q out of range [0,1]: %v", name, rate)
		}
	}
	if c.Pipeline.FrameThrottleMax < 0 {
		return fmt.Errorf("frame_throttle_max must be >= 0, got %d", c.Pipeline.FrameThrottleMax)
	}
	if c.Pipeline.BufferCapacity < 0 {
		return fmt.Errorf("buffer_capacity must be >= 0, got %d", c.Pipeline.BufferCapacity)
	}
	if c.Debug.Enabled && (c.Debug.Port <= 0 || c.Debug.Port > 65535) {
		return fmt.Errorf("invalid debug port: %d", c.Debug.Port)
	}
	return nil
}

// MinLevelValue resolves the configured minimum level, defaulting to dev.
func (p *PipelineConfig) MinLevelValue() core.Level {
	if p.MinLevel == "" {
		return core.LevelDev
	}
	lv, _ := core.ParseLevel(p.MinLevel)
	return lv
}

// SamplingRateValues resolves the configured rates over the defaults.
func (p *PipelineConfig) SamplingRateValues() map[core.Level]float64 {
	rates := core.DefaultSamplingRates()
	for name, rate := range p.SamplingRates {
		if lv, ok := core.ParseLevel(name); ok {
			rates[lv] = rate
		}
	}
	return rates
}
