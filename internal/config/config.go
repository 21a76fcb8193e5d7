// Package config loads the host configuration from YAML. Every field has a
// default, so a missing file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/folio/internal/sim"
)

// Config holds all host settings
type Config struct {
	Window          WindowConfig   `yaml:"window"`
	Viewport        ViewportConfig `yaml:"viewport"`
	Route           string         `yaml:"route"`
	MaxFrameSeconds float64        `yaml:"max_frame_seconds"`
	Seed            int64          `yaml:"seed"`
	Sim             SimConfig      `yaml:"sim"`
	Mandel          MandelConfig   `yaml:"mandel"`
	Audio           AudioConfig    `yaml:"audio"`
	Terminal        TerminalConfig `yaml:"terminal"`
	Logging         LoggingConfig  `yaml:"logging"`
}

// WindowConfig sizes the desktop window.
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
}

// ViewportConfig is the logical visible size of the world, in world units.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SimConfig overrides the swarm simulation constants.
type SimConfig struct {
	WorldWidth      float64   `yaml:"world_width"`
	WorldHeight     float64   `yaml:"world_height"`
	EnemyCount      int       `yaml:"enemy_count"`
	PlayerSpeed     float64   `yaml:"player_speed"`
	EnemySpeedScale float64   `yaml:"enemy_speed_scale"`
	EnemySizes      []float64 `yaml:"enemy_sizes"`
}

// MandelConfig tunes the Mandelbrot viewer.
type MandelConfig struct {
	Iterations int `yaml:"iterations"`
	Cell       int `yaml:"cell"`
}

// AudioConfig controls the bounce sound effects.
type AudioConfig struct {
	BounceSFX     bool `yaml:"bounce_sfx"`
	MinIntervalMS int  `yaml:"min_interval_ms"`
	MaxVoices     int  `yaml:"max_voices"`
}

// TerminalConfig tunes the terminal host.
type TerminalConfig struct {
	// HoldMS is how long a key counts as held after its last press or
	// auto-repeat. Below the terminal's repeat delay a held key stutters.
	HoldMS int `yaml:"hold_ms"`
}

// LoggingConfig selects the slog level and format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	def := sim.DefaultOptions()
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    800,
			Title:     "folio",
			Resizable: true,
		},
		Viewport:        ViewportConfig{Width: 1600, Height: 1000},
		Route:           "/",
		MaxFrameSeconds: 0.1,
		Seed:            1,
		Sim: SimConfig{
			WorldWidth:      def.WorldWidth,
			WorldHeight:     def.WorldHeight,
			EnemyCount:      def.EnemyCount,
			PlayerSpeed:     def.PlayerSpeed,
			EnemySpeedScale: def.EnemySpeedScale,
			EnemySizes:      def.EnemySizes,
		},
		Mandel: MandelConfig{Iterations: 200, Cell: 4},
		Audio: AudioConfig{
			BounceSFX:     false,
			MinIntervalMS: 60,
			MaxVoices:     8,
		},
		Terminal: TerminalConfig{HoldMS: 500},
		Logging:  LoggingConfig{Level: "info", Format: "console"},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Sim.EnemyCount < 0 {
		return fmt.Errorf("sim.enemy_count must not be negative, got %d", c.Sim.EnemyCount)
	}
	largest := sim.DefaultOptions().MaxPlayerSize()
	for _, s := range c.Sim.EnemySizes {
		if s <= 0 {
			return fmt.Errorf("sim.enemy_sizes must be positive, got %g", s)
		}
		if s > largest {
			largest = s
		}
	}
	if c.Sim.WorldWidth <= largest || c.Sim.WorldHeight <= largest {
		return fmt.Errorf("world %gx%g must be larger than the largest entity (%g)",
			c.Sim.WorldWidth, c.Sim.WorldHeight, largest)
	}
	if c.Terminal.HoldMS < 0 {
		return fmt.Errorf("terminal.hold_ms must not be negative, got %d", c.Terminal.HoldMS)
	}
	if c.MaxFrameSeconds < 0 {
		return fmt.Errorf("max_frame_seconds must not be negative, got %g", c.MaxFrameSeconds)
	}
	return nil
}

// apply copies the overrides onto o.
func (s SimConfig) apply(o sim.Options) sim.Options {
	o.WorldWidth = s.WorldWidth
	o.WorldHeight = s.WorldHeight
	o.EnemyCount = s.EnemyCount
	o.PlayerSpeed = s.PlayerSpeed
	o.EnemySpeedScale = s.EnemySpeedScale
	if len(s.EnemySizes) > 0 {
		o.EnemySizes = s.EnemySizes
	}
	return o
}

// BlueCondition returns the swarm options with the overrides applied.
func (c *Config) BlueCondition() sim.Options {
	return c.Sim.apply(sim.DefaultOptions())
}

// GameTwo returns the sandbox options with the overrides applied.
func (c *Config) GameTwo() sim.Options {
	return c.Sim.apply(sim.GameTwoOptions())
}

// MinInterval is the minimum gap between two bounce sounds.
func (a AudioConfig) MinInterval() time.Duration {
	return time.Duration(a.MinIntervalMS) * time.Millisecond
}

// Hold is the terminal key hold window.
func (t TerminalConfig) Hold() time.Duration {
	return time.Duration(t.HoldMS) * time.Millisecond
}
