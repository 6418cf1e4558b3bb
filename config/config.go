// Package config loads ropesim tuning from a yaml file.
//
// Config file locations (priority order):
//  1. $ROPESIM_CONFIG
//  2. ./ropesim.yaml
//  3. $XDG_CONFIG_HOME/ropesim/config.yaml
//  4. ~/.config/ropesim/config.yaml
//
// Keys absent from the file keep their compiled-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/ropesim/engine"
	"github.com/lixenwraith/ropesim/parameter"
)

// ErrInvalid is wrapped by every Validate failure
var ErrInvalid = errors.New("invalid config")

// maxRate keeps time.Second/rate above zero
const maxRate = int(time.Second)

// Config is the tuning file schema
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Display    DisplayConfig    `yaml:"display"`
	Sound      bool             `yaml:"sound"`
}

// SimulationConfig covers the integrator and scheduler
type SimulationConfig struct {
	TicksPerSecond     int     `yaml:"ticks_per_second"`
	MaxCatchUpTicks    int     `yaml:"max_catch_up_ticks"`
	MaxBacklogTicks    int     `yaml:"max_backlog_ticks"`
	ClampInterpolation bool    `yaml:"clamp_interpolation"`
	Gravity            float64 `yaml:"gravity"`
	Iterations         int     `yaml:"iterations"`
}

// DisplayConfig covers the terminal front-end
type DisplayConfig struct {
	FrameRate   int     `yaml:"frame_rate"`
	RenderScale float64 `yaml:"render_scale"`
	PickRadius  float64 `yaml:"pick_radius"`
}

// DefaultConfig returns the compiled-in tuning
func DefaultConfig() *Config {
	return &Config{
		Simulation: SimulationConfig{
			TicksPerSecond:     parameter.TicksPerSecond,
			MaxCatchUpTicks:    parameter.MaxCatchUpTicks,
			MaxBacklogTicks:    parameter.MaxBacklogTicks,
			ClampInterpolation: parameter.ClampInterpolation,
			Gravity:            parameter.Gravity,
			Iterations:         parameter.ConstraintIterations,
		},
		Display: DisplayConfig{
			FrameRate:   parameter.FrameRate,
			RenderScale: parameter.RenderScale,
			PickRadius:  parameter.PickRadius,
		},
		Sound: true,
	}
}

// Load finds and loads the config file, or returns defaults if none found
// The returned path is empty when defaults are used
func Load() (*Config, string, error) {
	path := FindConfigPath()
	if path == "" {
		return DefaultConfig(), "", nil
	}
	return LoadFromPath(path)
}

// LoadFromPath loads config from a specific path over the defaults
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// Parse decodes yaml over the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	s, d := c.Simulation, c.Display
	switch {
	case s.TicksPerSecond <= 0:
		return fmt.Errorf("%w: ticks_per_second must be positive, got %d", ErrInvalid, s.TicksPerSecond)
	case s.TicksPerSecond > maxRate:
		return fmt.Errorf("%w: ticks_per_second must be at most %d, got %d", ErrInvalid, maxRate, s.TicksPerSecond)
	case s.MaxCatchUpTicks <= 0:
		return fmt.Errorf("%w: max_catch_up_ticks must be positive, got %d", ErrInvalid, s.MaxCatchUpTicks)
	case s.MaxBacklogTicks < 0:
		return fmt.Errorf("%w: max_backlog_ticks must not be negative, got %d", ErrInvalid, s.MaxBacklogTicks)
	case s.Iterations < 0:
		return fmt.Errorf("%w: iterations must not be negative, got %d", ErrInvalid, s.Iterations)
	case d.FrameRate <= 0:
		return fmt.Errorf("%w: frame_rate must be positive, got %d", ErrInvalid, d.FrameRate)
	case d.FrameRate > maxRate:
		return fmt.Errorf("%w: frame_rate must be at most %d, got %d", ErrInvalid, maxRate, d.FrameRate)
	case d.RenderScale <= 0:
		return fmt.Errorf("%w: render_scale must be positive, got %v", ErrInvalid, d.RenderScale)
	case d.PickRadius <= 0:
		return fmt.Errorf("%w: pick_radius must be positive, got %v", ErrInvalid, d.PickRadius)
	}
	return nil
}

// Scheduler returns the scheduler settings
func (c *Config) Scheduler() engine.SchedulerConfig {
	return engine.SchedulerConfig{
		TicksPerSecond:     c.Simulation.TicksPerSecond,
		MaxCatchUpTicks:    c.Simulation.MaxCatchUpTicks,
		MaxBacklogTicks:    c.Simulation.MaxBacklogTicks,
		ClampInterpolation: c.Simulation.ClampInterpolation,
	}
}

// Marshal renders the config as yaml, used to print an editable default file
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
