package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/shapebox/constants"
)

type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Display DisplayConfig `toml:"display"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
}

type SimConfig struct {
	Gravity     float64 `toml:"gravity"`
	Restitution float64 `toml:"restitution"`
	BoundsX     float64 `toml:"bounds_x"`
	BoundsZ     float64 `toml:"bounds_z"`
	SpawnHeight float64 `toml:"spawn_height"`
	SpawnExtent float64 `toml:"spawn_extent"`
}

type DisplayConfig struct {
	FPS         int     `toml:"fps"`
	FocalLength float64 `toml:"focal_length"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // terminal owns stdout, logs go to a file
}

// Default returns the built-in tuning
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			Gravity:     constants.Gravity,
			Restitution: constants.DefaultRestitution,
			BoundsX:     constants.BoundsX,
			BoundsZ:     constants.BoundsZ,
			SpawnHeight: constants.SpawnHeight,
			SpawnExtent: constants.SpawnExtent,
		},
		Display: DisplayConfig{
			FPS:         30,
			FocalLength: constants.FocalLength,
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "shapebox.log",
		},
	}
}

// Load reads a TOML config file over the defaults. A missing file is
// not an error: defaults apply
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Display.FPS < 1 || c.Display.FPS > 120 {
		return fmt.Errorf("config: fps %d outside [1,120]", c.Display.FPS)
	}
	if c.Sim.Restitution < 0 || c.Sim.Restitution > 1 {
		return fmt.Errorf("config: restitution %v outside [0,1]", c.Sim.Restitution)
	}
	if c.Sim.BoundsX <= 0 || c.Sim.BoundsZ <= 0 {
		return fmt.Errorf("config: bounds must be positive")
	}
	if c.Sim.SpawnExtent < 0 {
		return fmt.Errorf("config: spawn_extent must be non-negative")
	}
	return nil
}
