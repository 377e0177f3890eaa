// Package config loads the demo configuration from a YAML file, falling
// back to sensible defaults when the file or individual fields are
// absent.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration for the demo.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Game   GameConfig   `yaml:"game"`
}

// WindowConfig controls the demo window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// GameConfig controls the demo world and sweep.
type GameConfig struct {
	// MapPath loads a JSON map file instead of generating one.
	MapPath string `yaml:"map_path"`
	// Seed drives the map generator when MapPath is empty.
	Seed int64 `yaml:"seed"`
	// MapWidth and MapHeight size the generated map.
	MapWidth  int `yaml:"map_width"`
	MapHeight int `yaml:"map_height"`
	// SightRange bounds the player's field of view in cells.
	SightRange int `yaml:"sight_range"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 800, Title: "hexfield demo"},
		Game: GameConfig{
			Seed:       1,
			MapWidth:   48,
			MapHeight:  36,
			SightRange: 12,
		},
	}
}

// Load reads a config file, filling missing fields from defaults. A
// missing file is not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.fillDefaults()

	return cfg, nil
}

// fillDefaults replaces zero values with defaults so a partial config
// file stays usable.
func (c *Config) fillDefaults() {
	def := Default()
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Game.MapWidth <= 0 {
		c.Game.MapWidth = def.Game.MapWidth
	}
	if c.Game.MapHeight <= 0 {
		c.Game.MapHeight = def.Game.MapHeight
	}
	if c.Game.SightRange <= 0 {
		c.Game.SightRange = def.Game.SightRange
	}
}
