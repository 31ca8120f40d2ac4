// Package config loads and saves huegen's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultFilename is the config file huegen looks for in the working
// directory and under the user config dir.
const DefaultFilename = "huegen.toml"

// Generate holds defaults for colourset generation.
type Generate struct {
	// Hue is the base hue in degrees [0, 360]; 360 means grey.
	Hue int `toml:"hue"`
	// Shade is the lightness class 1..4; 0 picks one at random.
	Shade int `toml:"shade"`
	// Count is the total number of coloursets to produce, base included.
	Count int `toml:"count"`
	// Seed seeds the random source; 0 means seed from the clock.
	Seed int64 `toml:"seed"`
}

// Template names one substitution job for the apply command.
type Template struct {
	Name        string `toml:"name"`
	Source      string `toml:"source"`
	Destination string `toml:"destination"`
}

// Config is the full huegen configuration.
type Config struct {
	Generate  Generate   `toml:"generate"`
	Templates []Template `toml:"template"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Generate: Generate{
			Hue:   240,
			Shade: 0,
			Count: 4,
		},
	}
}

// Load reads a config file. A missing file is not an error: it yields the
// defaults, so the tool works with no setup.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 - config path supplied by the user
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path, creating parent directories as needed.
func Save(cfg *Config, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
	}

	f, err := os.Create(path) // #nosec G304 - config path supplied by the user
	if err != nil {
		return fmt.Errorf("failed to create config: %w", err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

func (c *Config) validate() error {
	if c.Generate.Hue < 0 || c.Generate.Hue > 360 {
		return fmt.Errorf("generate.hue %d outside [0, 360]", c.Generate.Hue)
	}
	if c.Generate.Count < 1 {
		return fmt.Errorf("generate.count must be at least 1, got %d", c.Generate.Count)
	}
	for _, t := range c.Templates {
		if t.Source == "" {
			return fmt.Errorf("template %q has no source", t.Name)
		}
		if t.Destination == "" {
			return fmt.Errorf("template %q has no destination", t.Name)
		}
	}
	return nil
}
