package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/recursive_art/pkg/pool"
	"github.com/wildfunctions/recursive_art/pkg/strategy"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all parameters for generating one image.
type Config struct {
	Width      int     `json:"width" toml:"width" yaml:"width"`
	Height     int     `json:"height" toml:"height" yaml:"height"`
	MinDepth   int     `json:"min_depth" toml:"min_depth" yaml:"min_depth"`
	MaxDepth   int     `json:"max_depth" toml:"max_depth" yaml:"max_depth"`
	Extend     float64 `json:"extend" toml:"extend" yaml:"extend"`
	Pool       string  `json:"pool" toml:"pool" yaml:"pool"`
	Seed       int64   `json:"seed" toml:"seed" yaml:"seed"`
	Workers    int     `json:"workers" toml:"workers" yaml:"workers"`
	Strategy   string  `json:"strategy,omitempty" toml:"strategy" yaml:"strategy"` // "" = no variation
	Variations int     `json:"variations,omitempty" toml:"variations" yaml:"variations"`
	Format     string  `json:"format" toml:"format" yaml:"format"` // "text" or "json"
	Verbose    bool    `json:"verbose" toml:"verbose" yaml:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Width:      350,
		Height:     350,
		MinDepth:   7,
		MaxDepth:   9,
		Extend:     0,
		Pool:       "classic",
		Seed:       0, // 0 = random
		Workers:    runtime.NumCPU(),
		Strategy:   "",
		Variations: 1,
		Format:     "text",
		Verbose:    false,
	}
}

// Validate reports the first problem with c, wrapping ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Width < 1 || c.Height < 1:
		return fmt.Errorf("engine: image size %dx%d: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.MinDepth < 0 || c.MaxDepth < c.MinDepth:
		return fmt.Errorf("engine: depth range [%d, %d]: %w: %w", c.MinDepth, c.MaxDepth, ErrInvalidConfig, pool.ErrInvalidDepthRange)
	case c.Extend < 0 || c.Extend > 1:
		return fmt.Errorf("engine: extend %v not in [0, 1]: %w", c.Extend, ErrInvalidConfig)
	case c.Variations < 0:
		return fmt.Errorf("engine: variations %d: %w", c.Variations, ErrInvalidConfig)
	case c.Format != "text" && c.Format != "json":
		return fmt.Errorf("engine: format %q (want text or json): %w", c.Format, ErrInvalidConfig)
	}
	if _, err := pool.Get(c.Pool); err != nil {
		return fmt.Errorf("engine: %w (available: %v): %w", err, pool.Names(), ErrInvalidConfig)
	}
	if c.Strategy != "" {
		if _, err := strategy.Get(c.Strategy); err != nil {
			return fmt.Errorf("engine: %w (available: %v): %w", err, strategy.Names(), ErrInvalidConfig)
		}
	}
	return nil
}

// LoadConfig decodes the TOML or YAML file at path over cfg. Keys missing
// from the file keep their current values; unknown keys are an error.
func LoadConfig(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("engine: reading config: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(cfg); err != nil {
			return fmt.Errorf("engine: decoding %s: %w", path, err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("engine: decoding %s: %w", path, err)
		}
	default:
		return fmt.Errorf("engine: config %s: unsupported extension %q (want .toml, .yaml or .yml)", path, ext)
	}
	return nil
}
