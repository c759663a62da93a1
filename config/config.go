// Package config loads the tunable capacities of a cellisp interpreter
// context (arena size, sink depth) from an optional small declarative
// YAML document.
package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Default capacities, used when no config file overrides them.
const (
	DefaultMaxCells    = 1024
	DefaultMaxSinkSize = 1024
)

// Config describes the tunable limits of an interpreter context.
type Config struct {
	// MaxCells is the arena's fixed capacity in cells.
	MaxCells int `json:"maxCells"`
	// MaxSinkSize bounds the GC-root sink stack.
	MaxSinkSize int `json:"maxSinkSize"`
}

// Default returns the compiled-in defaults.
func Default() Config {
	return Config{
		MaxCells:    DefaultMaxCells,
		MaxSinkSize: DefaultMaxSinkSize,
	}
}

// Load reads a YAML config document from path and overlays any set
// fields on top of the compiled-in defaults. An empty path returns the
// defaults unchanged; a path that cannot be read or parsed is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	var overlay Config
	if err := yaml.Unmarshal(buf, &overlay); err != nil {
		return cfg, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if overlay.MaxCells > 0 {
		cfg.MaxCells = overlay.MaxCells
	}
	if overlay.MaxSinkSize > 0 {
		cfg.MaxSinkSize = overlay.MaxSinkSize
	}
	return cfg, nil
}
