// Package config loads narrow.toml and applies environment overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vito/narrow/pkg/flow"
	"github.com/vito/narrow/pkg/lattice"
)

// FileName is the name of the configuration file looked up by Find.
const FileName = "narrow.toml"

// DefaultMaxNodes bounds a single function pass.
const DefaultMaxNodes = 10000

// Config represents a narrow.toml file.
type Config struct {
	// MaxNodes aborts a function pass over a larger control-flow graph.
	MaxNodes int `toml:"max_nodes"`
	// MaxLoopVisits is the number of propagations through a loop header
	// before bindings widen.
	MaxLoopVisits int `toml:"max_loop_visits"`
	// Workers bounds the number of functions analyzed at once.
	Workers int `toml:"workers"`
	// Strict promotes warnings to failures.
	Strict bool `toml:"strict"`
	// SubtypeCacheSize bounds the subtype memo. Zero disables it.
	SubtypeCacheSize int `toml:"subtype_cache_size"`

	Log LogConfig `toml:"log"`
}

// LogConfig is the [log] table.
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{
		MaxNodes:         DefaultMaxNodes,
		MaxLoopVisits:    flow.DefaultMaxLoopVisits,
		Workers:          runtime.GOMAXPROCS(0),
		SubtypeCacheSize: lattice.DefaultSubtypeCacheSize,
		Log:              LogConfig{Level: "info"},
	}
}

// Load reads a narrow.toml file on top of the defaults.
func Load(path string) (*Config, error) {
	config := Default()
	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("parsing %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return config, nil
}

// Find walks up from dir looking for narrow.toml, stopping at a .git
// boundary. It returns the path and the loaded config, or the defaults and
// an empty path when no file is found.
func Find(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			config, err := Load(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return "", Default(), nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", Default(), nil
		}
		dir = parent
	}
}

// ApplyEnv overrides settings from NARROW_MAX_NODES, NARROW_WORKERS and
// NARROW_STRICT. Unset or empty variables are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv("NARROW_MAX_NODES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARROW_MAX_NODES: %w", err)
		}
		c.MaxNodes = n
	}
	if v := getenv("NARROW_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("NARROW_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := getenv("NARROW_STRICT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("NARROW_STRICT: %w", err)
		}
		c.Strict = b
	}
	return c.Validate()
}

// Validate rejects settings the analyzer cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.MaxNodes < 0:
		return fmt.Errorf("max_nodes must not be negative, got %d", c.MaxNodes)
	case c.MaxLoopVisits < 1:
		return fmt.Errorf("max_loop_visits must be at least 1, got %d", c.MaxLoopVisits)
	case c.Workers < 1:
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	case c.SubtypeCacheSize < 0:
		return fmt.Errorf("subtype_cache_size must not be negative, got %d", c.SubtypeCacheSize)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level is info.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if c.Log.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return level, nil
}

// UniverseOptions returns the lattice options the config implies.
func (c *Config) UniverseOptions() []lattice.Option {
	return []lattice.Option{lattice.WithSubtypeCacheSize(c.SubtypeCacheSize)}
}

// FlowOptions returns the propagator options the config implies.
func (c *Config) FlowOptions() flow.Options {
	return flow.Options{MaxNodes: c.MaxNodes, MaxLoopVisits: c.MaxLoopVisits}
}
