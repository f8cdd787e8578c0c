package logging

import (
	"os"
	"strconv"
	"strings"
)

// DefaultService is attached to every record as the "service" attribute.
const DefaultService = "load-planner"

// Env maps environment variable names for logging configuration.
type Env struct {
	Level     string
	Format    string
	Service   string
	AddSource string
}

// Config holds logging configuration settings. Level and Format are matched
// case-insensitively.
type Config struct {
	Level     Level  `toml:"level"`
	Format    Format `toml:"format"`
	Service   string `toml:"service"`
	AddSource bool   `toml:"add_source"`
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	c.Level = Level(strings.ToLower(string(c.Level)))
	c.Format = Format(strings.ToLower(string(c.Format)))
	if err := c.Level.Validate(); err != nil {
		return err
	}
	return c.Format.Validate()
}

// Merge applies non-zero values from the overlay configuration. AddSource
// can only be switched on by an overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Level != "" {
		c.Level = overlay.Level
	}
	if overlay.Format != "" {
		c.Format = overlay.Format
	}
	if overlay.Service != "" {
		c.Service = overlay.Service
	}
	c.AddSource = c.AddSource || overlay.AddSource
}

func (c *Config) loadDefaults() {
	if c.Level == "" {
		c.Level = LevelInfo
	}
	if c.Format == "" {
		c.Format = FormatText
	}
	if c.Service == "" {
		c.Service = DefaultService
	}
}

func (c *Config) loadEnv(env *Env) {
	if v := lookup(env.Level); v != "" {
		c.Level = Level(v)
	}
	if v := lookup(env.Format); v != "" {
		c.Format = Format(v)
	}
	if v := lookup(env.Service); v != "" {
		c.Service = v
	}
	if v := lookup(env.AddSource); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.AddSource = b
		}
	}
}

func lookup(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
