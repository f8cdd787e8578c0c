package catalog

import (
	"fmt"
	"os"

	"github.com/docker/go-units"
)

// Config locates the catalog document and bounds its size.
type Config struct {
	// Key is the storage key of the catalog document.
	// Default: "catalog/products.json"
	Key string `toml:"key"`

	// MaxSize limits uploaded catalogs, in human-readable form.
	// Default: "5MB"
	MaxSize    string `toml:"max_size"`
	maxSizeVal int64
}

// Env maps environment variable names for catalog configuration.
type Env struct {
	Key     string
	MaxSize string
}

// MaxSizeBytes returns the parsed size limit. Valid after Finalize.
func (c *Config) MaxSizeBytes() int64 {
	return c.maxSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the configuration.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

// Merge applies non-zero values from overlay onto the receiver.
func (c *Config) Merge(overlay *Config) {
	if overlay.Key != "" {
		c.Key = overlay.Key
	}
	if overlay.MaxSize != "" {
		c.MaxSize = overlay.MaxSize
	}
}

func (c *Config) loadDefaults() {
	if c.Key == "" {
		c.Key = "catalog/products.json"
	}
	if c.MaxSize == "" {
		c.MaxSize = "5MB"
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.Key != "" {
		if v := os.Getenv(env.Key); v != "" {
			c.Key = v
		}
	}
	if env.MaxSize != "" {
		if v := os.Getenv(env.MaxSize); v != "" {
			c.MaxSize = v
		}
	}
}

func (c *Config) validate() error {
	size, err := units.FromHumanSize(c.MaxSize)
	if err != nil {
		return fmt.Errorf("invalid max_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_size must be positive")
	}
	c.maxSizeVal = size
	return nil
}
