package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/load-planner/internal/packing"
)

const (
	EnvPackingBatches             = "PACKING_BATCHES"
	EnvPackingPaddingPerFragility = "PACKING_PADDING_PER_FRAGILITY"
	EnvPackingPrecision           = "PACKING_PRECISION"
)

// PackingConfig tunes the packing engine. Zero values select the engine defaults.
type PackingConfig struct {
	Batches             int     `toml:"batches"`
	PaddingPerFragility float64 `toml:"padding_per_fragility"`
	Precision           int     `toml:"precision"`
}

// Options converts the configuration to engine options.
func (c *PackingConfig) Options() packing.Options {
	return packing.Options{
		Batches:             c.Batches,
		PaddingPerFragility: c.PaddingPerFragility,
		Precision:           c.Precision,
	}
}

// Finalize applies defaults, loads environment overrides, and validates the packing configuration.
func (c *PackingConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *PackingConfig) Merge(overlay *PackingConfig) {
	if overlay.Batches != 0 {
		c.Batches = overlay.Batches
	}
	if overlay.PaddingPerFragility != 0 {
		c.PaddingPerFragility = overlay.PaddingPerFragility
	}
	if overlay.Precision != 0 {
		c.Precision = overlay.Precision
	}
}

func (c *PackingConfig) loadDefaults() {
	if c.Batches == 0 {
		c.Batches = packing.DefaultBatches
	}
	if c.PaddingPerFragility == 0 {
		c.PaddingPerFragility = packing.DefaultPaddingPerFragility
	}
	if c.Precision == 0 {
		c.Precision = packing.DefaultPrecision
	}
}

func (c *PackingConfig) loadEnv() {
	if v := os.Getenv(EnvPackingBatches); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Batches = n
		}
	}
	if v := os.Getenv(EnvPackingPaddingPerFragility); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.PaddingPerFragility = f
		}
	}
	if v := os.Getenv(EnvPackingPrecision); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Precision = n
		}
	}
}

func (c *PackingConfig) validate() error {
	if c.Batches < 1 {
		return fmt.Errorf("batches must be positive")
	}
	if c.PaddingPerFragility < 0 {
		return fmt.Errorf("padding_per_fragility must not be negative")
	}
	if c.Precision < 0 || c.Precision > 6 {
		return fmt.Errorf("precision must be between 0 and 6")
	}
	return nil
}
