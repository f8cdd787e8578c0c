package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/load-planner/pkg/module"
	"github.com/JaimeStill/load-planner/pkg/web"
)

const (
	EnvAppBasePath       = "APP_BASE_PATH"
	EnvAppHistory        = "APP_HISTORY"
	EnvAppVisualizerOnly = "APP_VISUALIZER_ONLY"
)

// AppConfig controls the browser application: where it is mounted, how view
// URLs are formed, and which route table variant is served.
type AppConfig struct {
	BasePath string          `toml:"base_path"`
	History  web.HistoryMode `toml:"history"`

	// VisualizerOnly serves the reduced route table without the report view.
	VisualizerOnly bool `toml:"visualizer_only"`
}

// Finalize applies defaults, loads environment overrides, and validates the app configuration.
func (c *AppConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *AppConfig) Merge(overlay *AppConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.History != "" {
		c.History = overlay.History
	}
	if overlay.VisualizerOnly {
		c.VisualizerOnly = true
	}
}

func (c *AppConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/app"
	}
	if c.History == "" {
		c.History = web.HistoryWeb
	}
}

func (c *AppConfig) loadEnv() {
	if v := os.Getenv(EnvAppBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAppHistory); v != "" {
		c.History = web.HistoryMode(v)
	}
	if v := os.Getenv(EnvAppVisualizerOnly); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.VisualizerOnly = b
		}
	}
}

func (c *AppConfig) validate() error {
	if err := module.ValidatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}
	return c.History.Validate()
}
