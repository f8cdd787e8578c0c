package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

const (
	EnvMetricsNamespace = "METRICS_NAMESPACE"
	EnvMetricsPath      = "METRICS_PATH"
)

var namespacePattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// MetricsConfig controls the Prometheus exposition endpoint.
type MetricsConfig struct {
	Namespace string `toml:"namespace"`
	Path      string `toml:"path"`
}

// Finalize applies defaults, loads environment overrides, and validates the metrics configuration.
func (c *MetricsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *MetricsConfig) Merge(overlay *MetricsConfig) {
	if overlay.Namespace != "" {
		c.Namespace = overlay.Namespace
	}
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
}

func (c *MetricsConfig) loadDefaults() {
	if c.Namespace == "" {
		c.Namespace = "load_planner"
	}
	if c.Path == "" {
		c.Path = "/metrics"
	}
}

func (c *MetricsConfig) loadEnv() {
	if v := os.Getenv(EnvMetricsNamespace); v != "" {
		c.Namespace = v
	}
	if v := os.Getenv(EnvMetricsPath); v != "" {
		c.Path = v
	}
}

func (c *MetricsConfig) validate() error {
	if !namespacePattern.MatchString(c.Namespace) {
		return fmt.Errorf("invalid namespace: %q", c.Namespace)
	}
	if !strings.HasPrefix(c.Path, "/") {
		return fmt.Errorf("path must start with /: %q", c.Path)
	}
	return nil
}
