package openapi

import (
	"fmt"
	"net/url"
	"os"
	"slices"
	"strings"
)

// Config describes the published API document: its title, description and
// any server URLs advertised in addition to the service's own domain.
type Config struct {
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	Servers     []string `toml:"servers"`
}

// ConfigEnv maps environment variable names for OpenAPI configuration.
// Servers is read as a comma-separated list.
type ConfigEnv struct {
	Title       string
	Description string
	Servers     string
}

func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return c.validate()
}

func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
	if len(overlay.Servers) > 0 {
		c.Servers = overlay.Servers
	}
}

// Apply writes the description and server list onto spec. Servers already
// present on spec are not repeated.
func (c *Config) Apply(spec *Spec) {
	spec.SetDescription(c.Description)
	for _, s := range c.Servers {
		if slices.ContainsFunc(spec.Servers, func(v *Server) bool { return v.URL == s }) {
			continue
		}
		spec.AddServer(s)
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Load Planner API"
	}
	if c.Description == "" {
		c.Description = "Vehicle load planning: product catalog, packing plans and reports."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	if v := getenv(env.Title); v != "" {
		c.Title = v
	}
	if v := getenv(env.Description); v != "" {
		c.Description = v
	}
	if v := getenv(env.Servers); v != "" {
		c.Servers = nil
		for s := range strings.SplitSeq(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				c.Servers = append(c.Servers, s)
			}
		}
	}
}

// validate accepts absolute http(s) URLs and root-relative paths.
func (c *Config) validate() error {
	for _, s := range c.Servers {
		if strings.HasPrefix(s, "/") {
			continue
		}
		u, err := url.Parse(s)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("invalid server url: %q", s)
		}
	}
	return nil
}

func getenv(name string) string {
	if name == "" {
		return ""
	}
	return os.Getenv(name)
}
