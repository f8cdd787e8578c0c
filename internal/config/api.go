package config

import (
	"fmt"
	"os"

	"github.com/JaimeStill/load-planner/pkg/middleware"
	"github.com/JaimeStill/load-planner/pkg/module"
	"github.com/JaimeStill/load-planner/pkg/openapi"
	"github.com/JaimeStill/load-planner/pkg/pagination"
)

// ReferenceBasePath mounts the interactive API reference.
const ReferenceBasePath = "/scalar"

const EnvAPIBasePath = "API_BASE_PATH"

var corsEnv = &middleware.CORSEnv{
	Enabled:          "API_CORS_ENABLED",
	Origins:          "API_CORS_ORIGINS",
	AllowedMethods:   "API_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "API_CORS_ALLOWED_HEADERS",
	AllowCredentials: "API_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "API_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "API_OPENAPI_TITLE",
	Description: "API_OPENAPI_DESCRIPTION",
	Servers:     "API_OPENAPI_SERVERS",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "API_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "API_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig controls the JSON API module: its mount point, CORS policy,
// plan listing page sizes and the published OpenAPI document.
type APIConfig struct {
	BasePath   string                `toml:"base_path"`
	CORS       middleware.CORSConfig `toml:"cors"`
	Pagination pagination.Config     `toml:"pagination"`
	OpenAPI    openapi.Config        `toml:"openapi"`
}

func (c *APIConfig) Finalize() error {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}

	if err := module.ValidatePrefix(c.BasePath); err != nil {
		return fmt.Errorf("base_path: %w", err)
	}
	if c.BasePath == ReferenceBasePath {
		return fmt.Errorf("base_path %s is reserved for the API reference", ReferenceBasePath)
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	c.CORS.Merge(&overlay.CORS)
	c.Pagination.Merge(&overlay.Pagination)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

// SpecURL is where the generated OpenAPI document is served.
func (c *APIConfig) SpecURL() string {
	return c.BasePath + "/openapi.json"
}
