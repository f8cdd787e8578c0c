// Package api assembles the JSON API module: domain systems, their routes,
// the generated OpenAPI document, and the module middleware chain.
package api

import (
	"net/http"

	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/infrastructure"
	"github.com/JaimeStill/load-planner/pkg/middleware"
	"github.com/JaimeStill/load-planner/pkg/module"
	"github.com/JaimeStill/load-planner/pkg/openapi"
)

// NewModule builds the API module mounted at cfg.API.BasePath. Request
// metrics are recorded under the "api" module label when httpMetrics is non-nil.
func NewModule(
	cfg *config.Config,
	infra *infrastructure.Infrastructure,
	httpMetrics *middleware.HTTPMetrics,
) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)
	domain, err := NewDomain(runtime, cfg)
	if err != nil {
		return nil, err
	}

	spec := openapi.NewSpec(cfg.API.OpenAPI.Title, cfg.Version)
	spec.AddServer(cfg.Domain)
	cfg.API.OpenAPI.Apply(spec)

	mux := http.NewServeMux()
	registerRoutes(mux, spec, domain, cfg)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return nil, err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.TrimSlash())
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	if httpMetrics != nil {
		m.Use(middleware.Metrics(httpMetrics, "api"))
	}

	return m, nil
}
