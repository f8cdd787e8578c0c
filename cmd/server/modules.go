package main

import (
	"net/http"

	"github.com/JaimeStill/load-planner/internal/api"
	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/infrastructure"
	"github.com/JaimeStill/load-planner/pkg/middleware"
	"github.com/JaimeStill/load-planner/pkg/module"
	"github.com/JaimeStill/load-planner/web/app"
	"github.com/JaimeStill/load-planner/web/scalar"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Modules holds every mounted sub-application.
type Modules struct {
	API    *module.Module
	App    *module.Module
	Scalar *module.Module
}

// NewModules builds the API, app and reference modules.
func NewModules(infra *infrastructure.Infrastructure, httpMetrics *middleware.HTTPMetrics, cfg *config.Config) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra, httpMetrics)
	if err != nil {
		return nil, err
	}

	appModule, err := app.NewModule(app.Options{
		BasePath:      cfg.App.BasePath,
		APIBasePath:   cfg.API.BasePath,
		History:       cfg.App.History,
		ReportEnabled: !cfg.App.VisualizerOnly,
	})
	if err != nil {
		return nil, err
	}
	appModule.Use(middleware.TrimSlash())
	appModule.Use(middleware.Logger(infra.Logger))
	appModule.Use(middleware.Metrics(httpMetrics, "app"))

	scalarModule, err := scalar.NewModule(config.ReferenceBasePath, cfg.API.SpecURL())
	if err != nil {
		return nil, err
	}
	scalarModule.Use(middleware.AddSlash())

	return &Modules{
		API:    apiModule,
		App:    appModule,
		Scalar: scalarModule,
	}, nil
}

// Mount registers every module on router.
func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.Mount(m.App)
	router.Mount(m.Scalar)
}

func buildRouter(infra *infrastructure.Infrastructure, cfg *config.Config) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("NOT READY"))
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("READY"))
	})

	router.HandleNative("GET "+cfg.Metrics.Path, promhttp.HandlerFor(infra.Metrics, promhttp.HandlerOpts{
		Registry: infra.Metrics,
	}).ServeHTTP)

	router.HandleNative("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, cfg.App.BasePath+"/", http.StatusFound)
	})

	return router
}
