package main

import (
	"time"

	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/infrastructure"
	"github.com/JaimeStill/load-planner/internal/server"
	"github.com/JaimeStill/load-planner/pkg/middleware"
)

// Server wires infrastructure, modules and the HTTP listener together.
type Server struct {
	infra           *infrastructure.Infrastructure
	modules         *Modules
	http            server.System
	shutdownTimeout time.Duration
}

// NewServer builds every system from cfg without starting any of them.
func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, err
	}

	httpMetrics, err := middleware.NewHTTPMetrics(infra.Metrics, cfg.Metrics.Namespace)
	if err != nil {
		return nil, err
	}

	modules, err := NewModules(infra, httpMetrics, cfg)
	if err != nil {
		return nil, err
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)

	infra.Logger.Info(
		"server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"env", cfg.Env(),
		"history", cfg.App.History,
		"visualizer_only", cfg.App.VisualizerOnly,
	)

	return &Server{
		infra:           infra,
		modules:         modules,
		http:            server.New(&cfg.Server, router, infra.Logger),
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}, nil
}

// Start brings up infrastructure and the listener, then waits in the
// background for startup hooks before reporting ready.
func (s *Server) Start() error {
	s.infra.Logger.Info("starting service")

	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		s.infra.Lifecycle.Shutdown(s.shutdownTimeout)
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	return nil
}

// Shutdown cancels the lifecycle context and waits for shutdown hooks.
func (s *Server) Shutdown(timeout time.Duration) error {
	s.infra.Logger.Info("initiating shutdown")
	return s.infra.Lifecycle.Shutdown(timeout)
}
