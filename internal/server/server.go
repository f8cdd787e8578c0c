// Package server runs the planner's HTTP listener under the lifecycle
// coordinator.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/pkg/lifecycle"
)

// System is the HTTP listener.
type System interface {
	// Start binds the listen address and serves until the coordinator's
	// context ends. A bind failure is returned instead of logged.
	Start(lc *lifecycle.Coordinator) error

	// Addr is the bound address once started, else the configured one.
	Addr() string
}

type server struct {
	http            *http.Server
	logger          *slog.Logger
	shutdownTimeout time.Duration
	listener        net.Listener
}

// New creates a server system listening on cfg.Addr().
func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) System {
	return &server{
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeoutDuration(),
			ReadHeaderTimeout: cfg.ReadTimeoutDuration(),
			WriteTimeout:      cfg.WriteTimeoutDuration(),
		},
		logger:          logger.With("system", "server"),
		shutdownTimeout: cfg.ShutdownTimeoutDuration(),
	}
}

func (s *server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.http.Addr
}

func (s *server) Start(lc *lifecycle.Coordinator) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.http.Addr, err)
	}
	s.listener = ln

	go func() {
		s.logger.Info("server listening", "addr", s.Addr())
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		s.logger.Info("shutting down server")

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error("server shutdown error", "error", err)
			return
		}
		s.logger.Info("server shutdown complete")
	})

	return nil
}
