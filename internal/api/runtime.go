package api

import (
	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/infrastructure"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination pagination.Config
	Packer     *packing.Packer
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Storage:   infra.Storage,
			Metrics:   infra.Metrics,
		},
		Pagination: cfg.API.Pagination,
		Packer:     packing.New(cfg.Packing.Options()),
	}
}
