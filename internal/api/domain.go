package api

import (
	"fmt"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/plans"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Catalog catalog.System
	Plans   plans.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime, cfg *config.Config) (*Domain, error) {
	catalogSys := catalog.New(
		runtime.Storage,
		&cfg.Catalog,
		runtime.Logger,
	)

	planMetrics, err := plans.NewMetrics(runtime.Metrics, cfg.Metrics.Namespace)
	if err != nil {
		return nil, fmt.Errorf("plan metrics: %w", err)
	}

	plansSys := plans.New(
		runtime.Database.Connection(),
		catalogSys,
		runtime.Packer,
		planMetrics,
		runtime.Logger,
		runtime.Pagination,
	)

	return &Domain{
		Catalog: catalogSys,
		Plans:   plansSys,
	}, nil
}
