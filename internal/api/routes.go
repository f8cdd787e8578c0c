package api

import (
	"net/http"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/plans"
	"github.com/JaimeStill/load-planner/pkg/openapi"
	"github.com/JaimeStill/load-planner/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	spec *openapi.Spec,
	domain *Domain,
	cfg *config.Config,
) {
	spec.Components.AddSchemas(catalog.Spec.Schemas())
	spec.Components.AddSchemas(plans.Spec.Schemas())

	routes.Register(
		mux,
		cfg.API.BasePath,
		spec,
		domain.Catalog.Handler().Routes(),
		domain.Plans.Handler().Routes(),
	)
}
