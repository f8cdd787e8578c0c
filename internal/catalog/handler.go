package catalog

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/load-planner/pkg/handlers"
	"github.com/JaimeStill/load-planner/pkg/routes"
)

// Handler provides HTTP endpoints for the product catalog.
type Handler struct {
	sys     System
	logger  *slog.Logger
	maxSize int64
}

// NewHandler creates a catalog handler that rejects bodies over maxSize bytes.
func NewHandler(sys System, logger *slog.Logger, maxSize int64) *Handler {
	return &Handler{
		sys:     sys,
		logger:  logger.With("handler", "catalog"),
		maxSize: maxSize,
	}
}

// Routes returns the catalog endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/products",
		Tags:        []string{"Catalog"},
		Description: "Products awaiting loading",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "PUT", Pattern: "", Handler: h.Replace, OpenAPI: Spec.Replace},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, products)
}

func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxSize))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			handlers.RespondError(w, r, h.logger, http.StatusRequestEntityTooLarge, ErrCatalogTooLarge)
			return
		}
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	products, err := h.sys.Replace(r.Context(), data)
	if err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, products)
}
