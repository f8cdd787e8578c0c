package plans

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/pkg/handlers"
	"github.com/JaimeStill/load-planner/pkg/pagination"
	"github.com/JaimeStill/load-planner/pkg/routes"
	"github.com/google/uuid"
)

// VehicleAccepted is the acknowledgement returned for valid vehicle dimensions.
const VehicleAccepted = "Vehicle dimensions received successfully"

// Handler provides HTTP endpoints for packing and stored plans.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a plan handler with the specified configuration.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "plans"),
		pagination: pagination,
	}
}

// Routes returns the packing endpoints with the plan group nested beneath.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Packing"},
		Description: "Vehicle intake and packing",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/vehicle", Handler: h.Vehicle, OpenAPI: Spec.Vehicle},
			{Method: "POST", Pattern: "/pack", Handler: h.Pack, OpenAPI: Spec.Pack},
		},
		Children: []routes.Group{
			{
				Prefix:      "/plans",
				Tags:        []string{"Plans"},
				Description: "Stored load plans",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
					{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
					{Method: "POST", Pattern: "", Handler: h.Create, OpenAPI: Spec.Create},
					{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete},
				},
			},
		},
	}
}

func (h *Handler) Vehicle(w http.ResponseWriter, r *http.Request) {
	var vehicle packing.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := vehicle.Validate(); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, MessageResponse{Message: VehicleAccepted})
}

func (h *Handler) Pack(w http.ResponseWriter, r *http.Request) {
	var vehicle packing.Vehicle
	if err := json.NewDecoder(r.Body).Decode(&vehicle); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	plan, err := h.sys.Create(r.Context(), CreateCommand{Vehicle: vehicle})
	if err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PackResponse{
		PlanID:      plan.ID,
		PackedItems: plan.Placements,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	plan, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, plan)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd CreateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	plan, err := h.sys.Create(r.Context(), cmd)
	if err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, plan)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, r, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondMapped(w, r, h.logger, err, MapHTTPStatus)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
