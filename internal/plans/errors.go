package plans

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/packing"
)

// Domain errors for plan operations.
var (
	ErrNotFound  = errors.New("plan not found")
	ErrDuplicate = errors.New("plan already exists")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// Plans read the catalog from storage, so a catalog that fails to parse is
// a server fault here even though uploading one is a client error.
func MapHTTPStatus(err error) int {
	if errors.Is(err, catalog.ErrInvalidCatalog) {
		return http.StatusInternalServerError
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, packing.ErrInvalidVehicle) || errors.Is(err, packing.ErrInvalidProduct) {
		return http.StatusBadRequest
	}
	return catalog.MapHTTPStatus(err)
}
