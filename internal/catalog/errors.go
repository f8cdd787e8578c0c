package catalog

import (
	"errors"
	"net/http"
)

// Domain errors for catalog operations.
var (
	ErrCatalogNotFound = errors.New("product catalog not found")
	ErrInvalidCatalog  = errors.New("invalid product catalog")
	ErrCatalogTooLarge = errors.New("product catalog exceeds maximum size")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// A missing catalog is a server-side condition, not a client error.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrInvalidCatalog) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrCatalogTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusInternalServerError
}
