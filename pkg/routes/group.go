// Package routes provides declarative route groups that register handlers on
// a ServeMux and document themselves in an OpenAPI specification.
package routes

import (
	"net/http"

	"github.com/JaimeStill/load-planner/pkg/openapi"
)

// Group represents a collection of routes under a common URL prefix.
// Groups can contain child groups for hierarchical route organization.
type Group struct {
	Prefix      string
	Tags        []string
	Description string
	Routes      []Route
	Children    []Group
}

// Route represents an HTTP route with method, pattern, and handler.
// Routes without an OpenAPI operation are registered but left undocumented.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}
