// Package module provides isolated HTTP sub-applications mounted under a
// single-level path prefix. Each module owns its middleware chain and sees
// request paths relative to its prefix.
package module

import (
	"fmt"
	"net/http"
	"strings"
)

// Module is an http.Handler mounted at a fixed prefix.
type Module struct {
	prefix     string
	router     http.Handler
	middleware []func(http.Handler) http.Handler
}

// New creates a Module. The prefix must be a single path segment with a
// leading slash (e.g. "/api"); anything else panics at startup.
func New(prefix string, router http.Handler) *Module {
	if err := ValidatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix: prefix,
		router: router,
	}
}

// Prefix returns the mount prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Use appends middleware. The first registered middleware is outermost.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware = append(m.middleware, mw)
}

// Handler returns the router wrapped in the module middleware chain.
func (m *Module) Handler() http.Handler {
	var h http.Handler = m.router
	for i := len(m.middleware) - 1; i >= 0; i-- {
		h = m.middleware[i](h)
	}
	return h
}

// Serve strips the module prefix from the request path and dispatches
// through the middleware chain.
func (m *Module) Serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, m.prefix)
	if path == "" {
		path = "/"
	}

	req := r.Clone(r.Context())
	req.URL.Path = path
	if r.URL.RawPath != "" {
		req.URL.RawPath = strings.TrimPrefix(r.URL.RawPath, m.prefix)
	}

	m.Handler().ServeHTTP(w, req)
}

// ValidatePrefix reports whether prefix can mount a module: a leading "/"
// followed by one non-empty path segment, such as "/app".
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("module prefix required")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("module prefix must start with /: %s", prefix)
	}
	if prefix == "/" {
		return fmt.Errorf("module prefix cannot be the site root")
	}
	if strings.Count(prefix, "/") != 1 {
		return fmt.Errorf("module prefix must be a single segment: %s", prefix)
	}
	return nil
}
