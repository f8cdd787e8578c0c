package module

import (
	"net/http"
)

// Router is the top-level handler that hosts native routes (health checks,
// metrics) alongside mounted modules.
type Router struct {
	mux     *http.ServeMux
	modules map[string]*Module
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		mux:     http.NewServeMux(),
		modules: make(map[string]*Module),
	}
}

// HandleNative registers a handler directly on the root mux.
func (r *Router) HandleNative(pattern string, handler http.HandlerFunc) {
	r.mux.HandleFunc(pattern, handler)
}

// Mount registers a module at its prefix. Both "/prefix" and "/prefix/..."
// are routed to the module.
func (r *Router) Mount(m *Module) {
	r.modules[m.Prefix()] = m
	r.mux.HandleFunc(m.Prefix(), m.Serve)
	r.mux.HandleFunc(m.Prefix()+"/", m.Serve)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
