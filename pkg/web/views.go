package web

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// HistoryMode selects how view URLs map onto server routes.
type HistoryMode string

const (
	// HistoryWeb serves every view at its own path (HTML5 history).
	HistoryWeb HistoryMode = "web"

	// HistoryHash serves a single shell at the base path; views are
	// addressed by URL fragment (#/path) and loaded as fragments.
	HistoryHash HistoryMode = "hash"
)

// FragmentPrefix is the route prefix serving view fragments in hash mode.
const FragmentPrefix = "/views/"

// Validate checks that the mode is supported.
func (m HistoryMode) Validate() error {
	switch m {
	case HistoryWeb, HistoryHash:
		return nil
	default:
		return fmt.Errorf("invalid history mode: %s (must be web or hash)", m)
	}
}

var (
	// ErrRouteNotFound is returned when a name or path has no bound view.
	ErrRouteNotFound = errors.New("route not found")

	// ErrInvalidRoute is returned when a view table fails validation.
	ErrInvalidRoute = errors.New("invalid route")
)

// ViewRouterConfig is the input to NewViewRouter.
type ViewRouterConfig struct {
	History  HistoryMode
	BasePath string
	Views    []ViewDef
}

// ViewRouter resolves URL paths and symbolic names against an immutable view
// table. It is safe for concurrent use.
type ViewRouter struct {
	history  HistoryMode
	basePath string
	views    []ViewDef
	byPath   map[string]int
	byName   map[string]int
}

// NewViewRouter validates the view table and builds a router from it.
// An empty History defaults to HistoryWeb. The table is copied, so later
// changes to cfg.Views do not affect the router.
func NewViewRouter(cfg ViewRouterConfig) (*ViewRouter, error) {
	history := cfg.History
	if history == "" {
		history = HistoryWeb
	}
	if err := history.Validate(); err != nil {
		return nil, err
	}

	vr := &ViewRouter{
		history:  history,
		basePath: strings.TrimSuffix(cfg.BasePath, "/"),
		views:    make([]ViewDef, len(cfg.Views)),
		byPath:   make(map[string]int, len(cfg.Views)),
		byName:   make(map[string]int, len(cfg.Views)),
	}
	copy(vr.views, cfg.Views)

	for i, v := range vr.views {
		if !strings.HasPrefix(v.Route, "/") {
			return nil, fmt.Errorf("%w: path must start with /: %q", ErrInvalidRoute, v.Route)
		}
		if v.Template == "" {
			return nil, fmt.Errorf("%w: no template for %s", ErrInvalidRoute, v.Route)
		}

		key := normalizePath(v.Route)
		if _, ok := vr.byPath[key]; ok {
			return nil, fmt.Errorf("%w: duplicate path %s", ErrInvalidRoute, v.Route)
		}
		vr.byPath[key] = i

		if v.Name == "" {
			continue
		}
		if _, ok := vr.byName[v.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate name %s", ErrInvalidRoute, v.Name)
		}
		vr.byName[v.Name] = i
	}

	return vr, nil
}

// History returns the active history mode.
func (vr *ViewRouter) History() HistoryMode {
	return vr.history
}

// Views returns a copy of the ordered view table.
func (vr *ViewRouter) Views() []ViewDef {
	out := make([]ViewDef, len(vr.views))
	copy(out, vr.views)
	return out
}

// Resolve returns the view bound to path. The base path, when present, is
// stripped first; a trailing slash is ignored.
func (vr *ViewRouter) Resolve(path string) (ViewDef, bool) {
	if vr.basePath != "" && (path == vr.basePath || strings.HasPrefix(path, vr.basePath+"/")) {
		path = strings.TrimPrefix(path, vr.basePath)
	}
	i, ok := vr.byPath[normalizePath(path)]
	if !ok {
		return ViewDef{}, false
	}
	return vr.views[i], true
}

// ResolveName returns the view registered under name.
func (vr *ViewRouter) ResolveName(name string) (ViewDef, bool) {
	i, ok := vr.byName[name]
	if !ok {
		return ViewDef{}, false
	}
	return vr.views[i], true
}

// Href returns the browser URL of a named view in the active history mode.
func (vr *ViewRouter) Href(name string) (string, error) {
	v, ok := vr.ResolveName(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrRouteNotFound, name)
	}
	return vr.HrefPath(v.Route), nil
}

// HrefPath returns the browser URL for a view path in the active history mode.
func (vr *ViewRouter) HrefPath(path string) string {
	path = normalizePath(path)
	if vr.history == HistoryHash {
		return vr.basePath + "/#" + path
	}
	if path == "/" {
		return vr.basePath + "/"
	}
	return vr.basePath + path
}

// FragmentPath returns the URL a hash-mode shell fetches to render the view
// at path. The root view is served at the bare fragment prefix so the URL
// carries no trailing slash.
func (vr *ViewRouter) FragmentPath(path string) string {
	path = normalizePath(path)
	prefix := vr.basePath + strings.TrimSuffix(FragmentPrefix, "/")
	if path == "/" {
		return prefix
	}
	return prefix + path
}

// Links returns the Href of every named view, keyed by name. The root view
// is always present under "root".
func (vr *ViewRouter) Links() map[string]string {
	links := make(map[string]string, len(vr.byName)+1)
	links["root"] = vr.HrefPath("/")
	for name := range vr.byName {
		href, _ := vr.Href(name)
		links[name] = href
	}
	return links
}

// Mount registers the view table on r. In web mode each view path becomes a
// GET route rendered by page. In hash mode only the shell is served at the
// root by page(root view), and every view is served by fragment at its
// FragmentPath. The root fragment answers both with and without the
// trailing slash.
func (vr *ViewRouter) Mount(r *Router, page, fragment func(ViewDef) http.HandlerFunc) {
	switch vr.history {
	case HistoryHash:
		if root, ok := vr.Resolve("/"); ok {
			r.HandleFunc("GET /{$}", page(root))
			r.HandleFunc("GET "+strings.TrimSuffix(FragmentPrefix, "/"), fragment(root))
		}
		r.HandleFunc("GET "+FragmentPrefix+"{path...}", func(w http.ResponseWriter, req *http.Request) {
			v, ok := vr.Resolve("/" + req.PathValue("path"))
			if !ok {
				http.NotFound(w, req)
				return
			}
			fragment(v)(w, req)
		})
	default:
		for _, v := range vr.views {
			r.HandleFunc("GET "+muxPattern(v.Route), page(v))
		}
	}
}

func muxPattern(route string) string {
	if normalizePath(route) == "/" {
		return "/{$}"
	}
	return normalizePath(route)
}

func normalizePath(path string) string {
	if path == "" {
		return "/"
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
