package web

import (
	"io/fs"
	"mime"
	"net/http"
	"path"
)

// PublicRoute is a generated route for a single embedded public file.
type PublicRoute struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
}

// PublicFileRoutes creates GET routes serving each named file from subdir of
// fsys at the root of the URL space (e.g. /site.webmanifest).
func PublicFileRoutes(fsys fs.FS, subdir string, files ...string) []PublicRoute {
	routes := make([]PublicRoute, 0, len(files))
	for _, name := range files {
		routes = append(routes, PublicRoute{
			Method:  http.MethodGet,
			Pattern: "/" + name,
			Handler: servePublicFile(fsys, path.Join(subdir, name)),
		})
	}
	return routes
}

func servePublicFile(fsys fs.FS, name string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
			w.Header().Set("Content-Type", ct)
		}
		w.Write(data)
	}
}
