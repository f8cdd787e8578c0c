package middleware

import (
	"net/http"
	"net/url"
	"strings"
)

// AddSlash returns middleware that redirects requests without trailing slashes
// to their canonical form with a slash, unless the path has a file extension.
func AddSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := requestPath(r)
			if !strings.HasSuffix(path, "/") && !hasFileExtension(path) {
				redirect(w, r, path+"/")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// TrimSlash returns middleware that redirects requests with trailing slashes
// to their canonical form without the slash. The root path "/" is preserved.
func TrimSlash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(r.URL.Path) > 1 && strings.HasSuffix(r.URL.Path, "/") {
				redirect(w, r, strings.TrimSuffix(requestPath(r), "/"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func redirect(w http.ResponseWriter, r *http.Request, target string) {
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusMovedPermanently)
}

// requestPath returns the path the client actually requested. Modules rewrite
// r.URL.Path relative to their prefix, so redirects are built from RequestURI.
func requestPath(r *http.Request) string {
	if r.RequestURI != "" {
		if u, err := url.ParseRequestURI(r.RequestURI); err == nil {
			return u.Path
		}
	}
	return r.URL.Path
}

func hasFileExtension(path string) bool {
	lastSlash := strings.LastIndex(path, "/")
	lastDot := strings.LastIndex(path, ".")
	return lastDot > lastSlash
}
