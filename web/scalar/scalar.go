// Package scalar serves the interactive API reference using Scalar UI. The
// page loads the OpenAPI document published by the API module.
package scalar

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/JaimeStill/load-planner/pkg/module"
)

//go:embed index.html
var indexHTML string

var indexTemplate = template.Must(template.New("index").Parse(indexHTML))

// NewModule creates the reference module at prefix. specURL is the absolute
// path of the OpenAPI document, e.g. /api/openapi.json.
func NewModule(prefix, specURL string) (*module.Module, error) {
	var page bytes.Buffer
	if err := indexTemplate.Execute(&page, struct{ SpecURL string }{specURL}); err != nil {
		return nil, err
	}
	body := page.Bytes()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	})

	return module.New(prefix, mux), nil
}
