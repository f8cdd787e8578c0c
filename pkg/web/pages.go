// Package web provides infrastructure for serving server-rendered views.
// Views are declared as an ordered table of ViewDef records, pre-parsed into
// a TemplateSet at startup, and bound to URLs by a ViewRouter.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

// ContentTemplate is the block every view template defines. Layouts include
// it for full pages; fragment requests render it alone.
const ContentTemplate = "content"

// ViewDef binds a URL path to the view template rendered when it matches.
// Name is optional and enables lookup by symbolic name.
type ViewDef struct {
	Route    string
	Name     string
	Template string
	Title    string
	Bundle   string
}

// PageData contains the data passed to view templates during rendering.
// BasePath enables portable URL generation in templates via {{ .BasePath }}.
type PageData struct {
	Title    string
	Bundle   string
	BasePath string
	View     string
	Links    map[string]string
	Data     any
}

// TemplateSet holds pre-parsed templates and a base path for URL generation.
// Templates are parsed once at startup, avoiding per-request overhead.
type TemplateSet struct {
	views    map[string]*template.Template
	basePath string
}

// NewTemplateSet creates a TemplateSet by parsing layout templates and cloning them
// for each view. Parsing at startup fails fast on malformed templates.
func NewTemplateSet(layoutFS, viewFS embed.FS, layoutGlob, viewSubdir, basePath string, views []ViewDef) (*TemplateSet, error) {
	layouts, err := template.ParseFS(layoutFS, layoutGlob)
	if err != nil {
		return nil, err
	}

	viewSub, err := fs.Sub(viewFS, viewSubdir)
	if err != nil {
		return nil, err
	}

	viewTemplates := make(map[string]*template.Template, len(views))
	for _, v := range views {
		if _, ok := viewTemplates[v.Template]; ok {
			continue
		}
		t, err := layouts.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layouts for %s: %w", v.Template, err)
		}
		if _, err := t.ParseFS(viewSub, v.Template); err != nil {
			return nil, fmt.Errorf("parse template: %s: %w", v.Template, err)
		}
		viewTemplates[v.Template] = t
	}

	return &TemplateSet{
		views:    viewTemplates,
		basePath: basePath,
	}, nil
}

// BasePath returns the base path included in all PageData.
func (ts *TemplateSet) BasePath() string {
	return ts.basePath
}

// ErrorHandler returns an HTTP handler that renders an error view with the
// given status code. links feeds the layout navigation and may be nil.
func (ts *TemplateSet) ErrorHandler(layout string, view ViewDef, links map[string]string, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := PageData{
			Title:    view.Title,
			Bundle:   view.Bundle,
			BasePath: ts.basePath,
			View:     view.Name,
			Links:    links,
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		if err := ts.execute(w, layout, view.Template, data); err != nil {
			http.Error(w, http.StatusText(status), status)
		}
	}
}

// PageHandler returns an HTTP handler that renders the given view inside layout.
// dataFn may be nil; otherwise its result is attached as PageData.Data.
func (ts *TemplateSet) PageHandler(layout string, view ViewDef, links map[string]string, dataFn func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.pageData(view, links, r, dataFn)
		if err := ts.Render(w, layout, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// FragmentHandler returns an HTTP handler that renders only the view's
// content block, for clients that swap views in place.
func (ts *TemplateSet) FragmentHandler(view ViewDef, links map[string]string, dataFn func(*http.Request) any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := ts.pageData(view, links, r, dataFn)
		if err := ts.Render(w, ContentTemplate, view.Template, data); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// Render executes the named template from the view's set with the given data.
// It sets the Content-Type header to text/html.
func (ts *TemplateSet) Render(w http.ResponseWriter, name, viewTemplate string, data PageData) error {
	if _, ok := ts.views[viewTemplate]; !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return ts.execute(w, name, viewTemplate, data)
}

func (ts *TemplateSet) execute(w http.ResponseWriter, name, viewTemplate string, data PageData) error {
	t, ok := ts.views[viewTemplate]
	if !ok {
		return fmt.Errorf("template not found: %s", viewTemplate)
	}
	return t.ExecuteTemplate(w, name, data)
}

func (ts *TemplateSet) pageData(view ViewDef, links map[string]string, r *http.Request, dataFn func(*http.Request) any) PageData {
	data := PageData{
		Title:    view.Title,
		Bundle:   view.Bundle,
		BasePath: ts.basePath,
		View:     view.Name,
		Links:    links,
	}
	if dataFn != nil {
		data.Data = dataFn(r)
	}
	return data
}
