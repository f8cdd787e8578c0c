// Package app provides the browser application module: the view route table,
// embedded templates and assets, and the router that serves them.
package app

import (
	"embed"
	"net/http"

	"github.com/JaimeStill/load-planner/pkg/module"
	"github.com/JaimeStill/load-planner/pkg/web"
)

//go:embed dist/*
var distFS embed.FS

//go:embed public/*
var publicFS embed.FS

//go:embed server/layouts/*
var layoutFS embed.FS

//go:embed server/views/*
var viewFS embed.FS

const layout = "app.html"

// Route names usable with ViewRouter.Href.
const (
	ProductVisualizer = "ProductVisualizer"
	FinalReport       = "FinalReport"
)

var publicFiles = []string{
	"site.webmanifest",
	"robots.txt",
}

var (
	vehicleInputView = web.ViewDef{
		Route:    "/",
		Template: "vehicle_input.html",
		Title:    "Vehicle Input",
		Bundle:   "app",
	}
	productVisualizerView = web.ViewDef{
		Route:    "/visualizer",
		Name:     ProductVisualizer,
		Template: "product_visualizer.html",
		Title:    "Product Visualizer",
		Bundle:   "app",
	}
	finalReportView = web.ViewDef{
		Route:    "/report",
		Name:     FinalReport,
		Template: "final_report.html",
		Title:    "Final Report",
		Bundle:   "app",
	}
)

var notFoundView = web.ViewDef{
	Template: "404.html",
	Title:    "Not Found",
	Bundle:   "app",
}

// Views returns the application route table. The full table serves vehicle
// input, the visualizer and the report; without the report it is the
// visualizer-only variant.
func Views(reportEnabled bool) []web.ViewDef {
	if !reportEnabled {
		return []web.ViewDef{vehicleInputView, productVisualizerView}
	}
	return []web.ViewDef{vehicleInputView, productVisualizerView, finalReportView}
}

// Options configures the app module.
type Options struct {
	BasePath      string
	APIBasePath   string
	History       web.HistoryMode
	ReportEnabled bool
}

// PageData is attached to every rendered view as PageData.Data.
// Fragments is the root fragment URL in hash mode, empty otherwise.
type PageData struct {
	API       string
	History   web.HistoryMode
	Fragments string
}

// NewModule creates the app module configured for the given options.
func NewModule(opts Options) (*module.Module, error) {
	views := Views(opts.ReportEnabled)

	vr, err := web.NewViewRouter(web.ViewRouterConfig{
		History:  opts.History,
		BasePath: opts.BasePath,
		Views:    views,
	})
	if err != nil {
		return nil, err
	}

	ts, err := web.NewTemplateSet(
		layoutFS,
		viewFS,
		"server/layouts/*.html",
		"server/views",
		opts.BasePath,
		append(views, notFoundView),
	)
	if err != nil {
		return nil, err
	}

	router := buildRouter(ts, vr, opts)
	return module.New(opts.BasePath, router), nil
}

func buildRouter(ts *web.TemplateSet, vr *web.ViewRouter, opts Options) http.Handler {
	links := vr.Links()
	data := PageData{API: opts.APIBasePath, History: vr.History()}
	if data.History == web.HistoryHash {
		data.Fragments = vr.FragmentPath("/")
	}
	dataFn := func(*http.Request) any { return data }

	r := web.NewRouter()
	r.SetFallback(ts.ErrorHandler(layout, notFoundView, links, http.StatusNotFound))

	vr.Mount(
		r,
		func(v web.ViewDef) http.HandlerFunc {
			return ts.PageHandler(layout, v, links, dataFn)
		},
		func(v web.ViewDef) http.HandlerFunc {
			return ts.FragmentHandler(v, links, dataFn)
		},
	)

	r.Handle("GET /dist/", http.FileServer(http.FS(distFS)))

	for _, route := range web.PublicFileRoutes(publicFS, "public", publicFiles...) {
		r.HandleFunc(route.Method+" "+route.Pattern, route.Handler)
	}

	return r
}
