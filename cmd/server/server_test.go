package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/load-planner/internal/config"
	"github.com/JaimeStill/load-planner/internal/infrastructure"
	"github.com/JaimeStill/load-planner/pkg/middleware"
	"github.com/JaimeStill/load-planner/pkg/module"
)

func testConfig(t *testing.T, visualizerOnly bool) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Database.Name = "load_planner"
	cfg.Database.User = "planner"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Logging.Level = "error"
	cfg.App.VisualizerOnly = visualizerOnly
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func testRouter(t *testing.T, cfg *config.Config) (*module.Router, *infrastructure.Infrastructure) {
	t.Helper()
	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}
	t.Cleanup(func() { infra.Database.Connection().Close() })

	httpMetrics, err := middleware.NewHTTPMetrics(infra.Metrics, cfg.Metrics.Namespace)
	if err != nil {
		t.Fatal(err)
	}
	modules, err := NewModules(infra, httpMetrics, cfg)
	if err != nil {
		t.Fatalf("NewModules() error = %v", err)
	}

	router := buildRouter(infra, cfg)
	modules.Mount(router)
	return router, infra
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, r))
	return rec
}

func TestRouter_Native(t *testing.T) {
	router, infra := testRouter(t, testConfig(t, false))

	if rec := do(router, "GET", "/healthz", ""); rec.Code != http.StatusOK || rec.Body.String() != "OK" {
		t.Errorf("healthz = %d %q", rec.Code, rec.Body.String())
	}

	if rec := do(router, "GET", "/readyz", ""); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("readyz before startup = %d", rec.Code)
	}
	infra.Lifecycle.WaitForStartup()
	if rec := do(router, "GET", "/readyz", ""); rec.Code != http.StatusOK {
		t.Errorf("readyz after startup = %d", rec.Code)
	}

	rec := do(router, "GET", "/", "")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/app/" {
		t.Errorf("root = %d -> %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestRouter_Modules(t *testing.T) {
	tests := []struct {
		name           string
		visualizerOnly bool
		path           string
		want           int
	}{
		{"app root", false, "/app/", http.StatusOK},
		{"visualizer", false, "/app/visualizer", http.StatusOK},
		{"report", false, "/app/report", http.StatusOK},
		{"report disabled", true, "/app/report", http.StatusNotFound},
		{"visualizer only keeps visualizer", true, "/app/visualizer", http.StatusOK},
		{"openapi", false, "/api/openapi.json", http.StatusOK},
		{"scalar", false, "/scalar/", http.StatusOK},
		{"scalar redirect", false, "/scalar", http.StatusMovedPermanently},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := testRouter(t, testConfig(t, tt.visualizerOnly))
			if rec := do(router, "GET", tt.path, ""); rec.Code != tt.want {
				t.Errorf("GET %s = %d, want %d", tt.path, rec.Code, tt.want)
			}
		})
	}
}

func TestRouter_CatalogAndMetrics(t *testing.T) {
	router, _ := testRouter(t, testConfig(t, false))

	if rec := do(router, "GET", "/api/products", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("list before upload = %d, want 500", rec.Code)
	}

	catalog := `[{"product_id":1,"product_name":"Crate","fragility_index":1,"length":1,"breadth":1,"height":1,"distance":10}]`
	if rec := do(router, "PUT", "/api/products", catalog); rec.Code != http.StatusOK {
		t.Fatalf("replace = %d %s", rec.Code, rec.Body.String())
	}

	rec := do(router, "GET", "/api/products", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"product_name":"Crate"`) {
		t.Errorf("list = %d %s", rec.Code, rec.Body.String())
	}

	metrics := do(router, "GET", "/metrics", "").Body.String()
	want := `load_planner_http_requests_total{module="api",pattern="GET /products",status="200"} 1`
	if !strings.Contains(metrics, want) {
		t.Errorf("metrics missing %s", want)
	}
}
