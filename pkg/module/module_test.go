package module_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/load-planner/pkg/module"
)

func echoPath() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(r.URL.Path))
	})
}

func TestNew_InvalidPrefix(t *testing.T) {
	for _, prefix := range []string{"", "api", "/api/v1", "/", "//"} {
		t.Run(prefix, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("New(%q) did not panic", prefix)
				}
			}()
			module.New(prefix, echoPath())
		})
	}
}

func TestValidatePrefix(t *testing.T) {
	tests := []struct {
		prefix  string
		wantErr string
	}{
		{"/app", ""},
		{"/", "site root"},
		{"app", "start with /"},
		{"/app/v2", "single segment"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			err := module.ValidatePrefix(tt.prefix)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("ValidatePrefix() error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("ValidatePrefix() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestModule_Serve(t *testing.T) {
	m := module.New("/app", echoPath())

	tests := []struct {
		path     string
		wantPath string
	}{
		{"/app", "/"},
		{"/app/", "/"},
		{"/app/visualizer", "/visualizer"},
		{"/app/views/report", "/views/report"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			m.Serve(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Body.String() != tt.wantPath {
				t.Errorf("path = %q, want %q", rec.Body.String(), tt.wantPath)
			}
		})
	}
}

func TestModule_Serve_PreservesOriginalRequest(t *testing.T) {
	m := module.New("/app", echoPath())

	req := httptest.NewRequest(http.MethodGet, "/app/report", nil)
	m.Serve(httptest.NewRecorder(), req)

	if req.URL.Path != "/app/report" {
		t.Errorf("original request path = %q, want unchanged", req.URL.Path)
	}
}

func TestModule_MiddlewareOrder(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	m := module.New("/api", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))
	m.Use(mw("first"))
	m.Use(mw("second"))

	m.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if got := strings.Join(order, ","); got != "first,second,handler" {
		t.Errorf("order = %s, want first,second,handler", got)
	}
}

func TestRouter(t *testing.T) {
	r := module.NewRouter()
	r.Mount(module.New("/api", echoPath()))
	r.Mount(module.New("/app", echoPath()))
	r.HandleNative("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("OK"))
	})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/healthz", http.StatusOK, "OK"},
		{"/api", http.StatusOK, "/"},
		{"/api/plans", http.StatusOK, "/plans"},
		{"/app/report", http.StatusOK, "/report"},
		{"/missing", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}
