package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JaimeStill/load-planner/pkg/openapi"
	"github.com/JaimeStill/load-planner/pkg/routes"
)

func reply(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(body))
	}
}

func testGroup() routes.Group {
	return routes.Group{
		Prefix: "",
		Tags:   []string{"Packing"},
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/pack", Handler: reply("pack"), OpenAPI: &openapi.Operation{Summary: "Pack"}},
			{Method: "GET", Pattern: "/internal", Handler: reply("internal")},
		},
		Children: []routes.Group{
			{
				Prefix: "/plans",
				Tags:   []string{"Plans"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: reply("list"), OpenAPI: &openapi.Operation{Summary: "List"}},
					{Method: "GET", Pattern: "/{id}", Handler: reply("find"), OpenAPI: &openapi.Operation{Summary: "Find", Tags: []string{"Custom"}}},
				},
			},
		},
	}
}

func TestRegister_Mux(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, "/api", nil, testGroup())

	tests := []struct {
		method string
		path   string
		want   string
	}{
		{"POST", "/pack", "pack"},
		{"GET", "/internal", "internal"},
		{"GET", "/plans", "list"},
		{"GET", "/plans/42", "find"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Body.String() != tt.want {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestRegister_Spec(t *testing.T) {
	spec := openapi.NewSpec("Test", "1.0.0")
	routes.Register(http.NewServeMux(), "/api", spec, testGroup())

	if len(spec.Paths) != 3 {
		t.Fatalf("len(Paths) = %d, want 3 documented paths", len(spec.Paths))
	}
	if _, ok := spec.Paths["/api/internal"]; ok {
		t.Error("undocumented route appears in spec")
	}

	pack := spec.Paths["/api/pack"]
	if pack == nil || pack.Post == nil {
		t.Fatal("POST /api/pack missing")
	}
	if len(pack.Post.Tags) != 1 || pack.Post.Tags[0] != "Packing" {
		t.Errorf("pack tags = %v, want group tags", pack.Post.Tags)
	}

	list := spec.Paths["/api/plans"]
	if list == nil || list.Get == nil || list.Get.Tags[0] != "Plans" {
		t.Errorf("GET /api/plans = %+v, want child group tags", list)
	}

	find := spec.Paths["/api/plans/{id}"]
	if find == nil || find.Get == nil || find.Get.Tags[0] != "Custom" {
		t.Errorf("GET /api/plans/{id} = %+v, want explicit tags kept", find)
	}
}
