package plans_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/internal/plans"
	"github.com/JaimeStill/load-planner/pkg/pagination"
	"github.com/JaimeStill/load-planner/pkg/routes"
	"github.com/google/uuid"
)

// fakeSystem packs a fixed product list and keeps plans in memory.
type fakeSystem struct {
	products   []packing.Product
	catalogErr error
	plans      map[uuid.UUID]*plans.Plan
	lastPage   pagination.PageRequest
	lastFilter plans.Filters
}

func newFakeSystem(products []packing.Product) *fakeSystem {
	return &fakeSystem{products: products, plans: make(map[uuid.UUID]*plans.Plan)}
}

func (f *fakeSystem) Handler() *plans.Handler {
	return plans.NewHandler(f, slog.New(slog.NewTextHandler(io.Discard, nil)), pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func (f *fakeSystem) List(_ context.Context, page pagination.PageRequest, filters plans.Filters) (*pagination.PageResult[plans.Plan], error) {
	f.lastPage = page
	f.lastFilter = filters
	data := make([]plans.Plan, 0, len(f.plans))
	for _, p := range f.plans {
		data = append(data, *p)
	}
	result := pagination.NewPageResult(data, len(data), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeSystem) Find(_ context.Context, id uuid.UUID) (*plans.Plan, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, plans.ErrNotFound
	}
	return p, nil
}

func (f *fakeSystem) Create(_ context.Context, cmd plans.CreateCommand) (*plans.Plan, error) {
	if f.catalogErr != nil {
		return nil, f.catalogErr
	}
	p, err := plans.Compute(packing.New(packing.DefaultOptions()), cmd, f.products)
	if err != nil {
		return nil, err
	}
	f.plans[p.ID] = p
	return p, nil
}

func (f *fakeSystem) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.plans[id]; !ok {
		return plans.ErrNotFound
	}
	delete(f.plans, id)
	return nil
}

func newMux(sys plans.System) *http.ServeMux {
	mux := http.NewServeMux()
	routes.Register(mux, "", nil, sys.Handler().Routes())
	return mux
}

var sampleProducts = []packing.Product{
	{ProductID: "1", ProductName: "Crate", FragilityIndex: 0, Length: 1, Breadth: 1, Height: 1, Distance: 10},
	{ProductID: "2", ProductName: "Drum", FragilityIndex: 0, Length: 1, Breadth: 1, Height: 1, Distance: 20},
}

func serve(mux http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Vehicle(t *testing.T) {
	mux := newMux(newFakeSystem(nil))

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantBody   string
	}{
		{"valid", `{"length": 10, "breadth": 5, "height": 4}`, http.StatusOK, plans.VehicleAccepted},
		{"zero dimension", `{"length": 0, "breadth": 5, "height": 4}`, http.StatusBadRequest, "invalid vehicle"},
		{"malformed", `{"length":`, http.StatusBadRequest, "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(mux, "POST", "/vehicle", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tt.wantBody) {
				t.Errorf("body = %q, want it to contain %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_Pack(t *testing.T) {
	sys := newFakeSystem(sampleProducts)
	mux := newMux(sys)

	rec := serve(mux, "POST", "/pack", `{"length": 2, "breadth": 1, "height": 1}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp plans.PackResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if len(resp.PackedItems) != 2 {
		t.Fatalf("len(PackedItems) = %d, want 2", len(resp.PackedItems))
	}
	if resp.PackedItems[0].ProductID != "2" {
		t.Errorf("first packed = %q, want farthest product %q", resp.PackedItems[0].ProductID, "2")
	}
	if _, ok := sys.plans[resp.PlanID]; !ok {
		t.Errorf("plan %s not stored", resp.PlanID)
	}
}

func TestHandler_Pack_CatalogMissing(t *testing.T) {
	sys := newFakeSystem(nil)
	sys.catalogErr = catalog.ErrCatalogNotFound
	mux := newMux(sys)

	rec := serve(mux, "POST", "/pack", `{"length": 2, "breadth": 1, "height": 1}`)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusInternalServerError)
	}
}

func TestHandler_Pack_CatalogCorrupt(t *testing.T) {
	sys := newFakeSystem(nil)
	_, sys.catalogErr = catalog.Parse([]byte(`[{"product_id": 1`))
	if sys.catalogErr == nil {
		t.Fatal("Parse() error = nil for truncated catalog")
	}
	mux := newMux(sys)

	for _, target := range []string{"/pack", "/plans"} {
		body := `{"length": 2, "breadth": 1, "height": 1}`
		if target == "/plans" {
			body = `{"vehicle": {"length": 2, "breadth": 1, "height": 1}}`
		}
		if rec := serve(mux, "POST", target, body); rec.Code != http.StatusInternalServerError {
			t.Errorf("POST %s status = %d, want %d", target, rec.Code, http.StatusInternalServerError)
		}
	}
}

func TestHandler_PlanLifecycle(t *testing.T) {
	sys := newFakeSystem(sampleProducts)
	mux := newMux(sys)

	rec := serve(mux, "POST", "/plans", `{"label": " truck 7 ", "vehicle": {"length": 1, "breadth": 1, "height": 1}}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var created plans.Plan
	if err := json.NewDecoder(rec.Body).Decode(&created); err != nil {
		t.Fatalf("decode plan: %v", err)
	}
	if created.Label != "truck 7" {
		t.Errorf("Label = %q, want trimmed label", created.Label)
	}
	if created.Summary.PackedCount != 1 || created.Summary.UnplacedCount != 1 {
		t.Errorf("Summary = %+v, want 1 packed and 1 unplaced", created.Summary)
	}

	path := fmt.Sprintf("/plans/%s", created.ID)

	if rec := serve(mux, "GET", path, ""); rec.Code != http.StatusOK {
		t.Errorf("find status = %d, want %d", rec.Code, http.StatusOK)
	}

	rec = serve(mux, "GET", "/plans?page=1&page_size=5&label=truck&sort=-Utilization", "")
	if rec.Code != http.StatusOK {
		t.Errorf("list status = %d, want %d", rec.Code, http.StatusOK)
	}
	if sys.lastPage.PageSize != 5 {
		t.Errorf("PageSize = %d, want 5", sys.lastPage.PageSize)
	}
	if sys.lastFilter.Label == nil || *sys.lastFilter.Label != "truck" {
		t.Errorf("Label filter = %v, want truck", sys.lastFilter.Label)
	}
	if len(sys.lastPage.Sort) != 1 || !sys.lastPage.Sort[0].Descending {
		t.Errorf("Sort = %+v, want descending Utilization", sys.lastPage.Sort)
	}

	if rec := serve(mux, "DELETE", path, ""); rec.Code != http.StatusNoContent {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if rec := serve(mux, "GET", path, ""); rec.Code != http.StatusNotFound {
		t.Errorf("find after delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if rec := serve(mux, "DELETE", path, ""); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandler_InvalidID(t *testing.T) {
	mux := newMux(newFakeSystem(nil))

	for _, method := range []string{"GET", "DELETE"} {
		if rec := serve(mux, method, "/plans/not-a-uuid", ""); rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want %d", method, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", plans.ErrNotFound, http.StatusNotFound},
		{"duplicate", plans.ErrDuplicate, http.StatusConflict},
		{"invalid vehicle", fmt.Errorf("create: %w", packing.ErrInvalidVehicle), http.StatusBadRequest},
		{"invalid product", packing.ErrInvalidProduct, http.StatusBadRequest},
		{"catalog missing", catalog.ErrCatalogNotFound, http.StatusInternalServerError},
		{"stored catalog corrupt", fmt.Errorf("%w: unexpected end of JSON input", catalog.ErrInvalidCatalog), http.StatusInternalServerError},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := plans.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}
