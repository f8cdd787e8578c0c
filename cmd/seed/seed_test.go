package main

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/JaimeStill/load-planner/internal/plans"
	"github.com/JaimeStill/load-planner/pkg/lifecycle"
	"github.com/JaimeStill/load-planner/pkg/storage"
)

type memStorage struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

func (m *memStorage) Store(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blobs[key] = data
	return nil
}

func (m *memStorage) Retrieve(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.blobs[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *memStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.blobs, key)
	return nil
}

func (m *memStorage) Validate(_ context.Context, key string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.blobs[key]
	return ok, nil
}

func (m *memStorage) Start(*lifecycle.Coordinator) error { return nil }

// computingPlans packs the catalog in memory instead of saving to a database.
type computingPlans struct {
	plans.System
	catalog catalog.System
	created []*plans.Plan
}

func (c *computingPlans) Create(ctx context.Context, cmd plans.CreateCommand) (*plans.Plan, error) {
	products, err := c.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	plan, err := plans.Compute(packing.New(packing.DefaultOptions()), cmd, products)
	if err != nil {
		return nil, err
	}
	c.created = append(c.created, plan)
	return plan, nil
}

func newTarget(t *testing.T) (*Target, *computingPlans) {
	t.Helper()
	cfg := &catalog.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat := catalog.New(&memStorage{blobs: make(map[string][]byte)}, cfg, logger)
	planSys := &computingPlans{catalog: cat}
	return &Target{Catalog: cat, Plans: planSys}, planSys
}

func TestSampleCatalogIsValid(t *testing.T) {
	products, err := catalog.Parse(sampleCatalog)
	if err != nil {
		t.Fatalf("Parse(sample) error = %v", err)
	}
	if len(products) == 0 {
		t.Error("sample catalog is empty")
	}
}

func TestSeederOrder(t *testing.T) {
	names := make([]string, 0, len(listSeeders()))
	for _, s := range listSeeders() {
		names = append(names, s.Name())
	}
	if len(names) != 2 || names[0] != "catalog" || names[1] != "plans" {
		t.Errorf("seeders = %v, want [catalog plans]", names)
	}
}

func TestRunAllSeeders(t *testing.T) {
	target, planSys := newTarget(t)
	ctx := context.Background()

	if err := runAllSeeders(ctx, target); err != nil {
		t.Fatalf("runAllSeeders() error = %v", err)
	}

	products, err := target.Catalog.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(products) != 12 {
		t.Errorf("catalog size = %d, want 12", len(products))
	}

	if len(planSys.created) != 3 {
		t.Fatalf("plans created = %d, want 3", len(planSys.created))
	}
	for _, p := range planSys.created {
		if p.Summary.TotalProducts != len(products) {
			t.Errorf("%s: TotalProducts = %d, want %d", p.Label, p.Summary.TotalProducts, len(products))
		}
	}
}

func TestCatalogSeeder_File(t *testing.T) {
	target, _ := newTarget(t)
	path := filepath.Join(t.TempDir(), "custom.json")
	data := `[{"product_id": "X", "product_name": "Crate", "fragility_index": 0, "length": 1, "breadth": 1, "height": 1, "distance": 1}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	s := &CatalogSeeder{}
	s.SetFile(path)
	if err := s.Seed(context.Background(), target); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	products, _ := target.Catalog.List(context.Background())
	if len(products) != 1 || products[0].ProductID != "X" {
		t.Errorf("catalog = %+v, want custom file contents", products)
	}
}

func TestPlanSeeder_RequiresDatabase(t *testing.T) {
	target, _ := newTarget(t)
	target.Plans = nil

	if err := (&PlanSeeder{}).Seed(context.Background(), target); err == nil {
		t.Error("Seed() error = nil without plans system")
	}
}

func TestRunSeeder_Unknown(t *testing.T) {
	target, _ := newTarget(t)
	if err := runSeeder(context.Background(), target, "missing"); err == nil {
		t.Error("runSeeder(missing) error = nil")
	}
}
