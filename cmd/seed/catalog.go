package main

import (
	"context"
	_ "embed"
	"fmt"
	"os"
)

//go:embed data/products.json
var sampleCatalog []byte

func init() {
	registerSeeder(&CatalogSeeder{})
}

// CatalogSeeder replaces the stored product catalog with the embedded sample
// or an external file.
type CatalogSeeder struct {
	file string
}

func (s *CatalogSeeder) Name() string {
	return "catalog"
}

func (s *CatalogSeeder) Description() string {
	return "Writes the sample product catalog to blob storage"
}

// SetFile configures an external catalog file, overriding the embedded default.
func (s *CatalogSeeder) SetFile(path string) {
	s.file = path
}

func (s *CatalogSeeder) Seed(ctx context.Context, target *Target) error {
	data := sampleCatalog
	if s.file != "" {
		var err error
		if data, err = os.ReadFile(s.file); err != nil {
			return fmt.Errorf("read catalog file: %w", err)
		}
	}

	products, err := target.Catalog.Replace(ctx, data)
	if err != nil {
		return err
	}

	fmt.Printf("catalog: stored %d products\n", len(products))
	return nil
}
