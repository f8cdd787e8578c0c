// Package main provides the seed command for populating a deployment with
// sample data: a product catalog in blob storage and example plans computed
// from it.
package main

import (
	"context"
	"fmt"

	"github.com/JaimeStill/load-planner/internal/catalog"
	"github.com/JaimeStill/load-planner/internal/plans"
)

// Target holds the systems seeders write through. Plans may be nil when no
// database is configured.
type Target struct {
	Catalog catalog.System
	Plans   plans.System
}

// Seeder defines the interface for seeders.
// Each seeder is responsible for populating a specific domain's data.
type Seeder interface {
	// Name returns the unique identifier for this seeder.
	Name() string

	// Description returns a human-readable description of what this seeder does.
	Description() string

	// Seed writes the seeder's data through target.
	Seed(ctx context.Context, target *Target) error
}

// seeders run in registration order; plans depend on the catalog.
var seeders []Seeder

func registerSeeder(s Seeder) {
	seeders = append(seeders, s)
}

func getSeeder(name string) (Seeder, bool) {
	for _, s := range seeders {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

func listSeeders() []Seeder {
	return seeders
}

func runSeeder(ctx context.Context, target *Target, name string) error {
	seeder, ok := getSeeder(name)
	if !ok {
		return fmt.Errorf("seeder not found: %s", name)
	}
	if err := seeder.Seed(ctx, target); err != nil {
		return fmt.Errorf("seed %s: %w", name, err)
	}
	return nil
}

func runAllSeeders(ctx context.Context, target *Target) error {
	for _, seeder := range seeders {
		if err := seeder.Seed(ctx, target); err != nil {
			return fmt.Errorf("seed %s: %w", seeder.Name(), err)
		}
	}
	return nil
}
