package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/JaimeStill/load-planner/internal/plans"
)

//go:embed data/vehicles.json
var sampleVehicles []byte

func init() {
	registerSeeder(&PlanSeeder{})
}

// PlanSeedData is the JSON structure of the plan seed file.
type PlanSeedData struct {
	Plans []plans.CreateCommand `json:"plans"`
}

// PlanSeeder packs the stored catalog into each sample vehicle and saves the
// resulting plans.
type PlanSeeder struct{}

func (s *PlanSeeder) Name() string {
	return "plans"
}

func (s *PlanSeeder) Description() string {
	return "Computes and stores example plans for sample vehicles"
}

func (s *PlanSeeder) Seed(ctx context.Context, target *Target) error {
	if target.Plans == nil {
		return fmt.Errorf("plans seeder requires a database")
	}

	var data PlanSeedData
	if err := json.Unmarshal(sampleVehicles, &data); err != nil {
		return fmt.Errorf("parse seed data: %w", err)
	}

	for _, cmd := range data.Plans {
		plan, err := target.Plans.Create(ctx, cmd)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Label, err)
		}
		fmt.Printf("plans: %s packed %d of %d products (%s)\n",
			plan.Label, plan.Summary.PackedCount, plan.Summary.TotalProducts, plan.ID)
	}

	return nil
}
