// Package plans computes and persists load plans. A plan records the vehicle,
// where each catalog product was placed, which products did not fit, and a
// utilization summary.
package plans

import (
	"time"

	"github.com/JaimeStill/load-planner/internal/packing"
	"github.com/google/uuid"
)

// Plan is a stored packing result.
type Plan struct {
	ID         uuid.UUID           `json:"id"`
	Label      string              `json:"label"`
	Vehicle    packing.Vehicle     `json:"vehicle"`
	Placements []packing.Placement `json:"placements"`
	Unplaced   []packing.Product   `json:"unplaced"`
	Summary    packing.Summary     `json:"summary"`
	CreatedAt  time.Time           `json:"created_at"`
}

// CreateCommand contains the data required to compute a new plan.
// The products are always read from the current catalog.
type CreateCommand struct {
	Label   string          `json:"label"`
	Vehicle packing.Vehicle `json:"vehicle"`
}

// PackResponse is the body returned by the pack endpoint: the placements
// under packed_items and the id of the stored plan.
type PackResponse struct {
	PlanID      uuid.UUID           `json:"plan_id"`
	PackedItems []packing.Placement `json:"packed_items"`
}

// MessageResponse acknowledges a request that returns no data.
type MessageResponse struct {
	Message string `json:"message"`
}
