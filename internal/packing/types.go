package packing

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Vehicle is the cargo space, measured in the same unit as products.
type Vehicle struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
}

// Validate requires every dimension to be positive.
func (v Vehicle) Validate() error {
	if v.Length <= 0 || v.Breadth <= 0 || v.Height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive (got %gx%gx%g)",
			ErrInvalidVehicle, v.Length, v.Breadth, v.Height)
	}
	return nil
}

// Volume returns the cargo volume.
func (v Vehicle) Volume() float64 {
	return v.Length * v.Breadth * v.Height
}

// ProductID identifies a product. Catalogs may carry ids as JSON strings or
// numbers; both decode to the same textual form.
type ProductID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ProductID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ProductID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("product_id must be a string or number: %w", err)
	}
	*id = ProductID(n.String())
	return nil
}

// Product is a catalog entry awaiting placement.
type Product struct {
	ProductID      ProductID `json:"product_id"`
	ProductName    string    `json:"product_name"`
	FragilityIndex int       `json:"fragility_index"`
	Length         float64   `json:"length"`
	Breadth        float64   `json:"breadth"`
	Height         float64   `json:"height"`
	Distance       float64   `json:"distance"`
}

// Validate requires an id, positive dimensions, and non-negative fragility
// and distance.
func (p Product) Validate() error {
	if p.ProductID == "" {
		return fmt.Errorf("%w: product_id required", ErrInvalidProduct)
	}
	if p.Length <= 0 || p.Breadth <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: %s: dimensions must be positive", ErrInvalidProduct, p.ProductID)
	}
	if p.FragilityIndex < 0 {
		return fmt.Errorf("%w: %s: fragility_index must not be negative", ErrInvalidProduct, p.ProductID)
	}
	if p.Distance < 0 {
		return fmt.Errorf("%w: %s: distance must not be negative", ErrInvalidProduct, p.ProductID)
	}
	return nil
}

// Dimensions is an oriented, padded box size.
type Dimensions struct {
	Length  float64 `json:"length"`
	Breadth float64 `json:"breadth"`
	Height  float64 `json:"height"`
}

// Position is the box corner nearest the vehicle origin.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Placement records where and how a product was loaded.
type Placement struct {
	ProductID      ProductID  `json:"product_id"`
	ProductName    string     `json:"product_name"`
	FragilityIndex int        `json:"fragility_index"`
	AdjustedSize   Dimensions `json:"adjusted_size"`
	Position       Position   `json:"position"`
}

// Summary aggregates a plan. Volumes use padded sizes; Utilization is the
// packed fraction of the vehicle volume.
type Summary struct {
	TotalProducts int     `json:"total_products"`
	PackedCount   int     `json:"packed_count"`
	UnplacedCount int     `json:"unplaced_count"`
	VehicleVolume float64 `json:"vehicle_volume"`
	PackedVolume  float64 `json:"packed_volume"`
	Utilization   float64 `json:"utilization"`
}

// Result is the outcome of a packing run. Placements are in load order.
type Result struct {
	Placements []Placement `json:"placements"`
	Unplaced   []Product   `json:"unplaced"`
	Summary    Summary     `json:"summary"`
}
