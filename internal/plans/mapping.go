package plans

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/JaimeStill/load-planner/pkg/query"
	"github.com/JaimeStill/load-planner/pkg/repository"
)

var projection = query.NewProjectionMap("public", "plans", "p").
	Project("id", "Id").
	Project("label", "Label").
	Project("vehicle_length", "VehicleLength").
	Project("vehicle_breadth", "VehicleBreadth").
	Project("vehicle_height", "VehicleHeight").
	Project("placements", "Placements").
	Project("unplaced", "Unplaced").
	Project("summary", "Summary").
	Project("utilization", "Utilization").
	Project("created_at", "CreatedAt")

var defaultSort = query.SortField{Field: "CreatedAt", Descending: true}

func scanPlan(s repository.Scanner) (Plan, error) {
	var (
		p                             Plan
		placements, unplaced, summary []byte
		utilization                   float64
	)
	err := s.Scan(
		&p.ID,
		&p.Label,
		&p.Vehicle.Length,
		&p.Vehicle.Breadth,
		&p.Vehicle.Height,
		&placements,
		&unplaced,
		&summary,
		&utilization,
		&p.CreatedAt,
	)
	if err != nil {
		return p, err
	}

	if err := json.Unmarshal(placements, &p.Placements); err != nil {
		return p, fmt.Errorf("decode placements: %w", err)
	}
	if err := json.Unmarshal(unplaced, &p.Unplaced); err != nil {
		return p, fmt.Errorf("decode unplaced: %w", err)
	}
	if err := json.Unmarshal(summary, &p.Summary); err != nil {
		return p, fmt.Errorf("decode summary: %w", err)
	}
	p.Summary.Utilization = utilization
	return p, nil
}

// Filters contains optional criteria for filtering plan queries.
type Filters struct {
	Label          *string
	MinUtilization *float64
}

// FiltersFromQuery extracts plan filters from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if l := values.Get("label"); l != "" {
		f.Label = &l
	}

	if v := values.Get("min_utilization"); v != "" {
		if u, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinUtilization = &u
		}
	}

	return f
}

// Apply adds filter conditions to the query builder.
func (f Filters) Apply(b *query.Builder) *query.Builder {
	return b.
		WhereContains("Label", f.Label).
		WhereAtLeast("Utilization", f.MinUtilization)
}
