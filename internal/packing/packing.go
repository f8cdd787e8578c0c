// Package packing computes load plans: it places padded product boxes into a
// vehicle's cargo space using a batched first-fit heuristic over free spaces.
//
// Products are ordered by delivery distance (farthest first) and split into
// batches so that items unloaded last are loaded first. Within a batch the
// largest padded boxes are placed first. Each placement splits the space it
// occupies into right, front and top residual spaces.
package packing

import (
	"cmp"
	"math"
	"slices"
)

// Default engine settings.
const (
	DefaultBatches             = 5
	DefaultPaddingPerFragility = 0.02
	DefaultPrecision           = 2
)

// epsilon absorbs floating point residue from repeated space splitting.
const epsilon = 1e-9

// Options tunes the packing heuristic.
type Options struct {
	// Batches is the number of distance bands products are split into.
	Batches int

	// PaddingPerFragility is the fractional padding added to every dimension
	// per fragility index point.
	PaddingPerFragility float64

	// Precision is the number of decimal places reported in placements.
	Precision int
}

// DefaultOptions returns the standard engine settings.
func DefaultOptions() Options {
	return Options{
		Batches:             DefaultBatches,
		PaddingPerFragility: DefaultPaddingPerFragility,
		Precision:           DefaultPrecision,
	}
}

// Packer runs the heuristic with fixed options. It holds no mutable state
// and is safe for concurrent use.
type Packer struct {
	opts Options
}

// New creates a Packer. Non-positive batch counts fall back to the default;
// negative padding and precision are clamped to zero.
func New(opts Options) *Packer {
	if opts.Batches <= 0 {
		opts.Batches = DefaultBatches
	}
	if opts.PaddingPerFragility < 0 {
		opts.PaddingPerFragility = 0
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	return &Packer{opts: opts}
}

// Pack plans products into vehicle using DefaultOptions.
func Pack(vehicle Vehicle, products []Product) (*Result, error) {
	return New(DefaultOptions()).Pack(vehicle, products)
}

// Options returns the effective options.
func (p *Packer) Options() Options {
	return p.opts
}

// PaddingFactor returns the dimension multiplier for a fragility index.
func (p *Packer) PaddingFactor(fragility int) float64 {
	return 1 + p.opts.PaddingPerFragility*float64(fragility)
}

// Pack validates its inputs and computes a plan. The products slice is not
// modified. Products that fit in no free space are reported as unplaced.
func (p *Packer) Pack(vehicle Vehicle, products []Product) (*Result, error) {
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	for i := range products {
		if err := products[i].Validate(); err != nil {
			return nil, err
		}
	}

	items := p.pad(products)

	slices.SortStableFunc(items, func(a, b item) int {
		return cmp.Compare(b.product.Distance, a.product.Distance)
	})

	spaces := []space{{l: vehicle.Length, b: vehicle.Breadth, h: vehicle.Height}}
	result := &Result{
		Placements: make([]Placement, 0, len(items)),
		Unplaced:   make([]Product, 0),
	}
	var packedVolume float64

	for _, batch := range split(items, p.opts.Batches) {
		slices.SortStableFunc(batch, func(a, b item) int {
			return cmp.Compare(b.volume(), a.volume())
		})

		for _, it := range batch {
			var (
				placement Placement
				placed    bool
			)
			spaces, placement, placed = p.place(spaces, it)
			if !placed {
				result.Unplaced = append(result.Unplaced, it.product)
				continue
			}
			result.Placements = append(result.Placements, placement)
			packedVolume += it.volume()
		}
	}

	result.Summary = Summary{
		TotalProducts: len(products),
		PackedCount:   len(result.Placements),
		UnplacedCount: len(result.Unplaced),
		VehicleVolume: p.round(vehicle.Volume()),
		PackedVolume:  p.round(packedVolume),
		Utilization:   round(packedVolume/vehicle.Volume(), 4),
	}

	return result, nil
}

type item struct {
	product Product
	l, b, h float64
}

func (it item) volume() float64 {
	return it.l * it.b * it.h
}

type space struct {
	x, y, z float64
	l, b, h float64
}

func (s space) degenerate() bool {
	return s.l <= epsilon || s.b <= epsilon || s.h <= epsilon
}

func (p *Packer) pad(products []Product) []item {
	items := make([]item, len(products))
	for i, prod := range products {
		f := p.PaddingFactor(prod.FragilityIndex)
		items[i] = item{
			product: prod,
			l:       prod.Length * f,
			b:       prod.Breadth * f,
			h:       prod.Height * f,
		}
	}
	return items
}

// place tries each free space in order and, within a space, each distinct
// orientation of the item. The first fit wins.
func (p *Packer) place(spaces []space, it item) ([]space, Placement, bool) {
	rotations := orientations(it.l, it.b, it.h)

	for i, s := range spaces {
		for _, r := range rotations {
			l, b, h := r[0], r[1], r[2]
			if l > s.l+epsilon || b > s.b+epsilon || h > s.h+epsilon {
				continue
			}

			placement := Placement{
				ProductID:      it.product.ProductID,
				ProductName:    it.product.ProductName,
				FragilityIndex: it.product.FragilityIndex,
				AdjustedSize: Dimensions{
					Length:  p.round(l),
					Breadth: p.round(b),
					Height:  p.round(h),
				},
				Position: Position{
					X: p.round(s.x),
					Y: p.round(s.y),
					Z: p.round(s.z),
				},
			}

			next := make([]space, 0, len(spaces)+2)
			next = append(next, spaces[:i]...)
			next = append(next, spaces[i+1:]...)
			for _, residual := range []space{
				{x: s.x + l, y: s.y, z: s.z, l: s.l - l, b: s.b, h: s.h},
				{x: s.x, y: s.y + b, z: s.z, l: l, b: s.b - b, h: s.h},
				{x: s.x, y: s.y, z: s.z + h, l: l, b: b, h: s.h - h},
			} {
				if !residual.degenerate() {
					next = append(next, residual)
				}
			}

			return next, placement, true
		}
	}

	return spaces, Placement{}, false
}

// orientations returns the distinct axis permutations of a box in
// lexicographic index order.
func orientations(l, b, h float64) [][3]float64 {
	all := [][3]float64{
		{l, b, h},
		{l, h, b},
		{b, l, h},
		{b, h, l},
		{h, l, b},
		{h, b, l},
	}

	out := make([][3]float64, 0, len(all))
	for _, r := range all {
		if !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// split divides items into n contiguous batches. The first len%n batches
// receive one extra item; trailing batches may be empty.
func split(items []item, n int) [][]item {
	size := len(items) / n
	remainder := len(items) % n

	batches := make([][]item, 0, n)
	start := 0
	for i := range n {
		end := start + size
		if i < remainder {
			end++
		}
		batches = append(batches, items[start:end])
		start = end
	}
	return batches
}

func (p *Packer) round(v float64) float64 {
	return round(v, p.opts.Precision)
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
