package dice

import (
	"math/rand/v2"

	"crapsim/models"
)

// IntervalTable partitions [0, 1) into one interval per sum, in ascending sum order.
type IntervalTable []models.Interval

// Lookup returns the sum owning r by scanning the intervals in order.
//
// Lookup is total over the float64 line: draws below the first lower bound
// resolve to the first sum and draws at or above the last upper bound resolve
// to the last sum with a non-empty interval. The table must not be empty.
func (t IntervalTable) Lookup(r float64) int {
	if r < t[0].Lower {
		return t[0].Sum
	}
	for _, iv := range t {
		if iv.Contains(r) {
			return iv.Sum
		}
	}
	for i := len(t) - 1; i >= 0; i-- {
		if t[i].Upper > t[i].Lower {
			return t[i].Sum
		}
	}
	return t[len(t)-1].Sum
}

// Source yields uniform draws in [0, 1).
type Source interface {
	Float64() float64
}

// NewSeededSource returns a deterministic PCG source for seed.
func NewSeededSource(seed int64) Source {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}

// Sampler rolls dice sums by drawing from a Source and mapping the draw
// through an IntervalTable.
type Sampler struct {
	table IntervalTable
	src   Source
}

// NewSampler creates a sampler over table. A nil src uses an unseeded PCG source.
func NewSampler(table IntervalTable, src Source) (*Sampler, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	if src == nil {
		src = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Sampler{table: table, src: src}, nil
}

// Roll draws one value and returns the sum it lands on.
func (s *Sampler) Roll() int {
	return s.table.Lookup(s.src.Float64())
}
