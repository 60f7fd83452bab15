package dice

import (
	"fmt"
	"math"

	"crapsim/models"
)

// BuildProbabilities divides each sum's frequency by total.
// Entries keep the table's ascending sum order.
func BuildProbabilities(freq models.SumFrequencyTable, total int) (models.ProbabilityTable, error) {
	if total <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTotal, total)
	}
	if len(freq.Counts) == 0 {
		return nil, ErrEmptyTable
	}

	probs := make(models.ProbabilityTable, 0, len(freq.Counts))
	for i, count := range freq.Counts {
		probs = append(probs, models.ProbabilityEntry{
			Sum:         freq.Min + i,
			Probability: float64(count) / float64(total),
		})
	}
	return probs, nil
}

// Accumulate turns per-sum probabilities into a running total.
func Accumulate(probs models.ProbabilityTable) models.CumulativeTable {
	cum := make(models.CumulativeTable, len(probs))
	running := 0.0
	for i, p := range probs {
		running += p.Probability
		cum[i] = models.CumulativeEntry{Sum: p.Sum, Cumulative: running}
	}
	return cum
}

// BuildIntervals maps the cumulative distribution onto contiguous half-open
// intervals of [0, 1). Each interval starts where the previous one ended.
// The last upper bound is pinned to 1.0 so floating-point drift in the
// running total never leaves part of [0, 1) unowned.
func BuildIntervals(cum models.CumulativeTable) (IntervalTable, error) {
	if len(cum) == 0 {
		return nil, ErrEmptyTable
	}

	table := make(IntervalTable, len(cum))
	lower := 0.0
	for i, e := range cum {
		upper := math.Max(lower, math.Min(e.Cumulative, 1.0))
		if i == len(cum)-1 {
			upper = 1.0
		}
		table[i] = models.Interval{Lower: lower, Upper: upper, Sum: e.Sum}
		lower = upper
	}
	return table, nil
}

// Tables bundles everything derived from one dice configuration.
type Tables struct {
	Enumeration   *Enumeration
	Weighting     models.Weighting
	Probabilities models.ProbabilityTable
	Cumulative    models.CumulativeTable
	Intervals     IntervalTable
}

// Build enumerates cfg and derives the probability, cumulative and interval
// tables for the given weighting.
func Build(cfg models.DiceConfig, w models.Weighting) (*Tables, error) {
	enum, err := Enumerate(cfg)
	if err != nil {
		return nil, err
	}

	freq, total := enum.Weighted(w)
	probs, err := BuildProbabilities(freq, total)
	if err != nil {
		return nil, fmt.Errorf("build probabilities: %w", err)
	}
	cum := Accumulate(probs)
	intervals, err := BuildIntervals(cum)
	if err != nil {
		return nil, fmt.Errorf("build intervals: %w", err)
	}

	return &Tables{
		Enumeration:   enum,
		Weighting:     w,
		Probabilities: probs,
		Cumulative:    cum,
		Intervals:     intervals,
	}, nil
}
