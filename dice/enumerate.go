// Package dice builds the probability tables for sums of fair dice and
// samples sums from them.
package dice

import (
	"fmt"
	"slices"
	"strconv"

	"crapsim/models"
)

// Enumeration limits. maxRawTuples caps Faces^Dice so the walk stays in
// memory; maxDice bounds the carry chain for single-faced dice.
const (
	maxRawTuples = 1 << 22
	maxDice      = 64
)

// Enumeration holds every unique combination of a dice configuration and
// the sum frequencies derived from them.
type Enumeration struct {
	Config models.DiceConfig
	// Unique lists sorted combinations in the order they were first seen.
	Unique []models.Combination
	// Frequencies counts unique combinations per sum.
	Frequencies models.SumFrequencyTable
	// Ordered counts ordered tuples per sum, so (3,4) and (4,3) both count.
	Ordered models.SumFrequencyTable
}

// Enumerate walks every ordered roll of the configured dice and records each
// sorted combination once.
//
// The dice act as counters starting at 1. The rightmost counter is advanced
// first; when a counter passes Faces it resets to 1 and the counter on its
// left is advanced, after which focus returns to the rightmost counter. The
// walk ends once the leftmost counter overflows.
//
// Unique combinations are returned in discovery order, so the result is the
// same on every call with the same config.
func Enumerate(cfg models.DiceConfig) (*Enumeration, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !withinLimit(cfg) {
		return nil, fmt.Errorf("%w: %s (limits: %d dice, %d ordered rolls)", ErrConfigTooLarge, cfg, maxDice, maxRawTuples)
	}

	e := &Enumeration{
		Config:      cfg,
		Frequencies: models.NewSumFrequencyTable(cfg),
		Ordered:     models.NewSumFrequencyTable(cfg),
	}
	base := cfg.MinSum()
	seen := make(map[string]struct{})

	counters := make([]int, cfg.Dice)
	for i := range counters {
		counters[i] = 1
	}
	last := cfg.Dice - 1
	focus := last
	// A carry leaves the counters on a tuple that was already visited.
	fresh := true

	for focus >= 0 {
		sorted := slices.Clone(counters)
		slices.Sort(sorted)
		sum := models.Combination(sorted).Sum()

		if fresh {
			e.Ordered.Counts[sum-base]++
		}
		key := combinationKey(sorted)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			e.Unique = append(e.Unique, sorted)
			e.Frequencies.Counts[sum-base]++
		}

		counters[focus]++
		if counters[focus] > cfg.Faces {
			counters[focus] = 1
			focus--
			fresh = false
			continue
		}
		fresh = true
		if focus < last {
			focus = last
		}
	}

	return e, nil
}

// Weighted returns the frequency table and its total for a weighting mode.
func (e *Enumeration) Weighted(w models.Weighting) (models.SumFrequencyTable, int) {
	if w == models.WeightingOrdered {
		return e.Ordered, e.Ordered.Total()
	}
	return e.Frequencies, len(e.Unique)
}

func withinLimit(cfg models.DiceConfig) bool {
	if cfg.Dice > maxDice {
		return false
	}
	n := 1
	for i := 0; i < cfg.Dice; i++ {
		n *= cfg.Faces
		if n > maxRawTuples {
			return false
		}
	}
	return true
}

func combinationKey(c []int) string {
	b := make([]byte, 0, len(c)*3)
	for _, v := range c {
		b = strconv.AppendInt(b, int64(v), 10)
		b = append(b, ',')
	}
	return string(b)
}
