package models

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a dice configuration with no valid sum range.
var ErrInvalidConfig = errors.New("dice and faces must be positive")

// DiceConfig describes the dice thrown on every roll
type DiceConfig struct {
	Dice  int `yaml:"dice" json:"dice"`
	Faces int `yaml:"faces" json:"faces"`
}

// StandardDice is the two six-sided dice used by craps
var StandardDice = DiceConfig{Dice: 2, Faces: 6}

// Validate rejects configurations without a sum range
func (c DiceConfig) Validate() error {
	if c.Dice <= 0 || c.Faces <= 0 {
		return fmt.Errorf("%w: got %d dice with %d faces", ErrInvalidConfig, c.Dice, c.Faces)
	}
	return nil
}

// MinSum is the lowest reachable sum (every die showing 1)
func (c DiceConfig) MinSum() int {
	return c.Dice
}

// MaxSum is the highest reachable sum (every die showing Faces)
func (c DiceConfig) MaxSum() int {
	return c.Dice * c.Faces
}

func (c DiceConfig) String() string {
	return fmt.Sprintf("%dd%d", c.Dice, c.Faces)
}

// Combination is a sorted (ascending) set of face values, one per die
type Combination []int

// Sum returns the total of the face values
func (c Combination) Sum() int {
	total := 0
	for _, v := range c {
		total += v
	}
	return total
}

// SumFrequencyTable counts how many combinations produce each sum.
// Counts[i] belongs to sum Min+i, so every sum in the range is present.
type SumFrequencyTable struct {
	Min    int
	Counts []int
}

// NewSumFrequencyTable creates a zeroed table covering the config's sum range
func NewSumFrequencyTable(cfg DiceConfig) SumFrequencyTable {
	return SumFrequencyTable{
		Min:    cfg.MinSum(),
		Counts: make([]int, cfg.MaxSum()-cfg.MinSum()+1),
	}
}

// Sums returns every sum in ascending order
func (t SumFrequencyTable) Sums() []int {
	sums := make([]int, len(t.Counts))
	for i := range t.Counts {
		sums[i] = t.Min + i
	}
	return sums
}

// Count returns the frequency of a sum, or 0 outside the range
func (t SumFrequencyTable) Count(sum int) int {
	i := sum - t.Min
	if i < 0 || i >= len(t.Counts) {
		return 0
	}
	return t.Counts[i]
}

// Total returns the sum of all frequencies
func (t SumFrequencyTable) Total() int {
	total := 0
	for _, c := range t.Counts {
		total += c
	}
	return total
}

// ProbabilityEntry is the probability of rolling a single sum
type ProbabilityEntry struct {
	Sum         int     `yaml:"sum" json:"sum"`
	Probability float64 `yaml:"probability" json:"probability"`
}

// ProbabilityTable lists per-sum probabilities in ascending sum order
type ProbabilityTable []ProbabilityEntry

// Of returns the probability of a sum, or 0 if the sum is not in the table
func (t ProbabilityTable) Of(sum int) float64 {
	for _, e := range t {
		if e.Sum == sum {
			return e.Probability
		}
	}
	return 0
}

// CumulativeEntry is the probability of rolling Sum or anything lower
type CumulativeEntry struct {
	Sum        int     `yaml:"sum" json:"sum"`
	Cumulative float64 `yaml:"cumulative" json:"cumulative"`
}

// CumulativeTable is non-decreasing and ends at (about) 1.0
type CumulativeTable []CumulativeEntry

// Interval owns the half-open probability range [Lower, Upper)
type Interval struct {
	Lower float64 `yaml:"lower" json:"lower"`
	Upper float64 `yaml:"upper" json:"upper"`
	Sum   int     `yaml:"sum" json:"sum"`
}

// Contains reports whether r falls in [Lower, Upper)
func (i Interval) Contains(r float64) bool {
	return r >= i.Lower && r < i.Upper
}

// Weighting selects the outcome space probabilities are computed over
type Weighting string

const (
	// WeightingUnique weights every unique sorted combination equally,
	// so (3,4) and (4,3) count once.
	WeightingUnique Weighting = "unique"
	// WeightingOrdered weights every ordered tuple equally, which matches
	// physical dice.
	WeightingOrdered Weighting = "ordered"
)

// ParseWeighting converts a config or command value to a Weighting
func ParseWeighting(s string) (Weighting, error) {
	switch Weighting(s) {
	case WeightingUnique, WeightingOrdered:
		return Weighting(s), nil
	case "":
		return WeightingUnique, nil
	default:
		return "", fmt.Errorf("unknown weighting %q (want %q or %q)", s, WeightingUnique, WeightingOrdered)
	}
}

// UnmarshalText lets env and YAML decoding parse a Weighting
func (w *Weighting) UnmarshalText(text []byte) error {
	parsed, err := ParseWeighting(string(text))
	if err != nil {
		return err
	}
	*w = parsed
	return nil
}
