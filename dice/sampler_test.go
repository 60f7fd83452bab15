package dice

import (
	"math"
	"testing"

	"crapsim/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSource []float64

func (f *fixedSource) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestIntervalTable_LookupBoundaries(t *testing.T) {
	tables := buildStandard(t, models.WeightingUnique)
	intervals := tables.Intervals

	assert.Equal(t, 2, intervals.Lookup(0.0))
	assert.Equal(t, 12, intervals.Lookup(math.Nextafter(1, 0)))

	// Every interval owns its own lower bound
	for _, iv := range intervals {
		assert.Equal(t, iv.Sum, intervals.Lookup(iv.Lower))
	}
}

func TestIntervalTable_LookupOutOfRange(t *testing.T) {
	tables := buildStandard(t, models.WeightingUnique)

	assert.Equal(t, 2, tables.Intervals.Lookup(-0.5))
	assert.Equal(t, 12, tables.Intervals.Lookup(1.0))
	assert.Equal(t, 12, tables.Intervals.Lookup(7.0))
}

func TestIntervalTable_LookupSkipsEmptyTail(t *testing.T) {
	table := IntervalTable{
		{Lower: 0, Upper: 0.5, Sum: 1},
		{Lower: 0.5, Upper: 1.0, Sum: 2},
		{Lower: 1.0, Upper: 1.0, Sum: 3},
	}

	assert.Equal(t, 2, table.Lookup(1.0))
}

func TestNewSampler_EmptyTable(t *testing.T) {
	_, err := NewSampler(nil, nil)
	assert.ErrorIs(t, err, ErrEmptyTable)
}

func TestSampler_Roll(t *testing.T) {
	tables := buildStandard(t, models.WeightingUnique)
	src := fixedSource{0.0, 0.5, math.Nextafter(1, 0)}

	sampler, err := NewSampler(tables.Intervals, &src)
	require.NoError(t, err)

	assert.Equal(t, 2, sampler.Roll())
	// 0.5 lands in sum 7's interval: cumulative through 6 is 9/21, through 7 is 12/21
	assert.Equal(t, 7, sampler.Roll())
	assert.Equal(t, 12, sampler.Roll())
}

func TestSampler_SeededIsDeterministic(t *testing.T) {
	tables := buildStandard(t, models.WeightingOrdered)

	a, err := NewSampler(tables.Intervals, NewSeededSource(42))
	require.NoError(t, err)
	b, err := NewSampler(tables.Intervals, NewSeededSource(42))
	require.NoError(t, err)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Roll(), b.Roll())
	}
}

func TestSampler_RollsStayInRange(t *testing.T) {
	tables := buildStandard(t, models.WeightingOrdered)

	sampler, err := NewSampler(tables.Intervals, nil)
	require.NoError(t, err)

	seen := make(map[int]int)
	for i := 0; i < 20000; i++ {
		sum := sampler.Roll()
		require.GreaterOrEqual(t, sum, 2)
		require.LessOrEqual(t, sum, 12)
		seen[sum]++
	}
	assert.Len(t, seen, 11)
	assert.Greater(t, seen[7], seen[2])
}
