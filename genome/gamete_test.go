package genome

import (
	"math/rand"
	"testing"

	"github.com/cainem/hill-descent-sub001/parameter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeLocus(v float64) Locus {
	return NewLocus(parameter.NewUnbounded(v), NewLocusAdjustment(0.1, DirectionAdd, true), true)
}

func TestNewGametePanicsOnEmpty(t *testing.T) {
	assert.Panics(t, func() { NewGamete(nil) })
}

func TestGameteCloneIsIndependent(t *testing.T) {
	g := NewGamete([]Locus{makeLocus(1), makeLocus(2)})
	c := g.Clone()
	c.Loci[0].Value.Set(99)
	assert.Equal(t, 1.0, g.Loci[0].Value.Get())
	assert.Equal(t, 99.0, c.Loci[0].Value.Get())
}

func TestCrossoverPanicsOnLengthMismatch(t *testing.T) {
	a := NewGamete([]Locus{makeLocus(1)})
	b := NewGamete([]Locus{makeLocus(1), makeLocus(2)})
	assert.Panics(t, func() { Crossover(a, b, 1, rand.New(rand.NewSource(1))) })
}

func TestCrossoverProducesFullLengthChildFromBothParents(t *testing.T) {
	a := NewGamete([]Locus{makeLocus(0), makeLocus(0), makeLocus(0), makeLocus(0)})
	b := NewGamete([]Locus{makeLocus(1), makeLocus(1), makeLocus(1), makeLocus(1)})
	rng := rand.New(rand.NewSource(42))
	child := Crossover(a, b, 2, rng)
	require.Equal(t, 4, child.Len())
	for _, l := range child.Loci {
		v := l.Value.Get()
		assert.True(t, v == 0 || v == 1)
	}
}

func TestCrossoverEndsAreDistinctAndSorted(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ends := crossoverEnds(10, 3, rng)
	require.Equal(t, 4, len(ends))
	for i := 1; i < len(ends); i++ {
		assert.Less(t, ends[i-1], ends[i])
	}
	assert.Equal(t, 10, ends[len(ends)-1])
}

func TestCrossoverEndsZeroCutsYieldsSingleSegment(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	ends := crossoverEnds(10, 0, rng)
	assert.Equal(t, []int{10}, ends)
}

func TestCalculateCrossoversZeroM3YieldsZero(t *testing.T) {
	assert.Equal(t, 0, CalculateCrossovers(0.0, 5))
}

func TestCrossoverZeroCutsReturnsOneParentUnchanged(t *testing.T) {
	a := NewGamete([]Locus{makeLocus(0), makeLocus(0), makeLocus(0), makeLocus(0)})
	b := NewGamete([]Locus{makeLocus(1), makeLocus(1), makeLocus(1), makeLocus(1)})
	rng := rand.New(rand.NewSource(1))
	child := Crossover(a, b, 0, rng)
	for _, l := range child.Loci {
		assert.Equal(t, 0.0, l.Value.Get())
	}
}
