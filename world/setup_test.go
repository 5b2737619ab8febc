package world

import (
	"testing"

	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sphereFn() fitness.WorldFunction {
	return fitness.NewScalarFunc(func(p []float64) float64 {
		var total float64
		for _, v := range p {
			total += v * v
		}
		return total
	}, 0)
}

func TestSetupCreatesPopulationSizeOrganisms(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 25, TargetRegions: 4, Seed: 1}, sphereFn())
	assert.Len(t, w.Organisms(), 25)
}

func TestSetupOrganismsHaveRandomAgeWithinMaxAgeAndNoScore(t *testing.T) {
	w := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 5, TargetRegions: 2, Seed: 1}, sphereFn())
	nonZero := false
	for _, o := range w.Organisms() {
		assert.LessOrEqual(t, o.Age(), o.Phenotype().SystemParameters().MaxAge())
		if o.Age() > 0 {
			nonZero = true
		}
		_, hasScore := o.Score()
		assert.False(t, hasScore)
	}
	assert.True(t, nonZero, "expected at least one founder to start above age 0 across the population")
}

func TestSetupOrganismsHaveProblemValuesWithinBounds(t *testing.T) {
	w := Setup([]Bound{{Lo: -5, Hi: 5}, {Lo: 0, Hi: 1}}, Constants{Population: 30, TargetRegions: 4, Seed: 7}, sphereFn())
	for _, o := range w.Organisms() {
		values := o.Phenotype().ProblemValues()
		require.Len(t, values, 2)
		assert.GreaterOrEqual(t, values[0], -5.0)
		assert.LessOrEqual(t, values[0], 5.0)
		assert.GreaterOrEqual(t, values[1], 0.0)
		assert.LessOrEqual(t, values[1], 1.0)
	}
}

func TestSetupAssignsDistinctIncreasingIDs(t *testing.T) {
	w := Setup([]Bound{{Lo: -1, Hi: 1}}, Constants{Population: 10, TargetRegions: 2, Seed: 3}, sphereFn())
	seen := make(map[uint64]bool)
	for i, o := range w.Organisms() {
		assert.Equal(t, uint64(i), o.ID())
		assert.False(t, seen[o.ID()])
		seen[o.ID()] = true
	}
}

func TestSetupPanicsOnZeroPopulation(t *testing.T) {
	assert.Panics(t, func() {
		Setup([]Bound{{Lo: 0, Hi: 1}}, Constants{Population: 0, TargetRegions: 1, Seed: 1}, sphereFn())
	})
}

func TestSetupPanicsOnEmptyBounds(t *testing.T) {
	assert.Panics(t, func() {
		Setup(nil, Constants{Population: 10, TargetRegions: 1, Seed: 1}, sphereFn())
	})
}

func TestSetupIsDeterministicForSameSeed(t *testing.T) {
	w1 := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 20, TargetRegions: 4, Seed: 42}, sphereFn())
	w2 := Setup([]Bound{{Lo: -10, Hi: 10}}, Constants{Population: 20, TargetRegions: 4, Seed: 42}, sphereFn())
	o1, o2 := w1.Organisms(), w2.Organisms()
	require.Len(t, o2, len(o1))
	for i := range o1 {
		assert.Equal(t, o1[i].Phenotype().ProblemValues(), o2[i].Phenotype().ProblemValues())
	}
}
