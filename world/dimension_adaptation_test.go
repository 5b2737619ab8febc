package world

import (
	"math/rand"
	"testing"

	"github.com/cainem/hill-descent-sub001/genome"
	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/parameter"
	"github.com/cainem/hill-descent-sub001/region"
	"github.com/cainem/hill-descent-sub001/spatial"
	"github.com/stretchr/testify/assert"
)

// phenotypeWithValues builds a Phenotype whose expressed values are exactly
// values, by giving both gametes identical loci at every position: whichever
// locus phenotype expression picks, the value is the same.
func phenotypeWithValues(values []float64) *genome.Phenotype {
	loci1 := make([]genome.Locus, len(values))
	loci2 := make([]genome.Locus, len(values))
	adj := genome.NewLocusAdjustment(1, genome.DirectionAdd, false)
	for i, v := range values {
		loci1[i] = genome.NewLocus(parameter.NewUnbounded(v), adj, false)
		loci2[i] = genome.NewLocus(parameter.NewUnbounded(v), adj, false)
	}
	g1 := genome.NewGamete(loci1)
	g2 := genome.NewGamete(loci2)
	return genome.New(g1, g2, rand.New(rand.NewSource(1)))
}

// organismWithAxisValue builds a founder organism with fixed, valid system
// parameters and a single problem-space coordinate.
func organismWithAxisValue(id uint64, value float64) *organism.Organism {
	values := []float64{0.1, 0.1, 0.1, 0.1, 0.1, 100, 2, value}
	return organism.New(id, phenotypeWithValues(values), 0)
}

func TestAdaptDimensionsShrinksToObservedDataAndSubdivides(t *testing.T) {
	dims := spatial.NewDimensions([]*spatial.Dimension{spatial.NewDimension(-100, 100)})
	w := &World{
		dimensions: dims,
		regions:    region.NewRegions(10, 5),
		organisms: []*organism.Organism{
			organismWithAxisValue(1, 4),
			organismWithAxisValue(2, 6),
		},
		constants: Constants{TargetRegions: 5},
	}

	resolutionLimit := w.adaptDimensions()

	assert.False(t, resolutionLimit)
	dim := dims.Get(0)
	assert.InDelta(t, 3.5, dim.Min(), 1e-9)
	assert.InDelta(t, 6.5, dim.Max(), 1e-9)
	assert.Equal(t, uint(1), dim.Doublings())
}

func TestAdaptDimensionsNoDiversityIsResolutionLimit(t *testing.T) {
	dims := spatial.NewDimensions([]*spatial.Dimension{spatial.NewDimension(-100, 100)})
	w := &World{
		dimensions: dims,
		regions:    region.NewRegions(10, 5),
		organisms: []*organism.Organism{
			organismWithAxisValue(1, 5),
			organismWithAxisValue(2, 5),
			organismWithAxisValue(3, 5),
		},
		constants: Constants{TargetRegions: 5},
	}

	resolutionLimit := w.adaptDimensions()

	assert.True(t, resolutionLimit)
	dim := dims.Get(0)
	assert.InDelta(t, 4.5, dim.Min(), 1e-9)
	assert.InDelta(t, 5.5, dim.Max(), 1e-9)
	assert.Equal(t, uint(0), dim.Doublings())
}

func TestAdaptDimensionsResolutionLimitWhenRegionCountAtTarget(t *testing.T) {
	dims := spatial.NewDimensions([]*spatial.Dimension{spatial.NewDimension(-100, 100)})
	regions := region.NewRegions(10, 2)
	regions.Populate([]region.Entry{
		{Organism: organismWithAxisValue(1, 1), Key: spatial.NewRegionKey([]uint{0})},
		{Organism: organismWithAxisValue(2, 2), Key: spatial.NewRegionKey([]uint{1})},
	})

	w := &World{
		dimensions: dims,
		regions:    regions,
		organisms: []*organism.Organism{
			organismWithAxisValue(1, 1),
			organismWithAxisValue(2, 2),
			organismWithAxisValue(3, 3),
			organismWithAxisValue(4, 4),
			organismWithAxisValue(5, 5),
		},
		constants: Constants{TargetRegions: 2},
	}

	resolutionLimit := w.adaptDimensions()

	assert.True(t, resolutionLimit)
	assert.Equal(t, uint(0), dims.Get(0).Doublings())
}

func TestAdaptDimensionsResolutionLimitOnPrecisionLoss(t *testing.T) {
	dim := spatial.NewDimension(0, 1)
	dim.SetDoublings(60)
	dims := spatial.NewDimensions([]*spatial.Dimension{dim})

	w := &World{
		dimensions: dims,
		regions:    region.NewRegions(10, 1_000_000),
		organisms: []*organism.Organism{
			organismWithAxisValue(1, 0.1),
			organismWithAxisValue(2, 0.9),
		},
		constants: Constants{TargetRegions: 1_000_000},
	}

	resolutionLimit := w.adaptDimensions()

	assert.True(t, resolutionLimit)
	assert.Equal(t, uint(60), dims.Get(0).Doublings())
}
