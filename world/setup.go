package world

import (
	"math/rand"

	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/cainem/hill-descent-sub001/genome"
	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/parameter"
	"github.com/cainem/hill-descent-sub001/region"
	"github.com/cainem/hill-descent-sub001/sampling"
	"github.com/cainem/hill-descent-sub001/spatial"
	"github.com/cpmech/gosl/chk"
)

// Bound is an inclusive [Lo,Hi] range for one problem-space dimension.
type Bound struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// systemParameterBounds are the fixed default ranges the 7 leading loci of
// every founder organism are sampled from, per spec.md section 6: m1..m5 in
// [0,1], max_age in [10,1000], crossover_points in [1,10].
var systemParameterBounds = []Bound{
	{0, 1}, {0, 1}, {0, 1}, {0, 1}, {0, 1},
	{10, 1000},
	{1, 10},
}

// Setup constructs a founder population of constants.Population organisms
// whose expressed problem values are sampled via the hybrid range rule
// (sampling.HybridRange) within paramRange, and whose 7 system parameters
// are sampled within the fixed default bounds above. Grounded on
// original_source/hill_descent_lib3/src/world/new.rs, generalized to this
// module's package split (organism ids are allocated here rather than by a
// pool actor).
func Setup(paramRange []Bound, constants Constants, fn fitness.WorldFunction) *World {
	if len(paramRange) == 0 {
		chk.Panic("world: setup requires at least one problem-space dimension")
	}
	if constants.Population <= 0 {
		chk.Panic("world: population must be > 0")
	}
	if constants.TargetRegions <= 0 {
		chk.Panic("world: target regions must be > 0")
	}

	rng := rand.New(rand.NewSource(int64(constants.Seed)))

	dims := make([]*spatial.Dimension, len(paramRange))
	for i, b := range paramRange {
		dims[i] = spatial.NewDimension(b.Lo, b.Hi)
	}

	allBounds := make([]Bound, 0, len(systemParameterBounds)+len(paramRange))
	allBounds = append(allBounds, systemParameterBounds...)
	allBounds = append(allBounds, paramRange...)

	w := &World{
		dimensions: spatial.NewDimensions(dims),
		regions:    region.NewRegions(constants.Population, constants.TargetRegions),
		fn:         fn,
		constants:  constants,
	}

	organisms := make([]*organism.Organism, constants.Population)
	for i := 0; i < constants.Population; i++ {
		phenotype := newRandomPhenotype(rng, allBounds)
		id := w.allocateID()
		age := randomFounderAge(rng, phenotype.SystemParameters().MaxAge())
		organisms[i] = organism.New(id, phenotype, age)
	}
	w.organisms = organisms

	return w
}

// newRandomPhenotype builds a founder Phenotype by sampling each locus
// independently, within bounds, for both of its two gametes, mirroring
// original_source/hill_descent_lib2/src/phenotype/new_random_phenotype.rs.
// Each locus starts with its adjustment flag off and a small magnitude
// derived from the bound's span, so early mutation pressure is proportional
// to how wide the caller's search range is.
func newRandomPhenotype(rng *rand.Rand, bounds []Bound) *genome.Phenotype {
	loci1 := make([]genome.Locus, len(bounds))
	loci2 := make([]genome.Locus, len(bounds))
	for i, b := range bounds {
		loci1[i] = randomLocus(rng, b)
		loci2[i] = randomLocus(rng, b)
	}
	g1 := genome.NewGamete(loci1)
	g2 := genome.NewGamete(loci2)
	return genome.New(g1, g2, rng)
}

// randomFounderAge samples a founder's starting age uniformly in
// [0,maxAge], mirroring original_source/hill_descent_lib/src/world/organisms/new.rs,
// which gives each founder a random head start rather than pinning every
// organism to age 0 on the first epoch.
func randomFounderAge(rng *rand.Rand, maxAge uint64) uint64 {
	if maxAge == 0 {
		return 0
	}
	return uint64(rng.Int63n(int64(maxAge) + 1))
}

func randomLocus(rng *rand.Rand, b Bound) genome.Locus {
	value := sampling.HybridRange(rng, b.Lo, b.Hi)
	span := b.Hi - b.Lo
	magnitude := span / 20
	if magnitude <= 0 {
		magnitude = 1
	}
	direction := genome.DirectionAdd
	if rng.Float64() < 0.5 {
		direction = genome.DirectionSub
	}
	doubling := rng.Float64() < 0.5
	adjustment := genome.NewLocusAdjustment(magnitude, direction, doubling)
	return genome.NewLocus(parameter.New(value, b.Lo, b.Hi), adjustment, false)
}
