// Package region groups organisms by spatial location into Regions, and
// Regions into adjacency Zones, implementing the carrying-capacity
// allocation, rank/truncation, and reproduction scheduling that drive one
// training epoch.
package region

import (
	"math"
	"sort"

	"github.com/cainem/hill-descent-sub001/organism"
)

// ReproductionFactor bounds how many children a region may produce in a
// single epoch: Reproduce stops once ReproductionFactor*capacity offspring
// exist across all passes, mirroring hill_descent_lib3's
// Region::REPRODUCTION_FACTOR.
const ReproductionFactor = 10

// Region is one spatial partition's organism list plus the cached
// aggregates needed for capacity allocation. Its organism list is refilled
// every epoch from each organism's current region key, while the Region
// itself and its min_score persist for as long as the key stays occupied
// (see Regions.Populate).
type Region struct {
	organisms        []*organism.Organism
	minScore         float64
	hasMinScore      bool
	carryingCapacity int
	hasCapacity      bool
}

// NewRegion returns an empty Region.
func NewRegion() *Region {
	return &Region{}
}

// AddOrganism appends o to the region, updating the cached minimum score
// if o's score (when set) is lower than the current minimum.
func (r *Region) AddOrganism(o *organism.Organism) {
	if score, ok := o.Score(); ok {
		if !r.hasMinScore || score < r.minScore {
			r.minScore = score
			r.hasMinScore = true
		}
	}
	r.organisms = append(r.organisms, o)
}

// OrganismCount returns the number of organisms currently in the region.
func (r *Region) OrganismCount() int { return len(r.organisms) }

// IsEmpty reports whether the region holds no organisms.
func (r *Region) IsEmpty() bool { return len(r.organisms) == 0 }

// Organisms returns the region's organism list. Callers may reorder it
// in place (see Sort) but must not grow or shrink it directly.
func (r *Region) Organisms() []*organism.Organism { return r.organisms }

// ClearOrganisms empties the region and resets its cached minimum score.
func (r *Region) ClearOrganisms() {
	r.organisms = nil
	r.hasMinScore = false
	r.minScore = 0
}

// clearOrganismsForRefill empties the region's organism list ahead of a new
// epoch's Populate call, without touching the cached minimum score: min_score
// is a running record of the lowest score ever observed in this cell and
// must survive an epoch in which the organism that earned it has since died
// or moved on, matching refill.rs's clear_organisms (scores are only reset
// where dimensions actually change, not on every refill).
func (r *Region) clearOrganismsForRefill() {
	r.organisms = nil
}

// MinScore returns the region's cached minimum score, if any organism has
// been scored.
func (r *Region) MinScore() (float64, bool) { return r.minScore, r.hasMinScore }

// SetMinScore overrides the cached minimum score directly.
func (r *Region) SetMinScore(score float64, ok bool) {
	r.minScore = score
	r.hasMinScore = ok
}

// CarryingCapacity returns the region's currently allocated capacity, if
// one has been computed yet (it has not on the very first epoch).
func (r *Region) CarryingCapacity() (int, bool) { return r.carryingCapacity, r.hasCapacity }

// SetCarryingCapacity records a freshly computed carrying capacity.
func (r *Region) SetCarryingCapacity(capacity int) {
	r.carryingCapacity = capacity
	r.hasCapacity = true
}

// Sort orders the region's organisms by fitness score ascending, then by
// age descending, matching Regions::sort_regions's ranking rule. Organisms
// without a score sort as if scored +Inf (worst).
func (r *Region) Sort() {
	sort.SliceStable(r.organisms, func(i, j int) bool {
		si := scoreOrWorst(r.organisms[i])
		sj := scoreOrWorst(r.organisms[j])
		if si != sj {
			return si < sj
		}
		return r.organisms[i].Age() > r.organisms[j].Age()
	})
}

func scoreOrWorst(o *organism.Organism) float64 {
	if score, ok := o.Score(); ok {
		return score
	}
	return math.Inf(1)
}
