package region

import (
	"math/rand"

	"github.com/cainem/hill-descent-sub001/genome"
	"github.com/cainem/hill-descent-sub001/organism"
)

// Offspring is a freshly bred phenotype plus the ids of the one or two
// parents that produced it, ready for the caller (world) to wrap in a new
// Organism with an allocated id.
type Offspring struct {
	Phenotype *genome.Phenotype
	Parent1   uint64
	Parent2   uint64
}

// PairForReproduction implements the "extreme pairing" rule of spec
// section 4.4: best pairs with worst, second-best with second-worst, and
// so on. For an odd count the top-ranked organism is duplicated so it
// appears at both ends of the working list, yielding ceil(n/2) pairs.
// organisms must already be sorted by rank (Region.Sort). Returns nil for
// an empty input; a single organism pairs with itself.
func PairForReproduction(organisms []*organism.Organism) [][2]*organism.Organism {
	if len(organisms) == 0 {
		return nil
	}
	working := organisms
	if len(organisms)%2 == 1 {
		working = make([]*organism.Organism, 0, len(organisms)+1)
		working = append(working, organisms[0])
		working = append(working, organisms...)
	}
	n := len(working)
	pairs := make([][2]*organism.Organism, 0, n/2)
	for i := 0; i < n/2; i++ {
		pairs = append(pairs, [2]*organism.Organism{working[i], working[n-1-i]})
	}
	return pairs
}

// Reproduce fills region up toward capacity by running extreme-pairing
// sexual reproduction passes until either wantCount offspring have been
// produced or a hard cap of ReproductionFactor*capacity children has been
// generated across all passes, whichever comes first (spec section 4.4,
// step 4). The region's live organisms are paired once and every pass
// reuses those pairs; passes stop early once the hard cap or wantCount is
// reached.
func Reproduce(r *Region, wantCount int, rng *rand.Rand) []Offspring {
	if wantCount <= 0 || r.OrganismCount() == 0 {
		return nil
	}
	capacity, _ := r.CarryingCapacity()
	hardCap := ReproductionFactor * capacity
	if hardCap <= 0 {
		hardCap = ReproductionFactor * wantCount
	}

	pairs := PairForReproduction(aliveOrganisms(r.organisms))
	if len(pairs) == 0 {
		return nil
	}

	var offspring []Offspring
	for len(offspring) < wantCount && len(offspring) < hardCap {
		for _, pair := range pairs {
			p1, p2 := pair[0].Phenotype(), pair[1].Phenotype()
			child1, child2 := genome.SexualReproduction(p1, p2, rng)
			offspring = append(offspring,
				Offspring{Phenotype: child1, Parent1: pair[0].ID(), Parent2: pair[1].ID()},
				Offspring{Phenotype: child2, Parent1: pair[0].ID(), Parent2: pair[1].ID()},
			)
			if len(offspring) >= wantCount || len(offspring) >= hardCap {
				break
			}
		}
	}
	if len(offspring) > wantCount {
		offspring = offspring[:wantCount]
	}
	return offspring
}

// aliveOrganisms filters out organisms truncation has already marked dead
// this epoch, so reproduction pairs only survivors even though Region.Sort
// keeps them in place (dead removal itself happens later, in Regions.RemoveDead).
func aliveOrganisms(organisms []*organism.Organism) []*organism.Organism {
	alive := make([]*organism.Organism, 0, len(organisms))
	for _, o := range organisms {
		if !o.Dead() {
			alive = append(alive, o)
		}
	}
	return alive
}
