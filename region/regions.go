package region

import (
	"sort"

	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/spatial"
	"github.com/cpmech/gosl/chk"
)

// Entry pairs an organism with its already-computed region key, the input
// to Regions.Populate.
type Entry struct {
	Organism *organism.Organism
	Key      spatial.RegionKey
}

// Regions is the deterministic-iteration map from RegionKey to Region, plus
// the target grid density (targetRegions, "Z") and population target
// ("P") used by capacity allocation. A Region's organism list is rebuilt
// every epoch from the master organism list (Populate), but the Region
// object itself, and its persistent min_score, survive across epochs for
// as long as the key keeps being occupied; Prune is what finally drops a
// key once it goes a Populate call with no organisms at all.
type Regions struct {
	byKey         map[string]*Region
	keys          []spatial.RegionKey
	targetRegions int
	populationP   int
}

// NewRegions constructs an empty Regions container. Panics if populationP
// or targetRegions is zero.
func NewRegions(populationP, targetRegions int) *Regions {
	if populationP == 0 {
		chk.Panic("region: population target must be greater than 0")
	}
	if targetRegions == 0 {
		chk.Panic("region: target region count must be greater than 0")
	}
	return &Regions{
		byKey:         make(map[string]*Region),
		targetRegions: targetRegions,
		populationP:   populationP,
	}
}

func (rs *Regions) TargetRegions() int { return rs.targetRegions }
func (rs *Regions) PopulationTarget() int { return rs.populationP }
func (rs *Regions) Len() int { return len(rs.keys) }
func (rs *Regions) IsEmpty() bool { return len(rs.keys) == 0 }

// Get returns the Region for key, or nil if no organism currently occupies it.
func (rs *Regions) Get(key spatial.RegionKey) *Region {
	return rs.byKey[key.AsMapKey()]
}

// Keys returns the region keys in stable insertion order (first-seen across
// the region map's lifetime, not reset each Populate).
func (rs *Regions) Keys() []spatial.RegionKey { return rs.keys }

// getOrInsert returns the Region for key, creating it (and recording its
// key in iteration order) if this is the first organism seen there.
func (rs *Regions) getOrInsert(key spatial.RegionKey) *Region {
	mapKey := key.AsMapKey()
	r, ok := rs.byKey[mapKey]
	if !ok {
		r = NewRegion()
		rs.byKey[mapKey] = r
		rs.keys = append(rs.keys, key)
	}
	return r
}

// Populate clears every existing region's organism list (preserving its
// persistent min_score, grounded on refill.rs's clear_organisms) and
// reinserts entries, creating regions on demand for keys not seen before.
// Each region's min_score is then updated monotonically as organisms are
// added (Region.AddOrganism); it never moves upward just because a
// Populate call happened, only Prune (below) can remove a region once it
// has no organisms left at all.
func (rs *Regions) Populate(entries []Entry) {
	for _, r := range rs.byKey {
		r.clearOrganismsForRefill()
	}
	for _, e := range entries {
		r := rs.getOrInsert(e.Key)
		r.AddOrganism(e.Organism)
	}
	rs.Prune()
}

// Prune drops every region left empty (e.g. after dead-organism removal).
func (rs *Regions) Prune() {
	kept := rs.keys[:0]
	for _, key := range rs.keys {
		mapKey := key.AsMapKey()
		r := rs.byKey[mapKey]
		if r.IsEmpty() {
			delete(rs.byKey, mapKey)
			continue
		}
		kept = append(kept, key)
	}
	rs.keys = kept
}

// SortAll orders every region's organisms by rank (score ascending, age
// descending), the precondition for TruncateAll and pairing for
// reproduction.
func (rs *Regions) SortAll() {
	for _, key := range rs.keys {
		rs.byKey[key.AsMapKey()].Sort()
	}
}

// scoreWeight is the monotone-decreasing transform of a region/zone's
// min_score used by both zone-level and region-level capacity proportions,
// per spec section 4.3's "1/(1+min_score) or an equivalent transform".
func scoreWeight(minScore float64, hasScore bool) float64 {
	if !hasScore {
		return 0
	}
	return 1 / (1 + minScore)
}

// DistributeCapacities computes Chebyshev-adjacency zones over the current
// occupied regions, splits the population target 50/50 between the
// zones' score-proportional and size-proportional funds (AllocateZoneCapacity),
// then divides each zone's allocation among its regions proportional to the
// same score transform, with the last region in the zone absorbing the
// rounding remainder. Regions with no scored organism get weight zero.
func (rs *Regions) DistributeCapacities() {
	if len(rs.keys) == 0 {
		return
	}
	zones := ComputeZones(rs.keys)

	zoneSizes := make([]int, len(zones))
	zoneScores := make([]float64, len(zones))
	for zi, zone := range zones {
		zoneSizes[zi] = len(zone.Keys)
		var total float64
		for _, key := range zone.Keys {
			r := rs.byKey[key.AsMapKey()]
			score, ok := r.MinScore()
			total += scoreWeight(score, ok)
		}
		zoneScores[zi] = total
	}

	zoneCapacities := AllocateZoneCapacity(zoneSizes, zoneScores, rs.populationP)

	for zi, zone := range zones {
		capacity := zoneCapacities[zi]
		weights := make([]float64, len(zone.Keys))
		var totalWeight float64
		for i, key := range zone.Keys {
			r := rs.byKey[key.AsMapKey()]
			score, ok := r.MinScore()
			weights[i] = scoreWeight(score, ok)
			totalWeight += weights[i]
		}
		allocated := 0
		for i, key := range zone.Keys {
			r := rs.byKey[key.AsMapKey()]
			var share int
			switch {
			case i == len(zone.Keys)-1:
				share = capacity - allocated
				if share < 0 {
					share = 0
				}
			case totalWeight <= 0:
				share = 0
			default:
				share = int(float64(capacity)*weights[i]/totalWeight + 0.5)
			}
			r.SetCarryingCapacity(share)
			allocated += share
		}
	}
}

// TruncateAll marks excess organisms dead in every over-capacity region,
// protecting organisms of age <= 1 as required by spec section 4.3. If no
// region has a carrying capacity yet (DistributeCapacities has not run on
// them) this is a no-op. Regions must already be sorted (see SortAll).
func (rs *Regions) TruncateAll() {
	anyCapacitySet := false
	for _, key := range rs.keys {
		if _, ok := rs.byKey[key.AsMapKey()].CarryingCapacity(); ok {
			anyCapacitySet = true
			break
		}
	}
	if !anyCapacitySet {
		return
	}
	for _, key := range rs.keys {
		rs.byKey[key.AsMapKey()].truncate()
	}
}

// truncate marks the worst-ranked organisms in r dead until at capacity,
// skipping organisms of age <= 1. If that protection prevents reaching
// capacity, r is left temporarily over capacity.
func (r *Region) truncate() {
	capacity, ok := r.CarryingCapacity()
	if !ok {
		return
	}
	excess := r.OrganismCount() - capacity
	if excess <= 0 {
		return
	}
	for i := len(r.organisms) - 1; i >= 0 && excess > 0; i-- {
		o := r.organisms[i]
		if o.Age() <= 1 {
			continue
		}
		o.Kill()
		excess--
	}
}

// RemoveDead drops dead organisms from every region (and prunes regions
// left empty).
func (rs *Regions) RemoveDead() {
	for _, key := range rs.keys {
		r := rs.byKey[key.AsMapKey()]
		r.organisms = filterAlive(r.organisms)
	}
	rs.Prune()
}

func filterAlive(organisms []*organism.Organism) []*organism.Organism {
	kept := organisms[:0]
	for _, o := range organisms {
		if !o.Dead() {
			kept = append(kept, o)
		}
	}
	return kept
}

// sortedKeys returns a copy of rs.keys sorted by hash then values, used
// only where a fully deterministic traversal order independent of
// insertion order is required (e.g. reporting).
func (rs *Regions) sortedKeys() []spatial.RegionKey {
	keys := append([]spatial.RegionKey(nil), rs.keys...)
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Hash() != keys[j].Hash() {
			return keys[i].Hash() < keys[j].Hash()
		}
		vi, vj := keys[i].Values(), keys[j].Values()
		for k := range vi {
			if vi[k] != vj[k] {
				return vi[k] < vj[k]
			}
		}
		return false
	})
	return keys
}
