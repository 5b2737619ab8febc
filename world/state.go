package world

import (
	"encoding/json"

	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/region"
	"github.com/cainem/hill-descent-sub001/spatial"
)

// OrganismState is the per-organism projection exposed by a state snapshot:
// identity, parentage, lifecycle, and the expressed problem-space values a
// visualization collaborator would plot. Field names and organism ordering
// are stable within a major version, per spec.md section 6.
type OrganismState struct {
	ID        uint64    `json:"id"`
	Parent1   *uint64   `json:"parent1,omitempty"`
	Parent2   *uint64   `json:"parent2,omitempty"`
	Age       uint64    `json:"age"`
	Score     *float64  `json:"score,omitempty"`
	Params    []float64 `json:"params"`
	RegionKey []uint    `json:"region_key,omitempty"`
	Dead      bool      `json:"dead"`
}

// RegionState is the per-region projection: its key, occupant count, cached
// min score, current carrying capacity, and which zone it belongs to.
type RegionState struct {
	Key      []uint   `json:"key"`
	Count    int      `json:"count"`
	MinScore *float64 `json:"min_score,omitempty"`
	Capacity *int     `json:"capacity,omitempty"`
	Zone     int      `json:"zone"`
}

// StateSnapshot is the read-only JSON projection get_state_snapshot exposes
// to outer collaborators (spec.md section 6): best score/params so far,
// every live organism, and every occupied region grouped by zone.
type StateSnapshot struct {
	BestScore  float64         `json:"best_score"`
	BestParams []float64       `json:"best_params,omitempty"`
	Organisms  []OrganismState `json:"organisms"`
	Regions    []RegionState   `json:"regions"`
}

// Snapshot builds the current read-only projection of w. Grounded on
// spec.md section 6 and
// original_source/hill_descent_lib2/src/organism/mod.rs's get_web_state
// field selection, generalized here with region- and zone-level fields the
// distilled spec's "per-region counts, min-scores, capacities, zone
// membership" line calls for.
func (w *World) Snapshot() StateSnapshot {
	w.mu.Lock()
	organisms := append([]*organism.Organism(nil), w.organisms...)
	w.mu.Unlock()

	snapshot := StateSnapshot{
		BestScore:  w.GetBestScore(),
		BestParams: w.GetBestParams(),
	}

	snapshot.Organisms = make([]OrganismState, len(organisms))
	for i, o := range organisms {
		snapshot.Organisms[i] = organismState(o)
	}

	keys := w.regions.Keys()
	zoneOf := zoneAssignment(keys)
	snapshot.Regions = make([]RegionState, 0, len(keys))
	for _, key := range keys {
		r := w.regions.Get(key)
		state := RegionState{
			Key:   key.Values(),
			Count: r.OrganismCount(),
			Zone:  zoneOf[key.AsMapKey()],
		}
		if score, ok := r.MinScore(); ok {
			state.MinScore = &score
		}
		if capacity, ok := r.CarryingCapacity(); ok {
			state.Capacity = &capacity
		}
		snapshot.Regions = append(snapshot.Regions, state)
	}
	return snapshot
}

// SnapshotJSON marshals Snapshot to the stable JSON schema spec.md section 6
// calls get_state_snapshot's compatibility surface.
func (w *World) SnapshotJSON() ([]byte, error) {
	return json.Marshal(w.Snapshot())
}

func organismState(o *organism.Organism) OrganismState {
	state := OrganismState{
		ID:     o.ID(),
		Age:    o.Age(),
		Params: o.Phenotype().ProblemValues(),
		Dead:   o.Dead(),
	}
	if p1, hasP1, p2, hasP2 := o.Parents(); hasP1 {
		v := p1
		state.Parent1 = &v
		if hasP2 {
			v2 := p2
			state.Parent2 = &v2
		}
	}
	if score, ok := o.Score(); ok {
		state.Score = &score
	}
	if key, _, ok := o.RegionKey(); ok {
		state.RegionKey = key.Values()
	}
	return state
}

// zoneAssignment numbers each zone in computation order and maps every
// region key in it to that number, so the snapshot can report zone
// membership without exposing region.Zone to callers.
func zoneAssignment(keys []spatial.RegionKey) map[string]int {
	zones := region.ComputeZones(keys)
	assignment := make(map[string]int, len(keys))
	for zoneIndex, zone := range zones {
		for _, key := range zone.Keys {
			assignment[key.AsMapKey()] = zoneIndex
		}
	}
	return assignment
}
