// Package organism implements the population's unit of selection: a genome
// (Phenotype) paired with mutable lifecycle state shared between the
// master population list and the spatial grid's per-region lists.
package organism

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/cainem/hill-descent-sub001/genome"
	"github.com/cainem/hill-descent-sub001/spatial"
)

// Organism is a population member: an id, its parentage, a shared
// phenotype, and mutable lifecycle fields that may be touched concurrently
// by worker-pool phases of an epoch. Grounded on spec.md's Organism
// description and the field layout of
// original_source/hill_descent_lib2/src/organism/mod.rs, adapted from that
// file's message-passing pool-item design to plain shared pointers plus
// atomics, since Go's GC (not a thread-pool-actor model) owns the objects.
type Organism struct {
	id         uint64
	parent1    uint64 // meaningful only when hasParent1 is set (see Parents)
	hasParent1 bool
	parent2    uint64
	hasParent2 bool

	phenotype *genome.Phenotype

	// scoreBits holds math.Float64bits(score); scoreSet reports whether a
	// score has ever been assigned. Both are updated with atomic stores so
	// concurrent fitness-evaluation workers never race on a single field.
	scoreBits uint64
	scoreSet  atomic.Bool

	age  atomic.Uint64
	dead atomic.Bool

	regionKeyMu  sync.Mutex
	regionKey    spatial.RegionKey
	hasRegionKey bool
	keyVersion   uint64
}

// New constructs a founder organism (no parents) with the given initial age.
func New(id uint64, phenotype *genome.Phenotype, initialAge uint64) *Organism {
	o := &Organism{id: id, phenotype: phenotype}
	o.age.Store(initialAge)
	return o
}

// NewChild constructs an organism descended from one or two parents.
func NewChild(id uint64, phenotype *genome.Phenotype, parent1 uint64, parent2 *uint64) *Organism {
	o := &Organism{id: id, phenotype: phenotype, parent1: parent1, hasParent1: true}
	if parent2 != nil {
		o.parent2 = *parent2
		o.hasParent2 = true
	}
	return o
}

// ID returns the organism's unique, monotonically assigned identifier.
func (o *Organism) ID() uint64 { return o.id }

// Parents returns the parent ids and whether each is present (founders have
// neither; asexual offspring have only the first).
func (o *Organism) Parents() (p1 uint64, hasP1 bool, p2 uint64, hasP2 bool) {
	return o.parent1, o.hasParent1, o.parent2, o.hasParent2
}

// Phenotype returns the organism's (immutable) genetic material.
func (o *Organism) Phenotype() *genome.Phenotype { return o.phenotype }

// Score returns the organism's fitness score and whether it has been
// evaluated yet.
func (o *Organism) Score() (float64, bool) {
	if !o.scoreSet.Load() {
		return 0, false
	}
	bits := atomic.LoadUint64(&o.scoreBits)
	return math.Float64frombits(bits), true
}

// SetScore records a fitness score, safe to call concurrently with reads.
func (o *Organism) SetScore(score float64) {
	atomic.StoreUint64(&o.scoreBits, math.Float64bits(score))
	o.scoreSet.Store(true)
}

// Age returns the organism's current age in epochs.
func (o *Organism) Age() uint64 { return o.age.Load() }

// IncrementAge advances age by one and returns the new value.
func (o *Organism) IncrementAge() uint64 { return o.age.Add(1) }

// Dead reports whether the organism has been marked dead.
func (o *Organism) Dead() bool { return o.dead.Load() }

// Kill marks the organism dead. Idempotent.
func (o *Organism) Kill() { o.dead.Store(true) }

// RegionKey returns the organism's cached region key and the Dimensions
// version it was computed against, or false if no key has been computed yet.
func (o *Organism) RegionKey() (spatial.RegionKey, uint64, bool) {
	o.regionKeyMu.Lock()
	defer o.regionKeyMu.Unlock()
	return o.regionKey, o.keyVersion, o.hasRegionKey
}

// SetRegionKey stores a freshly computed region key along with the
// Dimensions version it was computed against.
func (o *Organism) SetRegionKey(key spatial.RegionKey, version uint64) {
	o.regionKeyMu.Lock()
	defer o.regionKeyMu.Unlock()
	o.regionKey = key
	o.keyVersion = version
	o.hasRegionKey = true
}
