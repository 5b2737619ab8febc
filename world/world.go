// Package world ties every other package together into the epoch driver:
// it owns the master organism list, the adaptive dimensions, and the
// region/zone partition, and exposes the handful of operations an outer
// caller needs (setup, one training run, best-score/params, a JSON
// snapshot). Grounded on
// original_source/hill_descent_lib3/src/world/world_struct.rs.
package world

import (
	"math"
	"sync"

	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/region"
	"github.com/cainem/hill-descent-sub001/spatial"
)

// Constants bundles the population-level configuration spec.md's setup
// operation takes: population size, target region count, and the seed the
// whole run is deterministic over.
type Constants struct {
	Population    int
	TargetRegions int
	Seed          uint64
}

// World is the mutable state one optimization run evolves. The organism
// list, dimensions and regions are mutated only by the driver between its
// parallel phases (see spec.md section 5); mu guards the organism list for
// outside readers and the best-score fields, which concurrent fitness
// workers update through updateBest.
type World struct {
	mu sync.Mutex

	organisms  []*organism.Organism
	nextID     uint64
	dimensions *spatial.Dimensions
	regions    *region.Regions
	fn         fitness.WorldFunction
	constants  Constants

	bestScore      float64
	bestOrganismID uint64
	hasBest        bool
	bestParams     []float64
}

// Organisms returns the master organism list. Callers must not retain the
// returned slice across a TrainingRun call, since the driver replaces it.
func (w *World) Organisms() []*organism.Organism {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]*organism.Organism(nil), w.organisms...)
}

// Dimensions returns the world's current adaptive grid.
func (w *World) Dimensions() *spatial.Dimensions { return w.dimensions }

// Regions returns the world's region/zone partition.
func (w *World) Regions() *region.Regions { return w.regions }

// Constants returns the population-level configuration this world was set
// up with.
func (w *World) Constants() Constants { return w.constants }

// GetBestScore returns the lowest score ever observed in the master list,
// or math.MaxFloat64 if no organism has been scored yet.
func (w *World) GetBestScore() float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.hasBest {
		return math.MaxFloat64
	}
	return w.bestScore
}

// GetBestParams returns the problem-space expressed values of the
// best-scoring organism seen so far, or nil if none has been scored.
func (w *World) GetBestParams() []float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.hasBest {
		return nil
	}
	return append([]float64(nil), w.bestParams...)
}

func (w *World) updateBest(o *organism.Organism) {
	score, ok := o.Score()
	if !ok {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.hasBest || score < w.bestScore {
		w.bestScore = score
		w.bestOrganismID = o.ID()
		w.hasBest = true
		w.bestParams = append([]float64(nil), o.Phenotype().ProblemValues()...)
	}
}

func (w *World) allocateID() uint64 {
	id := w.nextID
	w.nextID++
	return id
}
