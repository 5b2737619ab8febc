package world

import (
	"context"
	"runtime"

	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/region"
	"github.com/cainem/hill-descent-sub001/sampling"
	"github.com/cainem/hill-descent-sub001/spatial"
	"golang.org/x/sync/errgroup"
)

// TrainingRun executes one full epoch in the eight-step order of spec.md
// section 4.5: age and age-cull, region-key recompute with bounds-expansion
// retry, fitness evaluation, region refill, zone-based capacity
// distribution, sort/truncate/reproduce, dead removal, and finally dimension
// adaptation. Returns true iff the resolution limit described in section 4.6
// is reached this epoch.
func (w *World) TrainingRun(data fitness.TrainingData) bool {
	w.ageAndCull()
	w.recomputeRegionKeys()
	w.evaluateFitness(data)
	w.refillRegions()
	w.regions.DistributeCapacities()
	w.sortTruncateReproduce()
	w.removeDead()
	return w.adaptDimensions()
}

// ageAndCull implements step 1: every organism ages by one epoch, and any
// whose new age exceeds its own evolved max_age dies of old age.
func (w *World) ageAndCull() {
	for _, o := range w.organisms {
		if o.Dead() {
			continue
		}
		newAge := o.IncrementAge()
		if newAge > o.Phenotype().SystemParameters().MaxAge() {
			o.Kill()
		}
	}
}

// recomputeRegionKeys implements step 2: every live organism's region key is
// recomputed from its current expressed problem values. If any coordinate
// falls outside its dimension's bounds, that axis is expanded and the whole
// step restarts, matching spec.md's "retry the whole step" rule.
func (w *World) recomputeRegionKeys() {
	version := w.dimensions.Version()
	for {
		outOfBoundsAxis := -1
		keys := make(map[*organism.Organism]spatial.RegionKey, len(w.organisms))
		for _, o := range w.organisms {
			if o.Dead() {
				continue
			}
			point := o.Phenotype().ProblemValues()
			key, ok := w.dimensions.RegionKeyFor(point)
			if !ok {
				outOfBoundsAxis = firstOutOfBoundsAxis(w.dimensions, point)
				break
			}
			keys[o] = key
		}
		if outOfBoundsAxis == -1 {
			for o, key := range keys {
				o.SetRegionKey(key, version)
			}
			return
		}
		w.dimensions.Get(outOfBoundsAxis).ExpandBounds()
		w.dimensions.BumpVersion()
		version = w.dimensions.Version()
	}
}

func firstOutOfBoundsAxis(dims *spatial.Dimensions, point []float64) int {
	for i, v := range point {
		dim := dims.Get(i)
		if v < dim.Min() || v > dim.Max() {
			return i
		}
	}
	return 0
}

// evaluateFitnessWorkers bounds how many fitness evaluations run
// concurrently; GOMAXPROCS is a reasonable default since the user function is
// required to be a pure, thread-safe computation (spec.md section 5).
func evaluateFitnessWorkers() int {
	n := runtime.GOMAXPROCS(0)
	if n < 1 {
		return 1
	}
	return n
}

// evaluateFitness implements step 3: every scored-None organism is scored
// concurrently, bounded by evaluateFitnessWorkers, via errgroup.
func (w *World) evaluateFitness(data fitness.TrainingData) {
	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(evaluateFitnessWorkers())
	for _, o := range w.organisms {
		o := o
		if o.Dead() {
			continue
		}
		if _, ok := o.Score(); ok {
			continue
		}
		g.Go(func() error {
			score := fitness.Evaluate(w.fn, o.Phenotype().ProblemValues(), data, 0)
			o.SetScore(score)
			w.updateBest(o)
			return nil
		})
	}
	_ = g.Wait()
}

// refillRegions implements step 4: region membership is fully rebuilt from
// the master list's current region keys.
func (w *World) refillRegions() {
	entries := make([]region.Entry, 0, len(w.organisms))
	for _, o := range w.organisms {
		if o.Dead() {
			continue
		}
		key, _, ok := o.RegionKey()
		if !ok {
			continue
		}
		entries = append(entries, region.Entry{Organism: o, Key: key})
	}
	w.regions.Populate(entries)
}

// sortTruncateReproduce implements step 6: each region is sorted and
// truncated to its carrying capacity (section 4.3), then refilled back
// toward that capacity by reproduction (section 4.4). Offspring join both
// their region and the master list; ids are allocated here, in driver
// order, so runs stay deterministic regardless of worker-pool scheduling.
func (w *World) sortTruncateReproduce() {
	w.regions.SortAll()
	w.regions.TruncateAll()

	for _, key := range w.regions.Keys() {
		r := w.regions.Get(key)
		capacity, ok := r.CarryingCapacity()
		if !ok {
			continue
		}
		want := capacity - aliveCount(r.Organisms())
		if want <= 0 {
			continue
		}
		rng := sampling.NewRegionRand(w.constants.Seed, key)
		offspring := region.Reproduce(r, want, rng)
		for _, off := range offspring {
			id := w.allocateID()
			parent2 := off.Parent2
			child := organism.NewChild(id, off.Phenotype, off.Parent1, &parent2)
			w.organisms = append(w.organisms, child)
			r.AddOrganism(child)
		}
	}
}

func aliveCount(organisms []*organism.Organism) int {
	n := 0
	for _, o := range organisms {
		if !o.Dead() {
			n++
		}
	}
	return n
}

// removeDead implements step 7: dead organisms are dropped from both the
// master list and every region, and any region left empty is pruned.
func (w *World) removeDead() {
	w.organisms = filterAliveOrganisms(w.organisms)
	w.regions.RemoveDead()
}

func filterAliveOrganisms(organisms []*organism.Organism) []*organism.Organism {
	kept := organisms[:0]
	for _, o := range organisms {
		if !o.Dead() {
			kept = append(kept, o)
		}
	}
	return kept
}
