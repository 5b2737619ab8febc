package world

import (
	"math"

	"github.com/cainem/hill-descent-sub001/organism"
	"github.com/cainem/hill-descent-sub001/spatial"
)

// adjustmentEpsilon mirrors the machine epsilon used by spatial's tolerance
// constants, reused here to decide when a further halving would leave an
// interval indistinguishable from zero width.
const adjustmentEpsilon = 2.220446049250313e-16

// adaptDimensions implements spec.md section 4.6, step 8 of the epoch
// driver: shrink every dimension's range toward the data actually observed
// this epoch, then decide whether to subdivide the single most diverse
// axis. Returns true iff the resolution limit has been reached. Grounded on
// original_source/hill_descent_lib/src/world/dimensions/adjust_dimension_limits.rs
// (per-axis shrink) and spec.md's own subdivision/resolution-limit rules,
// which differ from that file's unconditional-apply shrink by only
// replacing a dimension's range when the observed span is narrower.
func (w *World) adaptDimensions() bool {
	numDims := w.dimensions.NumDimensions()
	if numDims == 0 || len(w.organisms) == 0 {
		return true
	}

	columns := collectProblemColumns(w.organisms, numDims)

	shrinkDimensions(w.dimensions, columns)

	bestAxis, bestUnique := pickMostDiverseAxis(columns)
	if bestUnique <= 1 {
		return true
	}

	if w.regions.Len() >= w.constants.TargetRegions {
		return true
	}

	dim := w.dimensions.Get(bestAxis)
	if subdivisionWouldLosePrecision(dim) {
		return true
	}

	dim.SetDoublings(dim.Doublings() + 1)
	w.dimensions.BumpVersion()
	return false
}

// collectProblemColumns gathers, for each axis, every live organism's
// expressed value on that axis.
func collectProblemColumns(organisms []*organism.Organism, numDims int) [][]float64 {
	columns := make([][]float64, numDims)
	for _, o := range organisms {
		if o.Dead() {
			continue
		}
		values := o.Phenotype().ProblemValues()
		for i := 0; i < numDims && i < len(values); i++ {
			columns[i] = append(columns[i], values[i])
		}
	}
	return columns
}

// shrinkDimensions narrows each dimension whose observed span is tighter
// than its current range to midpoint +/- 0.75*span (a 50% inflation over
// the observed span), or a unit width around the midpoint when every
// organism landed on the same value. Doublings are left untouched.
func shrinkDimensions(dims *spatial.Dimensions, columns [][]float64) {
	for i, values := range columns {
		if len(values) == 0 {
			continue
		}
		min, max := minMax(values)
		midpoint := (min + max) / 2
		span := max - min
		if span == 0 {
			span = 1
		} else {
			span *= 1.5
		}

		dim := dims.Get(i)
		currentWidth := dim.Max() - dim.Min()
		if span >= currentWidth {
			continue
		}
		dim.SetRange(midpoint-span/2, midpoint+span/2)
		dims.BumpVersion()
	}
}

func minMax(values []float64) (float64, float64) {
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// pickMostDiverseAxis picks the axis with the most distinct observed values
// (floating-point-tolerant), breaking ties by standard deviation.
func pickMostDiverseAxis(columns [][]float64) (axis int, uniqueCount int) {
	bestStdDev := -1.0
	for i, values := range columns {
		count := spatial.CountUniqueValuesWithTolerance(values)
		sd := stdDev(values)
		if count > uniqueCount || (count == uniqueCount && sd > bestStdDev) {
			axis, uniqueCount, bestStdDev = i, count, sd
		}
	}
	return axis, uniqueCount
}

func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return math.Sqrt(variance)
}

// subdivisionWouldLosePrecision reports whether halving dim's intervals one
// more time would produce an interval width too small to distinguish from
// floating-point noise relative to the dimension's own range.
func subdivisionWouldLosePrecision(dim *spatial.Dimension) bool {
	rangeWidth := dim.Max() - dim.Min()
	if rangeWidth == 0 {
		return true
	}
	nextIntervals := dim.NumIntervals() * 2
	nextIntervalWidth := rangeWidth / float64(nextIntervals)
	return nextIntervalWidth <= adjustmentEpsilon*math.Abs(rangeWidth)
}
