package spatial

import (
	"math"
	"sort"
)

// relativeTolerance and absoluteMinTolerance mirror
// hill_descent_lib3/src/world/regions/count_unique_values_with_tolerance.rs:
// values closer together than a magnitude-scaled fraction of machine
// epsilon are treated as the same value, preventing floating-point noise
// from registering as genuine diversity along an axis.
const (
	epsilon              = 2.220446049250313e-16
	relativeTolerance    = 100.0 * epsilon
	absoluteMinTolerance = 1000.0 * epsilon
)

// CountUniqueValuesWithTolerance counts the distinct values in values,
// treating two values as equal if their difference is smaller than a
// relative tolerance scaled to the larger of the two magnitudes.
func CountUniqueValuesWithTolerance(values []float64) int {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	count := 0
	var lastValue float64
	haveLast := false
	for _, v := range sorted {
		if haveLast {
			magnitude := math.Max(math.Abs(v), math.Abs(lastValue))
			tolerance := math.Max(magnitude, absoluteMinTolerance) * relativeTolerance
			if math.Abs(v-lastValue) < tolerance {
				continue
			}
		}
		count++
		lastValue = v
		haveLast = true
	}
	return count
}
