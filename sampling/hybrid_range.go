// Package sampling generates random values for the world's initial
// population and derives the per-region deterministic RNG streams that keep
// epoch processing reproducible under concurrency.
package sampling

import (
	"math"
	"math/rand"
)

// ratioThreshold is the high/low magnitude ratio above which a range is
// treated as spanning too many orders of magnitude for uniform linear
// sampling to explore it evenly; 1000 corresponds to 3 decades.
const ratioThreshold = 1000.0

// maxLogUniformAttempts bounds the rejection loop used for the cross-zero,
// wide-magnitude case, guaranteeing termination.
const maxLogUniformAttempts = 10_000

// HybridRange draws a value from [low,high], switching between a uniform
// linear draw and a log-uniform draw depending on how the range's
// magnitude is distributed, grounded verbatim on
// original_source/hill_descent_lib/src/gen_hybrid_range.rs.
//
// - low > high returns NaN.
// - low == high returns that value.
// - A range crossing zero with a magnitude beyond ratioThreshold uses a
//   signed log-uniform draw (bounded-retry; on exhaustion returns the drawn
//   sign times min(maxAbs, high)).
// - An entirely positive or entirely negative range whose high/low ratio
//   exceeds ratioThreshold uses a log-uniform draw.
// - Otherwise, a uniform linear draw.
func HybridRange(rng *rand.Rand, low, high float64) float64 {
	if low > high {
		return math.NaN()
	}
	if low == high {
		return low
	}

	if low < 0 && high > 0 {
		maxAbs := math.Max(math.Abs(low), high)
		if maxAbs > ratioThreshold {
			return crossZeroLogUniform(rng, low, high, maxAbs)
		}
	} else if low >= 0 {
		if low > 0 && high/low > ratioThreshold {
			return positiveLogUniform(rng, low, high)
		}
	} else {
		// low < 0 && high < 0
		if math.Abs(low)/math.Abs(high) > ratioThreshold {
			logLow := math.Log10(math.Abs(high))
			logHigh := math.Log10(math.Abs(low))
			return -math.Pow(10, uniformInclusive(rng, logLow, logHigh))
		}
	}

	return uniformInclusive(rng, low, high)
}

func positiveLogUniform(rng *rand.Rand, low, high float64) float64 {
	logLow := math.Log10(low)
	logHigh := math.Log10(high)
	return math.Pow(10, uniformInclusive(rng, logLow, logHigh))
}

func crossZeroLogUniform(rng *rand.Rand, low, high, maxAbs float64) float64 {
	minExp := math.Log10(math.SmallestNonzeroFloat64)
	maxExp := math.Log10(maxAbs)
	sign := 1.0
	if rng.Float64() >= 0.5 {
		sign = -1.0
	}
	for i := 0; i < maxLogUniformAttempts; i++ {
		exponent := uniformInclusive(rng, minExp, maxExp)
		mantissa := 1.0 + rng.Float64()*9.0
		unsigned := mantissa * math.Pow(10, exponent)
		if math.IsInf(unsigned, 0) || math.IsNaN(unsigned) || unsigned > maxAbs {
			continue
		}
		candidate := sign * unsigned
		if candidate >= low && candidate <= high {
			return candidate
		}
	}
	return sign * math.Min(maxAbs, high)
}

// uniformInclusive returns a when a == b, and otherwise a uniform draw
// a + Float64()*(b-a); since rand.Float64 is half-open [0,1), b itself is
// not reached except through floating-point rounding.
func uniformInclusive(rng *rand.Rand, a, b float64) float64 {
	if a == b {
		return a
	}
	return a + rng.Float64()*(b-a)
}
