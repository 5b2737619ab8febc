package genome

import (
	"math/rand"

	"github.com/cainem/hill-descent-sub001/parameter"
)

// Locus is one position in a gamete: a value, the adjustment that would be
// applied to it, and whether that adjustment is currently "live" (ApplyFlag).
type Locus struct {
	Value      *parameter.Parameter
	Adjustment LocusAdjustment
	ApplyFlag  bool
}

// NewLocus constructs a Locus.
func NewLocus(value *parameter.Parameter, adjustment LocusAdjustment, applyFlag bool) Locus {
	return Locus{Value: value, Adjustment: adjustment, ApplyFlag: applyFlag}
}

// Clone returns a deep copy of l (the Value parameter is copied, not shared).
func (l Locus) Clone() Locus {
	return Locus{Value: l.Value.Clone(), Adjustment: l.Adjustment, ApplyFlag: l.ApplyFlag}
}

// Mutate applies the single-locus mutation rule of spec.md section 4.1: five
// independent Bernoulli trials against the organism's own system parameters.
// Mutates l in place using rng, which must be a region-local deterministic
// stream (see sampling package) so that reproduction stays reproducible.
func (l *Locus) Mutate(sys SystemParameters, rng *rand.Rand) {
	if !l.ApplyFlag && rng.Float64() < sys.M1() {
		l.ApplyFlag = true
	} else if l.ApplyFlag && rng.Float64() < sys.M2() {
		l.ApplyFlag = false
	}

	if rng.Float64() < sys.M3() {
		l.Adjustment = l.Adjustment.withDoublingFlipped()
	}

	if rng.Float64() < sys.M4() {
		l.Adjustment = l.Adjustment.withDirectionFlipped()
	}

	if rng.Float64() < sys.M5() {
		delta := l.Adjustment.Signed()
		l.Value.Set(l.Value.Get() + delta)
		if rng.Float64() < sys.M3() {
			l.Adjustment = l.Adjustment.doubledOrHalved()
		}
	}
}
