package genome

import "github.com/cpmech/gosl/chk"

// numSystemParameters is the fixed count of leading expressed values that are
// consumed by SystemParameters rather than passed to the world function. An
// organism's phenotype must express at least this many loci.
const numSystemParameters = 7

// SystemParameters are the first numSystemParameters expressed values of
// every phenotype: the mutation rates m1..m5, the maximum age, and the
// number of crossover points used during sexual reproduction. Every organism
// carries and evolves its own copy, mirroring
// original_source/hill_descent_lib2/src/phenotype/system_parameters.rs.
type SystemParameters struct {
	m1, m2, m3, m4, m5 float64
	maxAge             uint64
	crossoverPoints    uint64
}

// NewSystemParameters builds a SystemParameters from the first
// numSystemParameters expressed values of a phenotype. Panics if values does
// not have exactly that many entries.
func NewSystemParameters(values []float64) SystemParameters {
	if len(values) != numSystemParameters {
		chk.Panic("genome: system parameters need exactly %d values, got %d", numSystemParameters, len(values))
	}
	return SystemParameters{
		m1:              clampUnit(values[0]),
		m2:              clampUnit(values[1]),
		m3:              clampUnit(values[2]),
		m4:              clampUnit(values[3]),
		m5:              clampUnit(values[4]),
		maxAge:          uint64NonNegative(values[5]),
		crossoverPoints: uint64AtLeastOne(values[6]),
	}
}

// M1 is the probability a dormant locus adjustment becomes active.
func (s SystemParameters) M1() float64 { return s.m1 }

// M2 is the probability an active locus adjustment becomes dormant.
func (s SystemParameters) M2() float64 { return s.m2 }

// M3 is the probability a locus adjustment's doubling flag flips.
func (s SystemParameters) M3() float64 { return s.m3 }

// M4 is the probability a locus adjustment's direction flips.
func (s SystemParameters) M4() float64 { return s.m4 }

// M5 is the probability a locus value is perturbed by its adjustment.
func (s SystemParameters) M5() float64 { return s.m5 }

// MaxAge is the age at which an organism dies of old age.
func (s SystemParameters) MaxAge() uint64 { return s.maxAge }

// CrossoverPoints is the 7th evolvable system locus. It is not itself
// consulted by meiosis (CalculateCrossovers derives the actual cut count from
// M3, matching original_source/src/phenotype/calculate_crossovers.rs and
// sexual_reproduction.rs, both of which take m3 rather than this field); it
// exists as its own evolvable trait because the original system_parameters.rs
// defines and exposes it that way.
func (s SystemParameters) CrossoverPoints() uint64 { return s.crossoverPoints }

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func uint64NonNegative(v float64) uint64 {
	if v < 0 {
		return 0
	}
	return uint64(v)
}

func uint64AtLeastOne(v float64) uint64 {
	n := uint64NonNegative(v)
	if n < 1 {
		return 1
	}
	return n
}
