package genome

import (
	"math"
	"math/rand"

	"github.com/cespare/xxhash/v2"
	"github.com/cpmech/gosl/chk"
)

// Phenotype is an organism's full genetic material: two gametes plus the
// expressed values derived from them. The expressed slice is computed once
// at construction time and cached, mirroring
// original_source/src/phenotype.rs's eager Phenotype::new.
type Phenotype struct {
	gamete1, gamete2 Gamete
	expressed        []float64
	expressedHash    uint64
}

// New builds a Phenotype from two gametes of equal length, computing and
// caching the expressed values using rng. Panics if the gametes differ in
// length.
func New(g1, g2 Gamete, rng *rand.Rand) *Phenotype {
	if g1.Len() != g2.Len() {
		chk.Panic("genome: phenotype gametes must have the same length (%d vs %d)", g1.Len(), g2.Len())
	}
	expressed := expressValues(g1, g2, rng)
	return &Phenotype{
		gamete1:       g1,
		gamete2:       g2,
		expressed:     expressed,
		expressedHash: hashExpressed(expressed, numSystemParameters),
	}
}

// Gametes returns the two gametes that make up the phenotype.
func (p *Phenotype) Gametes() (Gamete, Gamete) { return p.gamete1, p.gamete2 }

// ExpressedValues returns the cached expressed parameter values, system
// parameters first followed by the problem-specific values.
func (p *Phenotype) ExpressedValues() []float64 { return p.expressed }

// ExpressedHash returns a cache-friendly hash of only the problem-specific
// expressed values (the system parameters are skipped), so phenotypes that
// differ only in their system parameters hash the same.
func (p *Phenotype) ExpressedHash() uint64 { return p.expressedHash }

// SystemParameters derives this phenotype's SystemParameters from the first
// numSystemParameters expressed values.
func (p *Phenotype) SystemParameters() SystemParameters {
	return NewSystemParameters(p.expressed[:numSystemParameters])
}

// ProblemValues returns the expressed values after the leading system
// parameters, i.e. the coordinates actually passed to the world function.
func (p *Phenotype) ProblemValues() []float64 {
	if len(p.expressed) <= numSystemParameters {
		return nil
	}
	return p.expressed[numSystemParameters:]
}

// expressValues implements the regression rule of spec.md section 4.1: for
// each locus pair, order by adjustment checksum, derive a midpoint from the
// two checksums scaled to [0,1], and pick whichever locus's value a draw
// against that midpoint selects (ties broken by a coin flip), exactly as
// original_source/src/phenotype.rs's compute_expressed.
func expressValues(g1, g2 Gamete, rng *rand.Rand) []float64 {
	const maxU64 = float64(math.MaxUint64)
	loci1, loci2 := g1.Loci, g2.Loci
	result := make([]float64, len(loci1))
	for i := range loci1 {
		l1, l2 := loci1[i], loci2[i]
		a, b := l1, l2
		if l1.Adjustment.Checksum() > l2.Adjustment.Checksum() {
			a, b = l2, l1
		}
		ca := float64(a.Adjustment.Checksum()) / maxU64
		cb := float64(b.Adjustment.Checksum()) / maxU64
		midpoint := (ca + cb) / 2.0
		r := rng.Float64()
		var value float64
		switch {
		case a.Adjustment.Checksum() == b.Adjustment.Checksum():
			if r < 0.5 {
				value = a.Value.Get()
			} else {
				value = b.Value.Get()
			}
		case r <= midpoint:
			value = a.Value.Get()
		default:
			value = b.Value.Get()
		}
		result[i] = value
	}
	return result
}

// hashExpressed hashes expressed[skip:] via xxhash, treating a slice with no
// elements past skip the same as an empty slice.
func hashExpressed(expressed []float64, skip int) uint64 {
	if len(expressed) <= skip {
		return xxhash.Sum64(nil)
	}
	tail := expressed[skip:]
	buf := make([]byte, 8*len(tail))
	for i, v := range tail {
		bits := math.Float64bits(v)
		for b := 0; b < 8; b++ {
			buf[i*8+b] = byte(bits >> (8 * b))
		}
	}
	return xxhash.Sum64(buf)
}

// SexualReproduction combines two parent phenotypes into two offspring: each
// parent undergoes meiosis (Reproduce) over its own two gametes using its own
// system parameters' crossover count, then the first meiotic product of each
// parent is paired into one offspring and the second meiotic products into
// another, following original_source/src/phenotype/sexual_reproduction.rs.
// Panics if the parents' gamete lengths differ.
func SexualReproduction(parent1, parent2 *Phenotype, rng *rand.Rand) (*Phenotype, *Phenotype) {
	if parent1.gamete1.Len() != parent2.gamete1.Len() {
		chk.Panic("genome: parents must have gametes of the same length for sexual reproduction")
	}
	gameteLen := parent1.gamete1.Len()

	sys1 := parent1.SystemParameters()
	cross1 := CalculateCrossovers(sys1.M3(), gameteLen)
	m1g1, m1g2 := Reproduce(parent1.gamete1, parent1.gamete2, cross1, rng, sys1)

	sys2 := parent2.SystemParameters()
	cross2 := CalculateCrossovers(sys2.M3(), gameteLen)
	m2g1, m2g2 := Reproduce(parent2.gamete1, parent2.gamete2, cross2, rng, sys2)

	offspring1 := New(m1g1, m2g1, rng)
	offspring2 := New(m1g2, m2g2, rng)
	return offspring1, offspring2
}

// AsexualReproduction produces a single offspring from p alone, by
// recombining p's own two gametes with each other, following
// original_source/src/phenotype/asexual_reproduction.rs.
func (p *Phenotype) AsexualReproduction(rng *rand.Rand) *Phenotype {
	sys := p.SystemParameters()
	gameteLen := p.gamete1.Len()
	crossovers := CalculateCrossovers(sys.M3(), gameteLen)
	a, b := Reproduce(p.gamete1, p.gamete2, crossovers, rng, sys)
	return New(a, b, rng)
}
