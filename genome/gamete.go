package genome

import (
	"math/rand"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Gamete is an ordered sequence of loci. Two gametes make up a Phenotype.
type Gamete struct {
	Loci []Locus
}

// NewGamete wraps loci into a Gamete. Panics if loci is empty.
func NewGamete(loci []Locus) Gamete {
	if len(loci) == 0 {
		chk.Panic("genome: gamete must have at least one locus")
	}
	return Gamete{Loci: loci}
}

// Len returns the number of loci.
func (g Gamete) Len() int { return len(g.Loci) }

// Clone returns a deep copy of g.
func (g Gamete) Clone() Gamete {
	loci := make([]Locus, len(g.Loci))
	for i, l := range g.Loci {
		loci[i] = l.Clone()
	}
	return Gamete{Loci: loci}
}

// Mutate mutates every locus of g in place, each against its own Bernoulli
// trials, using rng as the shared region-local deterministic stream.
func (g Gamete) Mutate(sys SystemParameters, rng *rand.Rand) {
	for i := range g.Loci {
		g.Loci[i].Mutate(sys, rng)
	}
}

// Crossover produces a single child gamete from two parent gametes,
// cutting at ncuts random positions and alternating which parent supplies
// each resulting segment, generalizing avmi-goga/operators.go's
// GenerateCxEnds/FltCrossover cut-and-alternate scheme to locus-typed genes.
// Panics if the two gametes differ in length.
func Crossover(a, b Gamete, ncuts int, rng *rand.Rand) Gamete {
	if a.Len() != b.Len() {
		chk.Panic("genome: cannot cross gametes of different length (%d vs %d)", a.Len(), b.Len())
	}
	ends := crossoverEnds(a.Len(), ncuts, rng)
	child := make([]Locus, a.Len())
	fromA := true
	start := 0
	for _, end := range ends {
		src := a.Loci
		if !fromA {
			src = b.Loci
		}
		for j := start; j < end; j++ {
			child[j] = src[j].Clone()
		}
		start = end
		fromA = !fromA
	}
	return Gamete{Loci: child}
}

// Reproduce performs meiosis on a pair of gametes: it cuts both at the same
// ncuts positions and produces two complementary offspring (one taking the
// even-numbered segments from a, the other from b), then mutates each
// product independently against sys. Requires gameteLen > 2*ncuts, mirroring
// the invariant enforced by the original gamete reproduction routine. Panics
// if the two gametes differ in length or ncuts is too large for the length.
func Reproduce(a, b Gamete, ncuts int, rng *rand.Rand, sys SystemParameters) (Gamete, Gamete) {
	if a.Len() != b.Len() {
		chk.Panic("genome: cannot reproduce gametes of different length (%d vs %d)", a.Len(), b.Len())
	}
	size := a.Len()
	if size == 0 || size <= 2*ncuts {
		chk.Panic("genome: gamete length %d must be > 2*crossovers (%d)", size, ncuts)
	}
	ends := crossoverEnds(size, ncuts, rng)
	childA := make([]Locus, size)
	childB := make([]Locus, size)
	fromA := true
	start := 0
	for _, end := range ends {
		srcA, srcB := a.Loci, b.Loci
		if !fromA {
			srcA, srcB = b.Loci, a.Loci
		}
		for j := start; j < end; j++ {
			childA[j] = srcA[j].Clone()
			childB[j] = srcB[j].Clone()
		}
		start = end
		fromA = !fromA
	}
	ga := Gamete{Loci: childA}
	gb := Gamete{Loci: childB}
	ga.Mutate(sys, rng)
	gb.Mutate(sys, rng)
	return ga, gb
}

// CalculateCrossovers derives a valid crossover-point count from m3, capped
// so that gameteLen > 2*crossovers always holds. Returns 0 for a zero-length
// gamete, in which case Reproduce is expected to panic if called.
func CalculateCrossovers(m3 float64, gameteLen int) int {
	if gameteLen == 0 {
		return 0
	}
	desired := int(m3 + 0.5)
	if desired < 0 {
		desired = 0
	}
	maxAllowed := (gameteLen - 1) / 2
	if desired > maxAllowed {
		return maxAllowed
	}
	return desired
}

// crossoverEnds picks ncuts distinct cut points in [1,size-1], sorts them,
// and appends size as the final segment boundary. ncuts <= 0 is a legitimate
// outcome of CalculateCrossovers (an organism whose m3 rounds down to zero
// crossover points) and yields a single segment spanning the whole gamete,
// i.e. no recombination at all, not a forced single cut.
func crossoverEnds(size, ncuts int, rng *rand.Rand) []int {
	if size < 2 || ncuts <= 0 {
		return []int{size}
	}
	if ncuts >= size {
		ncuts = size - 1
	}
	chosen := make(map[int]bool, ncuts)
	for len(chosen) < ncuts {
		chosen[1+rng.Intn(size-1)] = true
	}
	ends := make([]int, 0, ncuts+1)
	for cut := range chosen {
		ends = append(ends, cut)
	}
	sort.Ints(ends)
	ends = append(ends, size)
	return ends
}
