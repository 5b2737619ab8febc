// Package genome implements the genetic primitives shared by every organism:
// loci, gametes, and the phenotype they express. Crossover and mutation here
// generalize the teacher's flat-slice crossover operators
// (github.com/cpmech/gosl-based avmi-goga/operators.go) to a locus-typed
// representation with per-locus, evolvable mutation behavior.
package genome

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
	"github.com/cpmech/gosl/chk"
)

// Direction is the sign applied by a LocusAdjustment when perturbing a value.
type Direction uint8

const (
	// DirectionAdd adds the adjustment magnitude to the locus value.
	DirectionAdd Direction = iota
	// DirectionSub subtracts the adjustment magnitude from the locus value.
	DirectionSub
)

// LocusAdjustment is the (magnitude, direction, doubling_flag) tuple attached
// to every Locus, plus a precomputed checksum used to order two loci
// deterministically during phenotype expression (see expressValues).
type LocusAdjustment struct {
	magnitude float64
	direction Direction
	doubling  bool
	checksum  uint64
}

// NewLocusAdjustment constructs a LocusAdjustment. Panics if magnitude < 0.
func NewLocusAdjustment(magnitude float64, direction Direction, doubling bool) LocusAdjustment {
	if magnitude < 0 {
		chk.Panic("genome: adjustment magnitude must be >= 0, got %g", magnitude)
	}
	a := LocusAdjustment{magnitude: magnitude, direction: direction, doubling: doubling}
	a.checksum = computeChecksum(magnitude, direction, doubling)
	return a
}

// Magnitude returns the non-negative adjustment magnitude.
func (a LocusAdjustment) Magnitude() float64 { return a.magnitude }

// Direction returns Add or Sub.
func (a LocusAdjustment) Direction() Direction { return a.direction }

// Doubling reports whether mutation of this adjustment doubles (true) or
// halves (false) the magnitude.
func (a LocusAdjustment) Doubling() bool { return a.doubling }

// Checksum returns the precomputed 64-bit checksum over (magnitude, direction, doubling).
func (a LocusAdjustment) Checksum() uint64 { return a.checksum }

// Signed returns the signed delta this adjustment would apply: +magnitude for
// Add, -magnitude for Sub.
func (a LocusAdjustment) Signed() float64 {
	if a.direction == DirectionSub {
		return -a.magnitude
	}
	return a.magnitude
}

// withMagnitude returns a copy of a with a new magnitude (recomputing checksum).
func (a LocusAdjustment) withMagnitude(m float64) LocusAdjustment {
	return NewLocusAdjustment(m, a.direction, a.doubling)
}

// withDoublingFlipped returns a copy of a with the doubling flag flipped.
func (a LocusAdjustment) withDoublingFlipped() LocusAdjustment {
	return NewLocusAdjustment(a.magnitude, a.direction, !a.doubling)
}

// withDirectionFlipped returns a copy of a with direction flipped.
func (a LocusAdjustment) withDirectionFlipped() LocusAdjustment {
	dir := DirectionAdd
	if a.direction == DirectionAdd {
		dir = DirectionSub
	}
	return NewLocusAdjustment(a.magnitude, dir, a.doubling)
}

// doubledOrHalved returns a copy of a with magnitude doubled (if doubling is
// true) or halved (otherwise).
func (a LocusAdjustment) doubledOrHalved() LocusAdjustment {
	if a.doubling {
		return a.withMagnitude(a.magnitude * 2)
	}
	return a.withMagnitude(a.magnitude / 2)
}

// computeChecksum mirrors original_source's xxh3 checksum: value bytes (8),
// direction byte, doubling byte, fed through a fast non-cryptographic hash.
func computeChecksum(magnitude float64, direction Direction, doubling bool) uint64 {
	var buf [10]byte
	binary.LittleEndian.PutUint64(buf[0:8], math.Float64bits(magnitude))
	if direction == DirectionSub {
		buf[8] = 1
	}
	if doubling {
		buf[9] = 1
	}
	return xxhash.Sum64(buf[:])
}
