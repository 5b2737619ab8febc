// Package spatial implements the adaptive grid that partitions organisms by
// their expressed problem values: per-axis Dimension state, the position-
// dependent RegionKey hash, and the tolerance-aware distinct-value counter
// used to decide when an axis needs subdividing.
package spatial

import "github.com/cpmech/gosl/chk"

const (
	fnvOffsetBasis uint64 = 0xcbf29ce484222325
	fnvPrime       uint64 = 0x100000001b3
)

// RegionKey identifies the grid cell an organism's expressed values fall
// into: one interval index per dimension. Equality and map-key use rely on
// a precomputed position-dependent hash, grounded verbatim on
// original_source/hill_descent_lib/src/world/regions/region/region_key.rs.
type RegionKey struct {
	values []uint
	hash   uint64
}

// NewRegionKey builds a RegionKey from per-dimension interval indices,
// computing its full hash.
func NewRegionKey(values []uint) RegionKey {
	vs := append([]uint(nil), values...)
	return RegionKey{values: vs, hash: computeFullHash(vs)}
}

// Values returns the per-dimension interval indices.
func (k RegionKey) Values() []uint { return k.values }

// Hash returns the precomputed 64-bit hash.
func (k RegionKey) Hash() uint64 { return k.hash }

// Len returns the number of dimensions.
func (k RegionKey) Len() int { return len(k.values) }

// Equal reports whether two keys carry the same values, using the
// precomputed hash as a fast rejection test before falling back to a
// value-by-value comparison (handles the rare hash collision).
func (k RegionKey) Equal(other RegionKey) bool {
	if k.hash != other.hash {
		return false
	}
	if len(k.values) != len(other.values) {
		return false
	}
	for i := range k.values {
		if k.values[i] != other.values[i] {
			return false
		}
	}
	return true
}

// AsMapKey returns a value usable as a Go map key, since a slice cannot be
// one directly. The string is the 64-bit hash followed by every value, so
// two keys produce the same string only when their values are equal.
func (k RegionKey) AsMapKey() string {
	buf := make([]byte, 8+8*len(k.values))
	putUint64(buf[0:8], k.hash)
	for i, v := range k.values {
		putUint64(buf[8+8*i:16+8*i], uint64(v))
	}
	return string(buf)
}

// WithUpdatedPosition returns a new RegionKey with position replaced by
// newValue, updating the hash incrementally in O(1) rather than recomputing
// it over the whole slice. Panics if position is out of range.
func (k RegionKey) WithUpdatedPosition(position int, newValue uint) RegionKey {
	if position < 0 || position >= len(k.values) {
		chk.Panic("spatial: region key position %d out of range [0,%d)", position, len(k.values))
	}
	newValues := append([]uint(nil), k.values...)
	oldValue := newValues[position]
	newValues[position] = newValue
	newHash := k.hash ^ positionHash(position, oldValue) ^ positionHash(position, newValue)
	return RegionKey{values: newValues, hash: newHash}
}

func computeFullHash(values []uint) uint64 {
	var acc uint64
	for pos, v := range values {
		acc ^= positionHash(pos, v)
	}
	return acc
}

// positionHash FNV-1a-mixes (position, value) so that the same value
// appearing at different positions contributes differently to the total.
func positionHash(position int, value uint) uint64 {
	low := uint64(value)
	high := uint64(position)

	hash := fnvOffsetBasis
	hash ^= low
	hash *= fnvPrime
	hash ^= high
	hash *= fnvPrime
	return hash
}

func putUint64(buf []byte, v uint64) {
	for i := 0; i < 8; i++ {
		buf[i] = byte(v >> (8 * i))
	}
}
