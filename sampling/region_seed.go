package sampling

import (
	"encoding/binary"
	"math/rand"

	"github.com/cespare/xxhash/v2"

	"github.com/cainem/hill-descent-sub001/spatial"
)

// DeriveRegionSeed derives a deterministic 64-bit seed from a world seed and
// a region key, so that every region gets its own independent, reproducible
// RNG stream: same world seed + region key always yields the same seed,
// distinct regions yield (with overwhelming probability) distinct streams.
// Grounded verbatim on
// original_source/hill_descent_lib/src/world/regions/derive_region_seed.rs.
func DeriveRegionSeed(worldSeed uint64, key spatial.RegionKey) uint64 {
	values := key.Values()
	buf := make([]byte, 8+8*len(values))
	binary.LittleEndian.PutUint64(buf[0:8], worldSeed)
	for i, v := range values {
		binary.LittleEndian.PutUint64(buf[8+8*i:16+8*i], uint64(v))
	}
	return xxhash.Sum64(buf)
}

// NewRegionRand returns a fresh, independently-seeded *rand.Rand for the
// given world seed and region key. Two calls with the same arguments always
// produce generators with identical future output, which is what lets
// concurrent per-region epoch processing stay deterministic regardless of
// worker-pool scheduling order.
func NewRegionRand(worldSeed uint64, key spatial.RegionKey) *rand.Rand {
	seed := DeriveRegionSeed(worldSeed, key)
	return rand.New(rand.NewSource(int64(seed)))
}
