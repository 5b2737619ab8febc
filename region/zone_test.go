package region

import (
	"sort"
	"testing"

	"github.com/cainem/hill-descent-sub001/spatial"
	"github.com/stretchr/testify/assert"
)

func key(values ...uint) spatial.RegionKey { return spatial.NewRegionKey(values) }

func zoneSizes(zones []Zone) []int {
	sizes := make([]int, len(zones))
	for i, z := range zones {
		sizes[i] = len(z.Keys)
	}
	sort.Ints(sizes)
	return sizes
}

func TestComputeZonesEmpty(t *testing.T) {
	assert.Nil(t, ComputeZones(nil))
}

func TestComputeZonesSingleRegion(t *testing.T) {
	zones := ComputeZones([]spatial.RegionKey{key(1, 2)})
	assert.Len(t, zones, 1)
	assert.Len(t, zones[0].Keys, 1)
}

func TestComputeZonesTwoAdjacentRegions(t *testing.T) {
	zones := ComputeZones([]spatial.RegionKey{key(1, 2), key(2, 2)})
	assert.Len(t, zones, 1)
	assert.Len(t, zones[0].Keys, 2)
}

func TestComputeZonesTwoNonAdjacentRegions(t *testing.T) {
	zones := ComputeZones([]spatial.RegionKey{key(1, 1), key(3, 3)})
	assert.Equal(t, []int{1, 1}, zoneSizes(zones))
}

func TestComputeZonesComplexAdjacencyChain(t *testing.T) {
	zones := ComputeZones([]spatial.RegionKey{
		key(1, 1),
		key(1, 2),
		key(1, 3),
		key(5, 5),
	})
	assert.Equal(t, []int{1, 3}, zoneSizes(zones))
}

func TestComputeZones3DAdjacency(t *testing.T) {
	zones := ComputeZones([]spatial.RegionKey{
		key(1, 1, 1),
		key(1, 1, 2),
		key(3, 3, 3),
	})
	assert.Equal(t, []int{1, 2}, zoneSizes(zones))
}
