package region

import "github.com/cpmech/gosl/chk"

// AllocateZoneCapacity splits totalCapacity across zones using the hybrid
// two-fund scheme from zone_capacity_allocation.rs: half the capacity goes
// to a global fund distributed proportionally to zoneScores (rewarding
// exploitation), half to a zone fund distributed proportionally to
// zoneSizes (guaranteeing exploration). In each fund the last zone absorbs
// the rounding remainder so the two funds, and therefore the result, sum
// exactly to totalCapacity. When every zone score is zero the global fund
// allocates nothing, and the result sums to the zone fund alone.
//
// Panics if zoneSizes and zoneScores have different lengths, or any zone
// size is zero.
func AllocateZoneCapacity(zoneSizes []int, zoneScores []float64, totalCapacity int) []int {
	if len(zoneSizes) == 0 {
		return nil
	}
	if len(zoneSizes) != len(zoneScores) {
		chk.Panic("region: zoneSizes and zoneScores must have the same length: %d vs %d", len(zoneSizes), len(zoneScores))
	}
	if totalCapacity == 0 {
		return make([]int, len(zoneSizes))
	}
	for i, size := range zoneSizes {
		if size == 0 {
			chk.Panic("region: zone %d has size 0, but zones must contain at least one region", i)
		}
	}

	globalFund := totalCapacity / 2
	zoneFund := totalCapacity - globalFund

	globalAllocations := allocateByScore(zoneScores, globalFund)
	zoneAllocations := allocateBySize(zoneSizes, zoneFund)

	result := make([]int, len(zoneSizes))
	for i := range zoneSizes {
		result[i] = globalAllocations[i] + zoneAllocations[i]
	}
	return result
}

// allocateByScore distributes fund proportionally to scores, rounding each
// share to the nearest integer; the last zone absorbs the remainder.
func allocateByScore(scores []float64, fund int) []int {
	allocations := make([]int, len(scores))
	var total float64
	for _, s := range scores {
		total += s
	}
	if total <= 0 {
		return allocations
	}
	allocated := 0
	for i, s := range scores {
		var share int
		if i == len(scores)-1 {
			share = fund - allocated
			if share < 0 {
				share = 0
			}
		} else {
			share = int(float64(fund)*s/total + 0.5)
		}
		allocations[i] = share
		allocated += share
	}
	return allocations
}

// allocateBySize distributes fund proportionally to sizes, truncating each
// share (integer division); the last zone absorbs the remainder.
func allocateBySize(sizes []int, fund int) []int {
	allocations := make([]int, len(sizes))
	total := 0
	for _, s := range sizes {
		total += s
	}
	if total <= 0 {
		return allocations
	}
	allocated := 0
	for i, s := range sizes {
		var share int
		if i == len(sizes)-1 {
			share = fund - allocated
			if share < 0 {
				share = 0
			}
		} else {
			share = (fund * s) / total
		}
		allocations[i] = share
		allocated += share
	}
	return allocations
}
