package region

import (
	"bytes"

	"github.com/cpmech/gosl/io"
)

// Report builds a human-readable table of every occupied region: its key,
// organism count, cached min_score, and carrying capacity, in the spirit
// of avmi-goga/population.go's Output table but summarizing regions
// instead of individuals.
func (rs *Regions) Report() *bytes.Buffer {
	buf := new(bytes.Buffer)
	if rs.IsEmpty() {
		io.Ff(buf, "(no regions)\n")
		return buf
	}
	keys := rs.sortedKeys()
	io.Ff(buf, "%-24s %8s %12s %10s\n", "RegionKey", "Count", "MinScore", "Capacity")
	for _, key := range keys {
		r := rs.byKey[key.AsMapKey()]
		minScoreStr := "-"
		if score, ok := r.MinScore(); ok {
			minScoreStr = io.Sf("%g", score)
		}
		capStr := "-"
		if capacity, ok := r.CarryingCapacity(); ok {
			capStr = io.Sf("%d", capacity)
		}
		io.Ff(buf, "%-24v %8d %12s %10s\n", key.Values(), r.OrganismCount(), minScoreStr, capStr)
	}
	return buf
}
