package spatial

import "github.com/cpmech/gosl/chk"

// Dimensions is the ordered set of axes making up the search space, plus a
// version counter that increments whenever any bound changes so that
// organisms can detect when a cached region key needs recomputing.
// Grounded on original_source/hill_descent_lib3/src/world/dimensions/mod.rs.
type Dimensions struct {
	dims    []*Dimension
	version uint64
}

// NewDimensions wraps a set of dimensions at version 0.
func NewDimensions(dims []*Dimension) *Dimensions {
	return &Dimensions{dims: dims}
}

// Version returns the current version number.
func (d *Dimensions) Version() uint64 { return d.version }

// BumpVersion increments the version counter; called whenever a dimension's
// bounds or doubling count change.
func (d *Dimensions) BumpVersion() { d.version++ }

// NumDimensions returns the number of axes.
func (d *Dimensions) NumDimensions() int { return len(d.dims) }

// Get returns the dimension at index. Panics if index is out of range.
func (d *Dimensions) Get(index int) *Dimension {
	if index < 0 || index >= len(d.dims) {
		chk.Panic("spatial: dimension index %d out of range [0,%d)", index, len(d.dims))
	}
	return d.dims[index]
}

// All returns the underlying slice of dimensions, in axis order.
func (d *Dimensions) All() []*Dimension { return d.dims }

// TotalPossibleRegions is the product of every dimension's interval count:
// the number of grid cells the space is currently divided into.
func (d *Dimensions) TotalPossibleRegions() uint64 {
	if len(d.dims) == 0 {
		return 1
	}
	var total uint64 = 1
	for _, dim := range d.dims {
		total *= uint64(dim.NumIntervals())
	}
	return total
}

// RegionKeyFor computes the RegionKey for a point in problem space, one
// interval index per dimension. Returns false if any coordinate falls
// outside its dimension's range.
func (d *Dimensions) RegionKeyFor(point []float64) (RegionKey, bool) {
	if len(point) != len(d.dims) {
		chk.Panic("spatial: point has %d coordinates, expected %d", len(point), len(d.dims))
	}
	values := make([]uint, len(d.dims))
	for i, dim := range d.dims {
		interval, ok := dim.GetInterval(point[i])
		if !ok {
			return RegionKey{}, false
		}
		values[i] = interval
	}
	return NewRegionKey(values), true
}
