package spatial

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Dimension is one axis of the search space: an inclusive [Min,Max] range
// plus a doubling count that determines how many equal intervals the range
// is currently divided into. Grounded on
// original_source/hill_descent_lib2/src/world/dimensions/dimension.rs.
type Dimension struct {
	min, max  float64
	doublings uint
}

// NewDimension builds a Dimension over [min,max] with zero doublings (a
// single interval). Panics if max < min.
func NewDimension(min, max float64) *Dimension {
	if max < min {
		chk.Panic("spatial: dimension max must be >= min. min=%g max=%g", min, max)
	}
	return &Dimension{min: min, max: max}
}

// Min returns the lower bound.
func (d *Dimension) Min() float64 { return d.min }

// Max returns the upper bound.
func (d *Dimension) Max() float64 { return d.max }

// Doublings returns the current number of subdivisions applied.
func (d *Dimension) Doublings() uint { return d.doublings }

// SetDoublings assigns a new doubling count.
func (d *Dimension) SetDoublings(n uint) { d.doublings = n }

// NumIntervals returns 2^doublings, the number of equal-width intervals the
// range is currently divided into.
func (d *Dimension) NumIntervals() uint {
	return uint(1) << d.doublings
}

// SetRange replaces the dimension's bounds. Panics if max < min.
func (d *Dimension) SetRange(min, max float64) {
	if max < min {
		chk.Panic("spatial: dimension max must be >= min. min=%g max=%g", min, max)
	}
	d.min, d.max = min, max
}

// ExpandBounds widens the range by 50% on each side, or by a fixed 0.5 on
// each side if the range currently has zero width.
func (d *Dimension) ExpandBounds() {
	width := d.max - d.min
	if width == 0 {
		d.min -= 0.5
		d.max += 0.5
		return
	}
	expansion := width / 2
	d.min -= expansion
	d.max += expansion
}

// GetInterval returns the 0-based interval index that value falls into, and
// false if value is outside [Min,Max].
func (d *Dimension) GetInterval(value float64) (uint, bool) {
	if value < d.min || value > d.max {
		return 0, false
	}
	if d.min == d.max || d.doublings == 0 {
		return 0, true
	}

	numIntervals := d.NumIntervals()
	intervalSize := (d.max - d.min) / float64(numIntervals)
	maxInterval := numIntervals - 1

	if intervalSize == 0 {
		if value == d.max {
			return maxInterval, true
		}
		return 0, true
	}

	raw := (value - d.min) / intervalSize
	interval := uint(math.Floor(raw))
	if interval > maxInterval {
		interval = maxInterval
	}
	return interval, true
}

// IntervalBounds returns the (start,end) bounds of the given 0-based
// interval index, and false if interval is out of range.
func (d *Dimension) IntervalBounds(interval uint) (float64, float64, bool) {
	numIntervals := d.NumIntervals()
	if interval >= numIntervals {
		return 0, 0, false
	}
	if numIntervals == 1 || d.min == d.max {
		return d.min, d.max, true
	}
	intervalSize := (d.max - d.min) / float64(numIntervals)
	start := d.min + float64(interval)*intervalSize
	end := start + intervalSize
	if interval == numIntervals-1 {
		end = d.max
	}
	return start, end, true
}

// Clone returns a deep copy of d.
func (d *Dimension) Clone() *Dimension {
	c := *d
	return &c
}
