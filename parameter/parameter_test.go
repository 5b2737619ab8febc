package parameter

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnboundedAndSet(t *testing.T) {
	p := NewUnbounded(1.23)
	require.Equal(t, 1.23, p.Get())
	p.Set(-9.87)
	assert.Equal(t, -9.87, p.Get())
	assert.False(t, p.Bounded())
}

func TestNewClampsInitialValue(t *testing.T) {
	p := New(0.5, 1.0, 2.0)
	assert.Equal(t, 1.0, p.Get())

	p2 := New(3.0, 1.0, 2.0)
	assert.Equal(t, 2.0, p2.Get())
}

func TestSetClampsValue(t *testing.T) {
	p := New(1.5, 1.0, 2.0)
	p.Set(0.0)
	assert.Equal(t, 1.0, p.Get())
	p.Set(10.0)
	assert.Equal(t, 2.0, p.Get())
}

func TestNewPanicsOnNaNOrInfinite(t *testing.T) {
	assert.Panics(t, func() { NewUnbounded(math.NaN()) })
	assert.Panics(t, func() { NewUnbounded(math.Inf(1)) })
}

func TestNewPanicsOnInvalidBounds(t *testing.T) {
	assert.Panics(t, func() { New(0.0, 2.0, 1.0) })
}

func TestSetPanicsOnNonFinite(t *testing.T) {
	p := NewUnbounded(0.0)
	assert.Panics(t, func() { p.Set(math.Inf(1)) })
}

func TestSetUnclampedPanicsOutsideBounds(t *testing.T) {
	p := New(1.0, 0.0, 2.0)
	assert.Panics(t, func() { p.SetUnclamped(5.0) })
	assert.NotPanics(t, func() { p.SetUnclamped(1.5) })
	assert.Equal(t, 1.5, p.Get())
}

func TestClone(t *testing.T) {
	p := New(1.0, 0.0, 2.0)
	q := p.Clone()
	q.Set(2.0)
	assert.Equal(t, 1.0, p.Get())
	assert.Equal(t, 2.0, q.Get())
}
