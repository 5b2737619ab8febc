// Copyright 2015 Dorival de Moraes Pedroso. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parameter holds the single bounded scalar building block shared by
// every locus in a gamete: a finite float64 with an optional inclusive range.
package parameter

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Parameter is a finite f64 with an optional inclusive [Min,Max] range.
//
// Invariant: Min <= Value <= Max whenever bounds are present. Setters panic on
// NaN or +/-Inf; clamping to the bounds is an explicit choice made by the
// caller (New clamps, NewUnbounded does not apply bounds at all).
type Parameter struct {
	value    float64
	min, max float64
	bounded  bool
}

// NewUnbounded creates a Parameter with no min/max. Panics if value is not finite.
func NewUnbounded(value float64) *Parameter {
	mustBeFinite(value)
	return &Parameter{value: value}
}

// New creates a Parameter bounded by [min,max], clamping value into range.
// Panics if min, max, or value is not finite, or if min > max.
func New(value, min, max float64) *Parameter {
	mustBeFinite(min)
	mustBeFinite(max)
	mustBeFinite(value)
	if min > max {
		chk.Panic("parameter: min must be <= max. min=%g max=%g", min, max)
	}
	v := value
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return &Parameter{value: v, min: min, max: max, bounded: true}
}

// Get returns the current value.
func (p *Parameter) Get() float64 {
	return p.value
}

// Bounded reports whether this Parameter carries a min/max range.
func (p *Parameter) Bounded() bool {
	return p.bounded
}

// Bounds returns (min, max, ok); ok is false for unbounded Parameters.
func (p *Parameter) Bounds() (float64, float64, bool) {
	return p.min, p.max, p.bounded
}

// Set assigns a new value, clamping it into [Min,Max] if bounded.
// Panics if newValue is NaN or infinite.
func (p *Parameter) Set(newValue float64) {
	mustBeFinite(newValue)
	if !p.bounded {
		p.value = newValue
		return
	}
	v := newValue
	if v < p.min {
		v = p.min
	}
	if v > p.max {
		v = p.max
	}
	p.value = v
}

// SetUnclamped assigns a new value without clamping, panicking if the result
// would violate the bounds. Used by callers that have already validated range
// membership and want the panic instead of silent clamping.
func (p *Parameter) SetUnclamped(newValue float64) {
	mustBeFinite(newValue)
	if p.bounded && (newValue < p.min || newValue > p.max) {
		chk.Panic("parameter: value %g is outside bounds [%g,%g]", newValue, p.min, p.max)
	}
	p.value = newValue
}

// Clone returns a deep copy of p.
func (p *Parameter) Clone() *Parameter {
	q := *p
	return &q
}

func mustBeFinite(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		chk.Panic("parameter: value must be finite, got %v", v)
	}
}
