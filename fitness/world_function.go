// Package fitness defines the boundary between the evolving population and
// the problem being optimized: the WorldFunction interface every fitness
// function implements, a scalar convenience adapter, and the TrainingData
// variants a single epoch can be run against.
package fitness

// WorldFunction is the one polymorphic boundary of the optimizer: given an
// organism's problem-space parameters, it returns a vector of output
// values, plus an optional theoretical floor used to calibrate fitness.
// Grounded on original_source/src/world/world_function/mod.rs (`run`) and
// spec.md's design-note recommendation of "a single trait/interface with
// one method run(params) -> vector<f64> and an optional floor() -> f64".
// Implementations must be safe to call concurrently from multiple workers
// and must be pure functions of their input.
type WorldFunction interface {
	Run(params []float64) []float64
	Floor() float64
}

// ScalarFunc adapts a plain func(params []float64) float64 into a
// WorldFunction whose Run wraps the single output in a one-element slice,
// so callers optimizing a scalar objective need not implement the vector
// form directly.
type ScalarFunc struct {
	Fn       func(params []float64) float64
	FloorVal float64
}

// NewScalarFunc builds a ScalarFunc with the given floor value.
func NewScalarFunc(fn func(params []float64) float64, floor float64) *ScalarFunc {
	return &ScalarFunc{Fn: fn, FloorVal: floor}
}

// Run evaluates the wrapped scalar function and returns its result as a
// single-element slice.
func (s *ScalarFunc) Run(params []float64) []float64 {
	return []float64{s.Fn(params)}
}

// Floor returns the configured theoretical minimum.
func (s *ScalarFunc) Floor() float64 { return s.FloorVal }
