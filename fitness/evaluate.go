package fitness

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Evaluate scores one organism's problem-space values against data, by
// calling fn.Run and reducing its output vector to a scalar: the Euclidean
// distance between the returned outputs and the known targets (the floor,
// repeated for every output, in the None case; the matching row's target
// vector in the Supervised case). Grounded on
// original_source/hill_descent_lib3/src/organism/evaluate_fitness_impl.rs.
//
// Panics (a fitness-function protocol violation, per spec.md section 7) if
// the function returns no outputs, a non-finite output, an output below its
// matching target, or the resulting score itself is non-finite.
func Evaluate(fn WorldFunction, problemValues []float64, data TrainingData, rowIndex int) float64 {
	var runInput []float64
	var known []float64
	if data.IsSupervised() {
		input, output := data.Row(rowIndex)
		runInput = input
		known = output
	} else {
		runInput = problemValues
	}

	outputs := fn.Run(runInput)
	if len(outputs) == 0 {
		chk.Panic("fitness: world function must return at least one output")
	}
	if !data.IsSupervised() {
		known = make([]float64, len(outputs))
		for i := range known {
			known[i] = data.FloorValue()
		}
	}
	if len(outputs) != len(known) {
		chk.Panic("fitness: world function returned %d outputs, expected %d", len(outputs), len(known))
	}

	var sumSquares float64
	for i, out := range outputs {
		if math.IsNaN(out) || math.IsInf(out, 0) {
			chk.Panic("fitness: output[%d] = %g is not finite", i, out)
		}
		if out < known[i] {
			chk.Panic("fitness: output[%d] = %g is below its target %g", i, out, known[i])
		}
		diff := out - known[i]
		sumSquares += diff * diff
	}

	score := math.Sqrt(sumSquares)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		chk.Panic("fitness: computed score must be finite, got %g", score)
	}
	return score
}
