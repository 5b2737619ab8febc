package fitness

import "github.com/cpmech/gosl/chk"

// TrainingData selects what external data, if any, backs one training_run
// call: either a self-contained fitness function with a known floor, or
// supervised input/output pairs drawn from an external dataset. Grounded on
// original_source/hill_descent_lib/src/training_data.rs's enum, expressed
// here as a tagged struct since Go has no sum types.
type TrainingData struct {
	supervised bool
	floor      float64
	inputs     [][]float64
	outputs    [][]float64
}

// None builds a TrainingData for standard, self-contained optimization: the
// fitness function needs no external data, just a theoretical floor value.
func None(floor float64) TrainingData {
	return TrainingData{floor: floor}
}

// Supervised builds a TrainingData carrying external input/output pairs.
// Panics if inputs and outputs have different lengths, or either is empty.
func Supervised(inputs, outputs [][]float64) TrainingData {
	if len(inputs) == 0 || len(outputs) == 0 {
		chk.Panic("fitness: supervised training data must be non-empty")
	}
	if len(inputs) != len(outputs) {
		chk.Panic("fitness: supervised inputs (%d) and outputs (%d) must have the same length", len(inputs), len(outputs))
	}
	return TrainingData{supervised: true, inputs: inputs, outputs: outputs}
}

// FloorValue returns the calibration floor: the configured value for None,
// or 0 for Supervised (matching the original's default).
func (t TrainingData) FloorValue() float64 {
	if t.supervised {
		return 0
	}
	return t.floor
}

// IsSupervised reports whether this is the Supervised variant.
func (t TrainingData) IsSupervised() bool { return t.supervised }

// IsNone reports whether this is the self-contained (None) variant.
func (t TrainingData) IsNone() bool { return !t.supervised }

// Inputs returns the supervised input rows, or nil for the None variant.
func (t TrainingData) Inputs() [][]float64 { return t.inputs }

// Outputs returns the supervised target rows, or nil for the None variant.
func (t TrainingData) Outputs() [][]float64 { return t.outputs }

// Row returns the (input, output) pair at index, for use by a WorldFunction
// evaluating against supervised data. Panics if this is not the Supervised
// variant or index is out of range.
func (t TrainingData) Row(index int) (input, output []float64) {
	if !t.supervised {
		chk.Panic("fitness: Row called on non-supervised training data")
	}
	if index < 0 || index >= len(t.inputs) {
		chk.Panic("fitness: training data row index %d out of range [0,%d)", index, len(t.inputs))
	}
	return t.inputs[index], t.outputs[index]
}

// NumRows returns the number of supervised rows, or 0 for the None variant.
func (t TrainingData) NumRows() int { return len(t.inputs) }
