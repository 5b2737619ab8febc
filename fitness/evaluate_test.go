package fitness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sumOfSquares(p []float64) []float64 {
	var total float64
	for _, v := range p {
		total += v * v
	}
	return []float64{total}
}

func TestEvaluateNoneDistanceFromFloor(t *testing.T) {
	fn := NewScalarFunc(func(p []float64) float64 { return sumOfSquares(p)[0] }, 0)
	score := Evaluate(fn, []float64{3.0}, None(0), 0)
	assert.Equal(t, 9.0, score)
}

func TestEvaluateNoneWithNonZeroFloor(t *testing.T) {
	fn := NewScalarFunc(func(p []float64) float64 { return sumOfSquares(p)[0] + 10 }, 10)
	score := Evaluate(fn, []float64{2.0}, None(10), 0)
	assert.Equal(t, 4.0, score)
}

func TestEvaluateOptimalParamsScoreZero(t *testing.T) {
	fn := NewScalarFunc(func(p []float64) float64 { return sumOfSquares(p)[0] }, 0)
	score := Evaluate(fn, []float64{0.0}, None(0), 0)
	assert.Equal(t, 0.0, score)
}

func TestEvaluateMultipleParams(t *testing.T) {
	fn := NewScalarFunc(func(p []float64) float64 { return sumOfSquares(p)[0] }, 0)
	score := Evaluate(fn, []float64{3.0, 4.0}, None(0), 0)
	assert.Equal(t, 25.0, score)
}

func TestEvaluateSupervisedUsesRowTargets(t *testing.T) {
	fn := &ScalarFunc{Fn: func(p []float64) float64 { return p[0] + p[1] }}
	data := Supervised([][]float64{{1, 2}, {3, 4}}, [][]float64{{3}, {6}})
	assert.Equal(t, 0.0, Evaluate(fn, nil, data, 0))
	assert.Equal(t, 1.0, Evaluate(fn, nil, data, 1))
}

func TestEvaluatePanicsOnOutputBelowTarget(t *testing.T) {
	fn := NewScalarFunc(func(p []float64) float64 { return -1 }, 0)
	assert.Panics(t, func() { Evaluate(fn, []float64{0}, None(0), 0) })
}
