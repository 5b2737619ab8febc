package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountUniqueValuesWithToleranceEmpty(t *testing.T) {
	assert.Equal(t, 0, CountUniqueValuesWithTolerance(nil))
}

func TestCountUniqueValuesWithToleranceSingle(t *testing.T) {
	assert.Equal(t, 1, CountUniqueValuesWithTolerance([]float64{5.0}))
}

func TestCountUniqueValuesWithToleranceIdentical(t *testing.T) {
	assert.Equal(t, 1, CountUniqueValuesWithTolerance([]float64{1.0, 1.0, 1.0}))
}

func TestCountUniqueValuesWithToleranceDistinct(t *testing.T) {
	assert.Equal(t, 3, CountUniqueValuesWithTolerance([]float64{1.0, 2.0, 3.0}))
}

func TestCountUniqueValuesWithToleranceCloseValuesTreatedAsSame(t *testing.T) {
	assert.Equal(t, 1, CountUniqueValuesWithTolerance([]float64{1.0, 1.000000000000001}))
}

func TestCountUniqueValuesWithToleranceUnsorted(t *testing.T) {
	assert.Equal(t, 3, CountUniqueValuesWithTolerance([]float64{3.0, 1.0, 2.0}))
}

func TestCountUniqueValuesWithToleranceDuplicates(t *testing.T) {
	assert.Equal(t, 3, CountUniqueValuesWithTolerance([]float64{1.0, 2.0, 2.0, 3.0, 1.0}))
}

func TestCountUniqueValuesWithToleranceLargeValuesUseRelativeTolerance(t *testing.T) {
	large := 1e15
	assert.Equal(t, 1, CountUniqueValuesWithTolerance([]float64{large, large + 1.0}))
	assert.Equal(t, 2, CountUniqueValuesWithTolerance([]float64{large, large + 1e10}))
}
