package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NotPanics(t, func() { Default().Validate() })
}

func TestValidatePanicsOnTooSmallPopulation(t *testing.T) {
	cfg := Default()
	cfg.Population = 1
	assert.Panics(t, func() { cfg.Validate() })
}

func TestValidatePanicsOnEmptyParamBounds(t *testing.T) {
	cfg := Default()
	cfg.ParamBounds = nil
	assert.Panics(t, func() { cfg.Validate() })
}

func TestValidatePanicsOnInvertedBound(t *testing.T) {
	cfg := Default()
	cfg.ParamBounds[0].Lo, cfg.ParamBounds[0].Hi = 5, -5
	assert.Panics(t, func() { cfg.Validate() })
}

func TestConstantsProjectsWorldFields(t *testing.T) {
	cfg := Default()
	cfg.Population = 42
	cfg.TargetRegions = 7
	cfg.Seed = 9
	constants := cfg.Constants()
	assert.Equal(t, 42, constants.Population)
	assert.Equal(t, 7, constants.TargetRegions)
	assert.Equal(t, uint64(9), constants.Seed)
}
