// Package config loads the JSON run configuration for hillcli: world-level
// constants plus the problem-space bounds, adapted from avmi-goga's
// Parameters.Read/CalcDerived JSON config flow to this optimizer's
// single-objective, box-bounded domain.
package config

import (
	"encoding/json"

	"github.com/cainem/hill-descent-sub001/world"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Config is the JSON-loadable configuration for one hillcli run.
type Config struct {
	Population    int           `json:"population"`
	TargetRegions int           `json:"target_regions"`
	Seed          uint64        `json:"seed"`
	Epochs        int           `json:"epochs"`
	ParamBounds   []world.Bound `json:"param_bounds"`
}

// Default returns the built-in defaults used when no config file is given.
func Default() Config {
	return Config{
		Population:    100,
		TargetRegions: 10,
		Seed:          1,
		Epochs:        200,
		ParamBounds:   []world.Bound{{Lo: -20, Hi: 20}, {Lo: -20, Hi: 20}},
	}
}

// Read loads a Config from a JSON file at filenamepath, starting from
// Default so an omitted field keeps its default value. Panics if the file
// cannot be read, does not parse, or fails Validate.
func Read(filenamepath string) Config {
	cfg := Default()
	b, err := io.ReadFile(filenamepath)
	if err != nil {
		chk.Panic("config: cannot read %q: %v", filenamepath, err)
	}
	if err := json.Unmarshal(b, &cfg); err != nil {
		chk.Panic("config: cannot parse %q: %v", filenamepath, err)
	}
	cfg.Validate()
	return cfg
}

// Validate checks the configuration for internal consistency, mirroring
// avmi-goga's Parameters.CalcDerived panic-on-invalid-config behavior.
func (c Config) Validate() {
	if c.Population < 2 {
		chk.Panic("config: population must be >= 2, got %d", c.Population)
	}
	if c.TargetRegions < 1 {
		chk.Panic("config: target_regions must be >= 1, got %d", c.TargetRegions)
	}
	if c.Epochs < 1 {
		chk.Panic("config: epochs must be >= 1, got %d", c.Epochs)
	}
	if len(c.ParamBounds) == 0 {
		chk.Panic("config: param_bounds must not be empty")
	}
	for i, b := range c.ParamBounds {
		if b.Hi < b.Lo {
			chk.Panic("config: param_bounds[%d] has hi (%g) < lo (%g)", i, b.Hi, b.Lo)
		}
	}
}

// Constants projects the world-level fields of c into a world.Constants.
func (c Config) Constants() world.Constants {
	return world.Constants{Population: c.Population, TargetRegions: c.TargetRegions, Seed: c.Seed}
}
