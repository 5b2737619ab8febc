// Command hillcli is a minimal demonstration binary: it runs hill-descent
// optimization against a fixed test function and prints the best score and
// parameters every 10 epochs and at the final epoch. It is not a product surface of the core (spec.md section 1 keeps
// CLI/benchmark tooling out of scope); it exists only to exercise the world
// package the way original_source/hill_descent_lib/examples/simple_optimization.rs
// exercises the original library.
package main

import (
	"flag"

	"github.com/cainem/hill-descent-sub001/config"
	"github.com/cainem/hill-descent-sub001/fitness"
	"github.com/cainem/hill-descent-sub001/world"
	"github.com/cpmech/gosl/io"
)

func main() {
	configPath := flag.String("config", "", "optional JSON config file (see config.Config); flags below override it")
	epochs := flag.Int("epochs", 0, "number of training epochs to run (0: use config/default)")
	population := flag.Int("population", 0, "founder population size (0: use config/default)")
	targetRegions := flag.Int("regions", 0, "target region count (0: use config/default)")
	seed := flag.Uint64("seed", 0, "world seed (0: use config/default)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		cfg = config.Read(*configPath)
	}
	if *epochs != 0 {
		cfg.Epochs = *epochs
	}
	if *population != 0 {
		cfg.Population = *population
	}
	if *targetRegions != 0 {
		cfg.TargetRegions = *targetRegions
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Validate()

	// f(x,y) = (x+13)^2 + (y+13)^2 + 1, minimum 1.0 at (-13,-13).
	fn := fitness.NewScalarFunc(func(p []float64) float64 {
		dx := p[0] + 13
		dy := p[1] + 13
		return dx*dx + dy*dy + 1
	}, 1.0)

	w := world.Setup(cfg.ParamBounds, cfg.Constants(), fn)

	data := fitness.None(1.0)
	io.Pf("%s\n", io.Sf("%6s  %14s  %s", "epoch", "best_score", "best_params"))
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		limitReached := w.TrainingRun(data)
		if epoch%10 == 0 || epoch == cfg.Epochs-1 {
			io.Pf("%6d  %14.6g  %v\n", epoch, w.GetBestScore(), w.GetBestParams())
		}
		if limitReached {
			io.PfYel("resolution limit reached at epoch %d\n", epoch)
			break
		}
	}
}
