// Command snowfake-sweep grows one crystal per combination of attachment and
// freezing parameters and reports which settings reach the lattice edge, how
// fast, and how dense the resulting flakes are.
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"

	"snowfake/internal/sims/snowfake"
)

type paramSet struct {
	kappa float64
	beta  float64
	alpha float64
}

func (p paramSet) String() string {
	return fmt.Sprintf("kappa=%.3f beta=%.2f alpha=%.3f", p.kappa, p.beta, p.alpha)
}

type scenarioResult struct {
	params   paramSet
	state    snowfake.State
	ticks    int
	attached int
	radius   float64
}

func main() {
	size := flag.Int("size", 101, "lattice side length for each run (odd)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel simulation runs")
	maxTicks := flag.Int("max-ticks", 20000, "tick cap per run")
	seed := flag.Int64("seed", 1337, "seed shared by all runs")
	flag.Parse()

	base := snowfake.DefaultConfig()
	base.Size = *size
	base.MaxTicks = *maxTicks
	base.Seed = *seed
	if err := base.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	kappaOptions := []float64{0.005, 0.01, 0.025, 0.05, 0.075}
	betaOptions := []float64{1.3, 1.6, 1.9, 2.2, 2.5}
	alphaOptions := []float64{0.04, 0.08}

	var sets []paramSet
	for _, kappa := range kappaOptions {
		for _, beta := range betaOptions {
			for _, alpha := range alphaOptions {
				sets = append(sets, paramSet{kappa: kappa, beta: beta, alpha: alpha})
			}
		}
	}

	fmt.Printf("Sweeping %d parameter sets (%d workers, size %d, cap %d ticks)\n",
		len(sets), *workers, *size, *maxTicks)

	jobs := make(chan paramSet)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for params := range jobs {
				results <- runScenario(base, params)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, params := range sets {
			jobs <- params
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	reachedEdge := 0
	for res := range results {
		all = append(all, res)
		if res.state == snowfake.StateStoppedEdge {
			reachedEdge++
		}
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].ticks != all[j].ticks {
			return all[i].ticks < all[j].ticks
		}
		return all[i].attached > all[j].attached
	})
	elapsed := time.Since(start)

	fmt.Printf("\nFastest 10 runs (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < 10; i++ {
		res := all[i]
		fmt.Printf("%2d) ticks=%d attached=%d radius=%.1f state=%q params=%s\n",
			i+1, res.ticks, res.attached, res.radius, res.state, res.params)
	}

	ticks := make([]float64, len(all))
	attached := make([]float64, len(all))
	radius := make([]float64, len(all))
	for i, res := range all {
		ticks[i] = float64(res.ticks)
		attached[i] = float64(res.attached)
		radius[i] = res.radius
	}
	tickMean, tickStd := stat.MeanStdDev(ticks, nil)
	attMean, attStd := stat.MeanStdDev(attached, nil)
	radMean, radStd := stat.MeanStdDev(radius, nil)

	fmt.Printf("\nReached edge: %d/%d\n", reachedEdge, len(all))
	fmt.Printf("Ticks to stop:  mean %.0f ± %.0f\n", tickMean, tickStd)
	fmt.Printf("Attached cells: mean %.0f ± %.0f\n", attMean, attStd)
	fmt.Printf("Crystal radius: mean %.1f ± %.1f\n", radMean, radStd)
}

func runScenario(base snowfake.Config, params paramSet) scenarioResult {
	cfg := base
	cfg.Params.Kappa = params.kappa
	cfg.Params.Beta = params.beta
	cfg.Params.Alpha = params.alpha

	sim := snowfake.NewWithConfig(cfg)
	res := sim.Run(nil)
	return scenarioResult{
		params:   params,
		state:    res.State,
		ticks:    res.Ticks,
		attached: res.Attached,
		radius:   res.Radius,
	}
}
