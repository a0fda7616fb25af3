package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"snowfake/internal/render"
	"snowfake/internal/sims/snowfake"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: snowfake [flags] size")
	fmt.Fprintln(os.Stderr, "  size: lattice side length, an odd positive integer (e.g. 501)")
	flag.PrintDefaults()
}

func main() {
	cfg := snowfake.DefaultConfig()
	p := &cfg.Params
	flag.Float64Var(&p.Rho, "rho", p.Rho, "ambient vapor density (typ 0.3..0.9)")
	flag.Float64Var(&p.Kappa, "kappa", p.Kappa, "freezing fraction at the boundary (typ 0.001..0.02)")
	flag.Float64Var(&p.Beta, "beta", p.Beta, "attachment threshold for tips and edges (typ 1.05..3.0)")
	flag.Float64Var(&p.Theta, "theta", p.Theta, "max neighborhood vapor for concavity attachment (typ 0.01..0.04)")
	flag.Float64Var(&p.Alpha, "alpha", p.Alpha, "min boundary mass for concavity attachment (typ 0.02..0.1)")
	flag.Float64Var(&p.Mu, "mu", p.Mu, "boundary mass melting fraction (typ 0.04..0.09)")
	flag.Float64Var(&p.Gamma, "gamma", p.Gamma, "crystal mass sublimation fraction (very small)")
	flag.Float64Var(&p.Sigma, "sigma", p.Sigma, "vapor noise amplitude (tiny; 0 disables noise)")
	flag.Float64Var(&p.VaporNoiseAmp, "vapor-noise-amp", p.VaporNoiseAmp, "perlin amplitude on the initial vapor field (0 leaves it uniform)")
	flag.Float64Var(&p.VaporNoiseFreq, "vapor-noise-freq", p.VaporNoiseFreq, "perlin frequency on the initial vapor field")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the noise phase")
	flag.IntVar(&cfg.MaxTicks, "max-ticks", cfg.MaxTicks, "hard cap on simulation ticks")
	out := flag.String("o", "", "output path; .png renders a raster, anything else SVG (default: SVG on stdout)")
	tracePath := flag.String("trace", "", "write a growth-curve plot PNG to this path")
	scale := flag.Float64("scale", render.DefaultScale, "SVG document width in user units")
	quiet := flag.Bool("quiet", false, "suppress progress output on stderr")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	size, err := strconv.Atoi(flag.Arg(0))
	if err != nil {
		log.Fatalf("grid size %q is not an integer", flag.Arg(0))
	}
	cfg.Size = size
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim := snowfake.NewWithConfig(cfg)

	var trace *snowfake.GrowthTrace
	if *tracePath != "" {
		trace = &snowfake.GrowthTrace{}
	}

	res := sim.Run(func(tick int) {
		if trace != nil {
			trace.Sample(sim)
		}
		if !*quiet && tick%1000 == 0 {
			fmt.Fprint(os.Stderr, ".")
		}
	})
	if !*quiet {
		fmt.Fprintf(os.Stderr, "\n%s after %d ticks: %d attached cells, radius %.1f\n",
			res.State, res.Ticks, res.Attached, res.Radius)
	}

	if err := writeOutput(sim, *out, *scale); err != nil {
		log.Fatalf("write output: %v", err)
	}
	if trace != nil {
		if err := render.SaveGrowthPlot(*tracePath, trace); err != nil {
			log.Fatalf("write growth plot: %v", err)
		}
	}
}

func writeOutput(sim *snowfake.Sim, path string, scale float64) error {
	cells, n := sim.Cells(), sim.Size()
	if path == "" {
		return render.WriteSVG(os.Stdout, cells, n, scale)
	}
	if strings.EqualFold(filepath.Ext(path), ".png") {
		return render.SavePNG(path, cells, n)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.WriteSVG(f, cells, n, scale); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
