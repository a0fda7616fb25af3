package snowfake

import (
	"fmt"
	"strconv"
)

// Params holds the physical constants of the Gravner–Griffeath model.
//
// Typical ranges, after Gravner & Griffeath (2008): Rho 0.3–0.9, Kappa
// 0.001–0.02, Beta 1.05–3.0, Theta 0.01–0.04, Alpha 0.02–0.1, Mu 0.04–0.09,
// Gamma very small, Sigma tiny or zero.
type Params struct {
	// Rho is the ambient vapor density the lattice starts at and the
	// border ring is replenished to each tick.
	Rho float64
	// Kappa is the fraction of diffusive mass that freezes straight into
	// crystal mass at a boundary site.
	Kappa float64
	// Beta is the minimum boundary mass for a tip or edge site (1–2
	// attached neighbors) to join the crystal.
	Beta float64
	// Theta caps the neighborhood diffusive mass under which a concavity
	// site (3 attached neighbors) may join.
	Theta float64
	// Alpha is the minimum boundary mass for a concavity site to join.
	Alpha float64
	// Mu is the per-tick fraction of boundary mass that melts back to vapor.
	Mu float64
	// Gamma is the per-tick fraction of unattached crystal mass that
	// sublimates back to vapor.
	Gamma float64
	// Sigma is the noise amplitude applied to diffusive mass. Zero keeps
	// the dynamics exactly deterministic.
	Sigma float64

	// VaporNoiseAmp and VaporNoiseFreq modulate the initial vapor field
	// with perlin noise. Zero amplitude leaves the field uniform at Rho.
	VaporNoiseAmp  float64
	VaporNoiseFreq float64
}

// Config controls a snowfake simulation run.
type Config struct {
	// Size is the lattice side length. It must be odd and positive.
	Size int

	Seed int64

	// MaxTicks bounds the run as a liveness guard for parameter choices
	// that never reach the lattice edge.
	MaxTicks int

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Size:     101,
		Seed:     1337,
		MaxTicks: 100000,
		Params: Params{
			Rho:   0.42,
			Kappa: 0.01,
			Beta:  1.9,
			Theta: 0.025,
			Alpha: 0.08,
			Mu:    0.06,
			Gamma: 0.006,
			Sigma: 0,
		},
	}
}

// Validate reports whether the configuration can produce a well-formed run.
func (c Config) Validate() error {
	if c.Size <= 0 {
		return fmt.Errorf("grid size must be positive, got %d", c.Size)
	}
	if c.Size%2 == 0 {
		return fmt.Errorf("grid size must be odd, got %d", c.Size)
	}
	if c.Size < 5 {
		return fmt.Errorf("grid size must be at least 5, got %d", c.Size)
	}
	if c.MaxTicks <= 0 {
		return fmt.Errorf("max ticks must be positive, got %d", c.MaxTicks)
	}
	for _, p := range []struct {
		name  string
		value float64
	}{
		{"rho", c.Params.Rho},
		{"kappa", c.Params.Kappa},
		{"beta", c.Params.Beta},
		{"theta", c.Params.Theta},
		{"alpha", c.Params.Alpha},
		{"mu", c.Params.Mu},
		{"gamma", c.Params.Gamma},
		{"sigma", c.Params.Sigma},
	} {
		if p.value < 0 {
			return fmt.Errorf("%s must be non-negative, got %g", p.name, p.value)
		}
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_ticks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxTicks = parsed
		}
	}
	floatKeys := []struct {
		key string
		dst *float64
	}{
		{"rho", &c.Params.Rho},
		{"kappa", &c.Params.Kappa},
		{"beta", &c.Params.Beta},
		{"theta", &c.Params.Theta},
		{"alpha", &c.Params.Alpha},
		{"mu", &c.Params.Mu},
		{"gamma", &c.Params.Gamma},
		{"sigma", &c.Params.Sigma},
		{"vapor_noise_amp", &c.Params.VaporNoiseAmp},
		{"vapor_noise_freq", &c.Params.VaporNoiseFreq},
	}
	for _, fk := range floatKeys {
		if v, ok := cfg[fk.key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
				*fk.dst = parsed
			}
		}
	}
	return c
}
