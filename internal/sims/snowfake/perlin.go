package snowfake

import "github.com/aquilax/go-perlin"

// vaporField returns the initial diffusive mass for linear cell index i.
// With zero noise amplitude every cell starts at exactly rho; otherwise the
// field is modulated with perlin noise so growth does not start from a
// perfectly uniform atmosphere.
func (s *Sim) vaporField(seed int64) func(i int) float64 {
	p := s.cfg.Params
	if p.VaporNoiseAmp == 0 {
		return func(int) float64 { return p.Rho }
	}
	freq := p.VaporNoiseFreq
	if freq == 0 {
		freq = 0.05
	}
	gen := perlin.NewPerlin(2, 2, 3, seed)
	return func(i int) float64 {
		r := float64(i / s.n)
		c := float64(i % s.n)
		d := p.Rho + p.VaporNoiseAmp*gen.Noise2D(r*freq, c*freq)
		if d < 0 {
			d = 0
		}
		return d
	}
}
