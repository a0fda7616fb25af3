// Package snowfake grows 2D snow crystals with the Gravner–Griffeath
// mesoscopic lattice model.
//
// Janko Gravner and David Griffeath, "Modeling Snow Crystal Growth II: A
// mesoscopic lattice map with plausible dynamics", Physica D 237:385–404,
// 2008.
package snowfake

import (
	"math"

	"snowfake/internal/core"
)

// Sim runs the five-phase Gravner–Griffeath update cycle on a double-buffered
// hexagonal lattice. Each tick: diffusion, freezing, attachment, melting and
// (when enabled) noise, in that strict order.
type Sim struct {
	cfg    Config
	n      int
	center int

	lat *core.Lattice
	rng *core.RNG

	state State
	ticks int

	// newly holds the cells that attached during the current tick, recorded
	// by the decision pass and applied afterwards so scan order cannot
	// influence the outcome.
	newly []int
}

// New returns a snowfake simulation of the given lattice size using defaults.
func New(size int) *Sim {
	cfg := DefaultConfig()
	cfg.Size = size
	return NewWithConfig(cfg)
}

// NewWithConfig returns a snowfake simulation configured from cfg. The
// configuration is copied and never mutated afterwards; callers should run
// Config.Validate before construction.
func NewWithConfig(cfg Config) *Sim {
	s := &Sim{
		cfg:    cfg,
		n:      cfg.Size,
		center: cfg.Size/2 + 1,
		lat:    core.NewLattice(cfg.Size),
		rng:    core.NewRNG(cfg.Seed),
	}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "snowfake" }

// Size returns the lattice side length.
func (s *Sim) Size() int { return s.n }

// Center returns the index of the seed cell on either axis.
func (s *Sim) Center() int { return s.center }

// Config returns the configuration the simulation was built with.
func (s *Sim) Config() Config { return s.cfg }

// Lattice exposes the underlying cell pages for rendering and inspection.
func (s *Sim) Lattice() *core.Lattice { return s.lat }

// Cells exposes the settled page of cell state.
func (s *Sim) Cells() []core.Cell { return s.lat.Cur() }

// Reset reinitializes the lattice: every cell holds vapor at density rho,
// except the center cell which is fully attached with unit crystal mass, and
// its six neighbors which start boundary-adjacent.
func (s *Sim) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.state = StateInitialized
	s.ticks = 0
	s.newly = s.newly[:0]

	vapor := s.vaporField(seed)
	for _, page := range [][]core.Cell{s.lat.Cur(), s.lat.Nxt()} {
		for i := range page {
			page[i] = core.Cell{DiffusiveMass: vapor(i)}
		}
		ci := s.lat.Index(s.center, s.center)
		page[ci] = core.Cell{Attached: true, CrystalMass: 1}
		for i := 0; i < 6; i++ {
			nr, nc, ok := s.lat.Neighbor(s.center, s.center, i)
			if !ok {
				continue
			}
			page[s.lat.Index(nr, nc)].AttachedNeighbors = 1
		}
	}
}

// Step advances the simulation by one tick. It is a no-op once stopped.
func (s *Sim) Step() {
	if s.state == StateStoppedEdge || s.state == StateStoppedTickLimit {
		return
	}
	s.state = StateRunning

	s.diffusion()
	s.freezing()
	stopped := s.attachment()
	if !stopped {
		s.melting()
		if s.cfg.Params.Sigma != 0 && s.cfg.Params.Gamma > 0 {
			s.noise()
		}
	}
	s.lat.Flip()
	s.ticks++

	if stopped {
		s.state = StateStoppedEdge
		return
	}
	if s.ticks >= s.cfg.MaxTicks {
		s.state = StateStoppedTickLimit
	}
}

// diffusion relaxes the vapor field: each non-attached interior cell averages
// its own prior diffusive mass with its six neighbors'. Reflective boundary
// conditions apply at the crystal: an attached neighbor's contribution is
// replaced with the cell's own prior mass, so vapor bounces off ice instead
// of leaking into it. Border cells are pinned to the ambient density rho,
// acting as a constant vapor source.
//
// This is the only phase that carries state forward between pages: it copies
// every cell from the read page before rewriting diffusive mass, so attached
// cells stay pinned (zero diffusive and boundary mass) on both pages.
func (s *Sim) diffusion() {
	cur, nxt := s.lat.Cur(), s.lat.Nxt()
	n := s.n
	rho := s.cfg.Params.Rho
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			i := s.lat.Index(r, c)
			nxt[i] = cur[i]
			if s.lat.Border(r, c) {
				if !nxt[i].Attached {
					nxt[i].DiffusiveMass = rho
				}
				continue
			}
			if nxt[i].Attached {
				nxt[i].DiffusiveMass = 0
				continue
			}
			m := cur[i].DiffusiveMass / 7
			for k := 0; k < 6; k++ {
				nr, nc, ok := s.lat.Neighbor(r, c, k)
				if !ok {
					continue
				}
				j := s.lat.Index(nr, nc)
				if cur[j].Attached {
					j = i
				}
				m += cur[j].DiffusiveMass / 7
			}
			nxt[i].DiffusiveMass = m
		}
	}
}

// freezing moves vapor at boundary-adjacent sites into the condensed phases:
// a kappa fraction becomes crystal mass, the rest quasi-liquid boundary mass.
// It runs in place on the write page diffusion just settled.
func (s *Sim) freezing() {
	nxt := s.lat.Nxt()
	n := s.n
	kappa := s.cfg.Params.Kappa
	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			i := s.lat.Index(r, c)
			if nxt[i].Attached || nxt[i].AttachedNeighbors == 0 {
				continue
			}
			d := nxt[i].DiffusiveMass
			nxt[i].DiffusiveMass = 0
			nxt[i].CrystalMass += kappa * d
			nxt[i].BoundaryMass += (1 - kappa) * d
		}
	}
}

// attachment decides which boundary-adjacent sites join the crystal this
// tick. Decisions are computed for the whole lattice before any are applied,
// so simultaneous attachments never observe each other and the result is
// independent of scan order. It reports whether a new attachment landed in
// the outer third of the lattice, the signal to stop the run.
func (s *Sim) attachment() bool {
	nxt := s.lat.Nxt()
	n := s.n
	p := s.cfg.Params
	s.newly = s.newly[:0]

	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			i := s.lat.Index(r, c)
			if nxt[i].Attached {
				continue
			}
			join := false
			switch nxt[i].AttachedNeighbors {
			case 0:
				// Not boundary-adjacent yet.
			case 1, 2:
				// Tip or edge.
				join = nxt[i].BoundaryMass >= p.Beta
			case 3:
				// Concavity.
				if nxt[i].BoundaryMass >= 1.0 {
					join = true
					break
				}
				if nxt[i].BoundaryMass < p.Alpha {
					break
				}
				d := nxt[i].DiffusiveMass
				for k := 0; k < 6; k++ {
					nr, nc, ok := s.lat.Neighbor(r, c, k)
					if !ok {
						continue
					}
					d += nxt[s.lat.Index(nr, nc)].DiffusiveMass
				}
				join = d < p.Theta
			default:
				// Hole: 4+ attached neighbors always fill in.
				join = true
			}
			if join {
				s.newly = append(s.newly, i)
			}
		}
	}

	stop := false
	third := n / 3
	for _, i := range s.newly {
		r, c := i/n, i%n
		nxt[i].Attached = true
		nxt[i].CrystalMass += nxt[i].BoundaryMass
		nxt[i].BoundaryMass = 0
		nxt[i].DiffusiveMass = 0
		for k := 0; k < 6; k++ {
			nr, nc, ok := s.lat.Neighbor(r, c, k)
			if !ok {
				continue
			}
			nxt[s.lat.Index(nr, nc)].AttachedNeighbors++
		}
		if r < third || r >= n-third || c < third || c >= n-third {
			stop = true
		}
	}
	return stop
}

// melting lets the condensed phases at boundary-adjacent sites anneal: a mu
// fraction of boundary mass and a gamma fraction of not-yet-attached crystal
// mass return to vapor.
func (s *Sim) melting() {
	nxt := s.lat.Nxt()
	n := s.n
	p := s.cfg.Params
	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			i := s.lat.Index(r, c)
			if nxt[i].Attached || nxt[i].AttachedNeighbors == 0 {
				continue
			}
			b := nxt[i].BoundaryMass
			cm := nxt[i].CrystalMass
			nxt[i].BoundaryMass = (1 - p.Mu) * b
			nxt[i].CrystalMass = (1 - p.Gamma) * cm
			nxt[i].DiffusiveMass += p.Mu*b + p.Gamma*cm
		}
	}
}

// noise perturbs every interior cell's diffusive mass by ±sigma with a fair
// coin from the simulation's own seeded RNG.
func (s *Sim) noise() {
	nxt := s.lat.Nxt()
	n := s.n
	sigma := s.cfg.Params.Sigma
	for r := 1; r < n-1; r++ {
		for c := 1; c < n-1; c++ {
			i := s.lat.Index(r, c)
			f := sigma
			if s.rng.Bool() {
				f = -sigma
			}
			nxt[i].DiffusiveMass *= 1 + f
		}
	}
}

// AttachedCount returns the number of attached cells.
func (s *Sim) AttachedCount() int {
	count := 0
	for _, cell := range s.lat.Cur() {
		if cell.Attached {
			count++
		}
	}
	return count
}

// Radius returns the largest Euclidean distance from the seed cell to any
// attached cell, in lattice units.
func (s *Sim) Radius() float64 {
	max := 0.0
	cur := s.lat.Cur()
	for i, cell := range cur {
		if !cell.Attached {
			continue
		}
		r := float64(i/s.n - s.center)
		c := float64(i%s.n - s.center)
		if d := math.Hypot(r, c); d > max {
			max = d
		}
	}
	return max
}

// TotalMass returns the sum of diffusive, boundary and crystal mass over the
// whole lattice.
func (s *Sim) TotalMass() float64 {
	total := 0.0
	for _, cell := range s.lat.Cur() {
		total += cell.DiffusiveMass + cell.BoundaryMass + cell.CrystalMass
	}
	return total
}
