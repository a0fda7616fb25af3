package snowfake

// State identifies where a simulation is in its lifecycle.
type State int

const (
	// StateInitialized means the lattice is seeded but no tick has run.
	StateInitialized State = iota
	// StateRunning means at least one tick has run and no stop fired.
	StateRunning
	// StateStoppedEdge means the crystal reached the outer third of the
	// lattice and the run halted.
	StateStoppedEdge
	// StateStoppedTickLimit means the configured tick cap fired first.
	StateStoppedTickLimit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateRunning:
		return "running"
	case StateStoppedEdge:
		return "stopped (edge reached)"
	case StateStoppedTickLimit:
		return "stopped (tick limit)"
	default:
		return "unknown"
	}
}

// State returns the simulation's lifecycle state.
func (s *Sim) State() State { return s.state }

// Ticks returns the number of completed ticks.
func (s *Sim) Ticks() int { return s.ticks }

// Result summarizes a completed run.
type Result struct {
	State    State
	Ticks    int
	Attached int
	Radius   float64
}

// Run advances the simulation until it stops, either because the crystal
// reached the lattice edge or because the tick cap fired. onTick, when
// non-nil, is invoked after every completed tick with the current tick count.
func (s *Sim) Run(onTick func(tick int)) Result {
	for s.state == StateInitialized || s.state == StateRunning {
		s.Step()
		if onTick != nil {
			onTick(s.ticks)
		}
	}
	return Result{
		State:    s.state,
		Ticks:    s.ticks,
		Attached: s.AttachedCount(),
		Radius:   s.Radius(),
	}
}

// TraceSample records per-tick aggregates of a growing crystal.
type TraceSample struct {
	Tick     int
	Attached int
	Radius   float64
	Mass     float64
}

// GrowthTrace accumulates one TraceSample per tick so a run's growth curve
// can be plotted after it finishes.
type GrowthTrace struct {
	Samples []TraceSample
}

// Sample captures the simulation's current aggregates.
func (t *GrowthTrace) Sample(s *Sim) {
	t.Samples = append(t.Samples, TraceSample{
		Tick:     s.Ticks(),
		Attached: s.AttachedCount(),
		Radius:   s.Radius(),
		Mass:     s.TotalMass(),
	})
}
