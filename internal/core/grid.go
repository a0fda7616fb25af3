package core

// Cell holds the mesoscopic state of one lattice site.
type Cell struct {
	Attached          bool
	AttachedNeighbors uint8
	BoundaryMass      float64
	CrystalMass       float64
	DiffusiveMass     float64
}

// NeighborOffsets maps a hexagonal 6-neighborhood onto square array
// coordinates. The skewed offset set (not an 8-neighborhood) is what gives
// crystals grown on this lattice their hexagonal symmetry.
var NeighborOffsets = [6][2]int{
	{-1, -1},
	{-1, 0},
	{0, -1},
	{0, 1},
	{1, 0},
	{1, 1},
}

// Lattice stores two same-shaped N×N pages of cells in row-major order.
// One page is read while the other is written; Flip exchanges the roles.
type Lattice struct {
	N      int
	pages  [2][]Cell
	active int
}

// NewLattice allocates both pages for an N×N lattice.
func NewLattice(n int) *Lattice {
	if n <= 0 {
		n = 1
	}
	return &Lattice{
		N:     n,
		pages: [2][]Cell{make([]Cell, n*n), make([]Cell, n*n)},
	}
}

// Cur exposes the settled page phases read from.
func (l *Lattice) Cur() []Cell { return l.pages[l.active] }

// Nxt exposes the page phases write into.
func (l *Lattice) Nxt() []Cell { return l.pages[1-l.active] }

// Flip exchanges the read and write pages without copying.
func (l *Lattice) Flip() { l.active = 1 - l.active }

// Index returns the linear slice index for coordinates (r, c).
func (l *Lattice) Index(r, c int) int { return r*l.N + c }

// Neighbor returns the coordinates of neighbor i of (r, c), or ok=false when
// the offset lands outside the lattice. Callers skip absent neighbors; the
// edge behaves as an open boundary, not an error.
func (l *Lattice) Neighbor(r, c, i int) (nr, nc int, ok bool) {
	nr = r + NeighborOffsets[i][0]
	nc = c + NeighborOffsets[i][1]
	if nr < 0 || nr >= l.N || nc < 0 || nc >= l.N {
		return 0, 0, false
	}
	return nr, nc, true
}

// Border reports whether (r, c) lies on the outermost ring.
func (l *Lattice) Border(r, c int) bool {
	return r == 0 || r == l.N-1 || c == 0 || c == l.N-1
}
