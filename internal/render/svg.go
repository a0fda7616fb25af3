// Package render turns a finished snowfake lattice into images.
package render

import (
	"bufio"
	"io"
	"math"

	svg "github.com/ajstarks/svgo/float"

	"snowfake/internal/core"
)

// DefaultScale is the SVG document width in user units.
const DefaultScale = 1000.0

// WriteSVG emits one circle per attached cell, radius proportional to its
// crystal mass. The square lattice is projected to hexagonal geometry with a
// polar transform: each cell is rotated 45° about the center and the vertical
// axis compressed by 1/√3.
func WriteSVG(w io.Writer, cells []core.Cell, n int, scale float64) error {
	if scale <= 0 {
		scale = DefaultScale
	}
	center := float64(n/2 + 1)
	yscale := 1 / math.Sqrt(3)
	dscale := scale / float64(n)
	dotscale := 0.25 * dscale

	bw := bufio.NewWriter(w)
	canvas := svg.New(bw)
	canvas.Start(scale, scale*yscale)
	for i, cell := range cells {
		if !cell.Attached {
			continue
		}
		r := float64(i/n) - center
		c := float64(i%n) - center
		d := math.Hypot(r, c)
		a := math.Atan2(c, r) + math.Pi/4
		x := (d*math.Cos(a) + center) * dscale
		y := (d*math.Sin(a) + center) * dscale * yscale
		canvas.Circle(x, y, cell.CrystalMass*dotscale)
	}
	canvas.End()
	return bw.Flush()
}
