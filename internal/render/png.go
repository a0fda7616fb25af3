package render

import (
	"image"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"snowfake/internal/core"
)

// rasterize paints crystal mass as grayscale on the raw square lattice.
// Unattached boundary sites carry a little crystal mass too, which gives the
// flake a faint halo.
func rasterize(cells []core.Cell, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	for i, cell := range cells {
		v := cell.CrystalMass * 255
		if v > 255 {
			v = 255
		}
		img.Set(i%n, i/n, color.Gray{Y: uint8(v)})
	}
	return img
}

// SavePNG writes the lattice as a PNG. The square array stores a skewed
// hexagonal lattice, so the raster is sheared by -30° and cropped back to
// n×n to restore the flake's true geometry.
func SavePNG(path string, cells []core.Cell, n int) error {
	img := rasterize(cells, n)
	img = transform.ShearH(img, -30)

	// The shear widens the image; crop the middle n columns back out.
	hyp := float64(n) / math.Cos(math.Pi/6)
	extra := math.Sqrt(hyp*hyp - float64(n)*float64(n))
	img = transform.Crop(img, image.Rect(int(extra/2), 0, int(extra/2)+n, n))

	img = adjust.Apply(img, func(c color.RGBA) color.RGBA {
		c.A = 255
		return c
	})
	return imgio.Save(path, img, imgio.PNGEncoder())
}
