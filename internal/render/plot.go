package render

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"snowfake/internal/sims/snowfake"
)

// SaveGrowthPlot writes a line plot of the crystal's growth curve: attached
// cell count and radius per tick.
func SaveGrowthPlot(path string, trace *snowfake.GrowthTrace) error {
	if trace == nil || len(trace.Samples) == 0 {
		return fmt.Errorf("growth trace is empty")
	}

	attached := make(plotter.XYs, len(trace.Samples))
	radius := make(plotter.XYs, len(trace.Samples))
	for i, s := range trace.Samples {
		attached[i].X = float64(s.Tick)
		attached[i].Y = float64(s.Attached)
		radius[i].X = float64(s.Tick)
		radius[i].Y = s.Radius
	}

	p := plot.New()
	p.Title.Text = "snowfake growth"
	p.X.Label.Text = "tick"

	attachedLine, err := plotter.NewLine(attached)
	if err != nil {
		return fmt.Errorf("attached line: %w", err)
	}
	attachedLine.Width = vg.Points(1)
	attachedLine.Color = color.RGBA{R: 50, G: 100, B: 220, A: 255}
	p.Add(attachedLine)
	p.Legend.Add("attached cells", attachedLine)

	radiusLine, err := plotter.NewLine(radius)
	if err != nil {
		return fmt.Errorf("radius line: %w", err)
	}
	radiusLine.Width = vg.Points(1)
	radiusLine.Color = color.RGBA{R: 220, G: 90, B: 50, A: 255}
	p.Add(radiusLine)
	p.Legend.Add("radius", radiusLine)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}
