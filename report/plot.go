package report

import (
	"fmt"

	"github.com/notargets/dielectric/sweep"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Plot size
const (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// Plot draws n and k against wavelength and saves the figure to path.
// The image format follows the file extension (png, svg, pdf, ...).
func Plot(samples []sweep.Sample, title, path string) error {
	if len(samples) == 0 {
		return ErrNoSamples
	}
	n := make(plotter.XYs, len(samples))
	k := make(plotter.XYs, len(samples))
	for i, s := range samples {
		n[i].X, n[i].Y = s.Wavelength, s.N()
		k[i].X, k[i].Y = s.Wavelength, s.K()
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "wavelength (µm)"
	p.Y.Label.Text = "n, k"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLines(p, "n", n, "k", k); err != nil {
		return fmt.Errorf("plot %s: %w", title, err)
	}
	if err := p.Save(PlotWidth, PlotHeight, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
