// Command america — convergence chart.
//
// One line chart per run: best-so-far and population-mean tour length over
// the generations. The output format follows the file extension (PNG, SVG,
// PDF, ...).
package main

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/cerber-os/PSZT/genetic"
)

// writeConvergencePlot renders the run history to path.
func writeConvergencePlot(path string, hist []genetic.GenerationStats) error {
	p := plot.New()
	p.Title.Text = "Genetic TSP convergence"
	p.X.Label.Text = "Generation"
	p.Y.Label.Text = "Tour length [km]"

	var (
		bestPts = make(plotter.XYs, len(hist))
		meanPts = make(plotter.XYs, len(hist))
	)
	for i, h := range hist {
		bestPts[i].X = float64(h.Generation)
		bestPts[i].Y = h.Best
		meanPts[i].X = float64(h.Generation)
		meanPts[i].Y = h.Mean
	}

	bestLine, err := plotter.NewLine(bestPts)
	if err != nil {
		return err
	}
	meanLine, err := plotter.NewLine(meanPts)
	if err != nil {
		return err
	}
	meanLine.LineStyle.Color = color.RGBA{R: 0xc0, G: 0x40, B: 0x40, A: 0xff}
	meanLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}

	p.Add(bestLine, meanLine)
	p.Legend.Add("best so far", bestLine)
	p.Legend.Add("population mean", meanLine)
	p.Legend.Top = true

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
