/*
Copyright © 2026 the Aroma authors.
This file is part of Aroma.

Aroma is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Aroma is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Aroma.  If not, see <http://www.gnu.org/licenses/>.
*/


package aromautil

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"

	"github.com/spatialmodel/aroma"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure dimensions.
const (
	figWidth  = 7 * vg.Inch
	figHeight = 4 * vg.Inch
)

// PlotSeries draws line charts of the perceived intensity of each
// component and of the activation of each receptor, with time in minutes
// on the x axis. The component chart is saved to file, and the receptor
// chart to a file with the same name plus a "_receptors" suffix.
// The image format (png, svg, pdf, eps, jpg or tiff) is chosen by the file
// extension. The names of both files are returned.
func PlotSeries(s *aroma.Series, file string) (componentFile, receptorFile string, err error) {
	ext := filepath.Ext(file)
	switch strings.ToLower(ext) {
	case ".png", ".svg", ".pdf", ".eps", ".jpg", ".jpeg", ".tif", ".tiff":
	default:
		return "", "", fmt.Errorf("aromautil: unsupported plot file extension '%s'", ext)
	}
	componentFile = file
	receptorFile = strings.TrimSuffix(file, ext) + "_receptors" + ext

	minutes := make([]float64, s.Len())
	for i, t := range s.Times {
		minutes[i] = t / 60
	}
	err = linePlot(componentFile, "Component contributions over time",
		"Sensory contribution (arb. units)", minutes, s.Components, s.Component)
	if err != nil {
		return "", "", err
	}
	err = linePlot(receptorFile, "Receptor activations over time",
		"Receptor activation (arb. units)", minutes, s.Receptors, s.Receptor)
	if err != nil {
		return "", "", err
	}
	return componentFile, receptorFile, nil
}

// linePlot saves a chart with one line for each of the named series.
func linePlot(file, title, yLabel string, x []float64, names []string, series func(string) ([]float64, bool)) error {
	p, err := newLinePlot(title, yLabel, x, names, series)
	if err != nil {
		return err
	}
	if err := p.Save(figWidth, figHeight, file); err != nil {
		return fmt.Errorf("aromautil: saving plot: %v", err)
	}
	return nil
}

// newLinePlot creates a chart with one line for each of the named series.
// The y axis starts at zero unless some of the values are negative.
func newLinePlot(title, yLabel string, x []float64, names []string, series func(string) ([]float64, bool)) (*plot.Plot, error) {
	p, err := plot.New()
	if err != nil {
		return nil, fmt.Errorf("aromautil: creating plot: %v", err)
	}
	p.Title.Text = title
	p.X.Label.Text = "Time (minutes)"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true

	lines := make([]interface{}, 0, 2*len(names))
	yMin := math.Inf(1)
	for _, n := range names {
		y, _ := series(n)
		xy := make(plotter.XYs, len(x))
		for i := range x {
			xy[i].X = x[i]
			xy[i].Y = y[i]
		}
		if len(y) > 0 {
			yMin = math.Min(yMin, floats.Min(y))
		}
		lines = append(lines, n, xy)
	}
	if err := plotutil.AddLines(p, lines...); err != nil {
		return nil, fmt.Errorf("aromautil: plotting %s: %v", title, err)
	}
	if yMin >= 0 {
		p.Y.Min = 0
	}
	return p, nil
}
