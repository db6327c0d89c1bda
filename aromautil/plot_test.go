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
	"os"
	"path/filepath"
	"testing"
)

func TestPlotSeries(t *testing.T) {
	s, _ := testSeries(t)
	dir := t.TempDir()
	for _, ext := range []string{".png", ".svg"} {
		cf, rf, err := PlotSeries(s, filepath.Join(dir, "aroma"+ext))
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, "aroma_receptors"+ext); rf != want {
			t.Errorf("receptor file = %s; want %s", rf, want)
		}
		for _, f := range []string{cf, rf} {
			info, err := os.Stat(f)
			if err != nil {
				t.Fatal(err)
			}
			if info.Size() == 0 {
				t.Errorf("%s is empty", f)
			}
		}
	}
	if _, _, err := PlotSeries(s, filepath.Join(dir, "aroma.html")); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestLinePlotAxis(t *testing.T) {
	x := []float64{0, 1, 2}
	data := map[string][]float64{
		"positive": {0.5, 0.3, 0.1},
		"negative": {-0.4, -0.2, -0.1},
	}
	series := func(n string) ([]float64, bool) {
		v, ok := data[n]
		return v, ok
	}

	p, err := newLinePlot("t", "y", x, []string{"positive"}, series)
	if err != nil {
		t.Fatal(err)
	}
	if p.Y.Min != 0 {
		t.Errorf("positive data: y minimum = %g; want 0", p.Y.Min)
	}

	p, err = newLinePlot("t", "y", x, []string{"positive", "negative"}, series)
	if err != nil {
		t.Fatal(err)
	}
	if p.Y.Min > -0.4 {
		t.Errorf("negative data: y minimum = %g; want ≤ -0.4", p.Y.Min)
	}
}
