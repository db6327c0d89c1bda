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


package aroma

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestTimeLabel(t *testing.T) {
	for ti, want := range map[float64]string{
		0:     "0_min",
		59.9:  "0_min",
		60:    "1_min",
		1800:  "30_min",
		28800: "480_min",
	} {
		if got := TimeLabel(ti); got != want {
			t.Errorf("%g: got %q; want %q", ti, got, want)
		}
	}
}

func TestReport(t *testing.T) {
	cfg := testConfig()
	s, err := Generate(context.Background(), cfg, testComponents())
	if err != nil {
		t.Fatal(err)
	}
	indices := []int{0, 119, s.Len() - 1}
	r, err := s.Report(indices)
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"0_min", "30_min", "480_min"}; !reflect.DeepEqual(r.Labels, want) {
		t.Errorf("labels = %v; want %v", r.Labels, want)
	}
	if len(r.Components) != 4 || len(r.Receptors) != len(cfg.Receptors) {
		t.Fatalf("got %d component and %d receptor rows", len(r.Components), len(r.Receptors))
	}
	lim, _ := s.Component("limonene")
	if row := r.Components[0]; row.Name != "limonene" || row.Values[1] != lim[119] {
		t.Errorf("limonene row = %+v", row)
	}
	fruit, _ := s.Receptor("R_fruit")
	if row := r.Receptors[1]; row.Name != "R_fruit" || row.Values[2] != fruit[s.Len()-1] {
		t.Errorf("R_fruit row = %+v", row)
	}

	indices[0] = 5
	if r.Indices[0] != 0 {
		t.Error("report shares storage with the requested indices")
	}

	for _, bad := range [][]int{{-1}, {0, s.Len()}} {
		if _, err := s.Report(bad); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("%v: err = %v; want ErrInvalidInput", bad, err)
		}
	}
}
