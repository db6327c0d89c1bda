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
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/aroma"
)

func testViper() *viper.Viper {
	v := viper.New()
	v.Set("Alpha", aroma.DefaultAlpha)
	v.Set("Beta", aroma.DefaultBeta)
	v.Set("GammaDefault", aroma.GammaDefault)
	v.Set("TMax", aroma.DefaultTMax)
	v.Set("NPoints", aroma.DefaultNPoints)
	v.Set("EarlyWindow", aroma.DefaultEarlyWindow)
	v.Set("EarlyFraction", aroma.DefaultEarlyFraction)
	v.Set("Receptors", []string{"R_citrus", "R_fruit", "R_spice"})
	return v
}

func TestModelConfig(t *testing.T) {
	v := testViper()
	v.Set("Gammas", `{"limonene": 0.5}`)
	v.Set("Boundary", "keep")
	v.Set("Workers", 3)

	cfg, err := ModelConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	want := aroma.DefaultConfig()
	want.Gammas = aroma.GammaMap{"limonene": 0.5}
	want.Boundary = aroma.BoundaryKeep
	want.Workers = 3
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("got %+v\nwant %+v", cfg, want)
	}

	v.Set("Gammas", map[string]interface{}{"eugenol": int64(2)})
	cfg, err = ModelConfig(v)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(cfg.Gammas, aroma.GammaMap{"eugenol": 2}) {
		t.Errorf("gammas = %v", cfg.Gammas)
	}
}

func TestModelConfigInvalid(t *testing.T) {
	v := testViper()
	v.Set("NPoints", 0)
	if _, err := ModelConfig(v); !errors.Is(err, aroma.ErrInvalidConfiguration) {
		t.Errorf("n_points=0: err = %v", err)
	}

	v = testViper()
	v.Set("Boundary", "merge")
	if _, err := ModelConfig(v); !errors.Is(err, aroma.ErrInvalidConfiguration) {
		t.Errorf("bad boundary: err = %v", err)
	}

	v = testViper()
	v.Set("Gammas", `{"limonene": "lots"}`)
	if _, err := ModelConfig(v); err == nil {
		t.Error("bad gamma: expected an error")
	}
}

func TestMatchGammas(t *testing.T) {
	cs := wantComponents()
	g, err := matchGammas(aroma.GammaMap{"Eugenol": 0.4, "limonene": 0.1}, cs)
	if err != nil {
		t.Fatal(err)
	}
	if want := (aroma.GammaMap{"eugenol": 0.4, "limonene": 0.1}); !reflect.DeepEqual(g, want) {
		t.Errorf("got %v; want %v", g, want)
	}
	if _, err := matchGammas(aroma.GammaMap{"linalool": 1}, cs); !errors.Is(err, aroma.ErrInvalidConfiguration) {
		t.Errorf("unknown component: err = %v", err)
	}
}

func TestToIntSliceE(t *testing.T) {
	want := []int{1, 25, 120}
	for _, in := range []interface{}{
		"[1,25,120]",
		[]interface{}{int64(1), int64(25), int64(120)},
		[]interface{}{1, 25, 120},
		[]int{1, 25, 120},
	} {
		got, err := toIntSliceE(in)
		if err != nil {
			t.Errorf("%#v: %v", in, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%#v: got %v", in, got)
		}
	}
	if _, err := toIntSliceE("[1, x]"); err == nil {
		t.Error("expected an error")
	}
}

func TestGetStringMapString(t *testing.T) {
	v := viper.New()
	want := map[string]string{"total": "R_citrus + R_fruit"}
	for _, in := range []interface{}{
		`{"total": "R_citrus + R_fruit"}`,
		map[string]interface{}{"total": "R_citrus + R_fruit"},
		map[string]string{"total": "R_citrus + R_fruit"},
	} {
		v.Set("OutputVariables", in)
		got, err := GetStringMapString("OutputVariables", v)
		if err != nil {
			t.Errorf("%#v: %v", in, err)
			continue
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%#v: got %v", in, got)
		}
	}
	v.Set("OutputVariables", "{")
	if _, err := GetStringMapString("OutputVariables", v); err == nil {
		t.Error("expected an error")
	}
}

func TestCheckOutputVars(t *testing.T) {
	got := checkOutputVars(map[string]string{"Total": "R_citrus +\r\nR_fruit +\nR_spice"})
	if want := "R_citrus + R_fruit + R_spice"; got["Total"] != want {
		t.Errorf("got %q; want %q", got["Total"], want)
	}
}

func TestDefaultOutputVariables(t *testing.T) {
	got := defaultOutputVariables([]string{"R_citrus", "R green"})
	want := map[string]string{"TotalActivation": "[R_citrus] + [R green]"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v; want %v", got, want)
	}

	cfg := aroma.DefaultConfig()
	cfg.NPoints = 20
	cfg.Receptors = []string{"R_citrus", "R green"}
	s, err := aroma.Generate(context.Background(), cfg, wantComponents())
	if err != nil {
		t.Fatal(err)
	}
	d, err := s.Derive(got)
	if err != nil {
		t.Fatal(err)
	}
	citrus, _ := s.Receptor("R_citrus")
	green, _ := s.Receptor("R green")
	for i, v := range d[0].Values {
		if v != citrus[i]+green[i] {
			t.Errorf("TotalActivation[%d] = %g; want %g", i, v, citrus[i]+green[i])
		}
	}
}

func TestCheckLogFile(t *testing.T) {
	for _, test := range []struct {
		logFile string
		outputs []string
		want    string
	}{
		{"run.log", []string{"report.xlsx"}, "run.log"},
		{"", []string{"out/report.xlsx", "plot.png"}, "out/report.log"},
		{"", []string{"", "plot.png"}, "plot.log"},
		{"", []string{"", ""}, ""},
	} {
		if got := checkLogFile(test.logFile, test.outputs...); got != test.want {
			t.Errorf("checkLogFile(%q, %v) = %q; want %q", test.logFile, test.outputs, got, test.want)
		}
	}
}

func TestCheckOutputFile(t *testing.T) {
	if f, err := checkOutputFile("ReportFile", ""); err != nil || f != "" {
		t.Errorf("empty: %q, %v", f, err)
	}
	if _, err := checkOutputFile("ReportFile", "no/such/directory/report.xlsx"); err == nil {
		t.Error("expected an error for a missing directory")
	}
	if _, err := checkInputFile("ComponentsFile", ""); err == nil {
		t.Error("expected an error for an empty input file")
	}
}
