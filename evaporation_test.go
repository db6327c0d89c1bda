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
	"errors"
	"math"
	"testing"
)

func TestDecayRate(t *testing.T) {
	e := Evaporation{Alpha: 1e-3, Beta: 1}

	k, err := e.DecayRate(componentA())
	if err != nil {
		t.Fatal(err)
	}
	if different(k, 0.01, testTolerance) {
		t.Errorf("k = %g; want 0.01", k)
	}

	t.Run("zero vapor pressure", func(t *testing.T) {
		c := componentA()
		c.Pvap = 0
		k, err := e.DecayRate(c)
		if err != nil {
			t.Fatal(err)
		}
		if k != 0 {
			t.Errorf("k = %g; want 0", k)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		for _, mod := range []func(*Component){
			func(c *Component) { c.M = 0 },
			func(c *Component) { c.M = -4 },
			func(c *Component) { c.K = 0 },
		} {
			c := componentA()
			mod(c)
			if _, err := e.DecayRate(c); !errors.Is(err, ErrInvalidComponent) {
				t.Errorf("M=%g, K=%g: err = %v; want ErrInvalidComponent", c.M, c.K, err)
			}
		}
	})
}

func TestHeadspace(t *testing.T) {
	e := Evaporation{Alpha: 1e-3, Beta: 1}
	c := componentA()

	g0, err := e.Headspace(c, 0)
	if err != nil {
		t.Fatal(err)
	}
	if g0 != 0.5 {
		t.Errorf("G(0) = %g; want exactly 0.5", g0)
	}

	g600, err := e.Headspace(c, 600)
	if err != nil {
		t.Fatal(err)
	}
	if different(g600, 0.5*math.Exp(-6), 1e-12) {
		t.Errorf("G(600) = %g; want %g", g600, 0.5*math.Exp(-6))
	}
	if different(g600, 0.0012395, 1e-4) {
		t.Errorf("G(600) = %g; want ≈0.0012395", g600)
	}

	if _, err := e.Headspace(c, -1); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("negative time: err = %v; want ErrInvalidInput", err)
	}
	if _, err := e.Headspace(c, math.NaN()); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("NaN time: err = %v; want ErrInvalidInput", err)
	}
}

func TestHeadspaceInitialValueExact(t *testing.T) {
	e := Evaporation{Alpha: 3.7e-3, Beta: 1.9}
	for _, c := range testComponents() {
		g, err := e.Headspace(c, 0)
		if err != nil {
			t.Fatal(err)
		}
		if want := e.Beta * c.C * c.KGelToAir; g != want {
			t.Errorf("%s: G(0) = %g; want exactly %g", c.Name, g, want)
		}
	}
}

func TestHeadspaceMonotonic(t *testing.T) {
	e := Evaporation{Alpha: 1e-3, Beta: 1}
	for _, c := range testComponents() {
		k, err := e.DecayRate(c)
		if err != nil {
			t.Fatal(err)
		}
		prev := math.Inf(1)
		for ti := 0.; ti <= 8*3600; ti += 97 {
			g, err := e.Headspace(c, ti)
			if err != nil {
				t.Fatal(err)
			}
			if g > prev {
				t.Fatalf("%s: G(%g) = %g > previous value %g", c.Name, ti, g, prev)
			}
			if k == 0 && g != e.Beta*c.C*c.KGelToAir {
				t.Errorf("%s: k = 0 but G(%g) = %g changed from initial value", c.Name, ti, g)
			}
			prev = g
		}
	}
}

func TestHeadspaceLongTime(t *testing.T) {
	e := Evaporation{Alpha: 1e-3, Beta: 1}
	g, err := e.Headspace(componentA(), 1e6)
	if err != nil {
		t.Fatal(err)
	}
	if absDifferent(g, 0, 1e-100) {
		t.Errorf("G(1e6) = %g; want ≈0", g)
	}
}
