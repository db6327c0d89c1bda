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
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Component holds the physical and olfactory parameters of a single
// fragrance ingredient. Components are treated as read-only by the model.
type Component struct {
	Name string `toml:"name" yaml:"name"`

	C         float64 `toml:"ci" yaml:"ci" desc:"Initial concentration" units:"arb. units"`
	Pvap      float64 `toml:"Pvap_Pa" yaml:"Pvap_Pa" desc:"Vapor pressure" units:"Pa"`
	M         float64 `toml:"M_g_mol" yaml:"M_g_mol" desc:"Molar mass" units:"g/mol"`
	K         float64 `toml:"K" yaml:"K" desc:"Retention constant"`
	KGelToAir float64 `toml:"Ki_gel2air" yaml:"Ki_gel2air" desc:"Gel to air partition coefficient"`
	EF        float64 `toml:"EFi" yaml:"EFi" desc:"Effective weighting factor"`

	// Affinity gives the affinity of this component for each receptor
	// that it signals.
	Affinity Affinity `toml:"kai" yaml:"kai"`
}

// Validate checks the invariants that the evaporation model relies on.
func (c *Component) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("aroma: component has no name: %w", ErrInvalidComponent)
	case !(c.M > 0):
		return fmt.Errorf("aroma: component %q: M=%g but should be >0: %w", c.Name, c.M, ErrInvalidComponent)
	case c.K == 0 || math.IsNaN(c.K):
		return fmt.Errorf("aroma: component %q: K=%g but should be nonzero: %w", c.Name, c.K, ErrInvalidComponent)
	case !(c.C >= 0):
		return fmt.Errorf("aroma: component %q: c=%g but should be ≥0: %w", c.Name, c.C, ErrInvalidComponent)
	case !(c.Pvap >= 0):
		return fmt.Errorf("aroma: component %q: Pvap=%g but should be ≥0: %w", c.Name, c.Pvap, ErrInvalidComponent)
	}
	for r, v := range c.Affinity {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("aroma: component %q: affinity for receptor %q is %g but should be finite and ≥0: %w",
				c.Name, r, v, ErrInvalidComponent)
		}
	}
	return nil
}

// Affinity maps receptor names to non-negative affinity coefficients.
// Receptors that are not present have an affinity of zero.
type Affinity map[string]float64

// Get returns the affinity for receptor r, or 0 if none is declared.
func (a Affinity) Get(r string) float64 {
	return a[r] // a missing key (or a nil map) yields 0.
}

// Receptors returns the names of the receptors with a declared affinity,
// in sorted order.
func (a Affinity) Receptors() []string {
	r := make([]string, 0, len(a))
	for k := range a {
		r = append(r, k)
	}
	sort.Strings(r)
	return r
}

// Total returns the sum of all declared affinities. The values are summed
// in sorted receptor order so that the result does not depend on map
// iteration order.
func (a Affinity) Total() float64 {
	names := a.Receptors()
	v := make([]float64, len(names))
	for i, r := range names {
		v[i] = a[r]
	}
	return floats.Sum(v)
}

// GammaMap maps component names to competitive inhibition coefficients.
type GammaMap map[string]float64

// Get returns the inhibition coefficient for the named component, or def
// if none is specified.
func (g GammaMap) Get(name string, def float64) float64 {
	if v, ok := g[name]; ok {
		return v
	}
	return def
}

// Components is an ordered collection of fragrance components. The order
// is preserved in all model output.
type Components []*Component

// Validate checks every component and ensures that names are unique.
func (cs Components) Validate() error {
	if len(cs) == 0 {
		return fmt.Errorf("aroma: no components were specified: %w", ErrInvalidComponent)
	}
	seen := make(map[string]struct{}, len(cs))
	for i, c := range cs {
		if c == nil {
			return fmt.Errorf("aroma: component %d is nil: %w", i, ErrInvalidComponent)
		}
		if err := c.Validate(); err != nil {
			return err
		}
		if _, ok := seen[c.Name]; ok {
			return fmt.Errorf("aroma: duplicate component name %q: %w", c.Name, ErrInvalidComponent)
		}
		seen[c.Name] = struct{}{}
	}
	return nil
}

// Names returns the component names in declaration order.
func (cs Components) Names() []string {
	o := make([]string, len(cs))
	for i, c := range cs {
		o[i] = c.Name
	}
	return o
}
