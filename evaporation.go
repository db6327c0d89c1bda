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
)

// Evaporation calculates the first-order evaporation of components from
// the fragrance into the headspace air.
type Evaporation struct {
	Alpha float64 // evaporation rate scale
	Beta  float64 // concentration normalization
}

// DecayRate returns the evaporation rate constant of c [1/s]:
//
//	k = α Pvap / (√M K)
func (e Evaporation) DecayRate(c *Component) (float64, error) {
	if !(c.M > 0) {
		return math.NaN(), fmt.Errorf("aroma: component %q: M=%g but should be >0: %w", c.Name, c.M, ErrInvalidComponent)
	}
	if c.K == 0 {
		return math.NaN(), fmt.Errorf("aroma: component %q: K must be nonzero: %w", c.Name, ErrInvalidComponent)
	}
	return e.Alpha * c.Pvap / (math.Sqrt(c.M) * c.K), nil
}

// Headspace returns the headspace concentration of c at time t [s]:
//
//	G(t) = β c Ki exp(-k t)
//
// At t = 0 the result is exactly β c Ki.
func (e Evaporation) Headspace(c *Component, t float64) (float64, error) {
	if !(t >= 0) {
		return math.NaN(), fmt.Errorf("aroma: time %g s is negative: %w", t, ErrInvalidInput)
	}
	k, err := e.DecayRate(c)
	if err != nil {
		return math.NaN(), err
	}
	return e.headspace(c, k, t), nil
}

// headspace calculates the headspace concentration from an already
// validated decay rate.
func (e Evaporation) headspace(c *Component, k, t float64) float64 {
	g := e.Beta * c.C * c.KGelToAir
	if k == 0 || t == 0 {
		return g
	}
	return g * math.Exp(-k*t)
}
