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

// Sensory calculates the receptor-agnostic perceived intensity of
// individual components.
type Sensory struct {
	Evaporation
}

// PerceivedIntensity returns the perceived odor intensity of c at time t:
//
//	I(t) = G(t) EF RF
//
// where RF is the sum of the affinities of c for every receptor it
// declares, regardless of which receptors are being modeled.
func (s Sensory) PerceivedIntensity(c *Component, t float64) (float64, error) {
	g, err := s.Headspace(c, t)
	if err != nil {
		return 0, err
	}
	return intensity(c, g), nil
}

func intensity(c *Component, g float64) float64 {
	return g * c.EF * c.Affinity.Total()
}
