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

import "math"

const testTolerance = 1.e-10

// componentA is a single component with round numbers:
// k = 1e-3·100/(√100·1) = 0.01 s⁻¹ and G(0) = 0.5.
func componentA() *Component {
	return &Component{
		Name:      "A",
		C:         1.0,
		Pvap:      100,
		M:         100,
		K:         1,
		KGelToAir: 0.5,
		EF:        1.0,
		Affinity:  Affinity{"R_citrus": 1.0},
	}
}

// testComponents returns a small fragrance with a volatile top note, a
// middle note and a non-volatile base note.
func testComponents() Components {
	return Components{
		{
			Name: "limonene", C: 0.3, Pvap: 190, M: 136.24, K: 1.2, KGelToAir: 0.8, EF: 1.1,
			Affinity: Affinity{"R_citrus": 0.9, "R_fruit": 0.2},
		},
		{
			Name: "ethyl butyrate", C: 0.1, Pvap: 1700, M: 116.16, K: 2.5, KGelToAir: 0.4, EF: 0.9,
			Affinity: Affinity{"R_fruit": 1.0},
		},
		{
			Name: "eugenol", C: 0.2, Pvap: 3, M: 164.2, K: 0.8, KGelToAir: 0.3, EF: 1.4,
			Affinity: Affinity{"R_spice": 0.7, "R_citrus": 0.05},
		},
		{
			Name: "vanillin", C: 0.4, Pvap: 0, M: 152.15, K: 3, KGelToAir: 0.2, EF: 0.5,
			Affinity: Affinity{"R_sweet": 0.6},
		},
	}
}

func testConfig() *Config {
	cfg := DefaultConfig()
	cfg.NPoints = 200
	return cfg
}

// different reports whether a and b differ by more than the given
// relative tolerance.
func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	if math.Abs(a-b) > tolerance {
		return true
	}
	return false
}
