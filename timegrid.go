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

import "gonum.org/v1/gonum/floats"

// TimeGrid returns the model time axis [s] for cfg. The axis is made of an
// early segment from 0 to cfg.EarlyWindow holding
// floor(cfg.NPoints × cfg.EarlyFraction) evenly spaced samples, followed by
// a late segment from cfg.EarlyWindow to cfg.TMax holding the remaining
// samples. Both segments include their endpoints. cfg.Boundary determines
// whether the boundary time, which ends the first segment and starts the
// second, appears once or twice.
func TimeGrid(cfg *Config) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return timeGrid(cfg), nil
}

// timeGrid builds the time axis for an already validated configuration.
func timeGrid(cfg *Config) []float64 {
	nEarly, nLate := cfg.segmentPoints()
	early := span(make([]float64, nEarly), 0, cfg.EarlyWindow)
	late := span(make([]float64, nLate), cfg.EarlyWindow, cfg.TMax)
	if cfg.Boundary == BoundaryDedupe {
		late = late[1:]
	}
	return append(early, late...)
}

// span fills dst with evenly spaced values from l to u, inclusive. The
// endpoints are set exactly so that adjacent segments meet at the same
// value.
func span(dst []float64, l, u float64) []float64 {
	floats.Span(dst, l, u)
	dst[0] = l
	dst[len(dst)-1] = u
	return dst
}
