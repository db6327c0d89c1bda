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

import "fmt"

// Report holds series values at a selection of time indices.
type Report struct {
	Indices []int
	Times   []float64 // seconds
	Labels  []string  // human-readable time labels, see TimeLabel

	Components []ReportRow
	Receptors  []ReportRow
}

// ReportRow holds the values of one named series at the report times.
type ReportRow struct {
	Name   string
	Values []float64
}

// TimeLabel returns a label for time t [s] in whole minutes,
// for example "30_min". Fractional minutes are truncated.
func TimeLabel(t float64) string {
	return fmt.Sprintf("%d_min", int(t/60))
}

// Report returns the values of every component and receptor series at the
// given time indices, in the order the indices are given.
func (s *Series) Report(indices []int) (*Report, error) {
	r := &Report{
		Indices:    append([]int(nil), indices...),
		Times:      make([]float64, len(indices)),
		Labels:     make([]string, len(indices)),
		Components: make([]ReportRow, len(s.Components)),
		Receptors:  make([]ReportRow, len(s.Receptors)),
	}
	for k, i := range indices {
		if i < 0 || i >= s.Len() {
			return nil, fmt.Errorf("aroma: report time index %d is outside of the range [0, %d): %w",
				i, s.Len(), ErrInvalidInput)
		}
		r.Times[k] = s.Times[i]
		r.Labels[k] = TimeLabel(s.Times[i])
	}
	for j, n := range s.Components {
		row := ReportRow{Name: n, Values: make([]float64, len(indices))}
		for k, i := range indices {
			row.Values[k] = s.Intensity.At(i, j)
		}
		r.Components[j] = row
	}
	for j, n := range s.Receptors {
		row := ReportRow{Name: n, Values: make([]float64, len(indices))}
		for k, i := range indices {
			row.Values[k] = s.Activation.At(i, j)
		}
		r.Receptors[j] = row
	}
	return r, nil
}
