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

	"gonum.org/v1/gonum/mat"
)

// Series holds the output of a simulation. Row i of Intensity and
// Activation holds the values at time Times[i]; the columns are in the
// order of Components and Receptors, respectively.
type Series struct {
	Times []float64 // seconds since application

	Components []string // component names, in declaration order
	Receptors  []string // receptor names, in configuration order

	// Intensity holds the perceived intensity of each component.
	Intensity *mat.Dense

	// Activation holds the activation of each receptor.
	Activation *mat.Dense

	componentIndex map[string]int
	receptorIndex  map[string]int
}

// newSeries allocates a Series for the given time axis and names.
func newSeries(times []float64, components, receptors []string) *Series {
	s := &Series{
		Times:          times,
		Components:     components,
		Receptors:      receptors,
		Intensity:      mat.NewDense(len(times), len(components), nil),
		Activation:     mat.NewDense(len(times), len(receptors), nil),
		componentIndex: make(map[string]int, len(components)),
		receptorIndex:  make(map[string]int, len(receptors)),
	}
	for i, n := range components {
		s.componentIndex[n] = i
	}
	for i, n := range receptors {
		s.receptorIndex[n] = i
	}
	return s
}

// Len returns the number of time steps in the series.
func (s *Series) Len() int { return len(s.Times) }

// Component returns a copy of the perceived intensity time series of the
// named component. ok is false if there is no such component.
func (s *Series) Component(name string) (v []float64, ok bool) {
	j, ok := s.componentIndex[name]
	if !ok {
		return nil, false
	}
	return mat.Col(nil, j, s.Intensity), true
}

// Receptor returns a copy of the activation time series of the named
// receptor. ok is false if there is no such receptor.
func (s *Series) Receptor(name string) (v []float64, ok bool) {
	j, ok := s.receptorIndex[name]
	if !ok {
		return nil, false
	}
	return mat.Col(nil, j, s.Activation), true
}

// ComponentSeries returns the perceived intensity of every component,
// keyed by component name.
func (s *Series) ComponentSeries() map[string][]float64 {
	o := make(map[string][]float64, len(s.Components))
	for j, n := range s.Components {
		o[n] = mat.Col(nil, j, s.Intensity)
	}
	return o
}

// ReceptorSeries returns the activation of every receptor, keyed by
// receptor name.
func (s *Series) ReceptorSeries() map[string][]float64 {
	o := make(map[string][]float64, len(s.Receptors))
	for j, n := range s.Receptors {
		o[n] = mat.Col(nil, j, s.Activation)
	}
	return o
}

// value returns the value of the named component or receptor at time
// index i.
func (s *Series) value(name string, i int) (float64, error) {
	if j, ok := s.componentIndex[name]; ok {
		return s.Intensity.At(i, j), nil
	}
	if j, ok := s.receptorIndex[name]; ok {
		return s.Activation.At(i, j), nil
	}
	return 0, fmt.Errorf("aroma: no component or receptor named %q", name)
}
