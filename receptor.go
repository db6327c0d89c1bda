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

// Receptors calculates olfactory receptor activation as a competitively
// saturating aggregate of the headspace concentrations of all components.
type Receptors struct {
	Evaporation

	// Gammas holds per-component inhibition coefficients. Components
	// that are not present use GammaDefault. All coefficients must be
	// finite and ≥0.
	Gammas       GammaMap
	GammaDefault float64
}

// checkGammas returns an error if any inhibition coefficient is negative
// or not finite, which would allow the saturation term to drop below 1.
func (m Receptors) checkGammas() error {
	if !(m.GammaDefault >= 0) || math.IsInf(m.GammaDefault, 0) {
		return fmt.Errorf("aroma: default gamma=%g but should be finite and ≥0: %w", m.GammaDefault, ErrInvalidConfiguration)
	}
	for name, g := range m.Gammas {
		if !(g >= 0) || math.IsInf(g, 0) {
			return fmt.Errorf("aroma: gamma for component %q is %g but should be finite and ≥0: %w",
				name, g, ErrInvalidConfiguration)
		}
	}
	return nil
}

// Activations maps receptor names to activation levels.
type Activations map[string]float64

// Activation returns the activation of each of the requested receptors by
// the components at time t:
//
//	A_r = Σ_i G_i(t) ka_i(r) / (1 + Σ_i γ_i G_i(t))
//
// Each receptor is calculated independently of the others, so the value
// for one receptor does not depend on which other receptors are requested.
func (m Receptors) Activation(receptors []string, cs Components, t float64) (Activations, error) {
	g, err := m.headspaceAll(cs, t)
	if err != nil {
		return nil, err
	}
	denom := m.denominator(cs, g)
	o := make(Activations, len(receptors))
	for _, r := range receptors {
		o[r] = activation(r, cs, g, denom)
	}
	return o, nil
}

// Denominator returns the saturation term 1 + Σ_i γ_i G_i(t) shared by all
// receptors at time t.
func (m Receptors) Denominator(cs Components, t float64) (float64, error) {
	g, err := m.headspaceAll(cs, t)
	if err != nil {
		return 0, err
	}
	return m.denominator(cs, g), nil
}

func (m Receptors) headspaceAll(cs Components, t float64) ([]float64, error) {
	if err := m.checkGammas(); err != nil {
		return nil, err
	}
	g := make([]float64, len(cs))
	for i, c := range cs {
		var err error
		if g[i], err = m.Headspace(c, t); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// denominator calculates the saturation term from precalculated
// headspace concentrations g, which are in the same order as cs.
func (m Receptors) denominator(cs Components, g []float64) float64 {
	d := 1.
	for i, c := range cs {
		d += m.Gammas.Get(c.Name, m.GammaDefault) * g[i]
	}
	return d
}

// activation calculates the activation of receptor r from precalculated
// headspace concentrations and saturation term.
func activation(r string, cs Components, g []float64, denom float64) float64 {
	var num float64
	for i, c := range cs {
		num += g[i] * c.Affinity.Get(r)
	}
	return num / denom
}
