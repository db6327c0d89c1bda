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

// Package aroma is a reduced-form model of how the perceived scent of a
// fragrance evolves in time.
//
// Each fragrance component evaporates into the headspace above the
// fragrance following first-order decay kinetics. The headspace
// concentrations are combined into a per-component perceived intensity
// and into a competitively saturating activation of a small set of
// olfactory receptor channels. Generate evaluates both over a
// non-uniform time grid that samples the first minutes after application
// more densely than the dry-down that follows.
package aroma

import "errors"

// Version gives the version number.
const Version = "1.0.0"

// These errors classify every failure returned by the model. Returned
// errors wrap one of them, so they can be checked with errors.Is.
var (
	// ErrInvalidConfiguration indicates a non-positive model constant,
	// an unusable time grid, or an empty receptor list.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidComponent indicates a component that violates the
	// physical invariants of the model (M > 0, K ≠ 0, c ≥ 0).
	ErrInvalidComponent = errors.New("invalid component")

	// ErrInvalidInput indicates an invalid request, such as a negative
	// time or an out-of-range time index.
	ErrInvalidInput = errors.New("invalid input")
)
