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
	"strings"
)

// Empirical model constants.
const (
	DefaultAlpha         = 1e-3 // scale of the evaporation rate
	DefaultBeta          = 1.0  // headspace concentration normalization
	GammaDefault         = 1.0  // competitive inhibition, when not specified per component
	DefaultTMax          = 8 * 3600.
	DefaultNPoints       = 800
	DefaultEarlyWindow   = 1800. // seconds; the first 30 minutes are sampled densely
	DefaultEarlyFraction = 0.6
)

// DefaultReceptors are the receptor channels modeled when no others are
// specified.
var DefaultReceptors = []string{"R_citrus", "R_fruit", "R_spice"}

// BoundaryPolicy specifies how the time value shared by the early and late
// segments of the time grid is merged.
type BoundaryPolicy int

const (
	// BoundaryDedupe keeps a single sample at the boundary between the
	// early and late segments, so the time axis is strictly increasing.
	BoundaryDedupe BoundaryPolicy = iota

	// BoundaryKeep keeps the boundary sample from both segments, so the
	// boundary time appears twice in a row.
	BoundaryKeep
)

func (b BoundaryPolicy) String() string {
	switch b {
	case BoundaryDedupe:
		return "dedupe"
	case BoundaryKeep:
		return "keep"
	default:
		return fmt.Sprintf("BoundaryPolicy(%d)", int(b))
	}
}

// ParseBoundaryPolicy converts "dedupe" or "keep" into a BoundaryPolicy.
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dedupe", "":
		return BoundaryDedupe, nil
	case "keep":
		return BoundaryKeep, nil
	default:
		return BoundaryDedupe, fmt.Errorf("aroma: boundary policy %q should be 'dedupe' or 'keep': %w",
			s, ErrInvalidConfiguration)
	}
}

// Config holds the model configuration. A Config is passed explicitly to
// every model function; there is no package-level mutable state.
type Config struct {
	Alpha float64 // evaporation rate scale, >0
	Beta  float64 // concentration normalization, >0

	// GammaDefault is the inhibition coefficient used for components that
	// are not present in Gammas.
	GammaDefault float64
	Gammas       GammaMap

	TMax    float64 // simulation length [s]
	NPoints int     // number of time samples before boundary merging

	// EarlyWindow is the end of the densely sampled early segment [s].
	EarlyWindow float64

	// EarlyFraction is the share of NPoints allocated to the early segment.
	EarlyFraction float64

	Receptors []string
	Boundary  BoundaryPolicy

	// Workers is the number of concurrent workers used by Generate.
	// If Workers < 1, runtime.GOMAXPROCS(0) is used.
	Workers int
}

// DefaultConfig returns a new Config holding the default model settings.
func DefaultConfig() *Config {
	return &Config{
		Alpha:         DefaultAlpha,
		Beta:          DefaultBeta,
		GammaDefault:  GammaDefault,
		Gammas:        GammaMap{},
		TMax:          DefaultTMax,
		NPoints:       DefaultNPoints,
		EarlyWindow:   DefaultEarlyWindow,
		EarlyFraction: DefaultEarlyFraction,
		Receptors:     append([]string(nil), DefaultReceptors...),
		Boundary:      BoundaryDedupe,
	}
}

// Validate checks the configuration. It does not modify it.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("aroma: configuration is nil: %w", ErrInvalidConfiguration)
	}
	positive := []struct {
		name string
		v    float64
	}{
		{"alpha", cfg.Alpha},
		{"beta", cfg.Beta},
		{"t_max", cfg.TMax},
		{"early window", cfg.EarlyWindow},
	}
	for _, p := range positive {
		if !(p.v > 0) || math.IsInf(p.v, 0) {
			return fmt.Errorf("aroma: %s=%g but should be >0 and finite: %w", p.name, p.v, ErrInvalidConfiguration)
		}
	}
	if cfg.NPoints <= 0 {
		return fmt.Errorf("aroma: n_points=%d but should be >0: %w", cfg.NPoints, ErrInvalidConfiguration)
	}
	if !(cfg.EarlyWindow < cfg.TMax) {
		return fmt.Errorf("aroma: early window (%g s) should end before t_max (%g s): %w",
			cfg.EarlyWindow, cfg.TMax, ErrInvalidConfiguration)
	}
	if !(cfg.EarlyFraction > 0 && cfg.EarlyFraction < 1) {
		return fmt.Errorf("aroma: early fraction=%g but should be between 0 and 1: %w",
			cfg.EarlyFraction, ErrInvalidConfiguration)
	}
	nEarly, nLate := cfg.segmentPoints()
	if nEarly < 2 || nLate < 2 {
		return fmt.Errorf("aroma: n_points=%d gives %d early and %d late samples, but each segment needs at least 2: %w",
			cfg.NPoints, nEarly, nLate, ErrInvalidConfiguration)
	}
	if err := cfg.receptors().checkGammas(); err != nil {
		return err
	}
	if len(cfg.Receptors) == 0 {
		return fmt.Errorf("aroma: no receptors were specified: %w", ErrInvalidConfiguration)
	}
	seen := make(map[string]struct{}, len(cfg.Receptors))
	for _, r := range cfg.Receptors {
		if r == "" {
			return fmt.Errorf("aroma: empty receptor name: %w", ErrInvalidConfiguration)
		}
		if _, ok := seen[r]; ok {
			return fmt.Errorf("aroma: duplicate receptor %q: %w", r, ErrInvalidConfiguration)
		}
		seen[r] = struct{}{}
	}
	if cfg.Boundary != BoundaryDedupe && cfg.Boundary != BoundaryKeep {
		return fmt.Errorf("aroma: invalid boundary policy %v: %w", cfg.Boundary, ErrInvalidConfiguration)
	}
	return nil
}

// segmentPoints returns the number of samples in the early and late
// segments of the time grid.
func (cfg *Config) segmentPoints() (early, late int) {
	early = int(float64(cfg.NPoints) * cfg.EarlyFraction)
	return early, cfg.NPoints - early
}

// evaporation returns the evaporation model for this configuration.
func (cfg *Config) evaporation() Evaporation {
	return Evaporation{Alpha: cfg.Alpha, Beta: cfg.Beta}
}

// receptors returns the receptor activation model for this configuration.
func (cfg *Config) receptors() Receptors {
	return Receptors{
		Evaporation:  cfg.evaporation(),
		Gammas:       cfg.Gammas,
		GammaDefault: cfg.GammaDefault,
	}
}
