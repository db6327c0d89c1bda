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
	"context"
	"fmt"
	"io/ioutil"
	"runtime"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// GenerateOption specifies optional behavior for Generate.
type GenerateOption func(*generator)

// WithLogger directs progress messages to log.
func WithLogger(log logrus.FieldLogger) GenerateOption {
	return func(g *generator) {
		g.log = log
	}
}

// WithWorkers sets the number of concurrent workers, overriding
// Config.Workers. If n < 1, runtime.GOMAXPROCS(0) is used. There are
// never more workers than time steps.
func WithWorkers(n int) GenerateOption {
	return func(g *generator) {
		g.workers = n
	}
}

type generator struct {
	cfg     *Config
	cs      Components
	workers int
	log     logrus.FieldLogger

	evap  Evaporation
	recep Receptors
	k     []float64 // decay rate of each component
	rf    []float64 // total affinity of each component
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

// Generate calculates the perceived intensity of every component and the
// activation of every configured receptor at every time in the time grid
// specified by cfg (see TimeGrid).
//
// The configuration and all of the components are validated before any
// calculations are performed, and any error aborts the whole run: no
// partial results are returned. Time steps are independent of each other
// and are divided among concurrent workers, which check ctx for
// cancellation between time steps.
func Generate(ctx context.Context, cfg *Config, cs Components, opts ...GenerateOption) (*Series, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cs.Validate(); err != nil {
		return nil, err
	}
	for _, c := range cs {
		if c.Name == TimeVariable {
			return nil, fmt.Errorf("aroma: component name %q is reserved for time: %w", c.Name, ErrInvalidConfiguration)
		}
	}
	for _, r := range cfg.Receptors {
		if r == TimeVariable {
			return nil, fmt.Errorf("aroma: receptor name %q is reserved for time: %w", r, ErrInvalidConfiguration)
		}
		for _, c := range cs {
			if c.Name == r {
				return nil, fmt.Errorf("aroma: receptor %q has the same name as a component: %w", r, ErrInvalidConfiguration)
			}
		}
	}

	g := &generator{
		cfg:     cfg,
		cs:      cs,
		workers: cfg.Workers,
		evap:    cfg.evaporation(),
		recep:   cfg.receptors(),
		k:       make([]float64, len(cs)),
		rf:      make([]float64, len(cs)),
	}
	for _, o := range opts {
		o(g)
	}
	if g.workers < 1 {
		g.workers = runtime.GOMAXPROCS(0)
	}
	if g.log == nil {
		g.log = discardLogger()
	}
	for i, c := range cs {
		var err error
		if g.k[i], err = g.evap.DecayRate(c); err != nil {
			return nil, err
		}
		g.rf[i] = c.Affinity.Total()
	}

	s := newSeries(timeGrid(cfg), cs.Names(), append([]string(nil), cfg.Receptors...))
	if g.workers > s.Len() {
		g.workers = s.Len()
	}

	start := time.Now()
	g.log.WithFields(logrus.Fields{
		"components": len(cs),
		"receptors":  len(cfg.Receptors),
		"points":     s.Len(),
		"workers":    g.workers,
		"boundary":   cfg.Boundary.String(),
	}).Info("aroma: generating time series")

	if err := g.run(ctx, s); err != nil {
		return nil, err
	}

	g.log.WithField("walltime", time.Since(start).String()).Info("aroma: finished generating time series")
	return s, nil
}

// run concurrently calculates every time step of s. Time indices are
// divided among workers by stride, and every worker writes only to the
// rows of its own time indices.
func (g *generator) run(ctx context.Context, s *Series) error {
	var wg sync.WaitGroup
	errs := make([]error, g.workers)
	wg.Add(g.workers)
	for p := 0; p < g.workers; p++ {
		go func(p int) {
			defer wg.Done()
			headspace := make([]float64, len(g.cs))
			for i := p; i < s.Len(); i += g.workers {
				if err := ctx.Err(); err != nil {
					errs[p] = err
					return
				}
				g.step(s, i, headspace)
			}
		}(p)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// step calculates time step i. headspace is scratch space with one
// element per component.
func (g *generator) step(s *Series, i int, headspace []float64) {
	t := s.Times[i]
	for j, c := range g.cs {
		headspace[j] = g.evap.headspace(c, g.k[j], t)
		s.Intensity.Set(i, j, headspace[j]*c.EF*g.rf[j])
	}
	denom := g.recep.denominator(g.cs, headspace)
	for j, r := range s.Receptors {
		s.Activation.Set(i, j, activation(r, g.cs, headspace, denom))
	}
}
