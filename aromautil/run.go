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


package aromautil

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/aroma"
	"gonum.org/v1/gonum/floats"
)

// RunOutputs specifies the outputs of a simulation. Empty file names
// mean that the corresponding output is not wanted.
type RunOutputs struct {
	PlotFile   string
	ReportFile string

	// ReportIndices are the time indices included in the report.
	ReportIndices []int

	// Variables are derived output expressions, see aroma.Series.Derive.
	Variables map[string]string
}

// newLogger returns a logger writing to w at the given level.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	l := logrus.New()
	l.Out = w
	if level == "" {
		return l, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("aromautil: LogLevel: %v", err)
	}
	l.Level = lvl
	return l, nil
}

// loadModel reads the components from componentsFile and matches the
// per-component inhibition coefficients in cfg to them.
func loadModel(componentsFile, componentsSheet string, cfg *aroma.Config) (aroma.Components, *aroma.Config, error) {
	cs, err := LoadComponents(componentsFile, componentsSheet)
	if err != nil {
		return nil, nil, err
	}
	gammas, err := matchGammas(cfg.Gammas, cs)
	if err != nil {
		return nil, nil, err
	}
	c := *cfg
	c.Gammas = gammas
	return cs, &c, nil
}

// Run runs a simulation of the components in componentsFile and saves the
// requested outputs. Log messages are written to stdout and to logFile,
// if it is not empty.
func Run(ctx context.Context, stdout io.Writer, logFile, logLevel, componentsFile, componentsSheet string,
	cfg *aroma.Config, out RunOutputs) error {
	startTime := time.Now()

	w := stdout
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return fmt.Errorf("aromautil: problem creating log file: %v", err)
		}
		defer f.Close()
		w = io.MultiWriter(stdout, f)
	}
	l, err := newLogger(w, logLevel)
	if err != nil {
		return err
	}
	runID := uuid.New().String()
	log := l.WithField("run", runID)

	log.WithField("file", componentsFile).Info("aromautil: loading components")
	cs, cfg, err := loadModel(componentsFile, componentsSheet, cfg)
	if err != nil {
		return err
	}

	s, err := aroma.Generate(ctx, cfg, cs, aroma.WithLogger(log))
	if err != nil {
		return err
	}

	// Everything that can fail on user input is calculated before any
	// file is written.
	derived, err := s.Derive(out.Variables)
	if err != nil {
		return err
	}
	var r *aroma.Report
	if out.ReportFile != "" {
		if r, err = s.Report(out.ReportIndices); err != nil {
			return err
		}
	}

	for _, d := range derived {
		log.WithFields(logrus.Fields{
			"expression": d.Expression,
			"initial":    d.Values[0],
			"final":      d.Values[len(d.Values)-1],
			"min":        floats.Min(d.Values),
			"max":        floats.Max(d.Values),
		}).Info("aromautil: output variable " + d.Name)
	}

	if out.PlotFile != "" {
		cf, rf, err := PlotSeries(s, out.PlotFile)
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{"components": cf, "receptors": rf}).Info("aromautil: saved plots")
	}

	if out.ReportFile != "" {
		if err := WriteReport(out.ReportFile, r, derived, cfg, runID); err != nil {
			return err
		}
		log.WithField("file", out.ReportFile).Info("aromautil: saved report")
	}

	log.WithField("walltime", time.Since(startTime).String()).Info("aromautil: simulation complete")
	return nil
}

// Report runs a simulation of the components in componentsFile and writes
// the values at the given time indices to w as tab-separated text, with
// a header row of time labels.
func Report(ctx context.Context, w io.Writer, componentsFile, componentsSheet string, cfg *aroma.Config, indices []int) error {
	cs, cfg, err := loadModel(componentsFile, componentsSheet, cfg)
	if err != nil {
		return err
	}
	s, err := aroma.Generate(ctx, cfg, cs)
	if err != nil {
		return err
	}
	r, err := s.Report(indices)
	if err != nil {
		return err
	}
	return writeReportTable(w, r)
}

// writeReportTable writes r as tab-separated text.
func writeReportTable(w io.Writer, r *aroma.Report) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	cw.Write(append([]string{"name"}, r.Labels...))
	for _, rows := range [][]aroma.ReportRow{r.Components, r.Receptors} {
		for _, row := range rows {
			rec := make([]string, len(row.Values)+1)
			rec[0] = row.Name
			for i, v := range row.Values {
				rec[i+1] = strconv.FormatFloat(v, 'g', 8, 64)
			}
			cw.Write(rec)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("aromautil: writing report: %v", err)
	}
	return nil
}

// Grid writes the model time axis to w, one sample per line, as the time
// index, the time in seconds and the time label, separated by tabs.
func Grid(w io.Writer, cfg *aroma.Config) error {
	times, err := aroma.TimeGrid(cfg)
	if err != nil {
		return err
	}
	for i, t := range times {
		if _, err := fmt.Fprintf(w, "%d\t%g\t%s\n", i, t, aroma.TimeLabel(t)); err != nil {
			return fmt.Errorf("aromautil: writing time grid: %v", err)
		}
	}
	return nil
}
