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
	"fmt"
	"runtime"
	"strings"
	"sync"

	"github.com/ctessum/requestcache"
	"github.com/spatialmodel/aroma"
	"github.com/tealeg/xlsx"
)

// excelCache holds previously opened Microsoft Excel files
// to avoid reading the same file multiple times.
var excelCache *requestcache.Cache

var loadExcelCacheOnce sync.Once

// loadExcelFile loads a Microsoft Excel file from disk, utilizing
// a cache to avoid loading the same file more than once.
func loadExcelFile(fileName string) (*xlsx.File, error) {
	loadExcelCacheOnce.Do(func() {
		excelCache = requestcache.NewCache(func(ctx context.Context, req interface{}) (interface{}, error) {
			filename := req.(string)
			f, err := xlsx.OpenFile(filename)
			if err != nil {
				return nil, fmt.Errorf("aromautil: opening xlsx file: %v", err)
			}
			return f, nil
		}, runtime.GOMAXPROCS(-1), requestcache.Memory(100))
	})
	r := excelCache.NewRequest(context.Background(), fileName, fileName)
	fI, err := r.Result()
	if err != nil {
		return nil, err
	}
	return fI.(*xlsx.File), nil
}

// readExcel reads components in the tabular layout from the named sheet
// of an Excel file, or from the first sheet if sheet is empty.
func readExcel(fileName, sheet string) (aroma.Components, error) {
	f, err := loadExcelFile(fileName)
	if err != nil {
		return nil, err
	}
	var s *xlsx.Sheet
	if sheet == "" {
		if len(f.Sheets) == 0 {
			return nil, fmt.Errorf("aromautil: %s has no sheets", fileName)
		}
		s = f.Sheets[0]
	} else {
		var ok bool
		if s, ok = f.Sheet[sheet]; !ok {
			return nil, fmt.Errorf("aromautil: %s has no sheet %s", fileName, sheet)
		}
	}
	rows := make([][]string, s.MaxRow)
	for j := range rows {
		rows[j] = make([]string, s.MaxCol)
		for i := range rows[j] {
			rows[j][i] = s.Cell(j, i).Value
		}
	}
	return parseTable(rows, fileName+":"+s.Name)
}

// reportTable is a sheet of named rows.
type reportTable struct {
	sheet, header string
	rows          []aroma.ReportRow
}

// WriteReport saves r to a Microsoft Excel file. The "components" and
// "receptors" sheets hold one row per series with one column per report
// time. If any derived series are given, they are written to a "derived"
// sheet at the same times. The "run" sheet holds the run ID and the model
// configuration.
func WriteReport(fileName string, r *aroma.Report, derived []aroma.DerivedSeries, cfg *aroma.Config, runID string) error {
	f := xlsx.NewFile()

	tables := []reportTable{
		{"components", "component", r.Components},
		{"receptors", "receptor", r.Receptors},
	}
	if len(derived) > 0 {
		rows := make([]aroma.ReportRow, len(derived))
		for k, d := range derived {
			rows[k] = aroma.ReportRow{Name: d.Name, Values: make([]float64, len(r.Indices))}
			for j, i := range r.Indices {
				rows[k].Values[j] = d.Values[i]
			}
		}
		tables = append(tables, reportTable{"derived", "variable", rows})
	}

	for _, t := range tables {
		s, err := f.AddSheet(t.sheet)
		if err != nil {
			return fmt.Errorf("aromautil: writing report: %v", err)
		}
		header := s.AddRow()
		header.AddCell().SetString(t.header)
		for _, l := range r.Labels {
			header.AddCell().SetString(l)
		}
		for _, row := range t.rows {
			xr := s.AddRow()
			xr.AddCell().SetString(row.Name)
			for _, v := range row.Values {
				xr.AddCell().SetFloat(v)
			}
		}
	}

	s, err := f.AddSheet("run")
	if err != nil {
		return fmt.Errorf("aromautil: writing report: %v", err)
	}
	indices := make([]string, len(r.Indices))
	for k, i := range r.Indices {
		indices[k] = fmt.Sprint(i)
	}
	for _, kv := range [][2]string{
		{"run_id", runID},
		{"version", aroma.Version},
		{"alpha", fmt.Sprint(cfg.Alpha)},
		{"beta", fmt.Sprint(cfg.Beta)},
		{"gamma_default", fmt.Sprint(cfg.GammaDefault)},
		{"t_max", fmt.Sprint(cfg.TMax)},
		{"n_points", fmt.Sprint(cfg.NPoints)},
		{"early_window", fmt.Sprint(cfg.EarlyWindow)},
		{"early_fraction", fmt.Sprint(cfg.EarlyFraction)},
		{"boundary", cfg.Boundary.String()},
		{"receptors", strings.Join(cfg.Receptors, ",")},
		{"time_indices", strings.Join(indices, ",")},
	} {
		row := s.AddRow()
		row.AddCell().SetString(kv[0])
		row.AddCell().SetString(kv[1])
	}

	if err := f.Save(fileName); err != nil {
		return fmt.Errorf("aromautil: saving report: %v", err)
	}
	return nil
}
