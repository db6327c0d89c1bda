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
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spatialmodel/aroma"
	"gopkg.in/yaml.v3"
)

// affinityPrefix starts the names of the columns holding receptor affinities
// in tabular component files, as in "kai_R_citrus".
const affinityPrefix = "kai_"

// requiredColumns are the columns that every tabular component file must
// have.
var requiredColumns = []string{"name", "ci", "Pvap_Pa", "M_g_mol", "K", "Ki_gel2air", "EFi"}

// LoadComponents reads fragrance components from a file. The format is
// chosen by the file extension:
//
//	.csv         a header row followed by one row per component
//	.xlsx        the same layout in the given sheet, or the first sheet if
//	             sheet is empty
//	.toml        [[component]] tables
//	.yaml, .yml  a "components" list
//
// Tabular files have the columns name, ci, Pvap_Pa, M_g_mol, K, Ki_gel2air
// and EFi, plus one kai_<receptor> column for each receptor. An empty
// affinity cell means that the component has no affinity for that
// receptor. The returned components are validated.
func LoadComponents(file, sheet string) (aroma.Components, error) {
	var cs aroma.Components
	var err error
	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".csv":
		var f *os.File
		f, err = os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("aromautil: opening components file: %v", err)
		}
		cs, err = readCSV(f, file)
		f.Close()
	case ".xlsx":
		cs, err = readExcel(file, sheet)
	case ".toml":
		cs, err = readTOML(file)
	case ".yaml", ".yml":
		cs, err = readYAML(file)
	default:
		return nil, fmt.Errorf("aromautil: components file %s has unsupported extension '%s'; "+
			"it should be .csv, .xlsx, .toml, .yaml or .yml", file, ext)
	}
	if err != nil {
		return nil, err
	}
	if err := cs.Validate(); err != nil {
		return nil, fmt.Errorf("aromautil: components file %s: %w", file, err)
	}
	return cs, nil
}

// readCSV reads components in the tabular layout from r. name is used
// in error messages.
func readCSV(r io.Reader, name string) (aroma.Components, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("aromautil: reading %s: %v", name, err)
	}
	return parseTable(records, name)
}

// parseTable converts rows of cells, the first of which is the header,
// into components.
func parseTable(rows [][]string, name string) (aroma.Components, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("aromautil: %s has no header row", name)
	}
	cols := make(map[string]int)
	for i, h := range rows[0] {
		cols[strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))] = i
	}
	for _, c := range requiredColumns {
		if _, ok := cols[c]; !ok {
			return nil, fmt.Errorf("aromautil: %s is missing column '%s'", name, c)
		}
	}

	var cs aroma.Components
	for j, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := j + 2
		cell := func(col string) string {
			i := cols[col]
			if i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}
		num := func(col string) (float64, error) {
			v, err := strconv.ParseFloat(cell(col), 64)
			if err != nil {
				return 0, fmt.Errorf("aromautil: %s row %d column '%s': %v", name, line, col, err)
			}
			return v, nil
		}
		c := &aroma.Component{Name: cell("name"), Affinity: make(aroma.Affinity)}
		fields := []struct {
			col string
			v   *float64
		}{
			{"ci", &c.C}, {"Pvap_Pa", &c.Pvap}, {"M_g_mol", &c.M}, {"K", &c.K},
			{"Ki_gel2air", &c.KGelToAir}, {"EFi", &c.EF},
		}
		for _, f := range fields {
			v, err := num(f.col)
			if err != nil {
				return nil, err
			}
			*f.v = v
		}
		for col := range cols {
			if !strings.HasPrefix(col, affinityPrefix) || cell(col) == "" {
				continue
			}
			v, err := num(col)
			if err != nil {
				return nil, err
			}
			c.Affinity[strings.TrimPrefix(col, affinityPrefix)] = v
		}
		cs = append(cs, c)
	}
	return cs, nil
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

// readTOML reads components from [[component]] tables.
func readTOML(file string) (aroma.Components, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("aromautil: opening components file: %v", err)
	}
	defer f.Close()
	var doc struct {
		Component aroma.Components `toml:"component"`
	}
	if _, err := toml.DecodeReader(f, &doc); err != nil {
		return nil, fmt.Errorf("aromautil: decoding %s: %v", file, err)
	}
	return doc.Component, nil
}

// readYAML reads components from a "components" list.
func readYAML(file string) (aroma.Components, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("aromautil: opening components file: %v", err)
	}
	defer f.Close()
	var doc struct {
		Components aroma.Components `yaml:"components"`
	}
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&doc); err != nil {
		return nil, fmt.Errorf("aromautil: decoding %s: %v", file, err)
	}
	return doc.Components, nil
}
