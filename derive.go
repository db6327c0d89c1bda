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
	"sort"

	"github.com/Knetic/govaluate"
)

// TimeVariable is the name by which derived output expressions refer to
// the model time [s].
const TimeVariable = "t"

// DerivedSeries is a time series calculated from an expression of other
// series.
type DerivedSeries struct {
	Name       string
	Expression string
	Values     []float64
}

// outputFunctions are the functions available in derived output
// expressions.
var outputFunctions = map[string]govaluate.ExpressionFunction{
	"exp": func(arg ...interface{}) (interface{}, error) {
		v, err := floatArgs("exp", arg, 1)
		if err != nil {
			return nil, err
		}
		return math.Exp(v[0]), nil
	},
	"log": func(arg ...interface{}) (interface{}, error) {
		v, err := floatArgs("log", arg, 1)
		if err != nil {
			return nil, err
		}
		return math.Log(v[0]), nil
	},
	"max": func(arg ...interface{}) (interface{}, error) {
		v, err := floatArgs("max", arg, -1)
		if err != nil {
			return nil, err
		}
		o := math.Inf(-1)
		for _, a := range v {
			o = math.Max(o, a)
		}
		return o, nil
	},
	"min": func(arg ...interface{}) (interface{}, error) {
		v, err := floatArgs("min", arg, -1)
		if err != nil {
			return nil, err
		}
		o := math.Inf(1)
		for _, a := range v {
			o = math.Min(o, a)
		}
		return o, nil
	},
}

// floatArgs converts the arguments of function fn to numbers. If n > 0,
// exactly n arguments are required; otherwise at least one.
func floatArgs(fn string, arg []interface{}, n int) ([]float64, error) {
	if n > 0 && len(arg) != n {
		return nil, fmt.Errorf("aroma: got %d arguments for function '%s', but needs %d: %w",
			len(arg), fn, n, ErrInvalidConfiguration)
	}
	if len(arg) == 0 {
		return nil, fmt.Errorf("aroma: function '%s' needs at least 1 argument: %w", fn, ErrInvalidConfiguration)
	}
	o := make([]float64, len(arg))
	for i, a := range arg {
		v, ok := a.(float64)
		if !ok {
			return nil, fmt.Errorf("aroma: argument %d of function '%s' is %T, not a number: %w",
				i+1, fn, a, ErrInvalidConfiguration)
		}
		o[i] = v
	}
	return o, nil
}

// Derive calculates additional output series. outputs maps the name of
// each new series to an expression that can refer to any component or
// receptor by name, and to the time variable t. For example:
//
//	"TotalActivation": "R_citrus + R_fruit + R_spice"
//
// Names that are not valid identifiers can be enclosed in square brackets,
// as in "[linalyl acetate] * 2". Generate does not allow components or
// receptors named t. Available functions are exp, log, max
// and min. The results are sorted by name.
func (s *Series) Derive(outputs map[string]string) ([]DerivedSeries, error) {
	names := make([]string, 0, len(outputs))
	for n := range outputs {
		names = append(names, n)
	}
	sort.Strings(names)

	o := make([]DerivedSeries, len(names))
	for k, name := range names {
		expr, err := govaluate.NewEvaluableExpressionWithFunctions(outputs[name], outputFunctions)
		if err != nil {
			return nil, fmt.Errorf("aroma: parsing output variable %s: %v: %w", name, err, ErrInvalidConfiguration)
		}
		vars := expr.Vars()
		for _, v := range vars {
			if v == TimeVariable {
				continue
			}
			if _, err := s.value(v, 0); err != nil {
				return nil, fmt.Errorf("aroma: output variable %s: undefined variable name '%s': %w",
					name, v, ErrInvalidConfiguration)
			}
		}
		d := DerivedSeries{Name: name, Expression: outputs[name], Values: make([]float64, s.Len())}
		params := make(map[string]interface{}, len(vars))
		for i := range s.Times {
			for _, v := range vars {
				if v == TimeVariable {
					params[v] = s.Times[i]
					continue
				}
				params[v], _ = s.value(v, i)
			}
			result, err := expr.Evaluate(params)
			if err != nil {
				return nil, fmt.Errorf("aroma: evaluating output variable %s at t=%g s: %w", name, s.Times[i], err)
			}
			f, ok := result.(float64)
			if !ok {
				return nil, fmt.Errorf("aroma: output variable %s evaluates to %T, not a number: %w",
					name, result, ErrInvalidConfiguration)
			}
			d.Values[i] = f
		}
		o[k] = d
	}
	return o, nil
}
