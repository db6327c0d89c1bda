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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/aroma"
	"github.com/spf13/cast"
)

// ModelConfig unmarshals a viper configuration into a model configuration.
// The returned configuration is validated.
func ModelConfig(cfg *viper.Viper) (*aroma.Config, error) {
	boundary, err := aroma.ParseBoundaryPolicy(cfg.GetString("Boundary"))
	if err != nil {
		return nil, err
	}
	gammas, err := getStringMapFloat("Gammas", cfg)
	if err != nil {
		return nil, fmt.Errorf("aromautil: parsing config variable Gammas: %v", err)
	}
	c := &aroma.Config{
		Alpha:         cfg.GetFloat64("Alpha"),
		Beta:          cfg.GetFloat64("Beta"),
		GammaDefault:  cfg.GetFloat64("GammaDefault"),
		Gammas:        aroma.GammaMap(gammas),
		TMax:          cfg.GetFloat64("TMax"),
		NPoints:       cfg.GetInt("NPoints"),
		EarlyWindow:   cfg.GetFloat64("EarlyWindow"),
		EarlyFraction: cfg.GetFloat64("EarlyFraction"),
		Receptors:     expandStringSlice(cfg.GetStringSlice("Receptors")),
		Boundary:      boundary,
		Workers:       cfg.GetInt("Workers"),
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// matchGammas renames the keys of g to the names of the components they
// refer to. Configuration file keys may have lost their capitalization,
// so names are matched without regard to case. A key that does not
// match any component is an error.
func matchGammas(g aroma.GammaMap, cs aroma.Components) (aroma.GammaMap, error) {
	o := make(aroma.GammaMap, len(g))
	for k, v := range g {
		var found bool
		for _, c := range cs {
			if c.Name == k {
				o[k] = v
				found = true
				break
			}
		}
		if found {
			continue
		}
		for _, c := range cs {
			if strings.EqualFold(c.Name, k) {
				o[c.Name] = v
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("aromautil: Gammas has a value for %q, which is not a component: %w",
				k, aroma.ErrInvalidConfiguration)
		}
	}
	return o, nil
}

// checkOutputVars removes end lines and expands environment
// variables in the output variables.
func checkOutputVars(vars map[string]string) map[string]string {
	o := make(map[string]string, len(vars))
	for k, v := range vars {
		v = strings.Replace(v, "\r\n", " ", -1)
		v = strings.Replace(v, "\n", " ", -1)
		o[os.ExpandEnv(k)] = os.ExpandEnv(v)
	}
	return o
}

// defaultOutputVariables returns the output variables used when none are
// configured: the total activation of the given receptors.
func defaultOutputVariables(receptors []string) map[string]string {
	terms := make([]string, len(receptors))
	for i, r := range receptors {
		terms[i] = "[" + r + "]"
	}
	return map[string]string{"TotalActivation": strings.Join(terms, " + ")}
}

// expandStringSlice expands the environment variables in a slice of strings.
func expandStringSlice(s []string) []string {
	for i := 0; i < len(s); i++ {
		s[i] = os.ExpandEnv(strings.TrimSpace(s[i]))
	}
	return s
}

// checkInputFile makes sure that an input file is specified and
// exists, and expands any environment variables.
func checkInputFile(varName, f string) (string, error) {
	if f == "" {
		return "", fmt.Errorf("aromautil: you need to specify the %s configuration variable", varName)
	}
	f = os.ExpandEnv(f)
	if _, err := os.Stat(f); err != nil {
		return f, fmt.Errorf("aromautil: checking %s: %v", varName, err)
	}
	return f, nil
}

// checkOutputFile expands any environment variables in an optional
// output file path and makes sure that its directory exists.
// An empty path means that the output is not wanted.
func checkOutputFile(varName, f string) (string, error) {
	if f == "" {
		return "", nil
	}
	f = os.ExpandEnv(f)
	outdir := filepath.Dir(f)
	if _, err := os.Stat(outdir); err != nil {
		return f, fmt.Errorf("aromautil: the %s directory doesn't exist: %v", varName, err)
	}
	return f, nil
}

// checkLogFile fills in a default value for the log file path if one isn't
// specified. The default is next to the first of the output files that is
// specified. If there are no output files, there is no log file.
func checkLogFile(logFile string, outputFiles ...string) string {
	if logFile != "" {
		return os.ExpandEnv(logFile)
	}
	for _, f := range outputFiles {
		if f != "" {
			return strings.TrimSuffix(f, filepath.Ext(f)) + ".log"
		}
	}
	return ""
}

// toIntSliceE converts a configuration value into a slice of integers.
// Values from configuration files are slices, and values from command-line
// flags are strings like "[1,2,3]".
func toIntSliceE(s interface{}) ([]int, error) {
	switch v := s.(type) {
	case []int:
		return v, nil
	case []interface{}:
		o := make([]int, len(v))
		for i, val := range v {
			var err error
			if o[i], err = cast.ToIntE(val); err != nil {
				return nil, err
			}
		}
		return o, nil
	case string:
		var o []int
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return cast.ToIntSliceE(s)
	}
}

// GetStringMapString returns a map[string]string from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func GetStringMapString(varName string, cfg *viper.Viper) (map[string]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return make(map[string]string), nil
	case map[string]string:
		return v, nil
	case map[string]interface{}:
		return cast.ToStringMapStringE(v)
	case string:
		o := make(map[string]string)
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for map variable %s: %#v", varName, i)
	}
}

// getStringMapFloat returns a map[string]float64 from a viper configuration,
// accounting for the fact that it might be a json object if it was set
// from a command line argument.
func getStringMapFloat(varName string, cfg *viper.Viper) (map[string]float64, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case nil:
		return make(map[string]float64), nil
	case map[string]float64:
		return v, nil
	case map[string]interface{}:
		o := make(map[string]float64, len(v))
		for k, val := range v {
			f, err := cast.ToFloat64E(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %v", k, err)
			}
			o[k] = f
		}
		return o, nil
	case string:
		o := make(map[string]float64)
		if strings.TrimSpace(v) == "" {
			return o, nil
		}
		d := json.NewDecoder(bytes.NewBufferString(v))
		if err := d.Decode(&o); err != nil {
			return nil, err
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for map variable %s: %#v", varName, i)
	}
}
