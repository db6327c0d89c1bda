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
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/spatialmodel/aroma"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	modelFlags := func() []*pflag.FlagSet {
		return []*pflag.FlagSet{runCmd.Flags(), gridCmd.Flags(), reportCmd.Flags()}
	}
	simFlags := func() []*pflag.FlagSet {
		return []*pflag.FlagSet{runCmd.Flags(), reportCmd.Flags()}
	}

	// Options are the configuration options available to Aroma.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "ComponentsFile",
			usage: `
              ComponentsFile is the path to the file holding the fragrance
              components. It can be a .csv, .xlsx, .toml, .yaml or .yml file.
              Tabular files have the columns name, ci, Pvap_Pa, M_g_mol, K,
              Ki_gel2air and EFi, plus a kai_<receptor> column for each receptor.`,
			shorthand:  "c",
			defaultVal: "components.csv",
			flagsets:   simFlags(),
		},
		{
			name: "ComponentsSheet",
			usage: `
              ComponentsSheet is the sheet to read from an .xlsx ComponentsFile.
              If it is empty, the first sheet is used.`,
			defaultVal: "",
			flagsets:   simFlags(),
		},
		{
			name: "Alpha",
			usage: `
              Alpha scales the evaporation rate of every component.`,
			defaultVal: aroma.DefaultAlpha,
			flagsets:   modelFlags(),
		},
		{
			name: "Beta",
			usage: `
              Beta normalizes the headspace concentration of every component.`,
			defaultVal: aroma.DefaultBeta,
			flagsets:   modelFlags(),
		},
		{
			name: "GammaDefault",
			usage: `
              GammaDefault is the competitive inhibition coefficient for
              components that are not listed in Gammas.`,
			defaultVal: aroma.GammaDefault,
			flagsets:   modelFlags(),
		},
		{
			name: "Gammas",
			usage: `
              Gammas gives competitive inhibition coefficients for individual
              components, for example {"limonene": 0.5}.`,
			defaultVal: map[string]float64{},
			flagsets:   modelFlags(),
		},
		{
			name: "TMax",
			usage: `
              TMax is the length of the simulation in seconds.`,
			defaultVal: aroma.DefaultTMax,
			flagsets:   modelFlags(),
		},
		{
			name: "NPoints",
			usage: `
              NPoints is the number of time samples in the simulation. If
              Boundary is 'dedupe' the time axis has one fewer sample.`,
			shorthand:  "n",
			defaultVal: aroma.DefaultNPoints,
			flagsets:   modelFlags(),
		},
		{
			name: "EarlyWindow",
			usage: `
              EarlyWindow is the length in seconds of the densely sampled
              period after application.`,
			defaultVal: aroma.DefaultEarlyWindow,
			flagsets:   modelFlags(),
		},
		{
			name: "EarlyFraction",
			usage: `
              EarlyFraction is the share of NPoints used to sample the early
              window.`,
			defaultVal: aroma.DefaultEarlyFraction,
			flagsets:   modelFlags(),
		},
		{
			name: "Receptors",
			usage: `
              Receptors are the olfactory receptor channels to simulate.`,
			defaultVal: aroma.DefaultReceptors,
			flagsets:   modelFlags(),
		},
		{
			name: "Boundary",
			usage: `
              Boundary specifies whether the time at the end of the early window
              appears once ('dedupe') or twice ('keep') in the time axis.`,
			defaultVal: aroma.BoundaryDedupe.String(),
			flagsets:   modelFlags(),
		},
		{
			name: "Workers",
			usage: `
              Workers is the number of concurrent workers. If it is less than 1,
              one worker per processor is used.`,
			defaultVal: 0,
			flagsets:   simFlags(),
		},
		{
			name: "PlotFile",
			usage: `
              PlotFile is the path where the chart of component contributions is
              saved. The receptor activation chart is saved next to it with a
              '_receptors' suffix. The file extension sets the image format.
              If it is empty, no charts are made.`,
			defaultVal: "aroma.png",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ReportFile",
			usage: `
              ReportFile is the path where the .xlsx report is saved.
              If it is empty, no report is saved.`,
			shorthand:  "o",
			defaultVal: "aroma.xlsx",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "ReportIndices",
			usage: `
              ReportIndices are the time indices included in the report.`,
			defaultVal: []int{1, 25, 120, 700},
			flagsets:   simFlags(),
		},
		{
			name: "OutputVariables",
			usage: `
              OutputVariables specifies additional output variables as
              expressions of component and receptor names and the time t [s].
              Names that contain spaces can be enclosed in square brackets.
              The functions exp, log, max and min are available.
              If none are specified, TotalActivation is calculated as the
              sum of the activations of all Receptors.`,
			defaultVal: map[string]string{},
			flagsets: []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LogFile",
			usage: `
              LogFile is the path to the desired logfile location. It can
              include environment variables. If LogFile is left blank, the
              logfile will be saved next to the report or plot.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel is the minimum level of log messages: debug, info,
              warning or error.`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{runCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("AROMA")
	Cfg.AutomaticEnv()

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case []string:
				set.StringSliceP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case []int:
				set.IntSliceP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			case map[string]string, map[string]float64:
				b := bytes.NewBuffer(nil)
				e := json.NewEncoder(b)
				e.Encode(v)
				set.StringP(option.name, option.shorthand, b.String(), option.usage)
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(runCmd)
	Root.AddCommand(gridCmd)
	Root.AddCommand(reportCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(os.ExpandEnv(cfgpath))
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("aromautil: problem reading configuration file: %v", err)
		}
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "aroma",
	Short: "A reduced-form model of fragrance scent evolution.",
	Long: `Aroma is a reduced-form model of how the perceived scent of a fragrance
changes after it is applied. It simulates the evaporation of each fragrance
component into the air and the resulting activation of olfactory receptor
channels. Use the subcommands specified below to access the model functionality.

Refer to the subcommand documentation for configuration options and default settings.
Configuration can be changed by using a configuration file (and providing the
path to the file using the --config flag), by using command-line arguments,
or by setting environment variables in the format 'AROMA_var' where 'var' is the
name of the variable to be set. Many configuration variables are additionally
allowed to contain environment variables within them.
Refer to https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Aroma.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Aroma v%s\n", aroma.Version)
	},
	DisableAutoGenTag: true,
}

// runCmd is a command that runs a simulation and saves the results.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the model.",
	Long: `run simulates the fragrance in ComponentsFile, saves charts of the
component contributions and receptor activations to PlotFile, saves a report
of the values at ReportIndices to ReportFile, and logs a summary of each
of the OutputVariables.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		componentsFile, err := checkInputFile("ComponentsFile", Cfg.GetString("ComponentsFile"))
		if err != nil {
			return err
		}
		cfg, err := ModelConfig(Cfg)
		if err != nil {
			return err
		}
		plotFile, err := checkOutputFile("PlotFile", Cfg.GetString("PlotFile"))
		if err != nil {
			return err
		}
		reportFile, err := checkOutputFile("ReportFile", Cfg.GetString("ReportFile"))
		if err != nil {
			return err
		}
		indices, err := toIntSliceE(Cfg.Get("ReportIndices"))
		if err != nil {
			return fmt.Errorf("aromautil: reading 'ReportIndices': %v", err)
		}
		outputVars, err := GetStringMapString("OutputVariables", Cfg)
		if err != nil {
			return fmt.Errorf("aromautil: reading 'OutputVariables': %v", err)
		}
		if len(outputVars) == 0 {
			outputVars = defaultOutputVariables(cfg.Receptors)
		}

		return Run(
			context.Background(),
			cmd.OutOrStdout(),
			checkLogFile(Cfg.GetString("LogFile"), reportFile, plotFile),
			Cfg.GetString("LogLevel"),
			componentsFile,
			os.ExpandEnv(Cfg.GetString("ComponentsSheet")),
			cfg,
			RunOutputs{
				PlotFile:      plotFile,
				ReportFile:    reportFile,
				ReportIndices: indices,
				Variables:     checkOutputVars(outputVars),
			},
		)
	},
	DisableAutoGenTag: true,
}

// gridCmd is a command that prints the model time axis.
var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Print the time axis",
	Long: `grid prints the model time axis: one line per sample holding the time
index, the time in seconds and the time label used in reports. The indices
can be used to choose ReportIndices.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := ModelConfig(Cfg)
		if err != nil {
			return err
		}
		return Grid(cmd.OutOrStdout(), cfg)
	},
	DisableAutoGenTag: true,
}

// reportCmd is a command that prints a report to standard output.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print a report",
	Long: `report simulates the fragrance in ComponentsFile and prints the
component contributions and receptor activations at ReportIndices as
tab-separated text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		componentsFile, err := checkInputFile("ComponentsFile", Cfg.GetString("ComponentsFile"))
		if err != nil {
			return err
		}
		cfg, err := ModelConfig(Cfg)
		if err != nil {
			return err
		}
		indices, err := toIntSliceE(Cfg.Get("ReportIndices"))
		if err != nil {
			return fmt.Errorf("aromautil: reading 'ReportIndices': %v", err)
		}
		return Report(context.Background(), cmd.OutOrStdout(), componentsFile,
			os.ExpandEnv(Cfg.GetString("ComponentsSheet")), cfg, indices)
	},
	DisableAutoGenTag: true,
}
