/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gophp/eos"
	"github.com/notargets/gophp/php"
)

// CalcCmd represents the calc command
var CalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Resolve a working fluid state and derive its property report",
	Long: `
Resolves the thermodynamic state for the selected fluid and calculation
mode, queries the property battery and derives the dimensionless
numbers. Flags use the bench units of the original worksheet (kPa, mm);
a YAML case file (-F) is SI throughout, like:

########################################
Fluid: Water
Mode: Saturated
Basis: T
Temperature: 373.15   # K
Diameter: 0.002       # m
Velocity: 0.5         # m/s
########################################

gophp calc `,
	Run: func(cmd *cobra.Command, args []string) {
		in := processCase(cmd)
		oracle, err := eos.NewTableOracle()
		if err != nil {
			log.Fatal(err)
		}
		result, err := php.Calculate(oracle, in)
		if err != nil {
			log.Fatal(err)
		}
		printResult(result)
		if correlate, _ := cmd.Flags().GetBool("correlate"); correlate {
			corr, err := php.Correlate(result, in.Diameter)
			if err != nil {
				log.Fatal(err)
			}
			printCorrelation(corr)
		}
	},
}

func processCase(cmd *cobra.Command) (in php.CaseInput) {
	uc := loadUserConfig()
	if caseFile, _ := cmd.Flags().GetString("caseFile"); caseFile != "" {
		data, err := os.ReadFile(caseFile)
		if err != nil {
			log.Fatal(err)
		}
		if err = in.Parse(data); err != nil {
			log.Fatal(err)
		}
		in.Print()
	}
	if in.Fluid == "" || cmd.Flags().Changed("fluid") {
		in.Fluid, _ = cmd.Flags().GetString("fluid")
		if !cmd.Flags().Changed("fluid") && uc.Fluid != "" {
			in.Fluid = uc.Fluid
		}
	}
	if fluid, ok := php.CanonicalFluid(in.Fluid); ok {
		in.Fluid = fluid
	} else {
		fmt.Printf("warning: %q is not in the working fluid catalog\n", in.Fluid)
	}
	if in.Mode == "" || cmd.Flags().Changed("mode") {
		in.Mode, _ = cmd.Flags().GetString("mode")
	}
	if in.Basis == "" || cmd.Flags().Changed("basis") {
		in.Basis, _ = cmd.Flags().GetString("basis")
	}
	if cmd.Flags().Changed("temperature") {
		t, _ := cmd.Flags().GetFloat64("temperature")
		in.Temperature = &t
	}
	if cmd.Flags().Changed("pressure") {
		kPa, _ := cmd.Flags().GetFloat64("pressure")
		pa := kPa * 1000.0
		in.Pressure = &pa
	}
	if cmd.Flags().Changed("quality") {
		q, _ := cmd.Flags().GetFloat64("quality")
		in.Quality = &q
	}
	if cmd.Flags().Changed("diameter") || in.Diameter == 0 {
		mm, _ := cmd.Flags().GetFloat64("diameter")
		if !cmd.Flags().Changed("diameter") {
			mm = uc.DiameterMM
		}
		in.Diameter = mm / 1000.0
	}
	if cmd.Flags().Changed("velocity") {
		in.Velocity, _ = cmd.Flags().GetFloat64("velocity")
	} else if in.Velocity == 0 && !cmd.Flags().Changed("caseFile") {
		in.Velocity = uc.VelocityMS
	}
	return
}

func init() {
	rootCmd.AddCommand(CalcCmd)
	CalcCmd.Flags().StringP("fluid", "f", "Water", "working fluid from the catalog (see `gophp fluids`)")
	CalcCmd.Flags().StringP("mode", "m", "saturated", "calculation mode: saturated or nonsaturated")
	CalcCmd.Flags().StringP("basis", "b", "T", "saturation basis: T (by temperature) or P (by pressure)")
	CalcCmd.Flags().Float64P("temperature", "T", 0, "temperature, K")
	CalcCmd.Flags().Float64P("pressure", "P", 0, "pressure, kPa")
	CalcCmd.Flags().Float64P("quality", "Q", 0, "vapor quality in [0, 1]; fixes a two-phase mixture calculation")
	CalcCmd.Flags().Float64P("diameter", "D", 2.0, "tube inner diameter, mm")
	CalcCmd.Flags().Float64P("velocity", "u", 0.5, "mean velocity, m/s")
	CalcCmd.Flags().BoolP("correlate", "c", false, "apply the Gnielinski forced-convection correlation")
	CalcCmd.Flags().StringP("caseFile", "F", "", "YAML case file (SI units), overrides per-field flags left at defaults")
}
