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

	"github.com/notargets/gophp/php"
)

func printResult(r *php.Result) {
	fmt.Printf("--- Results (%s @ %.2f K / %.2f kPa) ---\n", r.Fluid, r.State.T, r.State.P/1000.0)
	switch r.Kind {
	case php.KindSaturated:
		fmt.Printf("State: Saturated\n\n")
		fmt.Printf("[Liquid properties]\n")
		printProps(r.Liquid)
		fmt.Printf("\n[Vapor properties]\n")
		printProps(r.Vapor)
		fmt.Printf("\n[Phase change]\n")
		fmt.Printf("- Latent heat (h_fg): %.4E J/kg\n", r.LatentHeat)
		fmt.Printf("\n[Dimensionless numbers, liquid branch]\n")
		printNumbers(r.Numbers)
		fmt.Printf("\n[Dimensionless numbers, vapor branch]\n")
		printNumbers(*r.VaporNumbers)
	case php.KindTwoPhase:
		fmt.Printf("State: Two-Phase Mixture (Q = %.4f)\n\n", r.State.Q)
		fmt.Printf("[Mixture properties]\n")
		printProps(r.Props)
		fmt.Printf("\n[Dimensionless numbers]\n")
		printNumbers(r.Numbers)
	case php.KindNonSaturated:
		fmt.Printf("State: %s\n\n", r.Phase)
		fmt.Printf("[Properties]\n")
		printProps(r.Props)
		fmt.Printf("\n[Dimensionless numbers]\n")
		printNumbers(r.Numbers)
	}
	fmt.Printf("---\n")
}

func printProps(pr *php.PropertyRecord) {
	fmt.Printf("- Density (rho): %.3f kg/m3\n", pr.Density)
	fmt.Printf("- Dynamic viscosity (mu): %.4E Pa-s\n", pr.Viscosity)
	fmt.Printf("- Specific heat (c_p): %.1f J/kg-K\n", pr.SpecificHeatCp)
	fmt.Printf("- Specific heat (c_v): %.1f J/kg-K\n", pr.SpecificHeatCv)
	fmt.Printf("- Thermal conductivity (k): %.4f W/m-K\n", pr.Conductivity)
	fmt.Printf("- Enthalpy (h): %.4E J/kg\n", pr.Enthalpy)
	fmt.Printf("- Entropy (s): %.1f J/kg-K\n", pr.Entropy)
	if pr.HasSoundSpeed {
		fmt.Printf("- Speed of sound (w): %.1f m/s\n", pr.SoundSpeed)
	} else {
		fmt.Printf("- Speed of sound (w): not defined in the two-phase region\n")
	}
	if pr.HasSurfaceTension {
		fmt.Printf("- Surface tension (sigma): %.4E N/m\n", pr.SurfaceTension)
	}
}

func printNumbers(ds php.DimensionlessSet) {
	fmt.Printf("- Reynolds (Re): %.1f\n", ds.Re)
	fmt.Printf("- Prandtl (Pr): %.3f\n", ds.Pr)
	fmt.Printf("- Peclet (Pe): %.1f\n", ds.Pe)
	fmt.Printf("- Froude (Fr): %.3f\n", ds.Fr)
	if ds.HasBond {
		fmt.Printf("- Bond (Bo): %.3f\n", ds.Bo)
	}
	if ds.HasWeber {
		fmt.Printf("- Weber (We): %.3f\n", ds.We)
	}
	if ds.HasCapillary {
		fmt.Printf("- Capillary (Ca): %.4E\n", ds.Ca)
	}
}

func printCorrelation(c *php.Correlation) {
	fmt.Printf("\n[Forced convection, Petukhov + Gnielinski]\n")
	fmt.Printf("- Friction factor (f): %.5f\n", c.FrictionFactor)
	fmt.Printf("- Nusselt (Nu): %.2f\n", c.Nusselt)
	fmt.Printf("- Heat transfer coefficient (h): %.1f W/m2-K\n", c.HeatTransfer)
	for _, v := range c.Violations {
		fmt.Printf("- WARNING outside validity range: %s\n", v)
	}
	fmt.Printf("---\n")
}
