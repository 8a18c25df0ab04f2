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
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/notargets/gophp/eos"
	"github.com/notargets/gophp/php"
)

// FluidsCmd represents the fluids command
var FluidsCmd = &cobra.Command{
	Use:   "fluids",
	Short: "List the working fluid catalog with key fluid constants",
	Run: func(cmd *cobra.Command, args []string) {
		oracle, err := eos.NewTableOracle()
		if err != nil {
			log.Fatal(err)
		}
		for _, fluid := range php.Catalog {
			tCrit, err := oracle.Constant(php.CriticalTemperature, fluid)
			if errors.Is(err, php.ErrUnknownFluid) {
				fmt.Printf("%-10s (no builtin tables, external oracle required)\n", fluid)
				continue
			} else if err != nil {
				log.Fatal(err)
			}
			pCrit, _ := oracle.Constant(php.CriticalPressure, fluid)
			tb, _ := oracle.Constant(php.BoundaryTemperature, fluid)
			pb, _ := oracle.Constant(php.BoundaryPressure, fluid)
			fmt.Printf("%-10s T_crit %8.3f K   P_crit %12.2f kPa   %s %7.3f K / %10.4f kPa\n",
				fluid, tCrit, pCrit/1000.0, php.BoundaryPointName(fluid), tb, pb/1000.0)
		}
	},
}

func init() {
	rootCmd.AddCommand(FluidsCmd)
}
