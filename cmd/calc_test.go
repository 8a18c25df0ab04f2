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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessCaseBenchUnits(t *testing.T) {
	flags := CalcCmd.Flags()
	require.NoError(t, flags.Set("fluid", "water"))
	require.NoError(t, flags.Set("mode", "sat"))
	require.NoError(t, flags.Set("basis", "P"))
	require.NoError(t, flags.Set("pressure", "101.325"))
	require.NoError(t, flags.Set("diameter", "1.5"))
	require.NoError(t, flags.Set("velocity", "0.4"))

	in := processCase(CalcCmd)

	assert.Equal(t, "Water", in.Fluid, "fluid name canonicalized")
	require.NotNil(t, in.Pressure)
	assert.Equal(t, 101325.0, *in.Pressure, "kPa flag converted to Pa")
	assert.Equal(t, 0.0015, in.Diameter, "mm flag converted to m")
	assert.Equal(t, 0.4, in.Velocity)
	assert.Nil(t, in.Temperature, "untouched flags stay unset")
	assert.Nil(t, in.Quality)
}
