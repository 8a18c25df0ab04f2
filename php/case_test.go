package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var caseYAML = `
Fluid: Ethanol
Mode: Saturated
Basis: T
Temperature: 351.44
Quality: 0.2
Diameter: 0.0015
Velocity: 0.4
`

func TestParseCaseYAML(t *testing.T) {
	var in CaseInput
	require.NoError(t, in.Parse([]byte(caseYAML)))

	assert.Equal(t, "Ethanol", in.Fluid)
	assert.Equal(t, "Saturated", in.Mode)
	require.NotNil(t, in.Temperature)
	assert.Equal(t, 351.44, *in.Temperature)
	assert.Nil(t, in.Pressure, "unset fields stay nil, not zero")
	require.NotNil(t, in.Quality)
	assert.Equal(t, 0.2, *in.Quality)
	assert.Equal(t, 0.0015, in.Diameter)
}

func TestParseCaseDefaults(t *testing.T) {
	var in CaseInput
	require.NoError(t, in.Parse([]byte("Fluid: Water\nDiameter: 0.002\nTemperature: 373.15\n")))
	cs, err := in.spec()
	require.NoError(t, err)
	assert.Equal(t, Saturated, cs.mode, "mode defaults to Saturated")
	assert.Equal(t, BasisTemperature, cs.basis, "basis defaults to T")
}

func TestCatalogLookup(t *testing.T) {
	name, ok := CanonicalFluid("r134a")
	require.True(t, ok)
	assert.Equal(t, "R134a", name)

	_, ok = CanonicalFluid("unobtainium")
	assert.False(t, ok)

	assert.Equal(t, "lambda point", BoundaryPointName("Helium"))
	assert.Equal(t, "triple point", BoundaryPointName("Water"))
}
