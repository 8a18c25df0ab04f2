package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoPhaseCase(q float64) CaseInput {
	return CaseInput{
		Fluid: "Water", Mode: "Saturated", Basis: "T",
		Temperature: ptr(373.15), Quality: ptr(q),
		Diameter: 0.002, Velocity: 0.5,
	}
}

func TestTwoPhaseSoundSpeedAbsentNotFatal(t *testing.T) {
	r, err := Calculate(waterishOracle(), twoPhaseCase(0.5))
	require.NoError(t, err)
	assert.Equal(t, KindTwoPhase, r.Kind)
	assert.False(t, r.Props.HasSoundSpeed, "sound speed has no value inside the dome")
	assert.True(t, r.Props.HasSurfaceTension)
}

func TestTwoPhaseEndpointsKeepSoundSpeed(t *testing.T) {
	for _, q := range []float64{0, 1} {
		r, err := Calculate(waterishOracle(), twoPhaseCase(q))
		require.NoError(t, err)
		assert.True(t, r.Props.HasSoundSpeed, "Q=%g is on the dome boundary", q)
	}
}

func TestNonSaturatedSoundSpeedFailureIsFatal(t *testing.T) {
	o := waterishOracle()
	inner := o.queryFn
	o.queryFn = func(prop Property, fluid string, spec StateSpec) (float64, error) {
		if prop == SoundSpeed && spec.Kind == SpecTP {
			return 0, ErrUndefinedInRegion
		}
		return inner(prop, fluid, spec)
	}
	_, err := Calculate(o, CaseInput{
		Fluid: "Water", Mode: "NonSaturated",
		Temperature: ptr(300.0), Pressure: ptr(1.e5),
		Diameter: 0.002,
	})
	var lookup *PropertyLookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, SoundSpeed, lookup.Property)
}

func TestLookupFailureNamesProperty(t *testing.T) {
	o := waterishOracle()
	inner := o.queryFn
	o.queryFn = func(prop Property, fluid string, spec StateSpec) (float64, error) {
		if prop == Conductivity {
			return 0, ErrUnsupportedQuery
		}
		return inner(prop, fluid, spec)
	}
	_, err := Calculate(o, twoPhaseCase(0.5))
	var lookup *PropertyLookupError
	require.ErrorAs(t, err, &lookup)
	assert.Equal(t, Conductivity, lookup.Property)
	assert.Equal(t, "Water", lookup.Fluid)
}

func TestSaturatedDualBranchRecords(t *testing.T) {
	r, err := Calculate(waterishOracle(), CaseInput{
		Fluid: "Water", Mode: "Saturated", Basis: "T",
		Temperature: ptr(373.15),
		Diameter:    0.002, Velocity: 0.5,
	})
	require.NoError(t, err)
	require.Equal(t, KindSaturated, r.Kind)

	assert.Equal(t, fakeProps[Density][0], r.Liquid.Density)
	assert.Equal(t, fakeProps[Density][1], r.Vapor.Density)
	assert.True(t, r.Liquid.HasSurfaceTension, "surface tension belongs to the liquid side")
	assert.False(t, r.Vapor.HasSurfaceTension)
	assert.True(t, r.Liquid.HasSoundSpeed)
	assert.True(t, r.Vapor.HasSoundSpeed)
	assert.Equal(t, fakeProps[Enthalpy][1]-fakeProps[Enthalpy][0], r.LatentHeat)
	require.NotNil(t, r.VaporNumbers)
}

func TestNonSaturatedClassifiedRecord(t *testing.T) {
	r, err := Calculate(waterishOracle(), CaseInput{
		Fluid: "Water", Mode: "NonSaturated",
		Temperature: ptr(300.0), Pressure: ptr(1.e5),
		Diameter: 0.002, Velocity: 0.5,
	})
	require.NoError(t, err)
	assert.Equal(t, KindNonSaturated, r.Kind)
	assert.Equal(t, SubcooledLiquid, r.Phase)
	assert.Equal(t, fakeProps[Density][0], r.Props.Density)
	assert.False(t, r.Props.HasSurfaceTension, "no phase boundary off the saturation line")
	assert.True(t, r.Props.HasSoundSpeed)
}
