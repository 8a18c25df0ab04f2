package php

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resultWithNumbers fabricates a minimal single-phase result carrying
// the given Reynolds and Prandtl numbers.
func resultWithNumbers(re, pr float64) *Result {
	return &Result{
		Kind:    KindNonSaturated,
		Props:   &PropertyRecord{Conductivity: 0.68},
		Numbers: DimensionlessSet{Re: re, Pr: pr},
	}
}

func TestGnielinskiChain(t *testing.T) {
	const (
		re = 1.e4
		pr = 5.0
		d  = 0.002
	)
	r := resultWithNumbers(re, pr)
	c, err := Correlate(r, d)
	require.NoError(t, err)

	base := 0.790*math.Log(re) - 1.64
	f := 1.0 / (base * base)
	nu := (f / 8.0) * (re - 1000.0) * pr /
		(1.0 + 12.7*math.Sqrt(f/8.0)*(math.Pow(pr, 2.0/3.0)-1.0))

	assert.InEpsilon(t, f, c.FrictionFactor, 1.e-12)
	assert.InEpsilon(t, nu, c.Nusselt, 1.e-12)
	assert.InEpsilon(t, nu*0.68/d, c.HeatTransfer, 1.e-12)
	assert.Empty(t, c.Violations)

	// Order-of-magnitude sanity for turbulent water-like flow
	assert.InDelta(t, 0.0317, c.FrictionFactor, 0.001)
	assert.Greater(t, c.Nusselt, 50.0)
	assert.Less(t, c.Nusselt, 150.0)
}

func TestCorrelateRejectsTwoPhase(t *testing.T) {
	r := &Result{Kind: KindTwoPhase, Props: &PropertyRecord{}}
	_, err := Correlate(r, 0.002)
	var na *NotApplicableError
	assert.ErrorAs(t, err, &na)
}

func TestCorrelateSaturatedUsesLiquidBranch(t *testing.T) {
	r := &Result{
		Kind:    KindSaturated,
		Liquid:  &PropertyRecord{Conductivity: 0.68},
		Vapor:   &PropertyRecord{Conductivity: 0.025},
		Numbers: DimensionlessSet{Re: 1.e4, Pr: 5.0},
	}
	c, err := Correlate(r, 0.002)
	require.NoError(t, err)
	assert.InEpsilon(t, c.Nusselt*0.68/0.002, c.HeatTransfer, 1.e-12,
		"heat transfer coefficient built on liquid conductivity")
}

func TestCorrelateAdvisoryViolations(t *testing.T) {
	c, err := Correlate(resultWithNumbers(2000.0, 0.3), 0.002)
	require.NoError(t, err, "violations do not abort the correlation")
	require.Len(t, c.Violations, 2)
	assert.Contains(t, c.Violations[0], "Re=")
	assert.Contains(t, c.Violations[1], "Pr=")
	assert.NotZero(t, c.Nusselt)
}

func TestCorrelateDegenerateReynolds(t *testing.T) {
	for _, re := range []float64{0, -100} {
		_, err := Correlate(resultWithNumbers(re, 5.0), 0.002)
		var degen *DegenerateResultError
		assert.ErrorAs(t, err, &degen, "Re=%g", re)
	}
}

func TestCorrelateInvalidArguments(t *testing.T) {
	var invalid *InvalidInputError

	_, err := Correlate(nil, 0.002)
	assert.ErrorAs(t, err, &invalid)

	_, err = Correlate(resultWithNumbers(1.e4, 5.0), 0)
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "diameter", invalid.Field)
}
