package php

import (
	"fmt"
	"math"
)

// Gnielinski applicability window. Violations are advisory: the numbers
// are still returned, the caller decides how loudly to warn.
const (
	gnielinskiReMin = 3000.0
	gnielinskiReMax = 5.0e6
	gnielinskiPrMin = 0.5
	gnielinskiPrMax = 2000.0
)

// Correlation is the single-phase forced-convection result: Petukhov
// Darcy friction factor, Gnielinski Nusselt number, and the resulting
// heat transfer coefficient, with any applicability violations attached.
type Correlation struct {
	FrictionFactor float64
	Nusselt        float64
	HeatTransfer   float64 // W/m2-K
	Violations     []string
}

// Correlate applies the Petukhov/Gnielinski chain to a prior
// calculation. The result handle is an explicit parameter: the caller
// owns the pairing, and must recompute the main calculation before
// correlating again if any input changed.
//
// A two-phase mixture result is rejected outright — the correlation is
// single-phase only. A dual saturated result correlates its liquid
// branch (single-phase saturated liquid).
func Correlate(r *Result, diameter float64) (*Correlation, error) {
	if r == nil {
		return nil, &InvalidInputError{Field: "result", Reason: "no prior calculation"}
	}
	if diameter <= 0 {
		return nil, &InvalidInputError{Field: "diameter",
			Reason: fmt.Sprintf("%g is not a positive length", diameter)}
	}
	if r.Kind == KindTwoPhase {
		return nil, &NotApplicableError{
			Reason: "single-phase correlation requested on a two-phase mixture result"}
	}
	pr := r.Props
	if r.Kind == KindSaturated {
		pr = r.Liquid
	}
	var (
		Re = r.Numbers.Re
		Pr = r.Numbers.Pr
	)
	if Re <= 0 {
		return nil, &DegenerateResultError{
			Reason: fmt.Sprintf("friction factor undefined for Re=%g", Re)}
	}
	base := 0.790*math.Log(Re) - 1.64
	if base == 0 {
		return nil, &DegenerateResultError{
			Reason: "Petukhov friction factor singular at this Reynolds number"}
	}
	f := 1.0 / (base * base)
	den := 1.0 + 12.7*math.Sqrt(f/8.0)*(math.Pow(Pr, 2.0/3.0)-1.0)
	if den == 0 {
		return nil, &DegenerateResultError{Reason: "Gnielinski denominator is zero"}
	}
	nu := (f / 8.0) * (Re - 1000.0) * Pr / den

	c := &Correlation{
		FrictionFactor: f,
		Nusselt:        nu,
		HeatTransfer:   nu * pr.Conductivity / diameter,
	}
	if Re <= gnielinskiReMin || Re >= gnielinskiReMax {
		c.Violations = append(c.Violations,
			fmt.Sprintf("Re=%.4g outside (%g, %g)", Re, gnielinskiReMin, gnielinskiReMax))
	}
	if Pr < gnielinskiPrMin || Pr > gnielinskiPrMax {
		c.Violations = append(c.Violations,
			fmt.Sprintf("Pr=%.4g outside [%g, %g]", Pr, gnielinskiPrMin, gnielinskiPrMax))
	}
	return c, nil
}
