package eos

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gophp/php"
)

// Universal gas constant, J/mol-K.
const gasConstant = 8.314462618

func (to *TableOracle) table(fluid string) (*fluidTable, error) {
	ft, ok := to.fluids[strings.ToLower(fluid)]
	if !ok {
		return nil, fmt.Errorf("%w: %q has no builtin table", php.ErrUnknownFluid, fluid)
	}
	return ft, nil
}

func (to *TableOracle) Query(prop php.Property, fluid string, spec php.StateSpec) (float64, error) {
	ft, err := to.table(fluid)
	if err != nil {
		return 0, err
	}
	switch spec.Kind {
	case php.SpecTQ:
		return ft.querySat(prop, spec.T, spec.Q)
	case php.SpecPQ:
		t, err := ft.tempAt(spec.P)
		if err != nil {
			return 0, err
		}
		return ft.querySat(prop, t, spec.Q)
	case php.SpecTP:
		return ft.querySinglePhase(prop, spec.T, spec.P)
	}
	return 0, fmt.Errorf("%w: spec kind %d", php.ErrUnsupportedQuery, spec.Kind)
}

func (to *TableOracle) Constant(c php.Constant, fluid string) (float64, error) {
	ft, err := to.table(fluid)
	if err != nil {
		return 0, err
	}
	switch c {
	case php.CriticalTemperature:
		return ft.meta.CriticalTemperature, nil
	case php.CriticalPressure:
		return ft.meta.CriticalPressure, nil
	case php.BoundaryTemperature:
		return ft.meta.BoundaryTemperature, nil
	case php.BoundaryPressure:
		return ft.meta.BoundaryPressure, nil
	}
	return 0, fmt.Errorf("%w: constant %d", php.ErrUnsupportedQuery, c)
}

func (ft *fluidTable) tempAt(p float64) (float64, error) {
	if p < ft.pMin || p > ft.pMax {
		return 0, fmt.Errorf("%w: P=%g Pa not in [%g, %g] for %s",
			php.ErrOutOfRange, p, ft.pMin, ft.pMax, ft.meta.Name)
	}
	return ft.tSat.Predict(math.Log(p)), nil
}

// querySat evaluates a property on the saturation line at quality q.
// Branch values blend linearly in quality on a mass basis, density
// through the specific volume. Sound speed has no defined value
// strictly inside the dome.
func (ft *fluidTable) querySat(prop php.Property, t, q float64) (float64, error) {
	if t < ft.tMin || t > ft.tMax {
		return 0, fmt.Errorf("%w: T=%g K not in [%g, %g] for %s",
			php.ErrOutOfRange, t, ft.tMin, ft.tMax, ft.meta.Name)
	}
	if q < 0 || q > 1 {
		return 0, fmt.Errorf("%w: Q=%g not in [0, 1]", php.ErrOutOfRange, q)
	}
	switch prop {
	case php.Temperature:
		return t, nil
	case php.Pressure:
		return math.Exp(ft.lnPsat.Predict(t)), nil
	case php.SurfaceTension:
		return ft.sigma.Predict(t), nil
	case php.SoundSpeed:
		if q > 0 && q < 1 {
			return 0, fmt.Errorf("sound speed at T=%g K, Q=%g: %w", t, q, php.ErrUndefinedInRegion)
		}
	case php.Density:
		vl := 1.0 / ft.liquid[php.Density].Predict(t)
		vv := 1.0 / ft.vapor[php.Density].Predict(t)
		return 1.0 / (vl + q*(vv-vl)), nil
	}
	lp, ok := ft.liquid[prop]
	if !ok {
		return 0, fmt.Errorf("%w: %s on the saturation line", php.ErrUnsupportedQuery, prop)
	}
	l, v := lp.Predict(t), ft.vapor[prop].Predict(t)
	return l + q*(v-l), nil
}

// querySinglePhase evaluates a property at an off-coexistence (T, P).
// The table anchors at the saturation branch at the same temperature:
// compressed liquid properties vary weakly with pressure and are taken
// as saturated liquid values; superheated vapor gets an ideal-gas
// density correction and the matching entropy-of-mixing term. At
// P == Psat(T) the vapor branch applies, consistent with the phase
// classifier's tie-break.
func (ft *fluidTable) querySinglePhase(prop php.Property, t, p float64) (float64, error) {
	if t < ft.tMin || t > ft.tMax {
		return 0, fmt.Errorf("%w: T=%g K not in [%g, %g] for %s",
			php.ErrOutOfRange, t, ft.tMin, ft.tMax, ft.meta.Name)
	}
	if p <= 0 {
		return 0, fmt.Errorf("%w: P=%g Pa", php.ErrOutOfRange, p)
	}
	switch prop {
	case php.Temperature:
		return t, nil
	case php.Pressure:
		return p, nil
	case php.SurfaceTension:
		return 0, fmt.Errorf("%w: surface tension is only defined on the saturation line",
			php.ErrUnsupportedQuery)
	}
	psat := math.Exp(ft.lnPsat.Predict(t))
	if p > psat {
		lp, ok := ft.liquid[prop]
		if !ok {
			return 0, fmt.Errorf("%w: %s", php.ErrUnsupportedQuery, prop)
		}
		return lp.Predict(t), nil
	}
	vp, ok := ft.vapor[prop]
	if !ok {
		return 0, fmt.Errorf("%w: %s", php.ErrUnsupportedQuery, prop)
	}
	v := vp.Predict(t)
	switch prop {
	case php.Density:
		v *= p / psat
	case php.Entropy:
		v -= gasConstant / ft.meta.MolarMass * math.Log(p/psat)
	}
	return v, nil
}
