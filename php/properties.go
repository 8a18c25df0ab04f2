package php

import "errors"

// PropertyRecord holds the fixed battery of property values for one
// state or branch. Sound speed and surface tension carry presence
// flags: sound speed is legitimately undefined strictly inside the
// two-phase dome, and surface tension only exists where there is a
// phase boundary.
type PropertyRecord struct {
	Density           float64 // kg/m3
	Viscosity         float64 // Pa s, dynamic
	SpecificHeatCp    float64 // J/kg-K
	SpecificHeatCv    float64 // J/kg-K
	Conductivity      float64 // W/m-K
	Enthalpy          float64 // J/kg
	Entropy           float64 // J/kg-K
	SoundSpeed        float64 // m/s
	HasSoundSpeed     bool
	SurfaceTension    float64 // N/m
	HasSurfaceTension bool
}

// buildRecord issues the property battery for one state. Every oracle
// rejection is fatal and names the property, with one exception: when
// insideDome is set, a sound speed query answered ErrUndefinedInRegion
// is recorded as an explicit absence. That is an expected physical
// condition, not a failure, and it is the only swallowed oracle error.
func buildRecord(o Oracle, fluid string, spec StateSpec, insideDome, withSigma bool) (*PropertyRecord, error) {
	pr := &PropertyRecord{}
	battery := []struct {
		prop  Property
		field *float64
	}{
		{Density, &pr.Density},
		{Viscosity, &pr.Viscosity},
		{SpecificHeatCp, &pr.SpecificHeatCp},
		{SpecificHeatCv, &pr.SpecificHeatCv},
		{Conductivity, &pr.Conductivity},
		{Enthalpy, &pr.Enthalpy},
		{Entropy, &pr.Entropy},
	}
	for _, b := range battery {
		v, err := o.Query(b.prop, fluid, spec)
		if err != nil {
			return nil, &PropertyLookupError{Property: b.prop, Fluid: fluid, Spec: spec, Err: err}
		}
		*b.field = v
	}

	w, err := o.Query(SoundSpeed, fluid, spec)
	switch {
	case err == nil:
		pr.SoundSpeed, pr.HasSoundSpeed = w, true
	case insideDome && errors.Is(err, ErrUndefinedInRegion):
		// explicit absence, not zero and not an error
	default:
		return nil, &PropertyLookupError{Property: SoundSpeed, Fluid: fluid, Spec: spec, Err: err}
	}

	if withSigma {
		sg, err := o.Query(SurfaceTension, fluid, spec)
		if err != nil {
			return nil, &PropertyLookupError{Property: SurfaceTension, Fluid: fluid, Spec: spec, Err: err}
		}
		pr.SurfaceTension, pr.HasSurfaceTension = sg, true
	}
	return pr, nil
}
