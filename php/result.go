package php

// ResultKind tags the three calculation outcomes.
type ResultKind uint8

const (
	KindSaturated ResultKind = iota // dual liquid/vapor branch records
	KindTwoPhase                    // single mixture record at fixed quality
	KindNonSaturated                // single-phase record, classified
)

func (k ResultKind) String() string {
	strings := []string{
		"Saturated",
		"TwoPhase",
		"NonSaturated",
	}
	return strings[int(k)]
}

// Result is one complete calculation: resolved state, property
// record(s) and dimensionless numbers, tagged by Kind. It is the
// explicit handle a correlation pass takes — nothing here mutates
// after Calculate returns.
//
// Which fields are populated depends on Kind:
//
//	KindSaturated    Liquid, Vapor, LatentHeat, Numbers (liquid
//	                 branch, with Bond/Weber/Capillary), VaporNumbers
//	KindTwoPhase     Props (mixture), Numbers (with Capillary)
//	KindNonSaturated Props, Phase, Numbers
type Result struct {
	Kind     ResultKind
	Fluid    string
	State    StateRecord
	Geometry Geometry

	Liquid, Vapor *PropertyRecord
	LatentHeat    float64 // J/kg, h_vapor - h_liquid

	Props *PropertyRecord
	Phase Phase

	Numbers      DimensionlessSet
	VaporNumbers *DimensionlessSet
}

// Calculate runs the full chain for one case: validate, resolve the
// state, classify where ambiguous, build the property record(s) and
// derive the dimensionless numbers.
func Calculate(o Oracle, in CaseInput) (*Result, error) {
	cs, err := in.spec()
	if err != nil {
		return nil, err
	}
	state, err := resolveState(o, cs)
	if err != nil {
		return nil, err
	}
	r := &Result{Fluid: cs.fluid, State: state, Geometry: cs.geom}

	switch {
	case cs.mode == Saturated && cs.hasQ:
		// One mixture record at the supplied quality. Surface tension
		// exists on the saturation line, so Capillary is available.
		r.Kind = KindTwoPhase
		spec := TQ(state.T, state.Q)
		insideDome := state.Q > 0 && state.Q < 1
		if r.Props, err = buildRecord(o, cs.fluid, spec, insideDome, true); err != nil {
			return nil, err
		}
		r.Numbers = ComputeNumbers(r.Props, cs.geom)

	case cs.mode == Saturated:
		// Quality not fixed: evaluate the liquid and vapor branches
		// separately, surface tension on the liquid side only.
		r.Kind = KindSaturated
		if r.Liquid, err = buildRecord(o, cs.fluid, TQ(state.T, 0), false, true); err != nil {
			return nil, err
		}
		if r.Vapor, err = buildRecord(o, cs.fluid, TQ(state.T, 1), false, false); err != nil {
			return nil, err
		}
		r.LatentHeat = r.Vapor.Enthalpy - r.Liquid.Enthalpy
		liquid, vapor := ComputeSaturatedNumbers(r.Liquid, r.Vapor, cs.geom)
		r.Numbers = liquid
		r.VaporNumbers = &vapor

	default: // NonSaturated
		r.Kind = KindNonSaturated
		if r.Phase, err = ClassifyPhase(o, cs.fluid, state.T, state.P); err != nil {
			return nil, err
		}
		if r.Props, err = buildRecord(o, cs.fluid, TP(state.T, state.P), false, false); err != nil {
			return nil, err
		}
		r.Numbers = ComputeNumbers(r.Props, cs.geom)
	}
	return r, nil
}
