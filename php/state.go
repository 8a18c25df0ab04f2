package php

import (
	"fmt"
	"strings"
)

// Mode selects the state resolution branch.
type Mode uint8

const (
	Saturated Mode = iota
	NonSaturated
)

func (m Mode) String() string {
	strings := []string{
		"Saturated",
		"NonSaturated",
	}
	return strings[int(m)]
}

func NewMode(label string) (Mode, error) {
	switch strings.ToLower(strings.ReplaceAll(label, "-", "")) {
	case "", "saturated", "sat":
		return Saturated, nil
	case "nonsaturated", "nonsat":
		return NonSaturated, nil
	}
	return Saturated, fmt.Errorf("unknown calculation mode %q", label)
}

// Basis selects which of (T, P) is the independent saturation variable.
// Meaningful in Saturated mode only; the conjugate is always derived.
type Basis uint8

const (
	BasisTemperature Basis = iota
	BasisPressure
)

func (b Basis) String() string {
	strings := []string{
		"Temperature",
		"Pressure",
	}
	return strings[int(b)]
}

func NewBasis(label string) (Basis, error) {
	switch strings.ToLower(label) {
	case "", "t", "temperature":
		return BasisTemperature, nil
	case "p", "pressure":
		return BasisPressure, nil
	}
	return BasisTemperature, fmt.Errorf("unknown calculation basis %q", label)
}

// StateRecord is a fully resolved equilibrium state. Q is meaningful
// only when HasQ is set (two-phase calculations).
type StateRecord struct {
	T, P float64
	Q    float64
	HasQ bool
}

// resolveState determines the complete state for the case.
//
// Saturated mode derives the conjugate variable from the oracle at the
// supplied quality (0 when none was given). The derived value replaces
// whatever the caller put in that field: last write wins, by contract.
// NonSaturated mode takes both T and P as direct inputs.
//
// Oracle rejections here mean the independent input is outside the
// fluid's valid range, so they surface as InvalidInputError.
func resolveState(o Oracle, cs caseSpec) (StateRecord, error) {
	switch cs.mode {
	case Saturated:
		q := 0.0
		if cs.hasQ {
			q = cs.q
		}
		if cs.basis == BasisTemperature {
			p, err := o.Query(Pressure, cs.fluid, TQ(cs.t, q))
			if err != nil {
				return StateRecord{}, &InvalidInputError{Field: "Temperature",
					Reason: fmt.Sprintf("no saturation state at T=%g K", cs.t), Err: err}
			}
			return StateRecord{T: cs.t, P: p, Q: q, HasQ: cs.hasQ}, nil
		}
		t, err := o.Query(Temperature, cs.fluid, PQ(cs.p, q))
		if err != nil {
			return StateRecord{}, &InvalidInputError{Field: "Pressure",
				Reason: fmt.Sprintf("no saturation state at P=%g Pa", cs.p), Err: err}
		}
		return StateRecord{T: t, P: cs.p, Q: q, HasQ: cs.hasQ}, nil
	default: // NonSaturated: no derivation, just package for classification
		return StateRecord{T: cs.t, P: cs.p}, nil
	}
}
