package php

import (
	"errors"
	"fmt"
)

// Property names a thermophysical property an oracle can be asked for.
// Temperature and Pressure are included so the conjugate saturation
// variable can be resolved through the same query path.
type Property uint8

func (p Property) String() string {
	strings := []string{
		"Temperature",
		"Pressure",
		"Density",
		"Viscosity",
		"SpecificHeatCp",
		"SpecificHeatCv",
		"Conductivity",
		"SurfaceTension",
		"Enthalpy",
		"Entropy",
		"SoundSpeed",
	}
	return strings[int(p)]
}

const (
	Temperature Property = iota
	Pressure
	Density
	Viscosity
	SpecificHeatCp // isobaric
	SpecificHeatCv // isochoric
	Conductivity
	SurfaceTension
	Enthalpy
	Entropy
	SoundSpeed
)

// Constant names a state-independent fluid constant.
type Constant uint8

func (c Constant) String() string {
	strings := []string{
		"CriticalTemperature",
		"CriticalPressure",
		"BoundaryTemperature",
		"BoundaryPressure",
	}
	return strings[int(c)]
}

const (
	CriticalTemperature Constant = iota
	CriticalPressure
	// Triple point for most fluids, lambda point for helium
	BoundaryTemperature
	BoundaryPressure
)

// SpecKind closes the set of independent variable pairs a query can be
// formulated with.
type SpecKind uint8

const (
	SpecTQ SpecKind = iota // temperature + vapor quality, on the saturation line
	SpecPQ                 // pressure + vapor quality, on the saturation line
	SpecTP                 // temperature + pressure, single phase
)

// StateSpec is the pair of independent state variables accompanying a
// property query. Only the fields selected by Kind are meaningful.
type StateSpec struct {
	Kind    SpecKind
	T, P, Q float64
}

func TQ(t, q float64) StateSpec { return StateSpec{Kind: SpecTQ, T: t, Q: q} }
func PQ(p, q float64) StateSpec { return StateSpec{Kind: SpecPQ, P: p, Q: q} }
func TP(t, p float64) StateSpec { return StateSpec{Kind: SpecTP, T: t, P: p} }

func (s StateSpec) String() string {
	switch s.Kind {
	case SpecTQ:
		return fmt.Sprintf("T=%g K, Q=%g", s.T, s.Q)
	case SpecPQ:
		return fmt.Sprintf("P=%g Pa, Q=%g", s.P, s.Q)
	default:
		return fmt.Sprintf("T=%g K, P=%g Pa", s.T, s.P)
	}
}

// Oracle resolves property queries to SI values. Implementations are
// deterministic; a failed query will fail identically on retry.
type Oracle interface {
	Query(prop Property, fluid string, spec StateSpec) (float64, error)
	Constant(c Constant, fluid string) (float64, error)
}

// Sentinel failures an oracle reports. ErrUndefinedInRegion is special:
// it is the one oracle failure the engine expects and absorbs, and only
// for sound speed strictly inside the two-phase dome.
var (
	ErrUnknownFluid      = errors.New("unknown fluid")
	ErrOutOfRange        = errors.New("state outside the supported envelope")
	ErrUnsupportedQuery  = errors.New("unsupported property/state combination")
	ErrUndefinedInRegion = errors.New("property undefined in the two-phase region")
)
