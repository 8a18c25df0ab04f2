package php

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// CaseInput describes one calculation case. All values are SI: K, Pa, m,
// m/s. Temperature, Pressure and Quality are pointers so "not supplied"
// stays distinct from zero — which of them must be present depends on
// Mode and Basis.
type CaseInput struct {
	Fluid       string   `yaml:"Fluid"`
	Mode        string   `yaml:"Mode"`  // "Saturated" or "NonSaturated"
	Basis       string   `yaml:"Basis"` // "T" or "P", Saturated mode only
	Temperature *float64 `yaml:"Temperature"`
	Pressure    *float64 `yaml:"Pressure"`
	Quality     *float64 `yaml:"Quality"`
	Diameter    float64  `yaml:"Diameter"`
	Velocity    float64  `yaml:"Velocity"`
}

func (in *CaseInput) Parse(data []byte) error {
	return yaml.Unmarshal(data, in)
}

func (in *CaseInput) Print() {
	fmt.Printf("[%s]\t\t= Fluid\n", in.Fluid)
	fmt.Printf("[%s]\t\t= Mode\n", in.Mode)
	if in.Basis != "" {
		fmt.Printf("[%s]\t\t\t= Basis\n", in.Basis)
	}
	if in.Temperature != nil {
		fmt.Printf("%8.3f\t\t= Temperature (K)\n", *in.Temperature)
	}
	if in.Pressure != nil {
		fmt.Printf("%8.1f\t\t= Pressure (Pa)\n", *in.Pressure)
	}
	if in.Quality != nil {
		fmt.Printf("%8.4f\t\t= Quality\n", *in.Quality)
	}
	fmt.Printf("%8.5f\t\t= Diameter (m)\n", in.Diameter)
	fmt.Printf("%8.4f\t\t= Velocity (m/s)\n", in.Velocity)
}

// caseSpec is the validated, fully typed form of a CaseInput.
type caseSpec struct {
	fluid      string
	mode       Mode
	basis      Basis
	t, p, q    float64
	hasT, hasP bool
	hasQ       bool
	geom       Geometry
}

// spec validates the raw case. Everything caught here is an
// InvalidInputError raised before any oracle contact.
func (in CaseInput) spec() (cs caseSpec, err error) {
	if in.Fluid == "" {
		return cs, &InvalidInputError{Field: "Fluid", Reason: "required"}
	}
	cs.fluid = in.Fluid
	if cs.mode, err = NewMode(in.Mode); err != nil {
		return cs, &InvalidInputError{Field: "Mode", Reason: err.Error()}
	}
	if cs.basis, err = NewBasis(in.Basis); err != nil {
		return cs, &InvalidInputError{Field: "Basis", Reason: err.Error()}
	}
	if in.Temperature != nil {
		cs.t, cs.hasT = *in.Temperature, true
	}
	if in.Pressure != nil {
		cs.p, cs.hasP = *in.Pressure, true
	}
	if in.Quality != nil {
		cs.q, cs.hasQ = *in.Quality, true
		if cs.q < 0 || cs.q > 1 {
			return cs, &InvalidInputError{Field: "Quality",
				Reason: fmt.Sprintf("%g outside [0, 1]", cs.q)}
		}
	}
	if in.Diameter <= 0 {
		return cs, &InvalidInputError{Field: "Diameter",
			Reason: fmt.Sprintf("%g is not a positive length", in.Diameter)}
	}
	cs.geom = Geometry{Diameter: in.Diameter, Velocity: in.Velocity}

	switch cs.mode {
	case Saturated:
		if cs.basis == BasisTemperature && !cs.hasT {
			return cs, &InvalidInputError{Field: "Temperature",
				Reason: "required for Saturated mode with basis T"}
		}
		if cs.basis == BasisPressure && !cs.hasP {
			return cs, &InvalidInputError{Field: "Pressure",
				Reason: "required for Saturated mode with basis P"}
		}
	case NonSaturated:
		if !cs.hasT {
			return cs, &InvalidInputError{Field: "Temperature",
				Reason: "required for NonSaturated mode"}
		}
		if !cs.hasP {
			return cs, &InvalidInputError{Field: "Pressure",
				Reason: "required for NonSaturated mode"}
		}
	}
	return cs, nil
}
