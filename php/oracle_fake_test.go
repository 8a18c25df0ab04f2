package php

// fakeOracle is a deterministic in-memory oracle for engine tests. It
// carries a toy linear saturation curve so conjugate resolution round
// trips exactly, and constant branch properties blended in quality.
type fakeOracle struct {
	calls   int
	queryFn func(prop Property, fluid string, spec StateSpec) (float64, error)
}

func (f *fakeOracle) Query(prop Property, fluid string, spec StateSpec) (float64, error) {
	f.calls++
	return f.queryFn(prop, fluid, spec)
}

func (f *fakeOracle) Constant(c Constant, fluid string) (float64, error) {
	return 0, ErrUnsupportedQuery
}

// Toy saturation curve: Psat(T) = 611 + 1000 (T - 273.15)
func fakePsat(t float64) float64 { return 611.0 + 1000.0*(t-273.15) }
func fakeTsat(p float64) float64 { return 273.15 + (p-611.0)/1000.0 }

// branch property values, liquid and vapor, loosely water at 1 atm
var fakeProps = map[Property][2]float64{
	Density:        {958.0, 0.6},
	Viscosity:      {2.8e-4, 1.2e-5},
	SpecificHeatCp: {4216.0, 2080.0},
	SpecificHeatCv: {3770.0, 1555.0},
	Conductivity:   {0.68, 0.025},
	Enthalpy:       {419000.0, 2676000.0},
	Entropy:        {1307.0, 7355.0},
	SoundSpeed:     {1543.0, 473.0},
	SurfaceTension: {0.059, 0.059},
}

func waterishOracle() *fakeOracle {
	f := &fakeOracle{}
	f.queryFn = func(prop Property, fluid string, spec StateSpec) (float64, error) {
		t, q := spec.T, spec.Q
		if spec.Kind == SpecPQ {
			t = fakeTsat(spec.P)
		}
		switch spec.Kind {
		case SpecTQ, SpecPQ:
			switch prop {
			case Temperature:
				return t, nil
			case Pressure:
				return fakePsat(t), nil
			case SoundSpeed:
				if q > 0 && q < 1 {
					return 0, ErrUndefinedInRegion
				}
			}
			lv := fakeProps[prop]
			return lv[0] + q*(lv[1]-lv[0]), nil
		default: // SpecTP
			switch prop {
			case Temperature:
				return spec.T, nil
			case Pressure:
				return spec.P, nil
			case SurfaceTension:
				return 0, ErrUnsupportedQuery
			}
			lv := fakeProps[prop]
			if spec.P > fakePsat(spec.T) {
				return lv[0], nil
			}
			return lv[1], nil
		}
	}
	return f
}

func ptr(v float64) *float64 { return &v }
