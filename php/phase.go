package php

// Phase labels a non-saturated state relative to the coexistence curve.
type Phase uint8

const (
	SubcooledLiquid Phase = iota
	SuperheatedVapor
)

func (p Phase) String() string {
	strings := []string{
		"Subcooled Liquid",
		"Superheated Vapor",
	}
	return strings[int(p)]
}

// ClassifyPhase compares T against the saturation temperature at P.
// Strictly below Tsat is subcooled liquid; at or above is superheated
// vapor. The tie at T == Tsat resolves to vapor — boiling-point
// equality is not modeled separately and this inequality is the
// authoritative tie-break.
func ClassifyPhase(o Oracle, fluid string, t, p float64) (Phase, error) {
	tsat, err := o.Query(Temperature, fluid, PQ(p, 0))
	if err != nil {
		return SubcooledLiquid, &PropertyLookupError{
			Property: Temperature, Fluid: fluid, Spec: PQ(p, 0), Err: err}
	}
	if t < tsat {
		return SubcooledLiquid, nil
	}
	return SuperheatedVapor, nil
}
