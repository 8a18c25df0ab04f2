package php

import "strings"

// Catalog is the fixed list of candidate pulsating heat pipe working
// fluids, low temperature fluids first. The catalog only names fluids;
// whether a given oracle can serve one is the oracle's business.
var Catalog = []string{
	// Low temperature fluids
	"Helium", "Nitrogen", "Argon", "Hydrogen", "Methane", "Neon", "Oxygen",
	// Conventional fluids
	"Acetone", "Ethanol", "Methanol", "R134a", "Water",
}

// CanonicalFluid maps a case-insensitive fluid name onto its catalog
// spelling. The second return is false for fluids outside the catalog.
func CanonicalFluid(name string) (string, bool) {
	for _, f := range Catalog {
		if strings.EqualFold(f, name) {
			return f, true
		}
	}
	return name, false
}

// BoundaryPointName labels the low temperature end of the coexistence
// curve: helium's superfluid transition makes it a lambda point, every
// other catalog fluid has an ordinary triple point.
func BoundaryPointName(fluid string) string {
	if strings.EqualFold(fluid, "Helium") {
		return "lambda point"
	}
	return "triple point"
}
