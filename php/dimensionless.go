package php

import "math"

// Gravity is the standard acceleration used by the buoyancy groups, m/s2.
const Gravity = 9.81

// Geometry carries the tube inputs. Diameter is the inner diameter in m
// (validated positive upstream); Velocity is the mean flow velocity in
// m/s and may be zero.
type Geometry struct {
	Diameter float64
	Velocity float64
}

// DimensionlessSet maps each derived group to its value. Bond, Weber
// and Capillary exist only where phase-boundary data does, so each has
// a presence flag. A zero denominator anywhere yields 0 rather than an
// error: degenerate inputs (zero velocity, vanishing surface tension
// near critical) still deserve a displayable result.
type DimensionlessSet struct {
	Re, Pr, Pe, Fr float64
	Bo             float64
	We             float64
	Ca             float64
	HasBond        bool
	HasWeber       bool
	HasCapillary   bool
}

func safeDiv(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// ComputeNumbers derives the groups available for any single record:
// Re, Pr, Pe, Fr, and Capillary when the record knows surface tension.
func ComputeNumbers(pr *PropertyRecord, g Geometry) (ds DimensionlessSet) {
	ds.Re = safeDiv(pr.Density*g.Velocity*g.Diameter, pr.Viscosity)
	ds.Pr = safeDiv(pr.SpecificHeatCp*pr.Viscosity, pr.Conductivity)
	ds.Pe = ds.Re * ds.Pr
	if gd := Gravity * g.Diameter; gd > 0 {
		ds.Fr = g.Velocity / math.Sqrt(gd)
	}
	if pr.HasSurfaceTension {
		ds.Ca = safeDiv(pr.Viscosity*g.Velocity, pr.SurfaceTension)
		ds.HasCapillary = true
	}
	return
}

// ComputeSaturatedNumbers derives both branch sets for a dual
// saturated result. The liquid branch additionally carries Bond (which
// needs the density difference across the boundary) and Weber.
func ComputeSaturatedNumbers(liq, vap *PropertyRecord, g Geometry) (liquid, vapor DimensionlessSet) {
	liquid = ComputeNumbers(liq, g)
	liquid.Bo = safeDiv(Gravity*(liq.Density-vap.Density)*g.Diameter*g.Diameter, liq.SurfaceTension)
	liquid.HasBond = true
	liquid.We = safeDiv(liq.Density*g.Velocity*g.Velocity*g.Diameter, liq.SurfaceTension)
	liquid.HasWeber = true
	vapor = ComputeNumbers(vap, g)
	return
}
