// Package eos provides the builtin property oracle: an equation-of-state
// stand-in backed by embedded saturation tables with engineering-accuracy
// interpolation. It serves the subset of the working-fluid catalog it has
// tables for; anything else fails with php.ErrUnknownFluid so an external
// oracle can take over.
package eos

import (
	"embed"
	"fmt"
	"math"
	"strings"

	"github.com/ghodss/yaml"
	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"

	"github.com/notargets/gophp/php"
)

//go:embed data
var dataFS embed.FS

// fluidMeta is one entry of data/fluids.yaml.
type fluidMeta struct {
	Name                string  `yaml:"Name"`
	Table               string  `yaml:"Table"`
	MolarMass           float64 `yaml:"MolarMass"` // kg/mol
	CriticalTemperature float64 `yaml:"CriticalTemperature"`
	CriticalPressure    float64 `yaml:"CriticalPressure"`
	BoundaryTemperature float64 `yaml:"BoundaryTemperature"`
	BoundaryPressure    float64 `yaml:"BoundaryPressure"`
	LambdaPoint         bool    `yaml:"LambdaPoint"`
}

// satRow is one saturation-table record. Columns are SI, liquid and
// vapor branch values side by side.
type satRow struct {
	T     float64 `csv:"t_k"`
	P     float64 `csv:"p_pa"`
	RhoL  float64 `csv:"rho_l"`
	RhoV  float64 `csv:"rho_v"`
	MuL   float64 `csv:"mu_l"`
	MuV   float64 `csv:"mu_v"`
	CpL   float64 `csv:"cp_l"`
	CpV   float64 `csv:"cp_v"`
	CvL   float64 `csv:"cv_l"`
	CvV   float64 `csv:"cv_v"`
	KL    float64 `csv:"k_l"`
	KV    float64 `csv:"k_v"`
	HL    float64 `csv:"h_l"`
	HV    float64 `csv:"h_v"`
	SL    float64 `csv:"s_l"`
	SV    float64 `csv:"s_v"`
	WL    float64 `csv:"w_l"`
	WV    float64 `csv:"w_v"`
	Sigma float64 `csv:"sigma"`
}

// fluidTable holds the fitted predictors for one fluid. Saturation
// pressure is interpolated as ln(P) over T, which keeps the curve
// well behaved over the orders of magnitude between the triple and
// critical points; the inverse predictor gives Tsat over ln(P).
type fluidTable struct {
	meta       fluidMeta
	tMin, tMax float64
	pMin, pMax float64
	lnPsat     interp.PiecewiseLinear
	tSat       interp.PiecewiseLinear
	sigma      interp.PiecewiseLinear
	liquid     map[php.Property]*interp.PiecewiseLinear
	vapor      map[php.Property]*interp.PiecewiseLinear
}

// TableOracle implements php.Oracle from the embedded tables.
type TableOracle struct {
	fluids map[string]*fluidTable
	names  []string
}

// NewTableOracle loads and fits every embedded fluid table.
func NewTableOracle() (*TableOracle, error) {
	raw, err := dataFS.ReadFile("data/fluids.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading fluid metadata: %w", err)
	}
	var metas []fluidMeta
	if err = yaml.Unmarshal(raw, &metas); err != nil {
		return nil, fmt.Errorf("parsing fluid metadata: %w", err)
	}
	to := &TableOracle{fluids: make(map[string]*fluidTable)}
	for _, m := range metas {
		data, err := dataFS.ReadFile("data/" + m.Table)
		if err != nil {
			return nil, fmt.Errorf("reading table for %s: %w", m.Name, err)
		}
		var rows []*satRow
		if err = gocsv.UnmarshalBytes(data, &rows); err != nil {
			return nil, fmt.Errorf("parsing table for %s: %w", m.Name, err)
		}
		ft, err := newFluidTable(m, rows)
		if err != nil {
			return nil, fmt.Errorf("fitting table for %s: %w", m.Name, err)
		}
		to.fluids[strings.ToLower(m.Name)] = ft
		to.names = append(to.names, m.Name)
		log.WithFields(log.Fields{
			"fluid": m.Name,
			"rows":  len(rows),
			"tMin":  ft.tMin,
			"tMax":  ft.tMax,
		}).Debug("loaded saturation table")
	}
	return to, nil
}

// Fluids lists the fluids the builtin oracle has tables for, in table
// declaration order.
func (to *TableOracle) Fluids() []string {
	return append([]string(nil), to.names...)
}

func newFluidTable(m fluidMeta, rows []*satRow) (*fluidTable, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("need at least 2 rows, got %d", len(rows))
	}
	n := len(rows)
	ts := make([]float64, n)
	lnPs := make([]float64, n)
	for i, r := range rows {
		ts[i] = r.T
		lnPs[i] = math.Log(r.P)
	}
	ft := &fluidTable{
		meta: m,
		tMin: floats.Min(ts), tMax: floats.Max(ts),
		pMin: rows[0].P, pMax: rows[n-1].P,
		liquid: make(map[php.Property]*interp.PiecewiseLinear),
		vapor:  make(map[php.Property]*interp.PiecewiseLinear),
	}
	if err := ft.lnPsat.Fit(ts, lnPs); err != nil {
		return nil, err
	}
	if err := ft.tSat.Fit(lnPs, ts); err != nil {
		return nil, err
	}
	sigmas := column(rows, func(r *satRow) float64 { return r.Sigma })
	if err := ft.sigma.Fit(ts, sigmas); err != nil {
		return nil, err
	}
	branches := []struct {
		prop     php.Property
		liq, vap func(r *satRow) float64
	}{
		{php.Density, func(r *satRow) float64 { return r.RhoL }, func(r *satRow) float64 { return r.RhoV }},
		{php.Viscosity, func(r *satRow) float64 { return r.MuL }, func(r *satRow) float64 { return r.MuV }},
		{php.SpecificHeatCp, func(r *satRow) float64 { return r.CpL }, func(r *satRow) float64 { return r.CpV }},
		{php.SpecificHeatCv, func(r *satRow) float64 { return r.CvL }, func(r *satRow) float64 { return r.CvV }},
		{php.Conductivity, func(r *satRow) float64 { return r.KL }, func(r *satRow) float64 { return r.KV }},
		{php.Enthalpy, func(r *satRow) float64 { return r.HL }, func(r *satRow) float64 { return r.HV }},
		{php.Entropy, func(r *satRow) float64 { return r.SL }, func(r *satRow) float64 { return r.SV }},
		{php.SoundSpeed, func(r *satRow) float64 { return r.WL }, func(r *satRow) float64 { return r.WV }},
	}
	for _, b := range branches {
		lp, err := fit(ts, column(rows, b.liq))
		if err != nil {
			return nil, err
		}
		vp, err := fit(ts, column(rows, b.vap))
		if err != nil {
			return nil, err
		}
		ft.liquid[b.prop], ft.vapor[b.prop] = lp, vp
	}
	return ft, nil
}

func column(rows []*satRow, get func(r *satRow) float64) []float64 {
	ys := make([]float64, len(rows))
	for i, r := range rows {
		ys[i] = get(r)
	}
	return ys
}

func fit(xs, ys []float64) (*interp.PiecewiseLinear, error) {
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, err
	}
	return &pl, nil
}
