package sheet

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	die "Wiresheet/internal/calc/die"
	film "Wiresheet/internal/calc/film"
)

var errNonFinite = errors.New("result is not a finite number")

type Result struct {
	Kind      Kind     `json:"kind"`
	Label     string   `json:"label"`
	Standard  Standard `json:"standard,omitempty"`
	Mode      Mode     `json:"mode,omitempty"`
	Value     float64  `json:"value"`
	Precision int      `json:"precision"`
	Unit      string   `json:"unit"`
	Formula   string   `json:"formula"`
	Inputs    string   `json:"inputs"`
}

// Formatted renders the value without trailing zeros, e.g. "0.725".
func (r Result) Formatted() string {
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Evaluate applies the kind's formula to a complete set of inputs and rounds the result once.
// Any absent field yields an *IncompleteError and nothing is computed.
func Evaluate(kind Kind, in *InputSet) (Result, error) {
	spec, ok := kindSpecs[kind]
	if !ok {
		return Result{}, fmt.Errorf("unknown parameter %q", kind)
	}
	if missing := in.Missing(spec.fields...); len(missing) > 0 {
		return Result{}, &IncompleteError{Missing: missing}
	}

	v := func(f Field) float64 { return in.Get(f).Value }
	var (
		raw     float64
		formula string
	)
	switch kind {
	case AFilm:
		res, err := film.CalculateA(film.AInput{
			N:            v(N),
			TransposedMM: v(ATransposed),
			BareMM:       v(ABare),
			PaperMM:      v(Paper),
		})
		if err != nil {
			return Result{}, &ComputationError{Kind: kind, Err: err}
		}
		raw, formula = res.FilmMM, res.Notes
	case BFilm:
		res, err := film.CalculateB(film.BInput{
			TransposedMM:  v(BTransposed),
			BareMM:        v(BBare),
			PaperMM:       v(Paper),
			CenterPaperMM: v(CenterPaper),
		})
		if err != nil {
			return Result{}, &ComputationError{Kind: kind, Err: err}
		}
		raw, formula = res.FilmMM, res.Notes
	case ADie, BDie:
		d := die.Input{Side: die.SideA, BareMM: v(ABare), ShrinkMM: v(AShrink), ReserveMM: v(AReserve)}
		if kind == BDie {
			d = die.Input{Side: die.SideB, BareMM: v(BBare), ShrinkMM: v(BShrink), ReserveMM: v(BReserve)}
		}
		res, err := die.Calculate(d)
		if err != nil {
			return Result{}, &ComputationError{Kind: kind, Err: err}
		}
		raw, formula = res.DieMM, res.Notes
	}

	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return Result{}, &ComputationError{Kind: kind, Err: errNonFinite}
	}

	return Result{
		Kind:      kind,
		Label:     spec.label,
		Value:     round(raw, spec.precision),
		Precision: spec.precision,
		Unit:      Unit,
		Formula:   formula,
		Inputs:    in.Echo(spec.fields...),
	}, nil
}

// round is half away from zero. Values too large to scale are already
// integral at every supported precision and come back unchanged.
func round(v float64, places int) float64 {
	f := math.Pow10(places)
	scaled := v * f
	if math.IsInf(scaled, 0) {
		return v
	}
	return math.Round(scaled) / f
}
