package film

import "errors"

var ErrDivisionByZero = errors.New("division by zero: (n+1)/2 is 0")

// AInput is the a-side layout: n wires stacked in two columns with one paper wrap.
type AInput struct {
	N            float64 `json:"n"`
	TransposedMM float64 `json:"a_transposed_thickness"`
	BareMM       float64 `json:"a_bare_thickness"`
	PaperMM      float64 `json:"paper_thickness"`
}

// BInput is the b-side layout: two wires across plus paper and center paper.
type BInput struct {
	TransposedMM  float64 `json:"b_transposed_thickness"`
	BareMM        float64 `json:"b_bare_thickness"`
	PaperMM       float64 `json:"paper_thickness"`
	CenterPaperMM float64 `json:"center_paper_thickness"`
}

type Result struct {
	FilmMM float64 `json:"film_mm"`
	Notes  string  `json:"notes"`
}

// CalculateA solves the a-side film thickness. The result is not rounded.
func CalculateA(in AInput) (Result, error) {
	layers := (in.N + 1) / 2
	if layers == 0 {
		return Result{}, ErrDivisionByZero
	}
	film := (in.TransposedMM - (in.BareMM*layers + in.PaperMM)) / layers
	return Result{
		FilmMM: film,
		Notes:  "{a transposed - [a bare x (n+1)/2 + paper]} / ((n+1)/2)",
	}, nil
}

// CalculateB solves the b-side film thickness. The divisor is fixed at 2,
// so the error is always nil; it keeps the same shape as CalculateA.
func CalculateB(in BInput) (Result, error) {
	film := (in.TransposedMM - (in.BareMM*2 + in.PaperMM + in.CenterPaperMM)) / 2
	return Result{
		FilmMM: film,
		Notes:  "[b transposed - (b bare x 2 + paper + center paper)] / 2",
	}, nil
}
