package die

type Side string

const (
	SideA Side = "a"
	SideB Side = "b"
)

type Input struct {
	Side      Side    `json:"side"`
	BareMM    float64 `json:"bare_thickness"`
	ShrinkMM  float64 `json:"shrink_ratio"`
	ReserveMM float64 `json:"reserve_margin"`
}

type Result struct {
	DieMM float64 `json:"die_mm"`
	Notes string  `json:"notes"`
}

// Extrusion die size: bare conductor plus shrink allowance plus reserved die-pull hardness.
// A sum cannot fail, so the error is always nil; it matches the other calculators.
func Calculate(in Input) (Result, error) {
	s := string(in.Side)
	return Result{
		DieMM: in.BareMM + in.ShrinkMM + in.ReserveMM,
		Notes: s + " bare + " + s + " shrink + " + s + " reserve",
	}, nil
}
