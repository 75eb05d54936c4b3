package sheet

import "fmt"

// Kind is the process-sheet parameter being solved for.
type Kind string

const (
	AFilm Kind = "a_film"
	BFilm Kind = "b_film"
	ADie  Kind = "a_die"
	BDie  Kind = "b_die"
)

// Kinds lists every parameter in menu order.
var Kinds = []Kind{AFilm, BFilm, ADie, BDie}

// Field is one named measurement prompted from the operator.
type Field string

const (
	N           Field = "n"
	ATransposed Field = "a_transposed_thickness"
	ABare       Field = "a_bare_thickness"
	Paper       Field = "paper_thickness"
	BTransposed Field = "b_transposed_thickness"
	BBare       Field = "b_bare_thickness"
	CenterPaper Field = "center_paper_thickness"
	AShrink     Field = "a_shrink_ratio"
	AReserve    Field = "a_reserve_margin"
	BShrink     Field = "b_shrink_ratio"
	BReserve    Field = "b_reserve_margin"
)

const Unit = "mm"

type kindSpec struct {
	label     string
	precision int
	fields    []Field
}

var kindSpecs = map[Kind]kindSpec{
	AFilm: {"a-side film thickness", 2, []Field{N, ATransposed, ABare, Paper}},
	BFilm: {"b-side film thickness", 4, []Field{BTransposed, BBare, Paper, CenterPaper}},
	ADie:  {"a-side extrusion die size", 4, []Field{ABare, AShrink, AReserve}},
	BDie:  {"b-side extrusion die size", 4, []Field{BBare, BShrink, BReserve}},
}

var prompts = map[Field]string{
	N:           "Wire count n",
	ATransposed: "a-side transposed thickness (mm)",
	ABare:       "a-side bare thickness (mm)",
	Paper:       "Insulation paper thickness (mm)",
	BTransposed: "b-side transposed thickness (mm)",
	BBare:       "b-side bare thickness (mm)",
	CenterPaper: "Center paper thickness (mm)",
	AShrink:     "a-side shrink ratio (mm)",
	AReserve:    "a-side reserved die-pull hardness (mm)",
	BShrink:     "b-side shrink ratio (mm)",
	BReserve:    "b-side reserved die-pull hardness (mm)",
}

// Common values offered next to the prompt. Operators may still enter anything.
var presets = map[Field][]float64{
	N:           {1, 2},
	Paper:       {0.45, 1.35},
	CenterPaper: {2.45, 3.00},
}

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := kindSpecs[k]; !ok {
		return "", fmt.Errorf("unknown parameter %q", s)
	}
	return k, nil
}

func (k Kind) Label() string { return kindSpecs[k].label }

// Precision is the number of decimal places the result is rounded to.
func (k Kind) Precision() int { return kindSpecs[k].precision }

// Fields returns the required inputs in prompt order.
func (k Kind) Fields() []Field {
	return append([]Field(nil), kindSpecs[k].fields...)
}

func (f Field) Prompt() string {
	if p, ok := prompts[f]; ok {
		return p
	}
	return string(f)
}

// Presets returns the field's common values, or nil when it has none.
func (f Field) Presets() []float64 {
	return append([]float64(nil), presets[f]...)
}

// AllFields is the union of every kind's inputs, in first-appearance order.
func AllFields() []Field {
	seen := make(map[Field]bool)
	var out []Field
	for _, k := range Kinds {
		for _, f := range kindSpecs[k].fields {
			if seen[f] {
				continue
			}
			seen[f] = true
			out = append(out, f)
		}
	}
	return out
}

// Standard is the customer standard a sheet is issued under. Formulas do not depend on it.
type Standard string

const (
	ShenBian Standard = "shenbian"
	HengBian Standard = "hengbian"
)

var Standards = []Standard{ShenBian, HengBian}

func ParseStandard(s string) (Standard, error) {
	switch Standard(s) {
	case ShenBian, HengBian:
		return Standard(s), nil
	}
	return "", fmt.Errorf("unknown standard %q", s)
}

func (s Standard) Label() string {
	switch s {
	case ShenBian:
		return "Shenbian standard"
	case HengBian:
		return "Hengbian standard"
	}
	return string(s)
}

type Mode string

const (
	Single Mode = "single"
	Full   Mode = "full"
)

var Modes = []Mode{Single, Full}

// ParseMode treats an empty string as Single.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", Single:
		return Single, nil
	case Full:
		return Full, nil
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

func (m Mode) Label() string {
	if m == Full {
		return "Full-parameter calculation"
	}
	return "Single-parameter calculation"
}
