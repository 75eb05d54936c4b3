package sheet

import (
	"errors"
	"math"
	"testing"

	film "Wiresheet/internal/calc/film"
)

func inputs(kind Kind, values ...float64) *InputSet {
	set := NewInputSet(kind.Fields()...)
	for i, f := range kind.Fields() {
		if i < len(values) {
			set.Set(f, Entered(values[i]))
		}
	}
	return set
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name      string
		kind      Kind
		values    []float64
		want      float64
		precision int
	}{
		{"a film scenario", AFilm, []float64{3, 2.0, 0.5, 0.1}, 0.45, 2},
		{"b film scenario", BFilm, []float64{3.0, 0.6, 0.2, 0.15}, 0.725, 4},
		{"a die scenario", ADie, []float64{1.0, 0.05, 0.02}, 1.07, 4},
		{"b die", BDie, []float64{2.24, 0.03, 0.01}, 2.28, 4},
		{"a film rounds to 2 places", AFilm, []float64{1, 1.456, 1, 0}, 0.46, 2},
		{"a die rounds to 4 places", ADie, []float64{0.12344, 0, 0}, 0.1234, 4},
		{"b die rounds half away from zero", BDie, []float64{1.00006, 0, 0}, 1.0001, 4},
		{"negative film is not rejected", BFilm, []float64{1.0, 0.6, 0.1, 0.1}, -0.2, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.kind, inputs(tt.kind, tt.values...))
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if math.Abs(got.Value-tt.want) > 1e-9 {
				t.Errorf("Evaluate() value = %v, want %v", got.Value, tt.want)
			}
			if got.Precision != tt.precision {
				t.Errorf("Evaluate() precision = %d, want %d", got.Precision, tt.precision)
			}
			if got.Kind != tt.kind || got.Unit != "mm" {
				t.Errorf("Evaluate() kind/unit = %s/%s", got.Kind, got.Unit)
			}
		})
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	in := inputs(BFilm, 3.0, 0.6, 0.2, 0.15)
	first, err := Evaluate(BFilm, in)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Evaluate(BFilm, in)
		if err != nil {
			t.Fatal(err)
		}
		if again != first {
			t.Fatalf("Evaluate() run %d = %+v, want %+v", i, again, first)
		}
	}
}

func TestEvaluateIncomplete(t *testing.T) {
	for _, kind := range Kinds {
		fields := kind.Fields()
		for skip := range fields {
			set := NewInputSet(fields...)
			for i, f := range fields {
				if i != skip {
					set.Set(f, Entered(1))
				}
			}
			_, err := Evaluate(kind, set)
			if !errors.Is(err, ErrIncomplete) {
				t.Fatalf("%s without %s: error = %v, want ErrIncomplete", kind, fields[skip], err)
			}
			var inc *IncompleteError
			if !errors.As(err, &inc) || len(inc.Missing) != 1 || inc.Missing[0] != fields[skip] {
				t.Errorf("%s without %s: missing = %v", kind, fields[skip], inc)
			}
			if errors.Is(err, ErrComputation) {
				t.Errorf("%s: incomplete must not be a computation error", kind)
			}
		}
	}
}

func TestEvaluateDegenerate(t *testing.T) {
	_, err := Evaluate(AFilm, inputs(AFilm, -1, 2.0, 0.5, 0.1))
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("Evaluate(n=-1) error = %v, want ErrComputation", err)
	}
	if !errors.Is(err, film.ErrDivisionByZero) {
		t.Errorf("Evaluate(n=-1) error = %v, want wrapped ErrDivisionByZero", err)
	}
	if errors.Is(err, ErrIncomplete) {
		t.Errorf("degenerate input must not be reported as cancellation")
	}
}

func TestEvaluateNonFinite(t *testing.T) {
	_, err := Evaluate(ADie, inputs(ADie, math.MaxFloat64, math.MaxFloat64, 0))
	if !errors.Is(err, ErrComputation) {
		t.Fatalf("Evaluate(overflow) error = %v, want ErrComputation", err)
	}
}

func TestEvaluateLargeFiniteValue(t *testing.T) {
	tests := []struct {
		name   string
		kind   Kind
		values []float64
		want   float64
	}{
		{"a die scaled past float range", ADie, []float64{1e306, 0, 0}, 1e306},
		{"b film scaled past float range", BFilm, []float64{-4e305, 0, 0, 0}, -2e305},
		{"a film scaled past float range", AFilm, []float64{1, math.MaxFloat64 / 2, 0, 0}, math.MaxFloat64 / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Evaluate(tt.kind, inputs(tt.kind, tt.values...))
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if math.IsInf(got.Value, 0) || math.IsNaN(got.Value) {
				t.Fatalf("Evaluate() value = %v, want a finite number", got.Value)
			}
			if got.Value != tt.want {
				t.Errorf("Evaluate() value = %v, want %v", got.Value, tt.want)
			}
		})
	}
}

func TestEvaluateFormula(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{AFilm, "{a transposed - [a bare x (n+1)/2 + paper]} / ((n+1)/2)"},
		{BFilm, "[b transposed - (b bare x 2 + paper + center paper)] / 2"},
		{ADie, "a bare + a shrink + a reserve"},
		{BDie, "b bare + b shrink + b reserve"},
	}
	for _, tt := range tests {
		got, err := Evaluate(tt.kind, inputs(tt.kind, 1, 1, 1, 1))
		if err != nil {
			t.Fatalf("Evaluate(%s) error = %v", tt.kind, err)
		}
		if got.Formula != tt.want {
			t.Errorf("Evaluate(%s) formula = %q, want %q", tt.kind, got.Formula, tt.want)
		}
	}
}

func TestEvaluateUnknownKind(t *testing.T) {
	if _, err := Evaluate(Kind("c_film"), NewInputSet()); err == nil {
		t.Fatal("Evaluate(unknown) expected error")
	}
}

func TestResultFormatted(t *testing.T) {
	r := Result{Value: 0.725, Precision: 4}
	if got := r.Formatted(); got != "0.725" {
		t.Errorf("Formatted() = %q, want 0.725", got)
	}
}
