package sheet

import (
	"strconv"
	"strings"
)

// Reading is one collected value. Present is false when the operator cancelled the prompt.
type Reading struct {
	Value   float64
	Present bool
}

// Absent is the Reading of a cancelled prompt.
var Absent = Reading{}

func Entered(v float64) Reading {
	return Reading{Value: v, Present: true}
}

// InputSet holds the readings for one calculation attempt, keyed by field in a fixed order.
type InputSet struct {
	fields []Field
	values map[Field]Reading
}

func NewInputSet(fields ...Field) *InputSet {
	return &InputSet{
		fields: append([]Field(nil), fields...),
		values: make(map[Field]Reading, len(fields)),
	}
}

func (s *InputSet) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// Set records a reading. Fields outside the set are ignored.
func (s *InputSet) Set(f Field, r Reading) {
	for _, known := range s.fields {
		if known == f {
			s.values[f] = r
			return
		}
	}
}

func (s *InputSet) Get(f Field) Reading {
	return s.values[f]
}

// Missing returns the absent fields among want, in the order given.
func (s *InputSet) Missing(want ...Field) []Field {
	if len(want) == 0 {
		want = s.fields
	}
	var out []Field
	for _, f := range want {
		if !s.values[f].Present {
			out = append(out, f)
		}
	}
	return out
}

func (s *InputSet) Complete() bool {
	return len(s.Missing()) == 0
}

// Echo renders the given fields as "key=value" pairs for display on a result.
func (s *InputSet) Echo(fields ...Field) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		r := s.values[f]
		if !r.Present {
			continue
		}
		parts = append(parts, string(f)+"="+strconv.FormatFloat(r.Value, 'f', -1, 64))
	}
	return strings.Join(parts, ", ")
}
