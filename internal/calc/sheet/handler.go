package sheet

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
)

// Answers is a Collector over values already entered in a form. A missing key or null is Absent.
type Answers map[string]*float64

func (a Answers) Collect(_ context.Context, f Field) (Reading, error) {
	v, ok := a[string(f)]
	if !ok || v == nil {
		return Absent, nil
	}
	return Entered(*v), nil
}

type Payload struct {
	Standard string              `json:"standard"`
	Mode     string              `json:"mode"`
	Param    string              `json:"param"`
	Inputs   map[string]*float64 `json:"inputs"`
}

// DecodeRequest reads a calculation payload from the body and validates the menu selection.
func DecodeRequest(r *http.Request) (Request, Answers, error) {
	var p Payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		return Request{}, nil, err
	}
	std, err := ParseStandard(p.Standard)
	if err != nil {
		return Request{}, nil, err
	}
	mode, err := ParseMode(p.Mode)
	if err != nil {
		return Request{}, nil, err
	}
	req := Request{Standard: std, Mode: mode}
	if mode == Single {
		if req.Param, err = ParseKind(p.Param); err != nil {
			return Request{}, nil, err
		}
	}
	return req, Answers(p.Inputs), nil
}

type errorBody struct {
	Error   string  `json:"error"`
	Missing []Field `json:"missing,omitempty"`
}

// WriteError maps calculation errors onto HTTP responses.
func WriteError(w http.ResponseWriter, err error) {
	var body errorBody
	status := http.StatusUnprocessableEntity
	var inc *IncompleteError
	switch {
	case errors.As(err, &inc):
		body = errorBody{Error: ErrIncomplete.Error(), Missing: inc.Missing}
	case errors.Is(err, ErrComputation):
		body = errorBody{Error: err.Error()}
	default:
		log.Printf("calculation failed: %v", err)
		http.Error(w, "Calculation error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

type Handler struct{}

type fieldInfo struct {
	Key     Field     `json:"key"`
	Prompt  string    `json:"prompt"`
	Presets []float64 `json:"presets,omitempty"`
}

type kindInfo struct {
	Kind      Kind        `json:"kind"`
	Label     string      `json:"label"`
	Precision int         `json:"precision"`
	Unit      string      `json:"unit"`
	Fields    []fieldInfo `json:"fields"`
}

type option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type catalog struct {
	Standards []option    `json:"standards"`
	Modes     []option    `json:"modes"`
	Kinds     []kindInfo  `json:"kinds"`
	Full      []fieldInfo `json:"full_fields"`
}

func fieldInfos(fields []Field) []fieldInfo {
	out := make([]fieldInfo, len(fields))
	for i, f := range fields {
		out[i] = fieldInfo{Key: f, Prompt: f.Prompt(), Presets: f.Presets()}
	}
	return out
}

// Kinds lists the three menu levels and the prompts behind each parameter.
func (h *Handler) Kinds(w http.ResponseWriter, r *http.Request) {
	var c catalog
	for _, s := range Standards {
		c.Standards = append(c.Standards, option{Value: string(s), Label: s.Label()})
	}
	for _, m := range Modes {
		c.Modes = append(c.Modes, option{Value: string(m), Label: m.Label()})
	}
	for _, k := range Kinds {
		c.Kinds = append(c.Kinds, kindInfo{
			Kind:      k,
			Label:     k.Label(),
			Precision: k.Precision(),
			Unit:      Unit,
			Fields:    fieldInfos(k.Fields()),
		})
	}
	c.Full = fieldInfos(AllFields())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	req, answers, err := DecodeRequest(r)
	if err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	var res any
	if req.Mode == Full {
		res, err = RunFull(r.Context(), answers, req.Standard)
	} else {
		res, err = Run(r.Context(), answers, req.Standard, req.Param)
	}
	if err != nil {
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Printf("encode %s result: %v", req.Mode, err)
	}
}
