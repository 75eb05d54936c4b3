package sheet

import (
	"context"
	"errors"
	"fmt"
)

// Collector asks the operator for one field. A cancelled prompt returns Absent and a nil error;
// the error is reserved for failures of the underlying terminal or request.
type Collector interface {
	Collect(ctx context.Context, f Field) (Reading, error)
}

// Request is the operator's menu selection: standard, then mode, then parameter.
type Request struct {
	Standard Standard `json:"standard"`
	Mode     Mode     `json:"mode"`
	Param    Kind     `json:"param,omitempty"`
}

// Outcome is one parameter of a full-mode sheet. Exactly one of Result and Err is set.
type Outcome struct {
	Kind   Kind    `json:"kind"`
	Result *Result `json:"result,omitempty"`
	Err    error   `json:"-"`
	Error  string  `json:"error,omitempty"`
}

// Sheet is everything a rendered process sheet shows.
type Sheet struct {
	Standard Standard  `json:"standard"`
	Mode     Mode      `json:"mode"`
	Inputs   string    `json:"inputs"`
	Outcomes []Outcome `json:"outcomes"`
}

// Gather prompts each field in order. The first cancelled field ends collection;
// it and every field after it are reported as missing and are not prompted.
func Gather(ctx context.Context, c Collector, fields []Field) (*InputSet, error) {
	set := NewInputSet(fields...)
	for i, f := range fields {
		if err := ctx.Err(); err != nil {
			return set, err
		}
		r, err := c.Collect(ctx, f)
		if err != nil {
			return set, fmt.Errorf("collect %s: %w", f, err)
		}
		if !r.Present {
			return set, &IncompleteError{Missing: append([]Field(nil), fields[i:]...)}
		}
		set.Set(f, r)
	}
	return set, nil
}

// Run performs one single-parameter attempt: collect every field of kind, evaluate, return.
func Run(ctx context.Context, c Collector, std Standard, kind Kind) (Result, error) {
	if _, ok := kindSpecs[kind]; !ok {
		return Result{}, fmt.Errorf("unknown parameter %q", kind)
	}
	set, err := Gather(ctx, c, kind.Fields())
	if err != nil {
		return Result{}, err
	}
	res, err := Evaluate(kind, set)
	if err != nil {
		return Result{}, err
	}
	res.Standard = std
	res.Mode = Single
	return res, nil
}

// RunFull collects the union of all fields once and evaluates every parameter.
// A computation error is kept on its own outcome; cancellation aborts the whole sheet.
func RunFull(ctx context.Context, c Collector, std Standard) (Sheet, error) {
	fields := AllFields()
	set, err := Gather(ctx, c, fields)
	if err != nil {
		return Sheet{}, err
	}
	sh := Sheet{Standard: std, Mode: Full, Inputs: set.Echo(fields...)}
	for _, k := range Kinds {
		res, err := Evaluate(k, set)
		if err != nil {
			if !errors.Is(err, ErrComputation) {
				return Sheet{}, err
			}
			sh.Outcomes = append(sh.Outcomes, Outcome{Kind: k, Err: err, Error: err.Error()})
			continue
		}
		res.Standard = std
		res.Mode = Full
		sh.Outcomes = append(sh.Outcomes, Outcome{Kind: k, Result: &res})
	}
	return sh, nil
}

// Execute runs the request in its mode and returns the sheet to display.
// In single mode any error, including a computation error, is returned.
func Execute(ctx context.Context, c Collector, req Request) (Sheet, error) {
	if req.Mode == Full {
		return RunFull(ctx, c, req.Standard)
	}
	res, err := Run(ctx, c, req.Standard, req.Param)
	if err != nil {
		return Sheet{}, err
	}
	return Sheet{
		Standard: req.Standard,
		Mode:     Single,
		Inputs:   res.Inputs,
		Outcomes: []Outcome{{Kind: res.Kind, Result: &res}},
	}, nil
}
