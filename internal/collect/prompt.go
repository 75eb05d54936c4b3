// Package collect reads process-sheet measurements from an operator at a terminal.
package collect

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	sheet "Wiresheet/internal/calc/sheet"
)

const invalidNumber = "Please enter a valid number!"

// Prompter is a sheet.Collector over a line-oriented terminal.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// isCancel reports whether a line means "stop asking". End of input counts too.
func isCancel(line string) bool {
	switch strings.ToLower(line) {
	case "", "q", "quit", "cancel":
		return true
	}
	return false
}

// readLine returns the next trimmed line, or ok=false at end of input.
func (p *Prompter) readLine(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !p.in.Scan() {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}
		if err := p.in.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}
	return strings.TrimSpace(p.in.Text()), true, nil
}

// Collect asks for f until a finite number is entered or the operator cancels.
func common(f sheet.Field) string {
	vals := f.Presets()
	if len(vals) == 0 {
		return ""
	}
	s := make([]string, len(vals))
	for i, v := range vals {
		s[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return " (common: " + strings.Join(s, ", ") + ")"
}

func (p *Prompter) Collect(ctx context.Context, f sheet.Field) (sheet.Reading, error) {
	for {
		fmt.Fprintf(p.out, "Enter %s%s: ", f.Prompt(), common(f))
		line, ok, err := p.readLine(ctx)
		if err != nil {
			return sheet.Absent, err
		}
		if !ok || isCancel(line) {
			fmt.Fprintln(p.out)
			return sheet.Absent, nil
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			fmt.Fprintln(p.out, invalidNumber)
			continue
		}
		return sheet.Entered(v), nil
	}
}

// Choose prints a numbered menu and returns the picked index (0-based).
// ok is false when the operator backs out.
func (p *Prompter) Choose(ctx context.Context, title string, options []string) (int, bool, error) {
	for {
		fmt.Fprintf(p.out, "\n%s\n", title)
		for i, o := range options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, o)
		}
		fmt.Fprint(p.out, "Select (blank to go back): ")
		line, ok, err := p.readLine(ctx)
		if err != nil {
			return 0, false, err
		}
		if !ok || isCancel(line) {
			return 0, false, nil
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(options) {
			fmt.Fprintf(p.out, "Please pick 1-%d.\n", len(options))
			continue
		}
		return n - 1, true, nil
	}
}

// Confirm asks a yes/no question; anything but y/yes is no.
func (p *Prompter) Confirm(ctx context.Context, question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	line, ok, err := p.readLine(ctx)
	if err != nil || !ok {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
