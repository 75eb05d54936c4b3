package main

import (
	export "Wiresheet/internal/calc/export"
	report "Wiresheet/internal/calc/report"
	sheet "Wiresheet/internal/calc/sheet"
	collect "Wiresheet/internal/collect"
	config "Wiresheet/internal/config"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
)

type session struct {
	p   *collect.Prompter
	out io.Writer
	cfg *config.AppConfig
}

func main() {
	configPath := flag.String("config", config.DefaultPath, "path to config.toml")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go watchInterrupt(sigs, cancel, os.Stdin, os.Exit, interruptGrace)

	s := &session{p: collect.NewPrompter(os.Stdin, os.Stdout), out: os.Stdout, cfg: cfg}
	if err := s.run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

const interruptGrace = 500 * time.Millisecond

// watchInterrupt cancels the session on the first signal and closes stdin.
// Closing stdin does not wake a read already blocked on a terminal, so if the
// session has not returned after grace, or a second signal arrives, the
// process exits with status 130.
func watchInterrupt(sigs <-chan os.Signal, cancel context.CancelFunc, stdin io.Closer, exit func(int), grace time.Duration) {
	<-sigs
	cancel()
	stdin.Close()
	select {
	case <-sigs:
	case <-time.After(grace):
	}
	exit(130)
}

// run walks standard -> mode -> parameter until the operator backs out of the top menu.
func (s *session) run(ctx context.Context) error {
	fmt.Fprintln(s.out, "Process Sheet Calculation")

	standards := make([]string, len(sheet.Standards))
	for i, st := range sheet.Standards {
		standards[i] = st.Label()
	}
	modes := make([]string, len(sheet.Modes))
	for i, m := range sheet.Modes {
		modes[i] = m.Label()
	}
	params := make([]string, len(sheet.Kinds))
	for i, k := range sheet.Kinds {
		params[i] = k.Label()
	}

	for {
		si, ok, err := s.p.Choose(ctx, "Standard", standards)
		if err != nil || !ok {
			return err
		}
		std := sheet.Standards[si]

		for {
			mi, ok, err := s.p.Choose(ctx, std.Label(), modes)
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			req := sheet.Request{Standard: std, Mode: sheet.Modes[mi]}

			if req.Mode == sheet.Full {
				if err := s.calculate(ctx, req); err != nil {
					return err
				}
				continue
			}
			for {
				ki, ok, err := s.p.Choose(ctx, req.Mode.Label(), params)
				if err != nil {
					return err
				}
				if !ok {
					break
				}
				req.Param = sheet.Kinds[ki]
				if err := s.calculate(ctx, req); err != nil {
					return err
				}
			}
		}
	}
}

// calculate runs one attempt and shows the outcome. Only terminal failures are returned.
func (s *session) calculate(ctx context.Context, req sheet.Request) error {
	sh, err := sheet.Execute(ctx, s.p, req)
	switch {
	case errors.Is(err, sheet.ErrIncomplete):
		fmt.Fprintln(s.out, sheet.ErrIncomplete)
		return nil
	case errors.Is(err, sheet.ErrComputation):
		fmt.Fprintf(s.out, "Calculation failed: %v\n", err)
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(s.out, "\n[%s]\n", sh.Title())
	for _, o := range sh.Outcomes {
		if o.Result == nil {
			fmt.Fprintf(s.out, "%s: %s\n", o.Kind.Label(), o.Error)
			continue
		}
		fmt.Fprintf(s.out, "%s result: %s %s\n", o.Result.Label, o.Result.Formatted(), o.Result.Unit)
		fmt.Fprintf(s.out, "  formula: %s\n", o.Result.Formula)
	}

	save, err := s.p.Confirm(ctx, "Save process sheet (PDF and XLSX)?")
	if err != nil || !save {
		return err
	}
	paths, err := s.save(sh)
	if err != nil {
		log.Printf("save process sheet: %v", err)
		fmt.Fprintln(s.out, "Could not save the process sheet.")
		return nil
	}
	for _, p := range paths {
		fmt.Fprintf(s.out, "Saved %s\n", p)
	}
	return nil
}

func (s *session) save(sh sheet.Sheet) ([]string, error) {
	dir, err := config.EnsureOutputDir(s.cfg)
	if err != nil {
		return nil, err
	}
	h := sheet.NewHeader(s.cfg.Sheet.Company)
	renderers := []struct {
		ext    string
		render func(io.Writer, sheet.Header, sheet.Sheet) error
	}{
		{".pdf", report.Render},
		{".xlsx", export.Render},
	}

	var paths []string
	for _, r := range renderers {
		path := filepath.Join(dir, h.Number+r.ext)
		f, err := os.Create(path)
		if err != nil {
			return paths, err
		}
		err = r.render(f, h, sh)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return paths, fmt.Errorf("%s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
