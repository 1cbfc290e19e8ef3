// Command calcinfo prints digit-serial function results next to a
// reference implementation.
//
// Usage:
//
//	calcinfo [flags] [function ...]
//
// Without arguments it prints every function.
//
// Examples:
//
//	calcinfo ln exp
//	calcinfo -size 12 -ref decimal -prec 50 ln
//	calcinfo -rel exp
//	calcinfo -roundtrip ln tan
//	calcinfo -list
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-calc/calc"
	"github.com/cwbudde/algo-calc/calc/core"
	"github.com/cwbudde/algo-calc/measure/accuracy"
	"github.com/cwbudde/algo-calc/stats/errstat"
)

type options struct {
	size      int
	ref       string
	prec      uint
	relative  bool
	roundTrip bool
}

func main() {
	var opts options
	flag.IntVar(&opts.size, "size", core.DefaultTableSize, fmt.Sprintf("constant table size (1..%d)", core.MaxTableSize))
	flag.StringVar(&opts.ref, "ref", "stdlib", "reference implementation: stdlib, decimal or fast")
	flag.UintVar(&opts.prec, "prec", accuracy.DefaultDecimalPrecision, "significant digits of the decimal reference")
	flag.BoolVar(&opts.relative, "rel", false, "report relative instead of absolute errors")
	flag.BoolVar(&opts.roundTrip, "roundtrip", false, "compare inverse(f(x)) with x instead of a reference")
	list := flag.Bool("list", false, "list available function names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: calcinfo [flags] [function ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints digit-serial results against a reference implementation.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints all functions.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  calcinfo ln exp\n")
		fmt.Fprintf(os.Stderr, "  calcinfo -size 12 -ref decimal -prec 50 ln\n")
		fmt.Fprintf(os.Stderr, "  calcinfo -roundtrip ln tan\n")
		fmt.Fprintf(os.Stderr, "  calcinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList(os.Stdout)
		return
	}

	if err := run(os.Stdout, os.Stderr, opts, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printList(w io.Writer) {
	for _, f := range calc.Default().Functions() {
		inv, ok := calc.Inverse(f.Name)
		if !ok {
			inv = "-"
		}
		fmt.Fprintf(w, "%s\t(inverse %s)\n", f.Name, inv)
	}
}

func run(stdout, stderr io.Writer, opts options, names []string) error {
	if opts.size < 1 || opts.size > core.MaxTableSize {
		return fmt.Errorf("table size %d out of range 1..%d", opts.size, core.MaxTableSize)
	}
	c, err := calc.New(core.WithTableSize(opts.size))
	if err != nil {
		return err
	}
	ref, err := accuracy.ParseReference(opts.ref, uint32(opts.prec))
	if err != nil {
		return err
	}

	funcs := resolveFuncs(stderr, c, names)
	if len(funcs) == 0 {
		return errors.New("no matching functions")
	}

	var overall errstat.Accumulator
	for _, f := range funcs {
		rep, err := report(c, f, ref, opts)
		if errors.Is(err, accuracy.ErrUnsupported) {
			fmt.Fprintf(stderr, "warning: reference %s has no %s, skipped\n", ref.Name(), f.Name)
			continue
		}
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s: %v\n", f.Name, err)
			continue
		}
		if err := printReport(stdout, rep, opts.size); err != nil {
			return err
		}
		diffs := make([]float64, 0, len(rep.Rows))
		for _, r := range rep.Rows {
			if r.OK() {
				diffs = append(diffs, r.Diff)
			}
		}
		overall.Update(diffs)
	}

	s := overall.Result()
	if s.Length == 0 {
		return errors.New("no results")
	}
	_, err = fmt.Fprintf(stdout, "overall: %d values, max |error| %.3e, rms %.3e, %.1f digits\n",
		s.Length, s.MaxAbs, s.RMS, s.Digits)
	return err
}

func resolveFuncs(stderr io.Writer, c *calc.Calculator, names []string) []calc.Func {
	if len(names) == 0 {
		return c.Functions()
	}
	var result []calc.Func
	for _, name := range names {
		f, ok := c.Lookup(name)
		if !ok {
			fmt.Fprintf(stderr, "warning: unknown function %q (use -list to see available)\n", strings.TrimSpace(name))
			continue
		}
		result = append(result, f)
	}
	return result
}

func report(c *calc.Calculator, f calc.Func, ref accuracy.Reference, opts options) (accuracy.Report, error) {
	var aopts []accuracy.Option
	if opts.relative || accuracy.DefaultRelative(f.Name) {
		aopts = append(aopts, accuracy.WithRelative())
	}
	inputs := accuracy.DefaultInputs(f.Name)

	if !opts.roundTrip {
		return accuracy.Compare(f.Name, f.Eval, ref, inputs, aopts...)
	}

	invName, ok := calc.Inverse(f.Name)
	if !ok {
		return accuracy.Report{}, errors.New("no inverse for round trip")
	}
	inv, _ := c.Lookup(invName)
	return accuracy.RoundTrip(invName+"("+f.Name+"(x))", f.Eval, inv.Eval, inputs, aopts...)
}

func printReport(w io.Writer, rep accuracy.Report, size int) error {
	kind := "absolute"
	if rep.Relative {
		kind = "relative"
	}
	if _, err := fmt.Fprintf(w, "%s vs %s (table size %d, %s error)\n", rep.Function, rep.Reference, size, kind); err != nil {
		return fmt.Errorf("failed to write report header: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "x\tresult\treference\terror\n-\t------\t---------\t-----\n"); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	for _, r := range rep.Rows {
		var err error
		switch {
		case r.Err != nil:
			_, err = fmt.Fprintf(tw, "%.15g\t%.15g\t%s\t%v\n", r.X, core.Sentinel(r.Got, r.Err), formatValue(r.Want, r.RefErr), r.Err)
		case r.RefErr != nil:
			_, err = fmt.Fprintf(tw, "%.15g\t%.15g\t-\t%v\n", r.X, r.Got, r.RefErr)
		default:
			_, err = fmt.Fprintf(tw, "%.15g\t%.15g\t%.15g\t%.3e\n", r.X, r.Got, r.Want, r.Diff)
		}
		if err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	s := rep.Stats
	pos := "-"
	if s.MaxAbsPos >= 0 && s.Length > 0 {
		pos = fmt.Sprintf("%.15g", okRow(rep.Rows, s.MaxAbsPos).X)
	}
	digits := fmt.Sprintf("%.1f", s.Digits)
	if math.IsInf(s.Digits, 1) {
		digits = "exact"
	}
	_, err := fmt.Fprintf(w, "max |error| %.3e at x=%s, rms %.3e, %s digits, %d failed\n\n",
		s.MaxAbs, pos, s.RMS, digits, rep.Failures)
	return err
}

// okRow returns the i-th row that has both values.
func okRow(rows []accuracy.Row, i int) accuracy.Row {
	for _, r := range rows {
		if !r.OK() {
			continue
		}
		if i == 0 {
			return r
		}
		i--
	}
	return accuracy.Row{X: math.NaN()}
}

func formatValue(v float64, err error) string {
	if err != nil {
		return "-"
	}
	return fmt.Sprintf("%.15g", v)
}
