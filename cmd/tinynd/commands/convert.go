// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tinynd/codec"
	"github.com/katalvlaran/tinynd/ndarray"
)

// ConvertOptions configures the convert command.
type ConvertOptions struct {
	Input  string
	Output string
	Arange string // "start,stop,step"; selects write mode
	Shape  string // "d0,d1,..."; optional reshape of the arange values
}

// RunConvert runs the convert command. With -arange it writes a snapshot
// of Arange(start, stop, step) to -o; otherwise it prints the snapshot
// file given as argument.
func RunConvert(args []string, stdout, stderr io.Writer) int {
	opts, err := parseConvertArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		printConvertUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if opts.Arange != "" {
		if err := writeArange(opts, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitCommandError
		}
		return exitSuccess
	}

	if opts.Input == "" {
		fmt.Fprintln(stderr, "Error: no input file specified")
		printConvertUsage(stderr)
		return exitCommandError
	}

	a, err := codec.ReadFile(opts.Input)
	if err != nil {
		fmt.Fprintf(stderr, "Error reading %s: %v\n", opts.Input, err)
		return exitCommandError
	}
	defer a.Release()

	if a.NDim() == 2 {
		err = ndarray.Fprint2D(stdout, a)
	} else {
		_, err = fmt.Fprintf(stdout, "Shape: %v\n%s\n", a.Shape(), a)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return exitCommandError
	}

	return exitSuccess
}

func writeArange(opts ConvertOptions, stdout io.Writer) error {
	if opts.Output == "" {
		return errors.New("-arange requires -o")
	}
	bounds, err := parseFloats(opts.Arange, 3)
	if err != nil {
		return fmt.Errorf("-arange: %w", err)
	}

	a, err := ndarray.Arange(bounds[0], bounds[1], bounds[2])
	if err != nil {
		return err
	}
	defer a.Release()

	out := a
	if opts.Shape != "" {
		shape, err := parseInts(opts.Shape)
		if err != nil {
			return fmt.Errorf("-shape: %w", err)
		}
		if out, err = ndarray.FromSlice(a.Values(), shape...); err != nil {
			return err
		}
		defer out.Release()
	}

	if err := codec.WriteFile(opts.Output, out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Wrote %s (shape %v)\n", opts.Output, out.Shape())

	return nil
}

func parseFloats(s string, n int) ([]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated numbers, got %q", n, s)
	}
	out := make([]float64, n)
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", p)
		}
		out[i] = v
	}

	return out, nil
}

func parseInts(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("bad axis size %q", p)
		}
		out[i] = v
	}

	return out, nil
}

func parseConvertArgs(args []string, stderr io.Writer) (ConvertOptions, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(stderr)
	opts := ConvertOptions{}

	fs.StringVar(&opts.Output, "o", "", "Output snapshot file")
	fs.StringVar(&opts.Output, "output", "", "Output snapshot file")
	fs.StringVar(&opts.Arange, "arange", "", "start,stop,step of the values to write")
	fs.StringVar(&opts.Shape, "shape", "", "Axis sizes for the written values")

	fs.Usage = func() {}

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	remaining := fs.Args()
	if len(remaining) > 0 {
		opts.Input = remaining[0]
	}

	return opts, nil
}

func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: tinynd convert [options] [<snapshot-file>]

Options:
  -arange     start,stop,step of the values to write
  -shape      Axis sizes for the written values (default: 1-D)
  -o, -output Output snapshot file (required with -arange)

Examples:
  tinynd convert -arange 0,12,1 -shape 3,4 -o a.cbor
  tinynd convert a.cbor`)
}
