// SPDX-License-Identifier: MIT

package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/katalvlaran/tinynd/ndarray"
)

// RunDemo runs the demo command: a 4x5 walk-through of creation, element
// writes, bounds checking and addition.
func RunDemo(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stdout, "Usage: tinynd demo")
			return exitSuccess
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if err := runDemo(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	return exitSuccess
}

func runDemo(w io.Writer) error {
	shape := []int{4, 5}

	fmt.Fprintln(w, "--- Creating array ---")
	arr, err := ndarray.MakeArray(2, shape)
	if err != nil {
		return err
	}
	defer arr.Release()
	fmt.Fprintf(w, "Array created. Size: %d, ndim: %d\n\n", arr.Size(), arr.NDim())

	fmt.Fprintln(w, "--- Setting elements ---")
	if err := setAll(arr, 1.0); err != nil {
		return err
	}
	if err := ndarray.Fprint2D(w, arr); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Bounds checking ---")
	fmt.Fprintln(w, "Attempting to access [2, 7]...")
	err = ndarray.Set(arr, []int{2, 7}, 1.0)
	var ie *ndarray.IndexError
	if !errors.As(err, &ie) {
		return fmt.Errorf("expected an index error for [2, 7], got %v", err)
	}
	fmt.Fprintf(w, "Rejected: index %d out of range on axis %d (extent %d)\n\n", ie.Index, ie.Axis, ie.Extent)

	fmt.Fprintln(w, "--- Adding arrays ---")
	arr2, err := ndarray.MakeArray(2, shape)
	if err != nil {
		return err
	}
	defer arr2.Release()
	if err := setAll(arr2, 1.0); err != nil {
		return err
	}
	sum, err := ndarray.Add(arr, arr2)
	if err != nil {
		return err
	}
	defer sum.Release()
	if err := ndarray.Fprint2D(w, sum); err != nil {
		return err
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Releasing arrays ---")
	fmt.Fprintln(w, "Done.")

	return nil
}

// setAll writes v at every index of a 2-D array through Set.
func setAll(a *ndarray.NDArray, v float64) error {
	shape := a.Shape()
	for i := 0; i < shape[0]; i++ {
		for j := 0; j < shape[1]; j++ {
			if err := ndarray.Set(a, []int{i, j}, v); err != nil {
				return err
			}
		}
	}

	return nil
}
