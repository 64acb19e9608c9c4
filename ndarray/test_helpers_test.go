// SPDX-License-Identifier: MIT
// Package ndarray_test contains test helpers.
//
// Purpose:
//   - Small deterministic fixtures and assertions shared across test files.

package ndarray_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/tinynd/ndarray"
)

// tol is the absolute tolerance for float comparisons.
const tol = 1e-9

// MustNew allocates a zero-filled array or fails the test.
func MustNew(tb testing.TB, shape ...int) *ndarray.NDArray {
	tb.Helper()
	a, err := ndarray.New(shape...)
	if err != nil {
		tb.Fatalf("New(%v): %v", shape, err)
	}

	return a
}

// MustFromSlice builds an array from row-major values or fails the test.
func MustFromSlice(tb testing.TB, vals []float64, shape ...int) *ndarray.NDArray {
	tb.Helper()
	a, err := ndarray.FromSlice(vals, shape...)
	if err != nil {
		tb.Fatalf("FromSlice(%v): %v", shape, err)
	}

	return a
}

// MustAt reads a(idx...) or fails the test.
func MustAt(tb testing.TB, a *ndarray.NDArray, idx ...int) float64 {
	tb.Helper()
	v, err := a.At(idx...)
	if err != nil {
		tb.Fatalf("At(%v): %v", idx, err)
	}

	return v
}

// seq returns [start, start+1, ..., start+n-1].
func seq(n int, start float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}

	return out
}

// randomValues returns n deterministic U(-1,1) values for a fixed seed.
func randomValues(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]float64, n)
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}

// allClose reports whether every |got[i]-want[i]| <= eps.
func allClose(got, want []float64, eps float64) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if math.Abs(got[i]-want[i]) > eps {
			return false
		}
	}

	return true
}

// product returns Π shape (1 for empty).
func product(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}

	return n
}
