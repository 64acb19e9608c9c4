// SPDX-License-Identifier: MIT

package ndarray

import (
	"fmt"
	"math"
)

// arangeEpsilon shifts the stop bound toward start so that a value landing
// exactly on stop is excluded while values just short of it are kept.
const arangeEpsilon = 1e-10

// Zeros returns a zero-filled array; identical to MakeArray.
func Zeros(ndim int, shape []int) (*NDArray, error) {
	return MakeArray(ndim, shape)
}

// Ones returns an array with every element set to 1.0.
func Ones(ndim int, shape []int) (*NDArray, error) {
	return fullOf(ndim, shape, 1.0)
}

// Full returns an array of the given axis sizes with every element set to value.
func Full(value float64, shape ...int) (*NDArray, error) {
	if shape == nil {
		shape = []int{}
	}

	return fullOf(len(shape), shape, value)
}

func fullOf(ndim int, shape []int, value float64) (*NDArray, error) {
	arr, err := MakeArray(ndim, shape)
	if err != nil {
		return nil, err
	}
	for i := range arr.data {
		arr.data[i] = value
	}

	return arr, nil
}

// FromSlice builds an array of the given axis sizes from row-major values.
// values is copied.
//
// Errors:
//   - ErrInvalidArgument for nil values.
//   - ErrShapeMismatch when len(values) != product(shape).
//   - Shape errors from MakeArray.
func FromSlice(values []float64, shape ...int) (*NDArray, error) {
	if values == nil {
		return nil, ndErrorf(opFromSlice, fmt.Errorf("nil values: %w", ErrInvalidArgument))
	}
	arr, err := New(shape...)
	if err != nil {
		return nil, ndErrorf(opFromSlice, err)
	}
	if len(values) != arr.size {
		return nil, ndErrorf(opFromSlice, fmt.Errorf("%d values for shape %v (size %d): %w",
			len(values), shape, arr.size, ErrShapeMismatch))
	}
	copy(arr.data, values)

	return arr, nil
}

// Arange returns the 1-D array of evenly spaced values start, start+step, ...
// over the half-open interval [start, stop).
//
// Implementation:
//   - Stage 1: reject non-finite arguments, step == 0, and a start/stop
//     order that disagrees with the sign of step.
//   - Stage 2: count = floor((stop - start - ε·sign(step)) / step) + 1.
//   - Stage 3: data[0] = start, data[i] = start + i*step.
//
// Errors:
//   - ErrInvalidArgument; ErrAllocationFailure for absurd counts.
func Arange(start, stop, step float64) (*NDArray, error) {
	switch {
	case !isFinite(start) || !isFinite(stop) || !isFinite(step):
		return nil, ndErrorf(opArange, fmt.Errorf("non-finite bound (%g, %g, %g): %w", start, stop, step, ErrInvalidArgument))
	case step == 0:
		return nil, ndErrorf(opArange, fmt.Errorf("step cannot be zero: %w", ErrInvalidArgument))
	case step > 0 && start >= stop:
		return nil, ndErrorf(opArange, fmt.Errorf("start %g must be less than stop %g for positive step: %w", start, stop, ErrInvalidArgument))
	case step < 0 && start <= stop:
		return nil, ndErrorf(opArange, fmt.Errorf("start %g must be greater than stop %g for negative step: %w", start, stop, ErrInvalidArgument))
	}

	count := math.Floor((stop-start-math.Copysign(arangeEpsilon, step))/step) + 1
	if count > MaxElements {
		return nil, ndErrorf(opArange, fmt.Errorf("%g elements: %w", count, ErrAllocationFailure))
	}
	// start itself is always inside [start, stop) once the order check passed.
	n := max(int(count), 1)

	arr, err := MakeArray(1, []int{n})
	if err != nil {
		return nil, ndErrorf(opArange, err)
	}
	arr.data[0] = start
	for i := 1; i < n; i++ {
		arr.data[i] = start + float64(i)*step
	}

	return arr, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
