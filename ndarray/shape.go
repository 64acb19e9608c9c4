// SPDX-License-Identifier: MIT

// Package ndarray - shape and stride arithmetic.
//
// Purpose:
//   - Keep the row-major layout rules in small pure functions that depend only
//     on shape/stride slices, never on the storage of an NDArray.
//   - Make the offset computation testable in isolation.
//
// Complexity quicksheet:
//   - RowMajorStrides: O(ndim); FlatOffset: O(ndim); checkedSize: O(ndim).

package ndarray

import (
	"fmt"
	"math"
)

// MaxElements bounds the element count of a single array so that the byte
// size of its buffer still fits in an int.
const MaxElements = math.MaxInt / 8

// RowMajorStrides derives C-order strides from shape.
// The scan runs right to left with an accumulator starting at 1: each axis
// takes the current accumulator, then the accumulator is multiplied by that
// axis's size. The result has len(shape) entries; strides[ndim-1] == 1.
func RowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	acc := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = acc
		acc *= shape[i]
	}

	return strides
}

// FlatOffset maps a multi-index to a flat row-major offset.
//
// Implementation:
//   - Stage 1: require len(strides) == len(shape) == len(indices).
//   - Stage 2: for each axis, validate 0 <= indices[i] < shape[i] BEFORE
//     accumulating indices[i]*strides[i].
//
// Errors:
//   - ErrInvalidArgument on length disagreement.
//   - *IndexError (matches ErrIndexOutOfBounds) naming the first bad axis.
func FlatOffset(shape, strides, indices []int) (int, error) {
	if len(strides) != len(shape) {
		return 0, fmt.Errorf("%d strides for %d axes: %w", len(strides), len(shape), ErrInvalidArgument)
	}
	if len(indices) != len(shape) {
		return 0, fmt.Errorf("%d indices for %d axes: %w", len(indices), len(shape), ErrInvalidArgument)
	}

	offset := 0
	for axis, idx := range indices {
		if idx < 0 || idx >= shape[axis] {
			return 0, &IndexError{Axis: axis, Index: idx, Extent: shape[axis]}
		}
		offset += idx * strides[axis]
	}

	return offset, nil
}

// checkedSize validates every axis and returns product(shape).
// An empty shape describes a scalar and has size 1.
//
// Errors:
//   - ErrInvalidShape for the first axis with size <= 0.
//   - ErrAllocationFailure when the product leaves [1, MaxElements].
func checkedSize(shape []int) (int, error) {
	for axis, dim := range shape {
		if dim <= 0 {
			return 0, fmt.Errorf("axis %d size %d: %w", axis, dim, ErrInvalidShape)
		}
	}

	size := 1
	for axis, dim := range shape {
		if size > MaxElements/dim {
			return 0, fmt.Errorf("element count overflows at axis %d: %w", axis, ErrAllocationFailure)
		}
		size *= dim
	}

	return size, nil
}

// sameShape reports whether two shapes are equal axis by axis.
func sameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
