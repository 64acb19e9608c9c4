// SPDX-License-Identifier: MIT

// Package ndarray - NDArray storage (row-major) & safe accessors.
//
// Purpose:
//   - Own a contiguous float64 buffer plus its shape/stride metadata.
//   - Commit a new array only after every validation and allocation step
//     succeeded: no partially constructed array ever escapes.
//   - Guarantee safety at the public surface: accessors return errors
//     instead of panicking, and never expose internal slices.
//
// Complexity quicksheet:
//   - MakeArray: O(size) zero-init; At/SetAt: O(ndim); Clone: O(size).

package ndarray

import (
	"fmt"
)

// NDArray is an owning, fixed-shape, row-major dense array of float64.
//   - data holds size elements; offset(idx) = Σ idx[i]*strides[i].
//   - shape/strides have ndim entries each and never change after construction.
//   - released flips once in Release; a released array rejects every operation.
type NDArray struct {
	data     []float64 // contiguous row-major storage (len == size)
	shape    []int     // axis sizes, each > 0
	strides  []int     // row-major strides derived from shape
	ndim     int       // number of axes (>= 0)
	size     int       // product(shape); 1 for a scalar
	released bool      // set by Release
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*NDArray)(nil)

// MakeArray allocates a zero-filled array of ndim axes with the given shape.
//
// Implementation:
//   - Stage 1: reject ndim < 0, a nil shape, or len(shape) != ndim.
//   - Stage 2: validate axes and compute size (checkedSize).
//   - Stage 3: copy shape, derive strides, allocate data; commit.
//
// Errors:
//   - ErrInvalidArgument, ErrInvalidShape, ErrAllocationFailure.
//
// Notes:
//   - The caller's shape slice is copied; later edits to it do not affect
//     the array.
func MakeArray(ndim int, shape []int) (*NDArray, error) {
	if ndim < 0 || shape == nil {
		return nil, ndErrorf(opMakeArray, fmt.Errorf("ndim %d, shape nil=%t: %w", ndim, shape == nil, ErrInvalidArgument))
	}
	if len(shape) != ndim {
		return nil, ndErrorf(opMakeArray, fmt.Errorf("ndim %d but shape has %d axes: %w", ndim, len(shape), ErrInvalidArgument))
	}

	size, err := checkedSize(shape)
	if err != nil {
		return nil, ndErrorf(opMakeArray, err)
	}

	dims := make([]int, ndim)
	copy(dims, shape)

	return &NDArray{
		data:    make([]float64, size),
		shape:   dims,
		strides: RowMajorStrides(dims),
		ndim:    ndim,
		size:    size,
	}, nil
}

// New allocates a zero-filled array with the given axis sizes.
// New() with no sizes returns a scalar (ndim 0, size 1).
func New(shape ...int) (*NDArray, error) {
	if shape == nil {
		shape = []int{}
	}

	return MakeArray(len(shape), shape)
}

// newLike allocates a zero-filled array with a's shape.
func newLike(a *NDArray) (*NDArray, error) {
	return MakeArray(a.ndim, a.shape)
}

// checkLive rejects nil and released arrays.
func checkLive(a *NDArray) error {
	if a == nil {
		return fmt.Errorf("nil array: %w", ErrInvalidArgument)
	}
	if a.released {
		return ErrReleased
	}

	return nil
}

// NDim returns the number of axes. Zero for nil or released arrays.
func (a *NDArray) NDim() int {
	if a == nil {
		return 0
	}

	return a.ndim
}

// Size returns the total element count. Zero for nil or released arrays.
func (a *NDArray) Size() int {
	if a == nil {
		return 0
	}

	return a.size
}

// Shape returns a copy of the axis sizes.
func (a *NDArray) Shape() []int {
	if a == nil || a.released {
		return nil
	}
	out := make([]int, a.ndim)
	copy(out, a.shape)

	return out
}

// Strides returns a copy of the row-major strides (in elements, not bytes).
func (a *NDArray) Strides() []int {
	if a == nil || a.released {
		return nil
	}
	out := make([]int, a.ndim)
	copy(out, a.strides)

	return out
}

// Values returns a copy of the flat row-major buffer.
func (a *NDArray) Values() []float64 {
	if a == nil || a.released {
		return nil
	}
	out := make([]float64, a.size)
	copy(out, a.data)

	return out
}

// At returns the element at the multi-index idx.
// Errors: ErrInvalidArgument (nil/released, wrong index count),
// ErrIndexOutOfBounds (via *IndexError).
func (a *NDArray) At(idx ...int) (float64, error) {
	return get(opAt, a, idx)
}

// SetAt writes v at the multi-index idx. A failed SetAt leaves a unchanged.
func (a *NDArray) SetAt(v float64, idx ...int) error {
	return set(opSetAt, a, idx, v)
}

// get resolves idx through FlatOffset and reads the element.
func get(op string, a *NDArray, idx []int) (float64, error) {
	if err := checkLive(a); err != nil {
		return 0, ndErrorf(op, err)
	}
	off, err := FlatOffset(a.shape, a.strides, idx)
	if err != nil {
		return 0, ndErrorf(op, err)
	}

	return a.data[off], nil
}

// set resolves idx through FlatOffset; the write happens only after the
// whole index vector validated.
func set(op string, a *NDArray, idx []int, v float64) error {
	if err := checkLive(a); err != nil {
		return ndErrorf(op, err)
	}
	off, err := FlatOffset(a.shape, a.strides, idx)
	if err != nil {
		return ndErrorf(op, err)
	}
	a.data[off] = v

	return nil
}

// Fill overwrites every element with v.
func (a *NDArray) Fill(v float64) error {
	if err := checkLive(a); err != nil {
		return ndErrorf(opFill, err)
	}
	for i := range a.data {
		a.data[i] = v
	}

	return nil
}

// Clone returns a deep copy with private buffer, shape and strides.
// Cloning a nil or released array returns nil.
func (a *NDArray) Clone() *NDArray {
	if checkLive(a) != nil {
		return nil
	}
	data := make([]float64, a.size)
	copy(data, a.data)

	return &NDArray{
		data:    data,
		shape:   a.Shape(),
		strides: a.Strides(),
		ndim:    a.ndim,
		size:    a.size,
	}
}

// Equal reports whether b has the same shape and bitwise-equal elements
// (NaN never equals NaN). Nil or released arrays are never equal.
func (a *NDArray) Equal(b *NDArray) bool {
	if checkLive(a) != nil || checkLive(b) != nil {
		return false
	}
	if !sameShape(a.shape, b.shape) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Release drops the buffer and metadata. Afterwards every operation on a
// returns ErrReleased. Release on nil or an already released array is a no-op.
func (a *NDArray) Release() {
	if a == nil || a.released {
		return
	}
	a.data = nil
	a.shape = nil
	a.strides = nil
	a.ndim = 0
	a.size = 0
	a.released = true
}

// Released reports whether Release has been called.
func (a *NDArray) Released() bool {
	return a != nil && a.released
}
