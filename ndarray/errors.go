// SPDX-License-Identifier: MIT
// Package ndarray: sentinel error set.
// Every fallible operation returns one of these sentinels (optionally wrapped
// with an operation tag); tests and callers MUST match them via errors.Is.
// No operation panics on user-triggered error conditions.

package ndarray

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ndarray: ..." for easy grepping. Public
// operations wrap sentinels as "<Op>: <context>: <sentinel>" via ndErrorf,
// so the kind survives and the message carries the call site.

var (
	// ErrInvalidArgument is returned for an absent operand or a malformed
	// parameter (negative ndim, nil shape, zero step, wrong index count).
	ErrInvalidArgument = errors.New("ndarray: invalid argument")

	// ErrInvalidShape is returned when an axis size is not strictly positive.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrIndexOutOfBounds is returned when a multi-index leaves an axis extent.
	// The concrete error is an *IndexError carrying the axis and index.
	ErrIndexOutOfBounds = errors.New("ndarray: index out of bounds")

	// ErrShapeMismatch is returned when operands of a binary operation have
	// incompatible shapes (ndim or any axis differs, or inner Matmul axes).
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrAllocationFailure is returned when the backing buffer cannot be
	// obtained (the element count overflows or exceeds MaxElements).
	ErrAllocationFailure = errors.New("ndarray: allocation failure")
)

// ErrReleased marks use of an array after Release. It also matches
// ErrInvalidArgument, since a released array is no longer a valid operand.
var ErrReleased = fmt.Errorf("%w: array released", ErrInvalidArgument)

// IndexError reports the first axis whose index fell outside [0, Extent).
type IndexError struct {
	Axis   int // offending axis
	Index  int // supplied index along Axis
	Extent int // shape[Axis]
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("axis %d index %d is out of bounds [0,%d): %v",
		e.Axis, e.Index, e.Extent, ErrIndexOutOfBounds)
}

// Unwrap lets errors.Is(err, ErrIndexOutOfBounds) hold.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfBounds }

// Operation tags for uniform error wrapping.
const (
	opMakeArray = "MakeArray"
	opFromSlice = "FromSlice"
	opArange    = "Arange"
	opGet       = "Get"
	opSet       = "Set"
	opAt        = "At"
	opSetAt     = "SetAt"
	opFill      = "Fill"
	opAdd       = "Add"
	opSubtract  = "Subtract"
	opMultiply  = "Multiply"
	opScale     = "Scale"
	opMatmul    = "Matmul"
	opPrint     = "Fprint2D"
)

// ndErrorf wraps err with an operation tag, preserving it for errors.Is/As.
// Call only with a non-nil err.
func ndErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
