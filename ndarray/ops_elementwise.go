// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//   - Elementwise arithmetic over equal-shaped arrays.
//   - Every operation allocates a fresh result of the left operand's shape;
//     operands are read-only.
//
// Design:
//   - Shapes are identical and layouts are always row-major, so the kernels
//     walk both flat buffers 0..size-1 with algo-vecmath block operations
//     (SIMD where the CPU supports it, pure Go otherwise).

package ndarray

import (
	"github.com/cwbudde/algo-vecmath"
)

// binaryResult validates a and b and allocates the result buffer.
func binaryResult(op string, a, b *NDArray) (*NDArray, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, ndErrorf(op, err)
	}
	res, err := newLike(a)
	if err != nil {
		return nil, ndErrorf(op, err)
	}

	return res, nil
}

// Add returns a fresh array with res[i] = a[i] + b[i].
//
// Errors:
//   - ErrInvalidArgument (nil or released operand).
//   - ErrShapeMismatch (ndim or any axis differs).
//   - ErrAllocationFailure (propagated from construction).
func Add(a, b *NDArray) (*NDArray, error) {
	res, err := binaryResult(opAdd, a, b)
	if err != nil {
		return nil, err
	}
	copy(res.data, a.data)
	vecmath.AddBlockInPlace(res.data, b.data)

	return res, nil
}

// Subtract returns a fresh array with res[i] = a[i] - b[i].
// Computed as (-b[i]) + a[i], which is exact in IEEE-754 arithmetic.
func Subtract(a, b *NDArray) (*NDArray, error) {
	res, err := binaryResult(opSubtract, a, b)
	if err != nil {
		return nil, err
	}
	vecmath.ScaleBlock(res.data, b.data, -1)
	vecmath.AddBlockInPlace(res.data, a.data)

	return res, nil
}

// Multiply returns the elementwise (Hadamard) product res[i] = a[i] * b[i].
func Multiply(a, b *NDArray) (*NDArray, error) {
	res, err := binaryResult(opMultiply, a, b)
	if err != nil {
		return nil, err
	}
	vecmath.MulBlock(res.data, a.data, b.data)

	return res, nil
}

// Scale returns a fresh array with res[i] = alpha * a[i].
func Scale(a *NDArray, alpha float64) (*NDArray, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ndErrorf(opScale, err)
	}
	res, err := newLike(a)
	if err != nil {
		return nil, ndErrorf(opScale, err)
	}
	vecmath.ScaleBlock(res.data, a.data, alpha)

	return res, nil
}
