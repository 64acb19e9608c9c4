// SPDX-License-Identifier: MIT
// Package ndarray - public API facades.
//
// Purpose:
//   - Intention-revealing aliases over the core kernels.
//   - "Like" constructors that copy the shape of an existing array.

package ndarray

// ZerosLike returns a new zero-filled array with a's shape.
func ZerosLike(a *NDArray) (*NDArray, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ndErrorf(opMakeArray, err)
	}

	return newLike(a)
}

// OnesLike returns a new array of ones with a's shape.
func OnesLike(a *NDArray) (*NDArray, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, ndErrorf(opMakeArray, err)
	}

	return fullOf(a.ndim, a.shape, 1.0)
}

// Sum is an alias for Add: elementwise a + b.
func Sum(a, b *NDArray) (*NDArray, error) { return Add(a, b) }

// Diff is an alias for Subtract: elementwise a − b.
func Diff(a, b *NDArray) (*NDArray, error) { return Subtract(a, b) }

// Product is an alias for Matmul: matrix product a × b.
func Product(a, b *NDArray) (*NDArray, error) { return Matmul(a, b) }

// Hadamard is an alias for Multiply: elementwise a ⊙ b.
func Hadamard(a, b *NDArray) (*NDArray, error) { return Multiply(a, b) }
