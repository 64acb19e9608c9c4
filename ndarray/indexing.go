// SPDX-License-Identifier: MIT

package ndarray

import "fmt"

// Get returns the element of a at indices.
// Unlike a.At, an absent (nil) index vector is rejected even for a scalar.
//
// Errors:
//   - ErrInvalidArgument: nil a, nil indices, len(indices) != ndim, released a.
//   - ErrIndexOutOfBounds: *IndexError naming the first bad axis.
func Get(a *NDArray, indices []int) (float64, error) {
	if indices == nil {
		return 0, ndErrorf(opGet, fmt.Errorf("nil indices: %w", ErrInvalidArgument))
	}

	return get(opGet, a, indices)
}

// Set overwrites the element of a at indices with value.
// On any error the buffer is left untouched.
func Set(a *NDArray, indices []int, value float64) error {
	if indices == nil {
		return ndErrorf(opSet, fmt.Errorf("nil indices: %w", ErrInvalidArgument))
	}

	return set(opSet, a, indices, value)
}
