// SPDX-License-Identifier: MIT
// Package: ndarray
//
// Purpose:
//  - Provide a single source of truth for operand checks shared by the
//    arithmetic kernels (nil/released, same shape, Matmul compatibility).
//  - Return tagged sentinel errors so facades can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil(a) → NotNil(b) → Shape.

package ndarray

import "fmt"

// validatorErrorf wraps err with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures a is present and not released.
// Errors: ErrInvalidArgument (ErrReleased for released arrays).
func ValidateNotNil(a *NDArray) error {
	if err := checkLive(a); err != nil {
		return validatorErrorf("ValidateNotNil", err)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal ndim and equal axis sizes.
// Assumes both are live (caller must ensure).
// Errors: ErrShapeMismatch naming the first differing axis.
func ValidateSameShape(a, b *NDArray) error {
	if a.ndim != b.ndim {
		return validatorErrorf("ValidateSameShape", fmt.Errorf("dimension count %d vs %d: %w", a.ndim, b.ndim, ErrShapeMismatch))
	}
	for i := 0; i < a.ndim; i++ {
		if a.shape[i] != b.shape[i] {
			return validatorErrorf("ValidateSameShape", fmt.Errorf("axis %d (%d vs %d): %w", i, a.shape[i], b.shape[i], ErrShapeMismatch))
		}
	}

	return nil
}

// ValidateBinarySameShape is the composite NotNil(a) → NotNil(b) → SameShape.
func ValidateBinarySameShape(a, b *NDArray) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMatmulCompatible checks NotNil(a) → NotNil(b) → both 2-D →
// a.shape[1] == b.shape[0].
// Errors: ErrInvalidArgument, ErrShapeMismatch.
func ValidateMatmulCompatible(a, b *NDArray) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMatmulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMatmulCompatible", err)
	}
	if a.ndim != 2 || b.ndim != 2 {
		return validatorErrorf("ValidateMatmulCompatible", fmt.Errorf("operands must be 2-D, got %d-D and %d-D: %w", a.ndim, b.ndim, ErrShapeMismatch))
	}
	if a.shape[1] != b.shape[0] {
		return validatorErrorf("ValidateMatmulCompatible", fmt.Errorf("inner axes %d vs %d: %w", a.shape[1], b.shape[0], ErrShapeMismatch))
	}

	return nil
}
