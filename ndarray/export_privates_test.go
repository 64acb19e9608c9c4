// SPDX-License-Identifier: MIT

package ndarray

// Test bridge (white-box) for private helpers.
//
// Purpose:
//   - Expose unexported size validation and limits to ndarray_test only.
//   - File name ends in _test.go, so it never ships in production builds.

// CheckedSize_TestOnly is a pass-through to checkedSize.
func CheckedSize_TestOnly(shape []int) (int, error) { return checkedSize(shape) }

// ArangeEpsilon_TestOnly mirrors the arange boundary tolerance.
const ArangeEpsilon_TestOnly = arangeEpsilon

// RawData_TestOnly returns the live backing buffer (no copy) so tests can
// assert that operands were never written.
func RawData_TestOnly(a *NDArray) []float64 { return a.data }
