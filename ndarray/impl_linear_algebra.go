// SPDX-License-Identifier: MIT

package ndarray

import (
	"github.com/cwbudde/algo-vecmath"
)

// Matmul performs standard 2-D matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: ValidateMatmulCompatible (2-D operands, a.shape[1] == b.shape[0]).
//   - Stage 2: allocate C (m × n), zero-filled.
//   - Stage 3: i→t→j order: for each row i of A and each t, accumulate
//     A[i,t] * B[t,:] into C[i,:] with one scratch row.
//
// Returns:
//   - *NDArray of shape (m, n) with C[i][j] = Σ_t A[i][t] * B[t][j].
//
// Errors:
//   - ErrInvalidArgument (nil/released), ErrShapeMismatch (rank or inner axes).
//
// Complexity:
//   - Time O(m*k*n), Space O(m*n) + O(n) scratch.
func Matmul(a, b *NDArray) (*NDArray, error) {
	if err := ValidateMatmulCompatible(a, b); err != nil {
		return nil, ndErrorf(opMatmul, err)
	}

	m, k, n := a.shape[0], a.shape[1], b.shape[1]
	res, err := MakeArray(2, []int{m, n})
	if err != nil {
		return nil, ndErrorf(opMatmul, err)
	}

	scratch := make([]float64, n)
	for i := 0; i < m; i++ {
		rowA := a.data[i*k : (i+1)*k]
		rowC := res.data[i*n : (i+1)*n]
		for t, av := range rowA {
			vecmath.ScaleBlock(scratch, b.data[t*n:(t+1)*n], av)
			vecmath.AddBlockInPlace(rowC, scratch)
		}
	}

	return res, nil
}
