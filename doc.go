// Package tinynd is a small toolkit for dense, row-major N-dimensional
// float64 arrays: creation, bounds-checked indexing, element-wise
// arithmetic, 2-D matrix multiplication and a compact on-disk form.
//
// 🚀 What is inside?
//
//	ndarray/      the NDArray type, constructors, Get/Set, Add/Subtract/
//	              Multiply/Scale, Matmul, formatting and Release
//	codec/        canonical CBOR snapshots of arrays (Marshal, Encode, files)
//	cmd/tinynd/   the CLI: bench, demo and convert
//
// ✨ Guarantees
//
//   - No panics on bad input: every failure is a wrapped sentinel error
//     (errors.Is) or a typed *ndarray.IndexError (errors.As).
//   - Results are always fresh arrays; operands are never modified.
//   - Element-wise kernels dispatch to SIMD through algo-vecmath.
//
// Quick example:
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	b, _ := ndarray.FromSlice([]float64{7, 8, 9, 10, 11, 12}, 3, 2)
//	c, _ := ndarray.Matmul(a, b) // [[58, 64], [139, 154]]
//
//	go get github.com/katalvlaran/tinynd/ndarray
package tinynd
