// Package ndarray is a minimal dense N-dimensional array of float64 values.
//
// The ndarray package provides:
//
//   - NDArray: an owning, fixed-shape, row-major buffer with shape/stride
//     metadata (MakeArray, New, Zeros, Ones, Full, FromSlice, Arange).
//   - Bounds-checked multi-index access (Get/Set, At/SetAt) built on the
//     pure FlatOffset/RowMajorStrides helpers.
//   - Elementwise arithmetic (Add, Subtract, Multiply, Scale) and 2-D
//     matrix multiplication (Matmul), always into a fresh result.
//   - Explicit Release: a released array rejects every later operation with
//     ErrReleased.
//
// Errors are package sentinels (ErrInvalidArgument, ErrInvalidShape,
// ErrIndexOutOfBounds, ErrShapeMismatch, ErrAllocationFailure) wrapped with
// the operation name; match them with errors.Is. Out-of-bounds errors are
// *IndexError values carrying the offending axis and index.
//
// Arrays are not safe for concurrent mutation; distinct arrays never share
// storage and may be used from different goroutines freely.
package ndarray
