// SPDX-License-Identifier: MIT

// Package codec stores ndarray values as compact CBOR snapshots.
//
// A snapshot is a CBOR map with integer keys:
//
//	1: shape  (array of uint, empty for a scalar)
//	2: data   (array of float64, row-major, product(shape) entries)
//
// Encoding is canonical and deterministic: equal arrays always produce
// identical bytes. Decoding rebuilds the array through ndarray.FromSlice, so
// a decoded array satisfies every ndarray invariant and a bad shape or a
// length mismatch is reported with the ndarray error kinds. Bytes that are
// not a well-formed snapshot are reported as ErrMalformedSnapshot.
//
// Snapshots written back to back with Encode are read with a Decoder.
package codec
