// SPDX-License-Identifier: MIT

// Package ndarray_test provides benchmarks for the core array operations,
// using deterministic random fill.
package ndarray_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/tinynd/ndarray"
)

// benchSizes are the flat element counts to benchmark.
var benchSizes = []int{1 << 10, 1 << 16, 1 << 20}

// sinks to defeat dead-code elimination
var (
	sinkA *ndarray.NDArray
	sinkF float64
)

func benchPair(b *testing.B, n int) (*ndarray.NDArray, *ndarray.NDArray) {
	b.Helper()
	x := MustFromSlice(b, randomValues(n, 1337), n)
	y := MustFromSlice(b, randomValues(n, 4242), n)

	return x, y
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.SetBytes(int64(n * 8 * 3))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := ndarray.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = r
			}
		})
	}
}

func BenchmarkSubtract(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := benchPair(b, n)
			b.SetBytes(int64(n * 8 * 3))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := ndarray.Subtract(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = r
			}
		})
	}
}

func BenchmarkMatmul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{32, 128, 256} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x := MustFromSlice(b, randomValues(n*n, 1), n, n)
			y := MustFromSlice(b, randomValues(n*n, 2), n, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				r, err := ndarray.Matmul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkA = r
			}
		})
	}
}

func BenchmarkAt(b *testing.B) {
	a := MustFromSlice(b, randomValues(4*32*32, 3), 4, 32, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v, err := a.At(i&3, (i>>2)&31, (i>>7)&31)
		if err != nil {
			b.Fatal(err)
		}
		sinkF = v
	}
}
