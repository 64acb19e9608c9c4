// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/tinynd/ndarray"
	"github.com/stretchr/testify/require"
)

func TestRowMajorStrides(t *testing.T) {
	t.Parallel()
	require.Equal(t, []int{18, 6, 1}, ndarray.RowMajorStrides([]int{2, 3, 6}))
	require.Equal(t, []int{1}, ndarray.RowMajorStrides([]int{9}))
	require.Equal(t, []int{}, ndarray.RowMajorStrides([]int{}))
}

func TestFlatOffset_Pure(t *testing.T) {
	t.Parallel()
	shape := []int{2, 3, 6}
	strides := ndarray.RowMajorStrides(shape)

	off, err := ndarray.FlatOffset(shape, strides, []int{1, 2, 3})
	require.NoError(t, err)
	require.Equal(t, 33, off)

	off, err = ndarray.FlatOffset(shape, strides, []int{0, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 0, off)

	off, err = ndarray.FlatOffset(shape, strides, []int{1, 2, 5})
	require.NoError(t, err)
	require.Equal(t, 35, off)

	_, err = ndarray.FlatOffset(shape, strides, []int{1, 2})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)

	_, err = ndarray.FlatOffset(shape, []int{1}, []int{0, 0, 0})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
}

func TestFlatOffset_CoversEveryElementOnce(t *testing.T) {
	t.Parallel()
	shape := []int{3, 4, 2}
	strides := ndarray.RowMajorStrides(shape)
	seen := make(map[int]bool)
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 2; k++ {
				off, err := ndarray.FlatOffset(shape, strides, []int{i, j, k})
				require.NoError(t, err)
				require.False(t, seen[off], "offset %d hit twice", off)
				seen[off] = true
			}
		}
	}
	require.Len(t, seen, 24)
}

func TestFlatOffset_IndexError(t *testing.T) {
	t.Parallel()
	shape := []int{4, 5}
	strides := ndarray.RowMajorStrides(shape)
	cases := []struct {
		idx       []int
		axis, bad int
	}{
		{[]int{2, 7}, 1, 7},
		{[]int{4, 0}, 0, 4},
		{[]int{-1, 0}, 0, -1},
		{[]int{0, -2}, 1, -2},
		{[]int{9, 9}, 0, 9},
	}
	for _, tc := range cases {
		_, err := ndarray.FlatOffset(shape, strides, tc.idx)
		require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)

		var ie *ndarray.IndexError
		require.True(t, errors.As(err, &ie))
		require.Equal(t, tc.axis, ie.Axis)
		require.Equal(t, tc.bad, ie.Index)
		require.Equal(t, shape[tc.axis], ie.Extent)
	}
}

func TestGet_MatchesFlatLayout(t *testing.T) {
	t.Parallel()
	a := MustFromSlice(t, seq(36, 0), 2, 3, 6)

	v, err := ndarray.Get(a, []int{1, 2, 3})
	require.NoError(t, err)
	require.InDelta(t, 33.0, v, tol)

	require.Equal(t, 0.0, MustAt(t, a, 0, 0, 0))
	require.Equal(t, 35.0, MustAt(t, a, 1, 2, 5))
}

func TestSet_RoundTrip(t *testing.T) {
	t.Parallel()
	a := MustNew(t, 2, 3, 6)
	idx := []int{1, 2, 3}

	require.NoError(t, ndarray.Set(a, idx, 6.5))
	v, err := ndarray.Get(a, idx)
	require.NoError(t, err)
	require.InDelta(t, 6.5, v, tol)

	// No other element changed.
	vals := a.Values()
	for i, x := range vals {
		if i == 33 {
			continue
		}
		require.Equal(t, 0.0, x, "element %d", i)
	}
}

func TestSetAt_RoundTrip_AllIndices(t *testing.T) {
	t.Parallel()
	a := MustNew(t, 4, 5)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			require.NoError(t, a.SetAt(float64(i*10+j), i, j))
		}
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			require.Equal(t, float64(i*10+j), MustAt(t, a, i, j))
		}
	}
}

func TestOutOfBounds_NoMutation(t *testing.T) {
	t.Parallel()
	a, err := ndarray.Ones(2, []int{4, 5})
	require.NoError(t, err)
	before := a.Values()

	err = ndarray.Set(a, []int{2, 7}, 42)
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)
	var ie *ndarray.IndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, 1, ie.Axis)
	require.Equal(t, 7, ie.Index)

	_, err = ndarray.Get(a, []int{2, 7})
	require.ErrorIs(t, err, ndarray.ErrIndexOutOfBounds)

	require.ErrorIs(t, a.SetAt(42, 2, 7), ndarray.ErrIndexOutOfBounds)
	require.Equal(t, before, a.Values())
}

func TestIndexing_InvalidArgument(t *testing.T) {
	t.Parallel()
	a := MustNew(t, 4, 5)

	_, err := ndarray.Get(nil, []int{0, 0})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	require.ErrorIs(t, ndarray.Set(nil, []int{0, 0}, 1), ndarray.ErrInvalidArgument)

	_, err = ndarray.Get(a, nil)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	require.ErrorIs(t, ndarray.Set(a, nil, 1), ndarray.ErrInvalidArgument)

	// Index count must equal ndim.
	_, err = ndarray.Get(a, []int{1})
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
	require.ErrorIs(t, ndarray.Set(a, []int{1, 2, 3}, 1), ndarray.ErrInvalidArgument)
	require.Equal(t, make([]float64, 20), a.Values())

	var nilArr *ndarray.NDArray
	_, err = nilArr.At(0, 0)
	require.ErrorIs(t, err, ndarray.ErrInvalidArgument)
}

func TestFill(t *testing.T) {
	t.Parallel()
	a := MustNew(t, 3, 3)
	require.NoError(t, a.Fill(-2))
	for _, v := range a.Values() {
		require.Equal(t, -2.0, v)
	}

	var nilArr *ndarray.NDArray
	require.ErrorIs(t, nilArr.Fill(1), ndarray.ErrInvalidArgument)
}

func TestValues_IsACopy(t *testing.T) {
	t.Parallel()
	a := MustFromSlice(t, []float64{1, 2, 3}, 3)
	vals := a.Values()
	vals[0] = 99
	require.Equal(t, 1.0, MustAt(t, a, 0))
}
