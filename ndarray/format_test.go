// SPDX-License-Identifier: MIT

package ndarray_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/katalvlaran/tinynd/ndarray"
	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		arr  *ndarray.NDArray
		want string
	}{
		{"1-D", MustFromSlice(t, []float64{1, 2.5, -3}, 3), "[1, 2.5, -3]"},
		{"2-D", MustFromSlice(t, seq(6, 1), 2, 3), "[[1, 2, 3], [4, 5, 6]]"},
		{"3-D", MustFromSlice(t, seq(8, 0), 2, 2, 2), "[[[0, 1], [2, 3]], [[4, 5], [6, 7]]]"},
		{"scalar", MustFromSlice(t, []float64{4}), "4"},
		{"nil", nil, "<nil>"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, tc.arr.String(), tc.name)
	}
}

func TestFprint2D(t *testing.T) {
	t.Parallel()
	a := MustFromSlice(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)
	var buf bytes.Buffer
	require.NoError(t, ndarray.Fprint2D(&buf, a))

	want := "Array: (Shape: 2 x 3):\n" +
		"   1.0    2.0    3.0 \n" +
		"   4.0    5.0    6.0 \n"
	require.Equal(t, want, buf.String())
}

func TestFprint2D_Rejects(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	require.ErrorIs(t, ndarray.Fprint2D(&buf, MustNew(t, 3)), ndarray.ErrInvalidArgument)
	require.ErrorIs(t, ndarray.Fprint2D(&buf, nil), ndarray.ErrInvalidArgument)
	require.Zero(t, buf.Len())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprint2D_WriteError(t *testing.T) {
	t.Parallel()
	err := ndarray.Fprint2D(failingWriter{}, MustNew(t, 2, 2))
	require.ErrorIs(t, err, errWrite)
}
