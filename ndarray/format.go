// SPDX-License-Identifier: MIT

package ndarray

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "["
	_fmtClose = "]"
	_fmtSep   = ", "
)

// String renders the array as nested brackets in row-major order, e.g.
// "[[1, 2, 3], [4, 5, 6]]". A scalar renders as its bare value.
func (a *NDArray) String() string {
	if a == nil {
		return "<nil>"
	}
	if a.released {
		return "<released>"
	}

	var sb strings.Builder
	a.writeAxis(&sb, 0, 0)

	return sb.String()
}

// writeAxis emits the sub-array starting at flat offset base along axis.
func (a *NDArray) writeAxis(sb *strings.Builder, axis, base int) {
	if axis == a.ndim {
		sb.WriteString(strconv.FormatFloat(a.data[base], 'g', -1, 64))
		return
	}
	sb.WriteString(_fmtOpen)
	for i := 0; i < a.shape[axis]; i++ {
		if i > 0 {
			sb.WriteString(_fmtSep)
		}
		a.writeAxis(sb, axis+1, base+i*a.strides[axis])
	}
	sb.WriteString(_fmtClose)
}

// Fprint2D writes a 2-D array as a fixed-width table:
//
//	Array: (Shape: 2 x 3):
//	   1.0    2.0    3.0
//	   4.0    5.0    6.0
//
// Elements are read through At in row-major nested-loop order.
// Errors: ErrInvalidArgument for nil, released or non-2-D arrays; write errors.
func Fprint2D(w io.Writer, a *NDArray) error {
	if err := ValidateNotNil(a); err != nil {
		return ndErrorf(opPrint, err)
	}
	if a.ndim != 2 {
		return ndErrorf(opPrint, fmt.Errorf("only 2-D arrays are supported, got %d-D: %w", a.ndim, ErrInvalidArgument))
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Array: (Shape: %d x %d):\n", a.shape[0], a.shape[1])
	for i := 0; i < a.shape[0]; i++ {
		for j := 0; j < a.shape[1]; j++ {
			v, err := a.At(i, j)
			if err != nil {
				return ndErrorf(opPrint, err)
			}
			fmt.Fprintf(bw, "%6.1f ", v)
		}
		bw.WriteString("\n")
	}
	if err := bw.Flush(); err != nil {
		return ndErrorf(opPrint, err)
	}

	return nil
}
