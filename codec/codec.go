// SPDX-License-Identifier: MIT

package codec

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/katalvlaran/tinynd/ndarray"
)

// ErrMalformedSnapshot is returned when input bytes are not a CBOR snapshot.
var ErrMalformedSnapshot = errors.New("codec: malformed snapshot")

// snapshot is the wire form of an array.
type snapshot struct {
	Shape []int     `cbor:"1,keyasint"`
	Data  []float64 `cbor:"2,keyasint"`
}

// encMode is the deterministic encoder mode for snapshots.
var encMode cbor.EncMode

// decMode is the strict decoder mode for snapshots.
var decMode cbor.DecMode

func init() {
	var err error

	encOpts := cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}
	encMode, err = encOpts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot encoder mode: %v", err))
	}

	// Arrays routinely exceed the default element cap.
	decOpts := cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		IndefLength:       cbor.IndefLengthForbidden,
		MaxArrayElements:  math.MaxInt32,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}
	decMode, err = decOpts.DecMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create snapshot decoder mode: %v", err))
	}
}

func toSnapshot(a *ndarray.NDArray) (snapshot, error) {
	if err := ndarray.ValidateNotNil(a); err != nil {
		return snapshot{}, err
	}

	return snapshot{Shape: a.Shape(), Data: a.Values()}, nil
}

func fromSnapshot(s snapshot) (*ndarray.NDArray, error) {
	if s.Shape == nil {
		s.Shape = []int{}
	}
	arr, err := ndarray.FromSlice(s.Data, s.Shape...)
	if err != nil {
		return nil, fmt.Errorf("invalid snapshot: %w", err)
	}

	return arr, nil
}

// Marshal encodes a to CBOR snapshot bytes.
func Marshal(a *ndarray.NDArray) ([]byte, error) {
	s, err := toSnapshot(a)
	if err != nil {
		return nil, fmt.Errorf("Marshal: %w", err)
	}

	return encMode.Marshal(s)
}

// Unmarshal decodes snapshot bytes into a new array.
func Unmarshal(data []byte) (*ndarray.NDArray, error) {
	var s snapshot
	if err := decMode.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("Unmarshal: %w: %w", ErrMalformedSnapshot, err)
	}

	return fromSnapshot(s)
}

// Encode writes a's snapshot to w.
func Encode(w io.Writer, a *ndarray.NDArray) error {
	s, err := toSnapshot(a)
	if err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return encMode.NewEncoder(w).Encode(s)
}

// Decode reads a single snapshot from r. The underlying CBOR decoder
// buffers ahead, so bytes after the snapshot are consumed too; use a
// Decoder to read a stream of snapshots.
func Decode(r io.Reader) (*ndarray.NDArray, error) {
	arr, err := NewDecoder(r).Decode()
	if err != nil {
		return nil, fmt.Errorf("Decode: %w", err)
	}

	return arr, nil
}

// Decoder reads consecutive snapshots from one stream.
type Decoder struct {
	dec *cbor.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{dec: decMode.NewDecoder(r)}
}

// Decode reads the next snapshot. At the end of the stream it returns an
// error wrapping both ErrMalformedSnapshot and io.EOF.
func (d *Decoder) Decode() (*ndarray.NDArray, error) {
	var s snapshot
	if err := d.dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedSnapshot, err)
	}

	return fromSnapshot(s)
}
