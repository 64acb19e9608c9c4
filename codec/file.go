// SPDX-License-Identifier: MIT

package codec

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tinynd/ndarray"
)

// WriteFile writes a's snapshot to path, creating or truncating it.
func WriteFile(path string, a *ndarray.NDArray) error {
	b, err := Marshal(a)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	return nil
}

// ReadFile reads a snapshot file written by WriteFile.
func ReadFile(path string) (*ndarray.NDArray, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	return Unmarshal(b)
}
