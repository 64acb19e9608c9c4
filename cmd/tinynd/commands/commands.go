// SPDX-License-Identifier: MIT

// Package commands implements the tinynd subcommands. Each Run function
// takes its arguments and output streams and returns a process exit code.
package commands

import (
	"fmt"
	"io"
	"log/slog"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

// newLogger returns a text logger on w at the named level
// (debug, info, warn or error).
func newLogger(level string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
