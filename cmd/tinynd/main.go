// SPDX-License-Identifier: MIT

// tinynd is a CLI for benchmarking, demonstrating and converting ndarray values.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/tinynd/cmd/tinynd/commands"
)

const (
	exitSuccess      = 0
	exitCommandError = 1
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(exitCommandError)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var exitCode int
	switch cmd {
	case "bench":
		exitCode = commands.RunBench(args, os.Stdout, os.Stderr)
	case "demo":
		exitCode = commands.RunDemo(args, os.Stdout, os.Stderr)
	case "convert":
		exitCode = commands.RunConvert(args, os.Stdout, os.Stderr)
	case "help", "-h", "--help":
		printUsage()
		exitCode = exitSuccess
	case "version", "-v", "--version":
		fmt.Println("tinynd version 0.1.0")
		exitCode = exitSuccess
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		exitCode = exitCommandError
	}

	os.Exit(exitCode)
}

func printUsage() {
	fmt.Println(`tinynd - dense float64 array toolkit

Usage:
  tinynd <command> [options] [files...]

Commands:
  bench      Time element-wise operations on large 1-D arrays
  demo       Walk through creation, indexing, bounds checking and addition
  convert    Write an arange snapshot, or print a snapshot file

Options:
  -h, --help     Show this help message
  -v, --version  Show version information

Examples:
  tinynd bench -n 50000000 -runs 5
  tinynd bench -config bench.yaml -format yaml
  tinynd convert -arange 0,12,1 -shape 3,4 -o a.cbor
  tinynd convert a.cbor

For command-specific help, run:
  tinynd <command> --help`)
}
