// SPDX-License-Identifier: MIT

package commands

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/cwbudde/algo-vecmath/cpu"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tinynd/ndarray"
)

// BenchConfig configures the bench command. It can be loaded from YAML;
// flags given on the command line override the file.
type BenchConfig struct {
	N        int    `yaml:"n"`
	Runs     int    `yaml:"runs"`
	Op       string `yaml:"op"`
	Format   string `yaml:"format"`
	LogLevel string `yaml:"log_level"`
}

// BenchResult is one timed operation.
type BenchResult struct {
	Run            int     `yaml:"run"`
	LatencySeconds float64 `yaml:"latency_seconds"`
	ThroughputMBs  float64 `yaml:"throughput_mb_s"`
}

// BenchReport is the yaml output of the bench command.
type BenchReport struct {
	Op           string        `yaml:"op"`
	Size         int           `yaml:"size"`
	Architecture string        `yaml:"architecture"`
	Results      []BenchResult `yaml:"results"`
}

type binaryOp func(a, b *ndarray.NDArray) (*ndarray.NDArray, error)

var benchOps = map[string]binaryOp{
	"add":      ndarray.Add,
	"subtract": ndarray.Subtract,
	"multiply": ndarray.Multiply,
}

// DefaultBenchConfig returns the configuration used when nothing is set.
func DefaultBenchConfig() BenchConfig {
	return BenchConfig{
		N:        1_000_000,
		Runs:     1,
		Op:       "add",
		Format:   "text",
		LogLevel: "warn",
	}
}

// LoadBenchConfig reads a YAML config, starting from DefaultBenchConfig.
// Unknown keys are rejected.
func LoadBenchConfig(path string) (BenchConfig, error) {
	cfg := DefaultBenchConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration values.
func (c BenchConfig) Validate() error {
	if c.N < 1 {
		return fmt.Errorf("n must be >= 1, got %d", c.N)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be >= 1, got %d", c.Runs)
	}
	if _, ok := benchOps[c.Op]; !ok {
		return fmt.Errorf("unknown op %q (add, subtract, multiply)", c.Op)
	}
	if c.Format != "text" && c.Format != "yaml" {
		return fmt.Errorf("unknown format %q (text, yaml)", c.Format)
	}

	return nil
}

// RunBench runs the bench command.
func RunBench(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseBenchArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		printBenchUsage(stdout)
		return exitSuccess
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	logger, err := newLogger(cfg.LogLevel, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	report, err := runBench(cfg, logger)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCommandError
	}

	if cfg.Format == "yaml" {
		enc := yaml.NewEncoder(stdout)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		if err := enc.Close(); err != nil {
			fmt.Fprintf(stderr, "Error writing output: %v\n", err)
			return exitCommandError
		}
		return exitSuccess
	}

	fmt.Fprintf(stdout, "Array Size: %d\n", report.Size)
	fmt.Fprintf(stdout, "Operation: %s\n", report.Op)
	for _, r := range report.Results {
		fmt.Fprintf(stdout, "Run %d: Absolute latency: %f seconds, Computational Throughput: %f MB/s\n",
			r.Run, r.LatencySeconds, r.ThroughputMBs)
	}

	return exitSuccess
}

func runBench(cfg BenchConfig, logger *slog.Logger) (BenchReport, error) {
	f := cpu.DetectFeatures()
	logger.Info("cpu features",
		"arch", f.Architecture,
		"sse2", f.HasSSE2,
		"avx", f.HasAVX,
		"avx2", f.HasAVX2,
		"avx512", f.HasAVX512,
		"neon", f.HasNEON,
	)

	op := benchOps[cfg.Op]
	a, err := ndarray.Full(1.0, cfg.N)
	if err != nil {
		return BenchReport{}, err
	}
	defer a.Release()
	b, err := ndarray.Full(2.0, cfg.N)
	if err != nil {
		return BenchReport{}, err
	}
	defer b.Release()

	// warm-up: touch every page of a result before timing
	warm, err := op(a, b)
	if err != nil {
		return BenchReport{}, err
	}
	warm.Release()
	logger.Debug("warm-up done", "op", cfg.Op, "n", cfg.N)

	report := BenchReport{Op: cfg.Op, Size: cfg.N, Architecture: f.Architecture}
	for run := 1; run <= cfg.Runs; run++ {
		start := time.Now()
		res, err := op(a, b)
		elapsed := time.Since(start).Seconds()
		if err != nil {
			return BenchReport{}, err
		}
		res.Release()

		r := BenchResult{Run: run, LatencySeconds: elapsed}
		if elapsed > 0 {
			r.ThroughputMBs = float64(cfg.N) * 8 * 3 / (elapsed * 1024 * 1024)
		}
		logger.Debug("run", "run", run, "seconds", elapsed)
		report.Results = append(report.Results, r)
	}

	return report, nil
}

func parseBenchArgs(args []string, stderr io.Writer) (BenchConfig, error) {
	fs := flag.NewFlagSet("bench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {}

	flags := DefaultBenchConfig()
	var configPath string
	fs.StringVar(&configPath, "config", "", "YAML config file")
	fs.IntVar(&flags.N, "n", flags.N, "Element count of each operand")
	fs.IntVar(&flags.Runs, "runs", flags.Runs, "Timed runs after warm-up")
	fs.StringVar(&flags.Op, "op", flags.Op, "Operation: add, subtract, multiply")
	fs.StringVar(&flags.Format, "format", flags.Format, "Output format: text, yaml")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return BenchConfig{}, err
	}
	if fs.NArg() > 0 {
		return BenchConfig{}, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	cfg := DefaultBenchConfig()
	if configPath != "" {
		var err error
		if cfg, err = LoadBenchConfig(configPath); err != nil {
			return BenchConfig{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "n":
			cfg.N = flags.N
		case "runs":
			cfg.Runs = flags.Runs
		case "op":
			cfg.Op = flags.Op
		case "format":
			cfg.Format = flags.Format
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		}
	})

	return cfg, cfg.Validate()
}

func printBenchUsage(w io.Writer) {
	fmt.Fprintln(w, `
Usage: tinynd bench [options]

Options:
  -n           Element count of each operand [default: 1000000]
  -runs        Timed runs after one warm-up run [default: 1]
  -op          add, subtract or multiply [default: add]
  -format      text or yaml [default: text]
  -config      YAML file with the keys n, runs, op, format, log_level
  -log-level   debug, info, warn or error [default: warn]

Examples:
  tinynd bench -n 50000000
  tinynd bench -config bench.yaml -runs 10`)
}
