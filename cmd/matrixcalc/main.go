// SPDX-License-Identifier: MIT

// Command matrixcalc computes determinants and ranks of small matrices,
// either interactively or from YAML/JSON files.
//
// Usage:
//
//	matrixcalc [flags] [repl]
//	matrixcalc [flags] eval FILE...
//
// Settings come from MATRIXCALC_* environment variables, optionally loaded
// from a .env file, and can be overridden by flags.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// flagValues holds overrides; only flags actually given are applied.
type flagValues struct {
	envFile     string
	minDim      int
	maxDim      int
	rows        int
	cols        int
	epsilon     float64
	digits      int
	logLevel    string
	logFormat   string
	historyFile string
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *flagValues) {
	fv := &flagValues{}
	fs := flag.NewFlagSet("matrixcalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&fv.envFile, "env", ".env", "dotenv file merged into the environment when present")
	fs.IntVar(&fv.minDim, "min-dim", 0, "smallest side length (MATRIXCALC_MIN_DIM)")
	fs.IntVar(&fv.maxDim, "max-dim", 0, "largest side length (MATRIXCALC_MAX_DIM)")
	fs.IntVar(&fv.rows, "rows", 0, "initial rows (MATRIXCALC_INITIAL_ROWS)")
	fs.IntVar(&fv.cols, "cols", 0, "initial columns (MATRIXCALC_INITIAL_COLS)")
	fs.Float64Var(&fv.epsilon, "epsilon", 0, "singular pivot threshold (MATRIXCALC_EPSILON)")
	fs.IntVar(&fv.digits, "digits", 0, "decimal places of the determinant (MATRIXCALC_ROUNDING_DIGITS)")
	fs.StringVar(&fv.logLevel, "log-level", "", "debug, info, warn or error (MATRIXCALC_LOG_LEVEL)")
	fs.StringVar(&fv.logFormat, "log-format", "", "text or json (MATRIXCALC_LOG_FORMAT)")
	fs.StringVar(&fv.historyFile, "history", "", "REPL history file (MATRIXCALC_HISTORY_FILE)")

	return fs, fv
}

// apply copies every flag that was set on the command line into cfg.
func (fv *flagValues) apply(fs *flag.FlagSet, cfg *Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "min-dim":
			cfg.MinDim = fv.minDim
		case "max-dim":
			cfg.MaxDim = fv.maxDim
		case "rows":
			cfg.InitialRows = fv.rows
		case "cols":
			cfg.InitialCols = fv.cols
		case "epsilon":
			cfg.Epsilon = fv.epsilon
		case "digits":
			cfg.RoundingDigits = fv.digits
		case "log-level":
			cfg.LogLevel = fv.logLevel
		case "log-format":
			cfg.LogFormat = fv.logFormat
		case "history":
			cfg.HistoryFile = fv.historyFile
		}
	})
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs, fv := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := configure(fs, fv)
	if err != nil {
		fmt.Fprintf(stderr, "matrixcalc: %v\n", err)
		return 1
	}
	logger := newLogger(cfg, stderr)
	slog.SetDefault(logger)

	cmd, rest := "repl", fs.Args()
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}
	logger.Debug("starting", "command", cmd, "min_dim", cfg.MinDim, "max_dim", cfg.MaxDim)

	switch cmd {
	case "eval":
		err = runEval(cfg, rest, stdin, stdout, logger)
	case "repl":
		err = runREPL(cfg, replConfig(cfg), logger)
	default:
		err = fmt.Errorf("%w: unknown command %q, want eval or repl", errUsage, cmd)
	}
	if err != nil {
		logger.Error("matrixcalc failed", "command", cmd, "error", err)
		return 1
	}

	return 0
}

// configure loads the environment, applies flag overrides and validates
// the result.
func configure(fs *flag.FlagSet, fv *flagValues) (Config, error) {
	cfg, err := parseEnv(fv.envFile)
	if err != nil {
		return Config{}, err
	}
	fv.apply(fs, &cfg)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
