// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/katalvlaran/matrixengine/calc"
	"github.com/katalvlaran/matrixengine/matrix"
)

// Config is read from MATRIXCALC_* environment variables, after an optional
// .env file has been merged into the environment.
type Config struct {
	MinDim         int     `env:"MATRIXCALC_MIN_DIM" envDefault:"1"`
	MaxDim         int     `env:"MATRIXCALC_MAX_DIM" envDefault:"5"`
	InitialRows    int     `env:"MATRIXCALC_INITIAL_ROWS" envDefault:"3"`
	InitialCols    int     `env:"MATRIXCALC_INITIAL_COLS" envDefault:"3"`
	Epsilon        float64 `env:"MATRIXCALC_EPSILON" envDefault:"1e-9"`
	RoundingDigits int     `env:"MATRIXCALC_ROUNDING_DIGITS" envDefault:"4"`
	LogLevel       string  `env:"MATRIXCALC_LOG_LEVEL" envDefault:"info"`
	LogFormat      string  `env:"MATRIXCALC_LOG_FORMAT" envDefault:"text"`
	HistoryFile    string  `env:"MATRIXCALC_HISTORY_FILE"`
}

// parseEnv merges envFile (when present) into the environment and parses
// Config. A missing envFile is not an error; variables already set win over
// the file. The result is not validated, since flags may still override it.
func parseEnv(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case c.MinDim < 1 || c.MaxDim < c.MinDim:
		return fmt.Errorf("config: dimension bounds %d..%d are invalid", c.MinDim, c.MaxDim)
	case c.InitialRows < 1 || c.InitialCols < 1:
		return fmt.Errorf("config: initial size %dx%d is invalid", c.InitialRows, c.InitialCols)
	case math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0:
		return fmt.Errorf("config: epsilon %g is not a finite non-negative number", c.Epsilon)
	case c.RoundingDigits < 0 || c.RoundingDigits > matrix.MaxRoundingDigits:
		return fmt.Errorf("config: rounding digits %d not in 0..%d", c.RoundingDigits, matrix.MaxRoundingDigits)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("config: log format %q is not text or json", c.LogFormat)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: log level: %w", err)
	}

	return lvl, nil
}

// engineOptions maps the numeric settings onto matrix options.
func (c Config) engineOptions() []matrix.Option {
	return []matrix.Option{
		matrix.WithEpsilon(c.Epsilon),
		matrix.WithRoundingDigits(c.RoundingDigits),
	}
}

// gridOptions maps the settings onto calc options.
func (c Config) gridOptions() []calc.Option {
	return []calc.Option{
		calc.WithBounds(c.MinDim, c.MaxDim),
		calc.WithInitialSize(c.InitialRows, c.InitialCols),
		calc.WithEngineOptions(c.engineOptions()...),
	}
}

// newLogger builds the process logger; cfg must have been validated.
func newLogger(cfg Config, w io.Writer) *slog.Logger {
	lvl, _ := cfg.level()
	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(cfg.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
