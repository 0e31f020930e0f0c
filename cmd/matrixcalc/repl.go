// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/chzyer/readline"

	"github.com/katalvlaran/matrixengine/calc"
)

const prompt = "matrix> "

// replConfig returns the line editor settings for an interactive terminal.
func replConfig(cfg Config) *readline.Config {
	return &readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	}
}

// runREPL reads commands through the line editor until quit, EOF, or an
// interrupt on an empty line.
func runREPL(cfg Config, rlc *readline.Config, logger *slog.Logger) error {
	g, err := calc.New(cfg.gridOptions()...)
	if err != nil {
		return err
	}

	rl, err := readline.NewEx(rlc)
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer rl.Close()

	s := newSession(g, rl.Stdout(), logger)
	r, c := g.Shape()
	fmt.Fprintf(rl.Stdout(), "matrix %dx%d, type help for commands\n", r, c)
	logger.Debug("repl started", "history", cfg.HistoryFile)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				return nil
			}
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("readline: %w", err)
		}

		if err := s.execute(line); err != nil {
			if errors.Is(err, errQuit) {
				return nil
			}
			return err
		}
	}
}
