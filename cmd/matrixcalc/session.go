// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/katalvlaran/matrixengine/calc"
)

// errQuit ends the interactive loop.
var errQuit = errors.New("quit")

// errUsage marks a command typed with the wrong arguments.
var errUsage = errors.New("usage")

const helpText = `commands (rows and columns are numbered from 1):
  show             print the matrix and the last result
  size R C         set the size, clamped to the bounds
  grow DR DC       add (or remove, when negative) rows and columns
  set I J VALUE    store VALUE in row I, column J
  row I V...       fill row I from the left
  det              compute the determinant
  rank             compute the rank
  load FILE        replace the matrix with the first document in FILE
  help             print this text
  quit             leave
`

// session executes REPL commands against a grid. It is independent of the
// terminal so the command set can be driven from tests.
type session struct {
	grid   *calc.Grid
	out    io.Writer
	logger *slog.Logger
}

func newSession(g *calc.Grid, out io.Writer, logger *slog.Logger) *session {
	return &session{grid: g, out: out, logger: logger}
}

// execute runs one input line. Command failures are printed and swallowed;
// only errQuit and write failures are returned.
func (s *session) execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	var err error
	switch cmd {
	case "quit", "exit":
		return errQuit
	case "help", "?":
		_, err = io.WriteString(s.out, helpText)
		return err
	case "show":
		err = s.show()
	case "size":
		err = s.resize(args, s.grid.SetSize)
	case "grow":
		err = s.resize(args, s.grid.Resize)
	case "set":
		err = s.set(args)
	case "row":
		err = s.row(args)
	case "det":
		err = s.report(s.grid.Determinant())
	case "rank":
		err = s.report(s.grid.Rank())
	case "load":
		err = s.load(args)
	default:
		err = fmt.Errorf("unknown command %q, try help", cmd)
	}
	if err == nil {
		return nil
	}

	s.logger.Debug("command failed", "command", cmd, "error", err)
	_, werr := fmt.Fprintf(s.out, "error: %v\n", err)

	return werr
}

func (s *session) show() error {
	if _, err := io.WriteString(s.out, s.grid.String()); err != nil {
		return err
	}
	if last, ok := s.grid.Last(); ok {
		_, err := fmt.Fprintln(s.out, last)
		return err
	}

	return nil
}

func (s *session) resize(args []string, apply func(int, int) error) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: two whole numbers expected", errUsage)
	}
	a, b, err := twoInts(args[0], args[1])
	if err != nil {
		return err
	}
	if err := apply(a, b); err != nil {
		return err
	}

	return s.show()
}

func (s *session) set(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("%w: set I J VALUE", errUsage)
	}
	i, j, err := twoInts(args[0], args[1])
	if err != nil {
		return err
	}

	return s.grid.SetCell(i-1, j-1, args[2])
}

func (s *session) row(args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: row I V...", errUsage)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: row %q is not a whole number", errUsage, args[0])
	}

	return s.grid.SetRow(i-1, args[1:]...)
}

func (s *session) load(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: load FILE", errUsage)
	}
	docs, err := readDocuments(args[0], strings.NewReader(""))
	if err != nil {
		return err
	}
	if err := s.grid.Load(docs[0].Rows); err != nil {
		return err
	}
	s.logger.Info("matrix loaded", "file", args[0], "documents", len(docs))

	return s.show()
}

func (s *session) report(res calc.Result) error {
	if res.OK() {
		s.logger.Debug("computed", "kind", res.Kind, "value", res.Value)
	}
	_, err := fmt.Fprintln(s.out, res)

	return err
}

func twoInts(a, b string) (int, int, error) {
	x, err := strconv.Atoi(a)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a whole number", errUsage, a)
	}
	y, err := strconv.Atoi(b)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q is not a whole number", errUsage, b)
	}

	return x, y, nil
}
