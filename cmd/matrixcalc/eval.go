// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/matrixengine/calc"
	"github.com/katalvlaran/matrixengine/matrix"
)

// runEval prints the determinant and rank of every matrix document in paths.
// Engine errors are reported inline; only unreadable input fails the run.
func runEval(cfg Config, paths []string, stdin io.Reader, out io.Writer, logger *slog.Logger) error {
	if len(paths) == 0 {
		return fmt.Errorf("eval: %w: at least one FILE (or -) expected", errUsage)
	}
	opts := cfg.engineOptions()

	for _, path := range paths {
		docs, err := readDocuments(path, stdin)
		if err != nil {
			return fmt.Errorf("eval: %w", err)
		}
		for n, doc := range docs {
			label := doc.Name
			if label == "" {
				label = fmt.Sprintf("%s#%d", path, n+1)
			}
			if _, err := fmt.Fprintf(out, "%s\n%s\n", label, evalDocument(doc.Rows, opts)); err != nil {
				return err
			}
			logger.Debug("evaluated", "file", path, "document", n+1)
		}
	}

	return nil
}

// evalDocument formats both results for one matrix, two indented lines.
func evalDocument(rows [][]float64, opts []matrix.Option) string {
	m, err := matrix.FromRows(rows)
	if err != nil {
		fail := calc.Result{Err: err}
		return "  " + fail.String()
	}

	det, err := matrix.Determinant(m, opts...)
	d := calc.Result{Kind: calc.KindDeterminant, Value: det, Err: err}
	r, err := matrix.Rank(m, opts...)
	k := calc.Result{Kind: calc.KindRank, Value: float64(r), Err: err}

	return "  " + d.String() + "\n  " + k.String()
}
