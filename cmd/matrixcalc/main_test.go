package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_EvalStdin(t *testing.T) {
	clearConfigEnv(t)
	input := "- [1, 2]\n- [3, 4]\n" +
		"---\nname: wide\nrows: [[1, 2, 3]]\n" +
		"---\nname: ragged\nrows: [[1, 2], [3]]\n"

	var out, errb bytes.Buffer
	code := run([]string{"-env", "", "eval", "-"}, strings.NewReader(input), &out, &errb)
	require.Equal(t, 0, code, errb.String())
	require.Equal(t, "-#1\n  Determinant (Δ): -2\n  Rank: 2\n"+
		"wide\n  Error: matrix must be square\n  Rank: 1\n"+
		"ragged\n  Error: matrix is empty, ragged, or holds non-finite values\n", out.String())
}

func TestRun_EvalFilesWithDigits(t *testing.T) {
	clearConfigEnv(t)
	path := filepath.Join(t.TempDir(), "third.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": "third", "rows": [[3, 0], [0, 0.1111]]}`), 0o600))

	var out, errb bytes.Buffer
	code := run([]string{"-env", "", "-digits", "2", "eval", path}, nil, &out, &errb)
	require.Equal(t, 0, code, errb.String())
	require.Equal(t, "third\n  Determinant (Δ): 0.33\n  Rank: 2\n", out.String())
}

func TestRun_Failures(t *testing.T) {
	clearConfigEnv(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"NoFiles", []string{"-env", "", "eval"}, 1},
		{"MissingFile", []string{"-env", "", "eval", filepath.Join(t.TempDir(), "absent.yaml")}, 1},
		{"UnknownCommand", []string{"-env", "", "draw"}, 1},
		{"BadConfig", []string{"-env", "", "-max-dim", "0", "eval", "-"}, 1},
		{"NaNEpsilon", []string{"-env", "", "-epsilon", "NaN", "eval", "-"}, 1},
		{"InfEpsilon", []string{"-env", "", "-epsilon", "+Inf", "eval", "-"}, 1},
		{"BadFlag", []string{"-nope"}, 2},
		{"Help", []string{"-h"}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out, errb bytes.Buffer
			code := run(tc.args, strings.NewReader(""), &out, &errb)
			require.Equal(t, tc.code, code, errb.String())
			if tc.code == 1 {
				require.NotEmpty(t, errb.String())
			}
		})
	}
}
