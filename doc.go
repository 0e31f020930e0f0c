// Package matrixengine computes determinants and ranks of small dense
// matrices, with an interactive calculator built on top.
//
// 🚀 What is matrixengine?
//
//	A compact library and CLI that brings together:
//		• Dense matrices: row-major storage, bounds-checked access, resizing
//		• Determinant: Gaussian elimination with partial pivoting, rounded result
//		• Rank: column-compacting elimination, any shape
//		• Calculator grid: bounded editor with text cells and formatted results
//		• matrixcalc: REPL and batch evaluation of YAML/JSON matrix files
//
// ✨ Why choose matrixengine?
//
//   - Small surface: two operations over one concrete type
//   - Predictable: inputs are never mutated and results are deterministic
//   - Typed errors: sentinels usable with errors.Is
//
// Under the hood, everything is organized under these packages:
//
//	matrix/          Dense type, validators, Determinant and Rank
//	calc/            bounded calculator grid and result formatting
//	cmd/matrixcalc/  command-line front end (REPL and eval)
//	examples/        runnable scenario
//
// Quick example:
//
//	|2 1|
//	|4 3|  → Determinant (Δ): 2, Rank: 2
//
// Install:
//
//	go get github.com/katalvlaran/matrixengine/matrix
//	go install github.com/katalvlaran/matrixengine/cmd/matrixcalc@latest
package matrixengine
