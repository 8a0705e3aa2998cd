// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernels.
//   - Keep literal matrices readable as [][]float64 and compare whole matrices
//     at once through go-cmp diffs.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/densela/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} to force the kernels onto their At-based fallback path.
type hide struct{ matrix.Matrix }

// failingMatrix is a structurally valid Matrix whose At always fails.
// It drives the accessor-error branches of the fallback paths.
type failingMatrix struct{ r, c int }

func (f failingMatrix) Rows() int { return f.r }

func (f failingMatrix) Cols() int { return f.c }

func (f failingMatrix) At(int, int) (float64, error) { return 0, errAccessor }

func (f failingMatrix) Set(int, int, float64) error { return errAccessor }

func (f failingMatrix) Clone() matrix.Matrix { return f }

// errAccessor is a foreign (non-package) error returned by failingMatrix.
var errAccessor = errors.New("test: accessor failure")

// approxOpts compares float64 values within the package tolerance and treats
// NaN as equal to NaN so snapshots containing NaN can still be asserted.
var approxOpts = cmp.Options{
	cmpopts.EquateApprox(0, matrix.Epsilon/10),
	cmpopts.EquateNaNs(),
}

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFromRows builds a *Dense from a literal or fails the test.
func MustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d): %v", i, j, err)
	}
}

// RandomFill fills m with deterministic pseudo-random values in [-1, 1).
func RandomFill(t testing.TB, m matrix.Matrix, seed int64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, rng.Float64()*2-1)
		}
	}
}

// RandDense returns an r×c *Dense filled by RandomFill.
func RandDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m := MustDense(t, r, c)
	RandomFill(t, m, seed)

	return m
}

// CompareExact fails unless m has exactly the values in want (bitwise ==).
func CompareExact(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, m.ToRows()); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// CompareApprox fails unless m matches want within Epsilon/10 (NaN == NaN).
func CompareApprox(t testing.TB, want [][]float64, m *matrix.Dense) {
	t.Helper()
	if diff := cmp.Diff(want, m.ToRows(), approxOpts); diff != "" {
		t.Fatalf("matrix mismatch (-want +got):\n%s", diff)
	}
}

// ScaledIdentity returns alpha * I_n as a literal.
func ScaledIdentity(n int, alpha float64) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = alpha
	}

	return out
}
