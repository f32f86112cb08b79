// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernel and LU solver.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlga/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide wraps any Matrix to hide its concrete type, forcing the At-based
// fallback paths of the kernels.
type hide struct{ matrix.Matrix }

// MustFrom builds a *Dense from rows or fails the test.
func MustFrom(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// randomWellConditioned returns an n×n matrix with U(-1,1) entries and a
// diagonal shifted by n, so that it is comfortably invertible.
func randomWellConditioned(rng *rand.Rand, n int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 2*rng.Float64() - 1
		}
		rows[i][i] += float64(n)
	}

	return rows
}

func randomVec(rng *rand.Rand, n int) []float64 {
	v := make([]float64, n)
	for i := range v {
		v[i] = 2*rng.Float64() - 1
	}

	return v
}

// toGonum copies rows into a gonum *mat.Dense for cross-checks.
func toGonum(rows [][]float64) *mat.Dense {
	n, c := len(rows), len(rows[0])
	data := make([]float64, 0, n*c)
	for _, r := range rows {
		data = append(data, r...)
	}

	return mat.NewDense(n, c, data)
}

// requireClose compares two matrices element-wise within tol.
func requireClose(t *testing.T, want, got matrix.Matrix, tol float64) {
	t.Helper()
	ok, err := matrix.AllClose(want, got, matrix.WithEpsilon(tol))
	require.NoError(t, err)
	require.Truef(t, ok, "want\n%v\ngot\n%v", want, got)
}
