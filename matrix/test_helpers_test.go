// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures shared by the unit tests,
//     examples and benchmarks.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

// tol is the absolute tolerance used by the property tests.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions, which
// forces the generic (non-sparse) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an EMPTY r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// MustRows builds a complete *Dense from literal rows or fails the test.
func MustRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustSparseRows builds a *Sparse from literal rows or fails the test.
func MustSparseRows(t testing.TB, rows [][]float64) *matrix.Sparse {
	t.Helper()
	s, err := matrix.ToSparse(MustRows(t, rows))
	require.NoError(t, err)

	return s
}

// MustAt reads (i,j) or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// RequireRows asserts that m holds exactly want (entrywise within tol).
func RequireRows(t testing.TB, want [][]float64, m matrix.Matrix) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	require.Equal(t, len(want[0]), m.Cols(), "cols")
	got, err := matrix.ToRows(m)
	require.NoError(t, err)
	for i := range want {
		require.InDeltaSlice(t, want[i], got[i], tol, "row %d", i)
	}
}

// RequireClose asserts AllClose(a, b, 0, tol).
func RequireClose(t testing.TB, a, b matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(a, b, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "matrices differ:\n%v\nvs\n%v", a, b)
}

// RandomRows returns an r×c matrix of values in [-1, 1) from a fixed seed.
// Roughly a third of the entries are zero so sparse paths have work to skip.
func RandomRows(seed int64, r, c int) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
		for j := range out[i] {
			if rng.Intn(3) == 0 {
				continue
			}
			out[i][j] = rng.Float64()*2 - 1
		}
	}

	return out
}

// bothKinds returns the same values as a Dense and as a Sparse.
func bothKinds(t testing.TB, rows [][]float64) []matrix.Matrix {
	t.Helper()

	return []matrix.Matrix{MustRows(t, rows), MustSparseRows(t, rows)}
}
