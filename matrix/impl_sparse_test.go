// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Sparse implementation.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/matrix"
)

func TestNewSparse(t *testing.T) {
	t.Parallel()
	_, err := matrix.NewSparse(0, 1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	s, err := matrix.NewSparse(3, 2)
	require.NoError(t, err)
	require.Equal(t, matrix.KindSparse, s.Kind())
	require.Equal(t, 0, s.NonZero())
	r, c := s.Shape()
	require.Equal(t, []int{3, 2}, []int{r, c})
}

// TestSparseMissingReadsZero covers the additive-identity default.
func TestSparseMissingReadsZero(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparse(4, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			require.Equal(t, 0.0, MustAt(t, s, i, j))
		}
	}

	_, err = s.At(4, 0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
	require.ErrorIs(t, s.Set(0, 4, 1), matrix.ErrIndexOutOfBounds)
	require.Equal(t, 0, s.NonZero())
}

// TestSparseNeverStoresZero checks that zero writes are "no entry".
func TestSparseNeverStoresZero(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparse(2, 2)
	require.NoError(t, err)

	require.NoError(t, s.Set(0, 0, 0))
	require.Equal(t, 0, s.NonZero())

	require.NoError(t, s.Set(0, 1, 5))
	require.Equal(t, 1, s.NonZero())

	require.NoError(t, s.Set(0, 1, 0)) // removes the stored entry
	require.Equal(t, 0, s.NonZero())
	require.Equal(t, 0.0, MustAt(t, s, 0, 1))

	// Operators keep the invariant too: a − a stores nothing.
	a := MustSparseRows(t, [][]float64{{1, 0}, {0, 2}})
	d, err := matrix.Sub(a, a)
	require.NoError(t, err)
	require.Equal(t, 0, d.(*matrix.Sparse).NonZero())

	z, err := matrix.Scale(a, 0)
	require.NoError(t, err)
	require.Equal(t, 0, z.(*matrix.Sparse).NonZero())
}

func TestSparseNaNInfPolicy(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, s.Set(0, 0, math.NaN()), matrix.ErrNaNInf)

	loose, err := matrix.NewSparse(1, 1, matrix.WithValidateNaNInf(false))
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, math.Inf(1)))
	require.Equal(t, 1, loose.NonZero())
}

// TestSparseTraversalDeterministic checks Indices/Do order and early stop.
func TestSparseTraversalDeterministic(t *testing.T) {
	t.Parallel()
	s, err := matrix.NewSparse(3, 3)
	require.NoError(t, err)
	require.NoError(t, s.Set(2, 0, 1))
	require.NoError(t, s.Set(0, 2, 2))
	require.NoError(t, s.Set(1, 1, 3))
	require.NoError(t, s.Set(0, 0, 4))

	want := []matrix.Index{{Row: 0, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 1}, {Row: 2, Col: 0}}
	require.Equal(t, want, s.Indices())

	var vals []float64
	s.Do(func(_, _ int, v float64) bool {
		vals = append(vals, v)
		return len(vals) < 3
	})
	require.Equal(t, []float64{4, 2, 3}, vals)
}

func TestSparseCloneIndependent(t *testing.T) {
	t.Parallel()
	s := MustSparseRows(t, [][]float64{{0, 1}, {2, 0}})
	c := s.Clone()
	require.NoError(t, c.Set(0, 1, 0))

	require.Equal(t, 2, s.NonZero())
	require.Equal(t, 1, c.(*matrix.Sparse).NonZero())
}

func TestSparseString(t *testing.T) {
	t.Parallel()
	s := MustSparseRows(t, [][]float64{{0, 1.5}, {-2, 0}})
	require.Equal(t, "0 1.5\n-2 0\n", s.String())
}

func TestSparseFactories(t *testing.T) {
	t.Parallel()
	z, err := matrix.SparseZeros(3, 2)
	require.NoError(t, err)
	require.Equal(t, 0, z.NonZero())

	o, err := matrix.SparseOnes(2)
	require.NoError(t, err)
	require.Equal(t, 4, o.NonZero())

	id, err := matrix.SparseIdentity(4)
	require.NoError(t, err)
	require.Equal(t, 4, id.NonZero())
	RequireRows(t, [][]float64{{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1}}, id)

	f, err := matrix.SparseFromSlice(2, 3, []float64{0, 0, 1, 2, 0, 0})
	require.NoError(t, err)
	require.Equal(t, 2, f.NonZero())

	_, err = matrix.SparseFromSlice(2, 3, []float64{1})
	require.ErrorIs(t, err, matrix.ErrShapeMismatch)
}
