// SPDX-License-Identifier: MIT

package gauss_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linalg/gauss"
	"github.com/katalvlaran/linalg/matrix"
)

const tol = 1e-9

// GaussSuite exercises elimination, inversion and determinants.
type GaussSuite struct {
	suite.Suite
}

func TestGaussSuite(t *testing.T) {
	suite.Run(t, new(GaussSuite))
}

// rows builds a complete dense matrix or fails the test.
func (s *GaussSuite) rows(r [][]float64) *matrix.Dense {
	m, err := matrix.FromRows(r)
	require.NoError(s.T(), err)

	return m
}

// toRows reads every entry of m.
func (s *GaussSuite) toRows(m matrix.Matrix) [][]float64 {
	r, err := matrix.ToRows(m)
	require.NoError(s.T(), err)

	return r
}

// randomDominant returns an n×n strictly diagonally dominant matrix (non-singular).
func randomDominant(rng *rand.Rand, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		sum := 0.0
		for j := range out[i] {
			out[i][j] = rng.Float64()*2 - 1
			if j != i {
				if out[i][j] < 0 {
					sum -= out[i][j]
				} else {
					sum += out[i][j]
				}
			}
		}
		out[i][i] = sum + 1
	}

	return out
}

func flatten(r [][]float64) []float64 {
	var out []float64
	for _, row := range r {
		out = append(out, row...)
	}

	return out
}

// TestSolveTwoByTwo checks the canonical 2×2 system [[4,1],[1,3]]·x = [1,2].
func (s *GaussSuite) TestSolveTwoByTwo() {
	a := s.rows([][]float64{{4, 1}, {1, 3}})
	b := s.rows([][]float64{{1}, {2}})

	x, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, x.Rows())
	require.Equal(s.T(), 1, x.Cols())
	got := s.toRows(x)
	require.InDelta(s.T(), 1.0/11, got[0][0], tol)
	require.InDelta(s.T(), 7.0/11, got[1][0], tol)
	require.InDelta(s.T(), 0.0909, got[0][0], 1e-4)
	require.InDelta(s.T(), 0.6364, got[1][0], 1e-4)
}

// TestDeterminantTwoByTwo checks det([[4,1],[1,3]]) = 11.
func (s *GaussSuite) TestDeterminantTwoByTwo() {
	det, err := gauss.Determinant(s.rows([][]float64{{4, 1}, {1, 3}}))
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 11.0, det, tol)
}

// TestSingular verifies that a rank-deficient system is reported, not solved.
func (s *GaussSuite) TestSingular() {
	a := s.rows([][]float64{{1, 2}, {2, 4}})
	b := s.rows([][]float64{{1}, {2}})

	_, err := gauss.Solve(a, b)
	require.ErrorIs(s.T(), err, matrix.ErrSingular)

	_, err = gauss.Invert(a)
	require.ErrorIs(s.T(), err, matrix.ErrSingular)

	det, err := gauss.Determinant(a)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, det)
}

// TestZeroLeadingPivot needs a row swap before the first elimination step.
func (s *GaussSuite) TestZeroLeadingPivot() {
	a := s.rows([][]float64{{0, 1}, {1, 0}})
	b := s.rows([][]float64{{3}, {5}})

	x, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)
	got := s.toRows(x)
	require.InDelta(s.T(), 5.0, got[0][0], tol)
	require.InDelta(s.T(), 3.0, got[1][0], tol)

	det, err := gauss.Determinant(a)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), -1.0, det, tol) // one swap flips the sign
}

// TestInvertProduct checks A·A⁻¹ ≈ I.
func (s *GaussSuite) TestInvertProduct() {
	a := s.rows([][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	inv, err := gauss.Invert(a)
	require.NoError(s.T(), err)

	prod, err := matrix.Mul(a, inv)
	require.NoError(s.T(), err)
	id, err := matrix.Identity(3)
	require.NoError(s.T(), err)
	ok, err := matrix.AllClose(prod, id, 0, tol)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

// TestMultipleRightHandSides solves for several columns at once.
func (s *GaussSuite) TestMultipleRightHandSides() {
	a := s.rows([][]float64{{3, 2}, {1, 2}})
	b := s.rows([][]float64{{5, 3}, {3, -1}})

	x, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)
	ax, err := matrix.Mul(a, x)
	require.NoError(s.T(), err)
	ok, err := matrix.AllClose(ax, b, 0, tol)
	require.NoError(s.T(), err)
	require.True(s.T(), ok)
}

// TestSparseKeepsKind verifies that a sparse A yields a sparse solution.
func (s *GaussSuite) TestSparseKeepsKind() {
	a, err := matrix.SparseFromSlice(3, 3, []float64{
		4, 0, 0,
		0, 5, 0,
		0, 0, 2,
	})
	require.NoError(s.T(), err)
	b, err := matrix.FromSlice(3, 1, []float64{8, 0, 1})
	require.NoError(s.T(), err)

	x, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), matrix.KindSparse, x.Kind())
	sx := x.(*matrix.Sparse)
	require.Equal(s.T(), 2, sx.NonZero()) // x[1] = 0 is not stored
	v, err := x.At(2, 0)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.5, v, tol)
}

// TestOperandsUnchanged verifies that elimination runs on a private copy.
func (s *GaussSuite) TestOperandsUnchanged() {
	in := [][]float64{{0, 2}, {3, 1}}
	a := s.rows(in)
	b := s.rows([][]float64{{1}, {1}})

	_, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)
	require.Equal(s.T(), in, s.toRows(a))
	require.Equal(s.T(), [][]float64{{1}, {1}}, s.toRows(b))
}

// TestValidation covers the argument errors.
func (s *GaussSuite) TestValidation() {
	rect, err := matrix.Zeros(2, 3)
	require.NoError(s.T(), err)
	sq := s.rows([][]float64{{1, 0}, {0, 1}})
	wrongB := s.rows([][]float64{{1}, {2}, {3}})

	_, err = gauss.Solve(rect, sq)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	_, err = gauss.Solve(sq, wrongB)
	require.ErrorIs(s.T(), err, matrix.ErrShapeMismatch)
	_, err = gauss.Solve(nil, sq)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	_, err = gauss.Solve(sq, nil)
	require.ErrorIs(s.T(), err, matrix.ErrNilMatrix)
	_, err = gauss.Invert(rect)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
	_, err = gauss.Determinant(rect)
	require.ErrorIs(s.T(), err, matrix.ErrNonSquare)
}

// TestIncompleteDense surfaces a missing entry instead of treating it as zero.
func (s *GaussSuite) TestIncompleteDense() {
	a, err := matrix.NewDense(2, 2)
	require.NoError(s.T(), err)
	require.NoError(s.T(), a.Set(0, 0, 1))

	_, err = gauss.Determinant(a)
	require.ErrorIs(s.T(), err, matrix.ErrEntryNotFound)
}

// TestTolerance treats a tiny pivot as singular only when asked to.
func (s *GaussSuite) TestTolerance() {
	a := s.rows([][]float64{{1, 1}, {1, 1 + 1e-14}})
	b := s.rows([][]float64{{1}, {1}})

	_, err := gauss.Solve(a, b)
	require.NoError(s.T(), err)

	_, err = gauss.Solve(a, b, gauss.WithTolerance(1e-10))
	require.ErrorIs(s.T(), err, matrix.ErrSingular)

	det, err := gauss.Determinant(a, gauss.WithTolerance(1e-10))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0.0, det)

	require.Panics(s.T(), func() { gauss.WithTolerance(-1) })
	require.Equal(s.T(), gauss.DefaultTolerance, gauss.NewOptions().Tolerance())
}

// TestAgainstGonum cross-checks determinant, inverse and solve with gonum/mat.
func (s *GaussSuite) TestAgainstGonum() {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{1, 2, 3, 5, 8} {
		in := randomDominant(rng, n)
		a := s.rows(in)
		ref := mat.NewDense(n, n, flatten(in))

		det, err := gauss.Determinant(a)
		require.NoError(s.T(), err)
		require.InDelta(s.T(), mat.Det(ref), det, 1e-8*(1+abs(det)))

		inv, err := gauss.Invert(a)
		require.NoError(s.T(), err)
		var refInv mat.Dense
		require.NoError(s.T(), refInv.Inverse(ref))
		got := s.toRows(inv)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.InDelta(s.T(), refInv.At(i, j), got[i][j], 1e-9)
			}
		}

		rhs := make([]float64, n)
		for i := range rhs {
			rhs[i] = float64(i + 1)
		}
		b, err := matrix.NewColumn(rhs)
		require.NoError(s.T(), err)
		x, err := gauss.Solve(a, b)
		require.NoError(s.T(), err)
		var refX mat.Dense
		require.NoError(s.T(), refX.Solve(ref, mat.NewDense(n, 1, rhs)))
		gotX := s.toRows(x)
		for i := 0; i < n; i++ {
			require.InDelta(s.T(), refX.At(i, 0), gotX[i][0], 1e-9)
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}
