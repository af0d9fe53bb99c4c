// SPDX-License-Identifier: MIT
// Package matrix: conversions between matrices, row slices and vectors.
//
// These helpers are the bridge used by the solver packages: the solvers keep
// their private working state in [][]float64 / []float64 and hand results back
// as Matrix values of the caller's kind.

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

// Operation tags for conversions.
const (
	opToRows   = "ToRows"
	opFromRows = "FromRows"
	opColumn   = "Column"
	opRow      = "Row"
	opMatVec   = "MatVec"
	opToDense  = "ToDense"
	opToSparse = "ToSparse"
)

// ToRows copies m into a freshly allocated row-major [][]float64.
// A dense matrix must be complete (ErrEntryNotFound otherwise).
// Complexity: O(r*c).
func ToRows(m Matrix) ([][]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToRows, err)
	}
	r, c := m.Rows(), m.Cols()
	out := make([][]float64, r)
	for i := range out {
		out[i] = make([]float64, c)
	}
	if s, ok := m.(*Sparse); ok {
		for k, v := range s.data {
			out[k.Row][k.Col] = v
		}

		return out, nil
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, atErrorf(opToRows, i, j, err)
			}
			out[i][j] = v
		}
	}

	return out, nil
}

// FromRows builds a complete Dense from a rectangular [][]float64.
// Errors: ErrInvalidDimensions for an empty input, ErrShapeMismatch for ragged rows.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, ErrShapeMismatch)
		}
	}

	return fillDense(len(rows), c, func(i, j int) float64 { return rows[i][j] }, opts...)
}

// FromRowsLike builds a matrix of the same kind and policy as like from rows.
func FromRowsLike(like Matrix, rows [][]float64) (Matrix, error) {
	if err := ValidateNotNil(like); err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	c := len(rows[0])
	for _, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf(opFromRows, ErrShapeMismatch)
		}
	}
	f := func(i, j int) float64 { return rows[i][j] }
	if like.Kind() == KindSparse {
		return fillSparse(len(rows), c, f, policyOf(like))
	}

	return fillDense(len(rows), c, f, policyOf(like))
}

// NewColumn builds an n×1 Dense column vector holding a copy of v.
func NewColumn(v []float64, opts ...Option) (*Dense, error) {
	if len(v) == 0 {
		return nil, ErrInvalidDimensions
	}

	return fillDense(len(v), 1, func(i, _ int) float64 { return v[i] }, opts...)
}

// Column copies column j of m into a new slice.
func Column(m Matrix, j int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColumn, err)
	}
	if j < 0 || j >= m.Cols() {
		return nil, matrixErrorf(opColumn, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.Rows())
	var err error
	for i := range out {
		if out[i], err = m.At(i, j); err != nil {
			return nil, atErrorf(opColumn, i, j, err)
		}
	}

	return out, nil
}

// Row copies row i of m into a new slice.
func Row(m Matrix, i int) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRow, err)
	}
	if i < 0 || i >= m.Rows() {
		return nil, matrixErrorf(opRow, ErrIndexOutOfBounds)
	}
	out := make([]float64, m.Cols())
	var err error
	for j := range out {
		if out[j], err = m.At(i, j); err != nil {
			return nil, atErrorf(opRow, i, j, err)
		}
	}

	return out, nil
}

// MatVec computes y = m·x for a vector x of length m.Cols().
// Sparse operands only touch stored entries.
// Complexity: O(r*c) dense, O(nnz) sparse.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, m.Rows())
	if s, ok := m.(*Sparse); ok {
		// Row-major order fixes the summation order, so results are reproducible.
		s.Do(func(i, j int, v float64) bool {
			y[i] += v * x[j]
			return true
		})

		return y, nil
	}
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	for i, row := range rows {
		y[i] = floats.Dot(row, x)
	}

	return y, nil
}

// ToDense returns a complete Dense copy of m (policy preserved).
func ToDense(m Matrix) (*Dense, error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}

	return FromRows(rows, policyOf(m))
}

// ToSparse returns a Sparse copy of m holding only its non-zero entries.
func ToSparse(m Matrix) (*Sparse, error) {
	rows, err := ToRows(m)
	if err != nil {
		return nil, matrixErrorf(opToSparse, err)
	}

	return fillSparse(len(rows), len(rows[0]), func(i, j int) float64 { return rows[i][j] }, policyOf(m))
}
