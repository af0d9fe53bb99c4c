// SPDX-License-Identifier: MIT

package cofactor

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opMinor       = "cofactor.Minor"
	opDeterminant = "cofactor.Determinant"
	opCofactors   = "cofactor.Cofactors"
	opAdjoint     = "cofactor.Adjoint"
	opInverse     = "cofactor.Inverse"
)

// squareRows validates a square non-nil operand and copies its entries.
func squareRows(tag string, a matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	rows, err := matrix.ToRows(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return rows, nil
}

// minorRows drops row i and column j.
func minorRows(rows [][]float64, i, j int) [][]float64 {
	out := make([][]float64, 0, len(rows)-1)
	for r, row := range rows {
		if r == i {
			continue
		}
		next := make([]float64, 0, len(row)-1)
		next = append(next, row[:j]...)
		next = append(next, row[j+1:]...)
		out = append(out, next)
	}

	return out
}

// det expands along column 0, skipping zero entries.
func det(rows [][]float64) float64 {
	switch len(rows) {
	case 1:
		return rows[0][0]
	case 2:
		return rows[0][0]*rows[1][1] - rows[0][1]*rows[1][0]
	}
	var (
		sum  float64
		sign = 1.0
	)
	for i, row := range rows {
		if row[0] != 0 {
			sum += sign * row[0] * det(minorRows(rows, i, 0))
		}
		sign = -sign
	}

	return sum
}

// sign returns (-1)^(i+j).
func sign(i, j int) float64 {
	if (i+j)%2 == 0 {
		return 1
	}

	return -1
}

// cofactorRows returns the signed minors; a 1×1 input yields [[1]].
func cofactorRows(rows [][]float64) [][]float64 {
	n := len(rows)
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
	}
	if n == 1 {
		out[0][0] = 1
		return out
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out[i][j] = sign(i, j) * det(minorRows(rows, i, j))
		}
	}

	return out
}

// transposeRows transposes a square row set in place.
func transposeRows(rows [][]float64) {
	for i := range rows {
		for j := i + 1; j < len(rows); j++ {
			rows[i][j], rows[j][i] = rows[j][i], rows[i][j]
		}
	}
}

// Minor returns A with row i and column j removed, as A's kind.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare,
// matrix.ErrIndexOutOfBounds, matrix.ErrInvalidDimensions (1×1 has no minor).
func Minor(a matrix.Matrix, i, j int) (matrix.Matrix, error) {
	rows, err := squareRows(opMinor, a)
	if err != nil {
		return nil, err
	}
	n := len(rows)
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("%s(%d,%d): %w", opMinor, i, j, matrix.ErrIndexOutOfBounds)
	}
	if n == 1 {
		return nil, fmt.Errorf("%s: %w", opMinor, matrix.ErrInvalidDimensions)
	}
	m, err := matrix.FromRowsLike(a, minorRows(rows, i, j))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opMinor, err)
	}

	return m, nil
}

// Determinant returns det(A) by Laplace expansion along the first column.
// Complexity: O(n!) time.
func Determinant(a matrix.Matrix) (float64, error) {
	rows, err := squareRows(opDeterminant, a)
	if err != nil {
		return 0, err
	}

	return det(rows), nil
}

// Cofactors returns the cofactor matrix C, C[i][j] = (-1)^(i+j)·det(M_ij).
func Cofactors(a matrix.Matrix) (matrix.Matrix, error) {
	rows, err := squareRows(opCofactors, a)
	if err != nil {
		return nil, err
	}
	c, err := matrix.FromRowsLike(a, cofactorRows(rows))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCofactors, err)
	}

	return c, nil
}

// Adjoint returns the classical adjoint (adjugate) Cᵀ, so A·adj(A) = det(A)·I.
// The adjoint of a 1×1 matrix is [1].
func Adjoint(a matrix.Matrix) (matrix.Matrix, error) {
	rows, err := squareRows(opAdjoint, a)
	if err != nil {
		return nil, err
	}
	adj := cofactorRows(rows)
	transposeRows(adj)
	m, err := matrix.FromRowsLike(a, adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjoint, err)
	}

	return m, nil
}

// Inverse returns A⁻¹ = adj(A)/det(A).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrEntryNotFound,
// matrix.ErrSingular when |det(A)| ≤ tolerance.
// Complexity: O(n²·(n-1)!) time.
func Inverse(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	o := gatherOptions(opts...)
	rows, err := squareRows(opInverse, a)
	if err != nil {
		return nil, err
	}
	d := det(rows)
	if math.Abs(d) <= o.tol {
		return nil, fmt.Errorf("%s: det=%g: %w", opInverse, d, matrix.ErrSingular)
	}
	adj := cofactorRows(rows)
	transposeRows(adj)
	for _, row := range adj {
		floats.Scale(1/d, row)
	}
	m, err := matrix.FromRowsLike(a, adj)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInverse, err)
	}

	return m, nil
}
