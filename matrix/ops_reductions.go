// SPDX-License-Identifier: MIT
// Package matrix: scalar reductions (trace, Frobenius norm).

package matrix

import (
	"gonum.org/v1/gonum/floats"
)

const (
	opTrace = "Trace"
	opNorm2 = "Norm2"
)

// Trace sums the first min(Rows, Cols) diagonal entries of m.
// Complexity: O(min(r,c)).
func Trace(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opTrace, err)
	}
	n := min(m.Rows(), m.Cols())
	sum := ZeroSum
	for i := 0; i < n; i++ {
		v, err := m.At(i, i)
		if err != nil {
			return 0, atErrorf(opTrace, i, i, err)
		}
		sum += v
	}

	return sum, nil
}

// Norm2 returns the Frobenius norm sqrt(trace(mᵀ·m)).
//
// The trace of mᵀm is the sum of squares of every entry, so the norm is
// evaluated directly over the entries (floats.Norm with L=2 scales to avoid
// overflow) instead of materializing the product.
//
// Complexity: O(r*c) dense, O(nnz) sparse.
func Norm2(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opNorm2, err)
	}
	var vals []float64
	if s, ok := m.(*Sparse); ok {
		vals = make([]float64, 0, len(s.data))
		s.Do(func(_, _ int, v float64) bool {
			vals = append(vals, v)
			return true
		})
	} else {
		rows, err := ToRows(m)
		if err != nil {
			return 0, matrixErrorf(opNorm2, err)
		}
		vals = make([]float64, 0, m.Rows()*m.Cols())
		for _, row := range rows {
			vals = append(vals, row...)
		}
	}
	if len(vals) == 0 {
		return 0, nil
	}

	return floats.Norm(vals, 2), nil
}
