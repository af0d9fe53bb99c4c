// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// Determinant returns det(A) by forward elimination with partial pivoting:
// (-1)^swaps times the product of the pivots. A pivot at or below the
// tolerance yields exactly 0 (no error: a singular matrix has a determinant).
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrEntryNotFound.
// Complexity: O(n³) time, O(n²) memory.
func Determinant(a matrix.Matrix, opts ...Option) (float64, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return 0, fmt.Errorf("%s: %w", opDeterminant, err)
	}
	o := NewOptions(opts...)
	g, err := newAugmented(a, nil, o.tol)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opDeterminant, err)
	}

	swaps, pivots, ok := g.forward(false)
	if !ok {
		return 0, nil
	}
	det := 1.0
	for _, p := range pivots {
		det *= p
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}
