// SPDX-License-Identifier: MIT

package gauss

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opSolve       = "gauss.Solve"
	opInvert      = "gauss.Invert"
	opDeterminant = "gauss.Determinant"
)

// Solve returns X such that A·X = B.
//
// Blueprint:
//
//	Stage 1 (Validate): A non-nil and square, B non-nil with A.Rows() rows.
//	Stage 2 (Prepare):  copy [A | B] into the private working state.
//	Stage 3 (Forward):  per column pick the largest pivot, swap it into place,
//	                    normalize the pivot row and eliminate below it.
//	Stage 4 (Backward): eliminate above every pivot, last column first.
//	Stage 5 (Finalize): the right block is X; return it as A's kind.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrShapeMismatch.
//   - matrix.ErrEntryNotFound for an incomplete dense operand.
//   - matrix.ErrSingular when a pivot is ≤ the tolerance.
//
// Complexity: O(n²·(n+m)) time, O(n·(n+m)) memory.
func Solve(a, b matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	// Stage 1: Validate operands
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if err := matrix.ValidateNotNil(b); err != nil {
		return nil, fmt.Errorf("%s: %w", opSolve, err)
	}
	if b.Rows() != a.Rows() {
		return nil, fmt.Errorf("%s: B has %d rows, want %d: %w", opSolve, b.Rows(), a.Rows(), matrix.ErrShapeMismatch)
	}

	return solve(opSolve, a, b, NewOptions(opts...))
}

// solve runs Stages 2-5 of Solve on validated operands.
func solve(tag string, a, b matrix.Matrix, o Options) (matrix.Matrix, error) {
	// Stage 2: Private working copy [A | B]
	g, err := newAugmented(a, b, o.tol)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	// Stage 3: Forward elimination with partial pivoting
	if _, pivots, ok := g.forward(true); !ok {
		return nil, fmt.Errorf("%s: zero pivot in column %d: %w", tag, len(pivots), matrix.ErrSingular)
	}

	// Stage 4: Back-substitution
	g.backward()

	// Stage 5: Right block as A's kind
	x, err := matrix.FromRowsLike(a, g.right())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return x, nil
}

// Invert returns A⁻¹ computed as Solve(A, I).
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrSingular.
// Complexity: O(n³).
func Invert(a matrix.Matrix, opts ...Option) (matrix.Matrix, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}
	id, err := matrix.Identity(a.Rows())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvert, err)
	}

	return solve(opInvert, a, id, NewOptions(opts...))
}
