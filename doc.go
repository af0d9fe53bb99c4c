// SPDX-License-Identifier: MIT

// Package linalg is a small linear-algebra engine: dense and sparse float64
// matrices with a shared algebra, and direct and iterative solvers for
// linear systems.
//
// Everything lives in four packages:
//
//	matrix/    Index, the Matrix interface, *Dense and *Sparse storage,
//	           factories, algebra operators, reductions, band masks,
//	           conversions, comparison and display
//	gauss/     Gaussian elimination with partial pivoting:
//	           Solve, Invert, Determinant
//	cofactor/  Laplace expansion for small matrices:
//	           Minor, Determinant, Cofactors, Adjoint, Inverse
//	iterative/ SOR, CG and restarted GMRES on the normal equations
//
// Quick example:
//
//	a, _ := matrix.FromRows([][]float64{{4, 1}, {1, 3}})
//	b, _ := matrix.NewColumn([]float64{1, 2})
//	x, err := gauss.Solve(a, b) // x ≈ [[0.0909], [0.6364]]
//	if errors.Is(err, matrix.ErrSingular) {
//		// no unique solution
//	}
//
// Design principles:
//
//   - Matrices are values: operators return fresh results of the left
//     operand's kind and never mutate their inputs.
//   - Failures are returned, never hidden: a never-written dense entry is
//     ErrEntryNotFound, a bad index is ErrIndexOutOfBounds, and a zero pivot
//     is ErrSingular. Only the explicitly unchecked Must* helpers panic.
//   - Vector kernels run on gonum (floats, blas64); the runnable programs
//     under examples/ show the API end to end.
package linalg
