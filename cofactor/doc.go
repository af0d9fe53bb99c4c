// SPDX-License-Identifier: MIT

// Package cofactor computes determinants, adjoints and inverses of square
// matrices by Laplace (cofactor) expansion.
//
// Expansion is exact in structure but factorial in time: Determinant of an
// n×n matrix evaluates O(n!) products and Inverse repeats that for all n²
// cofactors. Use it for small matrices (n ≲ 8) or as an independent oracle
// for the elimination-based solvers in package gauss.
//
//   - Minor       – A with one row and one column removed.
//   - Determinant – 1×1 entry, 2×2 ad−bc, otherwise expansion along column 0.
//   - Cofactors   – the matrix of signed minors (−1)^(i+j)·det(M_ij).
//   - Adjoint     – the transpose of Cofactors; [1] for a 1×1 matrix.
//   - Inverse     – Adjoint / det; matrix.ErrSingular when |det| ≤ tolerance.
//
// Results keep the kind and numeric policy of the operand.
package cofactor
