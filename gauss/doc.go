// SPDX-License-Identifier: MIT

// Package gauss solves square linear systems A·X = B by Gaussian elimination
// with partial pivoting.
//
// The elimination runs on a private augmented working copy [A | B] that never
// escapes the call, so operands are left untouched and results are fresh
// matrices of A's kind and numeric policy.
//
// The key entry points are:
//
//   - Solve       – X such that A·X = B for a square A and any B with A.Rows() rows.
//   - Invert      – A⁻¹ as Solve(A, I).
//   - Determinant – det(A) by forward elimination, tracking row swaps.
//
// # Pivoting
//
// For every column r the row with the largest |value| among rows r..n-1 is
// swapped into place (the first one wins on ties). A pivot whose magnitude is
// ≤ the tolerance makes the system singular: Solve and Invert return
// matrix.ErrSingular, Determinant returns 0. The default tolerance is 0, which
// means only an exact zero pivot is singular; WithTolerance opts into a
// threshold.
//
// # Complexity
//
//   - Solve:       O(n²·(n+m)) time, O(n·(n+m)) memory for an n×n A and n×m B.
//   - Invert:      O(n³) time, O(n²) memory.
//   - Determinant: O(n³) time, O(n²) memory.
package gauss
