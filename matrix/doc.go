// SPDX-License-Identifier: MIT

// Package matrix provides dense and sparse float64 matrices behind one Matrix
// interface, together with the algebra shared by both storage kinds.
//
// # Storage kinds
//
//   - *Dense stores an entry for every index it was given. NewDense returns an
//     EMPTY matrix (use the factories for a filled one); reading an in-bounds
//     index that was never written returns ErrEntryNotFound instead of a
//     silent zero. IsComplete reports whether every index is stored.
//   - *Sparse stores non-zero entries only. Set(i, j, 0) removes the entry and
//     any missing index reads as 0, so NonZero always equals the number of
//     non-zero values.
//
// Both kinds check bounds on every access (ErrIndexOutOfBounds; a failed Set
// leaves the matrix untouched) and, by default, reject NaN/±Inf on Set
// (ErrNaNInf). WithValidateNaNInf(false) disables that policy per instance.
//
// # Value semantics
//
// Matrices behave as values: every operator returns a fresh result of the
// left operand's kind and numeric policy, and only Set mutates.
//
//   - Shape:       Transpose, Slice (inclusive bounds), Concat.
//   - Arithmetic:  Add, Sub, Neg, Scale, Hadamard, Mul.
//   - Reductions:  Trace, Norm2 (Frobenius).
//   - Band masks:  Diag, TriUpper, TriLower, StrictTriUpper, StrictTriLower.
//   - Comparison:  AllClose, Equal.
//   - Conversion:  ToRows, FromRows, FromRowsLike, Column, Row, MatVec,
//     ToDense, ToSparse.
//
// Checked functions validate their operands and return sentinel errors
// wrapped with the operation name (match them with errors.Is). The Must*
// variants (MustAdd, MustSub, MustMul, MustSlice) are for callers that have
// already validated shapes; they panic on failure.
//
// Sparse operands take fast paths that touch stored entries only.
//
// # Display
//
// Fprint writes rows of space-separated values, one row per line, and fails
// with ErrEntryNotFound for an incomplete dense matrix. String never fails:
// it returns "" for an incomplete dense matrix.
package matrix
