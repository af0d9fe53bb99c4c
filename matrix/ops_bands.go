// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Band masks: keep the entries of a named band (diagonal, triangles) and
//     zero everything else. The SOR splitting A = D − E − F is built from these.
//
// Determinism & Performance:
//   - One remap pass; sparse inputs only visit stored entries.

package matrix

const (
	opDiag           = "Diag"
	opTriUpper       = "TriUpper"
	opTriLower       = "TriLower"
	opStrictTriUpper = "StrictTriUpper"
	opStrictTriLower = "StrictTriLower"
)

// bandMask keeps entries (i,j) for which keep(i,j) holds and zeroes the rest.
func bandMask(tag string, m Matrix, keep func(i, j int) bool) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(tag, err)
	}

	return remap(tag, m, m.Rows(), m.Cols(), func(i, j int, v float64) (int, int, float64, bool) {
		return i, j, v, keep(i, j)
	})
}

// Diag keeps the main diagonal (i == j).
func Diag(m Matrix) (Matrix, error) {
	return bandMask(opDiag, m, func(i, j int) bool { return i == j })
}

// TriUpper keeps the upper triangle including the diagonal (j ≥ i).
func TriUpper(m Matrix) (Matrix, error) {
	return bandMask(opTriUpper, m, func(i, j int) bool { return j >= i })
}

// TriLower keeps the lower triangle including the diagonal (j ≤ i).
func TriLower(m Matrix) (Matrix, error) {
	return bandMask(opTriLower, m, func(i, j int) bool { return j <= i })
}

// StrictTriUpper keeps the strict upper triangle (j > i).
func StrictTriUpper(m Matrix) (Matrix, error) {
	return bandMask(opStrictTriUpper, m, func(i, j int) bool { return j > i })
}

// StrictTriLower keeps the strict lower triangle (j < i).
func StrictTriLower(m Matrix) (Matrix, error) {
	return bandMask(opStrictTriLower, m, func(i, j int) bool { return j < i })
}
