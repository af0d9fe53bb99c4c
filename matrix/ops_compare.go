// SPDX-License-Identifier: MIT
// Package matrix: numeric comparison of matrices.
//
// Floating-point results of different algorithms (elimination vs. cofactor
// inverse, iterative vs. direct solve) never agree bit for bit, so equality is
// always "within tolerance".

package matrix

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	opAllClose = "AllClose"
	opEqual    = "Equal"
)

// closeTo reports |x-y| ≤ atol + rtol*|y|. NaN never matches; equal infinities do.
func closeTo[T constraints.Float](x, y, rtol, atol T) bool {
	if x == y {
		return true // covers equal infinities
	}
	d := x - y
	if d < 0 {
		d = -d
	}
	ay := y
	if ay < 0 {
		ay = -ay
	}

	return d <= atol+rtol*ay
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
// Kinds may differ: a sparse and a dense matrix holding the same values are close.
//
// Policy:
//   - a and b must be non-nil and have identical shapes (ErrShapeMismatch).
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances → ErrNaNInf.
//
// Complexity: O(r*c).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	ra, err := ToRows(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	rb, err := ToRows(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for i := range ra {
		for j := range ra[i] {
			if !closeTo(ra[i][j], rb[i][j], rtol, atol) {
				return false, nil
			}
		}
	}

	return true, nil
}

// Equal reports whether a and b agree entrywise within an absolute tolerance
// (DefaultEpsilon unless overridden with WithEpsilon).
func Equal(a, b Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	ok, err := AllClose(a, b, 0, o.eps)
	if err != nil {
		return false, matrixErrorf(opEqual, err)
	}

	return ok, nil
}
