// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

// normalSystem carries the pieces of (AᵀA)·x = Aᵀb shared by the solvers.
type normalSystem struct {
	a  matrix.Matrix // original operator, for residuals
	at matrix.Matrix // Aᵀ
	b  []float64     // right-hand side, length A.Rows()
	c  []float64     // Aᵀb, length A.Cols()
}

// newNormalSystem validates A and the column b and precomputes Aᵀ and Aᵀb.
func newNormalSystem(tag string, a, b matrix.Matrix) (*normalSystem, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	if err := matrix.ValidateColumn(b, a.Rows()); err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	bv, err := matrix.Column(b, 0)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	c, err := matrix.MatVec(at, bv)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return &normalSystem{a: a, at: at, b: bv, c: c}, nil
}

// dim is the number of unknowns (A.Cols()).
func (s *normalSystem) dim() int { return s.a.Cols() }

// gram returns N = AᵀA as a matrix of A's kind.
func (s *normalSystem) gram(tag string) (matrix.Matrix, error) {
	n, err := matrix.Mul(s.at, s.a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return n, nil
}

// residual returns ‖A·x − b‖₂.
func (s *normalSystem) residual(x []float64) (float64, error) {
	ax, err := matrix.MatVec(s.a, x)
	if err != nil {
		return 0, err
	}
	floats.Sub(ax, s.b)

	return floats.Norm(ax, 2), nil
}

// result packages x into a Result. The column is built without NaN/Inf
// validation so a divergent iterate is still returned.
func (s *normalSystem) result(tag string, x []float64, iters int) (*Result, error) {
	res, err := s.residual(x)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	col, err := matrix.NewColumn(x, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return &Result{X: col, Iterations: iters, Residual: res}, nil
}
