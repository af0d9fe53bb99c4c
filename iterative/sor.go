// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/gauss"
	"github.com/katalvlaran/linalg/matrix"
)

const opSOR = "iterative.SOR"

// SOR runs exactly iters sweeps of Successive Over-Relaxation on the normal
// equations, starting from x = 0.
//
// Blueprint:
//
//	Stage 1 (Validate): A non-nil, b an A.Rows()×1 column.
//	Stage 2 (Split):    N = AᵀA = D − E − F with D diagonal, E = −strict lower,
//	                    F = −strict upper.
//	Stage 3 (Prepare):  M = (D − w·E)⁻¹ by elimination, B = M·((1−w)·D + w·F),
//	                    C = M·(w·Aᵀb).
//	Stage 4 (Iterate):  x ← B·x + C, iters times; no residual test.
//
// The relaxation factor w must lie in (0, 2) for convergence. It is not
// validated: other values silently produce a non-convergent sequence.
// iters ≤ 0 returns the zero vector.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, matrix.ErrEntryNotFound,
// matrix.ErrSingular when D − w·E has a zero pivot.
//
// Complexity: O(m·n² + n³) setup, O(n²) per sweep, for an m×n A.
func SOR(a, b matrix.Matrix, w float64, iters int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)

	// Stage 1: Validate and build the normal equations
	sys, err := newNormalSystem(opSOR, a, b)
	if err != nil {
		return nil, err
	}
	bm, cv, err := sorOperators(sys, w, o)
	if err != nil {
		return nil, err
	}

	// Stage 4: Fixed-point sweeps on plain slices
	var (
		n    = sys.dim()
		x    = make([]float64, n) // current iterate
		next = make([]float64, n) // scratch for B·x + C
		k, i int
	)
	for k = 1; k <= iters; k++ {
		for i = 0; i < n; i++ {
			next[i] = floats.Dot(bm[i], x) + cv[i]
		}
		x, next = next, x
		o.notify(k, x)
	}

	return sys.result(opSOR, x, max(iters, 0))
}

// sorOperators performs Stages 2 and 3 of SOR and returns B as rows and C.
func sorOperators(sys *normalSystem, w float64, o Options) ([][]float64, []float64, error) {
	wrap := func(err error) error { return fmt.Errorf("%s: %w", opSOR, err) }

	// Stage 2: Split N = D − E − F
	nm, err := sys.gram(opSOR)
	if err != nil {
		return nil, nil, err
	}
	d, err := matrix.Diag(nm)
	if err != nil {
		return nil, nil, wrap(err)
	}
	lower, err := matrix.StrictTriLower(nm)
	if err != nil {
		return nil, nil, wrap(err)
	}
	upper, err := matrix.StrictTriUpper(nm)
	if err != nil {
		return nil, nil, wrap(err)
	}
	// D − w·E = D + w·strictLower, (1−w)·D + w·F = (1−w)·D − w·strictUpper.
	wLower, err := matrix.Scale(lower, w)
	if err != nil {
		return nil, nil, wrap(err)
	}
	dwe, err := matrix.Add(d, wLower)
	if err != nil {
		return nil, nil, wrap(err)
	}
	dScaled, err := matrix.Scale(d, 1-w)
	if err != nil {
		return nil, nil, wrap(err)
	}
	wUpper, err := matrix.Scale(upper, w)
	if err != nil {
		return nil, nil, wrap(err)
	}
	rhs, err := matrix.Sub(dScaled, wUpper)
	if err != nil {
		return nil, nil, wrap(err)
	}

	// Stage 3: M, B and C
	m, err := gauss.Invert(dwe, gauss.WithTolerance(o.pivotTol))
	if err != nil {
		return nil, nil, wrap(err)
	}
	bmat, err := matrix.Mul(m, rhs)
	if err != nil {
		return nil, nil, wrap(err)
	}
	bRows, err := matrix.ToRows(bmat)
	if err != nil {
		return nil, nil, wrap(err)
	}
	wc := append([]float64(nil), sys.c...)
	floats.Scale(w, wc)
	cv, err := matrix.MatVec(m, wc)
	if err != nil {
		return nil, nil, wrap(err)
	}

	return bRows, cv, nil
}
