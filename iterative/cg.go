// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

const opCG = "iterative.CG"

// CG runs Conjugate Gradient on the normal equations (CGNR) from x = 0 for at
// most iters iterations. AᵀA is never formed: each step applies A and Aᵀ.
//
// With r = b − A·x and s = Aᵀ·r, the loop stops early once sᵀs ≤ tolerance
// (default 0: exact convergence) or when the search direction is annihilated
// by A (qᵀq = 0). iters ≤ 0 returns the zero vector.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, matrix.ErrEntryNotFound.
// Complexity: O(m·n) per iteration for a dense m×n A, O(nnz) for a sparse one.
func CG(a, b matrix.Matrix, iters int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newNormalSystem(opCG, a, b)
	if err != nil {
		return nil, err
	}

	var (
		x     = make([]float64, sys.dim())       // iterate
		r     = append([]float64(nil), sys.b...) // b − A·x, x = 0
		s     = append([]float64(nil), sys.c...) // Aᵀr
		p     = append([]float64(nil), s...)     // search direction
		q     []float64                          // A·p
		gamma = floats.Dot(s, s)                 // sᵀs
		k     int
	)
	for k = 0; k < iters; k++ {
		if gamma <= o.tol {
			break
		}
		if q, err = matrix.MatVec(sys.a, p); err != nil {
			return nil, fmt.Errorf("%s: %w", opCG, err)
		}
		qq := floats.Dot(q, q)
		if qq == 0 {
			break
		}
		alpha := gamma / qq
		floats.AddScaled(x, alpha, p)
		floats.AddScaled(r, -alpha, q)
		if s, err = matrix.MatVec(sys.at, r); err != nil {
			return nil, fmt.Errorf("%s: %w", opCG, err)
		}
		next := floats.Dot(s, s)
		beta := next / gamma
		gamma = next
		// p = s + β·p
		floats.Scale(beta, p)
		floats.Add(p, s)
		o.notify(k+1, x)
	}

	return sys.result(opCG, x, k)
}
