// SPDX-License-Identifier: MIT

package iterative

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

const opGMRES = "iterative.GMRES"

// breakdownRatio is the relative size of H[j+1, j] below which the Krylov
// space counts as invariant: what is left of N·v_j after orthogonalization is
// rounding noise, not a new direction.
const breakdownRatio = 1e-14

// GMRES runs restarted GMRES(k) on the normal equations N·x = c, N = AᵀA,
// c = Aᵀb, from x = 0.
//
// Each cycle builds an orthonormal Krylov basis v_0..v_k of N with the Arnoldi
// process (modified Gram–Schmidt), keeps the Hessenberg matrix upper
// triangular with Givens rotations, and on exit solves the small triangular
// least-squares system to update x. Cycles restart from the new residual until
// maxIter inner iterations have been spent or the residual estimate |s_j| is
// ≤ tolerance (default 0).
//
// restart ≤ 0 or restart > n selects k = n (full GMRES). maxIter ≤ 0 returns
// the zero vector.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrShapeMismatch, matrix.ErrEntryNotFound.
// Complexity: O(m·n²) setup, O(n² + j·n) per inner iteration j.
func GMRES(a, b matrix.Matrix, restart, maxIter int, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	sys, err := newNormalSystem(opGMRES, a, b)
	if err != nil {
		return nil, err
	}
	nm, err := sys.gram(opGMRES)
	if err != nil {
		return nil, err
	}
	nRows, err := matrix.ToRows(nm)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGMRES, err)
	}

	n := sys.dim()
	if restart <= 0 || restart > n {
		restart = n
	}
	g := newArnoldi(nRows, restart)
	x := make([]float64, n)
	iters := 0
	for iters < maxIter {
		g.residual(x, sys.c)
		if g.beta <= o.tol {
			break
		}
		steps, converged := g.cycle(maxIter-iters, o.tol)
		iters += steps
		g.update(x, steps)
		o.notify(iters, x)
		if converged {
			break
		}
	}

	return sys.result(opGMRES, x, iters)
}

// arnoldi is the reusable workspace of one GMRES(k) run.
type arnoldi struct {
	n, k int
	a    [][]float64 // N as rows
	v    [][]float64 // k+1 basis vectors of length n
	h    []float64   // k×k upper triangle of the rotated Hessenberg, row-major
	s    []float64   // rotated right-hand side β·e_1, length k+1
	cs   []float64   // Givens cosines
	sn   []float64   // Givens sines
	w    []float64   // scratch for N·v_j
	beta float64     // ‖c − N·x‖ at the start of the cycle
}

func newArnoldi(a [][]float64, k int) *arnoldi {
	n := len(a)
	g := &arnoldi{
		n:  n,
		k:  k,
		a:  a,
		v:  make([][]float64, k+1),
		h:  make([]float64, k*k),
		s:  make([]float64, k+1),
		cs: make([]float64, k),
		sn: make([]float64, k),
		w:  make([]float64, n),
	}
	for i := range g.v {
		g.v[i] = make([]float64, n)
	}

	return g
}

// apply stores N·x in dst.
func (g *arnoldi) apply(dst, x []float64) {
	for i, row := range g.a {
		dst[i] = floats.Dot(row, x)
	}
}

// residual sets v_0 = r/‖r‖ and beta = ‖r‖ for r = c − N·x.
func (g *arnoldi) residual(x, c []float64) {
	r := g.v[0]
	g.apply(r, x)
	floats.SubTo(r, c, r)
	g.beta = floats.Norm(r, 2)
	if g.beta > 0 {
		floats.Scale(1/g.beta, r)
	}
}

// cycle runs up to min(k, budget) Arnoldi steps and returns how many were
// taken and whether the residual estimate reached tol or the Krylov space
// became invariant (H[j+1, j] negligible next to ‖N·v_j‖).
func (g *arnoldi) cycle(budget int, tol float64) (int, bool) {
	for i := range g.s {
		g.s[i] = 0
	}
	g.s[0] = g.beta
	bi := blas64.Implementation()

	var (
		j, i  int
		hij   float64
		hnorm float64
	)
	for j = 0; j < g.k && j < budget; j++ {
		// Arnoldi step with modified Gram–Schmidt.
		g.apply(g.w, g.v[j])
		hnorm = floats.Norm(g.w, 2)
		for i = 0; i <= j; i++ {
			hij = floats.Dot(g.w, g.v[i])
			g.h[i*g.k+j] = hij
			floats.AddScaled(g.w, -hij, g.v[i])
		}
		sub := floats.Norm(g.w, 2) // H[j+1, j]

		// Bring column j to upper triangular form.
		for i = 0; i < j; i++ {
			g.h[i*g.k+j], g.h[(i+1)*g.k+j] = rotate(g.cs[i], g.sn[i], g.h[i*g.k+j], g.h[(i+1)*g.k+j])
		}
		c, s, r, _ := bi.Drotg(g.h[j*g.k+j], sub)
		g.cs[j], g.sn[j] = c, s
		g.h[j*g.k+j] = r
		g.s[j], g.s[j+1] = rotate(c, s, g.s[j], g.s[j+1])

		if math.Abs(g.s[j+1]) <= tol || sub <= breakdownRatio*hnorm {
			return j + 1, true
		}
		copy(g.v[j+1], g.w)
		floats.Scale(1/sub, g.v[j+1])
	}

	return j, false
}

// rotate applies the plane rotation [c s; −s c] to (x, y).
func rotate(c, s, x, y float64) (float64, float64) {
	return c*x + s*y, c*y - s*x
}

// update solves R·y = s for the leading steps×steps triangle and adds V·y to x.
func (g *arnoldi) update(x []float64, steps int) {
	if steps == 0 {
		return
	}
	y := append([]float64(nil), g.s[:steps]...)
	blas64.Implementation().Dtrsv(blas.Upper, blas.NoTrans, blas.NonUnit, steps, g.h, g.k, y, 1)
	for i := 0; i < steps; i++ {
		floats.AddScaled(x, y[i], g.v[i])
	}
}
