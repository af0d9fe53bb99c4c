// SPDX-License-Identifier: MIT

package gauss

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linalg/matrix"
)

// augmented is the scoped mutable working copy [A | B] of one elimination.
// Rows are plain slices so row operations run through gonum's floats kernels.
type augmented struct {
	n    int         // order of the square block A
	rows [][]float64 // n rows of width n + rhs columns
	tol  float64     // singular when |pivot| ≤ tol
}

// newAugmented copies [a | b] into a fresh working state. b may be nil, in
// which case only a is copied (determinant mode).
func newAugmented(a, b matrix.Matrix, tol float64) (*augmented, error) {
	src := a
	if b != nil {
		var err error
		if src, err = matrix.Concat(a, b); err != nil {
			return nil, err
		}
	}
	rows, err := matrix.ToRows(src)
	if err != nil {
		return nil, err
	}

	return &augmented{n: a.Rows(), rows: rows, tol: tol}, nil
}

// pivotRow returns the index of the row in r..n-1 with the largest |rows[i][r]|.
// The first maximum wins, so equal candidates keep their original order.
func (g *augmented) pivotRow(r int) int {
	p, best := r, math.Abs(g.rows[r][r])
	for i := r + 1; i < g.n; i++ {
		if v := math.Abs(g.rows[i][r]); v > best {
			p, best = i, v
		}
	}

	return p
}

// swap exchanges whole rows i and j; reports whether anything moved.
func (g *augmented) swap(i, j int) bool {
	if i == j {
		return false
	}
	g.rows[i], g.rows[j] = g.rows[j], g.rows[i]

	return true
}

// singular reports whether v is too small to pivot on.
func (g *augmented) singular(v float64) bool { return math.Abs(v) <= g.tol }

// normalize divides row r by its pivot from column r onward.
// Columns left of r are already zero.
func (g *augmented) normalize(r int) {
	floats.Scale(1/g.rows[r][r], g.rows[r][r:])
}

// eliminate subtracts f·row r from row i, f = rows[i][r]/rows[r][r], so that
// rows[i][r] becomes zero. Only columns r.. are touched.
func (g *augmented) eliminate(i, r int) {
	f := g.rows[i][r] / g.rows[r][r]
	if f == 0 {
		return
	}
	floats.AddScaled(g.rows[i][r:], -f, g.rows[r][r:])
}

// forward runs pivoting plus elimination below the diagonal for every column.
// With normalize=true every pivot row is scaled to a unit pivot first.
// It returns the number of row swaps and the pivots met (before scaling), or
// ok=false at the first singular pivot.
func (g *augmented) forward(normalize bool) (swaps int, pivots []float64, ok bool) {
	pivots = make([]float64, 0, g.n)
	for r := 0; r < g.n; r++ {
		if g.swap(r, g.pivotRow(r)) {
			swaps++
		}
		p := g.rows[r][r]
		if g.singular(p) {
			return swaps, pivots, false
		}
		pivots = append(pivots, p)
		if normalize {
			g.normalize(r)
		}
		for i := r + 1; i < g.n; i++ {
			g.eliminate(i, r)
		}
	}

	return swaps, pivots, true
}

// backward eliminates above every (unit) pivot, bottom row first, leaving the
// identity in the A block. Requires forward(true) to have succeeded.
func (g *augmented) backward() {
	for r := g.n - 1; r >= 0; r-- {
		for i := r - 1; i >= 0; i-- {
			g.eliminate(i, r)
		}
	}
}

// right returns copies of the right-hand block (columns n..).
func (g *augmented) right() [][]float64 {
	out := make([][]float64, g.n)
	for i, row := range g.rows {
		out[i] = append([]float64(nil), row[g.n:]...)
	}

	return out
}
