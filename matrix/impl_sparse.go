// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (non-zero entries only).
//
// Purpose:
//   - Keep memory proportional to the non-zero content: Set never stores an
//     explicit zero, and assigning zero removes a previously stored entry.
//   - Any missing in-bounds entry reads as the additive identity (0).
//   - Enumerate stored entries deterministically (row-major) so that kernels
//     iterating only non-zeros produce reproducible results.
//
// Complexity quicksheet:
//   - NewSparse: O(1); At/Set: O(1) expected; Do: O(nnz log nnz).

package matrix

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a fixed-shape matrix storing only non-zero entries.
type Sparse struct {
	r, c           int               // row and column counts (>0)
	data           map[Index]float64 // non-zero entries only (invariant)
	validateNaNInf bool              // numeric guard: reject NaN/Inf in Set when true
}

var (
	_ Matrix        = (*Sparse)(nil)
	_ policyCarrier = (*Sparse)(nil)
	_ fmt.Stringer  = (*Sparse)(nil)
)

// NewSparse creates an r×c sparse matrix with no stored entries (all zero).
// Returns ErrInvalidDimensions for a non-positive shape.
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		data:           make(map[Index]float64),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports KindSparse.
func (m *Sparse) Kind() Kind { return KindSparse }

// NonZero returns the number of stored (non-zero) entries.
func (m *Sparse) NonZero() int { return len(m.data) }

func (m *Sparse) finiteOnly() bool { return m.validateNaNInf }

func (m *Sparse) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the stored value at (row, col), or 0 when nothing is stored.
// Returns ErrIndexOutOfBounds outside the shape.
func (m *Sparse) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, sparseErrorf(ctxAt, row, col, ErrIndexOutOfBounds)
	}

	return m.data[Index{Row: row, Col: col}], nil
}

// Set stores v at (row, col). Assigning 0 deletes any stored entry, so the
// store never contains an explicit zero.
//
// Errors:
//   - ErrIndexOutOfBounds (matrix untouched), ErrNaNInf under the numeric policy.
func (m *Sparse) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return sparseErrorf(ctxSet, row, col, ErrIndexOutOfBounds)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	key := Index{Row: row, Col: col}
	if v == 0 {
		delete(m.data, key) // zero is "no entry"
		return nil
	}
	m.data[key] = v

	return nil
}

// Clone returns a deep copy (new store, same numeric policy).
func (m *Sparse) Clone() Matrix {
	return &Sparse{r: m.r, c: m.c, data: maps.Clone(m.data), validateNaNInf: m.validateNaNInf}
}

// Indices returns the stored indices in row-major order.
func (m *Sparse) Indices() []Index {
	keys := maps.Keys(m.data)
	slices.SortFunc(keys, compareIndex)

	return keys
}

// Do visits the stored entries in row-major order and calls f(i,j,v).
// Iteration stops early when f returns false.
func (m *Sparse) Do(f func(i, j int, v float64) bool) {
	for _, k := range m.Indices() {
		if !f(k.Row, k.Col, m.data[k]) {
			return
		}
	}
}

// String renders every entry (zeros included) as rows of space-separated values.
func (m *Sparse) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(fmt.Sprintf(_fmtElement, m.data[Index{Row: i, Col: j}]))
		}
		b.WriteString(_fmtRowEnd)
	}

	return b.String()
}
