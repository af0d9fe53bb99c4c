// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (index-keyed) & safe accessors.
//
// Purpose:
//   - Store an entry for every index of a fixed r×c shape in an associative
//     store keyed by Index, so a matrix can be filled incrementally in any order.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Fail loudly on a read of an entry that was never written (ErrEntryNotFound):
//     a dense matrix never substitutes zero for a missing entry.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(1); At/Set: O(1) expected; Clone: O(len); Do: O(r*c).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------

const (
	_fmtSep     = " "
	_fmtRowEnd  = "\n"
	_fmtElement = "%g"
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Stable, human-friendly messages; preserves the sentinel via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a fixed-shape matrix that expects an entry at every index.
//   - r,c hold dimensions (rows, cols), fixed for the matrix lifetime.
//   - data maps Index → value; a complete matrix holds exactly r*c entries.
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int               // row and column counts (>0)
	data           map[Index]float64 // entry store keyed by index
	validateNaNInf bool              // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix        = (*Dense)(nil)
	_ policyCarrier = (*Dense)(nil)
	_ fmt.Stringer  = (*Dense)(nil)
)

// NewDense creates an EMPTY r×c dense matrix: no entry is stored yet.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: pre-size the entry store for r*c entries and set the numeric policy.
//
// Behavior highlights:
//   - Every index must be written (Set) before it can be read; use Zeros,
//     Identity, Ones or FromSlice for a complete matrix in one call.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(1), Space O(r*c) reserved.
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make(map[Index]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// Rows returns the row count. No side effects.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Kind reports KindDense.
func (m *Dense) Kind() Kind { return KindDense }

// Len returns the number of stored entries.
func (m *Dense) Len() int { return len(m.data) }

// IsComplete reports whether every index of the shape holds an entry.
func (m *Dense) IsComplete() bool { return len(m.data) == m.r*m.c }

func (m *Dense) finiteOnly() bool { return m.validateNaNInf }

// inBounds reports 0 ≤ row < r and 0 ≤ col < c.
func (m *Dense) inBounds(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the value at (row, col).
//
// Errors:
//   - ErrIndexOutOfBounds when (row, col) lies outside the shape.
//   - ErrEntryNotFound when the index is in bounds but was never written.
//
// Complexity:
//   - Time O(1) expected, Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if !m.inBounds(row, col) {
		return 0, denseErrorf(ctxAt, row, col, ErrIndexOutOfBounds)
	}
	v, ok := m.data[Index{Row: row, Col: col}]
	if !ok {
		return 0, denseErrorf(ctxAt, row, col, ErrEntryNotFound)
	}

	return v, nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Behavior highlights:
//   - An out-of-range write leaves the matrix untouched and reports
//     ErrIndexOutOfBounds; callers must not rely on a write having happened.
//   - Numeric policy is a per-instance flag preserved by Clone.
//
// Complexity:
//   - Time O(1) expected, Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if !m.inBounds(row, col) {
		return denseErrorf(ctxSet, row, col, ErrIndexOutOfBounds)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[Index{Row: row, Col: col}] = v

	return nil
}

// Clone returns a deep copy (new store, same numeric policy).
func (m *Dense) Clone() Matrix {
	cp := make(map[Index]float64, len(m.data))
	for k, v := range m.data {
		cp[k] = v
	}

	return &Dense{r: m.r, c: m.c, data: cp, validateNaNInf: m.validateNaNInf}
}

// Do visits the stored entries in row-major order and calls f(i,j,v).
// Missing entries of an incomplete matrix are skipped. Iteration stops early
// when f returns false.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var (
		i, j int
		v    float64
		ok   bool
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			v, ok = m.data[Index{Row: i, Col: j}]
			if !ok {
				continue
			}
			if !f(i, j, v) {
				return
			}
		}
	}
}

// String renders the matrix as rows of space-separated values, one row per line.
// An incomplete matrix renders as the empty string; use Fprint to get an
// explicit error instead.
func (m *Dense) String() string {
	if !m.IsComplete() {
		return ""
	}
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
